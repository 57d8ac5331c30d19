package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gotop/wire/fieldtag"
)

func TestDocumentUnrecognized(t *testing.T) {
	doc := Document{
		"Symbol":      "AUD/USD",
		"OrderId":     "O-123456",
		"NotARealKey": "x",
		"AlsoUnknown": 1,
	}
	assert.Equal(t, []string{"AlsoUnknown", "NotARealKey"}, doc.Unrecognized(fieldtag.Default()))

	clean := Document{"Symbol": "AUD/USD"}
	assert.Empty(t, clean.Unrecognized(fieldtag.Default()))
}

func TestDocumentClone(t *testing.T) {
	doc := Document{"Symbol": "AUD/USD"}
	clone := doc.Clone()
	clone["Symbol"] = "EUR/USD"
	clone["Venue"] = "FXCM"

	assert.Equal(t, "AUD/USD", doc["Symbol"])
	_, ok := doc["Venue"]
	assert.False(t, ok)
}

func TestMarshalUnmarshal(t *testing.T) {
	doc := Document{
		"Symbol":   "AUD/USD",
		"Quantity": "100000",
		"Limit":    int64(1000),
	}
	data, err := Marshal(doc)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "AUD/USD", back["Symbol"])
	assert.Equal(t, "100000", back["Quantity"])
	assert.Equal(t, float64(1000), back["Limit"])
}

func TestUnmarshalInvalidJSON(t *testing.T) {
	_, err := Unmarshal([]byte(`{"Symbol": `))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseDocument(t *testing.T) {
	data := []byte(`{"Symbol":"AUD/USD","Options":{"PostOnly":true},"Limit":1000}`)
	doc, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, "AUD/USD", doc["Symbol"])
	assert.NotNil(t, doc["Options"])

	_, err = ParseDocument([]byte(`[1,2,3]`))
	assert.Error(t, err)
}
