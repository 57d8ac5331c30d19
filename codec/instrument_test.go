package codec

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gotop/wire/entity"
)

func audusdInstrument() *entity.Instrument {
	return &entity.Instrument{
		Symbol:                "AUD/USD",
		Venue:                 "FXCM",
		BrokerSymbol:          "AUD/USD",
		QuoteCurrency:         "USD",
		SecurityType:          entity.SecurityTypeForex,
		PricePrecision:        5,
		SizePrecision:         0,
		TickSize:              decimal.RequireFromString("0.00001"),
		RoundLotSize:          decimal.NewFromInt(1000),
		MinStopDistanceEntry:  0,
		MinStopDistance:       0,
		MinLimitDistanceEntry: 0,
		MinLimitDistance:      0,
		MinTradeSize:          decimal.NewFromInt(1),
		MaxTradeSize:          decimal.NewFromInt(50000000),
		RolloverInterestBuy:   decimal.RequireFromString("-0.42"),
		RolloverInterestSell:  decimal.RequireFromString("0.28"),
		Timestamp:             entity.UnixNanos(1700000000000000000),
	}
}

func TestInstrumentCodecRoundTrip(t *testing.T) {
	c := NewInstrumentCodec()
	want := audusdInstrument()

	doc, err := c.Encode(want)
	require.NoError(t, err)
	got, err := c.Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, want.Symbol, got.Symbol)
	assert.Equal(t, want.Venue, got.Venue)
	assert.Equal(t, want.SecurityType, got.SecurityType)
	assert.Equal(t, want.PricePrecision, got.PricePrecision)
	assert.Equal(t, want.SizePrecision, got.SizePrecision)
	assert.True(t, want.TickSize.Equal(got.TickSize))
	assert.True(t, want.RoundLotSize.Equal(got.RoundLotSize))
	assert.True(t, want.MinTradeSize.Equal(got.MinTradeSize))
	assert.True(t, want.MaxTradeSize.Equal(got.MaxTradeSize))
	assert.True(t, want.RolloverInterestBuy.Equal(got.RolloverInterestBuy))
	assert.True(t, want.RolloverInterestSell.Equal(got.RolloverInterestSell))
	assert.Equal(t, want.Timestamp, got.Timestamp)
}

func TestInstrumentCodecWireKeys(t *testing.T) {
	c := NewInstrumentCodec()
	doc, err := c.Encode(audusdInstrument())
	require.NoError(t, err)

	assert.Equal(t, "AUD/USD", doc["Symbol"])
	assert.Equal(t, "FOREX", doc["SecurityType"])
	assert.Equal(t, int64(5), doc["PricePrecision"])
	assert.Equal(t, "0.00001", doc["TickSize"])
	assert.Equal(t, "1", doc["MinTradeSize"])
	assert.Equal(t, "-0.42", doc["RolloverInterestBuy"])
}

func TestInstrumentCodecMarshalUnmarshal(t *testing.T) {
	c := NewInstrumentCodec()
	want := audusdInstrument()

	data, err := c.Marshal(want)
	require.NoError(t, err)
	got, err := c.Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, want.Symbol, got.Symbol)
	assert.Equal(t, want.PricePrecision, got.PricePrecision)
	assert.True(t, want.TickSize.Equal(got.TickSize))
}

func TestInstrumentCodecBatch(t *testing.T) {
	c := NewInstrumentCodec()
	first := audusdInstrument()
	second := audusdInstrument()
	second.Symbol = "EUR/USD"
	second.BrokerSymbol = "EUR/USD"

	doc, err := c.EncodeBatch([]*entity.Instrument{first, second})
	require.NoError(t, err)
	assert.Contains(t, doc, "Instruments")

	// 经过JSON往返, 嵌套结构变为map[string]interface{}
	data, err := Marshal(doc)
	require.NoError(t, err)
	back, err := Unmarshal(data)
	require.NoError(t, err)

	got, err := c.DecodeBatch(back)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "AUD/USD", got[0].Symbol)
	assert.Equal(t, "EUR/USD", got[1].Symbol)
	assert.Equal(t, int32(5), got[1].PricePrecision)
}

func TestInstrumentCodecNil(t *testing.T) {
	c := NewInstrumentCodec()

	_, err := c.Encode(nil)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	_, err = c.Decode(nil)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	_, err = c.EncodeBatch([]*entity.Instrument{nil})
	assert.ErrorIs(t, err, ErrInvalidDocument)
}
