package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanosFromTime(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := NanosFromTime(ts)
	assert.Equal(t, UnixNanos(1704067200000000000), n)
	assert.Equal(t, ts, n.Time())

	assert.Equal(t, UnixNanos(0), NanosFromTime(time.Time{}))
}

func TestNanosConversions(t *testing.T) {
	tt := []struct {
		ms int64
		us int64
		n  UnixNanos
	}{
		{
			ms: 0,
			us: 0,
			n:  0,
		},
		{
			ms: 1,
			us: 1000,
			n:  1000000,
		},
		{
			ms: 1704067200000,
			us: 1704067200000000,
			n:  1704067200000000000,
		},
	}
	for _, tc := range tt {
		assert.Equal(t, tc.n, NanosFromMillis(tc.ms))
		assert.Equal(t, tc.n, NanosFromMicros(tc.us))
		assert.Equal(t, tc.ms, tc.n.Millis())
		assert.Equal(t, tc.us, tc.n.Micros())
	}
}

func TestParseNanos(t *testing.T) {
	n, err := ParseNanos("2024-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, UnixNanos(1704067200000000000), n)

	n, err = ParseNanos("2024-01-01T08:00:00+08:00")
	require.NoError(t, err)
	assert.Equal(t, UnixNanos(1704067200000000000), n)

	_, err = ParseNanos("not a timestamp")
	assert.Error(t, err)
}

func TestNanosStringRoundTrip(t *testing.T) {
	n := UnixNanos(1704067200123456789)
	got, err := ParseNanos(n.String())
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestNanosArithmetic(t *testing.T) {
	n := NanosFromMillis(1000)
	assert.Equal(t, NanosFromMillis(2500), n.Add(1500*time.Millisecond))
	assert.Equal(t, 1500*time.Millisecond, n.Add(1500*time.Millisecond).Sub(n))
	assert.True(t, n.Before(n.Add(time.Second)))
	assert.True(t, n.Add(time.Second).After(n))
	assert.False(t, n.IsZero())
	assert.True(t, UnixNanos(0).IsZero())
}
