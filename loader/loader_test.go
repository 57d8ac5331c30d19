package loader

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gotop/wire/entity"
)

func TestBarLoaderLoad(t *testing.T) {
	l := NewBarLoader("testdata/bars.csv")
	bars, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, bars, 3)

	first := bars[0]
	assert.True(t, decimal.RequireFromString("0.80010").Equal(first.Open))
	assert.True(t, decimal.RequireFromString("0.80025").Equal(first.High))
	assert.True(t, decimal.RequireFromString("0.79990").Equal(first.Low))
	assert.True(t, decimal.RequireFromString("0.80015").Equal(first.Close))
	assert.True(t, decimal.NewFromInt(1000000).Equal(first.Volume))
	assert.Equal(t, entity.UnixNanos(1700000000000000000), first.Timestamp)

	// 保持文件内的时间升序
	assert.True(t, bars[0].Timestamp.Before(bars[1].Timestamp))
	assert.True(t, bars[1].Timestamp.Before(bars[2].Timestamp))
}

func TestBarLoaderRangeFilter(t *testing.T) {
	l := NewBarLoader("testdata/bars.csv",
		WithStart(entity.UnixNanos(1700000060000000000)),
		WithEnd(entity.UnixNanos(1700000060000000000)),
	)
	bars, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, entity.UnixNanos(1700000060000000000), bars[0].Timestamp)
}

func TestBarLoaderBadRow(t *testing.T) {
	l := NewBarLoader("testdata/bars_bad_row.csv")
	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, ErrBadRow)
	assert.Contains(t, err.Error(), "open")
	assert.Contains(t, err.Error(), "3")
}

func TestBarLoaderBadHeader(t *testing.T) {
	l := NewBarLoader("testdata/bars_bad_header.csv")
	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, ErrBadHeader)
	assert.Contains(t, err.Error(), "volume")
}

func TestBarLoaderFileNotFound(t *testing.T) {
	l := NewBarLoader("testdata/does_not_exist.csv")
	_, err := l.Load(context.Background())
	assert.Error(t, err)
}

func TestBarLoaderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewBarLoader("testdata/bars.csv")
	_, err := l.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQuoteTickLoaderLoad(t *testing.T) {
	l := NewQuoteTickLoader("testdata/quotes.csv",
		WithSymbol("AUD/USD"),
		WithVenue("FXCM"),
	)
	ticks, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ticks, 3)

	first := ticks[0]
	assert.Equal(t, "AUD/USD", first.Symbol)
	assert.Equal(t, "FXCM", first.Venue)
	assert.True(t, decimal.RequireFromString("0.80010").Equal(first.Bid))
	assert.True(t, decimal.RequireFromString("0.80020").Equal(first.Ask))
	assert.True(t, decimal.NewFromInt(1000000).Equal(first.BidSize))
	assert.True(t, decimal.NewFromInt(800000).Equal(first.AskSize))
	assert.Equal(t, entity.UnixNanos(1700000000000000000), first.Timestamp)
}

func TestQuoteTickLoaderMissingSizes(t *testing.T) {
	l := NewQuoteTickLoader("testdata/quotes_no_size.csv", WithSymbol("AUD/USD"))
	ticks, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ticks, 2)

	// 缺少盘口数量列时数量为零
	assert.True(t, ticks[0].BidSize.IsZero())
	assert.True(t, ticks[0].AskSize.IsZero())
	assert.True(t, decimal.RequireFromString("0.80011").Equal(ticks[1].Bid))
}

func TestTradeTickLoaderLoad(t *testing.T) {
	l := NewTradeTickLoader("testdata/trades_tardis.csv", WithVenue("FTX"))
	ticks, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ticks, 3)

	first := ticks[0]
	assert.Equal(t, "BTC-PERP", first.Symbol)
	assert.Equal(t, "FTX", first.Venue)
	assert.Equal(t, "1001", first.TradeID)
	assert.True(t, decimal.RequireFromString("0.025").Equal(first.Size))
	assert.True(t, decimal.RequireFromString("35000.50").Equal(first.Price))
	// side统一为大写
	assert.Equal(t, entity.SideTypeBuy, first.Side)
	assert.Equal(t, entity.SideTypeSell, ticks[1].Side)
	// local_timestamp为微秒
	assert.Equal(t, entity.UnixNanos(1700000000000000000), first.Timestamp)
	assert.Equal(t, entity.UnixNanos(1700000000500000000), ticks[1].Timestamp)
}

func TestTradeTickLoaderSymbolOverride(t *testing.T) {
	l := NewTradeTickLoader("testdata/trades_tardis.csv",
		WithSymbol("BTC-PERP.OVERRIDE"),
		WithVenue("FTX"),
	)
	ticks, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ticks, 3)
	assert.Equal(t, "BTC-PERP.OVERRIDE", ticks[0].Symbol)
}

func TestTradeTickLoaderRangeFilter(t *testing.T) {
	l := NewTradeTickLoader("testdata/trades_tardis.csv",
		WithVenue("FTX"),
		WithEnd(entity.UnixNanos(1700000000500000000)),
	)
	ticks, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ticks, 2)
	assert.Equal(t, "1002", ticks[1].TradeID)
}
