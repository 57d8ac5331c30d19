package codec

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gotop/wire/entity"
)

func acceptedLimitOrder() *entity.Order {
	return &entity.Order{
		ID:             "O-19700101-000000-001-001-1",
		OrderIDBroker:  "B-1234567",
		Symbol:         "AUD/USD",
		Venue:          "FXCM",
		TraderID:       "TESTER-000",
		StrategyID:     "S-001",
		PositionID:     "P-123456",
		AccountID:      "FXCM-02851908",
		InitID:         "3c95b0e6-52dc-44e1-97b4-6b2a4f1e8d90",
		Label:          "U1_E",
		Side:           entity.SideTypeBuy,
		Type:           entity.OrderTypeLimit,
		Quantity:       decimal.NewFromInt(100000),
		Price:          decimal.RequireFromString("0.80010"),
		TimeInForce:    entity.TimeInForceGTC,
		State:          entity.OrderStateAccepted,
		SubmittedTime:  entity.UnixNanos(1700000000000000000),
		AcceptedTime:   entity.UnixNanos(1700000001000000000),
		LeavesQuantity: decimal.NewFromInt(100000),
		Timestamp:      entity.UnixNanos(1700000001000000000),
	}
}

func TestOrderCodecRoundTrip(t *testing.T) {
	c := NewOrderCodec()
	want := acceptedLimitOrder()

	doc, err := c.Encode(want)
	require.NoError(t, err)
	got, err := c.Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.OrderIDBroker, got.OrderIDBroker)
	assert.Equal(t, want.Symbol, got.Symbol)
	assert.Equal(t, want.Venue, got.Venue)
	assert.Equal(t, want.TraderID, got.TraderID)
	assert.Equal(t, want.StrategyID, got.StrategyID)
	assert.Equal(t, want.AccountID, got.AccountID)
	assert.Equal(t, want.Side, got.Side)
	assert.Equal(t, want.Type, got.Type)
	assert.True(t, want.Quantity.Equal(got.Quantity))
	assert.True(t, want.Price.Equal(got.Price))
	assert.Equal(t, want.TimeInForce, got.TimeInForce)
	assert.Equal(t, want.SubmittedTime, got.SubmittedTime)
	assert.Equal(t, want.AcceptedTime, got.AcceptedTime)
	assert.True(t, got.RejectedTime.IsZero())
	assert.True(t, want.LeavesQuantity.Equal(got.LeavesQuantity))
	assert.Equal(t, want.Timestamp, got.Timestamp)
	assert.Equal(t, entity.OrderStateAccepted, got.State)
}

func TestOrderCodecWireKeys(t *testing.T) {
	c := NewOrderCodec()
	doc, err := c.Encode(acceptedLimitOrder())
	require.NoError(t, err)

	assert.Equal(t, "O-19700101-000000-001-001-1", doc["OrderId"])
	assert.Equal(t, "AUD/USD", doc["Symbol"])
	assert.Equal(t, "BUY", doc["OrderSide"])
	assert.Equal(t, "LIMIT", doc["OrderType"])
	assert.Equal(t, "100000", doc["Quantity"])
	assert.Equal(t, "0.8001", doc["Price"])
	assert.Equal(t, "GTC", doc["TimeInForce"])
	assert.Equal(t, "2023-11-14T22:13:20Z", doc["SubmittedTime"])
	// 未发生的事件与空字符串字段写为哨兵值
	assert.Equal(t, ValueNone, doc["RejectedTime"])
	assert.Equal(t, ValueNone, doc["RejectedReason"])
	assert.Equal(t, ValueNone, doc["ExpireTime"])
	assert.Equal(t, ValueNone, doc["ExecutionId"])
}

func TestOrderCodecUnknownKeySkipped(t *testing.T) {
	c := NewOrderCodec()
	doc, err := c.Encode(acceptedLimitOrder())
	require.NoError(t, err)

	// 新版本协议可能携带本端不认识的键, 解码必须跳过并继续
	doc["NotARealKey"] = "whatever"
	doc["FutureField"] = 42

	got, err := c.Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, "O-19700101-000000-001-001-1", got.ID)
	assert.Equal(t, "AUD/USD", got.Symbol)
	assert.True(t, decimal.NewFromInt(100000).Equal(got.Quantity))
}

func TestOrderCodecMarshalUnmarshal(t *testing.T) {
	c := NewOrderCodec()
	want := acceptedLimitOrder()

	data, err := c.Marshal(want)
	require.NoError(t, err)
	got, err := c.Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.Price.Equal(got.Price))
	assert.Equal(t, want.AcceptedTime, got.AcceptedTime)
}

func TestOrderCodecBadValue(t *testing.T) {
	c := NewOrderCodec()
	doc, err := c.Encode(acceptedLimitOrder())
	require.NoError(t, err)

	doc["Quantity"] = true
	_, err = c.Decode(doc)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "Quantity")
}

func TestOrderCodecNil(t *testing.T) {
	c := NewOrderCodec()

	_, err := c.Encode(nil)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	_, err = c.Decode(nil)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestOrderCodecBracketRoundTrip(t *testing.T) {
	c := NewOrderCodec()
	entry := acceptedLimitOrder()
	stopLoss := acceptedLimitOrder()
	stopLoss.ID = "O-19700101-000000-001-001-2"
	stopLoss.Side = entity.SideTypeSell
	stopLoss.Type = entity.OrderTypeStopMarket
	stopLoss.Price = decimal.RequireFromString("0.79950")
	takeProfit := acceptedLimitOrder()
	takeProfit.ID = "O-19700101-000000-001-001-3"
	takeProfit.Side = entity.SideTypeSell
	takeProfit.Price = decimal.RequireFromString("0.80120")

	want := &entity.BracketOrder{Entry: entry, StopLoss: stopLoss, TakeProfit: takeProfit}
	doc, err := c.EncodeBracket(want)
	require.NoError(t, err)

	// 三腿作为嵌套结构
	assert.Contains(t, doc, "Entry")
	assert.Contains(t, doc, "StopLoss")
	assert.Contains(t, doc, "TakeProfit")

	data, err := Marshal(doc)
	require.NoError(t, err)
	back, err := Unmarshal(data)
	require.NoError(t, err)

	got, err := c.DecodeBracket(back)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.Entry.ID)
	require.NotNil(t, got.StopLoss)
	assert.Equal(t, entity.SideTypeSell, got.StopLoss.Side)
	assert.True(t, stopLoss.Price.Equal(got.StopLoss.Price))
	require.NotNil(t, got.TakeProfit)
	assert.True(t, takeProfit.Price.Equal(got.TakeProfit.Price))
}

func TestOrderCodecBracketEntryOnly(t *testing.T) {
	c := NewOrderCodec()
	want := &entity.BracketOrder{Entry: acceptedLimitOrder()}

	doc, err := c.EncodeBracket(want)
	require.NoError(t, err)
	assert.NotContains(t, doc, "StopLoss")
	assert.NotContains(t, doc, "TakeProfit")

	got, err := c.DecodeBracket(doc)
	require.NoError(t, err)
	assert.Equal(t, want.Entry.ID, got.Entry.ID)
	assert.Nil(t, got.StopLoss)
	assert.Nil(t, got.TakeProfit)
}

func TestOrderCodecBracketMissingEntry(t *testing.T) {
	c := NewOrderCodec()

	_, err := c.EncodeBracket(&entity.BracketOrder{})
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = c.DecodeBracket(Document{})
	assert.ErrorIs(t, err, ErrMissingField)
}
