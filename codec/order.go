package codec

import (
	"fmt"

	"github.com/go-gotop/wire/entity"
	"github.com/go-gotop/wire/fieldtag"
)

// OrderCodec 订单编解码器。
type OrderCodec struct {
	base
}

func NewOrderCodec(opts ...Option) *OrderCodec {
	return &OrderCodec{base: newBase(opts...)}
}

// Encode 将订单编码为键值结构, 键来自注册表。
// 订单状态不上线传输, 解码侧由生命周期时间戳推导。
func (c *OrderCodec) Encode(o *entity.Order) (Document, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil order", ErrInvalidDocument)
	}
	w := c.writer()
	w.putStr(fieldtag.FieldOrderID, o.ID)
	w.putStr(fieldtag.FieldOrderIDBroker, o.OrderIDBroker)
	w.putStr(fieldtag.FieldSymbol, o.Symbol)
	w.putStr(fieldtag.FieldVenue, o.Venue)
	w.putStr(fieldtag.FieldTraderID, o.TraderID)
	w.putStr(fieldtag.FieldStrategyID, o.StrategyID)
	w.putStr(fieldtag.FieldPositionID, o.PositionID)
	w.putStr(fieldtag.FieldAccountID, o.AccountID)
	w.putStr(fieldtag.FieldInitID, o.InitID)
	w.putStr(fieldtag.FieldLabel, o.Label)
	w.putStr(fieldtag.FieldOrderSide, string(o.Side))
	w.putStr(fieldtag.FieldOrderType, string(o.Type))
	w.putDec(fieldtag.FieldQuantity, o.Quantity)
	w.putDec(fieldtag.FieldPrice, o.Price)
	w.putStr(fieldtag.FieldTimeInForce, string(o.TimeInForce))
	w.putNanos(fieldtag.FieldExpireTime, o.ExpireTime)
	w.putNanos(fieldtag.FieldSubmittedTime, o.SubmittedTime)
	w.putNanos(fieldtag.FieldAcceptedTime, o.AcceptedTime)
	w.putNanos(fieldtag.FieldRejectedTime, o.RejectedTime)
	w.putStr(fieldtag.FieldRejectedResponseTo, o.RejectedResponseTo)
	w.putStr(fieldtag.FieldRejectedReason, o.RejectedReason)
	w.putNanos(fieldtag.FieldWorkingTime, o.WorkingTime)
	w.putNanos(fieldtag.FieldCancelledTime, o.CancelledTime)
	w.putNanos(fieldtag.FieldModifiedTime, o.ModifiedTime)
	w.putDec(fieldtag.FieldModifiedQuantity, o.ModifiedQuantity)
	w.putDec(fieldtag.FieldModifiedPrice, o.ModifiedPrice)
	w.putNanos(fieldtag.FieldExpiredTime, o.ExpiredTime)
	w.putNanos(fieldtag.FieldExecutionTime, o.ExecutionTime)
	w.putStr(fieldtag.FieldExecutionID, o.ExecutionID)
	w.putDec(fieldtag.FieldFilledQuantity, o.FilledQuantity)
	w.putDec(fieldtag.FieldLeavesQuantity, o.LeavesQuantity)
	w.putDec(fieldtag.FieldAveragePrice, o.AveragePrice)
	w.putNanos(fieldtag.FieldTimestamp, o.Timestamp)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

// Decode 从键值结构还原订单, 未注册的键跳过并记录调试日志。
func (c *OrderCodec) Decode(doc Document) (*entity.Order, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	o := &entity.Order{
		ID:                 r.str(fieldtag.FieldOrderID),
		OrderIDBroker:      r.str(fieldtag.FieldOrderIDBroker),
		Symbol:             r.str(fieldtag.FieldSymbol),
		Venue:              r.str(fieldtag.FieldVenue),
		TraderID:           r.str(fieldtag.FieldTraderID),
		StrategyID:         r.str(fieldtag.FieldStrategyID),
		PositionID:         r.str(fieldtag.FieldPositionID),
		AccountID:          r.str(fieldtag.FieldAccountID),
		InitID:             r.str(fieldtag.FieldInitID),
		Label:              r.str(fieldtag.FieldLabel),
		Side:               entity.SideType(r.str(fieldtag.FieldOrderSide)),
		Type:               entity.OrderType(r.str(fieldtag.FieldOrderType)),
		Quantity:           r.dec(fieldtag.FieldQuantity),
		Price:              r.dec(fieldtag.FieldPrice),
		TimeInForce:        entity.TimeInForceType(r.str(fieldtag.FieldTimeInForce)),
		ExpireTime:         r.nanos(fieldtag.FieldExpireTime),
		SubmittedTime:      r.nanos(fieldtag.FieldSubmittedTime),
		AcceptedTime:       r.nanos(fieldtag.FieldAcceptedTime),
		RejectedTime:       r.nanos(fieldtag.FieldRejectedTime),
		RejectedResponseTo: r.str(fieldtag.FieldRejectedResponseTo),
		RejectedReason:     r.str(fieldtag.FieldRejectedReason),
		WorkingTime:        r.nanos(fieldtag.FieldWorkingTime),
		CancelledTime:      r.nanos(fieldtag.FieldCancelledTime),
		ModifiedTime:       r.nanos(fieldtag.FieldModifiedTime),
		ModifiedQuantity:   r.dec(fieldtag.FieldModifiedQuantity),
		ModifiedPrice:      r.dec(fieldtag.FieldModifiedPrice),
		ExpiredTime:        r.nanos(fieldtag.FieldExpiredTime),
		ExecutionTime:      r.nanos(fieldtag.FieldExecutionTime),
		ExecutionID:        r.str(fieldtag.FieldExecutionID),
		FilledQuantity:     r.dec(fieldtag.FieldFilledQuantity),
		LeavesQuantity:     r.dec(fieldtag.FieldLeavesQuantity),
		AveragePrice:       r.dec(fieldtag.FieldAveragePrice),
		Timestamp:          r.nanos(fieldtag.FieldTimestamp),
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	o.State = o.DeriveState()
	return o, nil
}

// EncodeBracket 括号单编码, 三腿作为嵌套结构挂在Entry、StopLoss、TakeProfit键下。
func (c *OrderCodec) EncodeBracket(b *entity.BracketOrder) (Document, error) {
	if b == nil || b.Entry == nil {
		return nil, fmt.Errorf("%w: nil bracket order", ErrInvalidDocument)
	}
	entry, err := c.Encode(b.Entry)
	if err != nil {
		return nil, err
	}
	w := c.writer()
	w.putSub(fieldtag.FieldEntry, entry)
	if b.StopLoss != nil {
		sl, err := c.Encode(b.StopLoss)
		if err != nil {
			return nil, err
		}
		w.putSub(fieldtag.FieldStopLoss, sl)
	}
	if b.TakeProfit != nil {
		tp, err := c.Encode(b.TakeProfit)
		if err != nil {
			return nil, err
		}
		w.putSub(fieldtag.FieldTakeProfit, tp)
	}
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

// DecodeBracket 括号单解码, 缺失的止损/止盈腿还原为nil。
func (c *OrderCodec) DecodeBracket(doc Document) (*entity.BracketOrder, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	r := c.reader(doc)
	entryDoc := r.sub(fieldtag.FieldEntry)
	slDoc := r.sub(fieldtag.FieldStopLoss)
	tpDoc := r.sub(fieldtag.FieldTakeProfit)
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	if entryDoc == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, fieldtag.MustKey(fieldtag.FieldEntry))
	}

	b := &entity.BracketOrder{}
	var err error
	if b.Entry, err = c.Decode(entryDoc); err != nil {
		return nil, err
	}
	if slDoc != nil {
		if b.StopLoss, err = c.Decode(slDoc); err != nil {
			return nil, err
		}
	}
	if tpDoc != nil {
		if b.TakeProfit, err = c.Decode(tpDoc); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Marshal 编码并序列化为JSON。
func (c *OrderCodec) Marshal(o *entity.Order) ([]byte, error) {
	doc, err := c.Encode(o)
	if err != nil {
		return nil, err
	}
	return Marshal(doc)
}

// Unmarshal 反序列化JSON并还原订单。
func (c *OrderCodec) Unmarshal(data []byte) (*entity.Order, error) {
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return c.Decode(doc)
}
