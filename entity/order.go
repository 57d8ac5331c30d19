package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Order 订单快照, 覆盖从初始化到终态的完整生命周期。
// 未发生的生命周期事件对应的时间戳保持零值。
type Order struct {
	// 订单ID
	ID string
	// 券商/交易所侧订单ID
	OrderIDBroker string
	// 标的物
	Symbol string
	// 交易场所
	Venue string
	// 交易员ID
	TraderID string
	// 策略ID
	StrategyID string
	// 持仓ID
	PositionID string
	// 账户ID
	AccountID string
	// 初始化事件ID
	InitID string
	// 订单标签
	Label string
	// 买卖方向
	Side SideType
	// 订单类型
	Type OrderType
	// 委托数量
	Quantity decimal.Decimal
	// 委托价格, 市价单为零
	Price decimal.Decimal
	// 有效期类型
	TimeInForce TimeInForceType
	// GTD到期时间
	ExpireTime UnixNanos
	// 订单状态
	State OrderState
	// 生命周期事件时间
	SubmittedTime UnixNanos
	AcceptedTime  UnixNanos
	RejectedTime  UnixNanos
	WorkingTime   UnixNanos
	CancelledTime UnixNanos
	ModifiedTime  UnixNanos
	ExpiredTime   UnixNanos
	ExecutionTime UnixNanos
	// 被拒绝的请求及原因
	RejectedResponseTo string
	RejectedReason     string
	// 最近一次改单后的数量与价格
	ModifiedQuantity decimal.Decimal
	ModifiedPrice    decimal.Decimal
	// 成交回报ID
	ExecutionID string
	// 已成交数量
	FilledQuantity decimal.Decimal
	// 未成交数量
	LeavesQuantity decimal.Decimal
	// 平均成交价
	AveragePrice decimal.Decimal
	// 快照时间戳
	Timestamp UnixNanos
}

// Validate 校验订单基本约束。
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("%w: empty order id", ErrInvalidOrder)
	}
	if o.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidOrder)
	}
	if o.Side != SideTypeBuy && o.Side != SideTypeSell {
		return fmt.Errorf("%w: side %q", ErrInvalidOrder, o.Side)
	}
	if !o.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity %s", ErrInvalidOrder, o.Quantity)
	}
	switch o.Type {
	case OrderTypeMarket:
		if !o.Price.IsZero() {
			return fmt.Errorf("%w: market order with price %s", ErrInvalidOrder, o.Price)
		}
	case OrderTypeLimit, OrderTypeStopMarket, OrderTypeStopLimit:
		if !o.Price.IsPositive() {
			return fmt.Errorf("%w: %s order requires positive price", ErrInvalidOrder, o.Type)
		}
	default:
		return fmt.Errorf("%w: order type %q", ErrInvalidOrder, o.Type)
	}
	if o.TimeInForce == TimeInForceGTD && o.ExpireTime.IsZero() {
		return fmt.Errorf("%w: GTD order requires expire time", ErrInvalidOrder)
	}
	if o.FilledQuantity.IsNegative() || o.FilledQuantity.GreaterThan(o.Quantity) {
		return fmt.Errorf("%w: filled quantity %s out of range", ErrInvalidOrder, o.FilledQuantity)
	}
	return nil
}

// DeriveState 由生命周期时间戳与成交数量推导订单状态。
// 订单状态不随订单上线传输, 解码侧据此还原。
func (o *Order) DeriveState() OrderState {
	switch {
	case o.FilledQuantity.IsPositive() && o.LeavesQuantity.IsZero():
		return OrderStateFilled
	case !o.RejectedTime.IsZero():
		return OrderStateRejected
	case !o.CancelledTime.IsZero():
		return OrderStateCancelled
	case !o.ExpiredTime.IsZero():
		return OrderStateExpired
	case o.FilledQuantity.IsPositive():
		return OrderStatePartiallyFilled
	case !o.WorkingTime.IsZero():
		return OrderStateWorking
	case !o.AcceptedTime.IsZero():
		return OrderStateAccepted
	case !o.SubmittedTime.IsZero():
		return OrderStateSubmitted
	default:
		return OrderStateInitialized
	}
}

// Opposite 返回相反的买卖方向。
func (s SideType) Opposite() SideType {
	if s == SideTypeBuy {
		return SideTypeSell
	}
	return SideTypeBuy
}

// BracketOrder 括号订单: 入场单与可选的止损/止盈子单。
type BracketOrder struct {
	Entry      *Order
	StopLoss   *Order
	TakeProfit *Order
}

// Validate 校验括号订单, 子单方向必须与入场单相反。
func (b *BracketOrder) Validate() error {
	if b.Entry == nil {
		return fmt.Errorf("%w: bracket order requires entry", ErrInvalidOrder)
	}
	if err := b.Entry.Validate(); err != nil {
		return err
	}
	opposite := b.Entry.Side.Opposite()
	if b.StopLoss != nil {
		if err := b.StopLoss.Validate(); err != nil {
			return err
		}
		if b.StopLoss.Side != opposite {
			return fmt.Errorf("%w: stop loss side %q", ErrInvalidOrder, b.StopLoss.Side)
		}
	}
	if b.TakeProfit != nil {
		if err := b.TakeProfit.Validate(); err != nil {
			return err
		}
		if b.TakeProfit.Side != opposite {
			return fmt.Errorf("%w: take profit side %q", ErrInvalidOrder, b.TakeProfit.Side)
		}
	}
	return nil
}
