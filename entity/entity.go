package entity

import (
	"errors"
)

// SideType BUY, SELL
type SideType string

// OrderType MARKET, LIMIT, STOP_MARKET, STOP_LIMIT
type OrderType string

// OrderState INITIALIZED, SUBMITTED, ACCEPTED, REJECTED, WORKING, CANCELLED, EXPIRED, PARTIALLY_FILLED, FILLED
type OrderState string

// TimeInForceType GTC, IOC, FOK, GTD, DAY
type TimeInForceType string

// SecurityType FOREX, BOND, EQUITY, FUTURE, CFD, OPTION, CRYPTO, CRYPTO_PERPETUAL
type SecurityType string

// Global enums
const (
	SideTypeBuy  SideType = "BUY"
	SideTypeSell SideType = "SELL"

	OrderTypeMarket     OrderType = "MARKET"
	OrderTypeLimit      OrderType = "LIMIT"
	OrderTypeStopMarket OrderType = "STOP_MARKET"
	OrderTypeStopLimit  OrderType = "STOP_LIMIT"

	OrderStateInitialized     OrderState = "INITIALIZED"
	OrderStateSubmitted       OrderState = "SUBMITTED"
	OrderStateAccepted        OrderState = "ACCEPTED"
	OrderStateRejected        OrderState = "REJECTED"
	OrderStateWorking         OrderState = "WORKING"
	OrderStateCancelled       OrderState = "CANCELLED"
	OrderStateExpired         OrderState = "EXPIRED"
	OrderStatePartiallyFilled OrderState = "PARTIALLY_FILLED"
	OrderStateFilled          OrderState = "FILLED"

	SecurityTypeForex           SecurityType = "FOREX"
	SecurityTypeBond            SecurityType = "BOND"
	SecurityTypeEquity          SecurityType = "EQUITY"
	SecurityTypeFuture          SecurityType = "FUTURE"
	SecurityTypeCFD             SecurityType = "CFD"
	SecurityTypeOption          SecurityType = "OPTION"
	SecurityTypeCrypto          SecurityType = "CRYPTO"
	SecurityTypeCryptoPerpetual SecurityType = "CRYPTO_PERPETUAL"

	// Good Till Cancel 成交为止, 一直有效直到被取消
	TimeInForceGTC TimeInForceType = "GTC"
	// Immediate or Cancel 无法立即成交的部分就撤销
	TimeInForceIOC TimeInForceType = "IOC"
	// Fill or Kill 无法全部立即成交就撤销
	TimeInForceFOK TimeInForceType = "FOK"
	// GTD - Good Till Date 在指定时间之前有效, 到期自动撤销
	TimeInForceGTD TimeInForceType = "GTD"
	// Day 当日有效
	TimeInForceDay TimeInForceType = "DAY"
)

var (
	// ErrInvalidOrder 订单字段不满足约束
	ErrInvalidOrder = errors.New("invalid order")
	// ErrInvalidAccount 账户快照不满足约束
	ErrInvalidAccount = errors.New("invalid account state")
	// ErrInvalidInstrument 标的物定义不满足约束
	ErrInvalidInstrument = errors.New("invalid instrument")
	// ErrInvalidBar K线数据不满足约束
	ErrInvalidBar = errors.New("invalid bar")
	// ErrInvalidBarType K线规格字符串格式错误
	ErrInvalidBarType = errors.New("invalid bar type")
	// ErrInvalidTick 行情数据不满足约束
	ErrInvalidTick = errors.New("invalid tick")
)
