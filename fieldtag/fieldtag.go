package fieldtag

import (
	"fmt"
)

// Field 协议语义字段。每个字段在注册表中绑定唯一的线上键,
// 编码方通过 Lookup 取键, 解码方通过 ReverseLookup 还原字段。
// 零值保留为 FieldUnknown。
type Field int

// Group COMMON, IDENTITY, ORDER, ACCOUNT, INSTRUMENT, DATA_QUERY, LOG
type Group string

const (
	GroupCommon     Group = "COMMON"
	GroupIdentity   Group = "IDENTITY"
	GroupOrder      Group = "ORDER"
	GroupAccount    Group = "ACCOUNT"
	GroupInstrument Group = "INSTRUMENT"
	GroupDataQuery  Group = "DATA_QUERY"
	GroupLog        Group = "LOG"
)

const (
	// FieldUnknown 未注册字段, 反查失败时返回
	FieldUnknown Field = iota

	// 公共字段
	FieldType
	FieldTimestamp
	FieldVersion
	FieldCurrency
	FieldInfo
	FieldOptions

	// 标识字段
	FieldID
	FieldTraderID
	FieldStrategyID
	FieldAccountID
	FieldAccountNumber
	FieldBrokerage
	FieldPositionID
	FieldOrderID
	FieldOrderIDBroker
	FieldPositionIDBroker
	FieldExecutionID
	FieldInitID
	FieldLabel
	FieldSymbol
	FieldVenue

	// 订单生命周期
	FieldOrder
	FieldOrderSide
	FieldOrderType
	FieldQuantity
	FieldPrice
	FieldTimeInForce
	FieldExpireTime
	FieldSubmittedTime
	FieldAcceptedTime
	FieldRejectedTime
	FieldRejectedResponseTo
	FieldRejectedReason
	FieldWorkingTime
	FieldCancelledTime
	FieldModifiedTime
	FieldModifiedQuantity
	FieldModifiedPrice
	FieldExpiredTime
	FieldExecutionTime
	FieldFilledQuantity
	FieldLeavesQuantity
	FieldAveragePrice
	FieldEntry
	FieldStopLoss
	FieldTakeProfit

	// 账户与保证金
	FieldCashBalance
	FieldCashStartDay
	FieldCashActivityDay
	FieldMarginUsedLiquidation
	FieldMarginUsedMaintenance
	FieldMarginRatio
	FieldMarginCallStatus

	// 标的物规格
	FieldInstrument
	FieldInstruments
	FieldBrokerSymbol
	FieldQuoteCurrency
	FieldSecurityType
	FieldPricePrecision
	FieldSizePrecision
	FieldTickSize
	FieldRoundLotSize
	FieldMinStopDistanceEntry
	FieldMinStopDistance
	FieldMinLimitDistanceEntry
	FieldMinLimitDistance
	FieldMinTradeSize
	FieldMaxTradeSize
	FieldRolloverInterestBuy
	FieldRolloverInterestSell

	// 数据查询
	FieldBarType
	FieldBar
	FieldBars
	FieldTick
	FieldTicks
	FieldFromDateTime
	FieldToDateTime
	FieldLimit

	// 日志
	FieldLogLevel
	FieldLogText
	FieldThreadID
)

// String 返回字段在默认注册表中的线上键, 未注册字段返回 Field(n) 形式。
func (f Field) String() string {
	if k, ok := defaultRegistry.key(f); ok {
		return k
	}
	return fmt.Sprintf("Field(%d)", int(f))
}
