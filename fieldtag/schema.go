package fieldtag

// Entry 将一个语义字段绑定到它的线上键。
type Entry struct {
	Field Field
	Key   string
}

// Schema 一个协议域的字段集合, 若干子模式组合成完整注册表。
type Schema struct {
	Group   Group
	Entries []Entry
}

// CommonSchema 报文公共字段。Currency 在此定义一次,
// 订单/账户/标的物域共用, 不再各自重复定义。
var CommonSchema = Schema{
	Group: GroupCommon,
	Entries: []Entry{
		{FieldType, "Type"},
		{FieldTimestamp, "Timestamp"},
		{FieldVersion, "Version"},
		{FieldCurrency, "Currency"},
		{FieldInfo, "Info"},
		{FieldOptions, "Options"},
	},
}

// IdentitySchema 标识字段。AccountId 在此定义一次, 账户域不再重复定义。
var IdentitySchema = Schema{
	Group: GroupIdentity,
	Entries: []Entry{
		{FieldID, "Id"},
		{FieldTraderID, "TraderId"},
		{FieldStrategyID, "StrategyId"},
		{FieldAccountID, "AccountId"},
		{FieldAccountNumber, "AccountNumber"},
		{FieldBrokerage, "Brokerage"},
		{FieldPositionID, "PositionId"},
		{FieldOrderID, "OrderId"},
		{FieldOrderIDBroker, "OrderIdBroker"},
		{FieldPositionIDBroker, "PositionIdBroker"},
		{FieldExecutionID, "ExecutionId"},
		{FieldInitID, "InitId"},
		{FieldLabel, "Label"},
		{FieldSymbol, "Symbol"},
		{FieldVenue, "Venue"},
	},
}

// OrderSchema 订单条款与生命周期字段。
var OrderSchema = Schema{
	Group: GroupOrder,
	Entries: []Entry{
		{FieldOrder, "Order"},
		{FieldOrderSide, "OrderSide"},
		{FieldOrderType, "OrderType"},
		{FieldQuantity, "Quantity"},
		{FieldPrice, "Price"},
		{FieldTimeInForce, "TimeInForce"},
		{FieldExpireTime, "ExpireTime"},
		{FieldSubmittedTime, "SubmittedTime"},
		{FieldAcceptedTime, "AcceptedTime"},
		{FieldRejectedTime, "RejectedTime"},
		{FieldRejectedResponseTo, "RejectedResponseTo"},
		{FieldRejectedReason, "RejectedReason"},
		{FieldWorkingTime, "WorkingTime"},
		{FieldCancelledTime, "CancelledTime"},
		{FieldModifiedTime, "ModifiedTime"},
		{FieldModifiedQuantity, "ModifiedQuantity"},
		{FieldModifiedPrice, "ModifiedPrice"},
		{FieldExpiredTime, "ExpiredTime"},
		{FieldExecutionTime, "ExecutionTime"},
		{FieldFilledQuantity, "FilledQuantity"},
		{FieldLeavesQuantity, "LeavesQuantity"},
		{FieldAveragePrice, "AveragePrice"},
		{FieldEntry, "Entry"},
		{FieldStopLoss, "StopLoss"},
		{FieldTakeProfit, "TakeProfit"},
	},
}

// AccountSchema 账户资金与保证金字段。
var AccountSchema = Schema{
	Group: GroupAccount,
	Entries: []Entry{
		{FieldCashBalance, "CashBalance"},
		{FieldCashStartDay, "CashStartDay"},
		{FieldCashActivityDay, "CashActivityDay"},
		{FieldMarginUsedLiquidation, "MarginUsedLiquidation"},
		{FieldMarginUsedMaintenance, "MarginUsedMaintenance"},
		{FieldMarginRatio, "MarginRatio"},
		{FieldMarginCallStatus, "MarginCallStatus"},
	},
}

// InstrumentSchema 标的物规格字段。
var InstrumentSchema = Schema{
	Group: GroupInstrument,
	Entries: []Entry{
		{FieldInstrument, "Instrument"},
		{FieldInstruments, "Instruments"},
		{FieldBrokerSymbol, "BrokerSymbol"},
		{FieldQuoteCurrency, "QuoteCurrency"},
		{FieldSecurityType, "SecurityType"},
		{FieldPricePrecision, "PricePrecision"},
		{FieldSizePrecision, "SizePrecision"},
		{FieldTickSize, "TickSize"},
		{FieldRoundLotSize, "RoundLotSize"},
		{FieldMinStopDistanceEntry, "MinStopDistanceEntry"},
		{FieldMinStopDistance, "MinStopDistance"},
		{FieldMinLimitDistanceEntry, "MinLimitDistanceEntry"},
		{FieldMinLimitDistance, "MinLimitDistance"},
		{FieldMinTradeSize, "MinTradeSize"},
		{FieldMaxTradeSize, "MaxTradeSize"},
		{FieldRolloverInterestBuy, "RolloverInterestBuy"},
		{FieldRolloverInterestSell, "RolloverInterestSell"},
	},
}

// DataQuerySchema 历史数据查询与行情载荷字段。
var DataQuerySchema = Schema{
	Group: GroupDataQuery,
	Entries: []Entry{
		{FieldBarType, "BarType"},
		{FieldBar, "Bar"},
		{FieldBars, "Bars"},
		{FieldTick, "Tick"},
		{FieldTicks, "Ticks"},
		{FieldFromDateTime, "FromDateTime"},
		{FieldToDateTime, "ToDateTime"},
		{FieldLimit, "Limit"},
	},
}

// LogSchema 结构化日志字段, 与协议报文共用同一套词汇。
var LogSchema = Schema{
	Group: GroupLog,
	Entries: []Entry{
		{FieldLogLevel, "LogLevel"},
		{FieldLogText, "LogText"},
		{FieldThreadID, "ThreadId"},
	},
}

// Builtin 按固定顺序返回全部内置子模式。
func Builtin() []Schema {
	return []Schema{
		CommonSchema,
		IdentitySchema,
		OrderSchema,
		AccountSchema,
		InstrumentSchema,
		DataQuerySchema,
		LogSchema,
	}
}
