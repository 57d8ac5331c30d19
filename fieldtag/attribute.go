package fieldtag

import (
	"go.opentelemetry.io/otel/attribute"
)

// Attribute 返回字段对应的追踪属性键, 与线上键同名,
// 使span属性与协议报文共用同一套字段词汇。
func (f Field) Attribute() attribute.Key {
	return attribute.Key(MustKey(f))
}

// OrderAttributes 订单相关的追踪属性集合。
func OrderAttributes(orderID, symbol, venue string) []attribute.KeyValue {
	return []attribute.KeyValue{
		FieldOrderID.Attribute().String(orderID),
		FieldSymbol.Attribute().String(symbol),
		FieldVenue.Attribute().String(venue),
	}
}

// AccountAttributes 账户相关的追踪属性集合。
func AccountAttributes(accountID, currency string) []attribute.KeyValue {
	return []attribute.KeyValue{
		FieldAccountID.Attribute().String(accountID),
		FieldCurrency.Attribute().String(currency),
	}
}

// LogAttributes 日志记录的追踪属性集合。
func LogAttributes(level string, threadID int64) []attribute.KeyValue {
	return []attribute.KeyValue{
		FieldLogLevel.Attribute().String(level),
		FieldThreadID.Attribute().Int64(threadID),
	}
}
