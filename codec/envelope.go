package codec

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/go-gotop/wire/entity"
	"github.com/go-gotop/wire/fieldtag"
)

// MessageType 消息类型 ORDER, BRACKET_ORDER, ACCOUNT, INSTRUMENT, BAR, QUOTE_TICK, TRADE_TICK, DATA_QUERY, LOG
type MessageType string

const (
	MessageTypeOrder        MessageType = "ORDER"
	MessageTypeBracketOrder MessageType = "BRACKET_ORDER"
	MessageTypeAccount      MessageType = "ACCOUNT"
	MessageTypeInstrument   MessageType = "INSTRUMENT"
	MessageTypeBar          MessageType = "BAR"
	MessageTypeQuoteTick    MessageType = "QUOTE_TICK"
	MessageTypeTradeTick    MessageType = "TRADE_TICK"
	MessageTypeDataQuery    MessageType = "DATA_QUERY"
	MessageTypeLog          MessageType = "LOG"
)

// Envelope 消息信封, 为载荷附加类型标识、消息ID与发送时间。
type Envelope struct {
	Type      MessageType
	ID        string
	Timestamp entity.UnixNanos
}

// NewEnvelope 生成带随机消息ID的信封。
func NewEnvelope(t MessageType, ts entity.UnixNanos) Envelope {
	return Envelope{
		Type:      t,
		ID:        uuid.New().String(),
		Timestamp: ts,
	}
}

// Wrap 将信封头写入载荷, 返回新结构, 不修改原载荷。
// 命名空间是扁平的, 信封时间戳即消息时间戳, 会覆盖载荷中的Timestamp键。
func Wrap(env Envelope, payload Document) Document {
	doc := payload.Clone()
	doc[fieldtag.MustKey(fieldtag.FieldType)] = string(env.Type)
	doc[fieldtag.MustKey(fieldtag.FieldID)] = env.ID
	doc[fieldtag.MustKey(fieldtag.FieldTimestamp)] = env.Timestamp.String()
	return doc
}

// Unwrap 从结构中分离信封头, 返回信封与去头后的载荷。
// 消息ID必须是合法UUID。Timestamp键与载荷共用, 保留在载荷中。
func Unwrap(doc Document) (Envelope, Document, error) {
	var env Envelope

	typeKey := fieldtag.MustKey(fieldtag.FieldType)
	idKey := fieldtag.MustKey(fieldtag.FieldID)
	tsKey := fieldtag.MustKey(fieldtag.FieldTimestamp)

	rawType, ok := doc[typeKey].(string)
	if !ok || rawType == "" {
		return env, nil, fmt.Errorf("%w: %s", ErrMissingField, typeKey)
	}
	rawID, ok := doc[idKey].(string)
	if !ok || rawID == "" {
		return env, nil, fmt.Errorf("%w: %s", ErrMissingField, idKey)
	}
	if _, err := uuid.Parse(rawID); err != nil {
		return env, nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, idKey, err)
	}
	rawTS, ok := doc[tsKey].(string)
	if !ok || rawTS == "" {
		return env, nil, fmt.Errorf("%w: %s", ErrMissingField, tsKey)
	}
	ts, err := entity.ParseNanos(rawTS)
	if err != nil {
		return env, nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, tsKey, err)
	}

	env.Type = MessageType(rawType)
	env.ID = rawID
	env.Timestamp = ts

	payload := doc.Clone()
	delete(payload, typeKey)
	delete(payload, idKey)
	return env, payload, nil
}
