package codec

import (
	"fmt"

	"github.com/go-gotop/wire/entity"
	"github.com/go-gotop/wire/fieldtag"
)

// LogCodec 日志记录编解码器, 日志子系统与其余消息共用同一套词汇表。
type LogCodec struct {
	base
}

func NewLogCodec(opts ...Option) *LogCodec {
	return &LogCodec{base: newBase(opts...)}
}

func (c *LogCodec) Encode(rec *entity.LogRecord) (Document, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil log record", ErrInvalidDocument)
	}
	w := c.writer()
	w.putStr(fieldtag.FieldLogLevel, string(rec.Level))
	w.putStr(fieldtag.FieldLogText, rec.Text)
	w.putInt(fieldtag.FieldThreadID, rec.ThreadID)
	w.putNanos(fieldtag.FieldTimestamp, rec.Timestamp)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *LogCodec) Decode(doc Document) (*entity.LogRecord, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	rec := &entity.LogRecord{
		Level:     entity.LogLevel(r.str(fieldtag.FieldLogLevel)),
		Text:      r.str(fieldtag.FieldLogText),
		ThreadID:  r.i64(fieldtag.FieldThreadID),
		Timestamp: r.nanos(fieldtag.FieldTimestamp),
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	return rec, nil
}

func (c *LogCodec) Marshal(rec *entity.LogRecord) ([]byte, error) {
	doc, err := c.Encode(rec)
	if err != nil {
		return nil, err
	}
	return Marshal(doc)
}

func (c *LogCodec) Unmarshal(data []byte) (*entity.LogRecord, error) {
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return c.Decode(doc)
}
