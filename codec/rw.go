package codec

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/go-gotop/wire/entity"
	"github.com/go-gotop/wire/fieldtag"
)

// base 各实体编解码器共享的底座: 注册表与日志。
type base struct {
	opts *options
}

func newBase(opts ...Option) base {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return base{opts: o}
}

func (b *base) writer() *docWriter {
	return &docWriter{reg: b.opts.registry, doc: Document{}}
}

func (b *base) reader(doc Document) *docReader {
	return &docReader{reg: b.opts.registry, doc: doc}
}

// logUnrecognized 记录前向兼容时跳过的未注册键。
func (b *base) logUnrecognized(doc Document) {
	keys := doc.Unrecognized(b.opts.registry)
	if len(keys) == 0 {
		return
	}
	b.opts.logger.Debugf("skip unrecognized keys: %v", keys)
}

// docWriter 向键值结构写入字段值, 首个错误粘滞, 后续写入全部跳过。
// 写方向任何字段都必须能在注册表解析出线上键, 解析失败属于程序错误。
type docWriter struct {
	reg *fieldtag.Registry
	doc Document
	err error
}

func (w *docWriter) key(f fieldtag.Field) (string, bool) {
	if w.err != nil {
		return "", false
	}
	k, err := w.reg.Lookup(f)
	if err != nil {
		w.err = err
		return "", false
	}
	return k, true
}

// putStr 空字符串写为哨兵值None。
func (w *docWriter) putStr(f fieldtag.Field, v string) {
	k, ok := w.key(f)
	if !ok {
		return
	}
	if v == "" {
		w.doc[k] = ValueNone
		return
	}
	w.doc[k] = v
}

func (w *docWriter) putDec(f fieldtag.Field, v decimal.Decimal) {
	k, ok := w.key(f)
	if !ok {
		return
	}
	w.doc[k] = v.String()
}

// putNanos 零值时间戳写为哨兵值None。
func (w *docWriter) putNanos(f fieldtag.Field, v entity.UnixNanos) {
	k, ok := w.key(f)
	if !ok {
		return
	}
	if v.IsZero() {
		w.doc[k] = ValueNone
		return
	}
	w.doc[k] = v.String()
}

func (w *docWriter) putInt(f fieldtag.Field, v int64) {
	k, ok := w.key(f)
	if !ok {
		return
	}
	w.doc[k] = v
}

func (w *docWriter) putSub(f fieldtag.Field, v Document) {
	k, ok := w.key(f)
	if !ok {
		return
	}
	w.doc[k] = v
}

func (w *docWriter) putStrs(f fieldtag.Field, v []string) {
	k, ok := w.key(f)
	if !ok {
		return
	}
	w.doc[k] = v
}

func (w *docWriter) putDocs(f fieldtag.Field, v []Document) {
	k, ok := w.key(f)
	if !ok {
		return
	}
	w.doc[k] = v
}

// docReader 从键值结构读取字段值, 首个错误粘滞, 后续读取全部跳过。
// 只消费注册表已定义的键; 缺失的键按零值处理, 值类型错误才报错。
type docReader struct {
	reg *fieldtag.Registry
	doc Document
	err error
}

func (r *docReader) value(f fieldtag.Field) (string, interface{}, bool) {
	if r.err != nil {
		return "", nil, false
	}
	k, err := r.reg.Lookup(f)
	if err != nil {
		r.err = err
		return "", nil, false
	}
	v, ok := r.doc[k]
	if !ok || v == nil {
		return k, nil, false
	}
	return k, v, true
}

func (r *docReader) fail(key string, cause interface{}) {
	if r.err == nil {
		r.err = fmt.Errorf("field %s: %v", key, cause)
	}
}

func (r *docReader) str(f fieldtag.Field) string {
	k, v, ok := r.value(f)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(k, fmt.Sprintf("unexpected type %T", v))
		return ""
	}
	if s == ValueNone {
		return ""
	}
	return s
}

func (r *docReader) dec(f fieldtag.Field) decimal.Decimal {
	k, v, ok := r.value(f)
	if !ok {
		return decimal.Zero
	}
	switch t := v.(type) {
	case string:
		if t == ValueNone || t == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(t)
		if err != nil {
			r.fail(k, err)
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(t)
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			r.fail(k, err)
			return decimal.Zero
		}
		return d
	default:
		r.fail(k, fmt.Sprintf("unexpected type %T", v))
		return decimal.Zero
	}
}

func (r *docReader) nanos(f fieldtag.Field) entity.UnixNanos {
	k, v, ok := r.value(f)
	if !ok {
		return 0
	}
	s, ok := v.(string)
	if !ok {
		r.fail(k, fmt.Sprintf("unexpected type %T", v))
		return 0
	}
	if s == ValueNone || s == "" {
		return 0
	}
	n, err := entity.ParseNanos(s)
	if err != nil {
		r.fail(k, err)
		return 0
	}
	return n
}

func (r *docReader) i64(f fieldtag.Field) int64 {
	k, v, ok := r.value(f)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case int64:
		return t
	case float64:
		return int64(t)
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			r.fail(k, err)
			return 0
		}
		return n
	case string:
		if t == ValueNone || t == "" {
			return 0
		}
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			r.fail(k, err)
			return 0
		}
		return n
	default:
		r.fail(k, fmt.Sprintf("unexpected type %T", v))
		return 0
	}
}

func (r *docReader) sub(f fieldtag.Field) Document {
	k, v, ok := r.value(f)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case Document:
		return t
	case map[string]interface{}:
		return Document(t)
	default:
		if s, ok := v.(string); ok && s == ValueNone {
			return nil
		}
		r.fail(k, fmt.Sprintf("unexpected type %T", v))
		return nil
	}
}

func (r *docReader) strs(f fieldtag.Field) []string {
	k, v, ok := r.value(f)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				r.fail(k, fmt.Sprintf("unexpected element type %T", e))
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		r.fail(k, fmt.Sprintf("unexpected type %T", v))
		return nil
	}
}

func (r *docReader) docs(f fieldtag.Field) []Document {
	k, v, ok := r.value(f)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []Document:
		return t
	case []interface{}:
		out := make([]Document, 0, len(t))
		for _, e := range t {
			switch d := e.(type) {
			case Document:
				out = append(out, d)
			case map[string]interface{}:
				out = append(out, Document(d))
			default:
				r.fail(k, fmt.Sprintf("unexpected element type %T", e))
				return nil
			}
		}
		return out
	default:
		r.fail(k, fmt.Sprintf("unexpected type %T", v))
		return nil
	}
}
