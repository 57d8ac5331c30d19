package codec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bitly/go-simplejson"
	jsoniter "github.com/json-iterator/go"

	"github.com/go-gotop/wire/fieldtag"
)

// Redefining the standard package
var Json = jsoniter.ConfigCompatibleWithStandardLibrary

// ValueNone 可选字段缺省时的哨兵值。
const ValueNone = "None"

var (
	// ErrInvalidDocument 字节流不是合法的键值结构
	ErrInvalidDocument = errors.New("invalid document")
	// ErrMissingField 必填字段缺失
	ErrMissingField = errors.New("missing field")
)

// Document 通用键值结构。键一律取自字段注册表中的线上键,
// 值为字符串/数字/嵌套结构, 具体约定由各实体编解码器定义。
type Document map[string]interface{}

// Unrecognized 按字典序返回注册表未定义的键。
// 解码方据此记录前向兼容时跳过的字段。
func (d Document) Unrecognized(r *fieldtag.Registry) []string {
	var keys []string
	for k := range d {
		if !r.Has(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Clone 返回浅拷贝。
func (d Document) Clone() Document {
	doc := make(Document, len(d))
	for k, v := range d {
		doc[k] = v
	}
	return doc
}

// Marshal 将键值结构序列化为JSON字节流。
func Marshal(d Document) ([]byte, error) {
	return Json.Marshal(d)
}

// Unmarshal 将JSON字节流还原为键值结构。
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := Json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return d, nil
}

// ParseDocument 宽松解析外部来源的JSON字节流。
func ParseDocument(data []byte) (Document, error) {
	j, err := simplejson.NewJson(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	m, err := j.Map()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return Document(m), nil
}
