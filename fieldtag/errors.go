package fieldtag

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField 编码方向: 语义字段未注册。属于程序错误, 调用方应快速失败
	ErrUnknownField = errors.New("unknown field")
	// ErrUnrecognizedKey 解码方向: 线上键未注册。前向兼容场景下的预期条件,
	// 解码方跳过该字段继续处理, 不得中断整条报文
	ErrUnrecognizedKey = errors.New("unrecognized key")
	// ErrCollision 构造校验: 同一线上键或同一字段被冲突地定义了两次
	ErrCollision = errors.New("schema collision")
	// ErrInvalidEntry 构造校验: 空字段或空键
	ErrInvalidEntry = errors.New("invalid schema entry")
)

// UnknownFieldError 携带未注册的字段, errors.Is 匹配 ErrUnknownField。
type UnknownFieldError struct {
	Field Field
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: Field(%d)", int(e.Field))
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// UnrecognizedKeyError 携带未注册的线上键, errors.Is 匹配 ErrUnrecognizedKey。
type UnrecognizedKeyError struct {
	Key string
}

func (e *UnrecognizedKeyError) Error() string {
	return fmt.Sprintf("unrecognized key: %q", e.Key)
}

func (e *UnrecognizedKeyError) Unwrap() error {
	return ErrUnrecognizedKey
}
