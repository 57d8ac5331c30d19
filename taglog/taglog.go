// Package taglog 将日志渲染为字段词汇表键控的结构后写入各sink,
// 日志与协议报文共用同一套LogLevel/LogText/ThreadId词汇。
package taglog

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/go-gotop/wire/codec"
	"github.com/go-gotop/wire/entity"
)

// Logger 是一个log.Logger, 将日志编码为标签文档后分发到sink。
type Logger struct {
	service string
	opts    *options
	codec   *codec.LogCodec
}

var _ log.Logger = (*Logger)(nil)

func NewLogger(service string, opts ...Option) *Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if len(o.sinks) == 0 {
		o.sinks = []Sink{NewStdSink(os.Stdout)}
	}
	return &Logger{
		service: service,
		opts:    o,
		codec:   codec.NewLogCodec(codec.WithRegistry(o.registry)),
	}
}

// Log 实现了log.Logger接口。低于最小级别的日志直接丢弃,
// 单个sink写入失败不阻断其余sink, 也不向调用方传播。
func (l *Logger) Log(level log.Level, keyvals ...interface{}) error {
	if level < l.opts.level {
		return nil
	}
	rec := &entity.LogRecord{
		Timestamp: entity.NanosFromTime(l.opts.now()),
		Level:     levelOf(level),
		ThreadID:  goroutineID(),
		Text:      formatKeyvals(keyvals),
	}
	payload, err := l.codec.Marshal(rec)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s:%s:%d", l.opts.prefix, l.service, int64(rec.Timestamp))
	for _, sink := range l.opts.sinks {
		if err := sink.Write(context.Background(), key, payload); err != nil {
			log.Errorf("taglog: sink write: %v", err)
		}
	}
	return nil
}

// Close 关闭全部sink, 返回遇到的第一个错误。
func (l *Logger) Close() error {
	var first error
	for _, sink := range l.opts.sinks {
		if err := sink.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// levelOf 将日志级别转换为协议级别
func levelOf(level log.Level) entity.LogLevel {
	switch level {
	case log.LevelDebug:
		return entity.LogLevelDebug
	case log.LevelInfo:
		return entity.LogLevelInfo
	case log.LevelWarn:
		return entity.LogLevelWarn
	case log.LevelError:
		return entity.LogLevelError
	case log.LevelFatal:
		return entity.LogLevelFatal
	default:
		return entity.LogLevelInfo
	}
}

// formatKeyvals 遍历键值对, 构造日志内容。
func formatKeyvals(keyvals []interface{}) string {
	var sb strings.Builder
	for i := 0; i < len(keyvals); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i+1 < len(keyvals) {
			fmt.Fprintf(&sb, "%v=%v", keyvals[i], keyvals[i+1])
		} else {
			// 处理键没有值的情况
			fmt.Fprintf(&sb, "%v=MISSING_VALUE", keyvals[i])
		}
	}
	return sb.String()
}

// goroutineID 从运行时栈首行解析当前goroutine ID,
// 形如 "goroutine 123 [running]:", 解析失败返回0。
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
