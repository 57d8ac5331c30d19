package taglog

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/go-gotop/wire/fieldtag"
)

type Option func(*options)

type options struct {
	registry *fieldtag.Registry
	sinks    []Sink
	level    log.Level
	prefix   string
	now      func() time.Time
}

func defaultOptions() *options {
	return &options{
		registry: fieldtag.Default(),
		level:    log.LevelDebug,
		prefix:   "log",
		now:      time.Now,
	}
}

func WithSinks(sinks ...Sink) Option {
	return func(o *options) {
		o.sinks = sinks
	}
}

func WithRegistry(r *fieldtag.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithLevel 设置最小日志级别, 默认DEBUG。
func WithLevel(level log.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithPrefix 设置存储键前缀, 默认log。
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithTimeFunc 注入时钟, 供测试使用。
func WithTimeFunc(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
