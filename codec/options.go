package codec

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/go-gotop/wire/fieldtag"
)

type Option func(*options)

type options struct {
	registry *fieldtag.Registry
	logger   *log.Helper
}

func defaultOptions() *options {
	return &options{
		registry: fieldtag.Default(),
		logger:   log.NewHelper(log.DefaultLogger),
	}
}

// WithRegistry 指定字段注册表, 默认使用进程级默认注册表。
func WithRegistry(r *fieldtag.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithLogger 指定日志Helper。
func WithLogger(logger *log.Helper) Option {
	return func(o *options) {
		o.logger = logger
	}
}
