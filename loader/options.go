package loader

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/go-gotop/wire/entity"
)

type Option func(*options)

type options struct {
	logger     *log.Helper
	symbol     string
	venue      string
	timeLayout string
	start      entity.UnixNanos
	end        entity.UnixNanos
}

func defaultOptions() *options {
	return &options{
		logger:     log.NewHelper(log.DefaultLogger),
		timeLayout: time.RFC3339,
	}
}

func WithLogger(logger *log.Helper) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSymbol 覆盖数据行上的标的物名称。
func WithSymbol(symbol string) Option {
	return func(o *options) {
		o.symbol = symbol
	}
}

// WithVenue 指定数据行的交易场所。
func WithVenue(venue string) Option {
	return func(o *options) {
		o.venue = venue
	}
}

// WithTimeLayout 指定timestamp列的时间格式, 默认RFC3339。
func WithTimeLayout(layout string) Option {
	return func(o *options) {
		o.timeLayout = layout
	}
}

// WithStart 只保留不早于start的数据行。
func WithStart(start entity.UnixNanos) Option {
	return func(o *options) {
		o.start = start
	}
}

// WithEnd 只保留不晚于end的数据行。
func WithEnd(end entity.UnixNanos) Option {
	return func(o *options) {
		o.end = end
	}
}

// inRange 闭区间过滤, 零值边界表示不限。
func (o *options) inRange(ts entity.UnixNanos) bool {
	if !o.start.IsZero() && ts.Before(o.start) {
		return false
	}
	if !o.end.IsZero() && ts.After(o.end) {
		return false
	}
	return true
}
