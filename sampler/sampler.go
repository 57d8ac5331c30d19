package sampler

import (
	"errors"

	"github.com/go-gotop/wire/entity"
)

// ErrUnsupportedAggregation K线规格的聚合方式无法确定采样窗口
var ErrUnsupportedAggregation = errors.New("unsupported aggregation")

// Sampler is the interface that wraps the basic Push method.
type Sampler interface {
	// Push feeds one trade tick into the sampler and returns the
	// completed bar when the tick falls outside the open window,
	// otherwise nil
	Push(t *entity.TradeTick) *entity.Bar
	// Flush closes the open window and returns its partial bar, if any
	Flush() *entity.Bar
}
