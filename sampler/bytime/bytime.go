package bytime

import (
	"fmt"

	"github.com/go-gotop/wire/entity"
	"github.com/go-gotop/wire/sampler"
)

// NewByTime 按K线规格的时间窗口聚合逐笔成交, 窗口为左闭右开区间,
// K线时间戳取窗口起点。聚合方式必须是时间型(SECOND/MINUTE/HOUR/DAY)。
// 实例不可并发使用。
func NewByTime(bt entity.BarType) (sampler.Sampler, error) {
	dur := bt.Duration()
	if dur <= 0 {
		return nil, fmt.Errorf("%w: %s", sampler.ErrUnsupportedAggregation, bt.Aggregation)
	}
	return &timeWindow{dur: entity.UnixNanos(dur)}, nil
}

func windowStart(ts, dur entity.UnixNanos) entity.UnixNanos {
	// 当前逐笔数据的时间戳减掉余数
	return ts - ts%dur
}

func toBar(t *entity.TradeTick, start entity.UnixNanos) *entity.Bar {
	return &entity.Bar{
		Open:      t.Price,
		High:      t.Price,
		Low:       t.Price,
		Close:     t.Price,
		Volume:    t.Size,
		Timestamp: start,
	}
}

type timeWindow struct {
	dur entity.UnixNanos
	bar *entity.Bar
}

var _ sampler.Sampler = (*timeWindow)(nil)

func (w *timeWindow) Push(t *entity.TradeTick) (done *entity.Bar) {
	if w.bar == nil {
		w.bar = toBar(t, windowStart(t.Timestamp, w.dur))
		return
	}
	if t.Timestamp >= w.bar.Timestamp+w.dur {
		done = w.bar
		w.bar = toBar(t, windowStart(t.Timestamp, w.dur))
		return
	}
	w.aggregate(t)
	return
}

func (w *timeWindow) Flush() *entity.Bar {
	done := w.bar
	w.bar = nil
	return done
}

func (w *timeWindow) aggregate(t *entity.TradeTick) {
	w.bar.Close = t.Price
	w.bar.Volume = w.bar.Volume.Add(t.Size)
	if t.Price.GreaterThan(w.bar.High) {
		w.bar.High = t.Price
	}
	if t.Price.LessThan(w.bar.Low) {
		w.bar.Low = t.Price
	}
}
