package loader

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-gotop/wire/entity"
)

// TradeTickLoader 加载Tardis格式的逐笔成交CSV文件,
// 列: local_timestamp,id,amount,price,side,symbol。
// local_timestamp为微秒时间戳, id即成交ID, amount即成交数量, side统一为大写。
type TradeTickLoader struct {
	path string
	opts *options
}

func NewTradeTickLoader(path string, opts ...Option) *TradeTickLoader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &TradeTickLoader{path: path, opts: o}
}

func (l *TradeTickLoader) Load(ctx context.Context) ([]*entity.TradeTick, error) {
	ticks := make([]*entity.TradeTick, 0, 1024)
	err := readRows(ctx, l.path, func(line int, header, record []string) error {
		if line == 2 {
			if err := requireColumns(header, "local_timestamp", "id", "amount", "price", "side"); err != nil {
				return err
			}
		}
		tick := &entity.TradeTick{Venue: l.opts.venue}
		for i, value := range record {
			if i >= len(header) {
				break
			}
			switch header[i] {
			case "local_timestamp":
				micros, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return badRow(line, "local_timestamp", err)
				}
				tick.Timestamp = entity.NanosFromMicros(micros)
			case "id":
				tick.TradeID = value
			case "amount":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "amount", err)
				}
				tick.Size = d
			case "price":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "price", err)
				}
				tick.Price = d
			case "side":
				tick.Side = entity.SideType(strings.ToUpper(value))
			case "symbol":
				if tick.Symbol == "" {
					tick.Symbol = value
				}
			}
		}
		// WithSymbol优先于文件内的symbol列
		if l.opts.symbol != "" {
			tick.Symbol = l.opts.symbol
		}
		if l.opts.inRange(tick.Timestamp) {
			ticks = append(ticks, tick)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.opts.logger.Debugf("loaded %d trade ticks from %s", len(ticks), l.path)
	return ticks, nil
}
