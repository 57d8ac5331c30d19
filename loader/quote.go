package loader

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/go-gotop/wire/entity"
)

// QuoteTickLoader 加载报价CSV文件, 列: timestamp,bid,ask[,bid_size,ask_size]。
// 缺少盘口数量列时数量为零。
type QuoteTickLoader struct {
	path string
	opts *options
}

func NewQuoteTickLoader(path string, opts ...Option) *QuoteTickLoader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &QuoteTickLoader{path: path, opts: o}
}

func (l *QuoteTickLoader) Load(ctx context.Context) ([]*entity.QuoteTick, error) {
	ticks := make([]*entity.QuoteTick, 0, 1024)
	err := readRows(ctx, l.path, func(line int, header, record []string) error {
		if line == 2 {
			if err := requireColumns(header, "timestamp", "bid", "ask"); err != nil {
				return err
			}
		}
		tick := &entity.QuoteTick{
			Symbol: l.opts.symbol,
			Venue:  l.opts.venue,
		}
		for i, value := range record {
			if i >= len(header) {
				break
			}
			switch header[i] {
			case "timestamp":
				ts, err := parseTimestamp(l.opts.timeLayout, value)
				if err != nil {
					return badRow(line, "timestamp", err)
				}
				tick.Timestamp = ts
			case "bid":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "bid", err)
				}
				tick.Bid = d
			case "ask":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "ask", err)
				}
				tick.Ask = d
			case "bid_size":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "bid_size", err)
				}
				tick.BidSize = d
			case "ask_size":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "ask_size", err)
				}
				tick.AskSize = d
			}
		}
		if l.opts.inRange(tick.Timestamp) {
			ticks = append(ticks, tick)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.opts.logger.Debugf("loaded %d quote ticks from %s", len(ticks), l.path)
	return ticks, nil
}
