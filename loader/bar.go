package loader

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/go-gotop/wire/entity"
)

// BarLoader 加载K线CSV文件, 列: timestamp,open,high,low,close,volume。
type BarLoader struct {
	path string
	opts *options
}

func NewBarLoader(path string, opts ...Option) *BarLoader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &BarLoader{path: path, opts: o}
}

func (l *BarLoader) Load(ctx context.Context) ([]*entity.Bar, error) {
	bars := make([]*entity.Bar, 0, 1024)
	err := readRows(ctx, l.path, func(line int, header, record []string) error {
		if line == 2 {
			if err := requireColumns(header, "timestamp", "open", "high", "low", "close", "volume"); err != nil {
				return err
			}
		}
		bar := &entity.Bar{}
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
				bar.Timestamp = ts
			case "open":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "open", err)
				}
				bar.Open = d
			case "high":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "high", err)
				}
				bar.High = d
			case "low":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "low", err)
				}
				bar.Low = d
			case "close":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "close", err)
				}
				bar.Close = d
			case "volume":
				d, err := decimal.NewFromString(value)
				if err != nil {
					return badRow(line, "volume", err)
				}
				bar.Volume = d
			}
		}
		if l.opts.inRange(bar.Timestamp) {
			bars = append(bars, bar)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.opts.logger.Debugf("loaded %d bars from %s", len(bars), l.path)
	return bars, nil
}
