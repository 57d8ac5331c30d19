package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BarAggregation TICK, SECOND, MINUTE, HOUR, DAY
type BarAggregation string

// PriceType BID, ASK, MID, LAST
type PriceType string

const (
	BarAggregationTick   BarAggregation = "TICK"
	BarAggregationSecond BarAggregation = "SECOND"
	BarAggregationMinute BarAggregation = "MINUTE"
	BarAggregationHour   BarAggregation = "HOUR"
	BarAggregationDay    BarAggregation = "DAY"

	PriceTypeBid  PriceType = "BID"
	PriceTypeAsk  PriceType = "ASK"
	PriceTypeMid  PriceType = "MID"
	PriceTypeLast PriceType = "LAST"
)

// BarType K线规格: 标的物 + 周期步长 + 聚合方式 + 价格类型。
// 规范字符串形式为 SYMBOL.VENUE-STEP-AGGREGATION-PRICETYPE,
// 例如 BTC/USDT.BINANCE-1-MINUTE-BID。
type BarType struct {
	Symbol      string
	Venue       string
	Step        int
	Aggregation BarAggregation
	PriceType   PriceType
}

// String 返回规范字符串形式。
func (b BarType) String() string {
	return fmt.Sprintf("%s.%s-%d-%s-%s", b.Symbol, b.Venue, b.Step, b.Aggregation, b.PriceType)
}

// Duration 返回一个周期的时长, TICK聚合返回0。
func (b BarType) Duration() time.Duration {
	switch b.Aggregation {
	case BarAggregationSecond:
		return time.Duration(b.Step) * time.Second
	case BarAggregationMinute:
		return time.Duration(b.Step) * time.Minute
	case BarAggregationHour:
		return time.Duration(b.Step) * time.Hour
	case BarAggregationDay:
		return time.Duration(b.Step) * 24 * time.Hour
	default:
		return 0
	}
}

// ParseBarType 解析规范字符串形式的K线规格。
func ParseBarType(s string) (BarType, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 4 {
		return BarType{}, fmt.Errorf("%w: %q", ErrInvalidBarType, s)
	}
	// 标的物名称自身可能包含连字符, 倒数三段固定为 步长-聚合-价格类型
	spec := parts[len(parts)-3:]
	id := strings.Join(parts[:len(parts)-3], "-")
	dot := strings.LastIndex(id, ".")
	if dot <= 0 || dot == len(id)-1 {
		return BarType{}, fmt.Errorf("%w: %q", ErrInvalidBarType, s)
	}
	step, err := strconv.Atoi(spec[0])
	if err != nil || step <= 0 {
		return BarType{}, fmt.Errorf("%w: step %q", ErrInvalidBarType, spec[0])
	}
	agg := BarAggregation(spec[1])
	switch agg {
	case BarAggregationTick, BarAggregationSecond, BarAggregationMinute, BarAggregationHour, BarAggregationDay:
	default:
		return BarType{}, fmt.Errorf("%w: aggregation %q", ErrInvalidBarType, spec[1])
	}
	pt := PriceType(spec[2])
	switch pt {
	case PriceTypeBid, PriceTypeAsk, PriceTypeMid, PriceTypeLast:
	default:
		return BarType{}, fmt.Errorf("%w: price type %q", ErrInvalidBarType, spec[2])
	}
	return BarType{
		Symbol:      id[:dot],
		Venue:       id[dot+1:],
		Step:        step,
		Aggregation: agg,
		PriceType:   pt,
	}, nil
}

// Bar K线。
type Bar struct {
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    decimal.Decimal
	Timestamp UnixNanos
}

// Validate 校验OHLC关系。
func (b *Bar) Validate() error {
	if b.High.LessThan(b.Low) {
		return fmt.Errorf("%w: high %s below low %s", ErrInvalidBar, b.High, b.Low)
	}
	if b.High.LessThan(b.Open) || b.High.LessThan(b.Close) {
		return fmt.Errorf("%w: high %s below open/close", ErrInvalidBar, b.High)
	}
	if b.Low.GreaterThan(b.Open) || b.Low.GreaterThan(b.Close) {
		return fmt.Errorf("%w: low %s above open/close", ErrInvalidBar, b.Low)
	}
	if b.Volume.IsNegative() {
		return fmt.Errorf("%w: negative volume %s", ErrInvalidBar, b.Volume)
	}
	return nil
}

// QuoteTick 买卖盘口报价。
type QuoteTick struct {
	Symbol    string
	Venue     string
	Bid       decimal.Decimal
	Ask       decimal.Decimal
	BidSize   decimal.Decimal
	AskSize   decimal.Decimal
	Timestamp UnixNanos
}

// Validate 校验报价基本约束。
func (q *QuoteTick) Validate() error {
	if q.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidTick)
	}
	if !q.Bid.IsPositive() || !q.Ask.IsPositive() {
		return fmt.Errorf("%w: bid/ask %s/%s", ErrInvalidTick, q.Bid, q.Ask)
	}
	if q.BidSize.IsNegative() || q.AskSize.IsNegative() {
		return fmt.Errorf("%w: negative size", ErrInvalidTick)
	}
	return nil
}

// TradeTick 逐笔成交。
type TradeTick struct {
	Symbol    string
	Venue     string
	TradeID   string
	Price     decimal.Decimal
	Size      decimal.Decimal
	Side      SideType
	Timestamp UnixNanos
}

// Validate 校验逐笔成交基本约束。
func (t *TradeTick) Validate() error {
	if t.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidTick)
	}
	if t.Side != SideTypeBuy && t.Side != SideTypeSell {
		return fmt.Errorf("%w: side %q", ErrInvalidTick, t.Side)
	}
	if !t.Price.IsPositive() || !t.Size.IsPositive() {
		return fmt.Errorf("%w: price/size %s/%s", ErrInvalidTick, t.Price, t.Size)
	}
	return nil
}

// DataQuery 历史数据查询条件。
type DataQuery struct {
	// K线规格, 查询K线时必填
	BarType BarType
	// 标的物与场所, 查询报价/逐笔时必填
	Symbol string
	Venue  string
	// 起止时间, 闭区间, 零值表示不限
	FromDateTime UnixNanos
	ToDateTime   UnixNanos
	// 最大返回条数, 0表示不限制
	Limit int64
}
