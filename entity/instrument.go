package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Instrument 标的物规格定义。
type Instrument struct {
	// 统一标的物名称
	Symbol string
	// 交易场所
	Venue string
	// 券商侧标的物名称
	BrokerSymbol string
	// 计价货币
	QuoteCurrency string
	// 证券类型
	SecurityType SecurityType
	// 价格精度
	PricePrecision int32
	// 头寸精度
	SizePrecision int32
	// 最小价格变动单位
	TickSize decimal.Decimal
	// 整手单位
	RoundLotSize decimal.Decimal
	// 入场单最小止损距离, 以tick计
	MinStopDistanceEntry int64
	// 改单最小止损距离, 以tick计
	MinStopDistance int64
	// 入场单最小限价距离, 以tick计
	MinLimitDistanceEntry int64
	// 改单最小限价距离, 以tick计
	MinLimitDistance int64
	// 最小头寸
	MinTradeSize decimal.Decimal
	// 最大头寸
	MaxTradeSize decimal.Decimal
	// 多头隔夜利息
	RolloverInterestBuy decimal.Decimal
	// 空头隔夜利息
	RolloverInterestSell decimal.Decimal
	// 定义时间戳
	Timestamp UnixNanos
}

// NewInstrument 构造标的物规格, 定义不满足约束时拒绝。
func NewInstrument(i Instrument) (*Instrument, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return &i, nil
}

// Validate 校验标的物规格约束。
func (i *Instrument) Validate() error {
	if i.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidInstrument)
	}
	if i.Venue == "" {
		return fmt.Errorf("%w: empty venue", ErrInvalidInstrument)
	}
	if i.PricePrecision < 0 {
		return fmt.Errorf("%w: price precision %d", ErrInvalidInstrument, i.PricePrecision)
	}
	if i.SizePrecision < 0 {
		return fmt.Errorf("%w: size precision %d", ErrInvalidInstrument, i.SizePrecision)
	}
	if !i.TickSize.IsPositive() {
		return fmt.Errorf("%w: tick size %s", ErrInvalidInstrument, i.TickSize)
	}
	// tick大小的小数位数不得超过价格精度
	if -i.TickSize.Exponent() > i.PricePrecision {
		return fmt.Errorf("%w: tick size %s exceeds price precision %d", ErrInvalidInstrument, i.TickSize, i.PricePrecision)
	}
	if !i.RoundLotSize.IsPositive() {
		return fmt.Errorf("%w: round lot size %s", ErrInvalidInstrument, i.RoundLotSize)
	}
	if !i.MinTradeSize.IsPositive() || !i.MaxTradeSize.IsPositive() {
		return fmt.Errorf("%w: trade size bounds %s/%s", ErrInvalidInstrument, i.MinTradeSize, i.MaxTradeSize)
	}
	if i.MinTradeSize.GreaterThan(i.MaxTradeSize) {
		return fmt.Errorf("%w: min trade size %s above max %s", ErrInvalidInstrument, i.MinTradeSize, i.MaxTradeSize)
	}
	if i.MinStopDistanceEntry < 0 || i.MinStopDistance < 0 || i.MinLimitDistanceEntry < 0 || i.MinLimitDistance < 0 {
		return fmt.Errorf("%w: negative distance", ErrInvalidInstrument)
	}
	return nil
}
