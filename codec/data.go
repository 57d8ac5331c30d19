package codec

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-gotop/wire/entity"
	"github.com/go-gotop/wire/fieldtag"
)

// DataCodec 行情数据编解码器: 查询条件、K线、报价与逐笔成交。
// K线与Tick在线上采用紧凑串形式, 挂在Bar/Bars/Tick/Ticks键下,
// K线规格与标的物作为兄弟键提供上下文。
type DataCodec struct {
	base
}

func NewDataCodec(opts ...Option) *DataCodec {
	return &DataCodec{base: newBase(opts...)}
}

// EncodeQuery 编码查询条件。K线查询携带BarType, Tick查询携带Symbol/Venue。
func (c *DataCodec) EncodeQuery(q *entity.DataQuery) (Document, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: nil query", ErrInvalidDocument)
	}
	w := c.writer()
	if q.BarType.Step > 0 {
		w.putStr(fieldtag.FieldBarType, q.BarType.String())
	} else {
		w.putStr(fieldtag.FieldBarType, "")
	}
	w.putStr(fieldtag.FieldSymbol, q.Symbol)
	w.putStr(fieldtag.FieldVenue, q.Venue)
	w.putNanos(fieldtag.FieldFromDateTime, q.FromDateTime)
	w.putNanos(fieldtag.FieldToDateTime, q.ToDateTime)
	w.putInt(fieldtag.FieldLimit, q.Limit)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *DataCodec) DecodeQuery(doc Document) (*entity.DataQuery, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	q := &entity.DataQuery{
		Symbol:       r.str(fieldtag.FieldSymbol),
		Venue:        r.str(fieldtag.FieldVenue),
		FromDateTime: r.nanos(fieldtag.FieldFromDateTime),
		ToDateTime:   r.nanos(fieldtag.FieldToDateTime),
		Limit:        r.i64(fieldtag.FieldLimit),
	}
	rawBarType := r.str(fieldtag.FieldBarType)
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	if rawBarType != "" {
		bt, err := entity.ParseBarType(rawBarType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		q.BarType = bt
	}
	return q, nil
}

// EncodeBar 单根K线: {BarType, Bar}。
func (c *DataCodec) EncodeBar(bt entity.BarType, b *entity.Bar) (Document, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil bar", ErrInvalidDocument)
	}
	w := c.writer()
	w.putStr(fieldtag.FieldBarType, bt.String())
	w.putStr(fieldtag.FieldBar, formatBar(b))
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *DataCodec) DecodeBar(doc Document) (entity.BarType, *entity.Bar, error) {
	if doc == nil {
		return entity.BarType{}, nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	rawBarType := r.str(fieldtag.FieldBarType)
	rawBar := r.str(fieldtag.FieldBar)
	if r.err != nil {
		return entity.BarType{}, nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	bt, err := entity.ParseBarType(rawBarType)
	if err != nil {
		return entity.BarType{}, nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	b, err := parseBar(rawBar)
	if err != nil {
		return entity.BarType{}, nil, err
	}
	return bt, b, nil
}

// EncodeBars K线批量: {BarType, Bars}, 供历史数据响应使用。
func (c *DataCodec) EncodeBars(bt entity.BarType, bars []*entity.Bar) (Document, error) {
	rendered := make([]string, 0, len(bars))
	for i, b := range bars {
		if b == nil {
			return nil, fmt.Errorf("%w: nil bar at %d", ErrInvalidDocument, i)
		}
		rendered = append(rendered, formatBar(b))
	}
	w := c.writer()
	w.putStr(fieldtag.FieldBarType, bt.String())
	w.putStrs(fieldtag.FieldBars, rendered)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *DataCodec) DecodeBars(doc Document) (entity.BarType, []*entity.Bar, error) {
	if doc == nil {
		return entity.BarType{}, nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	rawBarType := r.str(fieldtag.FieldBarType)
	rawBars := r.strs(fieldtag.FieldBars)
	if r.err != nil {
		return entity.BarType{}, nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	bt, err := entity.ParseBarType(rawBarType)
	if err != nil {
		return entity.BarType{}, nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	bars := make([]*entity.Bar, 0, len(rawBars))
	for _, s := range rawBars {
		b, err := parseBar(s)
		if err != nil {
			return entity.BarType{}, nil, err
		}
		bars = append(bars, b)
	}
	return bt, bars, nil
}

// EncodeQuote 单笔报价: {Symbol, Venue, Tick}。
func (c *DataCodec) EncodeQuote(q *entity.QuoteTick) (Document, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: nil quote tick", ErrInvalidDocument)
	}
	w := c.writer()
	w.putStr(fieldtag.FieldSymbol, q.Symbol)
	w.putStr(fieldtag.FieldVenue, q.Venue)
	w.putStr(fieldtag.FieldTick, formatQuote(q))
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *DataCodec) DecodeQuote(doc Document) (*entity.QuoteTick, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	symbol := r.str(fieldtag.FieldSymbol)
	venue := r.str(fieldtag.FieldVenue)
	rawTick := r.str(fieldtag.FieldTick)
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	q, err := parseQuote(rawTick)
	if err != nil {
		return nil, err
	}
	q.Symbol = symbol
	q.Venue = venue
	return q, nil
}

// EncodeQuotes 报价批量: {Symbol, Venue, Ticks}。
func (c *DataCodec) EncodeQuotes(symbol, venue string, ticks []*entity.QuoteTick) (Document, error) {
	rendered := make([]string, 0, len(ticks))
	for i, q := range ticks {
		if q == nil {
			return nil, fmt.Errorf("%w: nil quote tick at %d", ErrInvalidDocument, i)
		}
		rendered = append(rendered, formatQuote(q))
	}
	w := c.writer()
	w.putStr(fieldtag.FieldSymbol, symbol)
	w.putStr(fieldtag.FieldVenue, venue)
	w.putStrs(fieldtag.FieldTicks, rendered)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *DataCodec) DecodeQuotes(doc Document) ([]*entity.QuoteTick, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	symbol := r.str(fieldtag.FieldSymbol)
	venue := r.str(fieldtag.FieldVenue)
	rawTicks := r.strs(fieldtag.FieldTicks)
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	ticks := make([]*entity.QuoteTick, 0, len(rawTicks))
	for _, s := range rawTicks {
		q, err := parseQuote(s)
		if err != nil {
			return nil, err
		}
		q.Symbol = symbol
		q.Venue = venue
		ticks = append(ticks, q)
	}
	return ticks, nil
}

// EncodeTrade 单笔逐笔成交: {Symbol, Venue, Tick}。
func (c *DataCodec) EncodeTrade(t *entity.TradeTick) (Document, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil trade tick", ErrInvalidDocument)
	}
	w := c.writer()
	w.putStr(fieldtag.FieldSymbol, t.Symbol)
	w.putStr(fieldtag.FieldVenue, t.Venue)
	w.putStr(fieldtag.FieldTick, formatTrade(t))
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *DataCodec) DecodeTrade(doc Document) (*entity.TradeTick, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	symbol := r.str(fieldtag.FieldSymbol)
	venue := r.str(fieldtag.FieldVenue)
	rawTick := r.str(fieldtag.FieldTick)
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	t, err := parseTrade(rawTick)
	if err != nil {
		return nil, err
	}
	t.Symbol = symbol
	t.Venue = venue
	return t, nil
}

// EncodeTrades 逐笔成交批量: {Symbol, Venue, Ticks}。
func (c *DataCodec) EncodeTrades(symbol, venue string, ticks []*entity.TradeTick) (Document, error) {
	rendered := make([]string, 0, len(ticks))
	for i, t := range ticks {
		if t == nil {
			return nil, fmt.Errorf("%w: nil trade tick at %d", ErrInvalidDocument, i)
		}
		rendered = append(rendered, formatTrade(t))
	}
	w := c.writer()
	w.putStr(fieldtag.FieldSymbol, symbol)
	w.putStr(fieldtag.FieldVenue, venue)
	w.putStrs(fieldtag.FieldTicks, rendered)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *DataCodec) DecodeTrades(doc Document) ([]*entity.TradeTick, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	symbol := r.str(fieldtag.FieldSymbol)
	venue := r.str(fieldtag.FieldVenue)
	rawTicks := r.strs(fieldtag.FieldTicks)
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	ticks := make([]*entity.TradeTick, 0, len(rawTicks))
	for _, s := range rawTicks {
		t, err := parseTrade(s)
		if err != nil {
			return nil, err
		}
		t.Symbol = symbol
		t.Venue = venue
		ticks = append(ticks, t)
	}
	return ticks, nil
}

// 紧凑串形式:
//
//	K线   open,high,low,close,volume,timestamp
//	报价  bid,ask,bid_size,ask_size,timestamp
//	成交  price,size,side,trade_id,timestamp

func formatBar(b *entity.Bar) string {
	return strings.Join([]string{
		b.Open.String(),
		b.High.String(),
		b.Low.String(),
		b.Close.String(),
		b.Volume.String(),
		b.Timestamp.String(),
	}, ",")
}

func parseBar(s string) (*entity.Bar, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: bar %q", ErrInvalidDocument, s)
	}
	vals := make([]decimal.Decimal, 5)
	for i := 0; i < 5; i++ {
		d, err := decimal.NewFromString(parts[i])
		if err != nil {
			return nil, fmt.Errorf("%w: bar %q: %v", ErrInvalidDocument, s, err)
		}
		vals[i] = d
	}
	ts, err := entity.ParseNanos(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: bar %q: %v", ErrInvalidDocument, s, err)
	}
	return &entity.Bar{
		Open:      vals[0],
		High:      vals[1],
		Low:       vals[2],
		Close:     vals[3],
		Volume:    vals[4],
		Timestamp: ts,
	}, nil
}

func formatQuote(q *entity.QuoteTick) string {
	return strings.Join([]string{
		q.Bid.String(),
		q.Ask.String(),
		q.BidSize.String(),
		q.AskSize.String(),
		q.Timestamp.String(),
	}, ",")
}

func parseQuote(s string) (*entity.QuoteTick, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return nil, fmt.Errorf("%w: quote tick %q", ErrInvalidDocument, s)
	}
	vals := make([]decimal.Decimal, 4)
	for i := 0; i < 4; i++ {
		d, err := decimal.NewFromString(parts[i])
		if err != nil {
			return nil, fmt.Errorf("%w: quote tick %q: %v", ErrInvalidDocument, s, err)
		}
		vals[i] = d
	}
	ts, err := entity.ParseNanos(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: quote tick %q: %v", ErrInvalidDocument, s, err)
	}
	return &entity.QuoteTick{
		Bid:       vals[0],
		Ask:       vals[1],
		BidSize:   vals[2],
		AskSize:   vals[3],
		Timestamp: ts,
	}, nil
}

func formatTrade(t *entity.TradeTick) string {
	return strings.Join([]string{
		t.Price.String(),
		t.Size.String(),
		string(t.Side),
		t.TradeID,
		t.Timestamp.String(),
	}, ",")
}

func parseTrade(s string) (*entity.TradeTick, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return nil, fmt.Errorf("%w: trade tick %q", ErrInvalidDocument, s)
	}
	price, err := decimal.NewFromString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: trade tick %q: %v", ErrInvalidDocument, s, err)
	}
	size, err := decimal.NewFromString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: trade tick %q: %v", ErrInvalidDocument, s, err)
	}
	ts, err := entity.ParseNanos(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: trade tick %q: %v", ErrInvalidDocument, s, err)
	}
	return &entity.TradeTick{
		TradeID:   parts[3],
		Price:     price,
		Size:      size,
		Side:      entity.SideType(parts[2]),
		Timestamp: ts,
	}, nil
}
