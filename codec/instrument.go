package codec

import (
	"fmt"

	"github.com/go-gotop/wire/entity"
	"github.com/go-gotop/wire/fieldtag"
)

// InstrumentCodec 标的物规格编解码器。
type InstrumentCodec struct {
	base
}

func NewInstrumentCodec(opts ...Option) *InstrumentCodec {
	return &InstrumentCodec{base: newBase(opts...)}
}

func (c *InstrumentCodec) Encode(i *entity.Instrument) (Document, error) {
	if i == nil {
		return nil, fmt.Errorf("%w: nil instrument", ErrInvalidDocument)
	}
	w := c.writer()
	w.putStr(fieldtag.FieldSymbol, i.Symbol)
	w.putStr(fieldtag.FieldVenue, i.Venue)
	w.putStr(fieldtag.FieldBrokerSymbol, i.BrokerSymbol)
	w.putStr(fieldtag.FieldQuoteCurrency, i.QuoteCurrency)
	w.putStr(fieldtag.FieldSecurityType, string(i.SecurityType))
	w.putInt(fieldtag.FieldPricePrecision, int64(i.PricePrecision))
	w.putInt(fieldtag.FieldSizePrecision, int64(i.SizePrecision))
	w.putDec(fieldtag.FieldTickSize, i.TickSize)
	w.putDec(fieldtag.FieldRoundLotSize, i.RoundLotSize)
	w.putInt(fieldtag.FieldMinStopDistanceEntry, i.MinStopDistanceEntry)
	w.putInt(fieldtag.FieldMinStopDistance, i.MinStopDistance)
	w.putInt(fieldtag.FieldMinLimitDistanceEntry, i.MinLimitDistanceEntry)
	w.putInt(fieldtag.FieldMinLimitDistance, i.MinLimitDistance)
	w.putDec(fieldtag.FieldMinTradeSize, i.MinTradeSize)
	w.putDec(fieldtag.FieldMaxTradeSize, i.MaxTradeSize)
	w.putDec(fieldtag.FieldRolloverInterestBuy, i.RolloverInterestBuy)
	w.putDec(fieldtag.FieldRolloverInterestSell, i.RolloverInterestSell)
	w.putNanos(fieldtag.FieldTimestamp, i.Timestamp)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *InstrumentCodec) Decode(doc Document) (*entity.Instrument, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	i := &entity.Instrument{
		Symbol:                r.str(fieldtag.FieldSymbol),
		Venue:                 r.str(fieldtag.FieldVenue),
		BrokerSymbol:          r.str(fieldtag.FieldBrokerSymbol),
		QuoteCurrency:         r.str(fieldtag.FieldQuoteCurrency),
		SecurityType:          entity.SecurityType(r.str(fieldtag.FieldSecurityType)),
		PricePrecision:        int32(r.i64(fieldtag.FieldPricePrecision)),
		SizePrecision:         int32(r.i64(fieldtag.FieldSizePrecision)),
		TickSize:              r.dec(fieldtag.FieldTickSize),
		RoundLotSize:          r.dec(fieldtag.FieldRoundLotSize),
		MinStopDistanceEntry:  r.i64(fieldtag.FieldMinStopDistanceEntry),
		MinStopDistance:       r.i64(fieldtag.FieldMinStopDistance),
		MinLimitDistanceEntry: r.i64(fieldtag.FieldMinLimitDistanceEntry),
		MinLimitDistance:      r.i64(fieldtag.FieldMinLimitDistance),
		MinTradeSize:          r.dec(fieldtag.FieldMinTradeSize),
		MaxTradeSize:          r.dec(fieldtag.FieldMaxTradeSize),
		RolloverInterestBuy:   r.dec(fieldtag.FieldRolloverInterestBuy),
		RolloverInterestSell:  r.dec(fieldtag.FieldRolloverInterestSell),
		Timestamp:             r.nanos(fieldtag.FieldTimestamp),
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	return i, nil
}

// EncodeBatch 标的物批量: {Instruments: [标的物结构...]}, 供标的物数据响应使用。
func (c *InstrumentCodec) EncodeBatch(instruments []*entity.Instrument) (Document, error) {
	docs := make([]Document, 0, len(instruments))
	for idx, i := range instruments {
		doc, err := c.Encode(i)
		if err != nil {
			return nil, fmt.Errorf("%w: instrument at %d: %v", ErrInvalidDocument, idx, err)
		}
		docs = append(docs, doc)
	}
	w := c.writer()
	w.putDocs(fieldtag.FieldInstruments, docs)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *InstrumentCodec) DecodeBatch(doc Document) ([]*entity.Instrument, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	r := c.reader(doc)
	subs := r.docs(fieldtag.FieldInstruments)
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	out := make([]*entity.Instrument, 0, len(subs))
	for _, sub := range subs {
		i, err := c.Decode(sub)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func (c *InstrumentCodec) Marshal(i *entity.Instrument) ([]byte, error) {
	doc, err := c.Encode(i)
	if err != nil {
		return nil, err
	}
	return Marshal(doc)
}

func (c *InstrumentCodec) Unmarshal(data []byte) (*entity.Instrument, error) {
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return c.Decode(doc)
}
