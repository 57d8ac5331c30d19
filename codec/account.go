package codec

import (
	"fmt"

	"github.com/go-gotop/wire/entity"
	"github.com/go-gotop/wire/fieldtag"
)

// AccountCodec 账户状态编解码器。
type AccountCodec struct {
	base
}

func NewAccountCodec(opts ...Option) *AccountCodec {
	return &AccountCodec{base: newBase(opts...)}
}

func (c *AccountCodec) Encode(a *entity.AccountState) (Document, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil account state", ErrInvalidDocument)
	}
	w := c.writer()
	w.putStr(fieldtag.FieldAccountID, a.AccountID)
	w.putStr(fieldtag.FieldBrokerage, a.Brokerage)
	w.putStr(fieldtag.FieldAccountNumber, a.AccountNumber)
	w.putStr(fieldtag.FieldCurrency, a.Currency)
	w.putDec(fieldtag.FieldCashBalance, a.CashBalance)
	w.putDec(fieldtag.FieldCashStartDay, a.CashStartDay)
	w.putDec(fieldtag.FieldCashActivityDay, a.CashActivityDay)
	w.putDec(fieldtag.FieldMarginUsedLiquidation, a.MarginUsedLiquidation)
	w.putDec(fieldtag.FieldMarginUsedMaintenance, a.MarginUsedMaintenance)
	w.putDec(fieldtag.FieldMarginRatio, a.MarginRatio)
	w.putStr(fieldtag.FieldMarginCallStatus, a.MarginCallStatus)
	w.putNanos(fieldtag.FieldTimestamp, a.Timestamp)
	if w.err != nil {
		return nil, w.err
	}
	return w.doc, nil
}

func (c *AccountCodec) Decode(doc Document) (*entity.AccountState, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	c.logUnrecognized(doc)

	r := c.reader(doc)
	a := &entity.AccountState{
		AccountID:             r.str(fieldtag.FieldAccountID),
		Brokerage:             r.str(fieldtag.FieldBrokerage),
		AccountNumber:         r.str(fieldtag.FieldAccountNumber),
		Currency:              r.str(fieldtag.FieldCurrency),
		CashBalance:           r.dec(fieldtag.FieldCashBalance),
		CashStartDay:          r.dec(fieldtag.FieldCashStartDay),
		CashActivityDay:       r.dec(fieldtag.FieldCashActivityDay),
		MarginUsedLiquidation: r.dec(fieldtag.FieldMarginUsedLiquidation),
		MarginUsedMaintenance: r.dec(fieldtag.FieldMarginUsedMaintenance),
		MarginRatio:           r.dec(fieldtag.FieldMarginRatio),
		MarginCallStatus:      r.str(fieldtag.FieldMarginCallStatus),
		Timestamp:             r.nanos(fieldtag.FieldTimestamp),
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, r.err)
	}
	return a, nil
}

func (c *AccountCodec) Marshal(a *entity.AccountState) ([]byte, error) {
	doc, err := c.Encode(a)
	if err != nil {
		return nil, err
	}
	return Marshal(doc)
}

func (c *AccountCodec) Unmarshal(data []byte) (*entity.AccountState, error) {
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return c.Decode(doc)
}
