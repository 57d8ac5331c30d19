package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountState 账户资金与保证金快照。
type AccountState struct {
	// 账户ID
	AccountID string
	// 券商
	Brokerage string
	// 账户编号
	AccountNumber string
	// 计价货币
	Currency string
	// 现金余额
	CashBalance decimal.Decimal
	// 日初余额
	CashStartDay decimal.Decimal
	// 当日出入金
	CashActivityDay decimal.Decimal
	// 强平保证金占用
	MarginUsedLiquidation decimal.Decimal
	// 维持保证金占用
	MarginUsedMaintenance decimal.Decimal
	// 保证金率
	MarginRatio decimal.Decimal
	// 追保状态
	MarginCallStatus string
	// 快照时间戳
	Timestamp UnixNanos
}

// Validate 校验账户快照基本约束。
func (a *AccountState) Validate() error {
	if a.AccountID == "" {
		return fmt.Errorf("%w: empty account id", ErrInvalidAccount)
	}
	if a.Currency == "" {
		return fmt.Errorf("%w: empty currency", ErrInvalidAccount)
	}
	if a.MarginUsedLiquidation.IsNegative() || a.MarginUsedMaintenance.IsNegative() {
		return fmt.Errorf("%w: negative margin used", ErrInvalidAccount)
	}
	if a.MarginRatio.IsNegative() {
		return fmt.Errorf("%w: negative margin ratio %s", ErrInvalidAccount, a.MarginRatio)
	}
	return nil
}

// FreeCash 返回扣除保证金占用后的可用余额。
func (a *AccountState) FreeCash() decimal.Decimal {
	return a.CashBalance.Sub(a.MarginUsedLiquidation).Sub(a.MarginUsedMaintenance)
}
