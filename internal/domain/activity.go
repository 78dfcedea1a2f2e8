package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ActivityRoles may download the plain list of their own transactions.
var ActivityRoles = []Role{RoleTeam, RoleMerchant}

// ActivityColumns are the columns of the plain transaction export, in
// output order.
var ActivityColumns = []string{
	ColumnTransactionID,
	ColumnMerchantTransactionID,
	ColumnCreateTimestamp,
	ColumnDirection,
	ColumnBankDetailNumber,
	ColumnTransactionAmount,
	ColumnStatus,
	ColumnExchangeRate,
	ColumnDepositChange,
	ColumnInterest,
}

// ActivityFilter selects the transactions a team or merchant took part in
// that moved its trust balance.
type ActivityFilter struct {
	UserID    string
	Role      Role
	Window    Window
	Status    Status
	Direction Direction
	// AmountFrom and AmountTo bound the fixed point amount, both inclusive.
	AmountFrom *int64
	AmountTo   *int64
	CurrencyID string
}

// Validate checks the filter without touching the store.
func (f ActivityFilter) Validate() error {
	if err := RequireRole(f.Role, ActivityRoles...); err != nil {
		return err
	}
	if f.UserID == "" {
		return ErrUserNotFound
	}
	if f.Status != "" && !f.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, f.Status)
	}
	if f.Direction != "" && !f.Direction.IsValid() {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidFilter, f.Direction)
	}
	if f.AmountFrom != nil && f.AmountTo != nil && *f.AmountFrom > *f.AmountTo {
		return fmt.Errorf("%w: amount_from %d is above amount_to %d", ErrInvalidFilter, *f.AmountFrom, *f.AmountTo)
	}
	return f.Window.Validate()
}

// Activity is a transaction with the sum of the trust deltas it posted for
// one user.
type Activity struct {
	Transaction
	TrustDelta int64
}

// Key orders activity by creation time, then id.
func (a *Activity) Key() HistoryKey {
	return HistoryKey{At: a.CreatedAt, ID: a.ID}
}

// ActivityRow is one line of the plain transaction export.
type ActivityRow struct {
	TransactionID         string
	MerchantTransactionID string
	CreatedAt             time.Time
	Direction             Direction
	BankDetailNumber      string
	TransactionAmount     decimal.Decimal
	Status                Status
	ExchangeRate          decimal.Decimal
	DepositChange         decimal.Decimal
	// Interest is nil for closed transactions.
	Interest *decimal.Decimal
}

// NewActivityRow projects activity for viewer.
func NewActivityRow(a *Activity, viewer Role) *ActivityRow {
	row := &ActivityRow{
		TransactionID:         a.ID,
		MerchantTransactionID: a.MerchantTransactionID,
		CreatedAt:             a.CreatedAt,
		Direction:             a.Direction,
		BankDetailNumber:      a.BankDetailNumber,
		TransactionAmount:     a.AmountValue(),
		Status:                a.Status,
		ExchangeRate:          a.ExchangeRateValue(),
		DepositChange:         FromFixed(a.TrustDelta),
	}
	if a.Status != StatusClose || a.Amount == 0 || a.ExchangeRate == 0 {
		v := interest(a.TrustDelta, a.Amount, a.ExchangeRate, viewer)
		row.Interest = &v
	}
	return row
}
