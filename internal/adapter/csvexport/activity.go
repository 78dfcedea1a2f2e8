package csvexport

import (
	"io"

	"github.com/iho/ledgerexport/internal/domain"
)

var activityCells = map[string]func(*domain.ActivityRow) string{
	domain.ColumnTransactionID:         func(r *domain.ActivityRow) string { return r.TransactionID },
	domain.ColumnMerchantTransactionID: func(r *domain.ActivityRow) string { return r.MerchantTransactionID },
	domain.ColumnCreateTimestamp:       func(r *domain.ActivityRow) string { return r.CreatedAt.UTC().Format(TimeLayout) },
	domain.ColumnDirection:             func(r *domain.ActivityRow) string { return string(r.Direction) },
	domain.ColumnBankDetailNumber:      func(r *domain.ActivityRow) string { return r.BankDetailNumber },
	domain.ColumnTransactionAmount:     func(r *domain.ActivityRow) string { return r.TransactionAmount.String() },
	domain.ColumnStatus:                func(r *domain.ActivityRow) string { return string(r.Status) },
	domain.ColumnExchangeRate:          func(r *domain.ActivityRow) string { return r.ExchangeRate.String() },
	domain.ColumnDepositChange:         func(r *domain.ActivityRow) string { return r.DepositChange.String() },
	domain.ColumnInterest:              func(r *domain.ActivityRow) string { return formatDecimal(r.Interest) },
}

// NewActivityTable creates a Table for the plain transaction export.
func NewActivityTable(out io.Writer, opts ...Option) *Table[*domain.ActivityRow] {
	columns := make([]Column[*domain.ActivityRow], len(domain.ActivityColumns))
	for i, c := range domain.ActivityColumns {
		columns[i] = Column[*domain.ActivityRow]{Name: c, Cell: activityCells[c]}
	}
	return NewTable(out, columns, opts...)
}
