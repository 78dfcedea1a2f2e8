// Package csvexport serializes exported balance history rows as CSV.
package csvexport

import (
	"io"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerexport/internal/domain"
)

// TimeLayout is the layout of every timestamp cell.
const TimeLayout = "2006-01-02 15:04:05.999999"

// ContentType is the media type export downloads are served with.
const ContentType = "application/ms-excel"

var cells = map[string]func(*domain.ExportRow) string{
	domain.ColumnTokenName:             func(r *domain.ExportRow) string { return r.TokenName },
	domain.ColumnTeamName:              func(r *domain.ExportRow) string { return r.TeamName },
	domain.ColumnTransactionID:         func(r *domain.ExportRow) string { return r.TransactionID },
	domain.ColumnMerchantTransactionID: func(r *domain.ExportRow) string { return r.MerchantTransactionID },
	domain.ColumnMerchantPayerID:       func(r *domain.ExportRow) string { return r.MerchantPayerID },
	domain.ColumnCreateTimestamp:       func(r *domain.ExportRow) string { return formatTime(r.CreatedAt) },
	domain.ColumnDirection:             func(r *domain.ExportRow) string { return string(r.Direction) },
	domain.ColumnBankDetailNumber:      func(r *domain.ExportRow) string { return r.BankDetailNumber },
	domain.ColumnTransactionAmount:     func(r *domain.ExportRow) string { return formatDecimal(r.TransactionAmount) },
	domain.ColumnStatusUpdated:         func(r *domain.ExportRow) string { return r.StatusUpdatedAt.UTC().Format(TimeLayout) },
	domain.ColumnStatus:                func(r *domain.ExportRow) string { return string(r.Status) },
	domain.ColumnExchangeRate:          func(r *domain.ExportRow) string { return formatDecimal(r.ExchangeRate) },
	domain.ColumnDepositChange:         func(r *domain.ExportRow) string { return r.DepositChange.String() },
	domain.ColumnInterest:              func(r *domain.ExportRow) string { return r.Interest.String() },
	domain.ColumnCumulativeBalance:     func(r *domain.ExportRow) string { return r.CumulativeBalance.String() },
}

type settings struct {
	tokenName  string
	flush      func() error
	flushEvery int
}

// Option configures a Writer or a Table.
type Option func(*settings)

// WithTokenName fills the token_name column of every row with name.
func WithTokenName(name string) Option {
	return func(s *settings) {
		s.tokenName = name
	}
}

// WithFlushEvery pushes buffered output through flush after every n rows.
func WithFlushEvery(n int, flush func() error) Option {
	return func(s *settings) {
		s.flushEvery = n
		s.flush = flush
	}
}

// Writer writes export rows for one viewer: the header once before the first
// row, then one record per row with the viewer's hidden columns left out.
type Writer struct {
	*Table[*domain.ExportRow]
	tokenName string
}

// NewWriter creates a Writer for viewer over out.
func NewWriter(out io.Writer, viewer domain.Role, opts ...Option) *Writer {
	hidden := domain.HiddenColumns(viewer)
	columns := make([]Column[*domain.ExportRow], 0, len(domain.Columns))
	for _, c := range domain.Columns {
		if !slices.Contains(hidden, c) {
			columns = append(columns, Column[*domain.ExportRow]{Name: c, Cell: cells[c]})
		}
	}

	t := NewTable(out, columns, opts...)
	return &Writer{Table: t, tokenName: t.tokenName}
}

// Write writes one row, preceded by the header on the first call.
func (w *Writer) Write(row *domain.ExportRow) error {
	if w.tokenName != "" {
		row.WithTokenName(w.tokenName)
	}
	return w.Table.Write(row)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

func formatDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
