package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names of an exported balance history, in output order.
const (
	ColumnTokenName             = "token_name"
	ColumnTeamName              = "team_name"
	ColumnTransactionID         = "transaction_id"
	ColumnMerchantTransactionID = "merchant_transaction_id"
	ColumnMerchantPayerID       = "merchant_payer_id"
	ColumnCreateTimestamp       = "create_timestamp"
	ColumnDirection             = "direction"
	ColumnBankDetailNumber      = "bank_detail_number"
	ColumnTransactionAmount     = "transaction_amount"
	ColumnStatusUpdated         = "status_last_update_timestamp"
	ColumnStatus                = "status"
	ColumnExchangeRate          = "exchange_rate"
	ColumnDepositChange         = "usdt_deposit_change"
	ColumnInterest              = "interest"
	ColumnCumulativeBalance     = "cumulative_trust_balance"
)

// Columns lists every export column in output order.
var Columns = []string{
	ColumnTokenName,
	ColumnTeamName,
	ColumnTransactionID,
	ColumnMerchantTransactionID,
	ColumnMerchantPayerID,
	ColumnCreateTimestamp,
	ColumnDirection,
	ColumnBankDetailNumber,
	ColumnTransactionAmount,
	ColumnStatusUpdated,
	ColumnStatus,
	ColumnExchangeRate,
	ColumnDepositChange,
	ColumnInterest,
	ColumnCumulativeBalance,
}

// HiddenColumns returns the columns a viewer never sees.
func HiddenColumns(viewer Role) []string {
	switch viewer {
	case RoleMerchant:
		return []string{ColumnTeamName}
	case RoleAgent:
		return []string{ColumnMerchantPayerID}
	case RoleTeam:
		return []string{ColumnTeamName, ColumnMerchantPayerID}
	default:
		return nil
	}
}

// ExportRow is one line of an exported balance history as a given viewer
// sees it. Nil pointers are values the store does not have.
type ExportRow struct {
	TokenName             string
	TeamName              string
	TransactionID         string
	MerchantTransactionID string
	MerchantPayerID       string
	CreatedAt             *time.Time
	Direction             Direction
	BankDetailNumber      string
	TransactionAmount     *decimal.Decimal
	StatusUpdatedAt       time.Time
	Status                Status
	ExchangeRate          *decimal.Decimal
	DepositChange         decimal.Decimal
	Interest              decimal.Decimal
	CumulativeBalance     decimal.Decimal
}

// NewExportRow projects a statement line for viewer. tx is the transaction
// metadata of a booked line and may be nil for ledger-only movements such as
// internal deposits; closed lines carry their own.
func NewExportRow(line StatementLine, tx *Transaction, viewer Role) *ExportRow {
	if line.Closed != nil {
		tx = line.Closed
	}

	row := &ExportRow{
		TransactionID:     line.TransactionID,
		Direction:         DirectionSettlement,
		StatusUpdatedAt:   line.EffectiveAt,
		DepositChange:     line.DeltaAmount(),
		Interest:          decimal.Zero,
		CumulativeBalance: line.Balance(),
	}

	if tx == nil {
		return row
	}

	createdAt := tx.CreatedAt
	amount := tx.AmountValue()
	rate := tx.ExchangeRateValue()

	row.MerchantTransactionID = tx.MerchantTransactionID
	row.CreatedAt = &createdAt
	row.BankDetailNumber = tx.BankDetailNumber
	row.TransactionAmount = &amount
	row.Status = tx.Status
	row.ExchangeRate = &rate
	row.Interest = tx.Interest(line.Delta, viewer)
	if tx.Direction != "" {
		row.Direction = tx.Direction
	}

	switch viewer {
	case RoleMerchant:
		row.TokenName = tx.MerchantName
		row.MerchantPayerID = tx.MerchantPayerID
	case RoleAgent:
		row.TeamName = tx.TeamName
	}

	return row
}

// WithTokenName labels the row with an account name, as named accounting
// downloads do for non-merchant accounts.
func (r *ExportRow) WithTokenName(name string) *ExportRow {
	r.TokenName = name
	return r
}
