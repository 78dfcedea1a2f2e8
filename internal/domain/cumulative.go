package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CumulativeRow is a transaction's place in a balance history together with
// the balance immediately after it. Amounts are fixed point.
type CumulativeRow struct {
	TransactionID  string
	Delta          int64
	EffectiveAt    time.Time
	RunningBalance int64
}

// Key returns the history key of the row.
func (r CumulativeRow) Key() HistoryKey {
	return HistoryKey{At: r.EffectiveAt, ID: r.TransactionID}
}

// DeltaAmount returns the display value of Delta.
func (r CumulativeRow) DeltaAmount() decimal.Decimal {
	return FromFixed(r.Delta)
}

// Balance returns the display value of RunningBalance.
func (r CumulativeRow) Balance() decimal.Decimal {
	return FromFixed(r.RunningBalance)
}

// Reconstruct rebuilds the running trust balance of a balance history.
// opening is the balance before the first entry; entries may arrive in any
// order and with several legs per transaction. Rows are ascending, and
// RunningBalance[i] == RunningBalance[i-1] + Delta[i].
func Reconstruct(opening int64, entries []*BalanceChangeEntry) []CumulativeRow {
	deltas := GroupByTransaction(entries)
	rows := make([]CumulativeRow, len(deltas))

	balance := opening
	for i, d := range deltas {
		balance += d.Trust
		rows[i] = CumulativeRow{
			TransactionID:  d.TransactionID,
			Delta:          d.Trust,
			EffectiveAt:    d.EffectiveAt,
			RunningBalance: balance,
		}
	}

	return rows
}

// Rewinder walks a balance history newest first, starting from the balance
// after the newest transaction.
type Rewinder struct {
	balance int64
}

// NewRewinder starts a walk at closing.
func NewRewinder(closing int64) *Rewinder {
	return &Rewinder{balance: closing}
}

// Booked returns the row for d and steps back over it. Deltas must be fed
// in descending HistoryKey order.
func (r *Rewinder) Booked(d TransactionDelta) CumulativeRow {
	row := CumulativeRow{
		TransactionID:  d.TransactionID,
		Delta:          d.Trust,
		EffectiveAt:    d.EffectiveAt,
		RunningBalance: r.balance,
	}
	r.balance -= d.Trust
	return row
}

// Balance is the balance immediately before the last booked delta, which is
// also the nearest preceding balance of anything older than it.
func (r *Rewinder) Balance() int64 {
	return r.balance
}
