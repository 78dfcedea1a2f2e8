package domain

import "slices"

// StatementLine is one position in a merged balance history: either a booked
// transaction or a closed transaction that never touched the balance.
type StatementLine struct {
	CumulativeRow
	// Closed is set for spliced close rows, which carry no delta.
	Closed *Transaction
}

// Booked reports whether the line comes from the ledger.
func (l StatementLine) Booked() bool {
	return l.Closed == nil
}

// ClosedKey returns where an unbooked close transaction sits in history.
func ClosedKey(tx *Transaction) HistoryKey {
	return HistoryKey{At: tx.StatusUpdatedAt(), ID: tx.ID}
}

// ClosedLine builds the line of an unbooked close transaction that inherits
// balance from whatever precedes it.
func ClosedLine(tx *Transaction, balance int64) StatementLine {
	return StatementLine{
		CumulativeRow: CumulativeRow{
			TransactionID:  tx.ID,
			EffectiveAt:    tx.StatusUpdatedAt(),
			RunningBalance: balance,
		},
		Closed: tx,
	}
}

// MergeClosed splices closed transactions into an ascending cumulative
// history. Each closed line takes the running balance of the nearest booked
// row before it, or opening when nothing precedes it. Closed transactions
// that already appear in rows, or appear twice, are dropped.
func MergeClosed(opening int64, rows []CumulativeRow, closed []*Transaction) []StatementLine {
	booked := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		booked[r.TransactionID] = struct{}{}
	}

	pending := make([]*Transaction, 0, len(closed))
	for _, tx := range closed {
		if _, ok := booked[tx.ID]; ok {
			continue
		}
		booked[tx.ID] = struct{}{}
		pending = append(pending, tx)
	}
	slices.SortFunc(pending, func(a, b *Transaction) int {
		return ClosedKey(a).Compare(ClosedKey(b))
	})

	lines := make([]StatementLine, 0, len(rows)+len(pending))
	balance := opening

	i, j := 0, 0
	for i < len(rows) || j < len(pending) {
		if j == len(pending) || (i < len(rows) && rows[i].Key().Compare(ClosedKey(pending[j])) < 0) {
			balance = rows[i].RunningBalance
			lines = append(lines, StatementLine{CumulativeRow: rows[i]})
			i++
			continue
		}
		lines = append(lines, ClosedLine(pending[j], balance))
		j++
	}

	return lines
}
