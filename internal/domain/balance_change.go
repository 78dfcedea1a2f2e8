package domain

import (
	"slices"
	"strings"
	"time"
)

// BalanceChangeEntry is one append-only ledger row: the effect of one
// transaction leg on one balance. Amounts are fixed point.
type BalanceChangeEntry struct {
	ID            int64
	TransactionID string
	BalanceID     string
	UserID        string
	TrustBalance  int64
	LockedBalance int64
	ProfitBalance int64
	CreatedAt     time.Time
}

// TransactionDelta is the net trust effect of one transaction on a balance.
type TransactionDelta struct {
	TransactionID string
	Trust         int64
	Legs          int
	// EffectiveAt is the timestamp of the latest leg.
	EffectiveAt time.Time
}

// HistoryKey orders positions in a balance history: by time, then by
// transaction id so that equal timestamps still sort deterministically.
type HistoryKey struct {
	At time.Time
	ID string
}

// Compare returns -1, 0 or +1 as k sorts before, with or after o.
func (k HistoryKey) Compare(o HistoryKey) int {
	if c := k.At.Compare(o.At); c != 0 {
		return c
	}
	return strings.Compare(k.ID, o.ID)
}

// Key returns the history key of the delta.
func (d TransactionDelta) Key() HistoryKey {
	return HistoryKey{At: d.EffectiveAt, ID: d.TransactionID}
}

// GroupByTransaction sums entries per transaction. A transaction may post
// several legs at slightly different times; the latest one decides where it
// sits in history. The result is ascending by HistoryKey.
func GroupByTransaction(entries []*BalanceChangeEntry) []TransactionDelta {
	index := make(map[string]int, len(entries))
	deltas := make([]TransactionDelta, 0, len(entries))

	for _, e := range entries {
		i, ok := index[e.TransactionID]
		if !ok {
			i = len(deltas)
			index[e.TransactionID] = i
			deltas = append(deltas, TransactionDelta{
				TransactionID: e.TransactionID,
				EffectiveAt:   e.CreatedAt,
			})
		}

		d := &deltas[i]
		d.Trust += e.TrustBalance
		d.Legs++
		if e.CreatedAt.After(d.EffectiveAt) {
			d.EffectiveAt = e.CreatedAt
		}
	}

	slices.SortFunc(deltas, func(a, b TransactionDelta) int {
		return a.Key().Compare(b.Key())
	})

	return deltas
}
