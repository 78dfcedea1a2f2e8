package usecase_test

import (
	"context"
	"slices"
	"time"

	"github.com/iho/ledgerexport/internal/domain"
)

// memStore is an in-memory ledger and transaction store for a single
// balance. It implements both repositories the export reads from.
type memStore struct {
	balanceID    string
	entries      []*domain.BalanceChangeEntry
	transactions map[string]*domain.Transaction

	pageCalls   int
	closedCalls int
}

func newMemStore(balanceID string) *memStore {
	return &memStore{balanceID: balanceID, transactions: map[string]*domain.Transaction{}}
}

func (s *memStore) book(tx string, trust int64, at time.Time) {
	s.entries = append(s.entries, &domain.BalanceChangeEntry{
		ID:            int64(len(s.entries) + 1),
		TransactionID: tx,
		BalanceID:     s.balanceID,
		UserID:        "u1",
		TrustBalance:  trust,
		CreatedAt:     at,
	})
}

func (s *memStore) addTx(tx *domain.Transaction) {
	s.transactions[tx.ID] = tx
}

func (s *memStore) deltas() []domain.TransactionDelta {
	return domain.GroupByTransaction(s.entries)
}

func (s *memStore) legsOf(ids map[string]bool) []*domain.BalanceChangeEntry {
	var out []*domain.BalanceChangeEntry
	for _, e := range s.entries {
		if ids[e.TransactionID] {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) ListByWindow(_ context.Context, _ string, window domain.Window) ([]*domain.BalanceChangeEntry, error) {
	ids := map[string]bool{}
	for _, d := range s.deltas() {
		if window.Contains(d.EffectiveAt) {
			ids[d.TransactionID] = true
		}
	}
	return s.legsOf(ids), nil
}

func (s *memStore) ListPageBefore(_ context.Context, _ string, window domain.Window, cursor *domain.HistoryKey, limit int) ([]*domain.BalanceChangeEntry, error) {
	s.pageCalls++

	deltas := s.deltas()
	slices.Reverse(deltas)

	ids := map[string]bool{}
	for _, d := range deltas {
		if len(ids) == limit {
			break
		}
		if !window.Contains(d.EffectiveAt) {
			continue
		}
		if cursor != nil && d.Key().Compare(*cursor) >= 0 {
			continue
		}
		ids[d.TransactionID] = true
	}
	return s.legsOf(ids), nil
}

func (s *memStore) TrustBalanceBefore(_ context.Context, _ string, at time.Time) (int64, error) {
	var sum int64
	for _, d := range s.deltas() {
		if d.EffectiveAt.Before(at) {
			sum += d.Trust
		}
	}
	return sum, nil
}

func (s *memStore) GetByIDs(_ context.Context, ids []string) (map[string]*domain.Transaction, error) {
	out := make(map[string]*domain.Transaction, len(ids))
	for _, id := range ids {
		if tx, ok := s.transactions[id]; ok {
			out[id] = tx
		}
	}
	return out, nil
}

func (s *memStore) unbookedClosed(window domain.Window) []*domain.Transaction {
	booked := map[string]bool{}
	for _, e := range s.entries {
		booked[e.TransactionID] = true
	}

	var out []*domain.Transaction
	for _, tx := range s.transactions {
		if tx.Status != domain.StatusClose || booked[tx.ID] || tx.FinalStatusAt == nil {
			continue
		}
		if window.Contains(*tx.FinalStatusAt) {
			out = append(out, tx)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Transaction) int {
		return domain.ClosedKey(a).Compare(domain.ClosedKey(b))
	})
	return out
}

func (s *memStore) ListUnbookedClosed(_ context.Context, _ string, window domain.Window) ([]*domain.Transaction, error) {
	return s.unbookedClosed(window), nil
}

func (s *memStore) ListUnbookedClosedPageBefore(_ context.Context, _ string, window domain.Window, cursor *domain.HistoryKey, limit int) ([]*domain.Transaction, error) {
	s.closedCalls++

	all := s.unbookedClosed(window)
	slices.Reverse(all)

	var out []*domain.Transaction
	for _, tx := range all {
		if len(out) == limit {
			break
		}
		if cursor != nil && domain.ClosedKey(tx).Compare(*cursor) >= 0 {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}
