package postgres

import (
	"context"
	"time"

	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/postgres/generated"
)

// BalanceChangeRepository implements usecase.BalanceChangeRepository.
type BalanceChangeRepository struct {
	store
	queries *generated.Queries
}

// NewBalanceChangeRepository creates a new BalanceChangeRepository.
func NewBalanceChangeRepository(db generated.DBTX, timeout time.Duration) *BalanceChangeRepository {
	return &BalanceChangeRepository{
		store:   store{timeout: timeout},
		queries: generated.New(db),
	}
}

// ListByWindow returns every leg of the transactions effective inside window.
func (r *BalanceChangeRepository) ListByWindow(ctx context.Context, balanceID string, window domain.Window) ([]*domain.BalanceChangeEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.queries.ListBalanceChangesByWindow(ctx, generated.ListBalanceChangesByWindowParams{
		BalanceID: balanceID,
		FromTs:    timeToPgTimestamptz(window.From),
		ToTs:      timeToPgTimestamptz(window.To),
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return rowsToEntries(rows), nil
}

// ListPageBefore returns every leg of the next limit transactions older than
// cursor, newest first.
func (r *BalanceChangeRepository) ListPageBefore(ctx context.Context, balanceID string, window domain.Window, cursor *domain.HistoryKey, limit int) ([]*domain.BalanceChangeEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursorAt, cursorID := cursorParams(cursor)
	rows, err := r.queries.ListBalanceChangesPageBefore(ctx, generated.ListBalanceChangesPageBeforeParams{
		BalanceID: balanceID,
		FromTs:    timeToPgTimestamptz(window.From),
		ToTs:      timeToPgTimestamptz(window.To),
		CursorAt:  cursorAt,
		CursorID:  cursorID,
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return rowsToEntries(rows), nil
}

// TrustBalanceBefore sums the trust deltas of transactions effective before at.
func (r *BalanceChangeRepository) TrustBalanceBefore(ctx context.Context, balanceID string, at time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	balance, err := r.queries.TrustBalanceBefore(ctx, generated.TrustBalanceBeforeParams{
		BalanceID: balanceID,
		At:        timeToPgTimestamptz(at),
	})
	if err != nil {
		return 0, mapStoreError(err)
	}

	return balance, nil
}

func rowsToEntries(rows []generated.UserBalanceChange) []*domain.BalanceChangeEntry {
	entries := make([]*domain.BalanceChangeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &domain.BalanceChangeEntry{
			ID:            row.ID,
			TransactionID: row.TransactionID,
			BalanceID:     row.BalanceID,
			UserID:        row.UserID,
			TrustBalance:  row.TrustBalance,
			LockedBalance: row.LockedBalance,
			ProfitBalance: row.ProfitBalance,
			CreatedAt:     row.CreateTimestamp.Time.UTC(),
		})
	}
	return entries
}
