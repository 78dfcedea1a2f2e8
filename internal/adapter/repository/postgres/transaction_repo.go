package postgres

import (
	"context"
	"time"

	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/postgres/generated"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	store
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db generated.DBTX, timeout time.Duration) *TransactionRepository {
	return &TransactionRepository{
		store:   store{timeout: timeout},
		queries: generated.New(db),
	}
}

// GetByIDs loads transactions with their counterparty names. Unknown ids
// are left out of the result.
func (r *TransactionRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Transaction, error) {
	if len(ids) == 0 {
		return map[string]*domain.Transaction{}, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.queries.GetTransactionsByIDs(ctx, ids)
	if err != nil {
		return nil, mapStoreError(err)
	}

	out := make(map[string]*domain.Transaction, len(rows))
	for _, row := range rows {
		out[row.ID] = rowToTransaction(row)
	}
	return out, nil
}

// ListUnbookedClosed returns closed transactions of the balance owners that
// never touched the balance, oldest first.
func (r *TransactionRepository) ListUnbookedClosed(ctx context.Context, balanceID string, window domain.Window) ([]*domain.Transaction, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.queries.ListUnbookedClosed(ctx, generated.ListUnbookedClosedParams{
		BalanceID: balanceID,
		FromTs:    timeToPgTimestamptz(window.From),
		ToTs:      timeToPgTimestamptz(window.To),
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return rowsToTransactions(rows), nil
}

// ListUnbookedClosedPageBefore returns the next limit unbooked closed
// transactions older than cursor, newest first.
func (r *TransactionRepository) ListUnbookedClosedPageBefore(ctx context.Context, balanceID string, window domain.Window, cursor *domain.HistoryKey, limit int) ([]*domain.Transaction, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursorAt, cursorID := cursorParams(cursor)
	rows, err := r.queries.ListUnbookedClosedPageBefore(ctx, generated.ListUnbookedClosedPageBeforeParams{
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

	return rowsToTransactions(rows), nil
}

func rowsToTransactions(rows []generated.TransactionWithNamesRow) []*domain.Transaction {
	out := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToTransaction(row))
	}
	return out
}

func rowToTransaction(row generated.TransactionWithNamesRow) *domain.Transaction {
	return &domain.Transaction{
		ID:                    row.ID,
		MerchantTransactionID: row.MerchantTransactionID.String,
		MerchantPayerID:       row.MerchantPayerID.String,
		Direction:             domain.Direction(row.Direction),
		Status:                domain.Status(row.Status),
		Amount:                row.Amount,
		ExchangeRate:          row.ExchangeRate,
		BankDetailNumber:      row.BankDetailNumber.String,
		TeamID:                row.TeamID.String,
		TeamName:              row.TeamName.String,
		MerchantID:            row.MerchantID.String,
		MerchantName:          row.MerchantName.String,
		CreatedAt:             row.CreateTimestamp.Time.UTC(),
		FinalStatusAt:         pgTimestamptzToPtr(row.FinalStatusTimestamp),
	}
}

// ListActivityPageBefore returns the next limit transactions of the filter's
// user older than cursor, newest first, each with its trust delta.
func (r *TransactionRepository) ListActivityPageBefore(ctx context.Context, filter domain.ActivityFilter, cursor *domain.HistoryKey, limit int) ([]*domain.Activity, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursorAt, cursorID := cursorParams(cursor)
	rows, err := r.queries.ListActivityPageBefore(ctx, generated.ListActivityPageBeforeParams{
		UserID:     filter.UserID,
		Role:       string(filter.Role),
		FromTs:     timeToPgTimestamptz(filter.Window.From),
		ToTs:       timeToPgTimestamptz(filter.Window.To),
		Status:     string(filter.Status),
		Direction:  string(filter.Direction),
		AmountFrom: int8Param(filter.AmountFrom),
		AmountTo:   int8Param(filter.AmountTo),
		CurrencyID: filter.CurrencyID,
		CursorAt:   cursorAt,
		CursorID:   cursorID,
		Limit:      int32(limit),
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	out := make([]*domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.Activity{
			Transaction: domain.Transaction{
				ID:                    row.ID,
				MerchantTransactionID: row.MerchantTransactionID.String,
				Direction:             domain.Direction(row.Direction),
				Status:                domain.Status(row.Status),
				Amount:                row.Amount,
				ExchangeRate:          row.ExchangeRate,
				BankDetailNumber:      row.BankDetailNumber.String,
				CreatedAt:             row.CreateTimestamp.Time.UTC(),
			},
			TrustDelta: row.TrustDelta,
		})
	}
	return out, nil
}
