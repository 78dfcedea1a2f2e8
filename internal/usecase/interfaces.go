package usecase

import (
	"context"
	"time"

	"github.com/iho/ledgerexport/internal/domain"
)

// BalanceChangeRepository defines read access to the ledger of balance changes.
type BalanceChangeRepository interface {
	// ListByWindow returns every leg of the transactions whose effective time
	// falls inside window.
	ListByWindow(ctx context.Context, balanceID string, window domain.Window) ([]*domain.BalanceChangeEntry, error)
	// ListPageBefore returns every leg of the next limit transactions inside
	// window, newest first, strictly older than cursor. A nil cursor starts
	// at the end of the window.
	ListPageBefore(ctx context.Context, balanceID string, window domain.Window, cursor *domain.HistoryKey, limit int) ([]*domain.BalanceChangeEntry, error)
	// TrustBalanceBefore sums the trust deltas of transactions effective
	// before at.
	TrustBalanceBefore(ctx context.Context, balanceID string, at time.Time) (int64, error)
}

// TransactionRepository defines read access to external transactions.
type TransactionRepository interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Transaction, error)
	// ListUnbookedClosed returns closed transactions of the balance owners
	// that never touched the balance, oldest first.
	ListUnbookedClosed(ctx context.Context, balanceID string, window domain.Window) ([]*domain.Transaction, error)
	// ListUnbookedClosedPageBefore is the keyset paged, newest first form of
	// ListUnbookedClosed.
	ListUnbookedClosedPageBefore(ctx context.Context, balanceID string, window domain.Window, cursor *domain.HistoryKey, limit int) ([]*domain.Transaction, error)
}

// ProfileRepository defines read access to account profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.AccountProfile, error)
}

// AccountingRepository defines read access to the accounting overview.
type AccountingRepository interface {
	// ListAccounting returns the accounts matching filter, grouped by geo,
	// role and name.
	ListAccounting(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error)
	// GeoName returns domain.ErrGeoNotFound for unknown ids.
	GeoName(ctx context.Context, geoID int64) (string, error)
}

// ActivityRepository defines read access to the transactions a user took
// part in.
type ActivityRepository interface {
	// ListActivityPageBefore returns the next limit matching transactions,
	// newest first, strictly older than cursor.
	ListActivityPageBefore(ctx context.Context, filter domain.ActivityFilter, cursor *domain.HistoryKey, limit int) ([]*domain.Activity, error)
}

// ProfileCache stores account profiles for a short time. Get returns nil
// without error on a miss.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*domain.AccountProfile, error)
	Set(ctx context.Context, profile *domain.AccountProfile) error
}

// Retrier retries an operation on transient store errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// ExportObserver is told about every page an export fetches.
type ExportObserver interface {
	ObservePage(source string, rows int, elapsed time.Duration)
}
