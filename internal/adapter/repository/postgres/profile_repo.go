package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/postgres/generated"
)

// ProfileRepository implements usecase.ProfileRepository.
type ProfileRepository struct {
	store
	queries *generated.Queries
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db generated.DBTX, timeout time.Duration) *ProfileRepository {
	return &ProfileRepository{
		store:   store{timeout: timeout},
		queries: generated.New(db),
	}
}

// GetByUserID returns the accounting profile of a user.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.AccountProfile, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := r.queries.GetAccountProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, mapStoreError(err)
	}

	return &domain.AccountProfile{
		UserID:    row.ID,
		Name:      row.Name,
		Role:      domain.Role(row.Role),
		BalanceID: row.BalanceID.String,
		Balance:   row.Balance,
	}, nil
}

// ListAccounting returns the accounting overview of the accounts matching
// filter.
func (r *ProfileRepository) ListAccounting(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.queries.ListAccounting(ctx, generated.ListAccountingParams{
		LastOffsetID: filter.LastOffsetID,
		Role:         string(filter.Role),
		Search:       filter.Search,
		GeoID:        filter.GeoID,
		Limit:        int32(filter.Limit),
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	out := make([]*domain.AccountingEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.AccountingEntry{
			UserID:          row.ID,
			OffsetID:        row.OffsetID,
			Role:            domain.Role(row.Role),
			Name:            row.Name,
			Geo:             row.Geo.String,
			Balance:         row.Balance,
			PendingDeposit:  row.PendingDeposit,
			PendingWithdraw: row.PendingWithdraw,
		})
	}
	return out, nil
}

// GeoName returns the name of a geo.
func (r *ProfileRepository) GeoName(ctx context.Context, geoID int64) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	name, err := r.queries.GetGeoName(ctx, geoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrGeoNotFound
		}
		return "", mapStoreError(err)
	}
	return name, nil
}
