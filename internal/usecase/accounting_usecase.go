package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/iho/ledgerexport/internal/domain"
)

// AccountingUseCase serves the accounting overview of all accounts.
type AccountingUseCase struct {
	repo    AccountingRepository
	retrier Retrier
}

// NewAccountingUseCase creates a new AccountingUseCase.
func NewAccountingUseCase(repo AccountingRepository, retrier Retrier) *AccountingUseCase {
	return &AccountingUseCase{
		repo:    repo,
		retrier: retrier,
	}
}

// List returns one page of the overview.
func (uc *AccountingUseCase) List(ctx context.Context, filter domain.AccountingFilter) (*domain.AccountingPage, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := uc.list(ctx, filter)
	if err != nil {
		return nil, err
	}
	return domain.NewAccountingPage(items, filter.Limit), nil
}

// All returns every account matching filter, ignoring its paging fields.
func (uc *AccountingUseCase) All(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error) {
	filter.LastOffsetID, filter.Limit = 0, 0
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return uc.list(ctx, filter)
}

// GeoLabel names the geo a download is filtered by. No geo is AllGeos and an
// unknown one is empty.
func (uc *AccountingUseCase) GeoLabel(ctx context.Context, geoID int64) (string, error) {
	if geoID == 0 {
		return AllGeos, nil
	}

	var name string
	err := uc.retrier.Retry(ctx, func() error {
		n, err := uc.repo.GeoName(ctx, geoID)
		if err != nil {
			return err
		}
		name = n
		return nil
	})
	if errors.Is(err, domain.ErrGeoNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("geo %d: %w", geoID, err)
	}
	return name, nil
}

func (uc *AccountingUseCase) list(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error) {
	var items []*domain.AccountingEntry
	err := uc.retrier.Retry(ctx, func() error {
		got, err := uc.repo.ListAccounting(ctx, filter)
		if err != nil {
			return err
		}
		items = got
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list accounting: %w", err)
	}
	return items, nil
}
