package usecase

import (
	"context"
	"fmt"
	"iter"

	"github.com/iho/ledgerexport/internal/domain"
)

// ActivityUseCase exports the plain list of transactions a team or merchant
// took part in.
type ActivityUseCase struct {
	repo      ActivityRepository
	observer  ExportObserver
	batchSize int
}

// NewActivityUseCase creates a new ActivityUseCase. A nil observer is allowed.
func NewActivityUseCase(repo ActivityRepository, observer ExportObserver, batchSize int) *ActivityUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &ActivityUseCase{
		repo:      repo,
		observer:  observer,
		batchSize: batchSize,
	}
}

// Stream returns the matching transactions newest first, page by page as
// the caller iterates. Filter errors are returned before any query runs.
func (uc *ActivityUseCase) Stream(ctx context.Context, filter domain.ActivityFilter) (iter.Seq2[*domain.ActivityRow, error], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(*domain.ActivityRow, error) bool) {
		p := &pager[*domain.Activity]{
			limit:    uc.batchSize,
			source:   SourceActivity,
			observer: uc.observer,
			key:      (*domain.Activity).Key,
			fetch: func(ctx context.Context, cursor *domain.HistoryKey, limit int) ([]*domain.Activity, error) {
				page, err := uc.repo.ListActivityPageBefore(ctx, filter, cursor, limit)
				if err != nil {
					return nil, fmt.Errorf("list activity page: %w", err)
				}
				return page, nil
			},
		}

		for {
			a, ok, err := p.peek(ctx)
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
			if !yield(domain.NewActivityRow(a, filter.Role), nil) {
				return
			}
			p.advance()
		}
	}, nil
}
