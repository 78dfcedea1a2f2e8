package usecase

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/iho/ledgerexport/internal/domain"
)

// ExportUseCase builds balance histories with running balances.
type ExportUseCase struct {
	changes      BalanceChangeRepository
	transactions TransactionRepository
	observer     ExportObserver
	batchSize    int
}

// NewExportUseCase creates a new ExportUseCase. A nil observer is allowed.
func NewExportUseCase(
	changes BalanceChangeRepository,
	transactions TransactionRepository,
	observer ExportObserver,
	batchSize int,
) *ExportUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &ExportUseCase{
		changes:      changes,
		transactions: transactions,
		observer:     observer,
		batchSize:    batchSize,
	}
}

// ExportInput identifies the history to export and who is looking at it.
type ExportInput struct {
	BalanceID string
	Role      domain.Role
	Window    domain.Window
}

// Validate checks the input without touching the store.
func (in ExportInput) Validate() error {
	if err := domain.RequireRole(in.Role, domain.HistoryRoles...); err != nil {
		return err
	}
	if in.BalanceID == "" {
		return domain.ErrBalanceNotFound
	}
	return in.Window.Validate()
}

// Statement returns the whole history of the window at once, most recent
// first.
func (uc *ExportUseCase) Statement(ctx context.Context, input ExportInput) ([]*domain.ExportRow, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	opening, err := uc.changes.TrustBalanceBefore(ctx, input.BalanceID, input.Window.From)
	if err != nil {
		return nil, fmt.Errorf("opening balance: %w", err)
	}

	start := time.Now()
	entries, err := uc.changes.ListByWindow(ctx, input.BalanceID, input.Window)
	if err != nil {
		return nil, fmt.Errorf("list balance changes: %w", err)
	}
	rows := domain.Reconstruct(opening, entries)
	uc.observer.ObservePage(SourceBooked, len(rows), time.Since(start))

	start = time.Now()
	closed, err := uc.transactions.ListUnbookedClosed(ctx, input.BalanceID, input.Window)
	if err != nil {
		return nil, fmt.Errorf("list closed transactions: %w", err)
	}
	uc.observer.ObservePage(SourceClosed, len(closed), time.Since(start))

	meta, err := uc.metadata(ctx, rows)
	if err != nil {
		return nil, err
	}

	lines := domain.MergeClosed(opening, rows, closed)
	out := make([]*domain.ExportRow, len(lines))
	for i, line := range lines {
		out[len(lines)-1-i] = domain.NewExportRow(line, meta[line.TransactionID], input.Role)
	}

	return out, nil
}

// Stream returns the history of the window most recent first, fetching it
// page by page as the caller iterates. Input errors are returned before any
// query runs. Store errors are yielded and end the sequence.
//
// Pages are read one after another, so the result is not a snapshot: rows
// committed while the stream is open may or may not appear.
func (uc *ExportUseCase) Stream(ctx context.Context, input ExportInput) (iter.Seq2[*domain.ExportRow, error], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(*domain.ExportRow, error) bool) {
		closing, err := uc.changes.TrustBalanceBefore(ctx, input.BalanceID, input.Window.To)
		if err != nil {
			yield(nil, fmt.Errorf("closing balance: %w", err))
			return
		}

		rewinder := domain.NewRewinder(closing)
		booked := uc.bookedPager(input)
		closed := uc.closedPager(input)

		for {
			b, hasBooked, err := booked.peek(ctx)
			if err != nil {
				yield(nil, err)
				return
			}
			c, hasClosed, err := closed.peek(ctx)
			if err != nil {
				yield(nil, err)
				return
			}

			var row *domain.ExportRow
			switch {
			case !hasBooked && !hasClosed:
				return
			case hasBooked && (!hasClosed || b.delta.Key().Compare(domain.ClosedKey(c)) > 0):
				line := domain.StatementLine{CumulativeRow: rewinder.Booked(b.delta)}
				row = domain.NewExportRow(line, b.tx, input.Role)
				booked.advance()
			default:
				row = domain.NewExportRow(domain.ClosedLine(c, rewinder.Balance()), nil, input.Role)
				closed.advance()
			}

			if !yield(row, nil) {
				return
			}
		}
	}, nil
}

type bookedDelta struct {
	delta domain.TransactionDelta
	tx    *domain.Transaction
}

func (uc *ExportUseCase) bookedPager(input ExportInput) *pager[bookedDelta] {
	return &pager[bookedDelta]{
		limit:    uc.batchSize,
		source:   SourceBooked,
		observer: uc.observer,
		key:      func(b bookedDelta) domain.HistoryKey { return b.delta.Key() },
		fetch: func(ctx context.Context, cursor *domain.HistoryKey, limit int) ([]bookedDelta, error) {
			entries, err := uc.changes.ListPageBefore(ctx, input.BalanceID, input.Window, cursor, limit)
			if err != nil {
				return nil, fmt.Errorf("list balance changes page: %w", err)
			}

			deltas := domain.GroupByTransaction(entries)
			slices.Reverse(deltas)

			rows := make([]domain.CumulativeRow, len(deltas))
			for i, d := range deltas {
				rows[i] = domain.CumulativeRow{TransactionID: d.TransactionID}
			}
			meta, err := uc.metadata(ctx, rows)
			if err != nil {
				return nil, err
			}

			page := make([]bookedDelta, len(deltas))
			for i, d := range deltas {
				page[i] = bookedDelta{delta: d, tx: meta[d.TransactionID]}
			}
			return page, nil
		},
	}
}

func (uc *ExportUseCase) closedPager(input ExportInput) *pager[*domain.Transaction] {
	return &pager[*domain.Transaction]{
		limit:    uc.batchSize,
		source:   SourceClosed,
		observer: uc.observer,
		key:      domain.ClosedKey,
		fetch: func(ctx context.Context, cursor *domain.HistoryKey, limit int) ([]*domain.Transaction, error) {
			page, err := uc.transactions.ListUnbookedClosedPageBefore(ctx, input.BalanceID, input.Window, cursor, limit)
			if err != nil {
				return nil, fmt.Errorf("list closed transactions page: %w", err)
			}
			return page, nil
		},
	}
}

// metadata loads the transactions behind booked rows. Ledger-only movements
// have no transaction and are absent from the result.
func (uc *ExportUseCase) metadata(ctx context.Context, rows []domain.CumulativeRow) (map[string]*domain.Transaction, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.TransactionID
	}

	meta, err := uc.transactions.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return meta, nil
}

// pager walks one keyset paged source newest first, holding a single page.
type pager[T any] struct {
	fetch    func(ctx context.Context, cursor *domain.HistoryKey, limit int) ([]T, error)
	key      func(T) domain.HistoryKey
	observer ExportObserver
	source   string
	limit    int

	page   []T
	pos    int
	cursor *domain.HistoryKey
	done   bool
}

// peek returns the current item, fetching the next page when the current
// one is used up.
func (p *pager[T]) peek(ctx context.Context) (T, bool, error) {
	var zero T

	if p.pos < len(p.page) {
		return p.page[p.pos], true, nil
	}
	if p.done {
		return zero, false, nil
	}

	start := time.Now()
	page, err := p.fetch(ctx, p.cursor, p.limit)
	if err != nil {
		return zero, false, err
	}
	p.observer.ObservePage(p.source, len(page), time.Since(start))

	p.page, p.pos = page, 0
	if len(page) < p.limit {
		p.done = true
	}
	if len(page) == 0 {
		return zero, false, nil
	}

	last := p.key(page[len(page)-1])
	p.cursor = &last

	return p.page[0], true, nil
}

func (p *pager[T]) advance() {
	p.pos++
}

type nopObserver struct{}

func (nopObserver) ObservePage(string, int, time.Duration) {}
