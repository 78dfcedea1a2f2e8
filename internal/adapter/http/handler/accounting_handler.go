package handler

import (
	"context"
	"io"
	"iter"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ledgerexport/internal/adapter/csvexport"
	"github.com/iho/ledgerexport/internal/adapter/http/dto"
	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/metrics"
)

// KindAccountingOverview labels downloads of the accounting overview.
const KindAccountingOverview = "accounting_overview"

// AccountingService defines the behavior needed by AccountingHandler.
type AccountingService interface {
	List(ctx context.Context, filter domain.AccountingFilter) (*domain.AccountingPage, error)
	All(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error)
	GeoLabel(ctx context.Context, geoID int64) (string, error)
}

// AccountingHandler serves the accounting overview of all accounts.
type AccountingHandler struct {
	accounting AccountingService
	recorder   ExportRecorder
	now        func() time.Time
}

// NewAccountingHandler creates a new AccountingHandler.
func NewAccountingHandler(accounting AccountingService, recorder ExportRecorder) *AccountingHandler {
	return &AccountingHandler{
		accounting: accounting,
		recorder:   recorder,
		now:        time.Now,
	}
}

// List returns one page of the overview as JSON.
func (h *AccountingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.ParseAccountingQuery(r.URL.Query())
	if err != nil {
		writeDomainError(w, err, "invalid accounting filter")
		return
	}

	page, err := h.accounting.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err, "failed to list accounting")
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountingListFromDomain(page))
}

// Download returns every account matching the filter as CSV. Paging
// parameters are ignored.
func (h *AccountingHandler) Download(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.ParseAccountingQuery(r.URL.Query())
	if err != nil {
		writeDomainError(w, err, "invalid accounting filter")
		return
	}

	run, r := startExport(r, h.recorder, KindAccountingOverview, func(c zerolog.Context) zerolog.Context {
		return c.Str("role", string(filter.Role)).
			Int64("geo_id", filter.GeoID).
			Bool("search", filter.Search != "")
	})

	var geo string
	if filter.Search == "" {
		geo, err = h.accounting.GeoLabel(r.Context(), filter.GeoID)
		if err != nil {
			run.finish(0, metrics.OutcomeRejected, err)
			writeDomainError(w, err, "failed to resolve geo")
			return
		}
	}

	items, err := h.accounting.All(r.Context(), filter)
	if err != nil {
		run.finish(0, metrics.OutcomeRejected, err)
		writeDomainError(w, err, "failed to list accounting")
		return
	}

	filename := csvexport.AccountingFilename(h.now(), filter.Role, geo, filter.Search)
	seq := func(yield func(*domain.AccountingEntry, error) bool) {
		for _, e := range items {
			if !yield(e, nil) {
				return
			}
		}
	}
	run.finish(streamCSV(w, run, iter.Seq2[*domain.AccountingEntry, error](seq), filename, 0, func(out io.Writer, flush csvexport.Option) csvTable[*domain.AccountingEntry] {
		return csvexport.NewAccountingTable(out, flush)
	}))
}
