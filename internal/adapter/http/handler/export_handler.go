package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/ledgerexport/internal/adapter/csvexport"
	"github.com/iho/ledgerexport/internal/adapter/http/dto"
	"github.com/iho/ledgerexport/internal/adapter/http/middleware"
	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/metrics"
	"github.com/iho/ledgerexport/internal/usecase"
)

// ExportIDHeader carries the id an export is logged under.
const ExportIDHeader = "X-Export-Id"

// Export kinds, used as metric labels.
const (
	KindSum        = "sum"
	KindAccounting = "accounting"
	KindStatement  = "statement"
)

// ExportService defines the behavior needed by ExportHandler.
type ExportService interface {
	Statement(ctx context.Context, input usecase.ExportInput) ([]*domain.ExportRow, error)
	Stream(ctx context.Context, input usecase.ExportInput) (iter.Seq2[*domain.ExportRow, error], error)
}

// ProfileService resolves the account an export belongs to.
type ProfileService interface {
	ResolveHistoryOwner(ctx context.Context, userID string) (*domain.AccountProfile, error)
	ResolveFreshHistoryOwner(ctx context.Context, userID string) (*domain.AccountProfile, error)
}

// ExportRecorder records export outcomes. *metrics.Metrics satisfies it.
type ExportRecorder interface {
	ExportStarted(kind string)
	ExportFinished(kind, outcome string, rows int, elapsed time.Duration)
}

// ExportConfig tunes ExportHandler.
type ExportConfig struct {
	Window           domain.WindowDefaults
	FlushRows        int
	StatementMaxRows int
}

// ExportHandler serves balance history downloads.
type ExportHandler struct {
	exports  ExportService
	profiles ProfileService
	recorder ExportRecorder
	cfg      ExportConfig
	now      func() time.Time
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exports ExportService, profiles ProfileService, recorder ExportRecorder, cfg ExportConfig) *ExportHandler {
	if cfg.StatementMaxRows <= 0 {
		cfg.StatementMaxRows = domain.MaxStatementRows
	}
	return &ExportHandler{
		exports:  exports,
		profiles: profiles,
		recorder: recorder,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Sum streams the caller's own balance history as CSV.
func (h *ExportHandler) Sum(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized, "unauthorized")
		return
	}
	if err := domain.RequireRole(user.Role, domain.HistoryRoles...); err != nil {
		writeDomainError(w, err, "export not allowed")
		return
	}

	req, err := dto.ParseExportWindowQuery(r.URL.Query())
	if err != nil {
		writeDomainError(w, err, "invalid export window")
		return
	}
	window, err := req.ToWindow(h.now(), h.cfg.Window)
	if err != nil {
		writeDomainError(w, err, "invalid export window")
		return
	}

	profile, err := h.profiles.ResolveHistoryOwner(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, err, "failed to resolve account")
		return
	}

	h.stream(w, r, KindSum, exportInput(profile, window), csvexport.SelfServiceFilename)
}

// Accounting streams a named account's balance history as CSV.
func (h *ExportHandler) Accounting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.ExportWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	window, err := req.ToWindow(h.now(), h.cfg.Window)
	if err != nil {
		writeDomainError(w, err, "invalid export window")
		return
	}

	// The filename reports the current balance, so skip the profile cache.
	profile, err := h.profiles.ResolveFreshHistoryOwner(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to resolve account")
		return
	}

	filename := csvexport.Filename(profile.Name, window.From, window.To, profile.BalanceAmount())
	var opts []csvexport.Option
	if profile.Role != domain.RoleMerchant {
		opts = append(opts, csvexport.WithTokenName(profile.Name))
	}

	h.stream(w, r, KindAccounting, exportInput(profile, window), filename, opts...)
}

// Statement returns a named account's balance history as JSON, most recent
// first, cut at the requested limit.
func (h *ExportHandler) Statement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	query := r.URL.Query()
	req, err := dto.ParseExportWindowQuery(query)
	if err != nil {
		writeDomainError(w, err, "invalid export window")
		return
	}
	window, err := req.ToWindow(h.now(), h.cfg.Window)
	if err != nil {
		writeDomainError(w, err, "invalid export window")
		return
	}
	rawLimit, err := dto.ParseLimitQuery(query)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit", err.Error())
		return
	}
	limit, err := domain.ValidateLimit(rawLimit, h.cfg.StatementMaxRows)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit", err.Error())
		return
	}

	profile, err := h.profiles.ResolveHistoryOwner(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to resolve account")
		return
	}

	start := time.Now()
	h.recorder.ExportStarted(KindStatement)

	rows, err := h.exports.Statement(r.Context(), exportInput(profile, window))
	if err != nil {
		h.recorder.ExportFinished(KindStatement, metrics.OutcomeRejected, 0, time.Since(start))
		writeDomainError(w, err, "failed to build statement")
		return
	}
	if profile.Role != domain.RoleMerchant {
		for _, row := range rows {
			row.WithTokenName(profile.Name)
		}
	}

	resp := dto.NewStatementResponse(profile, window, rows, limit)
	h.recorder.ExportFinished(KindStatement, metrics.OutcomeComplete, len(resp.Rows), time.Since(start))
	writeJSON(w, http.StatusOK, resp)
}

// stream writes the export as CSV.
func (h *ExportHandler) stream(w http.ResponseWriter, r *http.Request, kind string, input usecase.ExportInput, filename string, opts ...csvexport.Option) {
	run, r := startExport(r, h.recorder, kind, func(c zerolog.Context) zerolog.Context {
		return c.Str("balance_id", input.BalanceID).
			Str("role", string(input.Role)).
			Time("from", input.Window.From).
			Time("to", input.Window.To)
	})

	seq, err := h.exports.Stream(r.Context(), input)
	if err != nil {
		run.finish(0, metrics.OutcomeRejected, err)
		writeDomainError(w, err, "failed to start export")
		return
	}

	run.finish(streamCSV(w, run, seq, filename, h.cfg.FlushRows, func(out io.Writer, flush csvexport.Option) csvTable[*domain.ExportRow] {
		return csvexport.NewWriter(out, input.Role, append(opts, flush)...)
	}))
}

func exportInput(profile *domain.AccountProfile, window domain.Window) usecase.ExportInput {
	return usecase.ExportInput{
		BalanceID: profile.BalanceID,
		Role:      profile.Role,
		Window:    window,
	}
}
