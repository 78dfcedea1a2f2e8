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
	"github.com/iho/ledgerexport/internal/adapter/http/middleware"
	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/metrics"
)

// KindActivity labels plain transaction exports.
const KindActivity = "activity"

// ActivityService defines the behavior needed by ActivityHandler.
type ActivityService interface {
	Stream(ctx context.Context, filter domain.ActivityFilter) (iter.Seq2[*domain.ActivityRow, error], error)
}

// ActivityHandler serves the caller's plain transaction list as CSV.
type ActivityHandler struct {
	activities ActivityService
	recorder   ExportRecorder
	window     domain.WindowDefaults
	flushRows  int
	now        func() time.Time
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activities ActivityService, recorder ExportRecorder, window domain.WindowDefaults, flushRows int) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
		recorder:   recorder,
		window:     window,
		flushRows:  flushRows,
		now:        time.Now,
	}
}

// Transactions streams the transactions that moved the caller's trust
// balance, newest first.
func (h *ActivityHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized, "unauthorized")
		return
	}

	req, err := dto.ParseActivityQuery(r.URL.Query())
	if err != nil {
		writeDomainError(w, err, "invalid transaction filter")
		return
	}
	filter, err := req.ToFilter(user.ID, user.Role, h.now(), h.window)
	if err != nil {
		writeDomainError(w, err, "invalid transaction filter")
		return
	}

	run, r := startExport(r, h.recorder, KindActivity, func(c zerolog.Context) zerolog.Context {
		return c.Str("user_id", filter.UserID).
			Str("role", string(filter.Role)).
			Time("from", filter.Window.From).
			Time("to", filter.Window.To)
	})

	seq, err := h.activities.Stream(r.Context(), filter)
	if err != nil {
		run.finish(0, metrics.OutcomeRejected, err)
		writeDomainError(w, err, "failed to start export")
		return
	}

	run.finish(streamCSV(w, run, seq, csvexport.SelfServiceFilename, h.flushRows, func(out io.Writer, flush csvexport.Option) csvTable[*domain.ActivityRow] {
		return csvexport.NewActivityTable(out, flush)
	}))
}
