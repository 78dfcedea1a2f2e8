package handler

import (
	"io"
	"iter"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/iho/ledgerexport/internal/adapter/csvexport"
	"github.com/iho/ledgerexport/internal/infrastructure/metrics"
)

// csvTable is the part of a csvexport writer streamCSV drives.
type csvTable[T any] interface {
	WriteHeader() error
	Write(T) error
	Flush() error
	Rows() int
}

// exportRun logs and records one export from start to finish.
type exportRun struct {
	id       string
	kind     string
	logger   zerolog.Logger
	recorder ExportRecorder
	start    time.Time
}

// startExport opens an export of kind. fields adds the export's own log
// fields; the returned request carries the export logger.
func startExport(r *http.Request, recorder ExportRecorder, kind string, fields func(zerolog.Context) zerolog.Context) (*exportRun, *http.Request) {
	run := &exportRun{
		id:       ulid.Make().String(),
		kind:     kind,
		recorder: recorder,
	}
	run.logger = fields(zerolog.Ctx(r.Context()).With().
		Str("export_id", run.id).
		Str("kind", kind)).
		Logger()

	run.logger.Info().Msg("export started")
	run.start = time.Now()
	recorder.ExportStarted(kind)
	return run, r.WithContext(run.logger.WithContext(r.Context()))
}

func (run *exportRun) finish(rows int, outcome string, err error) {
	elapsed := time.Since(run.start)
	run.recorder.ExportFinished(run.kind, outcome, rows, elapsed)

	event := run.logger.Info()
	if err != nil {
		event = run.logger.Error().Err(err)
	}
	event.Int("rows", rows).Str("outcome", outcome).Dur("duration", elapsed).Msg("export finished")
}

// streamCSV writes seq as a CSV attachment. The first row is read before any
// header goes out, so failures up to that point still get a JSON error
// response. Later failures can only cut the file short.
func streamCSV[T any](w http.ResponseWriter, run *exportRun, seq iter.Seq2[T, error], filename string, flushRows int, newTable func(io.Writer, csvexport.Option) csvTable[T]) (rows int, outcome string, err error) {
	next, stop := iter.Pull2(seq)
	defer stop()

	first, err, more := next()
	if err != nil {
		writeDomainError(w, err, "failed to start export")
		return 0, metrics.OutcomeRejected, err
	}

	w.Header().Set("Content-Type", csvexport.ContentType)
	w.Header().Set("Content-Disposition", csvexport.ContentDisposition(filename))
	w.Header().Set(ExportIDHeader, run.id)
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	out := newTable(w, csvexport.WithFlushEvery(flushRows, rc.Flush))

	defer func() {
		rows = out.Rows()
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			outcome, err = metrics.OutcomeTruncated, flushErr
		}
	}()

	if !more {
		if err := out.WriteHeader(); err != nil {
			return 0, metrics.OutcomeTruncated, err
		}
		return 0, metrics.OutcomeComplete, nil
	}

	for row := first; more; row, err, more = next() {
		if err == nil {
			err = out.Write(row)
		}
		if err != nil {
			return 0, metrics.OutcomeTruncated, err
		}
	}
	return 0, metrics.OutcomeComplete, nil
}
