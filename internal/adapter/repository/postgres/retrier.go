package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// SQLSTATE codes the export reads care about. On a hot standby a query that
// conflicts with WAL replay is cancelled with a serialization failure.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
	pgErrConnectionFailure    = "08006"
	pgErrQueryCanceled        = "57014"

	pgClassConnectionException = "08"
)

// Retrier implements usecase.Retrier for replica reads: transient failures
// are retried with exponential backoff, anything else fails at once.
type Retrier struct {
	maxRetries uint64
	backOff    func() *backoff.ExponentialBackOff
}

// NewRetrier creates a Retrier that makes up to three more attempts within
// ten seconds.
func NewRetrier() *Retrier {
	return newRetrier(3, 50*time.Millisecond, time.Second, 10*time.Second)
}

func newRetrier(maxRetries uint64, initial, maxInterval, maxElapsed time.Duration) *Retrier {
	return &Retrier{
		maxRetries: maxRetries,
		backOff: func() *backoff.ExponentialBackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxInterval
			b.MaxElapsedTime = maxElapsed
			return b
		},
	}
}

// Retry runs operation until it succeeds, fails permanently, or the retry
// budget or ctx runs out. The last error is returned.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	logger := zerolog.Ctx(ctx)
	policy := backoff.WithContext(backoff.WithMaxRetries(r.backOff(), r.maxRetries), ctx)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := operation()
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		logger.Warn().
			Err(err).
			Str("sqlstate", sqlState(err)).
			Int("attempt", attempt).
			Dur("backoff", wait).
			Msg("transient store error, retrying")
	})
}

// isRetryableError reports whether err is worth another attempt.
func isRetryableError(err error) bool {
	switch code := sqlState(err); {
	case code == pgErrDeadlock, code == pgErrSerializationFailure:
		return true
	case strings.HasPrefix(code, pgClassConnectionException):
		return true
	}
	return pgconn.SafeToRetry(err)
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
