package uow

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// retryPolicy is exponential backoff with up to 20% jitter.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

func (p retryPolicy) retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

// allows reports whether another try may follow the zero based attempt.
func (p retryPolicy) allows(attempt int) bool {
	return attempt < p.maxRetries
}

func (p retryPolicy) delay(attempt int) time.Duration {
	d := p.base << attempt
	if jitter := int64(d / 5); jitter > 0 {
		d += time.Duration(rand.Int64N(jitter))
	}
	return d
}
