package sequence

import (
	"context"

	domseq "commission-tracker/internal/domain/sequence"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/pgconv"
)

//go:generate mockgen -source=allocator.go -destination=../../../tests/mock/sequence/allocator_mock.go -package=sequencemock

var errNonPositiveSequence = errs.New("counter returned a non-positive value")

type CounterQueries interface {
	AllocateNextSequence(ctx context.Context, db sqlc.DBTX, key string) (int64, error)
	GetSequence(ctx context.Context, db sqlc.DBTX, key string) (int64, error)
}

// PostgresAllocator increments sequence_counters with a single upsert. The
// conflicting row is locked until the surrounding transaction ends, so callers
// on the same key queue behind each other while other keys proceed.
type PostgresAllocator struct {
	queries CounterQueries
}

func NewPostgresAllocator(queries CounterQueries) *PostgresAllocator {
	return &PostgresAllocator{queries: queries}
}

func (a *PostgresAllocator) AllocateNext(ctx context.Context, db sqlc.DBTX, key domseq.Key) (int64, error) {
	if key.IsZero() {
		return 0, domseq.ErrInvalidKey
	}
	n, err := a.queries.AllocateNextSequence(ctx, db, key.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate sequence "+key.String(), err, infra.KindDBFailure)
	}
	if n < 1 {
		return 0, infra.WrapRepoErr("failed to allocate sequence "+key.String(), errNonPositiveSequence, infra.KindDBFailure)
	}
	return n, nil
}

// Current returns the last allocated value, 0 when the counter does not exist.
func (a *PostgresAllocator) Current(ctx context.Context, db sqlc.DBTX, key domseq.Key) (int64, error) {
	if key.IsZero() {
		return 0, domseq.ErrInvalidKey
	}
	n, err := a.queries.GetSequence(ctx, db, key.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read sequence "+key.String(), err)
	}
	return n, nil
}
