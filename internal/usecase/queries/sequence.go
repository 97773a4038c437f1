package queries

import (
	"context"

	"commission-tracker/internal/domain/sequence"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=sequence.go -destination=../../../tests/mock/queries/sequence_mock.go -package=queriesmock

type SequenceReader interface {
	Current(ctx context.Context, db sqlc.DBTX, key sequence.Key) (int64, error)
}

type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type SequenceQueries interface {
	// Current never allocates; an unknown key reports 0.
	Current(ctx context.Context, key string) (*SequenceView, error)
}

type sequenceQueriesImpl struct {
	runner ReadOnlyRunner
	reader SequenceReader
}

func NewSequenceQueries(runner ReadOnlyRunner, reader SequenceReader) SequenceQueries {
	return &sequenceQueriesImpl{runner: runner, reader: reader}
}

func (q *sequenceQueriesImpl) Current(ctx context.Context, raw string) (*SequenceView, error) {
	key, err := sequence.NewKey(raw)
	if err != nil {
		return nil, err
	}
	var n int64
	err = q.runner.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var rerr error
		n, rerr = q.reader.Current(ctx, db, key)
		return rerr
	})
	if err != nil {
		return nil, err
	}
	return &SequenceView{Key: key.String(), Current: n}, nil
}
