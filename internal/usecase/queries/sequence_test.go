//go:build unit

package queries_test

import (
	"context"
	"testing"

	"commission-tracker/internal/domain/sequence"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/queries"
	queriesmock "commission-tracker/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSequenceQueries_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reads inside a read-only transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := queriesmock.NewMockReadOnlyRunner(ctrl)
		reader := queriesmock.NewMockSequenceReader(ctrl)
		q := queries.NewSequenceQueries(runner, reader)

		key, err := sequence.NewKey("FB-001")
		require.NoError(t, err)

		runner.EXPECT().WithinReadOnly(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
				return fn(ctx, nil)
			})
		reader.EXPECT().Current(ctx, nil, key).Return(int64(7), nil)

		v, err := q.Current(ctx, "FB-001")

		require.NoError(t, err)
		assert.Equal(t, "FB-001", v.Key)
		assert.Equal(t, int64(7), v.Current)
	})

	t.Run("error: blank key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewSequenceQueries(queriesmock.NewMockReadOnlyRunner(ctrl), queriesmock.NewMockSequenceReader(ctrl))

		_, err := q.Current(ctx, "")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
