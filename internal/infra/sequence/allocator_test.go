//go:build unit

package sequence_test

import (
	"context"
	"sync"
	"testing"

	domseq "commission-tracker/internal/domain/sequence"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/infra/sequence"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/errs"
	sequencemock "commission-tracker/tests/mock/sequence"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mustKey(t *testing.T, s string) domseq.Key {
	t.Helper()
	k, err := domseq.NewKey(s)
	require.NoError(t, err)
	return k
}

func TestAllocateNext(t *testing.T) {
	t.Run("success: returns the incremented value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := sequencemock.NewMockCounterQueries(ctrl)
		q.EXPECT().AllocateNextSequence(gomock.Any(), nil, "facebook").Return(int64(7), nil)

		n, err := sequence.NewPostgresAllocator(q).AllocateNext(context.Background(), nil, mustKey(t, "facebook"))
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})

	t.Run("error: write failure is a persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := sequencemock.NewMockCounterQueries(ctrl)
		q.EXPECT().AllocateNextSequence(gomock.Any(), nil, "FB-001").Return(int64(0), errs.New("connection reset"))

		_, err := sequence.NewPostgresAllocator(q).AllocateNext(context.Background(), nil, mustKey(t, "FB-001"))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: non-positive result is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := sequencemock.NewMockCounterQueries(ctrl)
		q.EXPECT().AllocateNextSequence(gomock.Any(), nil, "instagram").Return(int64(0), nil)

		_, err := sequence.NewPostgresAllocator(q).AllocateNext(context.Background(), nil, mustKey(t, "instagram"))
		assert.True(t, errs.Is(err, errs.ErrPersistence))
	})

	t.Run("error: zero key never reaches storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := sequencemock.NewMockCounterQueries(ctrl)

		_, err := sequence.NewPostgresAllocator(q).AllocateNext(context.Background(), nil, domseq.Key{})
		require.ErrorIs(t, err, domseq.ErrInvalidKey)
	})

	t.Run("success: concurrent callers get what storage returns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := sequencemock.NewMockCounterQueries(ctrl)

		var mu sync.Mutex
		var counter int64
		q.EXPECT().AllocateNextSequence(gomock.Any(), nil, "facebook").
			DoAndReturn(func(context.Context, sqlc.DBTX, string) (int64, error) {
				mu.Lock()
				defer mu.Unlock()
				counter++
				return counter, nil
			}).Times(50)

		alloc := sequence.NewPostgresAllocator(q)
		key := mustKey(t, "facebook")

		results := make(chan int64, 50)
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n, err := alloc.AllocateNext(context.Background(), nil, key)
				assert.NoError(t, err)
				results <- n
			}()
		}
		wg.Wait()
		close(results)

		seen := make(map[int64]bool, 50)
		for n := range results {
			assert.False(t, seen[n], "duplicate %d", n)
			seen[n] = true
		}
		assert.Len(t, seen, 50)
	})
}

func TestCurrent(t *testing.T) {
	t.Run("success: missing counter reads as zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := sequencemock.NewMockCounterQueries(ctrl)
		q.EXPECT().GetSequence(gomock.Any(), nil, "FB-009").Return(int64(0), pgx.ErrNoRows)

		n, err := sequence.NewPostgresAllocator(q).Current(context.Background(), nil, mustKey(t, "FB-009"))
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("success: existing counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := sequencemock.NewMockCounterQueries(ctrl)
		q.EXPECT().GetSequence(gomock.Any(), nil, "instagram").Return(int64(12), nil)

		n, err := sequence.NewPostgresAllocator(q).Current(context.Background(), nil, mustKey(t, "instagram"))
		require.NoError(t, err)
		assert.Equal(t, int64(12), n)
	})
}
