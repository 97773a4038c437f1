//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 10 * time.Millisecond}

	t.Run("retryable", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want bool
		}{
			{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
			{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
			{name: "wrapped by repository", err: infra.WrapRepoErr("allocate", &pgconn.PgError{Code: "40001"}), want: true},
			{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
			{name: "plain error", err: errors.New("boom"), want: false},
			{name: "nil", err: nil, want: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, p.retryable(tc.err))
			})
		}
	})

	t.Run("allows stops at the limit", func(t *testing.T) {
		assert.True(t, p.allows(0))
		assert.True(t, p.allows(2))
		assert.False(t, p.allows(3))
		assert.False(t, retryPolicy{}.allows(0))
	})

	t.Run("delay doubles with bounded jitter", func(t *testing.T) {
		for attempt := 0; attempt < 4; attempt++ {
			floor := p.base << attempt
			got := p.delay(attempt)
			assert.GreaterOrEqual(t, got, floor)
			assert.Less(t, got, floor+floor/5)
		}
	})
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))
	assert.True(t, errs.Is(classify(errors.New("conn reset")), errs.ErrPersistence))

	notFound := errs.NotFound(errs.New("campaign"))
	assert.Equal(t, notFound, classify(notFound))
	assert.ErrorIs(t, classify(context.Canceled), context.Canceled)
	assert.False(t, errs.Is(classify(context.DeadlineExceeded), errs.ErrPersistence))
}

func TestSleepHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleep(context.Background(), time.Millisecond))
}
