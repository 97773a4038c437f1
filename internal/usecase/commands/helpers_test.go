//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/usecase/shared"
	sharedmock "commission-tracker/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type uowFixture struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	sequences   *sharedmock.MockSequenceAllocator
	reads       *sharedmock.MockCommandReads
	campaigns   *sharedmock.MockCampaignRepository
	orders      *sharedmock.MockOrderRepository
	users       *sharedmock.MockUserRepository
	invalidator *sharedmock.MockSummaryInvalidator
	clock       *clock.FixedClock
}

// newUOWFixture runs every Within callback against one mocked Tx.
func newUOWFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		sequences:   sharedmock.NewMockSequenceAllocator(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		campaigns:   sharedmock.NewMockCampaignRepository(ctrl),
		orders:      sharedmock.NewMockOrderRepository(ctrl),
		users:       sharedmock.NewMockUserRepository(ctrl),
		invalidator: sharedmock.NewMockSummaryInvalidator(ctrl),
		clock:       clock.NewFixedClock(fixedNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Sequences().Return(f.sequences).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Campaigns().Return(f.campaigns).AnyTimes()
	f.tx.EXPECT().Orders().Return(f.orders).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}
