//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/infra/repository"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/tests/common/builder"
	"commission-tracker/tests/common/dbtest"
	repositorymock "commission-tracker/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Campaign Tests
// =============================================================================

func TestCampaignRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockCampaignWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
		expectMark error
	}{
		{
			name: "success: campaign created with its reference id",
			setupMock: func(mock *repositorymock.MockCampaignWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateCampaign(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCampaignParams) error {
						assert.Equal(t, "FB-001", arg.ReferenceID)
						assert.Equal(t, "facebook", arg.Platform)
						assert.Equal(t, "active", arg.Status)
						assert.False(t, arg.StartDate.Valid)
						return nil
					})
			},
		},
		{
			name: "error: allocated reference id already taken is a persistence failure",
			setupMock: func(mock *repositorymock.MockCampaignWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateCampaign(ctx, tx, gomock.Any()).Return(dup)
			},
			expectKind: infra.KindDBFailure,
			expectMark: errs.ErrPersistence,
		},
		{
			name: "error: sales person row missing",
			setupMock: func(mock *repositorymock.MockCampaignWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateCampaign(ctx, tx, gomock.Any()).Return(fk)
			},
			expectKind: infra.KindForeignKeyViolated,
			expectMark: errs.ErrNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockCampaignWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateCampaign(ctx, tx, gomock.Any()).Return(errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
			expectMark: errs.ErrPersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCampaignWriteQueries(ctrl)
			mockDB := &dbtest.StubDB{}
			repo := repository.NewCampaignRepository(mockQueries)

			c, err := builder.NewCampaignBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			err = repo.Create(ctx, mockDB, c)

			if tc.expectMark == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
			assert.True(t, errs.Is(err, tc.expectMark))
		})
	}
}

// =============================================================================
// FindByRefForUpdate Tests
// =============================================================================

func TestCampaignRepository_FindByRefForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCampaignWriteQueries(ctrl)
		mockDB := &dbtest.StubDB{}
		repo := repository.NewCampaignRepository(mockQueries)

		row, err := builder.NewCampaignBuilder().WithStatus("paused").BuildInfra()
		require.NoError(t, err)
		mockQueries.EXPECT().FindCampaignByReferenceIDForUpdate(ctx, mockDB, "FB-001").Return(row, nil)

		c, err := repo.FindByRefForUpdate(ctx, mockDB, "FB-001")

		require.NoError(t, err)
		assert.Equal(t, row.ID, c.ID())
		assert.Equal(t, "FB-001", c.ReferenceID())
		assert.Equal(t, "paused", c.Status().String())
		assert.Equal(t, row.SalesPersonID, c.SalesPersonID())
	})

	t.Run("error: campaign not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCampaignWriteQueries(ctrl)
		mockDB := &dbtest.StubDB{}
		repo := repository.NewCampaignRepository(mockQueries)

		mockQueries.EXPECT().FindCampaignByReferenceIDForUpdate(ctx, mockDB, "FB-404").Return(sqlc.Campaigns{}, pgx.ErrNoRows)

		_, err := repo.FindByRefForUpdate(ctx, mockDB, "FB-404")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: corrupt row is a storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCampaignWriteQueries(ctrl)
		mockDB := &dbtest.StubDB{}
		repo := repository.NewCampaignRepository(mockQueries)

		row, err := builder.NewCampaignBuilder().BuildInfra()
		require.NoError(t, err)
		row.Platform = "tiktok"
		mockQueries.EXPECT().FindCampaignByReferenceIDForUpdate(ctx, mockDB, "FB-001").Return(row, nil)

		_, err = repo.FindByRefForUpdate(ctx, mockDB, "FB-001")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
	})
}

// =============================================================================
// Update Tests
// =============================================================================

func TestCampaignRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectMark error
	}{
		{name: "success: one row updated", rows: 1},
		{name: "error: row vanished", rows: 0, expectMark: errs.ErrNotFound},
		{name: "error: database error occurs", dbErr: errors.New("timeout"), expectMark: errs.ErrPersistence},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCampaignWriteQueries(ctrl)
			mockDB := &dbtest.StubDB{}
			repo := repository.NewCampaignRepository(mockQueries)

			c, err := builder.NewCampaignBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().UpdateCampaign(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateCampaignParams) (int64, error) {
					assert.Equal(t, c.ID(), arg.ID)
					return tc.rows, tc.dbErr
				})

			err = repo.Update(ctx, mockDB, c)

			if tc.expectMark == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectMark))
		})
	}
}
