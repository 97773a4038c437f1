//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/infra/readstore"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/ptr"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/tests/common/dbtest"
	readstoremock "commission-tracker/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func campaignViewRow(ref string) sqlc.GetCampaignViewRow {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return sqlc.GetCampaignViewRow{
		ID:              uuid.New(),
		ReferenceID:     ref,
		Title:           "Spring launch",
		Platform:        "facebook",
		CampaignType:    "post",
		Url:             "https://facebook.com/posts/1",
		SalesPersonID:   uuid.New(),
		Status:          "active",
		StartDate:       pgtype.Date{Time: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		CreatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
		SalesPersonName: "Alice",
	}
}

// =============================================================================
// FindByRef Tests
// =============================================================================

func TestCampaignReadStore_FindByRef(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockCampaignViewQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: campaign found",
			setupMock: func(mock *readstoremock.MockCampaignViewQueries) {
				mock.EXPECT().GetCampaignView(ctx, gomock.Any(), "FB-001").Return(campaignViewRow("FB-001"), nil)
			},
		},
		{
			name: "error: campaign not found",
			setupMock: func(mock *readstoremock.MockCampaignViewQueries) {
				mock.EXPECT().GetCampaignView(ctx, gomock.Any(), "FB-001").Return(sqlc.GetCampaignViewRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockCampaignViewQueries) {
				mock.EXPECT().GetCampaignView(ctx, gomock.Any(), "FB-001").Return(sqlc.GetCampaignViewRow{}, dbtest.ErrConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockCampaignViewQueries(ctrl)
			store := readstore.NewCampaignReadStore(mockQueries, &dbtest.StubDB{})

			tc.setupMock(mockQueries)

			result, err := store.FindByRef(ctx, "FB-001")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "FB-001", result.ReferenceID)
			assert.Equal(t, "post", result.Type)
			assert.Equal(t, "Alice", result.SalesPersonName)
			require.NotNil(t, result.StartDate)
			assert.Nil(t, result.EndDate)
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestCampaignReadStore_ListFirstPage(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCampaignViewQueries(ctrl)
	store := readstore.NewCampaignReadStore(mockQueries, &dbtest.StubDB{})

	filter := queries.CampaignFilter{Platform: ptr.Of("instagram")}
	mockQueries.EXPECT().ListCampaignsFirstPage(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListCampaignsFirstPageParams) ([]sqlc.ListCampaignsFirstPageRow, error) {
			assert.Equal(t, pgtype.Text{String: "instagram", Valid: true}, arg.Platform)
			assert.False(t, arg.Status.Valid)
			assert.False(t, arg.SalesPersonID.Valid)
			assert.Equal(t, int32(21), arg.Limit)
			return []sqlc.ListCampaignsFirstPageRow{
				sqlc.ListCampaignsFirstPageRow(campaignViewRow("IG-002")),
				sqlc.ListCampaignsFirstPageRow(campaignViewRow("IG-001")),
			}, nil
		})

	views, err := store.ListFirstPage(ctx, filter, 21)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "IG-002", views[0].ReferenceID)
	assert.Equal(t, "IG-001", views[1].ReferenceID)
}

func TestCampaignReadStore_ListKeyset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCampaignViewQueries(ctrl)
	store := readstore.NewCampaignReadStore(mockQueries, &dbtest.StubDB{})

	lastAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	lastID := uuid.New()
	mockQueries.EXPECT().ListCampaignsKeyset(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListCampaignsKeysetParams) ([]sqlc.ListCampaignsKeysetRow, error) {
			assert.Equal(t, lastAt, arg.CreatedAt.Time)
			assert.Equal(t, lastID, arg.ID)
			return nil, dbtest.ErrConnectionLost
		})

	_, err := store.ListKeyset(ctx, queries.CampaignFilter{}, lastAt, lastID, 11)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
