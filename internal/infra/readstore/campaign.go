package readstore

import (
	"context"
	"time"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=campaign.go -destination=../../../tests/mock/readstore/campaign_mock.go -package=readstoremock

type CampaignViewQueries interface {
	GetCampaignView(ctx context.Context, db sqlc.DBTX, referenceID string) (sqlc.GetCampaignViewRow, error)
	ListCampaignsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCampaignsFirstPageParams) ([]sqlc.ListCampaignsFirstPageRow, error)
	ListCampaignsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCampaignsKeysetParams) ([]sqlc.ListCampaignsKeysetRow, error)
}

type CampaignReadStore struct {
	queries CampaignViewQueries
	db      sqlc.DBTX
}

func NewCampaignReadStore(queries CampaignViewQueries, db sqlc.DBTX) *CampaignReadStore {
	return &CampaignReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CampaignReadStore) FindByRef(ctx context.Context, referenceID string) (*queries.CampaignView, error) {
	row, err := r.queries.GetCampaignView(ctx, r.db, referenceID)
	if err != nil {
		return nil, infra.WrapRepoErr("campaign "+referenceID, err)
	}
	return toCampaignView(row), nil
}

func (r *CampaignReadStore) ListFirstPage(ctx context.Context, filter queries.CampaignFilter, limit int32) ([]*queries.CampaignView, error) {
	rows, err := r.queries.ListCampaignsFirstPage(ctx, r.db, sqlc.ListCampaignsFirstPageParams{
		Platform:      pgconv.StringPtrToPgtype(filter.Platform),
		Status:        pgconv.StringPtrToPgtype(filter.Status),
		SalesPersonID: pgconv.UUIDPtrToPgtype(filter.SalesPersonID),
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns", err)
	}
	out := make([]*queries.CampaignView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCampaignView(sqlc.GetCampaignViewRow(row)))
	}
	return out, nil
}

func (r *CampaignReadStore) ListKeyset(ctx context.Context, filter queries.CampaignFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CampaignView, error) {
	rows, err := r.queries.ListCampaignsKeyset(ctx, r.db, sqlc.ListCampaignsKeysetParams{
		Platform:      pgconv.StringPtrToPgtype(filter.Platform),
		Status:        pgconv.StringPtrToPgtype(filter.Status),
		SalesPersonID: pgconv.UUIDPtrToPgtype(filter.SalesPersonID),
		CreatedAt:     pgconv.TimeToPgtype(lastCreatedAt),
		ID:            lastID,
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns after cursor", err)
	}
	out := make([]*queries.CampaignView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCampaignView(sqlc.GetCampaignViewRow(row)))
	}
	return out, nil
}

func toCampaignView(row sqlc.GetCampaignViewRow) *queries.CampaignView {
	return &queries.CampaignView{
		ID:              row.ID,
		ReferenceID:     row.ReferenceID,
		Title:           row.Title,
		Platform:        row.Platform,
		Type:            row.CampaignType,
		URL:             row.Url,
		SalesPersonID:   row.SalesPersonID,
		SalesPersonName: row.SalesPersonName,
		Status:          row.Status,
		StartDate:       pgconv.DatePtrFromPgtype(row.StartDate),
		EndDate:         pgconv.DatePtrFromPgtype(row.EndDate),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
