package repository

import (
	"context"

	"commission-tracker/internal/domain/campaign"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/infra/repository/converter"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=campaign.go -destination=../../../tests/mock/repository/campaign_mock.go -package=repositorymock

type CampaignWriteQueries interface {
	CreateCampaign(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCampaignParams) error
	FindCampaignByReferenceIDForUpdate(ctx context.Context, db sqlc.DBTX, referenceID string) (sqlc.Campaigns, error)
	UpdateCampaign(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCampaignParams) (int64, error)
}

type CampaignRepository struct {
	queries CampaignWriteQueries
}

func NewCampaignRepository(queries CampaignWriteQueries) *CampaignRepository {
	return &CampaignRepository{queries: queries}
}

func (r *CampaignRepository) Create(ctx context.Context, tx sqlc.DBTX, c *campaign.Campaign) error {
	if err := r.queries.CreateCampaign(ctx, tx, converter.CampaignToCreateParams(c)); err != nil {
		return wrapAllocatedInsertErr("failed to create campaign "+c.ReferenceID(), err)
	}
	return nil
}

// FindByRefForUpdate locks the campaign row until the transaction ends.
func (r *CampaignRepository) FindByRefForUpdate(ctx context.Context, tx sqlc.DBTX, referenceID string) (*campaign.Campaign, error) {
	row, err := r.queries.FindCampaignByReferenceIDForUpdate(ctx, tx, referenceID)
	if err != nil {
		return nil, infra.WrapRepoErr("campaign "+referenceID, err)
	}
	c, err := converter.CampaignToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt campaign row "+referenceID, err, infra.KindDBFailure)
	}
	return c, nil
}

func (r *CampaignRepository) Update(ctx context.Context, tx sqlc.DBTX, c *campaign.Campaign) error {
	n, err := r.queries.UpdateCampaign(ctx, tx, converter.CampaignToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update campaign "+c.ReferenceID(), err)
	}
	if n == 0 {
		return infra.WrapRepoErr("campaign "+c.ReferenceID(), nil, infra.KindNotFound)
	}
	return nil
}

// Reference ids come from the sequence counter, so a unique collision means
// the counter and the table disagree.
func wrapAllocatedInsertErr(msg string, err error) error {
	if infra.IsUniqueViolation(err) {
		return infra.WrapRepoErr(msg, err, infra.KindDBFailure)
	}
	return infra.WrapRepoErr(msg, err)
}
