package converter

import (
	"commission-tracker/internal/domain/campaign"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
)

func CampaignToDomain(row sqlc.Campaigns) (*campaign.Campaign, error) {
	title, err := campaign.NewTitle(row.Title)
	if err != nil {
		return nil, err
	}
	platform, err := campaign.NewPlatform(row.Platform)
	if err != nil {
		return nil, err
	}
	typ, err := campaign.NewType(row.CampaignType)
	if err != nil {
		return nil, err
	}
	link, err := campaign.NewURL(row.Url)
	if err != nil {
		return nil, err
	}
	status, err := campaign.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	period, err := campaign.NewPeriod(pgconv.DatePtrFromPgtype(row.StartDate), pgconv.DatePtrFromPgtype(row.EndDate))
	if err != nil {
		return nil, err
	}

	return campaign.ReconstructCampaign(
		row.ID,
		row.ReferenceID,
		title,
		platform,
		typ,
		link,
		row.SalesPersonID,
		status,
		period,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func CampaignToCreateParams(c *campaign.Campaign) sqlc.CreateCampaignParams {
	return sqlc.CreateCampaignParams{
		ID:            c.ID(),
		ReferenceID:   c.ReferenceID(),
		Title:         c.Title().Value(),
		Platform:      c.Platform().String(),
		CampaignType:  c.Type().String(),
		Url:           c.URL().Value(),
		SalesPersonID: c.SalesPersonID(),
		Status:        c.Status().String(),
		StartDate:     pgconv.DatePtrToPgtype(c.Period().Start()),
		EndDate:       pgconv.DatePtrToPgtype(c.Period().End()),
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CampaignToUpdateParams(c *campaign.Campaign) sqlc.UpdateCampaignParams {
	return sqlc.UpdateCampaignParams{
		ID:            c.ID(),
		Title:         c.Title().Value(),
		CampaignType:  c.Type().String(),
		Url:           c.URL().Value(),
		SalesPersonID: c.SalesPersonID(),
		Status:        c.Status().String(),
		StartDate:     pgconv.DatePtrToPgtype(c.Period().Start()),
		EndDate:       pgconv.DatePtrToPgtype(c.Period().End()),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}
