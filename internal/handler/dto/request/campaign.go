package request

import (
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCampaignRequest struct {
	Title         string    `json:"title" binding:"required,max=200"`
	Platform      string    `json:"platform" binding:"required,platform"`
	Type          string    `json:"type" binding:"required,campaigntype"`
	URL           string    `json:"url" binding:"required,url"`
	SalesPersonID uuid.UUID `json:"sales_person_id" binding:"required"`
	StartDate     *string   `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string   `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *CreateCampaignRequest) ToCommand() (commands.CreateCampaignRequest, error) {
	start, err := parseDatePtr(r.StartDate)
	if err != nil {
		return commands.CreateCampaignRequest{}, errs.Validation(err)
	}
	end, err := parseDatePtr(r.EndDate)
	if err != nil {
		return commands.CreateCampaignRequest{}, errs.Validation(err)
	}
	return commands.CreateCampaignRequest{
		Title:         r.Title,
		Platform:      r.Platform,
		Type:          r.Type,
		URL:           r.URL,
		SalesPersonID: r.SalesPersonID,
		StartDate:     start,
		EndDate:       end,
	}, nil
}

// UpdateCampaignRequest is a partial update. Platform is accepted so that a
// change can be rejected explicitly instead of being ignored.
type UpdateCampaignRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Platform      *string    `json:"platform" binding:"omitempty,platform"`
	Type          *string    `json:"type" binding:"omitempty,campaigntype"`
	URL           *string    `json:"url" binding:"omitempty,url"`
	SalesPersonID *uuid.UUID `json:"sales_person_id"`
	StartDate     *string    `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string    `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateCampaignRequest) ToCommand() (commands.UpdateCampaignRequest, error) {
	start, err := parseDatePtr(r.StartDate)
	if err != nil {
		return commands.UpdateCampaignRequest{}, errs.Validation(err)
	}
	end, err := parseDatePtr(r.EndDate)
	if err != nil {
		return commands.UpdateCampaignRequest{}, errs.Validation(err)
	}
	return commands.UpdateCampaignRequest{
		Title:         r.Title,
		Platform:      r.Platform,
		Type:          r.Type,
		URL:           r.URL,
		SalesPersonID: r.SalesPersonID,
		StartDate:     start,
		EndDate:       end,
	}, nil
}

type ChangeCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active paused ended"`
}
