package response

import (
	"time"

	"commission-tracker/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type CampaignResponse struct {
	ID              string  `json:"id"`
	ReferenceID     string  `json:"reference_id"`
	Title           string  `json:"title"`
	Platform        string  `json:"platform"`
	Type            string  `json:"type"`
	URL             string  `json:"url"`
	SalesPersonID   string  `json:"sales_person_id"`
	SalesPersonName string  `json:"sales_person_name"`
	Status          string  `json:"status"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

func FromCampaignView(v *queries.CampaignView) *CampaignResponse {
	return &CampaignResponse{
		ID:              v.ID.String(),
		ReferenceID:     v.ReferenceID,
		Title:           v.Title,
		Platform:        v.Platform,
		Type:            v.Type,
		URL:             v.URL,
		SalesPersonID:   v.SalesPersonID.String(),
		SalesPersonName: v.SalesPersonName,
		Status:          v.Status,
		StartDate:       formatDatePtr(v.StartDate),
		EndDate:         formatDatePtr(v.EndDate),
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
}

func FromCampaignList(items []*queries.CampaignView) []*CampaignResponse {
	res := make([]*CampaignResponse, len(items))
	for i, it := range items {
		res[i] = FromCampaignView(it)
	}
	return res
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
