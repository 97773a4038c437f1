package response

import "commission-tracker/internal/usecase/queries"

type LineItemResponse struct {
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCents     int64  `json:"total_cents"`
}

type OrderResponse struct {
	ID                  string             `json:"id"`
	ReferenceID         string             `json:"reference_id"`
	CampaignID          string             `json:"campaign_id"`
	CampaignReferenceID string             `json:"campaign_reference_id"`
	SalesPersonID       string             `json:"sales_person_id"`
	SalesPersonName     string             `json:"sales_person_name"`
	OrderDate           string             `json:"order_date"`
	Items               []LineItemResponse `json:"items"`
	OrderTotalCents     int64              `json:"order_total_cents"`
	SnapshotRatePercent float64            `json:"snapshot_rate_percent"`
	CommissionCents     int64              `json:"commission_cents"`
	CreatedAt           int64              `json:"created_at"`
	UpdatedAt           int64              `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]LineItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = LineItemResponse{
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			TotalCents:     int64(it.Quantity) * it.UnitPriceCents,
		}
	}
	return &OrderResponse{
		ID:                  v.ID.String(),
		ReferenceID:         v.ReferenceID,
		CampaignID:          v.CampaignID.String(),
		CampaignReferenceID: v.CampaignReferenceID,
		SalesPersonID:       v.SalesPersonID.String(),
		SalesPersonName:     v.SalesPersonName,
		OrderDate:           v.OrderDate.Format(dateLayout),
		Items:               items,
		OrderTotalCents:     v.OrderTotalCents,
		SnapshotRatePercent: basisPointsToPercent(v.SnapshotRateBP),
		CommissionCents:     v.CommissionCents,
		CreatedAt:           v.CreatedAt.Unix(),
		UpdatedAt:           v.UpdatedAt.Unix(),
	}
}

func FromOrderList(items []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(items))
	for i, it := range items {
		res[i] = FromOrderView(it)
	}
	return res
}

func basisPointsToPercent(bp int32) float64 {
	return float64(bp) / 100
}
