package response

import "commission-tracker/internal/usecase/queries"

type SalesPersonCommissionResponse struct {
	SalesPersonID        string `json:"sales_person_id"`
	SalesPersonName      string `json:"sales_person_name"`
	OrderCount           int64  `json:"order_count"`
	SalesTotalCents      int64  `json:"sales_total_cents"`
	CommissionTotalCents int64  `json:"commission_total_cents"`
}

type CommissionSummaryResponse struct {
	From                 string                          `json:"from"`
	To                   string                          `json:"to"`
	SalesPeople          []SalesPersonCommissionResponse `json:"sales_people"`
	OrderCount           int64                           `json:"order_count"`
	SalesTotalCents      int64                           `json:"sales_total_cents"`
	CommissionTotalCents int64                           `json:"commission_total_cents"`
}

func FromCommissionSummary(s *queries.CommissionSummary) *CommissionSummaryResponse {
	people := make([]SalesPersonCommissionResponse, len(s.SalesPeople))
	for i, p := range s.SalesPeople {
		people[i] = SalesPersonCommissionResponse{
			SalesPersonID:        p.SalesPersonID.String(),
			SalesPersonName:      p.SalesPersonName,
			OrderCount:           p.OrderCount,
			SalesTotalCents:      p.SalesTotalCents,
			CommissionTotalCents: p.CommissionTotalCents,
		}
	}
	return &CommissionSummaryResponse{
		From:                 s.From.Format(dateLayout),
		To:                   s.To.Format(dateLayout),
		SalesPeople:          people,
		OrderCount:           s.OrderCount,
		SalesTotalCents:      s.SalesTotalCents,
		CommissionTotalCents: s.CommissionTotalCents,
	}
}

type SequenceResponse struct {
	Key     string `json:"key"`
	Current int64  `json:"current"`
}

func FromSequenceView(v *queries.SequenceView) *SequenceResponse {
	return &SequenceResponse{Key: v.Key, Current: v.Current}
}
