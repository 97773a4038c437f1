package request

import (
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/commands"
)

// LineItemRequest is loosely validated on purpose: blank names and
// non-positive quantities are dropped by the order itself.
type LineItemRequest struct {
	Name           string `json:"name" binding:"max=200"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type CreateOrderRequest struct {
	CampaignReferenceID string            `json:"campaign_reference_id" binding:"required"`
	OrderDate           string            `json:"order_date" binding:"required,datetime=2006-01-02,notfuture"`
	Items               []LineItemRequest `json:"items" binding:"required,min=1,max=200,dive"`
}

func (r *CreateOrderRequest) ToCommand() (commands.CreateOrderRequest, error) {
	date, err := parseDate(r.OrderDate)
	if err != nil {
		return commands.CreateOrderRequest{}, errs.Validation(err)
	}
	return commands.CreateOrderRequest{
		CampaignReferenceID: r.CampaignReferenceID,
		OrderDate:           date,
		Items:               toLineItemInputs(r.Items),
	}, nil
}

type ReplaceItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"required,min=1,max=200,dive"`
}

func (r *ReplaceItemsRequest) ToCommand() []commands.LineItemInput {
	return toLineItemInputs(r.Items)
}

func toLineItemInputs(items []LineItemRequest) []commands.LineItemInput {
	out := make([]commands.LineItemInput, len(items))
	for i, it := range items {
		out[i] = commands.LineItemInput{Name: it.Name, Quantity: it.Quantity, UnitPriceCents: it.UnitPriceCents}
	}
	return out
}
