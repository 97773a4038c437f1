package order

import (
	"strings"
	"unicode/utf8"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/pkg/errs"
)

const MaxItemNameLength = 200

var (
	ErrNoValidItems     = errs.Validation(errs.New("order needs at least one item with a name and a positive quantity"))
	ErrNegativePrice    = errs.Validation(errs.New("unit price must not be negative"))
	ErrItemNameTooLong  = errs.Validation(errs.New("item name must be at most 200 characters"))
	ErrTooManyLineItems = errs.Validation(errs.New("order has too many items"))
)

const MaxLineItems = 200

// ItemInput is a line item as submitted, before sanitizing.
type ItemInput struct {
	Name      string
	Quantity  int32
	UnitPrice int64
}

type LineItem struct {
	name      string
	quantity  int32
	unitPrice commission.Money
}

func ReconstructLineItem(name string, quantity int32, unitPrice commission.Money) LineItem {
	return LineItem{name: name, quantity: quantity, unitPrice: unitPrice}
}

func (li LineItem) Name() string                { return li.name }
func (li LineItem) Quantity() int32             { return li.quantity }
func (li LineItem) UnitPrice() commission.Money { return li.unitPrice }

func (li LineItem) Total() (commission.Money, error) {
	return li.unitPrice.Times(li.quantity)
}

// SanitizeItems drops entries with a blank name or a non-positive quantity.
// A negative price is rejected rather than dropped. Fails with ErrNoValidItems
// when nothing is left.
func SanitizeItems(in []ItemInput) ([]LineItem, error) {
	if len(in) > MaxLineItems {
		return nil, ErrTooManyLineItems
	}
	items := make([]LineItem, 0, len(in))
	for _, raw := range in {
		name := strings.TrimSpace(raw.Name)
		if name == "" || raw.Quantity <= 0 {
			continue
		}
		if utf8.RuneCountInString(name) > MaxItemNameLength {
			return nil, ErrItemNameTooLong
		}
		if raw.UnitPrice < 0 {
			return nil, ErrNegativePrice
		}
		price, err := commission.NewMoney(raw.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, LineItem{name: name, quantity: raw.Quantity, unitPrice: price})
	}
	if len(items) == 0 {
		return nil, ErrNoValidItems
	}
	return items, nil
}

// Totals is the pair of amounts derived from the items and a rate.
type Totals struct {
	OrderTotal commission.Money
	Commission commission.Money
}

func ComputeTotals(items []LineItem, rate commission.Rate) (Totals, error) {
	total := commission.Zero()
	for _, li := range items {
		lt, err := li.Total()
		if err != nil {
			return Totals{}, err
		}
		if total, err = total.Add(lt); err != nil {
			return Totals{}, err
		}
	}
	return Totals{OrderTotal: total, Commission: commission.Compute(total, rate)}, nil
}
