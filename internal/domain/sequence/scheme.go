package sequence

import (
	"commission-tracker/internal/pkg/errs"
)

// Kind names the entity type a reference id is issued for.
type Kind string

const (
	KindCampaign Kind = "campaign"
	KindOrder    Kind = "order"
)

// Scheme is the formatting rule for one entity kind.
type Scheme struct {
	Kind  Kind
	Width int
}

var schemes = map[Kind]Scheme{
	KindCampaign: {Kind: KindCampaign, Width: 3},
	KindOrder:    {Kind: KindOrder, Width: 2},
}

var ErrUnknownKind = errs.Validation(errs.New("unknown sequence kind"))

func SchemeFor(kind Kind) (Scheme, error) {
	s, ok := schemes[kind]
	if !ok {
		return Scheme{}, ErrUnknownKind
	}
	return s, nil
}

// Issue formats number as a reference id under prefix.
func (s Scheme) Issue(prefix string, number int64) (string, error) {
	return Format(prefix, number, s.Width)
}
