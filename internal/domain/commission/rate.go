package commission

import (
	"math"
	"strconv"

	"commission-tracker/internal/pkg/errs"
)

const (
	// One basis point is 0.01 %.
	MaxBasisPoints int32 = 10000
	bpDivisor            = 10000
)

var ErrInvalidRate = errs.Validation(errs.New("commission rate must be between 0 and 100 percent"))

// Rate is a commission rate stored as basis points so two-decimal percentages
// round-trip exactly.
type Rate struct {
	bp int32
}

func NewRateFromBasisPoints(bp int32) (Rate, error) {
	if bp < 0 || bp > MaxBasisPoints {
		return Rate{}, ErrInvalidRate
	}
	return Rate{bp: bp}, nil
}

// NewRateFromPercent rounds p to two decimals.
func NewRateFromPercent(p float64) (Rate, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return Rate{}, ErrInvalidRate
	}
	bp := math.Round(p * 100)
	if bp < 0 || bp > float64(MaxBasisPoints) {
		return Rate{}, ErrInvalidRate
	}
	return Rate{bp: int32(bp)}, nil
}

func (r Rate) BasisPoints() int32 {
	return r.bp
}

func (r Rate) Percent() float64 {
	return float64(r.bp) / 100
}

func (r Rate) String() string {
	return strconv.FormatFloat(r.Percent(), 'f', 2, 64) + "%"
}

// Compute returns total x rate / 100, rounded half up to the cent.
func Compute(total Money, rate Rate) Money {
	bp := int64(rate.bp)
	whole := (total.cents / bpDivisor) * bp
	rest := ((total.cents%bpDivisor)*bp + bpDivisor/2) / bpDivisor
	return Money{cents: whole + rest}
}
