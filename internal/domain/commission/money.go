package commission

import (
	"fmt"
	"math"

	"commission-tracker/internal/pkg/errs"
)

var (
	ErrNegativeAmount = errs.Validation(errs.New("amount must not be negative"))
	ErrAmountOverflow = errs.Validation(errs.New("amount is too large"))
)

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// MustMoney is for trusted values read back from storage.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero() Money { return Money{} }

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) (Money, error) {
	if m.cents > math.MaxInt64-other.cents {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: m.cents + other.cents}, nil
}

func (m Money) Times(qty int32) (Money, error) {
	if qty < 0 {
		return Money{}, ErrNegativeAmount
	}
	if qty != 0 && m.cents > math.MaxInt64/int64(qty) {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: m.cents * int64(qty)}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
