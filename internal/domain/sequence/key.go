package sequence

import (
	"strings"

	"commission-tracker/internal/pkg/errs"
)

const MaxKeyLength = 64

var ErrInvalidKey = errs.Validation(errs.New("counter key must be 1-64 characters without surrounding spaces"))

// Key identifies one counter. Campaign counters are keyed by platform, order
// counters by the owning campaign's reference id.
type Key struct {
	value string
}

func NewKey(s string) (Key, error) {
	if s == "" || len(s) > MaxKeyLength || strings.TrimSpace(s) != s {
		return Key{}, ErrInvalidKey
	}
	return Key{value: s}, nil
}

func (k Key) String() string {
	return k.value
}

func (k Key) IsZero() bool {
	return k.value == ""
}
