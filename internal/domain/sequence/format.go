package sequence

import (
	"strconv"
	"strings"

	"commission-tracker/internal/pkg/errs"
)

var (
	ErrNegativeNumber = errs.Validation(errs.New("sequence number must not be negative"))
	ErrInvalidWidth   = errs.Validation(errs.New("pad width must be at least 1"))
	ErrEmptyPrefix    = errs.Validation(errs.New("reference prefix is required"))
)

// Format renders "<prefix>-<number>" with number left-padded with zeros to
// width digits. A number needing more digits than width is rendered in full,
// so the 1000th campaign on a platform is FB-1000.
func Format(prefix string, number int64, width int) (string, error) {
	if prefix == "" {
		return "", ErrEmptyPrefix
	}
	if number < 0 {
		return "", ErrNegativeNumber
	}
	if width < 1 {
		return "", ErrInvalidWidth
	}

	digits := strconv.FormatInt(number, 10)
	var b strings.Builder
	b.Grow(len(prefix) + 1 + max(width, len(digits)))
	b.WriteString(prefix)
	b.WriteByte('-')
	for i := len(digits); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
	return b.String(), nil
}
