package campaign

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"commission-tracker/internal/pkg/errs"
)

var (
	ErrInvalidTitle     = errs.Validation(errs.New("title must be 1-200 characters"))
	ErrInvalidURL       = errs.Validation(errs.New("url must be an absolute http(s) url"))
	ErrInvalidDateRange = errs.Validation(errs.New("start date must not be after end date"))
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n == 0 || n > 200 {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: s}, nil
}

func (t Title) Value() string {
	return t.value
}

// URL is optional; the zero value means no link.
type URL struct {
	value string
}

func NewURL(s string) (URL, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return URL{}, nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return URL{}, ErrInvalidURL
	}
	return URL{value: s}, nil
}

func (u URL) Value() string {
	return u.value
}

// Period is the optional run of a campaign in calendar days.
type Period struct {
	start *time.Time
	end   *time.Time
}

func NewPeriod(start, end *time.Time) (Period, error) {
	if start != nil && end != nil && start.After(*end) {
		return Period{}, ErrInvalidDateRange
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() *time.Time { return p.start }
func (p Period) End() *time.Time   { return p.end }
