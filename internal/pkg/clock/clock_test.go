//go:build unit

package clock_test

import (
	"testing"
	"time"

	"commission-tracker/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2025-03-10 08:00 JST is still March 9 in UTC.
	c := clock.NewFixedClock(time.Date(2025, 3, 10, 8, 0, 0, 0, tokyo))

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), clock.Today(c))

	c.Set(time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), clock.Today(c))
}

func TestDateOf(t *testing.T) {
	got := clock.DateOf(time.Date(2025, 12, 31, 23, 0, 0, 0, time.FixedZone("X", -5*3600)))
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestRealClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, clock.NewRealClock().Now().Location())
}
