package request

import (
	"time"

	"commission-tracker/internal/domain/campaign"
	"commission-tracker/internal/pkg/clock"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of calendar days.
const DateLayout = "2006-01-02"

// RegisterValidators adds the notfuture, platform and campaigntype tags.
func RegisterValidators(v *validator.Validate, clk clock.Clock) error {
	if err := v.RegisterValidation("notfuture", notFuture(clk)); err != nil {
		return err
	}
	if err := v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		_, err := campaign.NewPlatform(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("campaigntype", func(fl validator.FieldLevel) bool {
		_, err := campaign.NewType(fl.Field().String())
		return err == nil
	})
}

// notFuture leaves malformed dates to the datetime tag.
func notFuture(clk clock.Clock) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return true
		}
		return !d.After(clock.Today(clk))
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
