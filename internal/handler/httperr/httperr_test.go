//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Validation(errs.New("bad")), want: http.StatusUnprocessableEntity},
		{name: "wrapped not found", err: errs.Wrap(errs.NotFound(errs.New("gone")), "campaign FB-404"), want: http.StatusNotFound},
		{name: "unauthorized", err: errs.Unauthorized(errs.New("nope")), want: http.StatusUnauthorized},
		{name: "persistence", err: errs.Persistence(errs.New("db down")), want: http.StatusServiceUnavailable},
		{name: "unclassified", err: errs.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusFor(tc.err))
		})
	}
}
