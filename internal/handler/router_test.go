//go:build unit

package handler

import (
	"net/http"
	"strings"
	"testing"

	"commission-tracker/internal/handler/api"

	"github.com/stretchr/testify/assert"
)

func TestAPIRoutes(t *testing.T) {
	routes := apiRoutes(RouterParams{
		Auth:      &api.AuthHandler{},
		Campaigns: &api.CampaignHandler{},
		Orders:    &api.OrderHandler{},
		Users:     &api.UserHandler{},
		Dashboard: &api.DashboardHandler{},
		Sequences: &api.SequenceHandler{},
	})

	seen := map[string]bool{}
	for _, r := range routes {
		key := r.method + " " + r.path
		assert.False(t, seen[key], "duplicate route %s", key)
		seen[key] = true
		assert.NotNil(t, r.handle, key)

		switch {
		case r.path == "/auth/login" || r.path == "/auth/refresh":
			assert.Equal(t, public, r.access, key)
		case strings.HasPrefix(r.path, "/auth/"):
			assert.Equal(t, member, r.access, key)
		case strings.HasPrefix(r.path, "/users"), r.method != http.MethodGet:
			assert.Equal(t, adminOnly, r.access, key)
		default:
			assert.NotEqual(t, public, r.access, key)
		}
	}
}
