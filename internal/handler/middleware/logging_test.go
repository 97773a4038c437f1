//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02"})

	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return r
}

func TestRequestID(t *testing.T) {
	t.Run("success: generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		newLoggedRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("success: caller supplied id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "upstream-123")
		w := httptest.NewRecorder()
		newLoggedRouter(t).ServeHTTP(w, req)

		assert.Equal(t, "upstream-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("success: oversized id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("x", 65))
		w := httptest.NewRecorder()
		newLoggedRouter(t).ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})
}
