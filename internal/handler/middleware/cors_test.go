//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsRouter(t *testing.T, cfg config.CORSConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var mw gin.HandlerFunc
	require.NotPanics(t, func() { mw = middleware.NewCORSMiddleware(cfg) })
	r.Use(mw)
	r.GET("/api/campaigns", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func corsGet(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Location"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("success: listed origin gets credentials and request id exposed", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"http://localhost:3000"}

		w := corsGet(corsRouter(t, cfg), "http://localhost:3000")

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Location")
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	})

	t.Run("success: wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*", "http://localhost:3000"}

		w := corsGet(corsRouter(t, cfg), "http://anywhere.example")

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("error: unlisted origin is refused", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"http://localhost:3000"}

		w := corsGet(corsRouter(t, cfg), "http://evil.example")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
