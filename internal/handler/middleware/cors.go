package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"commission-tracker/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, RequestIDHeader),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// A wildcard origin excludes explicit origins and credentials.
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all", corsCfg.AllowAllOrigins,
		"credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

func withHeader(headers []string, name string) []string {
	canonical := http.CanonicalHeaderKey(name)
	for _, h := range headers {
		if http.CanonicalHeaderKey(h) == canonical {
			return headers
		}
	}
	return append(slices.Clone(headers), name)
}
