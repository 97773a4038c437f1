// Package cookie stores the auth token pair as HTTP-only cookies.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"commission-tracker/internal/pkg/config"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// The refresh cookie is only sent to the auth endpoints.
const refreshCookiePath = "/api/auth"

type slot struct {
	name string
	path string
}

var (
	accessSlot  = slot{name: AccessTokenCookieName, path: "/"}
	refreshSlot = slot{name: RefreshTokenCookieName, path: refreshCookiePath}
)

// Jar writes the token cookies with the attributes from CookieConfig.
type Jar struct {
	domain   string
	secure   bool
	sameSite http.SameSite
}

func NewJar(cfg config.CookieConfig) Jar {
	return Jar{
		domain:   cfg.Domain,
		secure:   cfg.Secure,
		sameSite: parseSameSite(cfg.SameSite),
	}
}

// Store sets both cookies. Each cookie lives as long as its token.
func (j Jar) Store(w http.ResponseWriter, access, refresh string, accessTTL, refreshTTL time.Duration) {
	http.SetCookie(w, j.cookie(accessSlot, access, accessTTL))
	http.SetCookie(w, j.cookie(refreshSlot, refresh, refreshTTL))
}

// Expire tells the browser to drop both cookies.
func (j Jar) Expire(w http.ResponseWriter) {
	http.SetCookie(w, j.cookie(accessSlot, "", 0))
	http.SetCookie(w, j.cookie(refreshSlot, "", 0))
}

func (j Jar) cookie(s slot, value string, ttl time.Duration) *http.Cookie {
	maxAge := int(ttl / time.Second)
	if maxAge <= 0 {
		maxAge = -1
	}
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     s.path,
		Domain:   j.domain,
		MaxAge:   maxAge,
		Secure:   j.secure,
		HttpOnly: true,
		SameSite: j.sameSite,
	}
}

func AccessToken(r *http.Request) string {
	return read(r, AccessTokenCookieName)
}

func RefreshToken(r *http.Request) string {
	return read(r, RefreshTokenCookieName)
}

func read(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
