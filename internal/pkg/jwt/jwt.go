// Package jwt signs and verifies the HS256 access and refresh tokens.
package jwt

import (
	"errors"
	"time"

	"commission-tracker/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrWrongTokenType = errors.New("unexpected token type")
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

const issuer = "commission-tracker"

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type Service struct {
	key    []byte
	ttl    map[TokenType]time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

func NewService(secretKey string, accessTTL, refreshTTL time.Duration) *Service {
	s := &Service{
		key: []byte(secretKey),
		ttl: map[TokenType]time.Duration{
			TokenTypeAccess:  accessTTL,
			TokenTypeRefresh: refreshTTL,
		},
		now: time.Now,
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s
}

// TTL is the lifetime of a freshly signed token of the given type.
func (s *Service) TTL(typ TokenType) time.Duration {
	return s.ttl[typ]
}

func (s *Service) Sign(typ TokenType, userID uuid.UUID, role user.Role) (string, error) {
	ttl, ok := s.ttl[typ]
	if !ok {
		return "", ErrWrongTokenType
	}
	now := s.now()
	claims := Claims{
		UserID:    userID,
		Role:      role.String(),
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify checks the signature, issuer and expiry, then requires the token to
// be of type want.
func (s *Service) Verify(tokenString string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.TokenType != want:
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
