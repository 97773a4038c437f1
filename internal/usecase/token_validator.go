package usecase

import (
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

var ErrNotAccessToken = errs.Unauthorized(errs.New("not an access token"))

// TokenValidator resolves a bearer credential to the caller it was issued to.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type accessTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return accessTokenValidator{tokens: tokens}
}

// Refresh tokens are rejected here; only the refresh endpoint takes them.
func (v accessTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.tokens.Verify(tokenString, jwt.TokenTypeAccess)
	if errs.Is(err, jwt.ErrWrongTokenType) {
		return uuid.Nil, "", ErrNotAccessToken
	}
	if err != nil {
		return uuid.Nil, "", errs.Unauthorized(err)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Unauthorized(err)
	}
	return claims.UserID, role, nil
}
