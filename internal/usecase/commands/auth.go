package commands

import (
	"context"
	"log/slog"

	"commission-tracker/internal/domain/auth"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/jwt"
	"commission-tracker/internal/pkg/password"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.Unauthorized(errs.New("token validation failed"))
)

type LoginResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, err
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(userView.ID, userView.Role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userView.ID)
	})
	if err != nil {
		// Login already succeeded; only the bookkeeping write failed.
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
	}

	return &LoginResult{User: userView, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.Verify(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The role is re-read so a demoted or deactivated user cannot keep refreshing.
	u, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if !u.IsActive {
		return nil, queries.ErrUserInactive
	}

	return a.issueTokens(u.ID, u.Role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, roleName string) (*TokenPair, error) {
	role, err := user.NewRole(roleName)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	var pair TokenPair
	for typ, dst := range map[jwt.TokenType]*string{
		jwt.TokenTypeAccess:  &pair.AccessToken,
		jwt.TokenTypeRefresh: &pair.RefreshToken,
	} {
		if *dst, err = a.jwtService.Sign(typ, userID, role); err != nil {
			return nil, errs.Mark(err, ErrTokenGeneration)
		}
	}
	return &pair, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch so emails cannot be enumerated.
		return nil, auth.ErrInvalidCredentials
	}

	if err = credentials.Authenticate(hashedPassword, password.ComparePassword); err != nil {
		return nil, err
	}

	if !userView.IsActive {
		return nil, queries.ErrUserInactive
	}

	return userView, nil
}
