package bootstrap

import (
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if err := cfg.JWT.Validate(); err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration), nil
}
