package bootstrap

import (
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.JWTConfig) *jwt.Service {
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Secret, duration)
}
