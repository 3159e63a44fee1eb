package bootstrap

import (
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.LogConfig) *logger.Logger {
	return logger.New(cfg)
}

func NewSlogLogger(l *logger.Logger) *slog.Logger {
	return l.Slog()
}
