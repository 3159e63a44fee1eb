package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(SetupTracing),
)

func SetupTracing(lc fx.Lifecycle, cfg config.TracingConfig, logger *slog.Logger) error {
	shutdown, err := telemetry.SetupTracing(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
