package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/events"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		events.SubjectsFromConfig,
		NewPublisher,
	),
)

// NewPublisher falls back to a no-op publisher when no broker is configured.
func NewPublisher(lc fx.Lifecycle, cfg config.KafkaConfig, logger *slog.Logger) events.Publisher {
	if !cfg.Enabled() {
		logger.Info("event publishing disabled")
		return events.NopPublisher{}
	}

	publisher := events.NewKafkaPublisher(cfg, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
