package components

import (
	"context"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/events"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/clock"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/commands"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"

	"go.uber.org/fx"
)

var usecaseBaseOption = fx.Provide(
	clock.New,
)

var InventoryUseCaseModule = fx.Module("usecase/inventory",
	usecaseBaseOption,
	fx.Provide(
		commands.NewInventoryCommands,
		queries.NewInventoryQueries,
	),
	fx.Invoke(SeedCatalog),
)

var OrderUseCaseModule = fx.Module("usecase/order",
	usecaseBaseOption,
	fx.Provide(
		commands.NewOrderCommands,
		queries.NewOrderQueries,
	),
)

var GatewayUseCaseModule = fx.Module("usecase/gateway",
	fx.Provide(
		usecase.NewCatalogService,
		usecase.NewOrderingService,
		usecase.NewTokenValidator,
		usecase.NewCacheInvalidator,
	),
	fx.Invoke(StartCacheInvalidation),
)

// SeedCatalog inserts the default products on an empty catalog when SEED_PRODUCTS is on.
func SeedCatalog(lc fx.Lifecycle, cfg config.InventoryConfig, cmds commands.InventoryCommands, logger *slog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			inserted, err := cmds.SeedCatalog(ctx, product.DefaultCatalog())
			if err != nil {
				return err
			}
			logger.Info("catalog seeded", "inserted", inserted)
			return nil
		},
	})
}

// StartCacheInvalidation consumes stock events so cached products never outlive a stock change.
func StartCacheInvalidation(
	lc fx.Lifecycle,
	cfg config.KafkaConfig,
	subjects events.Subjects,
	invalidator *usecase.CacheInvalidator,
	logger *slog.Logger,
) {
	if !cfg.Enabled() {
		logger.Info("cache invalidation consumer disabled")
		return
	}

	subscriber := events.NewKafkaSubscriber(
		cfg,
		[]string{subjects.InventoryReserved, subjects.InventoryCreated},
		invalidator.Handle,
		logger,
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := subscriber.Run(ctx); err != nil {
					logger.Error("cache invalidation consumer stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return subscriber.Close()
		},
	})
}
