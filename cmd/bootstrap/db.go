package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/db"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// SchemaModule applies the embedded schema under dir before the service starts serving.
func SchemaModule(dir string) fx.Option {
	return fx.Module("db/schema",
		fx.Invoke(func(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					if err := db.ApplySchema(ctx, pool, migrations.FS, dir); err != nil {
						return err
					}
					logger.Info("schema ready", "schema", dir)
					return nil
				},
			})
		}),
	)
}
