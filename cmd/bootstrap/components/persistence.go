package components

import (
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/db"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/repository"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/uow"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/commands"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var baseOption = fx.Provide(
	NewDBTX,
	NewUnitOfWork,
)

// InventoryPersistenceModule binds the products table to the inventory ports.
var InventoryPersistenceModule = fx.Module("persistence/inventory",
	baseOption,
	fx.Provide(
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.StockLedger)),
			fx.As(new(queries.ProductReadStore)),
		),
	),
)

// OrderPersistenceModule binds the orders table to the order ports.
var OrderPersistenceModule = fx.Module("persistence/order",
	baseOption,
	fx.Provide(
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderLedger)),
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool)
}
