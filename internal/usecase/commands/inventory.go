package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/db"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/events"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/clock"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/telemetry"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// StockLedger is the only writer of products.stock.
type StockLedger interface {
	Reserve(ctx context.Context, productID string, quantity int) (product.ReservationOutcome, error)
	Create(ctx context.Context, p *product.Product) error
	SetStock(ctx context.Context, productID string, stock int) (*product.Product, error)
	SeedIfAbsent(ctx context.Context, tx db.DBTX, seeds []product.Seed) (int, error)
}

type ReserveStockParams struct {
	ProductID string
	Quantity  int
	OrderID   string
}

type InventoryCommands interface {
	ReserveStock(ctx context.Context, params ReserveStockParams) (product.ReservationOutcome, error)
	CreateProduct(ctx context.Context, name string, stock int) (*queries.ProductView, error)
	UpdateStock(ctx context.Context, productID string, stock int) (*queries.ProductView, error)
	SeedCatalog(ctx context.Context, seeds []product.Seed) (int, error)
}

type inventoryCommandsImpl struct {
	ledger    StockLedger
	uow       shared.UnitOfWork
	publisher events.Publisher
	subjects  events.Subjects
	clock     clock.Clock
}

func NewInventoryCommands(
	ledger StockLedger,
	uow shared.UnitOfWork,
	publisher events.Publisher,
	subjects events.Subjects,
	clock clock.Clock,
) InventoryCommands {
	return &inventoryCommandsImpl{
		ledger:    ledger,
		uow:       uow,
		publisher: publisher,
		subjects:  subjects,
		clock:     clock,
	}
}

func (c *inventoryCommandsImpl) ReserveStock(ctx context.Context, params ReserveStockParams) (product.ReservationOutcome, error) {
	ctx, span := telemetry.Tracer("inventory").Start(ctx, "ReserveStock")
	defer span.End()
	span.SetAttributes(
		attribute.String("product.id", params.ProductID),
		attribute.Int("reservation.quantity", params.Quantity),
		attribute.String("order.id", params.OrderID),
	)

	if params.ProductID == "" {
		return product.ReservationOutcome{}, errs.Mark(product.ErrEmptyID, errs.ErrInvalidArgument)
	}
	if err := product.ValidateQuantity(params.Quantity); err != nil {
		return product.ReservationOutcome{}, errs.Mark(err, errs.ErrInvalidArgument)
	}

	outcome, err := c.ledger.Reserve(ctx, params.ProductID, params.Quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reservation failed")
		slog.ErrorContext(ctx, "reservation failed",
			"product_id", params.ProductID,
			"order_id", params.OrderID,
			"error", err.Error())
		return product.ReservationOutcome{}, errs.Mark(err, errs.ErrReservationFailed)
	}
	span.SetAttributes(attribute.String("reservation.outcome", string(outcome.Kind)))

	switch outcome.Kind {
	case product.OutcomeAccepted:
		slog.InfoContext(ctx, "stock reserved",
			"product_id", params.ProductID,
			"order_id", params.OrderID,
			"quantity", params.Quantity,
			"remaining", outcome.Remaining)
		c.publisher.Publish(ctx, c.subjects.InventoryReserved, events.InventoryReserved{
			OrderID:   params.OrderID,
			ProductID: params.ProductID,
			Quantity:  params.Quantity,
			Remaining: outcome.Remaining,
			Name:      outcome.ProductName,
		})
	case product.OutcomeRejected:
		slog.InfoContext(ctx, "reservation rejected: out of stock",
			"product_id", params.ProductID,
			"order_id", params.OrderID,
			"quantity", params.Quantity,
			"remaining", outcome.Remaining)
	default:
		slog.WarnContext(ctx, "reservation for unknown product",
			"product_id", params.ProductID,
			"order_id", params.OrderID)
	}
	return outcome, nil
}

func (c *inventoryCommandsImpl) CreateProduct(ctx context.Context, name string, stock int) (*queries.ProductView, error) {
	p, err := product.NewProduct(uuid.NewString(), name, stock, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}
	if err := c.ledger.Create(ctx, p); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	slog.InfoContext(ctx, "product created", "product_id", p.ID(), "stock", p.Stock())
	c.publishStock(ctx, p)
	view := queries.ToProductView(p)
	return &view, nil
}

// UpdateStock overwrites the stock level. It is an admin correction, not a
// reservation, and does not go through the conditional decrement.
func (c *inventoryCommandsImpl) UpdateStock(ctx context.Context, productID string, stock int) (*queries.ProductView, error) {
	if productID == "" {
		return nil, errs.Mark(product.ErrEmptyID, errs.ErrInvalidArgument)
	}
	if err := product.ValidateStock(stock); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	p, err := c.ledger.SetStock(ctx, productID, stock)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	slog.InfoContext(ctx, "stock updated", "product_id", p.ID(), "stock", p.Stock())
	c.publishStock(ctx, p)
	view := queries.ToProductView(p)
	return &view, nil
}

// SeedCatalog inserts the given products when absent, all in one
// transaction. Existing rows keep their stock.
func (c *inventoryCommandsImpl) SeedCatalog(ctx context.Context, seeds []product.Seed) (int, error) {
	start := time.Now()
	var inserted int
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := c.ledger.SeedIfAbsent(ctx, tx, seeds)
		if err != nil {
			return err
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStorageFailure)
	}
	slog.InfoContext(ctx, "catalog seeded",
		"inserted", inserted,
		"skipped", len(seeds)-inserted,
		"duration", time.Since(start).String())
	return inserted, nil
}

func (c *inventoryCommandsImpl) publishStock(ctx context.Context, p *product.Product) {
	c.publisher.Publish(ctx, c.subjects.InventoryCreated, events.InventoryCreated{
		ProductID: p.ID(),
		Name:      p.Name(),
		Stock:     p.Stock(),
	})
}
