package commands

import (
	"context"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/order"
	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/events"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/journal"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/clock"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type OrderLedger interface {
	// Create reports false when (buyer, idempotency key) is already taken.
	Create(ctx context.Context, o *order.Order) (bool, error)
	FindByIdempotencyKey(ctx context.Context, buyerID uuid.UUID, key string) (*order.Order, error)
}

// InventoryGateway reaches the inventory service. Transport failures are
// marked errs.ErrDependencyUnavailable.
type InventoryGateway interface {
	ReserveStock(ctx context.Context, productID string, quantity int, orderID string) (product.ReservationOutcome, error)
}

type ReconciliationJournal interface {
	Append(ctx context.Context, rec journal.OrphanedReservation) error
}

type CreateOrderParams struct {
	ProductID      string
	Quantity       int
	BuyerID        uuid.UUID
	IdempotencyKey string
}

type OrderResult struct {
	OrderID        uuid.UUID
	Status         order.Status
	Code           string
	Message        string
	RemainingStock *int
	// Replayed is set when the result was read back from an earlier attempt
	// with the same idempotency key. Replay does not serialize concurrent
	// retries: two in-flight attempts with one key can both reserve stock,
	// and the loser's units are journaled for reconciliation, not returned.
	Replayed bool
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderResult, error)
}

type orderCommandsImpl struct {
	ledger    OrderLedger
	inventory InventoryGateway
	journal   ReconciliationJournal
	publisher events.Publisher
	subjects  events.Subjects
	clock     clock.Clock
	newID     func() uuid.UUID
}

func NewOrderCommands(
	ledger OrderLedger,
	inventory InventoryGateway,
	journal ReconciliationJournal,
	publisher events.Publisher,
	subjects events.Subjects,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		ledger:    ledger,
		inventory: inventory,
		journal:   journal,
		publisher: publisher,
		subjects:  subjects,
		clock:     clock,
		newID:     uuid.New,
	}
}

func (c *orderCommandsImpl) CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderResult, error) {
	ctx, span := telemetry.Tracer("order").Start(ctx, "CreateOrder")
	defer span.End()
	span.SetAttributes(
		attribute.String("product.id", params.ProductID),
		attribute.Int("order.quantity", params.Quantity),
	)

	intent, err := order.NewIntent(params.ProductID, params.Quantity, params.BuyerID, params.IdempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	if intent.IdempotencyKey != nil {
		prior, err := c.findPrior(ctx, intent)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			slog.InfoContext(ctx, "order replayed", "order_id", prior.ID(), "buyer_id", intent.BuyerID)
			span.SetAttributes(attribute.Bool("order.replayed", true))
			return resultOf(prior, true), nil
		}
	}

	orderID := c.newID()
	span.SetAttributes(attribute.String("order.id", orderID.String()))

	outcome, err := c.inventory.ReserveStock(ctx, intent.ProductID, intent.Quantity, orderID.String())
	if err != nil {
		if errs.Is(err, errs.ErrInvalidArgument) {
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "inventory unavailable")
		slog.ErrorContext(ctx, "inventory reservation unavailable",
			"order_id", orderID,
			"product_id", intent.ProductID,
			"error", err.Error())
		return nil, errs.Mark(err, errs.ErrDependencyUnavailable)
	}

	// Stock may already be gone. The order write must be attempted even if
	// the caller has disconnected.
	ctx = context.WithoutCancel(ctx)

	now := c.clock.Now()
	var o *order.Order
	switch outcome.Kind {
	case product.OutcomeAccepted:
		o = order.NewConfirmed(orderID, intent, outcome.Remaining, outcome.Message(), now)
	case product.OutcomeRejected:
		o = order.NewFailed(orderID, intent, order.CodeOutOfStock, outcome.Message(), now)
	default:
		o = order.NewFailed(orderID, intent, order.CodeProductNotFound, outcome.Message(), now)
	}

	inserted, err := c.ledger.Create(ctx, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order write failed")
		if outcome.IsAccepted() {
			c.recordOrphan(ctx, o, outcome.Remaining, journal.ReasonOrderWriteFailed, err)
		} else {
			slog.ErrorContext(ctx, "failed to persist failed order", "order_id", orderID, "error", err.Error())
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if !inserted {
		// A concurrent attempt with the same key won the insert.
		dup := errs.Mark(errs.Newf("idempotency key taken by a concurrent order, order %s discarded", orderID), errs.ErrDuplicateRequest)
		if outcome.IsAccepted() {
			c.recordOrphan(ctx, o, outcome.Remaining, journal.ReasonIdempotencyRaceLost, dup)
		} else {
			slog.InfoContext(ctx, "duplicate request resolved to stored order", "order_id", orderID, "reason", dup.Error())
		}
		prior, err := c.findPrior(ctx, intent)
		if err != nil {
			return nil, err
		}
		if prior == nil {
			return nil, errs.Mark(errs.New("order for idempotency key vanished after conflict"), errs.ErrStorageFailure)
		}
		return resultOf(prior, true), nil
	}

	c.publisher.Publish(ctx, c.subjects.OrderCreated, events.OrderCreated{
		OrderID:   orderID.String(),
		ProductID: o.ProductID(),
		Quantity:  o.Quantity(),
		UserID:    o.BuyerID().String(),
		Status:    o.Status().String(),
		Reason:    o.Message(),
		Remaining: o.RemainingStock(),
	})

	if o.IsConfirmed() {
		slog.InfoContext(ctx, "order confirmed", "order_id", orderID, "product_id", o.ProductID(), "remaining", outcome.Remaining)
	} else {
		slog.InfoContext(ctx, "order failed", "order_id", orderID, "product_id", o.ProductID(), "code", o.Code())
	}
	span.SetAttributes(attribute.String("order.status", o.Status().String()))
	return resultOf(o, false), nil
}

func (c *orderCommandsImpl) findPrior(ctx context.Context, intent order.Intent) (*order.Order, error) {
	prior, err := c.ledger.FindByIdempotencyKey(ctx, intent.BuyerID, *intent.IdempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return prior, nil
}

// recordOrphan logs a reservation that has no order row of its own and
// keeps it in the reconciliation journal. Stock is not returned.
func (c *orderCommandsImpl) recordOrphan(ctx context.Context, o *order.Order, remaining int, reason string, cause error) {
	rec := journal.OrphanedReservation{
		OrderID:   o.ID(),
		ProductID: o.ProductID(),
		Quantity:  o.Quantity(),
		BuyerID:   o.BuyerID(),
		Remaining: remaining,
		Reason:    reason,
	}
	if cause != nil {
		rec.Detail = cause.Error()
	}
	slog.ErrorContext(ctx, "reconciliation anomaly: reserved stock has no order",
		"order_id", o.ID(),
		"product_id", o.ProductID(),
		"quantity", o.Quantity(),
		"buyer_id", o.BuyerID(),
		"reason", reason,
		"detail", rec.Detail)
	if err := c.journal.Append(ctx, rec); err != nil {
		slog.ErrorContext(ctx, "failed to journal orphaned reservation", "order_id", o.ID(), "error", err.Error())
	}
}

func resultOf(o *order.Order, replayed bool) *OrderResult {
	return &OrderResult{
		OrderID:        o.ID(),
		Status:         o.Status(),
		Code:           o.Code(),
		Message:        o.Message(),
		RemainingStock: o.RemainingStock(),
		Replayed:       replayed,
	}
}
