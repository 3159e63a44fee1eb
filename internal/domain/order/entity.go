package order

import (
	"errors"
	"strings"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrQuantityTooLarge      = errors.New("quantity is too large")
	ErrEmptyProductID        = errors.New("product id is required")
	ErrEmptyBuyerID          = errors.New("buyer id is required")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrIdempotencyKeyTooLong = errors.New("idempotency key is too long")
)

// Order is append-only: created once in a terminal status and never mutated.
type Order struct {
	id             uuid.UUID
	productID      string
	quantity       int
	buyerID        uuid.UUID
	status         Status
	code           string
	message        string
	remainingStock *int
	idempotencyKey *string
	createdAt      time.Time
}

// Intent is a buyer's validated request to purchase.
type Intent struct {
	ProductID      string
	Quantity       int
	BuyerID        uuid.UUID
	IdempotencyKey *string
}

func NewIntent(productID string, quantity int, buyerID uuid.UUID, idempotencyKey string) (Intent, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Intent{}, ErrEmptyProductID
	}
	if quantity <= 0 {
		return Intent{}, ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return Intent{}, ErrQuantityTooLarge
	}
	if buyerID == uuid.Nil {
		return Intent{}, ErrEmptyBuyerID
	}
	intent := Intent{ProductID: productID, Quantity: quantity, BuyerID: buyerID}
	if key := strings.TrimSpace(idempotencyKey); key != "" {
		if len(key) > MaxIdempotencyKeyLength {
			return Intent{}, ErrIdempotencyKeyTooLong
		}
		intent.IdempotencyKey = &key
	}
	return intent, nil
}

func NewConfirmed(id uuid.UUID, intent Intent, remaining int, message string, now time.Time) *Order {
	return &Order{
		id:             id,
		productID:      intent.ProductID,
		quantity:       intent.Quantity,
		buyerID:        intent.BuyerID,
		status:         StatusConfirmed,
		code:           CodeOK,
		message:        message,
		remainingStock: ptr.Of(remaining),
		idempotencyKey: intent.IdempotencyKey,
		createdAt:      now,
	}
}

func NewFailed(id uuid.UUID, intent Intent, code, reason string, now time.Time) *Order {
	return &Order{
		id:             id,
		productID:      intent.ProductID,
		quantity:       intent.Quantity,
		buyerID:        intent.BuyerID,
		status:         StatusFailed,
		code:           code,
		message:        reason,
		idempotencyKey: intent.IdempotencyKey,
		createdAt:      now,
	}
}

// Reconstruct rebuilds an order read from the ledger.
func Reconstruct(
	id uuid.UUID,
	productID string,
	quantity int,
	buyerID uuid.UUID,
	status Status,
	code, message string,
	remainingStock *int,
	idempotencyKey *string,
	createdAt time.Time,
) (*Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Order{
		id:             id,
		productID:      productID,
		quantity:       quantity,
		buyerID:        buyerID,
		status:         status,
		code:           code,
		message:        message,
		remainingStock: remainingStock,
		idempotencyKey: idempotencyKey,
		createdAt:      createdAt,
	}, nil
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) ProductID() string       { return o.productID }
func (o *Order) Quantity() int           { return o.quantity }
func (o *Order) BuyerID() uuid.UUID      { return o.buyerID }
func (o *Order) Status() Status          { return o.status }
func (o *Order) Code() string            { return o.code }
func (o *Order) Message() string         { return o.message }
func (o *Order) RemainingStock() *int    { return o.remainingStock }
func (o *Order) IdempotencyKey() *string { return o.idempotencyKey }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }

func (o *Order) IsConfirmed() bool {
	return o.status == StatusConfirmed
}
