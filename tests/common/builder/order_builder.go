//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/order"
	reqdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/request"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/ptr"
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID             uuid.UUID
	ProductID      string
	Quantity       int
	BuyerID        uuid.UUID
	Status         order.Status
	Code           string
	Message        string
	RemainingStock *int
	IdempotencyKey *string
	CreatedAt      time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:             uuid.New(),
		ProductID:      "product-1",
		Quantity:       1,
		BuyerID:        uuid.New(),
		Status:         order.StatusConfirmed,
		Code:           order.CodeOK,
		Message:        "Reserved",
		RemainingStock: ptr.Of(9),
		CreatedAt:      time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithBuyer(id uuid.UUID) *OrderBuilder {
	b.BuyerID = id
	return b
}

func (b *OrderBuilder) WithIdempotencyKey(key string) *OrderBuilder {
	b.IdempotencyKey = &key
	return b
}

// Failed switches the order to a FAILED outcome with the given code.
func (b *OrderBuilder) Failed(code, message string) *OrderBuilder {
	b.Status = order.StatusFailed
	b.Code = code
	b.Message = message
	b.RemainingStock = nil
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() *order.Order {
	o, err := order.Reconstruct(b.ID, b.ProductID, b.Quantity, b.BuyerID, b.Status, b.Code, b.Message, b.RemainingStock, b.IdempotencyKey, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return o
}

func (b *OrderBuilder) BuildMessage() *rpc.Order {
	return &rpc.Order{
		OrderID:        b.ID.String(),
		Status:         b.Status.String(),
		Code:           b.Code,
		Message:        b.Message,
		ProductID:      b.ProductID,
		Quantity:       b.Quantity,
		UserID:         b.BuyerID.String(),
		RemainingStock: b.RemainingStock,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (b *OrderBuilder) BuildCreateResponse() *rpc.CreateOrderResponse {
	return &rpc.CreateOrderResponse{
		OrderID:        b.ID.String(),
		Status:         b.Status.String(),
		Code:           b.Code,
		Message:        b.Message,
		RemainingStock: b.RemainingStock,
	}
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{ProductID: b.ProductID, Quantity: b.Quantity}
}
