package events

import (
	"context"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
)

// Publisher sends best-effort notifications. Publish never blocks on the
// transport and never reports failure to the caller.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any)
}

// Keyed payloads choose their partition key.
type Keyed interface {
	PartitionKey() string
}

type Subjects struct {
	InventoryReserved string
	InventoryCreated  string
	OrderCreated      string
}

func SubjectsFromConfig(cfg config.KafkaConfig) Subjects {
	return Subjects{
		InventoryReserved: cfg.InventoryReservedSubject,
		InventoryCreated:  cfg.InventoryCreatedSubject,
		OrderCreated:      cfg.OrderCreatedSubject,
	}
}

// InventoryReserved is emitted after a reservation is accepted.
type InventoryReserved struct {
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Remaining int    `json:"remaining"`
	Name      string `json:"name"`
}

func (e InventoryReserved) PartitionKey() string { return e.ProductID }

// InventoryCreated is emitted when a product is created or its stock is set.
type InventoryCreated struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

func (e InventoryCreated) PartitionKey() string { return e.ProductID }

// OrderCreated is emitted for every persisted order, confirmed or failed.
type OrderCreated struct {
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UserID    string `json:"userId"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Remaining *int   `json:"remaining,omitempty"`
}

func (e OrderCreated) PartitionKey() string { return e.OrderID }

// NopPublisher drops everything. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) {}
