package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/cache"
)

// stockEvent covers both inventory.reserved (remaining) and
// inventory.created (stock).
type stockEvent struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Remaining *int   `json:"remaining"`
	Stock     *int   `json:"stock"`
}

// CacheInvalidator keeps product:<id> entries in step with inventory
// events. The entry is dropped first and rewritten only when the event
// carries a full snapshot.
type CacheInvalidator struct {
	cache ProductCache
}

func NewCacheInvalidator(cache ProductCache) *CacheInvalidator {
	return &CacheInvalidator{cache: cache}
}

func (h *CacheInvalidator) Handle(ctx context.Context, subject string, value []byte) error {
	var ev stockEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		slog.WarnContext(ctx, "invalid event payload", "subject", subject, "error", err.Error())
		return nil
	}
	if ev.ProductID == "" {
		return nil
	}

	if err := h.cache.Delete(ctx, ev.ProductID); err != nil {
		return err
	}

	stock := ev.Stock
	if ev.Remaining != nil {
		stock = ev.Remaining
	}
	if ev.Name == "" || stock == nil {
		return nil
	}
	return h.cache.Set(ctx, cache.CachedProduct{ID: ev.ProductID, Name: ev.Name, Stock: *stock})
}
