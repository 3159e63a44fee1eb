package queries

import (
	"context"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/order"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderView struct {
	ID             uuid.UUID `json:"order_id"`
	ProductID      string    `json:"product_id"`
	Quantity       int       `json:"quantity"`
	BuyerID        uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	Code           string    `json:"code"`
	Message        string    `json:"message"`
	RemainingStock *int      `json:"remaining_stock,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ListConfirmedByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*order.Order, int, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)
	// ListOrders returns only CONFIRMED orders, newest first.
	ListOrders(ctx context.Context, buyerID uuid.UUID, page, limit int) (*Page[OrderView], error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	o, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	view := ToOrderView(o)
	return &view, nil
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, buyerID uuid.UUID, page, limit int) (*Page[OrderView], error) {
	if buyerID == uuid.Nil {
		return nil, errs.Mark(errs.New("buyer id is required"), errs.ErrInvalidArgument)
	}
	page, limit = NormalizePage(page, limit)
	items, total, err := q.store.ListConfirmedByBuyer(ctx, buyerID, limit, offset(page, limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	views := make([]OrderView, 0, len(items))
	for _, o := range items {
		views = append(views, ToOrderView(o))
	}
	return &Page[OrderView]{Items: views, Page: page, Limit: limit, Total: total}, nil
}

func ToOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:             o.ID(),
		ProductID:      o.ProductID(),
		Quantity:       o.Quantity(),
		BuyerID:        o.BuyerID(),
		Status:         string(o.Status()),
		Code:           o.Code(),
		Message:        o.Message(),
		RemainingStock: o.RemainingStock(),
		CreatedAt:      o.CreatedAt(),
	}
}
