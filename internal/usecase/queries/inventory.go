package queries

import (
	"context"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
)

type ProductView struct {
	ID        string    `json:"product_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id string) (*product.Product, error)
	List(ctx context.Context, limit, offset int) ([]*product.Product, int, error)
}

type InventoryQueries interface {
	GetProduct(ctx context.Context, id string) (*ProductView, error)
	ListProducts(ctx context.Context, page, limit int) (*Page[ProductView], error)
}

type inventoryQueriesImpl struct {
	store ProductReadStore
}

func NewInventoryQueries(store ProductReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) GetProduct(ctx context.Context, id string) (*ProductView, error) {
	if id == "" {
		return nil, errs.Mark(errs.New("product id is required"), errs.ErrInvalidArgument)
	}
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	view := ToProductView(p)
	return &view, nil
}

func (q *inventoryQueriesImpl) ListProducts(ctx context.Context, page, limit int) (*Page[ProductView], error) {
	page, limit = NormalizePage(page, limit)
	items, total, err := q.store.List(ctx, limit, offset(page, limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	views := make([]ProductView, 0, len(items))
	for _, p := range items {
		views = append(views, ToProductView(p))
	}
	return &Page[ProductView]{Items: views, Page: page, Limit: limit, Total: total}, nil
}

func ToProductView(p *product.Product) ProductView {
	return ProductView{
		ID:        p.ID(),
		Name:      p.Name(),
		Stock:     p.Stock(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
