package usecase

import (
	"context"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/cache"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
)

// InventoryCatalog is the gateway's port to the inventory service.
type InventoryCatalog interface {
	GetProduct(ctx context.Context, productID string) (*rpc.Product, error)
	ListProducts(ctx context.Context, page, limit int) (*rpc.ListProductsResponse, error)
	CreateProduct(ctx context.Context, name string, stock int) (*rpc.Product, error)
	UpdateStock(ctx context.Context, productID string, stock int) (*rpc.Product, error)
}

type ProductCache interface {
	Get(ctx context.Context, productID string) (*cache.CachedProduct, bool, error)
	Set(ctx context.Context, p cache.CachedProduct) error
	Delete(ctx context.Context, productID string) error
}

type ProductDetail struct {
	ID    string
	Name  string
	Stock int
}

type CatalogService interface {
	// GetProduct reads through the cache.
	GetProduct(ctx context.Context, productID string) (*ProductDetail, error)
	ListProducts(ctx context.Context, page, limit int) (*queries.Page[ProductDetail], error)
	CreateProduct(ctx context.Context, name string, stock int) (*ProductDetail, error)
	UpdateStock(ctx context.Context, productID string, stock int) (*ProductDetail, error)
}

type catalogServiceImpl struct {
	inventory InventoryCatalog
	cache     ProductCache
}

func NewCatalogService(inventory InventoryCatalog, cache ProductCache) CatalogService {
	return &catalogServiceImpl{inventory: inventory, cache: cache}
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID string) (*ProductDetail, error) {
	if productID == "" {
		return nil, errs.Mark(errs.New("product id is required"), errs.ErrInvalidArgument)
	}

	cached, hit, err := s.cache.Get(ctx, productID)
	if err != nil {
		slog.WarnContext(ctx, "product cache read failed", "product_id", productID, "error", err.Error())
	}
	if hit {
		return &ProductDetail{ID: cached.ID, Name: cached.Name, Stock: cached.Stock}, nil
	}

	p, err := s.inventory.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, p)
	return detailOf(p), nil
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, page, limit int) (*queries.Page[ProductDetail], error) {
	page, limit = queries.NormalizePage(page, limit)
	resp, err := s.inventory.ListProducts(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	items := make([]ProductDetail, 0, len(resp.Items))
	for i := range resp.Items {
		items = append(items, *detailOf(&resp.Items[i]))
	}
	return &queries.Page[ProductDetail]{Items: items, Page: resp.Page, Limit: resp.Limit, Total: resp.Total}, nil
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, name string, stock int) (*ProductDetail, error) {
	p, err := s.inventory.CreateProduct(ctx, name, stock)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "product created", "product_id", p.ProductID)
	return detailOf(p), nil
}

func (s *catalogServiceImpl) UpdateStock(ctx context.Context, productID string, stock int) (*ProductDetail, error) {
	p, err := s.inventory.UpdateStock(ctx, productID, stock)
	if err != nil {
		return nil, err
	}
	// The inventory.created event may lag behind the response.
	if err := s.cache.Delete(ctx, productID); err != nil {
		slog.WarnContext(ctx, "product cache delete failed", "product_id", productID, "error", err.Error())
	}
	return detailOf(p), nil
}

func (s *catalogServiceImpl) remember(ctx context.Context, p *rpc.Product) {
	err := s.cache.Set(ctx, cache.CachedProduct{ID: p.ProductID, Name: p.Name, Stock: p.Stock})
	if err != nil {
		slog.WarnContext(ctx, "product cache write failed", "product_id", p.ProductID, "error", err.Error())
	}
}

func detailOf(p *rpc.Product) *ProductDetail {
	return &ProductDetail{ID: p.ProductID, Name: p.Name, Stock: p.Stock}
}
