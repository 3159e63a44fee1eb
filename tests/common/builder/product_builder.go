//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	reqdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/request"
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
)

type ProductBuilder struct {
	ID        string
	Name      string
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return &ProductBuilder{
		ID:        "product-1",
		Name:      "Vendyz Flash Item",
		Stock:     10,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.Stock = stock
	return b
}

// Build methods
func (b *ProductBuilder) BuildDomain() *product.Product {
	return product.Reconstruct(b.ID, b.Name, b.Stock, b.CreatedAt, b.UpdatedAt)
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:        b.ID,
		Name:      b.Name,
		Stock:     b.Stock,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *ProductBuilder) BuildMessage() *rpc.Product {
	return &rpc.Product{ProductID: b.ID, Name: b.Name, Stock: b.Stock}
}

func (b *ProductBuilder) BuildDetail() *usecase.ProductDetail {
	return &usecase.ProductDetail{ID: b.ID, Name: b.Name, Stock: b.Stock}
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	stock := b.Stock
	return reqdto.CreateProductRequest{Name: b.Name, Stock: &stock}
}
