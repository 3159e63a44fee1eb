package rpc

import (
	"context"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
)

// InventoryClient calls the inventory service with a deadline on every
// call. Errors come back in the shared taxonomy.
type InventoryClient struct {
	client  InventoryServiceClient
	timeout time.Duration
}

func NewInventoryClient(client InventoryServiceClient, timeout time.Duration) *InventoryClient {
	return &InventoryClient{client: client, timeout: timeout}
}

func (c *InventoryClient) ReserveStock(ctx context.Context, productID string, quantity int, orderID string) (product.ReservationOutcome, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.ReserveStock(ctx, &ReserveStockRequest{
		ProductID: productID,
		Quantity:  quantity,
		OrderID:   orderID,
	})
	if err != nil {
		return product.ReservationOutcome{}, fromStatus(err)
	}
	return outcomeFromResponse(resp), nil
}

func (c *InventoryClient) GetProduct(ctx context.Context, productID string) (*Product, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.GetProduct(ctx, &GetProductRequest{ProductID: productID})
	return resp, fromStatus(err)
}

func (c *InventoryClient) ListProducts(ctx context.Context, page, limit int) (*ListProductsResponse, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.ListProducts(ctx, &ListProductsRequest{Page: page, Limit: limit})
	return resp, fromStatus(err)
}

func (c *InventoryClient) CreateProduct(ctx context.Context, name string, stock int) (*Product, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.CreateProduct(ctx, &CreateProductRequest{Name: name, Stock: stock})
	return resp, fromStatus(err)
}

func (c *InventoryClient) UpdateStock(ctx context.Context, productID string, stock int) (*Product, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.UpdateStock(ctx, &UpdateStockRequest{ProductID: productID, Stock: stock})
	return resp, fromStatus(err)
}
