package rpc

import (
	"context"
	"time"
)

// OrderClient is the gateway's view of the order service.
type OrderClient struct {
	client  OrderServiceClient
	timeout time.Duration
}

func NewOrderClient(client OrderServiceClient, timeout time.Duration) *OrderClient {
	return &OrderClient{client: client, timeout: timeout}
}

func (c *OrderClient) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.CreateOrder(ctx, req)
	return resp, fromStatus(err)
}

func (c *OrderClient) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.GetOrder(ctx, &GetOrderRequest{OrderID: orderID})
	return resp, fromStatus(err)
}

func (c *OrderClient) ListOrders(ctx context.Context, userID string, page, limit int) (*ListOrdersResponse, error) {
	ctx, cancel := callContext(ctx, c.timeout)
	defer cancel()
	resp, err := c.client.ListOrders(ctx, &ListOrdersRequest{UserID: userID, Page: page, Limit: limit})
	return resp, fromStatus(err)
}
