package usecase

import (
	"context"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/auth"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
)

// OrderGateway is the gateway's port to the order service.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req *rpc.CreateOrderRequest) (*rpc.CreateOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*rpc.Order, error)
	ListOrders(ctx context.Context, userID string, page, limit int) (*rpc.ListOrdersResponse, error)
}

type PlaceOrderInput struct {
	ProductID      string
	Quantity       int
	IdempotencyKey string
}

// ListedOrder is an order enriched with the product name for display.
type ListedOrder struct {
	rpc.Order
	ProductName string
}

type OrderingService interface {
	PlaceOrder(ctx context.Context, caller auth.Principal, in PlaceOrderInput) (*rpc.CreateOrderResponse, error)
	GetOrder(ctx context.Context, caller auth.Principal, orderID string) (*rpc.Order, error)
	ListOrders(ctx context.Context, caller auth.Principal, page, limit int) (*queries.Page[ListedOrder], error)
}

type orderingServiceImpl struct {
	orders  OrderGateway
	catalog CatalogService
}

func NewOrderingService(orders OrderGateway, catalog CatalogService) OrderingService {
	return &orderingServiceImpl{orders: orders, catalog: catalog}
}

func (s *orderingServiceImpl) PlaceOrder(ctx context.Context, caller auth.Principal, in PlaceOrderInput) (*rpc.CreateOrderResponse, error) {
	resp, err := s.orders.CreateOrder(ctx, &rpc.CreateOrderRequest{
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		UserID:         caller.BuyerID.String(),
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "order processed",
		"order_id", resp.OrderID,
		"status", resp.Status,
		"code", resp.Code,
		"replayed", resp.Replayed)
	return resp, nil
}

// GetOrder hides orders of other buyers behind ErrNotFound. Admins see all.
func (s *orderingServiceImpl) GetOrder(ctx context.Context, caller auth.Principal, orderID string) (*rpc.Order, error) {
	o, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != caller.BuyerID.String() && !caller.Role.AtLeast(auth.RoleAdmin) {
		return nil, errs.Mark(errs.New("order belongs to another buyer"), errs.ErrNotFound)
	}
	return o, nil
}

func (s *orderingServiceImpl) ListOrders(ctx context.Context, caller auth.Principal, page, limit int) (*queries.Page[ListedOrder], error) {
	page, limit = queries.NormalizePage(page, limit)
	resp, err := s.orders.ListOrders(ctx, caller.BuyerID.String(), page, limit)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	items := make([]ListedOrder, 0, len(resp.Items))
	for _, o := range resp.Items {
		name, ok := names[o.ProductID]
		if !ok {
			name = s.productName(ctx, o.ProductID)
			names[o.ProductID] = name
		}
		items = append(items, ListedOrder{Order: o, ProductName: name})
	}
	return &queries.Page[ListedOrder]{Items: items, Page: resp.Page, Limit: resp.Limit, Total: resp.Total}, nil
}

// productName is best effort; a listing never fails because a name is
// unavailable.
func (s *orderingServiceImpl) productName(ctx context.Context, productID string) string {
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		slog.DebugContext(ctx, "product name unavailable", "product_id", productID, "error", err.Error())
		return ""
	}
	return p.Name
}
