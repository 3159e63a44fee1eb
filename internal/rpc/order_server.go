package rpc

import (
	"context"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/commands"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"

	"github.com/google/uuid"
)

// OrderServer exposes the order use cases over gRPC.
type OrderServer struct {
	UnimplementedOrderServiceServer
	commands commands.OrderCommands
	queries  queries.OrderQueries
}

func NewOrderServer(cmds commands.OrderCommands, qs queries.OrderQueries) *OrderServer {
	return &OrderServer{commands: cmds, queries: qs}
}

func (s *OrderServer) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	buyerID, err := parseUUID(req.UserID, "user_id")
	if err != nil {
		return nil, toStatus(err)
	}
	res, err := s.commands.CreateOrder(ctx, commands.CreateOrderParams{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		BuyerID:        buyerID,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &CreateOrderResponse{
		OrderID:        res.OrderID.String(),
		Status:         res.Status.String(),
		Code:           res.Code,
		Message:        res.Message,
		RemainingStock: res.RemainingStock,
		Replayed:       res.Replayed,
	}, nil
}

func (s *OrderServer) GetOrder(ctx context.Context, req *GetOrderRequest) (*Order, error) {
	id, err := parseUUID(req.OrderID, "order_id")
	if err != nil {
		return nil, toStatus(err)
	}
	view, err := s.queries.GetOrder(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return orderMessage(*view), nil
}

func (s *OrderServer) ListOrders(ctx context.Context, req *ListOrdersRequest) (*ListOrdersResponse, error) {
	buyerID, err := parseUUID(req.UserID, "user_id")
	if err != nil {
		return nil, toStatus(err)
	}
	page, err := s.queries.ListOrders(ctx, buyerID, req.Page, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}
	items := make([]Order, 0, len(page.Items))
	for _, v := range page.Items {
		items = append(items, *orderMessage(v))
	}
	return &ListOrdersResponse{Items: items, Page: page.Page, Limit: page.Limit, Total: page.Total}, nil
}

func orderMessage(v queries.OrderView) *Order {
	return &Order{
		OrderID:        v.ID.String(),
		Status:         v.Status,
		Code:           v.Code,
		Message:        v.Message,
		ProductID:      v.ProductID,
		Quantity:       v.Quantity,
		UserID:         v.BuyerID.String(),
		RemainingStock: v.RemainingStock,
		CreatedAt:      v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Newf("%s must be a UUID", field), errs.ErrInvalidArgument)
	}
	return id, nil
}
