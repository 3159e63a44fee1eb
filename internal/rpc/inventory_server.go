package rpc

import (
	"context"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/commands"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
)

// InventoryServer exposes the inventory use cases over gRPC.
type InventoryServer struct {
	UnimplementedInventoryServiceServer
	commands commands.InventoryCommands
	queries  queries.InventoryQueries
}

func NewInventoryServer(cmds commands.InventoryCommands, qs queries.InventoryQueries) *InventoryServer {
	return &InventoryServer{commands: cmds, queries: qs}
}

func (s *InventoryServer) ReserveStock(ctx context.Context, req *ReserveStockRequest) (*ReserveStockResponse, error) {
	outcome, err := s.commands.ReserveStock(ctx, commands.ReserveStockParams{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		OrderID:   req.OrderID,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &ReserveStockResponse{
		Success:        outcome.IsAccepted(),
		Code:           outcome.Code(),
		Message:        outcome.Message(),
		RemainingStock: outcome.Remaining,
		Name:           outcome.ProductName,
	}, nil
}

func (s *InventoryServer) GetProduct(ctx context.Context, req *GetProductRequest) (*Product, error) {
	view, err := s.queries.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, toStatus(err)
	}
	return productMessage(*view), nil
}

func (s *InventoryServer) CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	view, err := s.commands.CreateProduct(ctx, req.Name, req.Stock)
	if err != nil {
		return nil, toStatus(err)
	}
	return productMessage(*view), nil
}

func (s *InventoryServer) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	page, err := s.queries.ListProducts(ctx, req.Page, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}
	items := make([]Product, 0, len(page.Items))
	for _, v := range page.Items {
		items = append(items, *productMessage(v))
	}
	return &ListProductsResponse{Items: items, Page: page.Page, Limit: page.Limit, Total: page.Total}, nil
}

func (s *InventoryServer) UpdateStock(ctx context.Context, req *UpdateStockRequest) (*Product, error) {
	view, err := s.commands.UpdateStock(ctx, req.ProductID, req.Stock)
	if err != nil {
		return nil, toStatus(err)
	}
	return productMessage(*view), nil
}

func productMessage(v queries.ProductView) *Product {
	return &Product{ProductID: v.ID, Name: v.Name, Stock: v.Stock}
}

// outcomeFromResponse is the client-side inverse of ReserveStock.
func outcomeFromResponse(resp *ReserveStockResponse) product.ReservationOutcome {
	switch resp.Code {
	case product.CodeOK:
		return product.Accepted(resp.RemainingStock, resp.Name)
	case product.CodeOutOfStock:
		return product.Rejected(resp.RemainingStock, resp.Name)
	default:
		return product.NotFound()
	}
}
