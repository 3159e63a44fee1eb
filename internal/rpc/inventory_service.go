package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InventoryServiceName = "vendy.inventory.v1.InventoryService"

	InventoryReserveStockMethod  = "/" + InventoryServiceName + "/ReserveStock"
	InventoryGetProductMethod    = "/" + InventoryServiceName + "/GetProduct"
	InventoryCreateProductMethod = "/" + InventoryServiceName + "/CreateProduct"
	InventoryListProductsMethod  = "/" + InventoryServiceName + "/ListProducts"
	InventoryUpdateStockMethod   = "/" + InventoryServiceName + "/UpdateStock"
)

type InventoryServiceServer interface {
	ReserveStock(context.Context, *ReserveStockRequest) (*ReserveStockResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*Product, error)
	CreateProduct(context.Context, *CreateProductRequest) (*Product, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	UpdateStock(context.Context, *UpdateStockRequest) (*Product, error)
}

// UnimplementedInventoryServiceServer answers every method with Unimplemented.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) ReserveStock(context.Context, *ReserveStockRequest) (*ReserveStockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReserveStock not implemented")
}

func (UnimplementedInventoryServiceServer) GetProduct(context.Context, *GetProductRequest) (*Product, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

func (UnimplementedInventoryServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*Product, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}

func (UnimplementedInventoryServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

func (UnimplementedInventoryServiceServer) UpdateStock(context.Context, *UpdateStockRequest) (*Product, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateStock not implemented")
}

var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ReserveStock", Handler: unaryHandler(InventoryReserveStockMethod, InventoryServiceServer.ReserveStock)},
		{MethodName: "GetProduct", Handler: unaryHandler(InventoryGetProductMethod, InventoryServiceServer.GetProduct)},
		{MethodName: "CreateProduct", Handler: unaryHandler(InventoryCreateProductMethod, InventoryServiceServer.CreateProduct)},
		{MethodName: "ListProducts", Handler: unaryHandler(InventoryListProductsMethod, InventoryServiceServer.ListProducts)},
		{MethodName: "UpdateStock", Handler: unaryHandler(InventoryUpdateStockMethod, InventoryServiceServer.UpdateStock)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inventory.proto",
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

type InventoryServiceClient interface {
	ReserveStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*ReserveStockResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*Product, error)
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*Product, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	UpdateStock(ctx context.Context, in *UpdateStockRequest, opts ...grpc.CallOption) (*Product, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc: cc}
}

func (c *inventoryServiceClient) ReserveStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*ReserveStockResponse, error) {
	return invoke[ReserveStockResponse](ctx, c.cc, InventoryReserveStockMethod, in, opts)
}

func (c *inventoryServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, InventoryGetProductMethod, in, opts)
}

func (c *inventoryServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, InventoryCreateProductMethod, in, opts)
}

func (c *inventoryServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, InventoryListProductsMethod, in, opts)
}

func (c *inventoryServiceClient) UpdateStock(ctx context.Context, in *UpdateStockRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, InventoryUpdateStockMethod, in, opts)
}
