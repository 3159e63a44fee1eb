package components

import (
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"

	"go.uber.org/fx"
	"google.golang.org/grpc"
)

var InventoryServiceModule = fx.Module("service/inventory",
	fx.Provide(rpc.NewInventoryServer),
	fx.Invoke(func(srv *grpc.Server, impl *rpc.InventoryServer) {
		rpc.RegisterInventoryServiceServer(srv, impl)
	}),
)

var OrderServiceModule = fx.Module("service/order",
	fx.Provide(rpc.NewOrderServer),
	fx.Invoke(func(srv *grpc.Server, impl *rpc.OrderServer) {
		rpc.RegisterOrderServiceServer(srv, impl)
	}),
)
