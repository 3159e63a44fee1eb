package bootstrap

import (
	"context"
	"log/slog"
	"net"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/commands"

	"go.uber.org/fx"
	"google.golang.org/grpc"
)

var RPCServerModule = fx.Module("rpc/server",
	fx.Provide(
		NewRPCServer,
	),
	fx.Invoke(StartRPCServer),
)

func NewRPCServer(logger *slog.Logger) *grpc.Server {
	return rpc.NewServer(logger)
}

// StartRPCServer listens on RPC_PORT once every service is registered.
func StartRPCServer(lc fx.Lifecycle, srv *grpc.Server, cfg config.RPCServerConfig, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var listenCfg net.ListenConfig
			lis, err := listenCfg.Listen(ctx, "tcp", ":"+cfg.Port)
			if err != nil {
				return err
			}
			logger.Info("grpc server listening", "addr", lis.Addr().String())

			go func() {
				if err := rpc.Serve(srv, lis); err != nil {
					logger.Error("grpc server failed", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			rpc.GracefulStop(ctx, srv)
			logger.Info("grpc server stopped")
			return nil
		},
	})
}

// InventoryGatewayModule gives the order service its reservation port.
var InventoryGatewayModule = fx.Module("rpc/inventory-client",
	fx.Provide(
		fx.Annotate(
			NewInventoryClient,
			fx.As(new(commands.InventoryGateway)),
		),
	),
)

// GatewayClientsModule gives the gateway its ports to both services.
var GatewayClientsModule = fx.Module("rpc/clients",
	fx.Provide(
		fx.Annotate(
			NewInventoryClient,
			fx.As(new(usecase.InventoryCatalog)),
		),
		fx.Annotate(
			NewOrderClient,
			fx.As(new(usecase.OrderGateway)),
		),
	),
)

func NewInventoryClient(lc fx.Lifecycle, cfg config.RPCClientConfig, logger *slog.Logger) (*rpc.InventoryClient, error) {
	conn, err := rpc.Dial(cfg.Addr, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})
	return rpc.NewInventoryClient(rpc.NewInventoryServiceClient(conn), cfg.Timeout), nil
}

func NewOrderClient(lc fx.Lifecycle, cfg config.OrderClientConfig, logger *slog.Logger) (*rpc.OrderClient, error) {
	conn, err := rpc.Dial(cfg.Addr, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})
	return rpc.NewOrderClient(rpc.NewOrderServiceClient(conn), cfg.Timeout), nil
}
