package rpc

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NewServer builds a gRPC server with tracing and logging interceptors.
// Services are registered by the caller.
func NewServer(logger *slog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			TracingServerInterceptor(),
			LoggingServerInterceptor(logger),
		),
	}, opts...)
	return grpc.NewServer(opts...)
}

// Serve blocks until the listener closes. A graceful stop is not an error.
func Serve(srv *grpc.Server, lis net.Listener) error {
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return errs.Wrap(err, "grpc server stopped")
	}
	return nil
}

// Dial opens a lazy client connection to addr. The codec is selected per
// call, so the connection itself is codec-agnostic.
func Dial(addr string, logger *slog.Logger, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(
			TracingClientInterceptor(),
			LoggingClientInterceptor(logger),
		),
	}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to create grpc client for %s", addr)
	}
	return conn, nil
}

// GracefulStop stops srv, falling back to Stop when ctx expires first.
func GracefulStop(ctx context.Context, srv *grpc.Server) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		srv.Stop()
	}
}
