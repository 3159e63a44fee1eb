package rpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingServerInterceptor logs one line per call with method, status code
// and duration. Faults log at error, client errors at warn.
func LoggingServerInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		attrs := []slog.Attr{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		logger.LogAttrs(ctx, levelFor(code), "RPC completed", attrs...)
		return resp, err
	}
}

// TracingServerInterceptor continues the caller's trace from incoming
// metadata.
func TracingServerInterceptor() grpc.UnaryServerInterceptor {
	tracer := telemetry.Tracer("rpc.server")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = telemetry.ExtractIncoming(ctx)
		ctx, span := tracer.Start(ctx, info.FullMethod, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		resp, err := handler(ctx, req)
		recordStatus(span, err)
		return resp, err
	}
}

// TracingClientInterceptor opens a client span and propagates it in
// outgoing metadata.
func TracingClientInterceptor() grpc.UnaryClientInterceptor {
	tracer := telemetry.Tracer("rpc.client")
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx, span := tracer.Start(ctx, method, trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()

		err := invoker(telemetry.InjectOutgoing(ctx), method, req, reply, cc, opts...)
		recordStatus(span, err)
		return err
	}
}

func LoggingClientInterceptor(logger *slog.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "RPC call failed",
				slog.String("method", method),
				slog.String("target", cc.Target()),
				slog.String("code", status.Code(err).String()),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()),
			)
		}
		return err
	}
}

func recordStatus(span trace.Span, err error) {
	code := status.Code(err)
	span.SetAttributes(attribute.String("rpc.grpc.status_code", code.String()))
	if isFault(code) {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, code.String())
	}
}

func levelFor(code codes.Code) slog.Level {
	switch {
	case code == codes.OK:
		return slog.LevelInfo
	case isFault(code):
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func isFault(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.Internal, codes.DeadlineExceeded, codes.Unknown, codes.DataLoss:
		return true
	default:
		return false
	}
}
