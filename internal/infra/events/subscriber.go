package events

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/telemetry"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Handler consumes one event. A returned error is logged; the message is
// committed regardless because delivery is at-most-once.
type Handler func(ctx context.Context, subject string, value []byte) error

// MessageReader is the subset of *kafka.Reader the subscriber needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaSubscriber struct {
	reader  MessageReader
	handler Handler
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewKafkaSubscriber(cfg config.KafkaConfig, topics []string, handler Handler, logger *slog.Logger) *KafkaSubscriber {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.ConsumerGroup,
		GroupTopics: topics,
		StartOffset: kafka.LastOffset,
	})
	return NewSubscriberWithReader(r, handler, logger)
}

func NewSubscriberWithReader(r MessageReader, handler Handler, logger *slog.Logger) *KafkaSubscriber {
	return &KafkaSubscriber{
		reader:  r,
		handler: handler,
		logger:  logger,
		tracer:  telemetry.Tracer("events"),
	}
}

// Run consumes until ctx is cancelled. It returns nil on cancellation.
func (s *KafkaSubscriber) Run(ctx context.Context) error {
	for {
		msg, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		msgCtx := telemetry.ExtractKafkaHeaders(ctx, msg.Headers)
		msgCtx, span := s.tracer.Start(msgCtx, "consume "+msg.Topic,
			trace.WithSpanKind(trace.SpanKindConsumer),
			trace.WithAttributes(
				attribute.String("messaging.destination.name", msg.Topic),
				attribute.Int("messaging.kafka.partition", msg.Partition),
				attribute.Int64("messaging.kafka.offset", msg.Offset),
			))

		if err := s.handler(msgCtx, msg.Topic, msg.Value); err != nil {
			span.RecordError(err)
			s.logger.Warn("event handling failed", "subject", msg.Topic, "offset", msg.Offset, "error", err.Error())
		}
		span.End()

		if err := s.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			s.logger.Warn("event commit failed", "subject", msg.Topic, "offset", msg.Offset, "error", err.Error())
		}
	}
}

func (s *KafkaSubscriber) Close() error {
	return s.reader.Close()
}
