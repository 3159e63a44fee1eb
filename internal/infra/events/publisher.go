package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/telemetry"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher queues events in memory and writes them from a single
// background goroutine. Publish never waits on the broker: a full queue or a
// closed publisher drops the event with a warning.
type KafkaPublisher struct {
	writer       MessageWriter
	logger       *slog.Logger
	now          func() time.Time
	writeTimeout time.Duration

	queue     chan kafka.Message
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		Async:                  true,
		BatchTimeout:           cfg.BatchTimeout,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
		Transport:              &kafka.Transport{ClientID: cfg.ClientID, DialTimeout: cfg.WriteTimeout},
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				for _, m := range messages {
					logger.Warn("event dropped", "subject", m.Topic, "key", string(m.Key), "error", err.Error())
				}
			}
		},
	}
	return NewPublisherWithWriter(w, logger, cfg.QueueSize, cfg.WriteTimeout)
}

// NewPublisherWithWriter starts the background writer. Close stops it.
func NewPublisherWithWriter(w MessageWriter, logger *slog.Logger, queueSize int, writeTimeout time.Duration) *KafkaPublisher {
	if queueSize < 1 {
		queueSize = 1
	}
	p := &KafkaPublisher{
		writer:       w,
		logger:       logger,
		now:          time.Now,
		writeTimeout: writeTimeout,
		queue:        make(chan kafka.Message, queueSize),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *KafkaPublisher) Publish(ctx context.Context, subject string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("event encoding failed", "subject", subject, "error", err.Error())
		return
	}

	msg := kafka.Message{
		Topic:   subject,
		Value:   body,
		Headers: telemetry.InjectKafkaHeaders(ctx, nil),
		Time:    p.now(),
	}
	if k, ok := payload.(Keyed); ok {
		msg.Key = []byte(k.PartitionKey())
	}

	select {
	case <-p.stop:
		p.logger.Warn("event dropped", "subject", subject, "error", "publisher closed")
	case p.queue <- msg:
	default:
		p.logger.Warn("event dropped", "subject", subject, "error", "publish queue full")
	}
}

func (p *KafkaPublisher) run() {
	defer close(p.done)
	for {
		select {
		case msg := <-p.queue:
			p.write(msg)
		case <-p.stop:
			for {
				select {
				case msg := <-p.queue:
					p.write(msg)
				default:
					return
				}
			}
		}
	}
}

// write bounds each delivery attempt; the caller's context is long gone.
func (p *KafkaPublisher) write(msg kafka.Message) {
	ctx := context.Background()
	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("event dropped", "subject", msg.Topic, "error", err.Error())
		return
	}
	p.logger.Debug("event published", "subject", msg.Topic)
}

// Close flushes what is already queued, then closes the writer.
func (p *KafkaPublisher) Close() error {
	p.closeOnce.Do(func() { close(p.stop) })
	<-p.done
	return p.writer.Close()
}
