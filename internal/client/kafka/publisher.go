package kafka

import (
	"context"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/metrics"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type Publisher struct {
	writer  Writer
	metrics *metrics.Metrics
}

func New(cfg *config.Config, m *metrics.Metrics) *Publisher {
	return NewWithWriter(&kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Kafka.Brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}, m)
}

func NewWithWriter(writer Writer, m *metrics.Metrics) *Publisher {
	return &Publisher{
		writer:  writer,
		metrics: m,
	}
}

func (p *Publisher) Close() {
	_ = p.writer.Close()
}

// Publish blocks until the brokers acknowledge the record.
func (p *Publisher) Publish(ctx context.Context, event model.Event) error {
	msg := kafkago.Message{
		Topic: event.Subject,
		Key:   []byte(event.Key),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: model.CeTypeHeader, Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.observe(event.Type, "error")
		return fmt.Errorf("failed to publish %s to %s: %w", event.Type, event.Subject, err)
	}

	p.observe(event.Type, "ok")

	return nil
}

func (p *Publisher) observe(tp model.EventType, result string) {
	if p.metrics == nil {
		return
	}

	p.metrics.EventsPublished.WithLabelValues(string(tp), result).Inc()
}
