package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TopicCart  = "cart_events"
	TopicOrder = "order_events"

	publishTimeout = 5 * time.Second
)

// Producer publishes storefront events to Kafka. A nil *Producer is
// valid and publishes nothing, so the broker stays optional. Publish
// errors are logged and never propagate to the request path.
type Producer struct {
	writer *kafka.Writer
	log    *slog.Logger
}

func NewProducer(address string, log *slog.Logger) *Producer {
	if address == "" {
		return nil
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(address),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w, log: log}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, event any) {
	if p == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error("event marshal failed", "topic", topic, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warn("event publish failed", "topic", topic, "error", err)
	}
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
