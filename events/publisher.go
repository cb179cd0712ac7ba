package events

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "events").Logger()

// Event types emitted on the order topic
const (
	OrderCreated       = "order.created"
	OrderStatusChanged = "order.status_changed"
	PaymentSubmitted   = "payment.submitted"
	PaymentReviewed    = "payment.reviewed"
)

// Event is the wire envelope published for every lifecycle change
type Event struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id,omitempty"`
	PaymentID  string    `json:"payment_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits lifecycle events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, evt Event)
	Close() error
}

// Nop drops all events; used when no brokers are configured
type Nop struct{}

func (Nop) Publish(ctx context.Context, evt Event) {}
func (Nop) Close() error                           { return nil }

// Kafka publishes events to a kafka topic. Publish failures are logged and
// swallowed — event delivery never blocks an order mutation.
type Kafka struct {
	writer *kafka.Writer
}

func NewKafka(brokers []string, topic string) *Kafka {
	return &Kafka{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *Kafka) Publish(ctx context.Context, evt Event) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		logger.Error().Err(err).Str("type", evt.Type).Msg("Failed to encode event")
		return
	}
	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.Type),
		Value: data,
	}); err != nil {
		logger.Error().Err(err).Str("type", evt.Type).Msg("Failed to publish event")
	}
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
