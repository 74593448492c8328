package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher delivers best-effort economy events. Implementations must
// never fail the calling operation: delivery errors are swallowed.
type Publisher interface {
	Publish(ctx context.Context, event models.Event)
}

// KafkaPublisher publishes economy events to Kafka.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaPublisher creates a publisher over the given writer.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish sends one event, filling in the event ID and timestamp.
// Errors are logged and discarded: notification failure never unwinds
// the economic transaction that produced the event.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.Event) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping event", "type", event.Type)
		return
	}

	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().Unix()

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "type", event.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.AccountID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "type", event.Type, "account_id", event.AccountID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "type", event.Type, "account_id", event.AccountID)
	}
}
