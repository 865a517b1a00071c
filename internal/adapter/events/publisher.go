// Package events publishes intent-outcome analytics records to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/cjbdev/iss-sightings/internal/config"
	"github.com/cjbdev/iss-sightings/internal/domain"
)

// Publisher produces intent events to the analytics topic.
// It implements skill.EventPublisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured events topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaEventsTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes and writes one intent event.
func (p *Publisher) Publish(ctx context.Context, event domain.IntentEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals an IntentEvent into a Kafka message keyed by
// intent name so per-intent ordering is preserved within a partition.
func serializeToMessage(event domain.IntentEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize intent event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.Intent),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "outcome", Value: []byte(event.Outcome)},
			{Key: "handled_at", Value: []byte(event.Timestamp.Format(time.RFC3339))},
		},
	}, nil
}
