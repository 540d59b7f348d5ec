// Package kafka forwards audit events to a Kafka topic as JSON records keyed
// by event ID.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	audit "partnerplan/pkg/platform/audit"
)

// Producer is the subset of the Kafka producer the sink needs.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

// Sink implements audit.Sink on top of a Producer.
type Sink struct {
	producer Producer
}

func NewSink(producer Producer) *Sink {
	return &Sink{producer: producer}
}

func (s *Sink) Append(ctx context.Context, event audit.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return s.producer.Publish(ctx, []byte(event.ID.String()), value)
}
