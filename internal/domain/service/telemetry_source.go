package service

import (
	"context"
)

// TelemetryMessage is one raw payload pulled from the telemetry transport.
type TelemetryMessage struct {
	ID      string            // Transport message ID, empty when the broker supplies none
	Subject string            // NATS subject or Kafka topic the message arrived on
	Data    []byte            // JSON-encoded position report
	Headers map[string]string // Transport headers, may be nil
}

// TelemetryHandler processes a single message. An error is logged by the
// source; the message is not redelivered.
type TelemetryHandler func(ctx context.Context, msg *TelemetryMessage) error

// TelemetrySource defines the interface for consuming device telemetry from a message broker
type TelemetrySource interface {
	// Consume delivers messages to handler until ctx is cancelled or the
	// transport fails.
	Consume(ctx context.Context, handler TelemetryHandler) error

	// Close releases any resources held by the source
	Close() error
}
