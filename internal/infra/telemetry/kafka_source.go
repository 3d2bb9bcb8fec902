package telemetry

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"tracker/config"
	"tracker/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaReader is the subset of *kafka.Reader used by kafkaSource
type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaSource struct {
	reader kafkaReader
	topic  string
	logger *slog.Logger
}

// NewKafkaSource creates a consumer-group reader for the configured topic
func NewKafkaSource(cfg config.KafkaConfig, logger *slog.Logger) service.TelemetrySource {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	return &kafkaSource{
		reader: reader,
		topic:  cfg.Topic,
		logger: logger,
	}
}

// Consume fetches messages one at a time and commits each after handling.
// Rejected messages are committed as well.
func (s *kafkaSource) Consume(ctx context.Context, handler service.TelemetryHandler) error {
	s.logger.Info("Consuming Kafka telemetry", slog.String("topic", s.topic))

	for {
		msg, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to fetch kafka message")
		}

		if err := handler(ctx, fromKafkaMessage(msg)); err != nil {
			s.logger.Warn("Telemetry message rejected",
				slog.String("topic", msg.Topic),
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}

		if err := s.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to commit kafka message")
		}
	}
}

func (s *kafkaSource) Close() error {
	return errors.WithStack(s.reader.Close())
}

// fromKafkaMessage identifies the message by topic, partition and offset
func fromKafkaMessage(msg kafka.Message) *service.TelemetryMessage {
	out := &service.TelemetryMessage{
		ID:      msg.Topic + "/" + strconv.Itoa(msg.Partition) + "/" + strconv.FormatInt(msg.Offset, 10),
		Subject: msg.Topic,
		Data:    msg.Value,
	}

	if len(msg.Headers) > 0 {
		out.Headers = make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			out.Headers[h.Key] = string(h.Value)
		}
	}

	return out
}
