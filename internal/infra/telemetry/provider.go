package telemetry

import (
	"context"
	"log/slog"

	"tracker/config"
	"tracker/internal/domain/constants"
	"tracker/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopSource is used when telemetry ingestion is disabled
type noopSource struct {
	logger *slog.Logger
}

// Consume blocks until ctx is cancelled without delivering anything
func (s *noopSource) Consume(ctx context.Context, _ service.TelemetryHandler) error {
	s.logger.Debug("[NoopTelemetry] Ingestion disabled, waiting for shutdown")
	<-ctx.Done()

	return nil
}

func (s *noopSource) Close() error {
	return nil
}

// SourceParams holds dependencies for TelemetrySource, injected by Fx
type SourceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTelemetrySource creates a TelemetrySource based on configuration
func NewTelemetrySource(params SourceParams) (service.TelemetrySource, error) {
	cfg := params.Config.Telemetry
	logger := params.Logger

	// If telemetry is not configured, return a no-op source
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Telemetry not configured, using no-op source")

		return &noopSource{logger: logger}, nil
	}

	var source service.TelemetrySource
	var err error

	switch cfg.Provider {
	case constants.TelemetryProviderNATS:
		if cfg.NATS.URL == "" {
			return nil, errors.New("url is required for nats provider")
		}
		logger.Info("Using NATS telemetry source",
			slog.String("url", cfg.NATS.URL),
			slog.String("subject", cfg.NATS.Subject),
			slog.String("queue", cfg.NATS.Queue),
		)

		source, err = NewNATSSource(cfg.NATS, params.Config.Env.ServiceName, logger)
		if err != nil {
			return nil, err
		}

	case constants.TelemetryProviderKafka:
		if len(cfg.Kafka.Brokers) == 0 {
			return nil, errors.New("brokers are required for kafka provider")
		}
		logger.Info("Using Kafka telemetry source",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.Kafka.Topic),
			slog.String("group_id", cfg.Kafka.GroupID),
		)

		source = NewKafkaSource(cfg.Kafka, logger)

	default:
		return nil, errors.Errorf("unknown telemetry provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close source on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing TelemetrySource")

			return source.Close()
		},
	})

	return source, nil
}

// Module provides the telemetry FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTelemetrySource),
)
