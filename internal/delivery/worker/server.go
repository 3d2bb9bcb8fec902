package worker

import (
	"context"
	"log/slog"
	"sync"

	"tracker/internal/delivery"
	"tracker/internal/delivery/worker/handler"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	logger          *slog.Logger
	source          service.TelemetrySource
	positionHandler *handler.PositionHandler

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ServerParams holds dependencies for the ingestion worker
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Logger          *slog.Logger
	Source          service.TelemetrySource
	PositionHandler *handler.PositionHandler
}

// NewServer creates the telemetry ingestion worker
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		logger:          params.Logger,
		source:          params.Source,
		positionHandler: params.PositionHandler,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve consumes telemetry until the worker is stopped
func (s *workerServer) Serve(ctx context.Context) error {
	consumeCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	defer close(done)
	defer cancel()

	s.logger.Info("Starting telemetry worker")
	if err := s.source.Consume(consumeCtx, s.positionHandler.HandleMessage); err != nil {
		return errors.Wrap(err, "failed to consume telemetry")
	}

	return nil
}

// stop cancels consumption and waits for the in-flight message
func (s *workerServer) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	s.logger.Info("Shutting down telemetry worker")
	cancel()

	shutdownCtx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	select {
	case <-done:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "telemetry worker did not stop in time")
	}
}
