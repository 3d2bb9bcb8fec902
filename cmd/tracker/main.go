package main

import (
	"context"
	"log/slog"
	"os"

	"tracker/config"
	"tracker/internal/delivery"
	"tracker/internal/delivery/http"
	"tracker/internal/delivery/http/router/handler"
	"tracker/internal/delivery/worker"
	workerhandler "tracker/internal/delivery/worker/handler"
	"tracker/internal/domain/service"
	logs "tracker/internal/infra/log"
	"tracker/internal/infra/metrics"
	"tracker/internal/infra/persistence/postgres"
	"tracker/internal/infra/telemetry"
	"tracker/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		telemetry.Module,
		fx.Provide(
			metrics.NewCollector,
			newMetricsRecorder,
		),
	)
}

// newMetricsRecorder exposes the Prometheus collector to the use cases
func newMetricsRecorder(collector *metrics.Collector) service.MetricsRecorder {
	return collector
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRouteService,
			impl.NewTelemetryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			workerhandler.NewPositionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches every delivery once the OnStart hooks of its
// dependencies (database ping, migration) have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go serve(ctx, delivery, params.Shutdowner)
			}

			return nil
		},
	})
}

func serve(ctx context.Context, delivery delivery.Delivery, shutdowner fx.Shutdowner) {
	if err := delivery.Serve(ctx); err != nil {
		slog.Error("Failed to start server", slog.Any("error", err))

		// Trigger graceful shutdown to execute all OnStop hooks
		if shutdownErr := shutdowner.Shutdown(); shutdownErr != nil {
			slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
			os.Exit(1)
		}
	}
}
