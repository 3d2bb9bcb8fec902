package impl

import (
	"context"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type telemetryService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// TelemetryServiceParams holds dependencies for TelemetryService, injected by Fx.
type TelemetryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder `optional:"true"`
	Logger    *slog.Logger
}

// NewTelemetryService creates a new telemetry service instance
func NewTelemetryService(params TelemetryServiceParams) usecase.TelemetryUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetricsRecorder{}
	}

	return &telemetryService{
		txManager: params.TxManager,
		metrics:   metrics,
		logger:    params.Logger,
	}
}

func (srv *telemetryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPosition validates and stores a position report
func (srv *telemetryService) RecordPosition(ctx context.Context, input *usecase.PositionInput) (*entity.DevicePosition, error) {
	position, err := srv.recordPosition(ctx, input)
	srv.metrics.ObservePosition(err)

	return position, err
}

func (srv *telemetryService) recordPosition(ctx context.Context, input *usecase.PositionInput) (*entity.DevicePosition, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidPosition.WithDetails("position is required")
	}
	if err := positionInputError(input); err != nil {
		return nil, err
	}

	position := &entity.DevicePosition{
		Device:    input.Device,
		Time:      input.Time,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Active:    true,
	}
	if input.Active != nil {
		position.Active = *input.Active
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTelemetryRepository().CreatePosition(ctx, position); err != nil {
			return errors.Wrap(err, "failed to create position")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record position", slog.String("device", input.Device), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Position recorded",
		slog.String("device", position.Device),
		slog.Float64("lat", position.Latitude),
		slog.Float64("lon", position.Longitude),
	)

	return position, nil
}

// LatestPositions returns the most recent active position of every device
func (srv *telemetryService) LatestPositions(ctx context.Context) ([]*entity.DevicePosition, error) {
	var positions []*entity.DevicePosition
	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewTelemetryRepository().FindMostRecentPositionForEachDevice(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to find latest positions")
		}
		positions = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return positions, nil
}
