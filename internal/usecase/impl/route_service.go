// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// routeService implements the RouteUsecase interface.
type routeService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder `optional:"true"`
	Logger    *slog.Logger
}

// NewRouteService is the constructor for routeService.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetricsRecorder{}
	}

	return &routeService{
		txManager: params.TxManager,
		metrics:   metrics,
		logger:    params.Logger,
	}
}

// log returns a message-scoped logger if available, otherwise falls back to the service's logger.
func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveRoute validates the submission, checks that every referenced device is
// known, reconciles it with the stored route and persists the result in one
// transaction.
func (srv *routeService) SaveRoute(ctx context.Context, input *usecase.RouteInput) (*entity.Route, error) {
	route, err := srv.saveRoute(ctx, input)
	srv.metrics.ObserveRouteSave(err)

	return route, err
}

func (srv *routeService) saveRoute(ctx context.Context, input *usecase.RouteInput) (*entity.Route, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError([]string{"route is required"})
	}
	if err := routeInputError(input); err != nil {
		return nil, err
	}

	segments := inputSegments(input.Segments)
	if violations := entity.ValidateSegments(segments); len(violations) > 0 {
		srv.log(ctx).Debug("Route segments rejected", slog.Any("routeID", input.ID), slog.Any("violations", violations))

		return nil, domainerrors.NewValidationError(violations)
	}

	var saved *entity.Route
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		routeRepo := repoFactory.NewRouteRepository()
		telemetryRepo := repoFactory.NewTelemetryRepository()

		if err := ensureDevicesExist(ctx, telemetryRepo, entity.SegmentDevices(segments)); err != nil {
			return err
		}

		existing, err := srv.findExistingRoute(ctx, routeRepo, input)
		if err != nil {
			return err
		}

		reconciled, err := reconcileRoute(input, existing)
		if err != nil {
			return err
		}

		if err := routeRepo.SaveRoute(ctx, reconciled); err != nil {
			if errors.Is(err, repository.ErrRouteVersionConflict) {
				return domainerrors.ErrRouteConcurrentUpdate.WithDetailsf("route %d", reconciled.ID)
			}
			if errors.Is(err, repository.ErrRouteNotFound) {
				return domainerrors.ErrRouteNotFound.WithDetailsf("route %d", reconciled.ID)
			}

			return errors.Wrap(err, "failed to save route")
		}

		if removed := removedSegmentIDs(existing, reconciled); len(removed) > 0 {
			srv.log(ctx).Debug("Route segments removed", slog.Any("routeID", reconciled.ID), slog.Any("segmentIDs", removed))
		}
		saved = reconciled

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to save route", slog.Any("routeID", input.ID), slog.Any("error", err))

		return nil, err
	}

	saved.Segments = entity.SortSegments(saved.Segments)
	srv.log(ctx).Info("Route saved",
		slog.Any("routeID", saved.ID),
		slog.Int("version", saved.Version),
		slog.Int("segments", len(saved.Segments)),
	)

	return saved, nil
}

// findExistingRoute loads the route an update targets, or returns nil for a create.
func (srv *routeService) findExistingRoute(ctx context.Context, routeRepo repository.RouteRepository, input *usecase.RouteInput) (*entity.Route, error) {
	if input.ID == 0 {
		return nil, nil
	}

	existing, err := routeRepo.FindRouteByID(ctx, input.ID)
	if errors.Is(err, repository.ErrRouteNotFound) {
		return nil, domainerrors.ErrRouteNotFound.WithDetailsf("route %d", input.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find route")
	}

	if input.Version != nil && *input.Version != existing.Version {
		return nil, domainerrors.ErrRouteConcurrentUpdate.WithDetailsf(
			"route %d is at version %d, update was based on version %d", existing.ID, existing.Version, *input.Version,
		)
	}

	return existing, nil
}

// ensureDevicesExist fails with the sorted list of devices the telemetry store has never seen.
func ensureDevicesExist(ctx context.Context, telemetryRepo repository.TelemetryRepository, devices []string) error {
	if len(devices) == 0 {
		return nil
	}

	existing, err := telemetryRepo.FindExistingDevices(ctx, devices)
	if err != nil {
		return errors.Wrap(err, "failed to find existing devices")
	}

	known := make(map[string]struct{}, len(existing))
	for _, device := range existing {
		known[device] = struct{}{}
	}

	var missing []string
	for _, device := range devices {
		if _, ok := known[device]; !ok {
			missing = append(missing, device)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)

	return domainerrors.ErrUnknownRouteDevices.WithDetails(strings.Join(missing, ", "))
}

// FindAllRoutes lists every route with segments sorted by order.
func (srv *routeService) FindAllRoutes(ctx context.Context) ([]*entity.Route, error) {
	var routes []*entity.Route
	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewRouteRepository().FindAllRoutes(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to find routes")
		}
		routes = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, route := range routes {
		route.Segments = route.SortedSegments()
	}

	return routes, nil
}

// FindRouteByID returns one route with segments sorted by order.
func (srv *routeService) FindRouteByID(ctx context.Context, id uint) (*entity.Route, error) {
	var route *entity.Route
	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findRoute(ctx, repoFactory.NewRouteRepository(), id)
		if err != nil {
			return err
		}
		route = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	route.Segments = route.SortedSegments()

	return route, nil
}

func findRoute(ctx context.Context, routeRepo repository.RouteRepository, id uint) (*entity.Route, error) {
	route, err := routeRepo.FindRouteByID(ctx, id)
	if errors.Is(err, repository.ErrRouteNotFound) {
		return nil, domainerrors.ErrRouteNotFound.WithDetailsf("route %d", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find route")
	}

	return route, nil
}

// ComputeRouteMetrics loads the route and the latest position of each of its
// devices in one read-only transaction and assembles the GeoJSON output.
// Missing telemetry for any device fails the whole computation.
func (srv *routeService) ComputeRouteMetrics(ctx context.Context, id uint) (*geojson.FeatureCollection, error) {
	start := time.Now()
	fc, err := srv.computeRouteMetrics(ctx, id)
	srv.metrics.ObserveRouteMetrics(err, time.Since(start))

	if err != nil {
		srv.log(ctx).Warn("Failed to compute route metrics", slog.Any("routeID", id), slog.Any("error", err))

		return nil, err
	}

	return fc, nil
}

func (srv *routeService) computeRouteMetrics(ctx context.Context, id uint) (*geojson.FeatureCollection, error) {
	var (
		route     *entity.Route
		positions map[string]*entity.DevicePosition
	)

	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findRoute(ctx, repoFactory.NewRouteRepository(), id)
		if err != nil {
			return err
		}
		route = found

		devices := route.Devices()
		if len(devices) == 0 {
			return nil
		}

		latest, err := repoFactory.NewTelemetryRepository().FindMostRecentPositions(ctx, devices)
		if err != nil {
			return errors.Wrap(err, "failed to find most recent positions")
		}

		byDevice, missing := latestPositionsByDevice(devices, latest)
		if len(missing) > 0 {
			return domainerrors.ErrTelemetryNotFound.WithDetails(strings.Join(missing, ", "))
		}
		positions = byDevice

		return nil
	})
	if err != nil {
		return nil, err
	}

	return assembleRouteMetrics(route, positions)
}
