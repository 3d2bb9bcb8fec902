package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	mockRepo "tracker/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// repoFixtures holds the mocked transaction manager and the repositories it hands out.
type repoFixtures struct {
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	routeRepo     *mockRepo.MockRouteRepository
	telemetryRepo *mockRepo.MockTelemetryRepository
	metrics       *recordingMetrics
	logger        *slog.Logger
}

func newRepoFixtures(t *testing.T) repoFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	routeRepo := mockRepo.NewMockRouteRepository(t)
	telemetryRepo := mockRepo.NewMockTelemetryRepository(t)

	factory.EXPECT().NewRouteRepository().Return(routeRepo).Maybe()
	factory.EXPECT().NewTelemetryRepository().Return(telemetryRepo).Maybe()

	return repoFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       factory,
		routeRepo:     routeRepo,
		telemetryRepo: telemetryRepo,
		metrics:       &recordingMetrics{},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// expectExecute makes the next write transaction run fn against the mocked repositories.
func (f repoFixtures) expectExecute(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Once()
}

// expectReadOnly makes the next read-only transaction run fn against the mocked repositories.
func (f repoFixtures) expectReadOnly(ctx context.Context) {
	f.txManager.EXPECT().
		ExecuteReadOnly(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Once()
}

// recordingMetrics keeps every observation for later assertions.
type recordingMetrics struct {
	mu            sync.Mutex
	positions     []error
	routeSaves    []error
	routeMetrics  []error
	metricsLapsed []time.Duration
}

func (m *recordingMetrics) ObservePosition(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions = append(m.positions, err)
}

func (m *recordingMetrics) ObserveRouteSave(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routeSaves = append(m.routeSaves, err)
}

func (m *recordingMetrics) ObserveRouteMetrics(err error, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routeMetrics = append(m.routeMetrics, err)
	m.metricsLapsed = append(m.metricsLapsed, elapsed)
}

// Telemetry fixtures shared by the route tests. The coordinates are real
// fixes along a short course; consecutive distances round to 328, 93 and 332 meters.
func testPositions() []*entity.DevicePosition {
	at := time.Date(2025, 9, 21, 9, 30, 0, 0, time.UTC)

	return []*entity.DevicePosition{
		{ID: 1, Device: "SDABC", Time: at, Latitude: 39.510093, Longitude: -9.136053, Active: true},
		{ID: 2, Device: "SDDEF", Time: at, Latitude: 39.509001, Longitude: -9.139602, Active: true},
		{ID: 3, Device: "SDFGH", Time: at, Latitude: 39.509773, Longitude: -9.140004, Active: true},
		{ID: 4, Device: "SDJKL", Time: at, Latitude: 39.511075, Longitude: -9.136516, Active: true},
	}
}

func testRoute() *entity.Route {
	return &entity.Route{
		ID:        1,
		Reference: "20260921ETU001-001S",
		Version:   2,
		Segments: []*entity.RouteSegment{
			{ID: 12, Order: 3, StartDevice: "SDFGH", EndDevice: "SDJKL"},
			{ID: 10, Order: 1, StartDevice: "SDABC", EndDevice: "SDDEF"},
			{ID: 11, Order: 2, StartDevice: "SDDEF", EndDevice: "SDFGH"},
		},
	}
}
