package impl

import (
	"context"
	"testing"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// routeServiceFixtures holds all test dependencies for route service tests.
type routeServiceFixtures struct {
	repoFixtures
	service usecase.RouteUsecase
}

func createTestRouteService(t *testing.T) routeServiceFixtures {
	repos := newRepoFixtures(t)
	service := NewRouteService(RouteServiceParams{
		TxManager: repos.txManager,
		Metrics:   repos.metrics,
		Logger:    repos.logger,
	})

	return routeServiceFixtures{
		repoFixtures: repos,
		service:      service,
	}
}

func threeSegmentInput() *usecase.RouteInput {
	return &usecase.RouteInput{
		Reference: "20260921ETU001-001S",
		Segments: []*usecase.RouteSegmentInput{
			{Order: 2, StartDevice: "SDDEF", EndDevice: "SDFGH"},
			{Order: 1, StartDevice: "SDABC", EndDevice: "SDDEF"},
			{Order: 3, StartDevice: "SDFGH", EndDevice: "SDJKL"},
		},
	}
}

func TestRouteService_SaveRoute_Create(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	input := threeSegmentInput()

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.MatchedBy(func(devices []string) bool {
			return assert.ElementsMatch(t, []string{"SDABC", "SDDEF", "SDFGH", "SDJKL"}, devices)
		})).
		Return([]string{"SDABC", "SDDEF", "SDFGH", "SDJKL"}, nil)
	fx.routeRepo.EXPECT().
		SaveRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Run(func(_ context.Context, route *entity.Route) {
			route.ID = 1
			for i, segment := range route.Segments {
				assert.Zero(t, segment.ID)
				segment.ID = uint(100 + i)
			}
		}).
		Return(nil)

	route, err := fx.service.SaveRoute(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, uint(1), route.ID)
	assert.Equal(t, input.Reference, route.Reference)
	require.Len(t, route.Segments, 3)
	for i, segment := range route.Segments {
		assert.Equal(t, i+1, segment.Order)
		assert.NotZero(t, segment.ID)
	}
	assert.Equal(t, []error{nil}, fx.metrics.routeSaves)
}

func TestRouteService_SaveRoute_EmptyRoute(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	input := &usecase.RouteInput{Reference: "warm-up"}

	fx.expectExecute(ctx)
	fx.routeRepo.EXPECT().
		SaveRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Run(func(_ context.Context, route *entity.Route) { route.ID = 5 }).
		Return(nil)

	route, err := fx.service.SaveRoute(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint(5), route.ID)
	assert.Empty(t, route.Segments)
}

func TestRouteService_SaveRoute_SegmentViolations(t *testing.T) {
	fx := createTestRouteService(t)

	input := &usecase.RouteInput{
		Reference: "broken",
		Segments: []*usecase.RouteSegmentInput{
			{Order: 1, StartDevice: "SDABC", EndDevice: "SDDEF"},
			{Order: 3, StartDevice: "SDFGH", EndDevice: "SDJKL"},
		},
	}

	route, err := fx.service.SaveRoute(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, route)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations(), 2)
	assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))
	assert.ErrorIs(t, err, domainerrors.ErrRouteValidationFailed)
	require.Len(t, fx.metrics.routeSaves, 1)
	assert.Equal(t, err, fx.metrics.routeSaves[0])
}

func TestRouteService_SaveRoute_MissingFirstOrder(t *testing.T) {
	fx := createTestRouteService(t)

	input := &usecase.RouteInput{
		Reference: "late start",
		Segments:  []*usecase.RouteSegmentInput{{Order: 2, StartDevice: "SDABC", EndDevice: "SDDEF"}},
	}

	_, err := fx.service.SaveRoute(context.Background(), input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Violations(), 1)
	assert.Contains(t, validationErr.Violations()[0], "order 1")
}

func TestRouteService_SaveRoute_InvalidInput(t *testing.T) {
	fx := createTestRouteService(t)

	tests := []struct {
		name  string
		input *usecase.RouteInput
		want  string
	}{
		{
			name:  "nil input",
			input: nil,
			want:  "route is required",
		},
		{
			name:  "missing reference",
			input: &usecase.RouteInput{},
			want:  "reference is required",
		},
		{
			name: "order below one",
			input: &usecase.RouteInput{
				Reference: "r",
				Segments:  []*usecase.RouteSegmentInput{{Order: 0, StartDevice: "A", EndDevice: "B"}},
			},
			want: "segments[0].order must be at least 1",
		},
		{
			name: "missing device",
			input: &usecase.RouteInput{
				Reference: "r",
				Segments:  []*usecase.RouteSegmentInput{{Order: 1, StartDevice: "A"}},
			},
			want: "segments[0].endDevice is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.SaveRoute(context.Background(), tt.input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Violations(), tt.want)
		})
	}
}

func TestRouteService_SaveRoute_UnknownDevices(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return([]string{"SDDEF", "SDFGH"}, nil)

	_, err := fx.service.SaveRoute(ctx, threeSegmentInput())
	require.Error(t, err)

	assert.ErrorIs(t, err, domainerrors.ErrUnknownRouteDevices)
	assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), "SDABC, SDJKL")
}

func TestRouteService_SaveRoute_RouteNotFound(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	input := threeSegmentInput()
	input.ID = 42

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return([]string{"SDABC", "SDDEF", "SDFGH", "SDJKL"}, nil)
	fx.routeRepo.EXPECT().
		FindRouteByID(ctx, uint(42)).
		Return(nil, repository.ErrRouteNotFound)

	_, err := fx.service.SaveRoute(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), "42")
}

func TestRouteService_SaveRoute_UpdateReconcilesSegments(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	existing := testRoute()
	input := &usecase.RouteInput{
		ID:        existing.ID,
		Reference: "renamed",
		Segments: []*usecase.RouteSegmentInput{
			{ID: 10, Order: 1, StartDevice: "SDABC", EndDevice: "SDDEF"},
			{ID: 11, Order: 2, StartDevice: "SDDEF", EndDevice: "SDJKL"},
			{Order: 3, StartDevice: "SDJKL", EndDevice: "SDFGH"},
		},
	}

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return([]string{"SDABC", "SDDEF", "SDFGH", "SDJKL"}, nil)
	fx.routeRepo.EXPECT().
		FindRouteByID(ctx, existing.ID).
		Return(existing, nil)
	fx.routeRepo.EXPECT().
		SaveRoute(ctx, mock.MatchedBy(func(route *entity.Route) bool {
			ids := make([]uint, 0, len(route.Segments))
			for _, segment := range route.Segments {
				ids = append(ids, segment.ID)
			}

			return route.ID == existing.ID && route.Reference == "renamed" &&
				assert.ElementsMatch(t, []uint{10, 11, 0}, ids)
		})).
		Run(func(_ context.Context, route *entity.Route) {
			route.Version++
			for _, segment := range route.Segments {
				if segment.ID == 0 {
					segment.ID = 13
				}
			}
		}).
		Return(nil)

	route, err := fx.service.SaveRoute(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, existing.Version+1, route.Version)
	require.Len(t, route.Segments, 3)
	assert.Equal(t, uint(10), route.Segments[0].ID)
	assert.Equal(t, uint(11), route.Segments[1].ID)
	assert.Equal(t, "SDJKL", route.Segments[1].EndDevice)
	assert.Equal(t, uint(13), route.Segments[2].ID)
}

func TestRouteService_SaveRoute_SegmentNotOnRoute(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	existing := testRoute()
	input := &usecase.RouteInput{
		ID:        existing.ID,
		Reference: existing.Reference,
		Segments: []*usecase.RouteSegmentInput{
			{ID: 10, Order: 1, StartDevice: "SDABC", EndDevice: "SDDEF"},
			{ID: 99, Order: 2, StartDevice: "SDDEF", EndDevice: "SDFGH"},
		},
	}

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return([]string{"SDABC", "SDDEF", "SDFGH"}, nil)
	fx.routeRepo.EXPECT().
		FindRouteByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := fx.service.SaveRoute(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrSegmentNotOnRoute)
	assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), "99")
	fx.routeRepo.AssertNotCalled(t, "SaveRoute", mock.Anything, mock.Anything)
}

func TestRouteService_SaveRoute_RepeatedSegmentID(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	existing := &entity.Route{
		ID:        1,
		Reference: "ref",
		Version:   1,
		Segments: []*entity.RouteSegment{
			{ID: 10, Order: 1, StartDevice: "SDABC", EndDevice: "SDDEF"},
		},
	}
	input := &usecase.RouteInput{
		ID:        existing.ID,
		Reference: existing.Reference,
		Segments: []*usecase.RouteSegmentInput{
			{ID: 10, Order: 1, StartDevice: "SDABC", EndDevice: "SDDEF"},
			{ID: 10, Order: 2, StartDevice: "SDDEF", EndDevice: "SDFGH"},
		},
	}

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return([]string{"SDABC", "SDDEF", "SDFGH"}, nil)
	fx.routeRepo.EXPECT().
		FindRouteByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := fx.service.SaveRoute(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateSegmentID)
	assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	fx.routeRepo.AssertNotCalled(t, "SaveRoute", mock.Anything, mock.Anything)
}

func TestRouteService_SaveRoute_StaleClientVersion(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	existing := testRoute()
	staleVersion := existing.Version - 1
	input := threeSegmentInput()
	input.ID = existing.ID
	input.Version = &staleVersion

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return([]string{"SDABC", "SDDEF", "SDFGH", "SDJKL"}, nil)
	fx.routeRepo.EXPECT().
		FindRouteByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := fx.service.SaveRoute(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrRouteConcurrentUpdate)
	assert.Equal(t, domainerrors.KindConcurrentUpdate, domainerrors.KindOf(err))
}

func TestRouteService_SaveRoute_VersionConflict(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	existing := testRoute()
	input := threeSegmentInput()
	input.ID = existing.ID

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return([]string{"SDABC", "SDDEF", "SDFGH", "SDJKL"}, nil)
	fx.routeRepo.EXPECT().
		FindRouteByID(ctx, existing.ID).
		Return(existing, nil)
	fx.routeRepo.EXPECT().
		SaveRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Return(repository.ErrRouteVersionConflict)

	_, err := fx.service.SaveRoute(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrRouteConcurrentUpdate)
	assert.Equal(t, domainerrors.KindConcurrentUpdate, domainerrors.KindOf(err))
}

func TestRouteService_SaveRoute_RouteDeletedBeforeWrite(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	existing := testRoute()
	input := threeSegmentInput()
	input.ID = existing.ID

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return([]string{"SDABC", "SDDEF", "SDFGH", "SDJKL"}, nil)
	fx.routeRepo.EXPECT().
		FindRouteByID(ctx, existing.ID).
		Return(existing, nil)
	fx.routeRepo.EXPECT().
		SaveRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Return(repository.ErrRouteNotFound)

	_, err := fx.service.SaveRoute(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	assert.NotContains(t, err.Error(), "failed to save route")
}

func TestRouteService_SaveRoute_StoreError(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		FindExistingDevices(ctx, mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.SaveRoute(ctx, threeSegmentInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find existing devices")
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestRouteService_FindRouteByID_SortsSegments(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()

	fx.expectReadOnly(ctx)
	fx.routeRepo.EXPECT().FindRouteByID(ctx, uint(1)).Return(testRoute(), nil)

	route, err := fx.service.FindRouteByID(ctx, 1)
	require.NoError(t, err)

	require.Len(t, route.Segments, 3)
	for i, segment := range route.Segments {
		assert.Equal(t, i+1, segment.Order)
	}
}

func TestRouteService_FindRouteByID_NotFound(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()

	fx.expectReadOnly(ctx)
	fx.routeRepo.EXPECT().FindRouteByID(ctx, uint(7)).Return(nil, repository.ErrRouteNotFound)

	route, err := fx.service.FindRouteByID(ctx, 7)

	assert.Nil(t, route)
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
}

func TestRouteService_FindAllRoutes(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	empty := &entity.Route{ID: 2, Reference: "empty"}

	fx.expectReadOnly(ctx)
	fx.routeRepo.EXPECT().FindAllRoutes(ctx).Return([]*entity.Route{testRoute(), empty}, nil)

	routes, err := fx.service.FindAllRoutes(ctx)
	require.NoError(t, err)

	require.Len(t, routes, 2)
	assert.Equal(t, 1, routes[0].Segments[0].Order)
	assert.Empty(t, routes[1].Segments)
}

func TestRouteService_ComputeRouteMetrics(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()

	fx.expectReadOnly(ctx)
	fx.routeRepo.EXPECT().FindRouteByID(ctx, uint(1)).Return(testRoute(), nil)
	fx.telemetryRepo.EXPECT().
		FindMostRecentPositions(ctx, mock.MatchedBy(func(devices []string) bool {
			return assert.ElementsMatch(t, []string{"SDABC", "SDDEF", "SDFGH", "SDJKL"}, devices)
		})).
		Return(testPositions(), nil).
		Once()

	fc, err := fx.service.ComputeRouteMetrics(ctx, 1)
	require.NoError(t, err)

	require.Len(t, fc.Features, 5)
	wantPoints := []orb.Point{
		{-9.136053, 39.510093},
		{-9.139602, 39.509001},
		{-9.140004, 39.509773},
		{-9.136516, 39.511075},
	}
	for i, want := range wantPoints {
		feature := fc.Features[i]
		assert.Equal(t, want, feature.Geometry)
		assert.Equal(t, i+1, feature.Properties["order"])
	}

	line := fc.Features[4]
	assert.Equal(t, orb.LineString(wantPoints), line.Geometry)
	assert.Equal(t, uint(1), line.Properties["id"])
	assert.Equal(t, "20260921ETU001-001S", line.Properties["reference"])

	segments, ok := line.Properties["segments"].([]usecase.SegmentDistance)
	require.True(t, ok)
	assert.Equal(t, []usecase.SegmentDistance{
		{Order: 1, SegmentDistance: 328},
		{Order: 2, SegmentDistance: 93},
		{Order: 3, SegmentDistance: 332},
	}, segments)

	var sum int64
	for _, segment := range segments {
		sum += segment.SegmentDistance
	}
	assert.Equal(t, sum, line.Properties["totalDistance"])
	assert.Equal(t, int64(753), sum)

	require.Len(t, fx.metrics.routeMetrics, 1)
	assert.NoError(t, fx.metrics.routeMetrics[0])
}

func TestRouteService_ComputeRouteMetrics_MissingTelemetry(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	positions := testPositions()[:3]

	fx.expectReadOnly(ctx)
	fx.routeRepo.EXPECT().FindRouteByID(ctx, uint(1)).Return(testRoute(), nil)
	fx.telemetryRepo.EXPECT().FindMostRecentPositions(ctx, mock.Anything).Return(positions, nil)

	fc, err := fx.service.ComputeRouteMetrics(ctx, 1)

	assert.Nil(t, fc)
	assert.ErrorIs(t, err, domainerrors.ErrTelemetryNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), "SDJKL")
	require.Len(t, fx.metrics.routeMetrics, 1)
	assert.Error(t, fx.metrics.routeMetrics[0])
}

func TestRouteService_ComputeRouteMetrics_RouteNotFound(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()

	fx.expectReadOnly(ctx)
	fx.routeRepo.EXPECT().FindRouteByID(ctx, uint(3)).Return(nil, repository.ErrRouteNotFound)

	_, err := fx.service.ComputeRouteMetrics(ctx, 3)

	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
	assert.Contains(t, err.Error(), "3")
}

func TestRouteService_ComputeRouteMetrics_NoSegments(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()

	fx.expectReadOnly(ctx)
	fx.routeRepo.EXPECT().FindRouteByID(ctx, uint(2)).Return(&entity.Route{ID: 2, Reference: "empty"}, nil)

	fc, err := fx.service.ComputeRouteMetrics(ctx, 2)
	require.NoError(t, err)

	assert.Empty(t, fc.Features)
	fx.telemetryRepo.AssertNotCalled(t, "FindMostRecentPositions", mock.Anything, mock.Anything)
}
