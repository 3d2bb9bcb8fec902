package impl

import (
	"context"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// telemetryServiceFixtures holds all test dependencies for telemetry service tests.
type telemetryServiceFixtures struct {
	repoFixtures
	service usecase.TelemetryUsecase
}

func createTestTelemetryService(t *testing.T) telemetryServiceFixtures {
	repos := newRepoFixtures(t)
	service := NewTelemetryService(TelemetryServiceParams{
		TxManager: repos.txManager,
		Metrics:   repos.metrics,
		Logger:    repos.logger,
	})

	return telemetryServiceFixtures{
		repoFixtures: repos,
		service:      service,
	}
}

func TestTelemetryService_RecordPosition_Success(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	input := &usecase.PositionInput{
		Device:    "SDABC",
		Time:      time.Date(2025, 9, 21, 9, 30, 0, 0, time.UTC),
		Latitude:  39.510093,
		Longitude: -9.136053,
	}

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		CreatePosition(ctx, mock.AnythingOfType("*entity.DevicePosition")).
		Run(func(_ context.Context, position *entity.DevicePosition) {
			position.ID = 9
		}).
		Return(nil)

	position, err := fx.service.RecordPosition(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, uint(9), position.ID)
	assert.Equal(t, "SDABC", position.Device)
	assert.Equal(t, input.Time, position.Time)
	assert.Equal(t, input.Latitude, position.Latitude)
	assert.Equal(t, input.Longitude, position.Longitude)
	assert.True(t, position.Active)
	assert.Equal(t, []error{nil}, fx.metrics.positions)
}

func TestTelemetryService_RecordPosition_Inactive(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	inactive := false
	input := &usecase.PositionInput{
		Device: "SDABC",
		Time:   time.Now(),
		Active: &inactive,
	}

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		CreatePosition(ctx, mock.MatchedBy(func(position *entity.DevicePosition) bool {
			return !position.Active
		})).
		Return(nil)

	position, err := fx.service.RecordPosition(ctx, input)
	require.NoError(t, err)
	assert.False(t, position.Active)
}

func TestTelemetryService_RecordPosition_Invalid(t *testing.T) {
	fx := createTestTelemetryService(t)

	tests := []struct {
		name  string
		input *usecase.PositionInput
		want  string
	}{
		{name: "nil input", input: nil, want: "position is required"},
		{name: "missing device", input: &usecase.PositionInput{Time: time.Now()}, want: "device is required"},
		{
			name:  "device too long",
			input: &usecase.PositionInput{Device: "SD-0123456789-0123456789-0123456789-0123456789-WXYZ", Time: time.Now()},
			want:  "device must be at most 50 characters",
		},
		{name: "missing time", input: &usecase.PositionInput{Device: "SDABC"}, want: "time is required"},
		{name: "latitude out of range", input: &usecase.PositionInput{Device: "SDABC", Time: time.Now(), Latitude: 91}, want: "lat must be at most 90"},
		{name: "longitude out of range", input: &usecase.PositionInput{Device: "SDABC", Time: time.Now(), Longitude: -180.5}, want: "lon must be at least -180"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.RecordPosition(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidPosition)
			assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.Len(t, fx.metrics.positions, len(tests))
}

func TestTelemetryService_RecordPosition_StoreError(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	input := &usecase.PositionInput{Device: "SDABC", Time: time.Now()}

	fx.expectExecute(ctx)
	fx.telemetryRepo.EXPECT().
		CreatePosition(ctx, mock.Anything).
		Return(errors.New("disk full"))

	position, err := fx.service.RecordPosition(ctx, input)

	assert.Nil(t, position)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create position")
}

func TestTelemetryService_LatestPositions(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()

	fx.expectReadOnly(ctx)
	fx.telemetryRepo.EXPECT().FindMostRecentPositionForEachDevice(ctx).Return(testPositions(), nil)

	positions, err := fx.service.LatestPositions(ctx)
	require.NoError(t, err)
	assert.Len(t, positions, 4)
}
