package usecase

import (
	"context"
	"time"

	"tracker/internal/domain/entity"
)

// PositionInput represents one position report from a device
type PositionInput struct {
	Device    string    `json:"device" validate:"required,max=50"`
	Time      time.Time `json:"time" validate:"required"`
	Latitude  float64   `json:"lat" validate:"min=-90,max=90"`
	Longitude float64   `json:"lon" validate:"min=-180,max=180"`
	Active    *bool     `json:"active,omitempty"` // Defaults to true
}

// TelemetryUsecase defines the interface for device telemetry use cases
type TelemetryUsecase interface {
	// RecordPosition validates and stores a position report
	RecordPosition(ctx context.Context, input *PositionInput) (*entity.DevicePosition, error)

	// LatestPositions returns the most recent active position of every device, ordered by device
	LatestPositions(ctx context.Context) ([]*entity.DevicePosition, error)
}
