package repository

import (
	"context"

	"tracker/internal/domain/entity"
)

// TelemetryRepository defines the interface for device telemetry storage.
type TelemetryRepository interface {
	// CreatePosition persists a new telemetry record.
	CreatePosition(ctx context.Context, position *entity.DevicePosition) error

	// FindExistingDevices returns the subset of devices that have at least one
	// telemetry record, in any order.
	FindExistingDevices(ctx context.Context, devices []string) ([]string, error)

	// FindMostRecentPositions returns, for each requested device with active
	// records, its most recent active record. Devices without one are absent.
	FindMostRecentPositions(ctx context.Context, devices []string) ([]*entity.DevicePosition, error)

	// FindMostRecentPositionForEachDevice returns the most recent active record
	// of every known device, ordered by device.
	FindMostRecentPositionForEachDevice(ctx context.Context) ([]*entity.DevicePosition, error)
}
