package postgres

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Latest active record per device. Ties on record_time go to the row stored last.
const (
	latestPositionsSQL = `SELECT DISTINCT ON (device) *
FROM device_telemetry
WHERE active = TRUE AND device IN ?
ORDER BY device, record_time DESC, created_at DESC, id DESC`

	latestPositionPerDeviceSQL = `SELECT DISTINCT ON (device) *
FROM device_telemetry
WHERE active = TRUE
ORDER BY device, record_time DESC, created_at DESC, id DESC`
)

// telemetryRepository implements the repository.TelemetryRepository interface.
type telemetryRepository struct {
	db *gorm.DB
}

// NewTelemetryRepository is the constructor for telemetryRepository.
func NewTelemetryRepository(db *gorm.DB) repository.TelemetryRepository {
	return &telemetryRepository{
		db: db,
	}
}

// CreatePosition persists a new telemetry record.
func (repo *telemetryRepository) CreatePosition(ctx context.Context, position *entity.DevicePosition) error {
	positionM := fromDevicePositionDomain(position)

	if err := repo.db.WithContext(ctx).Create(positionM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPosition.WithDetails("missing required telemetry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device telemetry")
	}

	position.ID = positionM.ID
	position.CreatedAt = positionM.CreatedAt

	return nil
}

// FindExistingDevices returns the subset of devices that have telemetry.
func (repo *telemetryRepository) FindExistingDevices(ctx context.Context, devices []string) ([]string, error) {
	if len(devices) == 0 {
		return nil, nil
	}

	var found []string
	if err := existingDevicesQuery(repo.db.WithContext(ctx), devices).
		Pluck("device", &found).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find existing devices")
	}

	return found, nil
}

// FindMostRecentPositions returns the most recent active record of each requested device.
func (repo *telemetryRepository) FindMostRecentPositions(ctx context.Context, devices []string) ([]*entity.DevicePosition, error) {
	if len(devices) == 0 {
		return nil, nil
	}

	var positionModels []*model.DeviceTelemetryModel
	if err := latestPositionsQuery(repo.db.WithContext(ctx), devices).
		Scan(&positionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find most recent positions")
	}

	return toDevicePositionsDomain(positionModels), nil
}

// FindMostRecentPositionForEachDevice returns the most recent active record of every device.
func (repo *telemetryRepository) FindMostRecentPositionForEachDevice(ctx context.Context) ([]*entity.DevicePosition, error) {
	var positionModels []*model.DeviceTelemetryModel
	if err := latestPositionsQuery(repo.db.WithContext(ctx), nil).
		Scan(&positionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find most recent position for each device")
	}

	return toDevicePositionsDomain(positionModels), nil
}

func existingDevicesQuery(db *gorm.DB, devices []string) *gorm.DB {
	return db.Model(&model.DeviceTelemetryModel{}).
		Distinct("device").
		Where("device IN ?", devices)
}

// latestPositionsQuery selects the latest active record per device, limited
// to devices when it is non-nil.
func latestPositionsQuery(db *gorm.DB, devices []string) *gorm.DB {
	if devices == nil {
		return db.Raw(latestPositionPerDeviceSQL)
	}

	return db.Raw(latestPositionsSQL, devices)
}

// --- Mapper Functions ---

func toDevicePositionsDomain(data []*model.DeviceTelemetryModel) []*entity.DevicePosition {
	positions := make([]*entity.DevicePosition, 0, len(data))
	for _, positionM := range data {
		positions = append(positions, toDevicePositionDomain(positionM))
	}

	return positions
}

// toDevicePositionDomain converts a GORM DeviceTelemetryModel to a domain DevicePosition entity.
func toDevicePositionDomain(data *model.DeviceTelemetryModel) *entity.DevicePosition {
	if data == nil {
		return nil
	}

	return &entity.DevicePosition{
		ID:        data.ID,
		Device:    data.Device,
		Time:      data.RecordTime,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

// fromDevicePositionDomain converts a domain DevicePosition entity to a GORM DeviceTelemetryModel.
func fromDevicePositionDomain(data *entity.DevicePosition) *model.DeviceTelemetryModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTelemetryModel{
		ID:         data.ID,
		Device:     data.Device,
		RecordTime: data.Time,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Active:     data.Active,
		CreatedAt:  data.CreatedAt,
	}
}
