// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{
		db: db,
	}
}

// FindRouteByID retrieves a route and its segments ordered by segment order.
func (repo *routeRepository) FindRouteByID(ctx context.Context, id uint) (*entity.Route, error) {
	var routeM model.RouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Segments", orderSegments).
		Where("id = ?", id).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by ID")
	}

	return toRouteDomain(&routeM), nil
}

// FindAllRoutes retrieves every route with its segments, ordered by ID.
func (repo *routeRepository) FindAllRoutes(ctx context.Context) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Segments", orderSegments).
		Order("id ASC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find routes")
	}

	routes := make([]*entity.Route, 0, len(routeModels))
	for _, routeM := range routeModels {
		routes = append(routes, toRouteDomain(routeM))
	}

	return routes, nil
}

// SaveRoute creates or updates the route and reconciles its segment rows.
// Callers are expected to run it inside a transaction.
func (repo *routeRepository) SaveRoute(ctx context.Context, route *entity.Route) error {
	if route.IsNew() {
		return repo.createRoute(ctx, route)
	}

	return repo.updateRoute(ctx, route)
}

func (repo *routeRepository) createRoute(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)

	// GORM inserts the has-many Segments together with the route
	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		return translateWriteError(err, "failed to create route")
	}

	// Update the entity with generated values
	route.ID = routeM.ID
	route.Version = routeM.Version
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt
	for i, segmentM := range routeM.Segments {
		route.Segments[i].ID = segmentM.ID
		route.Segments[i].Version = segmentM.Version
	}

	return nil
}

func (repo *routeRepository) updateRoute(ctx context.Context, route *entity.Route) error {
	db := repo.db.WithContext(ctx)
	now := time.Now()

	result := routeVersionUpdate(db, route, now)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update route")
	}
	if result.RowsAffected == 0 {
		return repo.missingOrStale(ctx, route.ID)
	}
	route.Version++
	route.UpdatedAt = now

	if err := staleSegmentsDelete(db, route.ID, keptSegmentIDs(route)).Error; err != nil {
		return errors.Wrap(err, "failed to delete route segments")
	}

	for _, segment := range route.Segments {
		if segment.ID == 0 {
			segmentM := fromRouteSegmentDomain(route.ID, segment)
			if err := db.Create(segmentM).Error; err != nil {
				return translateWriteError(err, "failed to create route segment")
			}
			segment.ID = segmentM.ID
			segment.Version = segmentM.Version

			continue
		}

		result := segmentVersionUpdate(db, route.ID, segment, now)
		if result.Error != nil {
			return translateWriteError(result.Error, "failed to update route segment")
		}
		if result.RowsAffected == 0 {
			return repository.ErrRouteVersionConflict
		}
		segment.Version++
	}

	return nil
}

// routeVersionUpdate bumps the route version only when the stored version
// still matches the one the route was read with.
func routeVersionUpdate(db *gorm.DB, route *entity.Route, now time.Time) *gorm.DB {
	return db.Model(&model.RouteModel{}).
		Where("id = ? AND version = ?", route.ID, route.Version).
		Updates(map[string]any{
			"reference":  route.Reference,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
}

func segmentVersionUpdate(db *gorm.DB, routeID uint, segment *entity.RouteSegment, now time.Time) *gorm.DB {
	return db.Model(&model.RouteSegmentModel{}).
		Where("id = ? AND route_id = ? AND version = ?", segment.ID, routeID, segment.Version).
		Updates(map[string]any{
			"segment_order": segment.Order,
			"start_device":  segment.StartDevice,
			"end_device":    segment.EndDevice,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    now,
		})
}

// staleSegmentsDelete removes the route's segments outside keep. An empty keep
// clears every segment of the route.
func staleSegmentsDelete(db *gorm.DB, routeID uint, keep []uint) *gorm.DB {
	remove := db.Where("route_id = ?", routeID)
	if len(keep) > 0 {
		remove = remove.Where("id NOT IN ?", keep)
	}

	return remove.Delete(&model.RouteSegmentModel{})
}

func keptSegmentIDs(route *entity.Route) []uint {
	keep := make([]uint, 0, len(route.Segments))
	for _, segment := range route.Segments {
		if segment.ID != 0 {
			keep = append(keep, segment.ID)
		}
	}

	return keep
}

// missingOrStale tells a deleted route apart from a concurrent update after a
// version-guarded write matched no rows.
func (repo *routeRepository) missingOrStale(ctx context.Context, id uint) error {
	var count int64
	if err := routeCountQuery(repo.db.WithContext(ctx), id, &count).Error; err != nil {
		return errors.Wrap(err, "failed to check route existence")
	}

	return unmatchedWriteError(count)
}

func routeCountQuery(db *gorm.DB, id uint, count *int64) *gorm.DB {
	return db.Model(&model.RouteModel{}).
		Where("id = ?", id).
		Count(count)
}

func unmatchedWriteError(count int64) error {
	if count == 0 {
		return repository.ErrRouteNotFound
	}

	return repository.ErrRouteVersionConflict
}

func orderSegments(db *gorm.DB) *gorm.DB {
	return db.Order("segment_order ASC")
}

// translateWriteError converts PostgreSQL constraint failures to domain errors.
func translateWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return repository.ErrRouteNotFound
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrRouteValidationFailed.WithDetails(details + ": missing or invalid segment data")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

// toRouteDomain converts a GORM RouteModel to a domain Route entity.
func toRouteDomain(data *model.RouteModel) *entity.Route {
	if data == nil {
		return nil
	}

	segments := make([]*entity.RouteSegment, 0, len(data.Segments))
	for _, segmentM := range data.Segments {
		segments = append(segments, toRouteSegmentDomain(segmentM))
	}

	return &entity.Route{
		ID:        data.ID,
		Reference: data.Reference,
		Segments:  segments,
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRouteDomain converts a domain Route entity to a GORM RouteModel.
func fromRouteDomain(data *entity.Route) *model.RouteModel {
	if data == nil {
		return nil
	}

	segments := make([]*model.RouteSegmentModel, 0, len(data.Segments))
	for _, segment := range data.Segments {
		segments = append(segments, fromRouteSegmentDomain(data.ID, segment))
	}

	return &model.RouteModel{
		ID:        data.ID,
		Reference: data.Reference,
		Version:   data.Version,
		Segments:  segments,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toRouteSegmentDomain(data *model.RouteSegmentModel) *entity.RouteSegment {
	return &entity.RouteSegment{
		ID:          data.ID,
		Order:       data.Order,
		StartDevice: data.StartDevice,
		EndDevice:   data.EndDevice,
		Version:     data.Version,
	}
}

func fromRouteSegmentDomain(routeID uint, data *entity.RouteSegment) *model.RouteSegmentModel {
	return &model.RouteSegmentModel{
		ID:          data.ID,
		RouteID:     routeID,
		Order:       data.Order,
		StartDevice: data.StartDevice,
		EndDevice:   data.EndDevice,
		Version:     data.Version,
	}
}
