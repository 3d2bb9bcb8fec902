// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for route persistence.
var (
	// ErrRouteNotFound is returned when no route has the requested ID.
	ErrRouteNotFound = errors.New("route not found")
	// ErrRouteVersionConflict is returned when the stored version of a route or
	// one of its segments no longer matches the version being written.
	ErrRouteVersionConflict = errors.New("route version conflict")
)

// RouteRepository defines the interface for route-related database operations.
type RouteRepository interface {
	// FindRouteByID retrieves a route and all of its segments.
	FindRouteByID(ctx context.Context, id uint) (*entity.Route, error)

	// FindAllRoutes retrieves every route with its segments, ordered by ID.
	FindAllRoutes(ctx context.Context) ([]*entity.Route, error)

	// SaveRoute creates the route when it has no ID, otherwise updates it.
	// Segments with ID 0 are inserted, known segments updated, and persisted
	// segments missing from route.Segments are deleted. Generated IDs and
	// bumped versions are written back into route.
	SaveRoute(ctx context.Context, route *entity.Route) error
}
