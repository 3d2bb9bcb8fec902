package usecase

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// RouteSegmentInput represents one segment of a route upsert request
type RouteSegmentInput struct {
	ID          uint   `json:"id,omitempty"` // Zero adds a new segment
	Order       int    `json:"order" validate:"min=1"`
	StartDevice string `json:"startDevice" validate:"required,max=50"`
	EndDevice   string `json:"endDevice" validate:"required,max=50"`
}

// RouteInput represents the input for creating or updating a route
type RouteInput struct {
	ID        uint                 `json:"id,omitempty"` // Zero creates a new route
	Reference string               `json:"reference" validate:"required,max=255"`
	Version   *int                 `json:"version,omitempty"` // When set, must match the stored version
	Segments  []*RouteSegmentInput `json:"segments" validate:"dive,required"`
}

// SegmentDistance is one entry of the path feature's "segments" property.
type SegmentDistance struct {
	Order           int   `json:"order"`
	SegmentDistance int64 `json:"segmentDistance"`
}

// RouteUsecase defines the interface for route management and route metrics
type RouteUsecase interface {
	// SaveRoute validates the input, reconciles it with the stored route and persists the result.
	SaveRoute(ctx context.Context, input *RouteInput) (*entity.Route, error)

	// FindAllRoutes lists every route with segments sorted by order.
	FindAllRoutes(ctx context.Context) ([]*entity.Route, error)

	// FindRouteByID returns one route with segments sorted by order.
	FindRouteByID(ctx context.Context, id uint) (*entity.Route, error)

	// ComputeRouteMetrics builds the GeoJSON waypoints and path of a route from
	// the latest position of each of its devices.
	ComputeRouteMetrics(ctx context.Context, id uint) (*geojson.FeatureCollection, error)
}
