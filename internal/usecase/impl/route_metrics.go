package impl

import (
	"math"
	"slices"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/geo"
	"tracker/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Feature property names of the metrics output.
const (
	propOrder         = "order"
	propID            = "id"
	propReference     = "reference"
	propTotalDistance = "totalDistance"
	propSegments      = "segments"
)

// latestPositionsByDevice indexes positions by device and reports the
// requested devices that have none, sorted.
func latestPositionsByDevice(devices []string, positions []*entity.DevicePosition) (map[string]*entity.DevicePosition, []string) {
	byDevice := make(map[string]*entity.DevicePosition, len(positions))
	for _, position := range positions {
		if position != nil {
			byDevice[position.Device] = position
		}
	}

	var missing []string
	for _, device := range devices {
		if _, ok := byDevice[device]; !ok {
			missing = append(missing, device)
		}
	}
	slices.Sort(missing)

	return byDevice, missing
}

// assembleRouteMetrics walks the route's segments in order and emits one
// Point per waypoint followed by a single LineString describing the path.
// Every device the route references must be present in positions.
func assembleRouteMetrics(route *entity.Route, positions map[string]*entity.DevicePosition) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	segments := route.SortedSegments()
	if len(segments) == 0 {
		return fc, nil
	}

	first, err := positionOf(positions, segments[0].StartDevice)
	if err != nil {
		return nil, err
	}

	path := make(orb.LineString, 0, len(segments)+1)
	path = append(path, first.Point())
	fc.Append(waypoint(first.Point(), 1))

	distances := make([]usecase.SegmentDistance, 0, len(segments))
	var total int64

	for i, segment := range segments {
		start, err := positionOf(positions, segment.StartDevice)
		if err != nil {
			return nil, err
		}
		end, err := positionOf(positions, segment.EndDevice)
		if err != nil {
			return nil, err
		}

		meters, err := geo.Haversine(start.Point(), end.Point())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to measure segment %d", segment.Order)
		}

		rounded := int64(math.Round(meters))
		total += rounded
		distances = append(distances, usecase.SegmentDistance{
			Order:           segment.Order,
			SegmentDistance: rounded,
		})

		path = append(path, end.Point())
		fc.Append(waypoint(end.Point(), i+2))
	}

	line := geojson.NewFeature(path)
	line.Properties[propID] = route.ID
	line.Properties[propReference] = route.Reference
	line.Properties[propTotalDistance] = total
	line.Properties[propSegments] = distances
	fc.Append(line)

	return fc, nil
}

func waypoint(point orb.Point, order int) *geojson.Feature {
	feature := geojson.NewFeature(point)
	feature.Properties[propOrder] = order

	return feature
}

func positionOf(positions map[string]*entity.DevicePosition, device string) (*entity.DevicePosition, error) {
	position, ok := positions[device]
	if !ok {
		return nil, domainerrors.ErrTelemetryNotFound.WithDetails(device)
	}

	return position, nil
}
