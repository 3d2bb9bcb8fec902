// Package geo holds the great-circle math used for route distances.
package geo

import (
	"math"

	domainerrors "tracker/internal/domain/errors"

	"github.com/paulmach/orb"
)

// MeanEarthRadius is the IUGG mean radius of the Earth in meters.
const MeanEarthRadius = 6371008.7714

// Haversine returns the great-circle distance in meters between two points
// given in GeoJSON order, [longitude, latitude]. The result is not rounded.
func Haversine(start, end orb.Point) (float64, error) {
	if !isFinite(start) || !isFinite(end) {
		return 0, domainerrors.ErrInvalidCoordinates.WithDetailsf("got %v and %v", start, end)
	}

	return centralAngle(start, end) * MeanEarthRadius, nil
}

// HaversineCoordinates is Haversine over raw GeoJSON coordinate pairs. Each
// pair must hold exactly two values.
func HaversineCoordinates(start, end []float64) (float64, error) {
	if len(start) != 2 || len(end) != 2 {
		return 0, domainerrors.ErrInvalidCoordinates.WithDetailsf("got %v and %v", start, end)
	}

	return Haversine(orb.Point{start[0], start[1]}, orb.Point{end[0], end[1]})
}

// centralAngle is 2·asin(√a) with a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2).
func centralAngle(start, end orb.Point) float64 {
	startLat := deg2rad(start.Lat())
	endLat := deg2rad(end.Lat())
	deltaLat := endLat - startLat
	deltaLon := deg2rad(end.Lon() - start.Lon())

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)
	a := sinLat*sinLat + math.Cos(startLat)*math.Cos(endLat)*sinLon*sinLon

	// rounding can push a a hair past 1 for antipodal points
	return 2 * math.Asin(math.Sqrt(math.Min(a, 1)))
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func isFinite(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
