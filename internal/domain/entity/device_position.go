package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// DevicePosition is one telemetry record reported by a tracker device.
type DevicePosition struct {
	ID        uint      `json:"id"`
	Device    string    `json:"device"`    // Device identifier, 1-50 characters.
	Time      time.Time `json:"time"`      // When the device took the fix.
	Latitude  float64   `json:"latitude"`  // [-90, 90]
	Longitude float64   `json:"longitude"` // [-180, 180]
	Active    bool      `json:"active"`    // Inactive records are ignored by "most recent" lookups.
	CreatedAt time.Time `json:"createdAt"`
}

// Point returns the position in GeoJSON axis order, [longitude, latitude].
func (p *DevicePosition) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}
