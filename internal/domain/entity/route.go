// Package entity contains the core business objects of the project.
package entity

import (
	"cmp"
	"slices"
	"time"
)

// Route is an ordered chain of device-to-device segments.
type Route struct {
	ID        uint            `json:"id"`        // Zero until the route store assigns one.
	Reference string          `json:"reference"` // Free-text label.
	Segments  []*RouteSegment `json:"segments"`  // Position in the slice carries no meaning; Order does.
	Version   int             `json:"version"`   // Optimistic concurrency stamp.
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// RouteSegment is one directed edge of a route.
type RouteSegment struct {
	ID          uint   `json:"id"` // Zero for a segment that has not been persisted yet.
	Order       int    `json:"order"`
	StartDevice string `json:"startDevice"`
	EndDevice   string `json:"endDevice"`
	Version     int    `json:"version"`
}

// IsNew reports whether the route has no persisted identity.
func (r *Route) IsNew() bool {
	return r.ID == 0
}

// Devices returns the distinct device identifiers referenced by the route's
// segments, in first-seen order.
func (r *Route) Devices() []string {
	if r == nil {
		return nil
	}

	return SegmentDevices(r.Segments)
}

// SortedSegments returns the segments ordered by Order ascending. The route's
// own slice is left untouched.
func (r *Route) SortedSegments() []*RouteSegment {
	if r == nil {
		return nil
	}

	return SortSegments(r.Segments)
}

// SegmentDevices collects the distinct start and end devices of segments.
func SegmentDevices(segments []*RouteSegment) []string {
	seen := make(map[string]struct{}, len(segments)*2)
	devices := make([]string, 0, len(segments)+1)

	for _, segment := range segments {
		if segment == nil {
			continue
		}
		for _, device := range [2]string{segment.StartDevice, segment.EndDevice} {
			if _, ok := seen[device]; ok {
				continue
			}
			seen[device] = struct{}{}
			devices = append(devices, device)
		}
	}

	return devices
}

// SortSegments returns a copy of segments sorted by Order, skipping nil entries.
func SortSegments(segments []*RouteSegment) []*RouteSegment {
	sorted := make([]*RouteSegment, 0, len(segments))
	for _, segment := range segments {
		if segment != nil {
			sorted = append(sorted, segment)
		}
	}

	slices.SortStableFunc(sorted, func(a, b *RouteSegment) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return sorted
}
