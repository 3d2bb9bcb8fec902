package impl

import (
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"
)

// reconcileRoute merges a submission into the persisted route.
//
// With no existing route every submitted segment is new. Otherwise segments
// without an ID are appended, segments with a known ID are updated and keep
// their identity, and persisted segments the submission omits are left out
// of the result so the store deletes them. A submitted ID that is not on the
// route, or an ID listed twice, fails the whole reconciliation before anything
// is changed. The result is a new route holding copies of the persisted
// segments; existing is never modified.
func reconcileRoute(input *usecase.RouteInput, existing *entity.Route) (*entity.Route, error) {
	if existing == nil {
		route := &entity.Route{
			Reference: input.Reference,
			Segments:  make([]*entity.RouteSegment, 0, len(input.Segments)),
		}
		for _, in := range input.Segments {
			if in == nil {
				continue
			}
			route.Segments = append(route.Segments, newSegment(in))
		}

		return route, nil
	}

	persisted := make(map[uint]*entity.RouteSegment, len(existing.Segments))
	for _, segment := range existing.Segments {
		if segment != nil {
			persisted[segment.ID] = segment
		}
	}

	seen := make(map[uint]struct{}, len(input.Segments))
	for _, in := range input.Segments {
		if in == nil || in.ID == 0 {
			continue
		}
		if _, ok := persisted[in.ID]; !ok {
			return nil, domainerrors.ErrSegmentNotOnRoute.WithDetailsf("route %d has no segment %d", existing.ID, in.ID)
		}
		if _, ok := seen[in.ID]; ok {
			return nil, domainerrors.ErrDuplicateSegmentID.WithDetailsf("route %d lists segment %d more than once", existing.ID, in.ID)
		}
		seen[in.ID] = struct{}{}
	}

	route := &entity.Route{
		ID:        existing.ID,
		Reference: input.Reference,
		Segments:  make([]*entity.RouteSegment, 0, len(input.Segments)),
		Version:   existing.Version,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: existing.UpdatedAt,
	}

	for _, in := range input.Segments {
		if in == nil {
			continue
		}
		if in.ID == 0 {
			route.Segments = append(route.Segments, newSegment(in))

			continue
		}

		updated := *persisted[in.ID]
		route.Segments = append(route.Segments, &updated)
		updated.Order = in.Order
		updated.StartDevice = in.StartDevice
		updated.EndDevice = in.EndDevice
	}

	return route, nil
}

// removedSegmentIDs returns the IDs of persisted segments that reconciled no
// longer contains.
func removedSegmentIDs(existing, reconciled *entity.Route) []uint {
	if existing == nil {
		return nil
	}

	kept := make(map[uint]struct{}, len(reconciled.Segments))
	for _, segment := range reconciled.Segments {
		if segment.ID != 0 {
			kept[segment.ID] = struct{}{}
		}
	}

	var removed []uint
	for _, segment := range existing.Segments {
		if segment == nil {
			continue
		}
		if _, ok := kept[segment.ID]; !ok {
			removed = append(removed, segment.ID)
		}
	}

	return removed
}

func newSegment(in *usecase.RouteSegmentInput) *entity.RouteSegment {
	return &entity.RouteSegment{
		Order:       in.Order,
		StartDevice: in.StartDevice,
		EndDevice:   in.EndDevice,
	}
}

// inputSegments converts submitted segments to entities for validation.
func inputSegments(segments []*usecase.RouteSegmentInput) []*entity.RouteSegment {
	converted := make([]*entity.RouteSegment, 0, len(segments))
	for _, in := range segments {
		if in == nil {
			continue
		}
		segment := newSegment(in)
		segment.ID = in.ID
		converted = append(converted, segment)
	}

	return converted
}
