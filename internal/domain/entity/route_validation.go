package entity

import "fmt"

// ValidateSegments checks that segments form one continuous chain ordered
// 1, 2, 3, ... It does not stop at the first problem: every violation found
// is returned, in detection order. A nil or empty list is valid.
func ValidateSegments(segments []*RouteSegment) []string {
	sorted := SortSegments(segments)
	if len(sorted) == 0 {
		return nil
	}

	var violations []string

	if sorted[0].Order != 1 {
		violations = append(violations, "Route must start with a segment of order 1")
	}

	for i := 0; i < len(sorted)-1; i++ {
		current, next := sorted[i], sorted[i+1]

		if current.EndDevice != next.StartDevice {
			violations = append(violations, fmt.Sprintf(
				"Device mismatch: segment %d ends at [%s] but segment %d starts at [%s]",
				current.Order, current.EndDevice, next.Order, next.StartDevice,
			))
		}

		if next.Order != current.Order+1 {
			violations = append(violations, fmt.Sprintf(
				"Sequence error: expected segment order %d but found %d",
				current.Order+1, next.Order,
			))
		}
	}

	for _, segment := range sorted {
		if segment.StartDevice == segment.EndDevice {
			violations = append(violations, fmt.Sprintf(
				"Segment %d start and end devices must differ, both are [%s]",
				segment.Order, segment.StartDevice,
			))
		}
	}

	return violations
}
