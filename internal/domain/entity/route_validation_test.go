package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(order int, start, end string) *RouteSegment {
	return &RouteSegment{Order: order, StartDevice: start, EndDevice: end}
}

func TestValidateSegments_Valid(t *testing.T) {
	tests := []struct {
		name     string
		segments []*RouteSegment
	}{
		{name: "nil", segments: nil},
		{name: "empty", segments: []*RouteSegment{}},
		{name: "single segment", segments: []*RouteSegment{seg(1, "A", "B")}},
		{name: "chain", segments: []*RouteSegment{seg(1, "A", "B"), seg(2, "B", "C"), seg(3, "C", "D")}},
		{name: "unsorted chain", segments: []*RouteSegment{seg(3, "C", "D"), seg(1, "A", "B"), seg(2, "B", "C")}},
		{name: "loop back to the first device", segments: []*RouteSegment{seg(1, "A", "B"), seg(2, "B", "A")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ValidateSegments(tt.segments))
		})
	}
}

func TestValidateSegments_MustStartAtOrderOne(t *testing.T) {
	violations := ValidateSegments([]*RouteSegment{seg(2, "A", "B")})

	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "order 1")
}

func TestValidateSegments_DeviceMismatch(t *testing.T) {
	violations := ValidateSegments([]*RouteSegment{seg(1, "A", "B"), seg(2, "C", "D")})

	require.Len(t, violations, 1)
	assert.Equal(t, "Device mismatch: segment 1 ends at [B] but segment 2 starts at [C]", violations[0])
}

func TestValidateSegments_SequenceGap(t *testing.T) {
	violations := ValidateSegments([]*RouteSegment{seg(1, "A", "B"), seg(3, "B", "C")})

	require.Len(t, violations, 1)
	assert.Equal(t, "Sequence error: expected segment order 2 but found 3", violations[0])
}

func TestValidateSegments_SameStartAndEnd(t *testing.T) {
	violations := ValidateSegments([]*RouteSegment{seg(1, "A", "A")})

	require.Len(t, violations, 1)
	assert.Equal(t, "Segment 1 start and end devices must differ, both are [A]", violations[0])
}

func TestValidateSegments_DuplicateOrder(t *testing.T) {
	violations := ValidateSegments([]*RouteSegment{seg(1, "A", "B"), seg(1, "B", "C")})

	require.Len(t, violations, 1)
	assert.Equal(t, "Sequence error: expected segment order 2 but found 1", violations[0])
}

func TestValidateSegments_ReportsEverything(t *testing.T) {
	violations := ValidateSegments([]*RouteSegment{
		seg(2, "A", "B"),
		seg(4, "C", "C"),
	})

	assert.Equal(t, []string{
		"Route must start with a segment of order 1",
		"Device mismatch: segment 2 ends at [B] but segment 4 starts at [C]",
		"Sequence error: expected segment order 3 but found 4",
		"Segment 4 start and end devices must differ, both are [C]",
	}, violations)
}

func TestValidateSegments_SkipsNilEntries(t *testing.T) {
	assert.Empty(t, ValidateSegments([]*RouteSegment{nil, seg(1, "A", "B"), nil}))
}
