package geo

import (
	"fmt"
)

type Segment struct {
	Start Point
	End   Point
}

func NewSegment(from, to Point) Segment {
	return Segment{from, to}
}

func (s Segment) ToString() string {
	return fmt.Sprintf("%v -> %v", s.Start.ToString(), s.End.ToString())
}

func (segment Segment) Length() float64 {
	return EuclideanDistance(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
}

func (segment Segment) ToVector() Vector {
	return NewVector(segment.End.X-segment.Start.X, segment.End.Y-segment.Start.Y)
}

// DistanceTo is the distance from p to the closest point of the segment.
func (segment Segment) DistanceTo(p Point) float64 {
	return p.DistanceToLine(segment.Start, segment.End)
}

// UnitNormal is the left-hand unit normal, zero for a degenerate segment.
func (segment Segment) UnitNormal() Vector {
	nx, ny := GetUnitNormalVector(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
	return NewVector(nx, ny)
}
