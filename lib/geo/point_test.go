package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistanceTo(t *testing.T) {
	p1 := Point{0, 0}
	p2 := Point{100, 0}

	p := Point{50, 70}

	d := p.DistanceToLine(p1, p2)

	if d != 70.0 {
		t.Fatalf("Expected 70.0 and got %v", d)
	}
}

func TestDistanceToLineClampsToEndpoints(t *testing.T) {
	p1 := Point{0, 0}
	p2 := Point{100, 0}

	assert.Equal(t, 5.0, Point{-5, 0}.DistanceToLine(p1, p2))
	assert.Equal(t, 10.0, Point{110, 0}.DistanceToLine(p1, p2))
	// zero-length segment
	assert.Equal(t, 5.0, Point{3, 4}.DistanceToLine(p1, p1))
}

func TestAddVector(t *testing.T) {
	start := Point{1.5, 5.5}
	c := NewVector(-3.5, -2.5)
	p2 := start.AddVector(c)

	if p2.X != -2 || p2.Y != 3 {
		t.Fatalf("Expected resulting point to be (-2, 3), got %+v", p2)
	}
}

func TestVectorTo(t *testing.T) {
	p1 := Point{1.5, 5.5}
	p2 := Point{-2, 3}
	assert.Equal(t, NewVector(-3.5, -2.5), p1.VectorTo(p2))
	assert.Equal(t, NewVector(3.5, 2.5), p2.VectorTo(p1))
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, Point{}, Points(nil).Centroid())
	assert.Equal(t, Point{20, 10}, Points{{0, 0}, {40, 0}, {20, 30}}.Centroid())
}

func TestUnitNormalOfDegenerateSegment(t *testing.T) {
	s := NewSegment(Point{3, 3}, Point{3, 3})
	assert.True(t, s.UnitNormal().IsZero())
	assert.Equal(t, NewVector(0, 1), NewSegment(Point{0, 0}, Point{10, 0}).UnitNormal())
}
