package geo

import (
	"fmt"
	"math"
	"strings"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p1 Point) Equals(p2 Point) bool {
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

// ApproxEquals reports whether p1 and p2 are within e of each other on both axes.
func (p1 Point) ApproxEquals(p2 Point, e float64) bool {
	return PrecisionCompare(p1.X, p2.X, e) == 0 && PrecisionCompare(p1.Y, p2.Y, e) == 0
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Translate moves p by the components of delta.
func (p Point) Translate(delta Point) Point {
	return p.Add(delta.X, delta.Y)
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p1 Point) DistanceTo(p2 Point) float64 {
	return EuclideanDistance(p1.X, p1.Y, p2.X, p2.Y)
}

// https://stackoverflow.com/questions/849211/shortest-distance-between-a-point-and-a-line-segment
func (p Point) DistanceToLine(p1, p2 Point) float64 {
	return p.DistanceTo(p.ProjectOnSegment(p1, p2))
}

// ProjectOnSegment returns the point of segment p1-p2 closest to p.
// A zero-length segment projects everything onto p1.
func (p Point) ProjectOnSegment(p1, p2 Point) Point {
	a := p.X - p1.X
	b := p.Y - p1.Y
	c := p2.X - p1.X
	d := p2.Y - p1.Y

	dot := (a * c) + (b * d)
	lenSq := (c * c) + (d * d)

	param := -1.0
	if lenSq != 0 {
		param = dot / lenSq
	}

	if param < 0.0 {
		return p1
	} else if param > 1.0 {
		return p2
	}
	return Point{X: p1.X + (param * c), Y: p1.Y + (param * d)}
}

// Moves the given point by Vector
func (start Point) AddVector(v Vector) Point {
	return start.ToVector().Add(v).ToPoint()
}

// Creates a Vector of the size between start and endpoint, pointing to endpoint
func (start Point) VectorTo(endpoint Point) Vector {
	return endpoint.ToVector().Minus(start.ToVector())
}

// Creates a Vector pointing to point
func (endpoint Point) ToVector() Vector {
	return []float64{endpoint.X, endpoint.Y}
}

// point t% of the way between a and b
func (a Point) Interpolate(b Point, t float64) Point {
	return NewPoint(
		a.X*(1.0-t)+b.X*t,
		a.Y*(1.0-t)+b.Y*t,
	)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) ToString() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

type Points []Point

// Centroid is the arithmetic mean of ps. The zero Point is returned for no points.
func (ps Points) Centroid() Point {
	if len(ps) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range ps {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(ps))
	return Point{X: sx / n, Y: sy / n}
}

func (points Points) ToString() string {
	strs := make([]string, 0, len(points))
	for _, p := range points {
		strs = append(strs, p.ToString())
	}
	return strings.Join(strs, ", ")
}
