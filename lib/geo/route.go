package geo

import (
	"math"
)

// Route is a polyline given by its vertices in drawing order.
type Route []Point

func (route Route) Copy() Route {
	if route == nil {
		return nil
	}
	out := make(Route, len(route))
	copy(out, route)
	return out
}

func (route Route) Length() float64 {
	l := 0.
	for i := 0; i < len(route)-1; i++ {
		l += EuclideanDistance(
			route[i].X, route[i].Y,
			route[i+1].X, route[i+1].Y,
		)
	}
	return l
}

// return the point at _distance_ along the route, and the index of the segment it's on
func (route Route) GetPointAtDistance(distance float64) (Point, int) {
	remaining := distance
	for i := 0; i < len(route)-1; i++ {
		curr, next := route[i], route[i+1]
		length := EuclideanDistance(curr.X, curr.Y, next.X, next.Y)

		if remaining <= length {
			if length == 0 {
				return curr, i
			}
			t := remaining / length
			// point t% of the way between curr and next
			return curr.Interpolate(next, t), i
		}
		remaining -= length
	}

	return Point{}, -1
}

// MidpointByLength is the point halfway along the route measured by arc length,
// which differs from the middle vertex whenever segments have unequal lengths.
func (route Route) MidpointByLength() Point {
	switch len(route) {
	case 0:
		return Point{}
	case 1:
		return route[0]
	}
	total := route.Length()
	if total == 0 {
		return route[0]
	}
	p, i := route.GetPointAtDistance(total / 2)
	if i < 0 {
		return route[len(route)-1]
	}
	return p
}

// Offset shifts every vertex perpendicular to the route by distance, positive
// toward the left-hand side. Interior vertices move along the bisector of the
// two adjacent unit normals. When those cancel out (the route doubles back on
// itself) the normal of the summed segment deltas is used instead.
func (route Route) Offset(distance float64) Route {
	n := len(route)
	if n < 2 {
		return route.Copy()
	}
	out := make(Route, n)
	for i := range route {
		var normal Vector
		switch i {
		case 0:
			normal = NewSegment(route[0], route[1]).UnitNormal()
		case n - 1:
			normal = NewSegment(route[n-2], route[n-1]).UnitNormal()
		default:
			n1 := NewSegment(route[i-1], route[i]).UnitNormal()
			n2 := NewSegment(route[i], route[i+1]).UnitNormal()
			normal = n1.Add(n2)
			if normal.IsZero() {
				d := route[i-1].VectorTo(route[i]).Add(route[i].VectorTo(route[i+1]))
				nx, ny := GetUnitNormalVector(0, 0, d[0], d[1])
				normal = NewVector(nx, ny)
				if normal.IsZero() {
					normal = n1
				}
			}
			normal = normal.Unit()
		}
		out[i] = route[i].AddVector(normal.Multiply(distance))
	}
	return out
}

// Trim shortens the route by start from its first vertex and by end from its
// last, both measured along the route. Routes shorter than twice the combined
// trim are returned unchanged.
func (route Route) Trim(start, end float64) Route {
	start = math.Max(start, 0)
	end = math.Max(end, 0)
	total := route.Length()
	if len(route) < 2 || total < 2*(start+end) {
		return route.Copy()
	}
	startPt, _ := route.GetPointAtDistance(start)
	endPt, _ := route.GetPointAtDistance(total - end)

	out := Route{startPt}
	cum := 0.
	for i := 1; i < len(route)-1; i++ {
		cum += route[i-1].DistanceTo(route[i])
		if cum > start && cum < total-end {
			out = append(out, route[i])
		}
	}
	return append(out, endPt)
}

// Smooth applies Chaikin corner cutting. Both endpoints stay where they are so
// a smoothed relation remains docked.
func (route Route) Smooth(iterations int) Route {
	out := route.Copy()
	for it := 0; it < iterations && len(out) > 2; it++ {
		next := Route{out[0]}
		for i := 0; i < len(out)-1; i++ {
			if i > 0 {
				next = append(next, out[i].Interpolate(out[i+1], 0.25))
			}
			if i < len(out)-2 {
				next = append(next, out[i].Interpolate(out[i+1], 0.75))
			}
		}
		out = append(next, out[len(out)-1])
	}
	return out
}

// ClosestSegment returns the index i of the segment route[i]-route[i+1]
// nearest to p and the distance to it. The index is -1 for routes with fewer
// than two points.
func (route Route) ClosestSegment(p Point) (int, float64) {
	idx := -1
	best := math.Inf(1)
	for i := 0; i < len(route)-1; i++ {
		d := p.DistanceToLine(route[i], route[i+1])
		if d < best {
			best = d
			idx = i
		}
	}
	return idx, best
}

func (route Route) Translate(delta Point) Route {
	out := make(Route, len(route))
	for i, p := range route {
		out[i] = p.Translate(delta)
	}
	return out
}

// GetBoundingBox returns the box around every vertex. ok is false for an empty route.
func (route Route) GetBoundingBox() (b Box, ok bool) {
	if len(route) == 0 {
		return Box{}, false
	}
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	for _, p := range route {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY), true
}
