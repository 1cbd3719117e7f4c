package geo

import (
	"fmt"
	"math"
)

type Box struct {
	TopLeft Point   `json:"topLeft"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

func NewBox(tl Point, width, height float64) Box {
	return Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

// NewBoxFromCenter returns the width x height box centered on c.
func NewBoxFromCenter(c Point, width, height float64) Box {
	return NewBox(NewPoint(c.X-width/2, c.Y-height/2), width, height)
}

// NewBoxFromCorners returns the box spanned by two opposite corners given in any order.
func NewBoxFromCorners(a, b Point) Box {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

func (b Box) Center() Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

func (b Box) BottomRight() Point {
	return NewPoint(b.TopLeft.X+b.Width, b.TopLeft.Y+b.Height)
}

// ContainsPoint is inclusive of the boundary.
func (b Box) ContainsPoint(p Point) bool {
	br := b.BottomRight()
	return p.X >= b.TopLeft.X && p.X <= br.X && p.Y >= b.TopLeft.Y && p.Y <= br.Y
}

// Contains reports whether other lies entirely within b.
func (b Box) Contains(other Box) bool {
	return b.ContainsPoint(other.TopLeft) && b.ContainsPoint(other.BottomRight())
}

// Union returns the smallest box that covers both b and other.
func (b Box) Union(other Box) Box {
	br1, br2 := b.BottomRight(), other.BottomRight()
	tl := NewPoint(math.Min(b.TopLeft.X, other.TopLeft.X), math.Min(b.TopLeft.Y, other.TopLeft.Y))
	br := NewPoint(math.Max(br1.X, br2.X), math.Max(br1.Y, br2.Y))
	return NewBox(tl, br.X-tl.X, br.Y-tl.Y)
}

// IntersectRectangleRay returns the point where the ray from center toward p
// crosses the boundary of the width x height rectangle centered on center.
//
// The ray is scaled by t = min(hw/|dx|, hh/|dy|), which lands exactly on the
// first edge hit. A p equal to center has no direction, so the midpoint of the
// right edge is returned.
func IntersectRectangleRay(center Point, width, height float64, p Point) Point {
	dx := p.X - center.X
	dy := p.Y - center.Y
	hw := width / 2
	hh := height / 2
	if dx == 0 && dy == 0 {
		return NewPoint(center.X+hw, center.Y)
	}
	t := math.Min(safeRatio(hw, dx), safeRatio(hh, dy))
	return NewPoint(center.X+t*dx, center.Y+t*dy)
}

func (b Box) ToString() string {
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
