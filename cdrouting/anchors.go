package cdrouting

import (
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
)

const (
	// SIDE_LINE_GAP is the distance between parallel lines of alternate and chain notations.
	SIDE_LINE_GAP = 4.
	// ARROWHEAD_LENGTH is how far side lines stop short of the target.
	ARROWHEAD_LENGTH = 10.
)

// LabelPosition anchors the label at the middle of the path by length, moved
// by the relation's label offset.
func LabelPosition(r cdtarget.Relation) geo.Point {
	p := r.Waypoints.MidpointByLength()
	if r.LabelOffset != nil {
		p = p.Translate(*r.LabelOffset)
	}
	return p
}

// DiamondPosition is the junction point of an n-ary relation: its explicit
// position, or else the centroid of its activities. ok is false when none of
// the activities exist.
func DiamondPosition(d cdtarget.Diagram, r cdtarget.Relation) (p geo.Point, ok bool) {
	nodes := d.ActivityNodes(r)
	if len(nodes) == 0 {
		return geo.Point{}, false
	}
	if r.DiamondPos != nil {
		return *r.DiamondPos, true
	}
	centers := make(geo.Points, len(nodes))
	for i, n := range nodes {
		centers[i] = n.Center()
	}
	return centers.Centroid(), true
}

// NaryConnectors returns one line per existing activity, from its docking
// point toward the diamond to the diamond.
func NaryConnectors(d cdtarget.Diagram, r cdtarget.Relation) []geo.Route {
	diamond, ok := DiamondPosition(d, r)
	if !ok {
		return nil
	}
	var lines []geo.Route
	for _, n := range d.ActivityNodes(r) {
		lines = append(lines, geo.Route{n.DockingPoint(diamond), diamond})
	}
	return lines
}

// SideLines returns the parallel lines drawn next to the path of alternate
// and chain relations, trimmed so they end before the arrowhead.
func SideLines(r cdtarget.Relation) []geo.Route {
	count := r.Type.Notation().SideLineCount()
	if count == 0 || len(r.Waypoints) < 2 {
		return nil
	}
	var lines []geo.Route
	for k := 1; k <= count; k++ {
		for _, sign := range []float64{1, -1} {
			off := r.Waypoints.Offset(sign * float64(k) * SIDE_LINE_GAP)
			lines = append(lines, off.Trim(0, ARROWHEAD_LENGTH))
		}
	}
	return lines
}
