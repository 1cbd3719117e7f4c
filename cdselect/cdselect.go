// Package cdselect implements lasso selection, selection bounding boxes and
// dragging of heterogeneous selections.
package cdselect

import (
	"github.com/piliotov/BDM-sub000/cdrouting"
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
)

// InBox returns everything the lasso spanned by corners a and b covers. Nodes
// must lie entirely inside. Interior waypoints and diamonds are points and
// only need to be inside themselves.
func InBox(d cdtarget.Diagram, a, b geo.Point) cdtarget.MultiSelection {
	lasso := geo.NewBoxFromCorners(a, b)
	ms := cdtarget.MultiSelection{
		Nodes:          []cdtarget.Node{},
		RelationPoints: []cdtarget.RelationPoint{},
		NaryDiamonds:   []cdtarget.NaryDiamond{},
	}

	for _, n := range d.Nodes {
		if lasso.Contains(n.Box()) {
			ms.Nodes = append(ms.Nodes, n.Copy())
		}
	}

	for _, r := range d.Relations {
		if !d.Resolves(r) {
			continue
		}
		if r.IsNary() {
			p, ok := cdrouting.DiamondPosition(d, r)
			if ok && lasso.ContainsPoint(p) {
				ms.NaryDiamonds = append(ms.NaryDiamonds, cdtarget.NaryDiamond{RelationID: r.ID, X: p.X, Y: p.Y})
			}
			continue
		}
		for i := 1; i < len(r.Waypoints)-1; i++ {
			p := r.Waypoints[i]
			if lasso.ContainsPoint(p) {
				ms.RelationPoints = append(ms.RelationPoints, cdtarget.RelationPoint{
					RelationID:    r.ID,
					WaypointIndex: i,
					X:             p.X,
					Y:             p.Y,
				})
			}
		}
	}
	return ms
}

// NodesBoundingBox is the union of the rectangles of nodes, or nil when there are none.
func NodesBoundingBox(nodes []cdtarget.Node) *geo.Box {
	if len(nodes) == 0 {
		return nil
	}
	b := nodes[0].Box()
	for _, n := range nodes[1:] {
		b = b.Union(n.Box())
	}
	return &b
}

// BoundingBox covers every node rectangle of ms and every selected waypoint
// and diamond as a zero sized box. It is nil for an empty selection.
func BoundingBox(ms cdtarget.MultiSelection) *geo.Box {
	b := NodesBoundingBox(ms.Nodes)
	add := func(p geo.Point) {
		pb := geo.NewBox(p, 0, 0)
		if b == nil {
			b = &pb
			return
		}
		u := b.Union(pb)
		b = &u
	}
	for _, p := range ms.RelationPoints {
		add(p.Point())
	}
	for _, p := range ms.NaryDiamonds {
		add(p.Point())
	}
	return b
}

// ShowBoundingBox reports whether a selection box should be drawn at all.
func ShowBoundingBox(ms cdtarget.MultiSelection) bool {
	return ms.Len() > 1
}

// BeginsGroupDrag reports whether pressing on the element pressed starts a
// group drag of ms. Otherwise the press selects and drags pressed alone,
// replacing ms.
func BeginsGroupDrag(ms cdtarget.MultiSelection, pressed cdtarget.Selection) bool {
	return ms.Len() > 1 && ms.Includes(pressed)
}
