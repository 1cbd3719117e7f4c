// Package cdrouting keeps relation paths docked on node boundaries.
//
// Every function returns new values and leaves its arguments untouched.
// A relation that references a missing node is returned as it was.
package cdrouting

import (
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
)

// DockingPoint is where the ray from the center of n toward p crosses its rectangle.
func DockingPoint(n cdtarget.Node, p geo.Point) geo.Point {
	return n.DockingPoint(p)
}

// RouteRelation recomputes the endpoints of a binary relation.
//
// Without interior waypoints the whole path is regenerated from the two
// docking points. Otherwise the interior is kept as is, the first waypoint is
// docked toward the second and the last toward the one before it.
func RouteRelation(d cdtarget.Diagram, r cdtarget.Relation) cdtarget.Relation {
	r = r.Copy()
	if r.IsNary() {
		return r
	}
	src, ok := d.FindNode(r.SourceID)
	if !ok {
		return r
	}
	dst, ok := d.FindNode(r.TargetID)
	if !ok {
		return r
	}

	wp := r.Waypoints
	if len(wp) <= 2 {
		r.Waypoints = geo.Route{
			src.DockingPoint(dst.Center()),
			dst.DockingPoint(src.Center()),
		}
		return r
	}
	wp[0] = src.DockingPoint(wp[1])
	wp[len(wp)-1] = dst.DockingPoint(wp[len(wp)-2])
	return r
}

// RouteAll routes every relation of d.
func RouteAll(d cdtarget.Diagram) cdtarget.Diagram {
	out := d.Copy()
	for i, r := range out.Relations {
		out.Relations[i] = RouteRelation(out, r)
	}
	return out
}

// UpdateRelationsForNode returns the complete relation list of d with every
// relation touching nodeID re-routed.
func UpdateRelationsForNode(d cdtarget.Diagram, nodeID string) []cdtarget.Relation {
	out := make([]cdtarget.Relation, len(d.Relations))
	for i, r := range d.Relations {
		if r.Touches(nodeID) {
			out[i] = RouteRelation(d, r)
		} else {
			out[i] = r.Copy()
		}
	}
	return out
}

// MoveNode centers node id on p and re-routes its relations.
func MoveNode(d cdtarget.Diagram, id string, p geo.Point) (cdtarget.Diagram, bool) {
	out := d.Copy()
	i, ok := out.NodeIndex()[id]
	if !ok {
		return d, false
	}
	out.Nodes[i] = out.Nodes[i].MoveTo(p)
	out.Relations = UpdateRelationsForNode(out, id)
	return out, true
}
