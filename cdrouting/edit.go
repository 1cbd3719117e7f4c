package cdrouting

import (
	"golang.org/x/exp/slices"

	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
)

// DEFAULT_HIT_THRESHOLD is how close, in screen pixels, a click must be to a
// segment for a waypoint to be inserted.
const DEFAULT_HIT_THRESHOLD = 10.

func editable(d cdtarget.Diagram, relationID string) (cdtarget.Relation, int, bool) {
	r, i := d.FindRelation(relationID)
	if i < 0 || r.IsNary() || !d.Resolves(r) {
		return cdtarget.Relation{}, -1, false
	}
	return r, i, true
}

func commit(d cdtarget.Diagram, i int, r cdtarget.Relation) cdtarget.Diagram {
	out := d.Copy()
	out.Relations[i] = RouteRelation(out, r)
	return out
}

// AddWaypoint inserts p into the segment of the relation closest to it when
// that segment is within DEFAULT_HIT_THRESHOLD/zoom. Nothing changes otherwise.
func AddWaypoint(d cdtarget.Diagram, relationID string, p geo.Point, zoom float64) (cdtarget.Diagram, bool) {
	r, i, ok := editable(d, relationID)
	if !ok {
		return d, false
	}
	if len(r.Waypoints) < 2 {
		r = RouteRelation(d, r)
	}
	if zoom <= 0 {
		zoom = 1
	}
	seg, dist := r.Waypoints.ClosestSegment(p)
	if seg < 0 || dist >= DEFAULT_HIT_THRESHOLD/zoom {
		return d, false
	}
	r = r.Copy()
	r.Waypoints = slices.Insert(r.Waypoints, seg+1, p)
	return commit(d, i, r), true
}

func isInterior(r cdtarget.Relation, index int) bool {
	return index > 0 && index < len(r.Waypoints)-1
}

// MoveWaypoint moves the interior waypoint at index to p. Endpoints are
// derived from node geometry and cannot be moved.
func MoveWaypoint(d cdtarget.Diagram, relationID string, index int, p geo.Point) (cdtarget.Diagram, bool) {
	r, i, ok := editable(d, relationID)
	if !ok || !isInterior(r, index) {
		return d, false
	}
	r = r.Copy()
	r.Waypoints[index] = p
	return commit(d, i, r), true
}

// RemoveWaypoint deletes the interior waypoint at index.
func RemoveWaypoint(d cdtarget.Diagram, relationID string, index int) (cdtarget.Diagram, bool) {
	r, i, ok := editable(d, relationID)
	if !ok || !isInterior(r, index) {
		return d, false
	}
	r = r.Copy()
	r.Waypoints = slices.Delete(r.Waypoints, index, index+1)
	return commit(d, i, r), true
}

// MoveLabel drags the label of a relation by delta. The interior waypoints
// move with it while the endpoints stay docked. A straight relation is bent
// by inserting a waypoint at its midpoint moved by delta.
func MoveLabel(d cdtarget.Diagram, relationID string, delta geo.Point) (cdtarget.Diagram, bool) {
	r, i, ok := editable(d, relationID)
	if !ok || delta.IsZero() {
		return d, false
	}
	if len(r.Waypoints) < 2 {
		r = RouteRelation(d, r)
	}
	r = r.Copy()
	if len(r.Waypoints) == 2 {
		mid := r.Waypoints.MidpointByLength().Translate(delta)
		r.Waypoints = geo.Route{r.Waypoints[0], mid, r.Waypoints[1]}
	} else {
		for j := 1; j < len(r.Waypoints)-1; j++ {
			r.Waypoints[j] = r.Waypoints[j].Translate(delta)
		}
	}
	return commit(d, i, r), true
}
