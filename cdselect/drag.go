package cdselect

import (
	"github.com/piliotov/BDM-sub000/cdrouting"
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
)

// GroupDrag moves a selection by the pointer displacement since the drag
// started. Every move is applied to the positions recorded at the start,
// never to the result of the previous move.
type GroupDrag struct {
	base     cdtarget.Diagram
	snapshot cdtarget.MultiSelection
	// interior waypoints of relations with both endpoints selected
	carried []cdtarget.RelationPoint
	start   geo.Point
	zoom    float64
}

// StartGroupDrag records the current position of everything in sel. Elements
// of sel that no longer exist in d are dropped.
func StartGroupDrag(d cdtarget.Diagram, sel cdtarget.MultiSelection, pointer geo.Point, zoom float64) *GroupDrag {
	if zoom <= 0 {
		zoom = 1
	}
	g := &GroupDrag{
		base:  d.Copy(),
		start: pointer,
		zoom:  zoom,
	}

	for _, sn := range sel.Nodes {
		if n, ok := d.FindNode(sn.ID); ok {
			g.snapshot.Nodes = append(g.snapshot.Nodes, n.Copy())
		}
	}
	for _, sp := range sel.RelationPoints {
		r, i := d.FindRelation(sp.RelationID)
		if i < 0 || sp.WaypointIndex <= 0 || sp.WaypointIndex >= len(r.Waypoints)-1 {
			continue
		}
		p := r.Waypoints[sp.WaypointIndex]
		g.snapshot.RelationPoints = append(g.snapshot.RelationPoints, cdtarget.RelationPoint{
			RelationID:    r.ID,
			WaypointIndex: sp.WaypointIndex,
			X:             p.X,
			Y:             p.Y,
		})
	}
	for _, sd := range sel.NaryDiamonds {
		r, i := d.FindRelation(sd.RelationID)
		if i < 0 {
			continue
		}
		if p, ok := cdrouting.DiamondPosition(d, r); ok {
			g.snapshot.NaryDiamonds = append(g.snapshot.NaryDiamonds, cdtarget.NaryDiamond{RelationID: r.ID, X: p.X, Y: p.Y})
		}
	}

	for _, r := range d.Relations {
		if r.IsNary() || !g.snapshot.HasNode(r.SourceID) || !g.snapshot.HasNode(r.TargetID) {
			continue
		}
		for i := 1; i < len(r.Waypoints)-1; i++ {
			if g.snapshot.HasRelationPoint(r.ID, i) {
				continue
			}
			g.carried = append(g.carried, cdtarget.RelationPoint{
				RelationID:    r.ID,
				WaypointIndex: i,
				X:             r.Waypoints[i].X,
				Y:             r.Waypoints[i].Y,
			})
		}
	}
	return g
}

// Snapshot returns the positions recorded when the drag started.
func (g *GroupDrag) Snapshot() cdtarget.MultiSelection {
	return g.snapshot
}

// Delta is the pointer displacement in diagram units.
func (g *GroupDrag) Delta(pointer geo.Point) geo.Point {
	return pointer.Sub(g.start).Scale(1 / g.zoom)
}

// Apply returns the diagram as it was when the drag started with every
// selected element moved by Delta(pointer) and every affected relation re-docked.
func (g *GroupDrag) Apply(pointer geo.Point) cdtarget.Diagram {
	delta := g.Delta(pointer)
	out := g.base.Copy()
	nodeIdx := out.NodeIndex()
	affected := make(map[string]struct{})

	for _, sn := range g.snapshot.Nodes {
		i := nodeIdx[sn.ID]
		out.Nodes[i] = out.Nodes[i].MoveTo(sn.Center().Translate(delta))
	}

	movePoint := func(rp cdtarget.RelationPoint) {
		_, i := out.FindRelation(rp.RelationID)
		out.Relations[i].Waypoints[rp.WaypointIndex] = rp.Point().Translate(delta)
		affected[rp.RelationID] = struct{}{}
	}
	for _, rp := range g.snapshot.RelationPoints {
		movePoint(rp)
	}
	for _, rp := range g.carried {
		movePoint(rp)
	}
	for _, nd := range g.snapshot.NaryDiamonds {
		_, i := out.FindRelation(nd.RelationID)
		p := nd.Point().Translate(delta)
		out.Relations[i].DiamondPos = &p
	}

	for i, r := range out.Relations {
		_, moved := affected[r.ID]
		if moved || g.touchesSelection(r) {
			out.Relations[i] = cdrouting.RouteRelation(out, r)
		}
	}
	return out
}

func (g *GroupDrag) touchesSelection(r cdtarget.Relation) bool {
	for _, n := range g.snapshot.Nodes {
		if r.Touches(n.ID) {
			return true
		}
	}
	return false
}

// Selection returns the snapshot moved by Delta(pointer), which is what the
// selection looks like during and after the drag.
func (g *GroupDrag) Selection(pointer geo.Point) cdtarget.MultiSelection {
	delta := g.Delta(pointer)
	ms := cdtarget.MultiSelection{
		Nodes:          make([]cdtarget.Node, len(g.snapshot.Nodes)),
		RelationPoints: make([]cdtarget.RelationPoint, len(g.snapshot.RelationPoints)),
		NaryDiamonds:   make([]cdtarget.NaryDiamond, len(g.snapshot.NaryDiamonds)),
	}
	for i, n := range g.snapshot.Nodes {
		ms.Nodes[i] = n.Copy().MoveTo(n.Center().Translate(delta))
	}
	for i, p := range g.snapshot.RelationPoints {
		p.X += delta.X
		p.Y += delta.Y
		ms.RelationPoints[i] = p
	}
	for i, p := range g.snapshot.NaryDiamonds {
		p.X += delta.X
		p.Y += delta.Y
		ms.NaryDiamonds[i] = p
	}
	return ms
}

// End commits the drag. moved is false when the pointer came back to where it
// started, in which case the diagram is unchanged and nothing should be
// recorded for undo.
func (g *GroupDrag) End(pointer geo.Point) (d cdtarget.Diagram, moved bool) {
	if g.Delta(pointer).IsZero() {
		return g.base.Copy(), false
	}
	return g.Apply(pointer), true
}
