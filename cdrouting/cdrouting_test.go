package cdrouting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piliotov/BDM-sub000/cdrouting"
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
)

func twoNodes() cdtarget.Diagram {
	return cdtarget.Diagram{
		Nodes: []cdtarget.Node{
			{ID: "a", Name: "A", X: 100, Y: 100},
			{ID: "b", Name: "B", X: 300, Y: 100},
		},
		Relations: []cdtarget.Relation{
			{ID: "r", Type: cdtarget.Response, SourceID: "a", TargetID: "b"},
		},
	}.Normalize()
}

func TestRouteTwoNodes(t *testing.T) {
	t.Parallel()

	d := twoNodes()
	r := cdrouting.RouteRelation(d, d.Relations[0])
	assert.Equal(t, geo.Route{{150, 100}, {250, 100}}, r.Waypoints)
	assert.Nil(t, d.Relations[0].Waypoints)
}

func TestRouteMissingNode(t *testing.T) {
	t.Parallel()

	d := twoNodes()
	r := cdtarget.Relation{ID: "x", Type: cdtarget.Response, SourceID: "a", TargetID: "deleted", Waypoints: geo.Route{{1, 2}, {3, 4}}}
	assert.Equal(t, r, cdrouting.RouteRelation(d, r))

	d.Relations = append(d.Relations, r)
	routed := cdrouting.RouteAll(d)
	assert.Equal(t, r, routed.Relations[1])
	assert.Len(t, routed.Renderable(), 1)
}

func bentDiagram() cdtarget.Diagram {
	d := twoNodes()
	d.Relations[0].Waypoints = geo.Route{{0, 0}, {200, 0}, {200, 200}, {0, 0}}
	return cdrouting.RouteAll(d)
}

func TestRouteFixedEndpoints(t *testing.T) {
	t.Parallel()

	d := bentDiagram()
	wp := d.Relations[0].Waypoints
	assert.Len(t, wp, 4)
	// docked toward the first and last interior point, not toward the other node
	assert.Equal(t, geo.Point{125, 75}, wp[0])
	assert.Equal(t, geo.Point{275, 125}, wp[3])

	again := cdrouting.RouteRelation(d, d.Relations[0])
	assert.Equal(t, d.Relations[0], again)
}

func TestMoveNodeKeepsInterior(t *testing.T) {
	t.Parallel()

	d := bentDiagram()
	before := d.Relations[0].Waypoints.Copy()

	moved, ok := cdrouting.MoveNode(d, "a", geo.Point{-400, 350})
	assert.True(t, ok)
	after := moved.Relations[0].Waypoints

	assert.Equal(t, before[1:3], after[1:3])
	assert.NotEqual(t, before[0], after[0])
	assert.Equal(t, moved.Nodes[0].DockingPoint(after[1]), after[0])
	assert.Equal(t, before[3], after[3])
	// input untouched
	assert.Equal(t, 100., d.Nodes[0].X)
	assert.Equal(t, before, d.Relations[0].Waypoints)

	_, ok = cdrouting.MoveNode(d, "nope", geo.Point{})
	assert.False(t, ok)
}

func TestUpdateRelationsForNode(t *testing.T) {
	t.Parallel()

	d := twoNodes()
	d.Nodes = append(d.Nodes, cdtarget.Node{ID: "c", X: 100, Y: 300, Width: 100, Height: 50})
	d.Relations = append(d.Relations, cdtarget.Relation{ID: "r2", Type: cdtarget.Precedence, SourceID: "b", TargetID: "c"})

	rels := cdrouting.UpdateRelationsForNode(d, "a")
	assert.Len(t, rels, 2)
	assert.Equal(t, geo.Route{{150, 100}, {250, 100}}, rels[0].Waypoints)
	assert.Nil(t, rels[1].Waypoints)
}

func TestAddWaypoint(t *testing.T) {
	t.Parallel()

	d := cdrouting.RouteAll(twoNodes())

	got, ok := cdrouting.AddWaypoint(d, "r", geo.Point{200, 105}, 1)
	assert.True(t, ok)
	wp := got.Relations[0].Waypoints
	assert.Len(t, wp, 3)
	assert.Equal(t, geo.Point{200, 105}, wp[1])
	assert.Equal(t, got.Nodes[0].DockingPoint(wp[1]), wp[0])
	assert.Equal(t, got.Nodes[1].DockingPoint(wp[1]), wp[2])
	assert.Len(t, d.Relations[0].Waypoints, 2)

	// 8px away is out of reach at zoom 2
	_, ok = cdrouting.AddWaypoint(d, "r", geo.Point{200, 108}, 2)
	assert.False(t, ok)
	_, ok = cdrouting.AddWaypoint(d, "r", geo.Point{200, 130}, 1)
	assert.False(t, ok)
	_, ok = cdrouting.AddWaypoint(d, "missing", geo.Point{200, 100}, 1)
	assert.False(t, ok)
}

func TestMoveAndRemoveWaypoint(t *testing.T) {
	t.Parallel()

	d := bentDiagram()

	_, ok := cdrouting.MoveWaypoint(d, "r", 0, geo.Point{5, 5})
	assert.False(t, ok)
	_, ok = cdrouting.MoveWaypoint(d, "r", 3, geo.Point{5, 5})
	assert.False(t, ok)

	got, ok := cdrouting.MoveWaypoint(d, "r", 1, geo.Point{100, -100})
	assert.True(t, ok)
	wp := got.Relations[0].Waypoints
	assert.Equal(t, geo.Point{100, -100}, wp[1])
	assert.Equal(t, geo.Point{100, 75}, wp[0])

	got, ok = cdrouting.RemoveWaypoint(got, "r", 1)
	assert.True(t, ok)
	assert.Equal(t, geo.Route{{125, 125}, {200, 200}, {275, 125}}, got.Relations[0].Waypoints)

	got, ok = cdrouting.RemoveWaypoint(got, "r", 1)
	assert.True(t, ok)
	assert.Equal(t, geo.Route{{150, 100}, {250, 100}}, got.Relations[0].Waypoints)

	_, ok = cdrouting.RemoveWaypoint(got, "r", 1)
	assert.False(t, ok)
}

func TestMoveLabel(t *testing.T) {
	t.Parallel()

	d := cdrouting.RouteAll(twoNodes())
	got, ok := cdrouting.MoveLabel(d, "r", geo.Point{0, 50})
	assert.True(t, ok)
	wp := got.Relations[0].Waypoints
	assert.Len(t, wp, 3)
	assert.Equal(t, geo.Point{200, 150}, wp[1])
	assert.Equal(t, geo.Point{150, 125}, wp[0])
	assert.Equal(t, geo.Point{250, 125}, wp[2])

	got, ok = cdrouting.MoveLabel(got, "r", geo.Point{10, 0})
	assert.True(t, ok)
	assert.Equal(t, geo.Point{210, 150}, got.Relations[0].Waypoints[1])

	_, ok = cdrouting.MoveLabel(got, "r", geo.Point{})
	assert.False(t, ok)
}

func TestLabelPosition(t *testing.T) {
	t.Parallel()

	r := cdtarget.Relation{Waypoints: geo.Route{{0, 0}, {10, 0}, {10, 30}}}
	p := cdrouting.LabelPosition(r)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)

	r.LabelOffset = &geo.Point{X: -5, Y: 2}
	p = cdrouting.LabelPosition(r)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 12, p.Y, 1e-9)
}

func TestNary(t *testing.T) {
	t.Parallel()

	d := cdtarget.Diagram{
		Nodes: []cdtarget.Node{
			{ID: "a", X: 0, Y: 0},
			{ID: "b", X: 300, Y: 0},
			{ID: "c", X: 150, Y: 300},
		},
		Relations: []cdtarget.Relation{
			{ID: "n", Type: cdtarget.Choice, Activities: []string{"a", "b", "c", "gone"}, N: 1},
		},
	}.Normalize()
	r := d.Relations[0]

	p, ok := cdrouting.DiamondPosition(d, r)
	assert.True(t, ok)
	assert.Equal(t, geo.Point{150, 100}, p)

	lines := cdrouting.NaryConnectors(d, r)
	assert.Len(t, lines, 3)
	for i, l := range lines {
		assert.Equal(t, p, l[1])
		assert.Equal(t, d.Nodes[i].DockingPoint(p), l[0])
	}

	r.DiamondPos = &geo.Point{X: 10, Y: 20}
	p, ok = cdrouting.DiamondPosition(d, r)
	assert.True(t, ok)
	assert.Equal(t, geo.Point{10, 20}, p)

	// routing leaves n-ary relations alone
	assert.Equal(t, r, cdrouting.RouteRelation(d, r))

	r.Activities = []string{"gone"}
	_, ok = cdrouting.DiamondPosition(d, r)
	assert.False(t, ok)
	assert.Nil(t, cdrouting.NaryConnectors(d, r))
}

func TestSideLines(t *testing.T) {
	t.Parallel()

	r := cdtarget.Relation{Type: cdtarget.Response, Waypoints: geo.Route{{150, 100}, {250, 100}}}
	assert.Nil(t, cdrouting.SideLines(r))

	r.Type = cdtarget.AlternateResponse
	lines := cdrouting.SideLines(r)
	assert.Len(t, lines, 2)
	assert.Equal(t, geo.Point{150, 104}, lines[0][0])
	assert.InDelta(t, 240, lines[0][1].X, 1e-9)
	assert.InDelta(t, 104, lines[0][1].Y, 1e-9)
	assert.Equal(t, 96., lines[1][0].Y)

	r.Type = cdtarget.ChainSuccession
	lines = cdrouting.SideLines(r)
	assert.Len(t, lines, 4)
	assert.Equal(t, 108., lines[2][0].Y)
	assert.Equal(t, 92., lines[3][0].Y)
}
