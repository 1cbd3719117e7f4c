package cdlib_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piliotov/BDM-sub000/cdlayouts/cdforce"
	"github.com/piliotov/BDM-sub000/cdlib"
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
	"github.com/piliotov/BDM-sub000/lib/log"
)

func TestImportKeepsCoordinates(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	d, err := cdlib.Import(ctx, []byte(`{
	"nodes": [
		{"id": "A", "name": "A", "x": 100, "y": 100},
		{"id": "B", "name": "B", "x": 300, "y": 100}
	],
	"relations": [
		{"id": "r1", "type": "response", "sourceId": "A", "targetId": "B"},
		{"id": "r2", "type": "response", "sourceId": "A", "targetId": "deleted"}
	]
}`), nil)
	assert.NoError(t, err)

	assert.Len(t, d.Relations, 1)
	assert.Equal(t, geo.Route{{150, 100}, {250, 100}}, d.Relations[0].Waypoints)
	assert.Equal(t, 100., d.Nodes[0].Width)
	assert.Equal(t, 50., d.Nodes[0].Height)
}

func TestImportLaysOutFlatLists(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	d, err := cdlib.Import(ctx, []byte(`{
	"nodes": [
		{"id": "a", "name": "register"},
		{"id": "b", "name": "pay"},
		{"id": "c", "name": "ship"}
	],
	"relations": [
		{"id": "r1", "type": "precedence", "sourceId": "a", "targetId": "b"},
		{"id": "r2", "type": "chain_response", "sourceId": "b", "targetId": "c"},
		{"id": "r3", "type": "choice", "activities": ["a", "c", "gone"], "n": 1}
	]
}`), &cdlib.ImportOptions{
		Layout: &cdforce.DefaultOpts,
	})
	assert.NoError(t, err)

	assert.True(t, d.HasCoordinates())
	minSep := cdforce.MinSeparation(d.Nodes)
	for i := range d.Nodes {
		for j := i + 1; j < len(d.Nodes); j++ {
			dist := d.Nodes[i].Center().DistanceTo(d.Nodes[j].Center())
			assert.GreaterOrEqual(t, dist+1e-6, minSep)
		}
	}
	for _, r := range d.Relations {
		if r.IsNary() {
			assert.Equal(t, []string{"a", "c"}, r.Activities)
			continue
		}
		src, _ := d.FindNode(r.SourceID)
		dst, _ := d.FindNode(r.TargetID)
		assert.Equal(t, geo.Route{src.DockingPoint(dst.Center()), dst.DockingPoint(src.Center())}, r.Waypoints)
	}
}

func TestImportForceLayout(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	input := []byte(`{"nodes": [{"id": "a", "x": 5, "y": 5}, {"id": "b", "x": 6, "y": 6}], "relations": []}`)

	kept, err := cdlib.Import(ctx, input, nil)
	assert.NoError(t, err)
	assert.Equal(t, 5., kept.Nodes[0].X)

	moved, err := cdlib.Import(ctx, input, &cdlib.ImportOptions{ForceLayout: true})
	assert.NoError(t, err)
	assert.NotEqual(t, kept.Nodes, moved.Nodes)
}

func TestParse(t *testing.T) {
	t.Parallel()

	d, err := cdlib.Parse([]byte(`{}`))
	assert.NoError(t, err)
	assert.NotNil(t, d.Nodes)
	assert.NotNil(t, d.Relations)

	_, err = cdlib.Parse([]byte(`{"nodes": [`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse diagram")

	_, err = cdlib.Import(context.Background(), []byte(`[]`), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to import diagram")
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	d, err := cdlib.Import(ctx, []byte(`{
	"nodes": [
		{"id": "A", "name": "A", "x": 100, "y": 100, "constraint": "init"},
		{"id": "B", "name": "B", "x": 300, "y": 100}
	],
	"relations": [
		{"id": "r1", "type": "alternate_response", "sourceId": "A", "targetId": "B", "labelOffset": {"x": 0, "y": -10}}
	]
}`), nil)
	assert.NoError(t, err)

	again, err := cdlib.Import(ctx, cdlib.Marshal(d), nil)
	assert.NoError(t, err)
	assert.Equal(t, d, again)
	assert.Equal(t, cdtarget.AlternateResponse, again.Relations[0].Type)
}
