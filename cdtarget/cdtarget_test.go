package cdtarget_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/diff"

	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
	"github.com/piliotov/BDM-sub000/lib/go2"
)

func testDiagram() cdtarget.Diagram {
	return cdtarget.Diagram{
		Nodes: []cdtarget.Node{
			{ID: "a", Name: "A", X: 100, Y: 100},
			{ID: "b", Name: "B", X: 300, Y: 100, Width: 120, Height: 60},
			{ID: "c", Name: "C", X: 200, Y: 300, Constraint: "init", ConstraintValue: go2.Pointer(1)},
		},
		Relations: []cdtarget.Relation{
			{ID: "r1", Type: cdtarget.Response, SourceID: "a", TargetID: "b", Waypoints: geo.Route{{150, 100}, {240, 100}}},
			{ID: "r2", Type: cdtarget.Precedence, SourceID: "a", TargetID: "gone"},
			{ID: "r3", Type: cdtarget.Choice, Activities: []string{"a", "gone", "c"}},
			{ID: "r4", Type: cdtarget.ExChoice, Activities: []string{"gone"}},
		},
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	d := testDiagram()
	nd := d.Normalize()

	assert.Equal(t, 100., nd.Nodes[0].Width)
	assert.Equal(t, 50., nd.Nodes[0].Height)
	assert.Equal(t, 120., nd.Nodes[1].Width)
	assert.Equal(t, 60., nd.Nodes[1].Height)
	assert.Equal(t, 1, nd.Relations[2].N)

	// input untouched
	assert.Equal(t, 0., d.Nodes[0].Width)
	assert.Equal(t, 0, d.Relations[2].N)
}

func TestCopyIsDeep(t *testing.T) {
	t.Parallel()

	d := testDiagram()
	c := d.Copy()
	c.Relations[0].Waypoints[0].X = -1
	c.Relations[2].Activities[0] = "z"
	*c.Nodes[2].ConstraintValue = 5

	assert.Equal(t, 150., d.Relations[0].Waypoints[0].X)
	assert.Equal(t, "a", d.Relations[2].Activities[0])
	assert.Equal(t, 1, *d.Nodes[2].ConstraintValue)
}

func TestRenderable(t *testing.T) {
	t.Parallel()

	var ids []string
	for _, r := range testDiagram().Normalize().Renderable() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r1", "r3"}, ids)
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	d := testDiagram().Sanitize()
	assert.Len(t, d.Relations, 2)
	assert.Equal(t, "r1", d.Relations[0].ID)
	assert.Equal(t, []string{"a", "c"}, d.Relations[1].Activities)
}

func TestHasCoordinates(t *testing.T) {
	t.Parallel()

	assert.True(t, testDiagram().HasCoordinates())
	assert.False(t, cdtarget.Diagram{Nodes: []cdtarget.Node{{ID: "a"}, {ID: "b"}}}.HasCoordinates())
	assert.False(t, cdtarget.NewDiagram().HasCoordinates())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	d := testDiagram()
	d.Nodes = append(d.Nodes, cdtarget.Node{ID: "a"})
	d.Relations = append(d.Relations,
		cdtarget.Relation{ID: "r1", Type: "sometimes", SourceID: "a", TargetID: "b"},
		cdtarget.Relation{ID: "r5", Type: cdtarget.Choice},
	)

	err := d.Validate()
	exp := `nodes[3]: duplicate node id "a"
relations[1]: target "gone" does not exist
relations[2]: activity "gone" does not exist
relations[3]: activity "gone" does not exist
relations[4]: duplicate relation id "r1"
relations[4]: unknown relation type "sometimes"
relations[5]: choice relation "r5" has no activities`
	ds, diffErr := diff.Strings(exp, err.Error())
	if diffErr != nil {
		t.Fatal(diffErr)
	}
	if ds != "" {
		t.Fatalf("unexpected validation error:\n%s", ds)
	}
}

func TestValidateClean(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testDiagram().Sanitize().Validate())
}

func TestDecodeMinimalShape(t *testing.T) {
	t.Parallel()

	var d cdtarget.Diagram
	err := json.Unmarshal([]byte(`{
  "nodes": [{"id": "a", "name": "A", "x": 1, "y": 2}],
  "relations": [{"id": "r", "type": "choice", "activities": ["a"], "n": 1}]
}`), &d)
	assert.NoError(t, err)
	assert.Equal(t, cdtarget.Node{ID: "a", Name: "A", X: 1, Y: 2}, d.Nodes[0])
	assert.True(t, d.Relations[0].IsNary())
	assert.Nil(t, d.Relations[0].DiamondPos)

	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[{"id":"a","name":"A","x":1,"y":2}],"relations":[{"id":"r","type":"choice","activities":["a"],"n":1}]}`, string(b))
}

func TestNotation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, cdtarget.Response.Notation().SideLineCount())
	assert.Equal(t, 1, cdtarget.AlternateSuccession.Notation().SideLineCount())
	assert.Equal(t, 2, cdtarget.ChainPrecedence.Notation().SideLineCount())
	assert.Equal(t, cdtarget.NegatedNotation, cdtarget.NotCoexistence.Notation())
	assert.False(t, cdtarget.RelationType("nope").Known())
}

func TestMultiSelectionIncludes(t *testing.T) {
	t.Parallel()

	ms := cdtarget.MultiSelection{
		Nodes:          []cdtarget.Node{{ID: "a"}},
		RelationPoints: []cdtarget.RelationPoint{{RelationID: "r1", WaypointIndex: 2}},
		NaryDiamonds:   []cdtarget.NaryDiamond{{RelationID: "r3"}},
	}
	assert.Equal(t, 3, ms.Len())
	assert.True(t, ms.Includes(cdtarget.Selection{Type: cdtarget.NodeElement, ElementID: "a"}))
	assert.True(t, ms.Includes(cdtarget.Selection{Type: cdtarget.WaypointElement, ElementID: "r1", WaypointIndex: 2}))
	assert.False(t, ms.Includes(cdtarget.Selection{Type: cdtarget.WaypointElement, ElementID: "r1", WaypointIndex: 1}))
	assert.True(t, ms.Includes(cdtarget.Selection{Type: cdtarget.DiamondElement, ElementID: "r3"}))
	assert.False(t, ms.Includes(cdtarget.Selection{Type: cdtarget.RelationElement, ElementID: "r1"}))
}
