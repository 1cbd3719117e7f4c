package cdtarget

import (
	"golang.org/x/exp/slices"

	"github.com/piliotov/BDM-sub000/lib/geo"
)

const (
	DEFAULT_NODE_WIDTH  = 100.
	DEFAULT_NODE_HEIGHT = 50.
)

// Node is an activity. X and Y are the center of its rectangle.
type Node struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`

	// Zero until Normalize fills in the defaults.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Constraint      string `json:"constraint,omitempty"`
	ConstraintValue *int   `json:"constraintValue,omitempty"`
}

func (n Node) Center() geo.Point {
	return geo.NewPoint(n.X, n.Y)
}

func (n Node) Box() geo.Box {
	return geo.NewBoxFromCenter(n.Center(), n.Width, n.Height)
}

// DockingPoint is where the line from the center of n toward p leaves its rectangle.
func (n Node) DockingPoint(p geo.Point) geo.Point {
	return geo.IntersectRectangleRay(n.Center(), n.Width, n.Height, p)
}

func (n Node) MoveTo(p geo.Point) Node {
	n.X, n.Y = p.X, p.Y
	return n
}

func (n Node) Copy() Node {
	if n.ConstraintValue != nil {
		v := *n.ConstraintValue
		n.ConstraintValue = &v
	}
	return n
}

// Relation is a binary constraint between SourceID and TargetID, or an n-ary
// choice over Activities joined at a diamond.
//
// Waypoints[0] and Waypoints[len-1] are docking points recomputed whenever
// either node moves. Interior waypoints are placed by the user and kept.
type Relation struct {
	ID   string       `json:"id"`
	Type RelationType `json:"type"`

	SourceID  string    `json:"sourceId,omitempty"`
	TargetID  string    `json:"targetId,omitempty"`
	Waypoints geo.Route `json:"waypoints,omitempty"`

	LabelOffset *geo.Point `json:"labelOffset,omitempty"`

	Activities []string   `json:"activities,omitempty"`
	N          int        `json:"n,omitempty"`
	DiamondPos *geo.Point `json:"diamondPos,omitempty"`
}

func (r Relation) IsNary() bool {
	return r.Type.IsNary()
}

// Touches reports whether the relation references node id at either end or
// among its activities.
func (r Relation) Touches(id string) bool {
	if r.IsNary() {
		return slices.Contains(r.Activities, id)
	}
	return r.SourceID == id || r.TargetID == id
}

func (r Relation) Copy() Relation {
	r.Waypoints = r.Waypoints.Copy()
	r.Activities = slices.Clone(r.Activities)
	if r.LabelOffset != nil {
		p := *r.LabelOffset
		r.LabelOffset = &p
	}
	if r.DiamondPos != nil {
		p := *r.DiamondPos
		r.DiamondPos = &p
	}
	return r
}

type Diagram struct {
	Nodes     []Node     `json:"nodes"`
	Relations []Relation `json:"relations"`
}

func NewDiagram() Diagram {
	return Diagram{
		Nodes:     []Node{},
		Relations: []Relation{},
	}
}

// Copy returns a deep copy so that the result can be edited without touching d.
func (d Diagram) Copy() Diagram {
	out := Diagram{
		Nodes:     make([]Node, len(d.Nodes)),
		Relations: make([]Relation, len(d.Relations)),
	}
	for i, n := range d.Nodes {
		out.Nodes[i] = n.Copy()
	}
	for i, r := range d.Relations {
		out.Relations[i] = r.Copy()
	}
	return out
}

// Normalize fills every node with an explicit size so geometry code never has
// to fall back to defaults itself.
func (d Diagram) Normalize() Diagram {
	out := d.Copy()
	for i := range out.Nodes {
		if out.Nodes[i].Width <= 0 {
			out.Nodes[i].Width = DEFAULT_NODE_WIDTH
		}
		if out.Nodes[i].Height <= 0 {
			out.Nodes[i].Height = DEFAULT_NODE_HEIGHT
		}
	}
	for i, r := range out.Relations {
		if r.IsNary() && r.N <= 0 {
			out.Relations[i].N = 1
		}
	}
	return out
}

// NodeIndex maps node ids to their index in d.Nodes.
func (d Diagram) NodeIndex() map[string]int {
	m := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		m[n.ID] = i
	}
	return m
}

func (d Diagram) FindNode(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

func (d Diagram) FindRelation(id string) (Relation, int) {
	for i, r := range d.Relations {
		if r.ID == id {
			return r, i
		}
	}
	return Relation{}, -1
}

// ActivityNodes returns the nodes of an n-ary relation that resolve, in order.
func (d Diagram) ActivityNodes(r Relation) []Node {
	var nodes []Node
	for _, id := range r.Activities {
		if n, ok := d.FindNode(id); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Resolves reports whether every node r needs in order to be drawn exists.
// An n-ary relation needs at least one of its activities.
func (d Diagram) Resolves(r Relation) bool {
	if r.IsNary() {
		return len(d.ActivityNodes(r)) > 0
	}
	_, ok1 := d.FindNode(r.SourceID)
	_, ok2 := d.FindNode(r.TargetID)
	return ok1 && ok2
}

// Renderable filters out relations whose endpoints are missing or whose
// route has not been computed yet.
func (d Diagram) Renderable() []Relation {
	var out []Relation
	for _, r := range d.Relations {
		if !d.Resolves(r) {
			continue
		}
		if !r.IsNary() && len(r.Waypoints) < 2 {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sanitize drops dangling activity ids from n-ary relations and then every
// relation that no longer resolves.
func (d Diagram) Sanitize() Diagram {
	out := d.Copy()
	idx := out.NodeIndex()
	relations := out.Relations[:0]
	for _, r := range out.Relations {
		if r.IsNary() {
			var kept []string
			for _, id := range r.Activities {
				if _, ok := idx[id]; ok {
					kept = append(kept, id)
				}
			}
			r.Activities = kept
			if len(r.Activities) == 0 {
				continue
			}
		} else {
			_, ok1 := idx[r.SourceID]
			_, ok2 := idx[r.TargetID]
			if !ok1 || !ok2 {
				continue
			}
		}
		relations = append(relations, r)
	}
	out.Relations = relations
	return out
}

// HasCoordinates is false when every node sits at the origin, which is what a
// flat constraint list decodes to.
func (d Diagram) HasCoordinates() bool {
	for _, n := range d.Nodes {
		if n.X != 0 || n.Y != 0 {
			return true
		}
	}
	return false
}
