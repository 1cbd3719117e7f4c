package cdoracle

import (
	"golang.org/x/exp/slices"

	"github.com/piliotov/BDM-sub000/cdrouting"
	"github.com/piliotov/BDM-sub000/cdselect"
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
)

// Host receives complete replacement arrays whenever an intent changes the diagram.
type Host interface {
	OnNodeEdit(nodes []cdtarget.Node)
	OnRelationEdit(relations []cdtarget.Relation)
}

// State is interaction state owned by the host between intents.
type State struct {
	Mode ConnectMode
	// Drag is set between StartGroupDrag and EndGroupDrag.
	Drag *cdselect.GroupDrag
}

type Result struct {
	Diagram cdtarget.Diagram
	State   State

	NodesChanged     bool
	RelationsChanged bool
	// SaveUndo is set when the change completes a user action that should
	// get its own undo entry.
	SaveUndo bool
}

func (r Result) Changed() bool {
	return r.NodesChanged || r.RelationsChanged
}

// Notify passes the changed arrays of r to h.
func Notify(h Host, r Result) {
	if r.NodesChanged {
		h.OnNodeEdit(r.Diagram.Nodes)
	}
	if r.RelationsChanged {
		h.OnRelationEdit(r.Diagram.Relations)
	}
}

type Intent interface {
	intent()
}

type MoveNode struct {
	ID string
	To geo.Point
}

type AddWaypoint struct {
	RelationID string
	At         geo.Point
	Zoom       float64
}

type MoveWaypoint struct {
	RelationID string
	Index      int
	To         geo.Point
}

type RemoveWaypoint struct {
	RelationID string
	Index      int
}

type MoveLabel struct {
	RelationID string
	Delta      geo.Point
}

type DeleteNodeIntent struct {
	ID string
}

type DeleteRelationIntent struct {
	ID string
}

type StartConnect struct {
	From string
}

type CancelConnect struct{}

// PressNode is a press on a node. While connecting it completes the relation,
// or cancels when the origin node is pressed again.
type PressNode struct {
	ID   string
	Type cdtarget.RelationType
}

type StartGroupDrag struct {
	Selection cdtarget.MultiSelection
	Pointer   geo.Point
	Zoom      float64
}

type GroupDragMove struct {
	Pointer geo.Point
}

type EndGroupDrag struct {
	Pointer geo.Point
}

func (MoveNode) intent()             {}
func (AddWaypoint) intent()          {}
func (MoveWaypoint) intent()         {}
func (RemoveWaypoint) intent()       {}
func (MoveLabel) intent()            {}
func (DeleteNodeIntent) intent()     {}
func (DeleteRelationIntent) intent() {}
func (StartConnect) intent()         {}
func (CancelConnect) intent()        {}
func (PressNode) intent()            {}
func (StartGroupDrag) intent()       {}
func (GroupDragMove) intent()        {}
func (EndGroupDrag) intent()         {}

// Dispatch applies in to d. Intents that do not apply leave the diagram as
// it is and report no change.
func Dispatch(d cdtarget.Diagram, st State, in Intent) Result {
	res := Result{Diagram: d, State: st}
	relationsOnly := func(out cdtarget.Diagram, ok bool, undo bool) Result {
		if ok {
			res.Diagram = out
			res.RelationsChanged = true
			res.SaveUndo = undo
		}
		return res
	}

	switch in := in.(type) {
	case MoveNode:
		out, ok := cdrouting.MoveNode(d, in.ID, in.To)
		if ok {
			res.Diagram = out
			res.NodesChanged = true
			res.RelationsChanged = !slices.EqualFunc(d.Relations, out.Relations, relationEqual)
		}
		return res
	case AddWaypoint:
		out, ok := cdrouting.AddWaypoint(d, in.RelationID, in.At, in.Zoom)
		return relationsOnly(out, ok, true)
	case MoveWaypoint:
		out, ok := cdrouting.MoveWaypoint(d, in.RelationID, in.Index, in.To)
		return relationsOnly(out, ok, false)
	case RemoveWaypoint:
		out, ok := cdrouting.RemoveWaypoint(d, in.RelationID, in.Index)
		return relationsOnly(out, ok, true)
	case MoveLabel:
		out, ok := cdrouting.MoveLabel(d, in.RelationID, in.Delta)
		return relationsOnly(out, ok, false)
	case DeleteRelationIntent:
		out, ok := DeleteRelation(d, in.ID)
		return relationsOnly(out, ok, true)
	case DeleteNodeIntent:
		out, ok := DeleteNode(d, in.ID)
		if ok {
			res.Diagram = out
			res.NodesChanged = true
			res.RelationsChanged = len(out.Relations) != len(d.Relations) || !slices.EqualFunc(d.Relations, out.Relations, relationEqual)
			res.SaveUndo = true
			if res.State.Mode.From() == in.ID {
				res.State.Mode = Idle()
			}
		}
		return res
	case StartConnect:
		if _, ok := d.FindNode(in.From); ok {
			res.State.Mode = ConnectingFrom(in.From)
		}
		return res
	case CancelConnect:
		res.State.Mode = Idle()
		return res
	case PressNode:
		if st.Mode.IsIdle() {
			return res
		}
		res.State.Mode = Idle()
		if in.ID == st.Mode.From() {
			return res
		}
		out, _, ok := Connect(d, st.Mode.From(), in.ID, in.Type)
		return relationsOnly(out, ok, true)
	case StartGroupDrag:
		res.State.Drag = cdselect.StartGroupDrag(d, in.Selection, in.Pointer, in.Zoom)
		return res
	case GroupDragMove:
		if st.Drag == nil {
			return res
		}
		res.Diagram = st.Drag.Apply(in.Pointer)
		res.NodesChanged = true
		res.RelationsChanged = true
		return res
	case EndGroupDrag:
		if st.Drag == nil {
			return res
		}
		out, moved := st.Drag.End(in.Pointer)
		res.State.Drag = nil
		res.Diagram = out
		res.NodesChanged = true
		res.RelationsChanged = true
		res.SaveUndo = moved
		return res
	}
	return res
}

func relationEqual(a, b cdtarget.Relation) bool {
	return a.ID == b.ID && slices.Equal(a.Waypoints, b.Waypoints)
}
