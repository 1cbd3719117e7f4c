package cdtarget

import (
	"github.com/piliotov/BDM-sub000/lib/geo"
)

type ElementType string

const (
	NodeElement     ElementType = "node"
	RelationElement ElementType = "relation"
	WaypointElement ElementType = "waypoint"
	DiamondElement  ElementType = "diamond"
)

// Selection is a single selected element.
type Selection struct {
	Type      ElementType `json:"type"`
	ElementID string      `json:"elementId"`
	// Only meaningful for WaypointElement.
	WaypointIndex int `json:"waypointIndex,omitempty"`
}

type RelationPoint struct {
	RelationID    string  `json:"relationId"`
	WaypointIndex int     `json:"waypointIndex"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
}

func (p RelationPoint) Point() geo.Point {
	return geo.NewPoint(p.X, p.Y)
}

type NaryDiamond struct {
	RelationID string  `json:"relationId"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

func (p NaryDiamond) Point() geo.Point {
	return geo.NewPoint(p.X, p.Y)
}

// MultiSelection is a snapshot of positions of heterogeneous elements. It is
// taken when a drag starts and not modified while the drag lasts.
type MultiSelection struct {
	Nodes          []Node          `json:"nodes"`
	RelationPoints []RelationPoint `json:"relationPoints"`
	NaryDiamonds   []NaryDiamond   `json:"naryDiamonds"`
}

func (ms MultiSelection) Len() int {
	return len(ms.Nodes) + len(ms.RelationPoints) + len(ms.NaryDiamonds)
}

func (ms MultiSelection) Empty() bool {
	return ms.Len() == 0
}

func (ms MultiSelection) HasNode(id string) bool {
	for _, n := range ms.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

func (ms MultiSelection) HasRelationPoint(relationID string, index int) bool {
	for _, p := range ms.RelationPoints {
		if p.RelationID == relationID && p.WaypointIndex == index {
			return true
		}
	}
	return false
}

func (ms MultiSelection) HasDiamond(relationID string) bool {
	for _, p := range ms.NaryDiamonds {
		if p.RelationID == relationID {
			return true
		}
	}
	return false
}

// Includes reports whether the element sel refers to is part of ms.
func (ms MultiSelection) Includes(sel Selection) bool {
	switch sel.Type {
	case NodeElement:
		return ms.HasNode(sel.ElementID)
	case WaypointElement:
		return ms.HasRelationPoint(sel.ElementID, sel.WaypointIndex)
	case DiamondElement:
		return ms.HasDiamond(sel.ElementID)
	}
	return false
}
