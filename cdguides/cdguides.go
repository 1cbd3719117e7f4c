// Package cdguides finds alignment guides for a node being dragged.
//
// Guides are only shown, they never change where the node is dropped.
package cdguides

import (
	"math"

	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
	"github.com/piliotov/BDM-sub000/lib/go2"
)

// DEFAULT_THRESHOLD is in diagram units.
const DEFAULT_THRESHOLD = 2.

// Guides holds the coordinate of the vertical (X) and horizontal (Y) guide
// line, nil when there is none on that axis.
type Guides struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (g Guides) Empty() bool {
	return g.X == nil && g.Y == nil
}

// Candidates returns every point the dragged node nodeID can align with: the
// centers of the other nodes plus the waypoints and path midpoints of the
// relations that do not move along with it.
func Candidates(d cdtarget.Diagram, nodeID string) []geo.Point {
	var pts []geo.Point
	for _, n := range d.Nodes {
		if n.ID != nodeID {
			pts = append(pts, n.Center())
		}
	}
	for _, r := range d.Relations {
		if r.IsNary() || r.Touches(nodeID) || len(r.Waypoints) < 2 {
			continue
		}
		pts = append(pts, r.Waypoints...)
		pts = append(pts, r.Waypoints.MidpointByLength())
	}
	return pts
}

// Compute returns the guides for node nodeID dragged to p. Each axis is
// checked on its own. When several candidates are in range the last one
// found is used.
func Compute(d cdtarget.Diagram, nodeID string, p geo.Point) Guides {
	return ComputeWithThreshold(d, nodeID, p, DEFAULT_THRESHOLD)
}

func ComputeWithThreshold(d cdtarget.Diagram, nodeID string, p geo.Point, threshold float64) Guides {
	var g Guides
	for _, c := range Candidates(d, nodeID) {
		if math.Abs(c.X-p.X) < threshold {
			g.X = go2.Pointer(c.X)
		}
		if math.Abs(c.Y-p.Y) < threshold {
			g.Y = go2.Pointer(c.Y)
		}
	}
	return g
}
