// Package cdoracle applies editing intents to a diagram.
//
// Every edit returns a new diagram. The host keeps the result together with
// the returned State and hands both back on the next intent.
package cdoracle

import (
	"oss.terrastruct.com/xrand"

	"github.com/piliotov/BDM-sub000/cdrouting"
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/go2"
)

// DeleteNode removes node id. Binary relations referencing it are removed. It
// is dropped from the activities of n-ary relations, which are removed once
// they have no activities left.
func DeleteNode(d cdtarget.Diagram, id string) (cdtarget.Diagram, bool) {
	i, ok := d.NodeIndex()[id]
	if !ok {
		return d, false
	}
	out := d.Copy()
	out.Nodes = append(out.Nodes[:i], out.Nodes[i+1:]...)

	relations := make([]cdtarget.Relation, 0, len(out.Relations))
	for _, r := range out.Relations {
		if !r.Touches(id) {
			relations = append(relations, r)
			continue
		}
		if !r.IsNary() {
			continue
		}
		kept := go2.Filter(r.Activities, func(a string) bool {
			return a != id
		})
		if len(kept) == 0 {
			continue
		}
		r.Activities = kept
		relations = append(relations, r)
	}
	out.Relations = relations
	return out, true
}

func DeleteRelation(d cdtarget.Diagram, id string) (cdtarget.Diagram, bool) {
	_, i := d.FindRelation(id)
	if i < 0 {
		return d, false
	}
	out := d.Copy()
	out.Relations = append(out.Relations[:i], out.Relations[i+1:]...)
	return out, true
}

// NewRelationID returns a fresh relation id.
func NewRelationID() string {
	return "relation_" + xrand.Base64(12)
}

// Connect adds a routed relation of type t from src to dst. Both nodes must
// exist and be distinct.
func Connect(d cdtarget.Diagram, src, dst string, t cdtarget.RelationType) (_ cdtarget.Diagram, id string, ok bool) {
	if src == dst {
		return d, "", false
	}
	if _, ok := d.FindNode(src); !ok {
		return d, "", false
	}
	if _, ok := d.FindNode(dst); !ok {
		return d, "", false
	}
	if t == "" {
		t = cdtarget.Response
	}
	id = NewRelationID()
	r := cdrouting.RouteRelation(d, cdtarget.Relation{
		ID:       id,
		Type:     t,
		SourceID: src,
		TargetID: dst,
	})
	out := d.Copy()
	out.Relations = append(out.Relations, r)
	return out, id, true
}
