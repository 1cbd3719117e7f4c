// Package cdlib turns diagram JSON into a routed diagram ready for editing.
package cdlib

import (
	"context"
	"encoding/json"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"

	"github.com/piliotov/BDM-sub000/cdlayouts/cdforce"
	"github.com/piliotov/BDM-sub000/cdrouting"
	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/log"
)

type ImportOptions struct {
	// Layout configures auto-layout. nil means cdforce.DefaultOpts.
	Layout *cdforce.ConfigurableOpts
	// ForceLayout lays the diagram out even when it already has coordinates.
	ForceLayout bool
}

// Parse decodes a diagram and fills in default sizes. It does not drop
// dangling references.
func Parse(input []byte) (_ cdtarget.Diagram, err error) {
	defer xdefer.Errorf(&err, "failed to parse diagram")

	var d cdtarget.Diagram
	err = json.Unmarshal(input, &d)
	if err != nil {
		return cdtarget.Diagram{}, err
	}
	return d.Normalize(), nil
}

// Import parses input, drops relations that do not resolve, places the nodes
// when the diagram has no coordinates and routes every relation.
func Import(ctx context.Context, input []byte, opts *ImportOptions) (_ cdtarget.Diagram, err error) {
	defer xdefer.Errorf(&err, "failed to import diagram")
	if opts == nil {
		opts = &ImportOptions{}
	}

	d, err := Parse(input)
	if err != nil {
		return cdtarget.Diagram{}, err
	}
	return Prepare(ctx, d, opts), nil
}

// Prepare runs the import pipeline on an already decoded diagram.
func Prepare(ctx context.Context, d cdtarget.Diagram, opts *ImportOptions) cdtarget.Diagram {
	if opts == nil {
		opts = &ImportOptions{}
	}
	in := len(d.Relations)
	d = d.Normalize().Sanitize()
	if dropped := in - len(d.Relations); dropped > 0 {
		log.Warn(ctx, "dropped relations with missing nodes", slog.F("count", dropped))
	}

	if opts.ForceLayout || !d.HasCoordinates() {
		log.Debug(ctx, "laying out diagram", slog.F("nodes", len(d.Nodes)))
		d = cdforce.Layout(ctx, d, opts.Layout)
	}
	return cdrouting.RouteAll(d)
}

// Marshal encodes d in the format Parse reads.
func Marshal(d cdtarget.Diagram) []byte {
	return xjson.Marshal(d)
}
