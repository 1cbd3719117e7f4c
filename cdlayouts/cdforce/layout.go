// Package cdforce places the nodes of a diagram that has no coordinates yet.
//
// Nodes start evenly spaced on a circle and are then moved by soft repulsion
// between nodes that are too close, springs along relations and a weak pull
// toward the canvas center. A few passes of pairwise nudging clean up the
// overlaps that remain. The result is best effort: dense graphs can end up
// with residual overlaps.
package cdforce

import (
	"context"
	"math"
	"math/rand"

	"cdr.dev/slog"

	"github.com/piliotov/BDM-sub000/cdtarget"
	"github.com/piliotov/BDM-sub000/lib/geo"
	"github.com/piliotov/BDM-sub000/lib/go2"
	"github.com/piliotov/BDM-sub000/lib/log"
)

const (
	MIN_CIRCLE_RADIUS = 350.
	CIRCLE_JITTER     = 0.075

	SEPARATION_FACTOR = 2.2
	REPULSION_RATE    = 0.09
	SPRING_FACTOR     = 1.2
	SPRING_RATE       = 0.014
	CENTER_PULL       = 0.012

	OVERLAP_PASSES = 10
	// Nudged pairs are separated slightly past the minimum so that a later
	// nudge in the same pass does not push them back into overlap.
	NUDGE_SLACK = 1.02
)

type ConfigurableOpts struct {
	Iterations   int     `json:"iterations"`
	CanvasWidth  float64 `json:"canvasWidth"`
	CanvasHeight float64 `json:"canvasHeight"`
	// Padding is where the smallest node center ends up on both axes.
	Padding float64 `json:"padding"`
	Seed    int64   `json:"seed"`
}

var DefaultOpts = ConfigurableOpts{
	Iterations:   900,
	CanvasWidth:  3200,
	CanvasHeight: 2400,
	Padding:      100,
	Seed:         1,
}

// NodeRadius is half the diagonal of the largest node.
func NodeRadius(nodes []cdtarget.Node) float64 {
	r := math.Hypot(cdtarget.DEFAULT_NODE_WIDTH, cdtarget.DEFAULT_NODE_HEIGHT) / 2
	for _, n := range nodes {
		r = go2.Max(r, math.Hypot(n.Width, n.Height)/2)
	}
	return r
}

// MinSeparation is the center distance below which two nodes repel.
func MinSeparation(nodes []cdtarget.Node) float64 {
	return SEPARATION_FACTOR * NodeRadius(nodes)
}

type spring struct {
	a, b int
}

type layout struct {
	opts   *ConfigurableOpts
	pos    []geo.Point
	disp   []geo.Point
	center geo.Point
	radius float64
	minSep float64
	ideal  float64
}

// Layout returns d with every node repositioned. Relations are left as they
// are; route them against the new positions afterwards.
//
// If ctx is canceled the iterations stop early and the positions reached so
// far are post-processed as usual.
func Layout(ctx context.Context, d cdtarget.Diagram, opts *ConfigurableOpts) cdtarget.Diagram {
	if opts == nil {
		opts = &DefaultOpts
	}
	out := d.Copy()
	n := len(out.Nodes)
	if n == 0 {
		return out
	}

	l := &layout{
		opts:   opts,
		pos:    make([]geo.Point, n),
		disp:   make([]geo.Point, n),
		center: geo.NewPoint(opts.CanvasWidth/2, opts.CanvasHeight/2),
		radius: NodeRadius(out.Nodes),
		minSep: MinSeparation(out.Nodes),
		ideal:  math.Sqrt(opts.CanvasWidth*opts.CanvasHeight/float64(n)) * SPRING_FACTOR,
	}
	springs := collectSprings(out)

	log.Debug(ctx, "force layout",
		slog.F("nodes", n),
		slog.F("springs", len(springs)),
		slog.F("iterations", opts.Iterations),
		slog.F("min_separation", l.minSep),
	)

	l.initCircle(rand.New(rand.NewSource(opts.Seed)))
	it := 0
	for ; it < opts.Iterations; it++ {
		if ctx.Err() != nil {
			log.Warn(ctx, "force layout interrupted", slog.F("iteration", it), slog.Error(ctx.Err()))
			break
		}
		l.step(springs)
	}
	l.resolveOverlaps()
	l.clamp()
	l.normalize()

	if residual := l.overlaps(); residual > 0 {
		log.Debug(ctx, "force layout left overlapping nodes", slog.F("pairs", residual))
	}

	for i := range out.Nodes {
		out.Nodes[i] = out.Nodes[i].MoveTo(l.pos[i])
	}
	return out
}

// collectSprings connects the endpoints of every binary relation and every
// pair of activities of an n-ary relation.
func collectSprings(d cdtarget.Diagram) []spring {
	idx := d.NodeIndex()
	var springs []spring
	add := func(a, b string) {
		i, ok1 := idx[a]
		j, ok2 := idx[b]
		if ok1 && ok2 && i != j {
			springs = append(springs, spring{i, j})
		}
	}
	for _, r := range d.Relations {
		if !r.IsNary() {
			add(r.SourceID, r.TargetID)
			continue
		}
		for i := 0; i < len(r.Activities); i++ {
			for j := i + 1; j < len(r.Activities); j++ {
				add(r.Activities[i], r.Activities[j])
			}
		}
	}
	return springs
}

func (l *layout) initCircle(rng *rand.Rand) {
	n := len(l.pos)
	r := go2.Max(MIN_CIRCLE_RADIUS, 400+10*float64(n))
	for i := range l.pos {
		angle := 2 * math.Pi * float64(i) / float64(n)
		jitter := 1 + (rng.Float64()*2-1)*CIRCLE_JITTER
		l.pos[i] = geo.NewPoint(
			l.center.X+r*jitter*math.Cos(angle),
			l.center.Y+r*jitter*math.Sin(angle),
		)
	}
}

// direction returns the unit vector from b to a and their distance.
// Coincident points are separated along an arbitrary but fixed axis.
func direction(a, b geo.Point, i int) (geo.Point, float64) {
	dx, dy := a.X-b.X, a.Y-b.Y
	dist := math.Hypot(dx, dy)
	if dist < geo.Epsilon {
		angle := float64(i)
		return geo.NewPoint(math.Cos(angle), math.Sin(angle)), 0
	}
	return geo.NewPoint(dx/dist, dy/dist), dist
}

func (l *layout) step(springs []spring) {
	for i := range l.disp {
		l.disp[i] = geo.Point{}
	}

	for i := 0; i < len(l.pos); i++ {
		for j := i + 1; j < len(l.pos); j++ {
			u, dist := direction(l.pos[i], l.pos[j], i+j)
			if dist >= l.minSep {
				continue
			}
			push := (l.minSep - dist) * REPULSION_RATE
			l.disp[i] = l.disp[i].Translate(u.Scale(push))
			l.disp[j] = l.disp[j].Translate(u.Scale(-push))
		}
	}

	for _, s := range springs {
		u, dist := direction(l.pos[s.b], l.pos[s.a], s.a+s.b)
		// positive pulls the endpoints together, negative pushes them apart
		f := (dist - l.ideal) * SPRING_RATE / 2
		l.disp[s.a] = l.disp[s.a].Translate(u.Scale(f))
		l.disp[s.b] = l.disp[s.b].Translate(u.Scale(-f))
	}

	for i := range l.pos {
		p := l.pos[i].Translate(l.disp[i])
		l.pos[i] = p.Translate(l.center.Sub(p).Scale(CENTER_PULL))
	}
}

func (l *layout) resolveOverlaps() {
	for pass := 0; pass < OVERLAP_PASSES; pass++ {
		moved := false
		for i := 0; i < len(l.pos); i++ {
			for j := i + 1; j < len(l.pos); j++ {
				u, dist := direction(l.pos[i], l.pos[j], i+j)
				if dist >= l.minSep {
					continue
				}
				half := (l.minSep*NUDGE_SLACK - dist) / 2
				l.pos[i] = l.pos[i].Translate(u.Scale(half))
				l.pos[j] = l.pos[j].Translate(u.Scale(-half))
				moved = true
			}
		}
		if !moved {
			return
		}
	}
}

func (l *layout) clamp() {
	for i, p := range l.pos {
		l.pos[i] = geo.NewPoint(
			go2.Min(go2.Max(p.X, l.radius), l.opts.CanvasWidth-l.radius),
			go2.Min(go2.Max(p.Y, l.radius), l.opts.CanvasHeight-l.radius),
		)
	}
}

func (l *layout) normalize() {
	minX, minY := math.Inf(1), math.Inf(1)
	for _, p := range l.pos {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}
	delta := geo.NewPoint(l.opts.Padding-minX, l.opts.Padding-minY)
	for i := range l.pos {
		l.pos[i] = l.pos[i].Translate(delta)
	}
}

func (l *layout) overlaps() int {
	count := 0
	for i := 0; i < len(l.pos); i++ {
		for j := i + 1; j < len(l.pos); j++ {
			if l.pos[i].DistanceTo(l.pos[j]) < l.minSep-geo.Epsilon {
				count++
			}
		}
	}
	return count
}
