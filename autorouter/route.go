package autorouter

import (
	"math"

	"github.com/katalvlaran/boardrouter/astar"
	"github.com/katalvlaran/boardrouter/drawing"
	"github.com/katalvlaran/boardrouter/navmesh"
	"github.com/katalvlaran/boardrouter/pcbgraph"
	"github.com/katalvlaran/boardrouter/tracer"
)

// navGraph adapts *navmesh.Navmesh to astar.Graph[pcbgraph.Index].
type navGraph struct{ nav *navmesh.Navmesh }

func (g navGraph) Edges(node pcbgraph.Index) []astar.Edge[pcbgraph.Index] {
	edges := g.nav.Edges(node)
	out := make([]astar.Edge[pcbgraph.Index], len(edges))
	for i, e := range edges {
		out[i] = astar.Edge[pcbgraph.Index]{To: e.To, Cost: e.Length}
	}
	return out
}

// routeResult is the astar.Strategy result type for a single ratline:
// the band's registered first seg, once routed.
type routeResult struct {
	FirstSeg pcbgraph.Index
}

// navStrategy couples astar's frontier exploration to a real
// tracer.Tracer over the Drawing: every time the search settles on a
// frontier node (IsGoal is called once per pop, before its children are
// explored) the tracer is repositioned onto that node via ReworkPath,
// so the Drawing always reflects the path currently being expanded.
// EdgeCost probes a candidate child by stepping onto it and
// immediately stepping back — a real, committed cane construction
// followed by its rollback, with the actual forward commit deferred to
// the next IsGoal call that settles on that child. An edge onto the
// target is accepted without a probe: the band ends there through
// Finish rather than wrapping around it.
type navStrategy struct {
	d      *drawing.Drawing
	nav    *navmesh.Navmesh
	tr     *tracer.Tracer
	trace  *tracer.Trace
	width  float64
	target pcbgraph.Index
}

func (s *navStrategy) EstimateCost(node pcbgraph.Index) float64 {
	x1, y1 := s.nav.Position(node)
	x2, y2 := s.nav.Position(s.target)
	return math.Hypot(x2-x1, y2-y1)
}

func (s *navStrategy) EdgeCost(edge astar.Edge[pcbgraph.Index]) (float64, bool) {
	if edge.To == s.target {
		return edge.Cost, true
	}
	if err := s.tr.Step(s.trace, edge.To, s.width); err != nil {
		return 0, false
	}
	if err := s.tr.StepBack(s.trace); err != nil {
		return 0, false
	}
	return edge.Cost, true
}

func (s *navStrategy) IsGoal(node pcbgraph.Index, tracker *astar.PathTracker[pcbgraph.Index]) (routeResult, bool) {
	path := tracker.ReconstructPathTo(node)

	if node == s.target {
		lead := path[:len(path)-1]
		if err := s.tr.ReworkPath(s.trace, lead, s.width); err != nil {
			return routeResult{}, false
		}
		if _, err := s.tr.Finish(s.trace, s.target, s.width); err != nil {
			return routeResult{}, false
		}
		seg, ok := firstLooseSegFrom(s.d, s.trace)
		if !ok {
			return routeResult{}, false
		}
		return routeResult{FirstSeg: seg}, true
	}

	if err := s.tr.ReworkPath(s.trace, path, s.width); err != nil {
		return routeResult{}, false
	}
	return routeResult{}, false
}

// firstLooseSegFrom returns the band's first loose seg: the seg Joined
// to trace's source dot (trace.Path[0]).
func firstLooseSegFrom(d *drawing.Drawing, trace *tracer.Trace) (pcbgraph.Index, bool) {
	if len(trace.Path) == 0 {
		return 0, false
	}
	source := trace.Path[0]
	for _, n := range d.Graph().Neighbors(pcbgraph.Joined, source) {
		w, err := d.Graph().Weight(n)
		if err != nil {
			continue
		}
		if _, ok := w.(pcbgraph.SegWeight); ok {
			return n, true
		}
	}
	return 0, false
}
