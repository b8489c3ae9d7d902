// Package navmesh builds the A*-searchable graph a single route request
// runs over: one trianvertex per competing fixed dot (every FixedDot
// on the route's layer that isn't on the route's own net), with every
// existing loose rail (LooseBend) on that layer attached to the
// trianvertex of the core it wraps, and edges expanded as the
// Cartesian product of each trianvertex's rails — so a path can step
// onto or off of any rail at no extra cost.
package navmesh

import (
	"github.com/katalvlaran/boardrouter/drawing"
	"github.com/katalvlaran/boardrouter/pcbgraph"
	"github.com/katalvlaran/boardrouter/triangulation"
)

// Edge is one navmesh edge: a concrete (from, to) pair of navvertices
// a caller can route over, with the underlying Delaunay edge length
// available for cost estimation.
type Edge struct {
	From, To pcbgraph.Index
	Length   float64
}

// Navmesh is a single route request's search graph.
type Navmesh struct {
	tri            *triangulation.Triangulation
	rails          map[pcbgraph.Index][]pcbgraph.Index // trianvertex -> rails attached to it
	navToTrian     map[pcbgraph.Index]pcbgraph.Index   // LooseBend -> the trianvertex of its core
	source, target pcbgraph.Index
}

// Build constructs a Navmesh for routing from source to target, both
// FixedDots, over d. Every FixedDot on source's layer other than
// source/target that does not belong to source's net becomes a
// trianvertex; fixed bends are not added. Every LooseBend on that layer
// is attached as a rail to its core's trianvertex.
func Build(d *drawing.Drawing, source, target pcbgraph.Index) (*Navmesh, error) {
	sourceW, err := d.Graph().Weight(source)
	if err != nil {
		return nil, err
	}
	layer := weightLayer(sourceW)
	net := sourceW.NetID()

	nm := &Navmesh{
		tri:        triangulation.New(boundFor(d)),
		rails:      make(map[pcbgraph.Index][]pcbgraph.Index),
		navToTrian: make(map[pcbgraph.Index]pcbgraph.Index),
		source:     source,
		target:     target,
	}

	for _, idx := range d.Graph().Nodes() {
		w, err := d.Graph().Weight(idx)
		if err != nil {
			continue
		}
		if weightLayer(w) != layer {
			continue
		}
		switch w.(type) {
		case pcbgraph.DotWeight:
			if w.Loose() {
				continue
			}
			if idx != source && idx != target && w.NetID() == net {
				continue
			}
			shape, err := d.PrimitiveShape(idx)
			if err != nil {
				continue
			}
			nm.tri.AddVertex(idx, shape.Center())
		}
	}

	for _, idx := range d.Graph().Nodes() {
		w, err := d.Graph().Weight(idx)
		if err != nil {
			continue
		}
		bw, ok := w.(pcbgraph.BendWeight)
		if !ok || !bw.IsLoose || weightLayer(w) != layer {
			continue
		}
		core, ok := d.CoreOf(idx)
		if !ok {
			continue
		}
		nm.rails[core] = append(nm.rails[core], idx)
		nm.navToTrian[idx] = core
	}

	return nm, nil
}

func weightLayer(w pcbgraph.Weight) int {
	switch v := w.(type) {
	case pcbgraph.DotWeight:
		return v.Layer
	case pcbgraph.SegWeight:
		return v.Layer
	case pcbgraph.BendWeight:
		return v.Layer
	}
	return 0
}

func boundFor(d *drawing.Drawing) float64 {
	bound := 1000.0
	for _, idx := range d.Graph().Nodes() {
		shape, err := d.PrimitiveShape(idx)
		if err != nil {
			continue
		}
		b := shape.BBox()
		for _, v := range []float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
			if v < 0 {
				v = -v
			}
			if v > bound {
				bound = v
			}
		}
	}
	return bound
}

// Source returns the route's starting FixedDot.
func (n *Navmesh) Source() pcbgraph.Index { return n.source }

// Target returns the route's destination FixedDot.
func (n *Navmesh) Target() pcbgraph.Index { return n.target }

// trianOf resolves any navvertex (a trianvertex itself or one of its
// rails) to the trianvertex driving its Delaunay neighborhood.
func (n *Navmesh) trianOf(vertex pcbgraph.Index) pcbgraph.Index {
	if t, ok := n.navToTrian[vertex]; ok {
		return t
	}
	return vertex
}

// expand turns a single trianvertex into itself plus every rail
// attached to it — the set of concrete navvertices a path may occupy
// at that location.
func (n *Navmesh) expand(trian pcbgraph.Index) []pcbgraph.Index {
	out := append([]pcbgraph.Index{trian}, n.rails[trian]...)
	return out
}

// Neighbors returns every navvertex reachable from vertex in one hop:
// the Cartesian product of vertex's own rail set (trivial, itself) and
// each Delaunay-adjacent trianvertex's rail set.
func (n *Navmesh) Neighbors(vertex pcbgraph.Index) []pcbgraph.Index {
	trian := n.trianOf(vertex)
	var out []pcbgraph.Index
	for _, adj := range n.tri.Neighbors(trian) {
		out = append(out, n.expand(adj)...)
	}
	return out
}

// Edges returns every navmesh edge leaving vertex, Cartesian-expanded
// over both endpoints' rails, with Length taken from the underlying
// Delaunay edge (rails at the same trianvertex share its position).
func (n *Navmesh) Edges(vertex pcbgraph.Index) []Edge {
	trian := n.trianOf(vertex)
	var out []Edge
	for _, e := range n.tri.Edges() {
		var other pcbgraph.Index
		switch {
		case e.From == trian:
			other = e.To
		case e.To == trian:
			other = e.From
		default:
			continue
		}
		for _, to := range n.expand(other) {
			out = append(out, Edge{From: vertex, To: to, Length: e.Length})
		}
	}
	return out
}

// Position returns the coordinate a navvertex occupies for cost
// estimation: its trianvertex's Delaunay position.
func (n *Navmesh) Position(vertex pcbgraph.Index) (float64, float64) {
	pos, ok := n.tri.Position(n.trianOf(vertex))
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}
