// Package drawing is the clearance-checked façade over the geometry
// graph: it owns a pcbgraph.Graph, an R-tree spatial index over the same
// nodes, and a Rules object, and is the only package allowed to mutate
// primitives directly. Every exported mutation is atomic: on failure the
// Drawing is left byte-identical to its pre-call state.
package drawing

import (
	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
	"github.com/katalvlaran/boardrouter/pcbgraph/rtree"
)

// Index aliases are re-exported so callers rarely need to import
// pcbgraph directly just to name a primitive.
type (
	Index     = pcbgraph.Index
	DotIndex  = pcbgraph.Index
	SegIndex  = pcbgraph.Index
	BendIndex = pcbgraph.Index
)

// Options configures a Drawing at construction time.
type Options struct {
	debugInvariants bool
}

// Option mutates Options.
type Option func(*Options)

// WithDebugInvariants sets the debugInvariants option. No Drawing
// operation reads it, so no extra invariant scan runs when it is set.
func WithDebugInvariants() Option {
	return func(o *Options) { o.debugInvariants = true }
}

// Drawing is the spatially-indexed primitive graph described by the data
// model: dots, segs and bends as pcbgraph nodes, clearance-checked via
// Rules and indexed in an rtree.Tree for proximity queries.
type Drawing struct {
	graph   *pcbgraph.Graph
	index   *rtree.Tree[pcbgraph.Index]
	rules   Rules
	options Options
}

// NewDrawing returns an empty Drawing governed by rules.
func NewDrawing(rules Rules, opts ...Option) *Drawing {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Drawing{
		graph:   pcbgraph.NewGraph(),
		index:   rtree.New[pcbgraph.Index](),
		rules:   rules,
		options: o,
	}
}

// Graph exposes the underlying geometry graph read-only consumers (board,
// navmesh) need for neighbor/edge iteration.
func (d *Drawing) Graph() *pcbgraph.Graph { return d.graph }

// Rules returns the clearance rule set this Drawing was built with.
func (d *Drawing) Rules() Rules { return d.rules }

func toRTreeBox(b geometry.BBox) rtree.BBox {
	return rtree.BBox{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

// PrimitiveShape returns the current geometry.Shape for idx.
func (d *Drawing) PrimitiveShape(idx pcbgraph.Index) (geometry.Shape, error) {
	return d.shapeOf(idx)
}

// conditionsOf derives clearance Conditions from a node's weight.
func conditionsOf(w pcbgraph.Weight) Conditions {
	switch v := w.(type) {
	case pcbgraph.DotWeight:
		return Conditions{Net: v.Net, Layer: v.Layer}
	case pcbgraph.SegWeight:
		return Conditions{Net: v.Net, Layer: v.Layer}
	case pcbgraph.BendWeight:
		return Conditions{Net: v.Net, Layer: v.Layer}
	}
	return Conditions{}
}

// areConnectable reports whether two primitives belong to the same
// non-empty net — such pairs are allowed to touch (a seg may legitimately
// end where another seg of its own net begins).
func areConnectable(a, b pcbgraph.Weight) bool {
	return a.NetID() != 0 && a.NetID() == b.NetID()
}
