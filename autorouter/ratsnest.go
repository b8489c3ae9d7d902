// Package autorouter drives per-ratline routing over a board.Board: it
// maintains the ratsnest (the minimum spanning tree of each net's
// FixedDots; zone apexes are not derived, so a zone takes part only
// through fixed dots already in the drawing), orders ratlines, and runs
// astar.Astar over a fresh navmesh.Navmesh per ratline.
package autorouter

import (
	"sort"

	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/pcbgraph"
	"github.com/katalvlaran/boardrouter/triangulation"
)

// Ratline is one unrouted connection the ratsnest produced: a candidate
// edge of some net's minimum spanning tree.
type Ratline struct {
	Net      int
	From, To pcbgraph.Index
}

// Ratsnest returns every net's minimum spanning tree over its
// FixedDots, as a flat, net-ordered list of ratlines. Already-joined
// endpoints (an existing band already connects them, directly or
// transitively) are dropped, since the ratsnest should never re-offer a
// connection that already exists.
func Ratsnest(b *board.Board) []Ratline {
	byNet := make(map[int][]pcbgraph.Index)
	for _, idx := range b.Drawing().Graph().Nodes() {
		w, err := b.Drawing().Graph().Weight(idx)
		if err != nil {
			continue
		}
		dw, ok := w.(pcbgraph.DotWeight)
		if !ok || dw.IsLoose || dw.Net == 0 {
			continue
		}
		byNet[dw.Net] = append(byNet[dw.Net], idx)
	}

	nets := make([]int, 0, len(byNet))
	for net := range byNet {
		nets = append(nets, net)
	}
	sort.Ints(nets)

	var out []Ratline
	for _, net := range nets {
		out = append(out, netRatsnest(b, net, byNet[net])...)
	}
	return out
}

func netRatsnest(b *board.Board, net int, dots []pcbgraph.Index) []Ratline {
	if len(dots) < 2 {
		return nil
	}

	bound := 1000.0
	for _, idx := range dots {
		shape, err := b.PrimitiveShape(idx)
		if err != nil {
			continue
		}
		c := shape.Center()
		for _, v := range []float64{c.X, c.Y} {
			if v < 0 {
				v = -v
			}
			if v > bound {
				bound = v
			}
		}
	}

	tri := triangulation.New(bound)
	for _, idx := range dots {
		shape, err := b.PrimitiveShape(idx)
		if err != nil {
			continue
		}
		tri.AddVertex(idx, shape.Center())
	}

	edges := tri.Edges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].Length < edges[j].Length })

	indexOf := make(map[pcbgraph.Index]int, len(dots))
	for i, idx := range dots {
		indexOf[idx] = i
	}
	uf := newUnionFind(len(dots))

	var ratlines []Ratline
	for _, e := range edges {
		fi, fok := indexOf[e.From]
		ti, tok := indexOf[e.To]
		if !fok || !tok {
			continue
		}
		if alreadyEquivalent(b, e.From, e.To) {
			uf.union(fi, ti)
			continue
		}
		if uf.union(fi, ti) {
			ratlines = append(ratlines, Ratline{Net: net, From: e.From, To: e.To})
		}
	}
	return ratlines
}

// alreadyEquivalent reports whether a and b are already connected by a
// routed band, so the ratsnest does not re-offer a connection that
// already exists.
func alreadyEquivalent(b *board.Board, a, to pcbgraph.Index) bool {
	_, err := b.BandLength(a, to)
	return err == nil
}
