// Package triangulation is a from-scratch incremental Delaunay
// triangulation over a dynamic, primitive-index-keyed vertex set (no
// Delaunay library appears anywhere in the example corpus; see
// DESIGN.md). It is the Go analogue of a `spade`-backed Delaunay graph:
// callers add vertices one at a time and query neighbors/edges exactly
// as a planar graph.
package triangulation

import (
	"sort"

	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// Edge is one undirected Delaunay edge, with its Euclidean length
// cached so callers (the navmesh's A* edge costing) don't recompute it.
type Edge struct {
	From, To pcbgraph.Index
	Length   float64
}

type vertex struct {
	idx pcbgraph.Index
	pos geometry.Point
}

// triangle names its three vertices by array index into verts.
type triangle struct{ a, b, c int }

// Triangulation holds a dynamic Delaunay vertex set keyed by primitive
// index, built incrementally by Bowyer-Watson.
type Triangulation struct {
	verts     []vertex
	indexOf   map[pcbgraph.Index]int
	triangles []triangle
	// super holds the three super-triangle vertex slots (indices into
	// verts) that bound every real point; they and any triangle
	// touching them are invisible to callers.
	super [3]int
}

// New returns an empty Triangulation. bound is the largest absolute
// coordinate the caller will insert (1000 when bound is not positive);
// the super-triangle's corners are placed 20*bound from the origin.
// Points outside the super-triangle are not triangulated correctly.
func New(bound float64) *Triangulation {
	if bound <= 0 {
		bound = 1000
	}
	m := bound * 20
	t := &Triangulation{indexOf: make(map[pcbgraph.Index]int)}
	t.verts = append(t.verts,
		vertex{pos: geometry.Point{X: -m, Y: -m}},
		vertex{pos: geometry.Point{X: 3 * m, Y: -m}},
		vertex{pos: geometry.Point{X: -m, Y: 3 * m}},
	)
	t.super = [3]int{0, 1, 2}
	t.triangles = []triangle{{0, 1, 2}}
	return t
}

// AddVertex inserts idx at pos. Inserting the same idx twice is a
// programmer error and is ignored (first position wins).
func (t *Triangulation) AddVertex(idx pcbgraph.Index, pos geometry.Point) {
	if _, exists := t.indexOf[idx]; exists {
		return
	}
	vi := len(t.verts)
	t.verts = append(t.verts, vertex{idx: idx, pos: pos})
	t.indexOf[idx] = vi
	t.insert(vi)
}

func (t *Triangulation) insert(vi int) {
	p := t.verts[vi].pos

	var bad []int
	for i, tr := range t.triangles {
		if t.inCircumcircle(tr, p) {
			bad = append(bad, i)
		}
	}

	edgeCount := make(map[[2]int]int)
	addEdge := func(a, b int) {
		key := orderedPair(a, b)
		edgeCount[key]++
	}
	badSet := make(map[int]bool, len(bad))
	for _, bi := range bad {
		badSet[bi] = true
		tr := t.triangles[bi]
		addEdge(tr.a, tr.b)
		addEdge(tr.b, tr.c)
		addEdge(tr.c, tr.a)
	}

	var boundary [][2]int
	for _, bi := range bad {
		tr := t.triangles[bi]
		for _, e := range [][2]int{{tr.a, tr.b}, {tr.b, tr.c}, {tr.c, tr.a}} {
			if edgeCount[orderedPair(e[0], e[1])] == 1 {
				boundary = append(boundary, e)
			}
		}
	}

	kept := t.triangles[:0]
	for i, tr := range t.triangles {
		if !badSet[i] {
			kept = append(kept, tr)
		}
	}
	t.triangles = kept

	for _, e := range boundary {
		t.triangles = append(t.triangles, triangle{e[0], e[1], vi})
	}
}

func orderedPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// inCircumcircle reports whether p lies inside tr's circumscribed circle.
func (t *Triangulation) inCircumcircle(tr triangle, p geometry.Point) bool {
	a, b, c := t.verts[tr.a].pos, t.verts[tr.b].pos, t.verts[tr.c].pos

	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	// Orientation of a,b,c determines the sign convention for "inside".
	orient := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if orient < 0 {
		det = -det
	}
	return det > 0
}

// isSuper reports whether vi names one of the bounding super-triangle's
// corners, which every real query must hide.
func (t *Triangulation) isSuper(vi int) bool {
	return vi == t.super[0] || vi == t.super[1] || vi == t.super[2]
}

// Neighbors returns, sorted, every vertex connected to idx by a
// Delaunay edge, excluding the invisible super-triangle corners.
func (t *Triangulation) Neighbors(idx pcbgraph.Index) []pcbgraph.Index {
	vi, ok := t.indexOf[idx]
	if !ok {
		return nil
	}
	seen := make(map[int]bool)
	for _, tr := range t.triangles {
		verts := [3]int{tr.a, tr.b, tr.c}
		has := false
		for _, v := range verts {
			if v == vi {
				has = true
				break
			}
		}
		if !has {
			continue
		}
		for _, v := range verts {
			if v != vi && !t.isSuper(v) {
				seen[v] = true
			}
		}
	}
	out := make([]pcbgraph.Index, 0, len(seen))
	for vi := range seen {
		out = append(out, t.verts[vi].idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edges returns every Delaunay edge not touching a super-triangle
// corner, each reported once (From < To by pcbgraph.Index ordering).
func (t *Triangulation) Edges() []Edge {
	seen := make(map[[2]int]bool)
	var out []Edge
	addEdge := func(x, y int) {
		if t.isSuper(x) || t.isSuper(y) {
			return
		}
		key := orderedPair(x, y)
		if seen[key] {
			return
		}
		seen[key] = true
		fromIdx, toIdx := t.verts[x].idx, t.verts[y].idx
		if toIdx < fromIdx {
			fromIdx, toIdx = toIdx, fromIdx
		}
		out = append(out, Edge{From: fromIdx, To: toIdx, Length: geometry.Dist(t.verts[x].pos, t.verts[y].pos)})
	}
	for _, tr := range t.triangles {
		addEdge(tr.a, tr.b)
		addEdge(tr.b, tr.c)
		addEdge(tr.c, tr.a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Position returns the point idx was inserted at.
func (t *Triangulation) Position(idx pcbgraph.Index) (geometry.Point, bool) {
	vi, ok := t.indexOf[idx]
	if !ok {
		return geometry.Point{}, false
	}
	return t.verts[vi].pos, true
}

// Len returns the number of real (non-super) vertices inserted so far.
func (t *Triangulation) Len() int { return len(t.verts) - 3 }
