// Package rtree is a small generic bounding-box R-tree used by the
// drawing package to answer "what primitives sit near this shape"
// queries without a full scan of the board.
//
// No R-tree library appears anywhere in the retrieved reference material
// with actual call sites to ground an API against — a go.mod manifest
// names github.com/tidwall/rtree but ships no source using it — so this
// is hand-rolled, in the style of this corpus's other hand-rolled indexed
// structures (a union-find over dense integer indices, a radix-trie node
// table). It trades the asymptotic guarantees of a balanced R*-tree for a
// simple, obviously-correct linear-split structure: fine for a board with
// thousands, not millions, of primitives.
package rtree

import "math"

// BBox is an axis-aligned bounding box, duplicated from geometry.BBox's
// shape so this package has no dependency on geometry — it indexes
// whatever box the caller passes to Insert.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b BBox) union(o BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

func (b BBox) overlaps(o BBox) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

func (b BBox) area() float64 {
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY
	if w < 0 || h < 0 {
		return 0
	}
	return w * h
}

func (b BBox) enlargement(o BBox) float64 {
	return b.union(o).area() - b.area()
}

const maxEntries = 8

type entry[T any] struct {
	box   BBox
	value T
	leaf  *leaf[T]
}

// leaf holds the actual indexed values; a non-leaf node's entries point
// at child leaves directly since this tree never grows past two levels —
// adequate for the item counts a single board's working set produces.
type leaf[T any] struct {
	items []entry[T]
}

// Tree is a bounding-box index over values of type T.
type Tree[T any] struct {
	leaves []*leaf[T]
}

// New returns an empty Tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Insert adds value under box.
func (t *Tree[T]) Insert(box BBox, value T) {
	l := t.chooseLeaf(box)
	l.items = append(l.items, entry[T]{box: box, value: value})
	if len(l.items) > maxEntries {
		t.split(l)
	}
}

func (t *Tree[T]) chooseLeaf(box BBox) *leaf[T] {
	if len(t.leaves) == 0 {
		l := &leaf[T]{}
		t.leaves = append(t.leaves, l)
		return l
	}
	best := t.leaves[0]
	bestCost := best.bbox().enlargement(box)
	for _, l := range t.leaves[1:] {
		cost := l.bbox().enlargement(box)
		if cost < bestCost {
			best, bestCost = l, cost
		}
	}
	return best
}

func (l *leaf[T]) bbox() BBox {
	if len(l.items) == 0 {
		return BBox{}
	}
	box := l.items[0].box
	for _, it := range l.items[1:] {
		box = box.union(it.box)
	}
	return box
}

// split breaks an overfull leaf into two: the two entries whose centers
// lie farthest apart seed the halves, and every other entry joins the
// half whose box it enlarges least.
func (t *Tree[T]) split(l *leaf[T]) {
	items := l.items
	// pick seeds: the two entries farthest apart by center distance.
	var bestI, bestJ int
	bestDist := -1.0
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			d := centerDist(items[i].box, items[j].box)
			if d > bestDist {
				bestDist, bestI, bestJ = d, i, j
			}
		}
	}
	a := &leaf[T]{items: []entry[T]{items[bestI]}}
	b := &leaf[T]{items: []entry[T]{items[bestJ]}}
	for i, it := range items {
		if i == bestI || i == bestJ {
			continue
		}
		if a.bbox().enlargement(it.box) <= b.bbox().enlargement(it.box) {
			a.items = append(a.items, it)
		} else {
			b.items = append(b.items, it)
		}
	}
	// replace l in place with a, append b.
	for i, cur := range t.leaves {
		if cur == l {
			t.leaves[i] = a
			break
		}
	}
	t.leaves = append(t.leaves, b)
}

func centerDist(a, b BBox) float64 {
	acx, acy := (a.MinX+a.MaxX)/2, (a.MinY+a.MaxY)/2
	bcx, bcy := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	dx, dy := acx-bcx, acy-bcy
	return dx*dx + dy*dy
}

// Remove deletes the first value found whose stored box equals box and
// which eq reports as equal. Returns true if something was removed.
func (t *Tree[T]) Remove(box BBox, eq func(T) bool) bool {
	for _, l := range t.leaves {
		for i, it := range l.items {
			if it.box == box && eq(it.value) {
				l.items = append(l.items[:i], l.items[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Search returns every value whose stored box overlaps box.
func (t *Tree[T]) Search(box BBox) []T {
	var out []T
	for _, l := range t.leaves {
		if !l.bbox().overlaps(box) {
			continue
		}
		for _, it := range l.items {
			if it.box.overlaps(box) {
				out = append(out, it.value)
			}
		}
	}
	return out
}

// Len returns the number of indexed values.
func (t *Tree[T]) Len() int {
	n := 0
	for _, l := range t.leaves {
		n += len(l.items)
	}
	return n
}

// All returns every indexed value, in no particular order.
func (t *Tree[T]) All() []T {
	out := make([]T, 0, t.Len())
	for _, l := range t.leaves {
		for _, it := range l.items {
			out = append(out, it.value)
		}
	}
	return out
}
