package drawing

import (
	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// locatePossibleInfringers returns every indexed primitive whose bbox
// overlaps shape once shape is inflated by the largest clearance net
// could possibly require — a conservative R-tree prefilter refined by an
// exact intersects() check in the caller, mirroring
// find_infringement/locate_possible_infringers in the reference drawing.
func (d *Drawing) locatePossibleInfringers(shape geometry.Shape, net int) []pcbgraph.Index {
	margin := d.rules.LargestClearance(net)
	box := toRTreeBox(shape.Inflate(margin).BBox())
	return d.index.Search(box)
}

// detectInfringementExcept reports the first indexed primitive (other
// than those in except) on the same layer, with a distinct or absent
// net, whose shape intersects shape once inflated by the pairwise
// clearance rule.
func (d *Drawing) detectInfringementExcept(shape geometry.Shape, conditions Conditions, except map[pcbgraph.Index]bool) (pcbgraph.Index, bool) {
	for _, cand := range d.locatePossibleInfringers(shape, conditions.Net) {
		if except[cand] {
			continue
		}
		w, err := d.graph.Weight(cand)
		if err != nil {
			continue
		}
		cc := conditionsOf(w)
		if cc.Layer != conditions.Layer {
			continue
		}
		if cc.Net != 0 && cc.Net == conditions.Net {
			continue // connectable: handled by detectCollision, not infringement
		}
		candShape, err := d.shapeOf(cand)
		if err != nil {
			continue
		}
		clearance := d.rules.Clearance(conditions, cc)
		if geometry.Intersects(shape, candShape.Inflate(clearance)) {
			return cand, true
		}
	}
	return 0, false
}

// detectCollision reports the first connectable (same-net) primitive,
// other than those in except, whose raw shape still overlaps shape.
// Only called for loose segs after the rail-update cascade.
func (d *Drawing) detectCollision(shape geometry.Shape, conditions Conditions, except map[pcbgraph.Index]bool) (pcbgraph.Index, bool) {
	for _, cand := range d.locatePossibleInfringers(shape, conditions.Net) {
		if except[cand] {
			continue
		}
		w, err := d.graph.Weight(cand)
		if err != nil {
			continue
		}
		cc := conditionsOf(w)
		if cc.Layer != conditions.Layer || cc.Net == 0 || cc.Net != conditions.Net {
			continue
		}
		candShape, err := d.shapeOf(cand)
		if err != nil {
			continue
		}
		if geometry.Intersects(shape, candShape) {
			return cand, true
		}
	}
	return 0, false
}

// indexInsert adds idx to the spatial index using its current shape.
func (d *Drawing) indexInsert(idx pcbgraph.Index, shape geometry.Shape) {
	d.index.Insert(toRTreeBox(shape.BBox()), idx)
}

// indexRemove removes idx's entry from the spatial index.
func (d *Drawing) indexRemove(idx pcbgraph.Index, shape geometry.Shape) {
	d.index.Remove(toRTreeBox(shape.BBox()), func(v pcbgraph.Index) bool { return v == idx })
}

// indexUpdate repositions idx's spatial-index entry after its shape changed.
func (d *Drawing) indexUpdate(idx pcbgraph.Index, oldShape, newShape geometry.Shape) {
	d.indexRemove(idx, oldShape)
	d.indexInsert(idx, newShape)
}
