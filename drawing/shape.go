package drawing

import (
	"fmt"

	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

func (d *Drawing) dotWeight(idx pcbgraph.Index) (pcbgraph.DotWeight, error) {
	w, err := d.graph.Weight(idx)
	if err != nil {
		return pcbgraph.DotWeight{}, err
	}
	dw, ok := w.(pcbgraph.DotWeight)
	if !ok {
		return pcbgraph.DotWeight{}, fmt.Errorf("drawing: primitive %d is not a dot", idx)
	}
	return dw, nil
}

func (d *Drawing) dotPos(idx pcbgraph.Index) (geometry.Point, error) {
	dw, err := d.dotWeight(idx)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: dw.Pos.X, Y: dw.Pos.Y}, nil
}

// joinedDots returns idx's Joined neighbors that are themselves dots,
// sorted by index for a deterministic from/to order.
func (d *Drawing) joinedDots(idx pcbgraph.Index) ([]pcbgraph.Index, error) {
	var out []pcbgraph.Index
	for _, n := range d.graph.Neighbors(pcbgraph.Joined, idx) {
		w, err := d.graph.Weight(n)
		if err != nil {
			return nil, err
		}
		if _, ok := w.(pcbgraph.DotWeight); ok {
			out = append(out, n)
		}
	}
	return out, nil
}

// shapeOf builds the current geometry.Shape for a live primitive idx.
func (d *Drawing) shapeOf(idx pcbgraph.Index) (geometry.Shape, error) {
	w, err := d.graph.Weight(idx)
	if err != nil {
		return nil, err
	}
	switch v := w.(type) {
	case pcbgraph.DotWeight:
		return geometry.NewDotShape(geometry.Point{X: v.Pos.X, Y: v.Pos.Y}, v.Radius, v.Layer), nil
	case pcbgraph.SegWeight:
		dots, err := d.joinedDots(idx)
		if err != nil || len(dots) != 2 {
			return nil, fmt.Errorf("drawing: seg %d does not have exactly two joined dots", idx)
		}
		from, err := d.dotPos(dots[0])
		if err != nil {
			return nil, err
		}
		to, err := d.dotPos(dots[1])
		if err != nil {
			return nil, err
		}
		return geometry.NewSegShape(from, to, v.Width, v.Layer), nil
	case pcbgraph.BendWeight:
		return d.bendShape(idx, v)
	}
	return nil, fmt.Errorf("drawing: primitive %d has unknown weight type", idx)
}

func (d *Drawing) bendShape(idx pcbgraph.Index, v pcbgraph.BendWeight) (geometry.BendShape, error) {
	dots, err := d.joinedDots(idx)
	if err != nil || len(dots) != 2 {
		return geometry.BendShape{}, fmt.Errorf("drawing: bend %d does not have exactly two joined dots", idx)
	}
	from, err := d.dotPos(dots[0])
	if err != nil {
		return geometry.BendShape{}, err
	}
	to, err := d.dotPos(dots[1])
	if err != nil {
		return geometry.BendShape{}, err
	}
	coreIdx, ok := d.graph.SoleNeighbor(pcbgraph.Core, idx)
	if !ok {
		return geometry.BendShape{}, fmt.Errorf("drawing: bend %d has no core", idx)
	}
	corePos, err := d.dotPos(coreIdx)
	if err != nil {
		return geometry.BendShape{}, err
	}
	return geometry.NewBendShape(from, to, geometry.Circle{Pos: corePos, R: v.InnerRadius}, v.Width, v.Layer), nil
}

// CoreOf returns the FixedDot/FixedBend a LooseBend wraps around.
func (d *Drawing) CoreOf(bend pcbgraph.Index) (pcbgraph.Index, bool) {
	return d.graph.SoleNeighbor(pcbgraph.Core, bend)
}

// OuterOf returns the next-outer bend sharing the same core as bend, if any.
func (d *Drawing) OuterOf(bend pcbgraph.Index) (pcbgraph.Index, bool) {
	return d.graph.SoleNeighbor(pcbgraph.Outer, bend)
}
