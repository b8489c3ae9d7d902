package drawing

import "github.com/katalvlaran/boardrouter/pcbgraph"

// AddFixedDot inserts a FixedDot at pos with the given radius/layer/net.
// On an infringement the node is removed before returning so the Drawing
// is left exactly as it was before the call.
func (d *Drawing) AddFixedDot(pos pcbgraph.Point, radius float64, layer, net int) (pcbgraph.Index, error) {
	return d.addDot(pcbgraph.DotWeight{Pos: pos, Radius: radius, Layer: layer, Net: net, IsLoose: false}, nil)
}

// addDot is the shared dot-insertion path: construct, shape, check, unwind
// on failure, index on success. except additionally exempts the given
// indices (used by cane construction, which inserts a dot adjacent to
// nodes it is still in the process of wiring up).
func (d *Drawing) addDot(w pcbgraph.DotWeight, except []pcbgraph.Index) (pcbgraph.Index, error) {
	idx := d.graph.AddNode(w)
	shape, err := d.shapeOf(idx)
	if err != nil {
		d.graph.RemoveNode(idx)
		return 0, err
	}
	ex := exceptSet(except, idx)
	if offender, bad := d.detectInfringementExcept(shape, conditionsOf(w), ex); bad {
		d.graph.RemoveNode(idx)
		return 0, Infringement{Shape: shape, Offender: offender}
	}
	d.indexInsert(idx, shape)
	return idx, nil
}

// RemoveFixedDot deletes a fixed dot that has no incident edges (a bare
// pin or via pad, never a band endpoint still in use). Used to roll
// back a partially placed via stack and to tear one down later.
func (d *Drawing) RemoveFixedDot(idx pcbgraph.Index) error {
	shape, err := d.shapeOf(idx)
	if err != nil {
		return err
	}
	d.indexRemove(idx, shape)
	return d.graph.RemoveNode(idx)
}

// AddFixedSeg inserts a fixed straight segment between two already-live
// dots, wiring the two Joined edges it requires.
func (d *Drawing) AddFixedSeg(from, to pcbgraph.Index, width float64, layer, net int) (pcbgraph.Index, error) {
	return d.addSeg(pcbgraph.SegWeight{Width: width, Layer: layer, Net: net, IsLoose: false}, from, to, nil)
}

// AddLoneLooseSeg inserts a one-segment band joining two FixedDots.
func (d *Drawing) AddLoneLooseSeg(from, to pcbgraph.Index, width float64, layer, net int) (pcbgraph.Index, error) {
	return d.addSeg(pcbgraph.SegWeight{Width: width, Layer: layer, Net: net, IsLoose: true}, from, to, nil)
}

// AddSeqLooseSeg inserts a loose segment joining a band's current end to
// a newly created LooseDot, as part of a multi-cane band.
func (d *Drawing) AddSeqLooseSeg(from, to pcbgraph.Index, width float64, layer, net int) (pcbgraph.Index, error) {
	return d.addSeg(pcbgraph.SegWeight{Width: width, Layer: layer, Net: net, IsLoose: true}, from, to, []pcbgraph.Index{from, to})
}

func (d *Drawing) addSeg(w pcbgraph.SegWeight, from, to pcbgraph.Index, except []pcbgraph.Index) (pcbgraph.Index, error) {
	idx := d.graph.AddNode(w)
	if err := d.graph.AddEdge(pcbgraph.Joined, idx, from); err != nil {
		d.graph.RemoveNode(idx)
		return 0, err
	}
	if err := d.graph.AddEdge(pcbgraph.Joined, idx, to); err != nil {
		d.graph.RemoveEdge(pcbgraph.Joined, idx, from)
		d.graph.RemoveNode(idx)
		return 0, err
	}
	shape, err := d.shapeOf(idx)
	if err != nil {
		d.graph.RemoveNode(idx)
		return 0, err
	}
	ex := exceptSet(except, idx)
	if offender, bad := d.detectInfringementExcept(shape, conditionsOf(w), ex); bad {
		d.graph.RemoveNode(idx)
		return 0, Infringement{Shape: shape, Offender: offender}
	}
	d.indexInsert(idx, shape)
	return idx, nil
}

func exceptSet(extra []pcbgraph.Index, self pcbgraph.Index) map[pcbgraph.Index]bool {
	out := make(map[pcbgraph.Index]bool, len(extra)+1)
	out[self] = true
	for _, e := range extra {
		out[e] = true
	}
	return out
}
