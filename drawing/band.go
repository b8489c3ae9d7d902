package drawing

import "github.com/katalvlaran/boardrouter/pcbgraph"

// RemoveCane undoes the last InsertCane on a band: it removes cane's
// bend, seg, and both of its LooseDots, re-pointing the Outer chain
// around the removed bend so outward rails keep a valid inner
// reference. Callers are expected to remove canes in LIFO order (the
// tracer's own rollback discipline), since a non-terminal cane's face
// dot is also the next cane's seg anchor. It returns the dot the head
// retreats to — the seg's anchor on the far side from the cane.
func (d *Drawing) RemoveCane(cane Cane) (pcbgraph.Index, error) {
	bend := cane.Bend
	bendDots, err := d.joinedDots(bend)
	if err != nil || len(bendDots) != 2 {
		return 0, ErrNotABend{Index: bend}
	}
	segDots, err := d.joinedDots(cane.Seg)
	if err != nil || len(segDots) != 2 {
		return 0, ErrNotABend{Index: cane.Seg}
	}

	var junction, face pcbgraph.Index
	for _, bd := range bendDots {
		inSeg := bd == segDots[0] || bd == segDots[1]
		if inSeg {
			junction = bd
		} else {
			face = bd
		}
	}
	var origin pcbgraph.Index
	for _, sd := range segDots {
		if sd != junction {
			origin = sd
		}
	}

	inner, hasInner := d.graph.SoleInNeighbor(pcbgraph.Outer, bend)
	outer, hasOuter := d.graph.SoleNeighbor(pcbgraph.Outer, bend)
	if hasOuter {
		d.graph.RemoveEdge(pcbgraph.Outer, bend, outer)
	}
	if hasInner {
		d.graph.RemoveEdge(pcbgraph.Outer, inner, bend)
	}
	if hasInner && hasOuter {
		if err := d.graph.AddEdge(pcbgraph.Outer, inner, outer); err != nil {
			return 0, err
		}
	}

	for _, idx := range []pcbgraph.Index{bend, cane.Seg, junction, face} {
		if shape, err := d.shapeOf(idx); err == nil {
			d.indexRemove(idx, shape)
		}
		d.graph.RemoveNode(idx)
	}

	if hasOuter {
		if err := d.updateThisAndOutwardBows(outer); err != nil {
			return origin, err
		}
	}
	return origin, nil
}

// RemoveBand tears up an entire loose band given any one of its loose
// primitives: it walks the Joined graph collecting every loose dot,
// seg, and bend reachable without crossing a FixedDot/FixedSeg
// boundary, repairs the Outer chain around any removed bends, and
// deletes the collected primitives.
func (d *Drawing) RemoveBand(member pcbgraph.Index) error {
	members, err := d.looseComponent(member)
	if err != nil {
		return err
	}
	inBand := make(map[pcbgraph.Index]bool, len(members))
	for _, m := range members {
		inBand[m] = true
	}

	var cascades []pcbgraph.Index
	for _, idx := range members {
		w, err := d.graph.Weight(idx)
		if err != nil {
			continue
		}
		if _, ok := w.(pcbgraph.BendWeight); !ok {
			continue
		}
		inner, hasInner := d.graph.SoleInNeighbor(pcbgraph.Outer, idx)
		outer, hasOuter := d.graph.SoleNeighbor(pcbgraph.Outer, idx)
		if hasOuter {
			d.graph.RemoveEdge(pcbgraph.Outer, idx, outer)
		}
		if hasInner {
			d.graph.RemoveEdge(pcbgraph.Outer, inner, idx)
		}
		if hasInner && hasOuter && !inBand[inner] {
			if err := d.graph.AddEdge(pcbgraph.Outer, inner, outer); err != nil {
				return err
			}
		}
		if hasOuter && !inBand[outer] {
			cascades = append(cascades, outer)
		}
	}

	for _, idx := range members {
		if shape, err := d.shapeOf(idx); err == nil {
			d.indexRemove(idx, shape)
		}
		d.graph.RemoveNode(idx)
	}

	for _, c := range cascades {
		if err := d.updateThisAndOutwardBows(c); err != nil {
			return err
		}
	}
	return nil
}

// looseComponent returns every loose primitive reachable from start by
// walking Joined edges without stepping onto a fixed (non-loose)
// primitive.
func (d *Drawing) looseComponent(start pcbgraph.Index) ([]pcbgraph.Index, error) {
	startW, err := d.graph.Weight(start)
	if err != nil {
		return nil, err
	}
	if !startW.Loose() {
		return nil, ErrNotABend{Index: start}
	}

	visited := map[pcbgraph.Index]bool{start: true}
	queue := []pcbgraph.Index{start}
	order := []pcbgraph.Index{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range d.graph.Neighbors(pcbgraph.Joined, cur) {
			if visited[n] {
				continue
			}
			w, err := d.graph.Weight(n)
			if err != nil || !w.Loose() {
				continue
			}
			visited[n] = true
			order = append(order, n)
			queue = append(queue, n)
		}
	}
	return order, nil
}
