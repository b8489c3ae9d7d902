package drawing

import (
	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// selfAndJoined returns idx plus its Joined neighbors, the standard
// exemption set for an infringement check: a primitive is never flagged
// as infringing on the very things it is attached to.
func (d *Drawing) selfAndJoined(idx pcbgraph.Index) map[pcbgraph.Index]bool {
	set := map[pcbgraph.Index]bool{idx: true}
	for _, n := range d.graph.Neighbors(pcbgraph.Joined, idx) {
		set[n] = true
	}
	return set
}

// MoveDot relocates dot to a new position, re-checking infringement on
// the dot itself and on every seg/bend joined to it (their shapes change
// when an endpoint moves). On failure the prior position is restored and
// the Drawing is left unchanged — the "old value on failure" rollback
// design note.
func (d *Drawing) MoveDot(dot pcbgraph.Index, to pcbgraph.Point) error {
	old, err := d.dotWeight(dot)
	if err != nil {
		return err
	}
	affected := append([]pcbgraph.Index{dot}, d.graph.Neighbors(pcbgraph.Joined, dot)...)
	oldShapes := make(map[pcbgraph.Index]geometry.Shape, len(affected))
	for _, idx := range affected {
		s, err := d.shapeOf(idx)
		if err != nil {
			return err
		}
		oldShapes[idx] = s
	}

	next := old
	next.Pos = to
	if err := d.graph.SetWeight(dot, next); err != nil {
		return err
	}

	if err := d.checkAffected(affected); err != nil {
		d.graph.SetWeight(dot, old)
		return err
	}

	for _, idx := range affected {
		newShape, _ := d.shapeOf(idx)
		d.indexUpdate(idx, oldShapes[idx], newShape)
	}
	return nil
}

// ShiftBend changes bend's offset (its radial gap over its inner rail or
// core), recomputing its drawn inner radius and re-checking infringement.
// On failure the prior offset/radius are restored.
func (d *Drawing) ShiftBend(bend pcbgraph.Index, offset float64) error {
	old, err := d.bendWeight(bend)
	if err != nil {
		return err
	}
	affected := append([]pcbgraph.Index{bend}, d.graph.Neighbors(pcbgraph.Joined, bend)...)
	oldShapes := make(map[pcbgraph.Index]geometry.Shape, len(affected))
	for _, idx := range affected {
		s, err := d.shapeOf(idx)
		if err != nil {
			return err
		}
		oldShapes[idx] = s
	}

	next := old
	next.InnerRadius = next.InnerRadius - next.Offset + offset
	next.Offset = offset
	if err := d.graph.SetWeight(bend, next); err != nil {
		return err
	}

	if err := d.checkAffected(affected); err != nil {
		d.graph.SetWeight(bend, old)
		return err
	}

	for _, idx := range affected {
		newShape, _ := d.shapeOf(idx)
		d.indexUpdate(idx, oldShapes[idx], newShape)
	}
	return nil
}

// checkAffected runs the infringement check on every index in affected,
// returning the first failure, if any, without mutating the index.
func (d *Drawing) checkAffected(affected []pcbgraph.Index) error {
	for _, idx := range affected {
		shape, err := d.shapeOf(idx)
		if err != nil {
			return err
		}
		w, err := d.graph.Weight(idx)
		if err != nil {
			return err
		}
		if offender, bad := d.detectInfringementExcept(shape, conditionsOf(w), d.selfAndJoined(idx)); bad {
			return Infringement{Shape: shape, Offender: offender}
		}
	}
	return nil
}
