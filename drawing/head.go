package drawing

import "github.com/katalvlaran/boardrouter/pcbgraph"

// Head is the tracer's current frontier, a closed two-case interface
// mirroring the data model: BareHead (anchored at a FixedDot, no cane
// yet) or CaneHead (anchored at the last LooseDot of the last cane).
type Head interface {
	// Face returns the dot the head currently ends at.
	Face() pcbgraph.Index
	isHead()
}

// BareHead is a head that has not yet wrapped around anything.
type BareHead struct {
	Dot pcbgraph.Index
}

func (h BareHead) Face() pcbgraph.Index { return h.Dot }
func (BareHead) isHead()                {}

// Cane is the (SeqLooseSeg, LooseDot, LooseBend) triple InsertCane
// produces atomically. Dot is the cane's face — the bend's outward
// joint and the new head frontier; the seg's near-side junction dot is
// not named here since it is always recoverable by walking Seg's Joined
// neighbors, matching the original's three-element tuple.
type Cane struct {
	Seg  pcbgraph.Index
	Dot  pcbgraph.Index
	Bend pcbgraph.Index
}

// CaneHead is a head that ends at the given cane's face LooseDot.
type CaneHead struct {
	Cane Cane
}

func (h CaneHead) Face() pcbgraph.Index { return h.Cane.Dot }
func (CaneHead) isHead()                {}

// HeadAt reconstructs the Head a tracer should resume from at dot: Bare
// if dot has no incident LooseBend, or Cane (rebuilding the Seg/Bend
// pair from dot's Joined neighbors) if it does. Used by StepBack to
// recover the head one cane back without the caller needing to keep
// its own stack of prior heads.
func (d *Drawing) HeadAt(dot pcbgraph.Index) (Head, error) {
	var bend pcbgraph.Index
	hasBend := false
	for _, n := range d.graph.Neighbors(pcbgraph.Joined, dot) {
		w, err := d.graph.Weight(n)
		if err != nil {
			continue
		}
		if _, ok := w.(pcbgraph.BendWeight); ok {
			bend = n
			hasBend = true
			break
		}
	}
	if !hasBend {
		return BareHead{Dot: dot}, nil
	}
	for _, n := range d.graph.Neighbors(pcbgraph.Joined, dot) {
		w, err := d.graph.Weight(n)
		if err != nil {
			continue
		}
		if _, ok := w.(pcbgraph.SegWeight); ok {
			return CaneHead{Cane: Cane{Seg: n, Dot: dot, Bend: bend}}, nil
		}
	}
	return BareHead{Dot: dot}, nil
}
