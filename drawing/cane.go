package drawing

import (
	"math"

	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// InsertCane is the central composite operation: it extends head by
// wrapping a new bend around "around" (a FixedDot or an existing
// LooseBend rail), producing a Cane. On any intermediate failure the
// Drawing is left exactly as it was before the call — implemented as a
// small stack of undo actions unwound on error, per the design note
// ("Cane construction as a transaction").
func (d *Drawing) InsertCane(head Head, around pcbgraph.Index, width float64, cw bool, net, layer int) (Cane, Head, error) {
	headConditions := Conditions{Net: net, Layer: layer}

	aroundW, err := d.graph.Weight(around)
	if err != nil {
		return Cane{}, nil, err
	}
	if aroundW.NetID() != 0 && aroundW.NetID() == net {
		return Cane{}, nil, AlreadyConnected{Net: net, Offender: around}
	}

	guide := d.Guide()
	aroundIsBend := false
	if _, ok := aroundW.(pcbgraph.BendWeight); ok {
		aroundIsBend = true
	}

	var (
		tangent   geometry.TangentSegment
		offset    float64
		innerR    float64
		coreIdx   pcbgraph.Index
		innerRail pcbgraph.Index
		hasInner  bool
	)
	if aroundIsBend {
		offset, err = guide.HeadAroundBendOffset(headConditions, around)
		if err != nil {
			return Cane{}, nil, err
		}
		tangent, err = guide.HeadAroundBendSegment(head, around, cw, offset)
		if err != nil {
			return Cane{}, nil, err
		}
		pivot, _ := d.pivotCircle(around)
		innerR = pivot.R + offset
		coreIdx, _ = d.CoreOf(around)
		innerRail = around
		hasInner = true
	} else {
		offset, err = guide.HeadAroundDotOffset(headConditions, around)
		if err != nil {
			return Cane{}, nil, err
		}
		tangent, err = guide.HeadAroundDotSegment(head, around, cw, offset)
		if err != nil {
			return Cane{}, nil, err
		}
		dw := aroundW.(pcbgraph.DotWeight)
		innerR = dw.Radius + offset
		coreIdx = around
		hasInner = false
	}

	undo := newUndoStack()
	// removeIndexed drops a node added by this call together with its
	// spatial-index entry.
	removeIndexed := func(d *Drawing, idx pcbgraph.Index) {
		if s, err := d.shapeOf(idx); err == nil {
			d.indexRemove(idx, s)
		}
		d.graph.RemoveNode(idx)
	}

	if caneHead, ok := head.(CaneHead); ok {
		oldFace, err := d.dotWeight(caneHead.Face())
		if err != nil {
			return Cane{}, nil, err
		}
		if err := d.MoveDot(caneHead.Face(), pcbgraph.Point{X: tangent.From.X, Y: tangent.From.Y}); err != nil {
			return Cane{}, nil, err
		}
		// MoveDot rolls itself back when it fails; a later failure in this
		// call moves the face back to where it was through the undo stack.
		undo.push(func(d *Drawing) { d.MoveDot(caneHead.Face(), oldFace.Pos) })
	}

	junction, err := d.addDot(pcbgraph.DotWeight{Pos: pcbgraph.Point{X: tangent.To.X, Y: tangent.To.Y}, Radius: width / 2, Layer: layer, Net: net, IsLoose: true}, nil)
	if err != nil {
		undo.unwind(d)
		return Cane{}, nil, err
	}
	undo.push(func(d *Drawing) { removeIndexed(d, junction) })

	seg, err := d.AddSeqLooseSeg(head.Face(), junction, width, layer, net)
	if err != nil {
		undo.unwind(d)
		return Cane{}, nil, err
	}
	undo.push(func(d *Drawing) { removeIndexed(d, seg) })

	face, err := d.addDot(pcbgraph.DotWeight{Pos: pcbgraph.Point{X: tangent.To.X, Y: tangent.To.Y}, Radius: width / 2, Layer: layer, Net: net, IsLoose: true}, []pcbgraph.Index{junction})
	if err != nil {
		undo.unwind(d)
		return Cane{}, nil, err
	}
	undo.push(func(d *Drawing) { removeIndexed(d, face) })

	from, to := junction, face
	if !cw {
		from, to = face, junction
	}
	bend := d.graph.AddNode(pcbgraph.BendWeight{Offset: offset, InnerRadius: innerR, Width: width, Layer: layer, Net: net, Cw: cw, IsLoose: true})
	undo.push(func(d *Drawing) { d.graph.RemoveNode(bend) })
	if err := d.graph.AddEdge(pcbgraph.Joined, bend, from); err != nil {
		undo.unwind(d)
		return Cane{}, nil, err
	}
	if err := d.graph.AddEdge(pcbgraph.Joined, bend, to); err != nil {
		undo.unwind(d)
		return Cane{}, nil, err
	}
	if err := d.graph.AddEdge(pcbgraph.Core, bend, coreIdx); err != nil {
		undo.unwind(d)
		return Cane{}, nil, err
	}

	var oldOuter pcbgraph.Index
	hadOldOuter := false
	if hasInner {
		oldOuter, hadOldOuter = d.graph.SoleNeighbor(pcbgraph.Outer, innerRail)
		if hadOldOuter {
			undo.push(func(d *Drawing) { d.updateThisAndOutwardBows(oldOuter) })
			d.graph.RemoveEdge(pcbgraph.Outer, innerRail, oldOuter)
			undo.push(func(d *Drawing) { d.graph.AddEdge(pcbgraph.Outer, innerRail, oldOuter) })
			if err := d.graph.AddEdge(pcbgraph.Outer, bend, oldOuter); err != nil {
				undo.unwind(d)
				return Cane{}, nil, err
			}
			undo.push(func(d *Drawing) { d.graph.RemoveEdge(pcbgraph.Outer, bend, oldOuter) })
		}
		if err := d.graph.AddEdge(pcbgraph.Outer, innerRail, bend); err != nil {
			undo.unwind(d)
			return Cane{}, nil, err
		}
		undo.push(func(d *Drawing) { d.graph.RemoveEdge(pcbgraph.Outer, innerRail, bend) })
	}

	shape, err := d.shapeOf(bend)
	if err != nil {
		undo.unwind(d)
		return Cane{}, nil, err
	}
	if offender, bad := d.detectInfringementExcept(shape, Conditions{Net: net, Layer: layer}, d.selfAndJoined(bend)); bad {
		undo.unwind(d)
		return Cane{}, nil, Infringement{Shape: shape, Offender: offender}
	}
	d.indexInsert(bend, shape)
	undo.push(func(d *Drawing) { d.indexRemove(bend, shape) })

	if err := d.updateThisAndOutwardBows(bend); err != nil {
		undo.unwind(d)
		return Cane{}, nil, err
	}

	segShape, err := d.shapeOf(seg)
	if err == nil {
		if offender, bad := d.detectCollision(segShape, Conditions{Net: net, Layer: layer}, d.selfAndJoined(seg)); bad {
			undo.unwind(d)
			return Cane{}, nil, Collision{Shape: segShape, Offender: offender}
		}
	}

	cane := Cane{Seg: seg, Dot: face, Bend: bend}
	return cane, CaneHead{Cane: cane}, nil
}

// updateThisAndOutwardBows walks the Outer chain outward from bend,
// recomputing each rail's offset (via the clearance rule against its
// inner or core) and drawn radius, and repositioning its joints to stay
// at that radius around the shared core center.
func (d *Drawing) updateThisAndOutwardBows(bend pcbgraph.Index) error {
	cur := bend
	for {
		bw, err := d.bendWeight(cur)
		if err != nil {
			return err
		}
		coreIdx, ok := d.CoreOf(cur)
		if !ok {
			return ErrNotABend{Index: cur}
		}
		corePos, err := d.dotPos(coreIdx)
		if err != nil {
			return err
		}

		var pivot geometry.Circle
		var pivotConditions Conditions
		if inner, hasInner := d.graph.SoleInNeighbor(pcbgraph.Outer, cur); hasInner {
			pivot, err = d.pivotCircle(inner)
			if err != nil {
				return err
			}
			innerBw, _ := d.bendWeight(inner)
			pivotConditions = conditionsOf(innerBw)
		} else {
			coreW, err := d.dotWeight(coreIdx)
			if err != nil {
				return err
			}
			pivot = geometry.Circle{Pos: corePos, R: coreW.Radius}
			pivotConditions = conditionsOf(coreW)
		}

		newOffset := d.rules.Clearance(conditionsOf(bw), pivotConditions)
		newInnerRadius := pivot.R + newOffset

		bw.Offset = newOffset
		bw.InnerRadius = newInnerRadius
		if err := d.graph.SetWeight(cur, bw); err != nil {
			return err
		}

		for _, dIdx := range d.graph.Neighbors(pcbgraph.Joined, cur) {
			pos, err := d.dotPos(dIdx)
			if err != nil {
				return err
			}
			angle := math.Atan2(pos.Y-corePos.Y, pos.X-corePos.X)
			newPos := pcbgraph.Point{
				X: corePos.X + newInnerRadius*math.Cos(angle),
				Y: corePos.Y + newInnerRadius*math.Sin(angle),
			}
			if err := d.MoveDot(dIdx, newPos); err != nil {
				return err
			}
		}

		next, hasNext := d.graph.SoleNeighbor(pcbgraph.Outer, cur)
		if !hasNext {
			return nil
		}
		cur = next
	}
}

// undoStack is the small owned-steps unwind helper the design note
// calls for: each insert_cane sub-step pushes its own inverse, unwound
// in reverse order on any later failure.
type undoStack struct {
	actions []func(*Drawing)
}

func newUndoStack() *undoStack { return &undoStack{} }

func (u *undoStack) push(action func(*Drawing)) {
	u.actions = append(u.actions, action)
}

func (u *undoStack) unwind(d *Drawing) {
	for i := len(u.actions) - 1; i >= 0; i-- {
		u.actions[i](d)
	}
}
