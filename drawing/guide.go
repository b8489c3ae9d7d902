package drawing

import (
	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// Guide is a read-only helper producing tangent lines between the
// current head and a wrap target: it never mutates the Drawing, only
// reads shapes and clearance rules.
type Guide struct {
	d *Drawing
}

// Guide returns a Guide bound to d.
func (d *Drawing) Guide() Guide { return Guide{d: d} }

func (d *Drawing) bendWeight(idx pcbgraph.Index) (pcbgraph.BendWeight, error) {
	w, err := d.graph.Weight(idx)
	if err != nil {
		return pcbgraph.BendWeight{}, err
	}
	bw, ok := w.(pcbgraph.BendWeight)
	if !ok {
		return pcbgraph.BendWeight{}, ErrNotABend{Index: idx}
	}
	return bw, nil
}

// ErrNotABend is returned when a bend-only operation is given an index
// that does not name a bend node.
type ErrNotABend struct{ Index pcbgraph.Index }

func (e ErrNotABend) Error() string { return "drawing: not a bend" }

// pivotCircle returns the circle a bend is bowed around: centered at its
// core, radius equal to its own drawn centreline radius
// (InnerRadius + Width/2).
func (d *Drawing) pivotCircle(bend pcbgraph.Index) (geometry.Circle, error) {
	bw, err := d.bendWeight(bend)
	if err != nil {
		return geometry.Circle{}, err
	}
	coreIdx, ok := d.CoreOf(bend)
	if !ok {
		return geometry.Circle{}, ErrNotABend{Index: bend}
	}
	corePos, err := d.dotPos(coreIdx)
	if err != nil {
		return geometry.Circle{}, err
	}
	return geometry.Circle{Pos: corePos, R: bw.InnerRadius + bw.Width/2}, nil
}

// headCircle returns the circle the next tangent must depart from: a
// zero-radius point at the FixedDot for a BareHead, or the current
// bend's pivot circle for a CaneHead.
func (g Guide) headCircle(head Head) (geometry.Circle, error) {
	switch h := head.(type) {
	case BareHead:
		pos, err := g.d.dotPos(h.Dot)
		if err != nil {
			return geometry.Circle{}, err
		}
		return geometry.Circle{Pos: pos, R: 0}, nil
	case CaneHead:
		return g.d.pivotCircle(h.Cane.Bend)
	default:
		return geometry.Circle{}, NoTangents{}
	}
}

// HeadAroundDotOffset returns the clearance the new rail must keep over
// target, the offset passed on to InsertCane.
func (g Guide) HeadAroundDotOffset(headConditions Conditions, target pcbgraph.Index) (float64, error) {
	dw, err := g.d.dotWeight(target)
	if err != nil {
		return 0, err
	}
	return g.d.rules.Clearance(headConditions, conditionsOf(dw)), nil
}

// HeadAroundBendOffset is HeadAroundDotOffset's analogue when wrapping
// around an existing LooseBend rail instead of a FixedDot.
func (g Guide) HeadAroundBendOffset(headConditions Conditions, target pcbgraph.Index) (float64, error) {
	bw, err := g.d.bendWeight(target)
	if err != nil {
		return 0, err
	}
	return g.d.rules.Clearance(headConditions, conditionsOf(bw)), nil
}

// HeadAroundDotSegment returns the tangent segment between the head's
// current circle and target's circle inflated by offset, on the cw side.
// NoTangents is returned when the circles are nested or concentric.
func (g Guide) HeadAroundDotSegment(head Head, target pcbgraph.Index, cw bool, offset float64) (geometry.TangentSegment, error) {
	headC, err := g.headCircle(head)
	if err != nil {
		return geometry.TangentSegment{}, err
	}
	pos, err := g.d.dotPos(target)
	if err != nil {
		return geometry.TangentSegment{}, err
	}
	dw, err := g.d.dotWeight(target)
	if err != nil {
		return geometry.TangentSegment{}, err
	}
	targetC := geometry.Circle{Pos: pos, R: dw.Radius + offset}
	seg, ok := geometry.ExternalTangent(headC, targetC, cw)
	if !ok {
		return geometry.TangentSegment{}, NoTangents{}
	}
	return seg, nil
}

// HeadAroundBendSegment is HeadAroundDotSegment's analogue for wrapping
// around an existing LooseBend, becoming its next outer rail.
func (g Guide) HeadAroundBendSegment(head Head, target pcbgraph.Index, cw bool, offset float64) (geometry.TangentSegment, error) {
	headC, err := g.headCircle(head)
	if err != nil {
		return geometry.TangentSegment{}, err
	}
	targetPivot, err := g.d.pivotCircle(target)
	if err != nil {
		return geometry.TangentSegment{}, err
	}
	targetC := geometry.Circle{Pos: targetPivot.Pos, R: targetPivot.R + offset}
	seg, ok := geometry.ExternalTangent(headC, targetC, cw)
	if !ok {
		return geometry.TangentSegment{}, NoTangents{}
	}
	return seg, nil
}

// HeadIntoDotSegment returns the straight tangent from the head's current
// circle directly into target's center — used by Finish, which lands on
// a pad rather than wrapping around it.
func (g Guide) HeadIntoDotSegment(head Head, target pcbgraph.Index) (geometry.TangentSegment, error) {
	headC, err := g.headCircle(head)
	if err != nil {
		return geometry.TangentSegment{}, err
	}
	pos, err := g.d.dotPos(target)
	if err != nil {
		return geometry.TangentSegment{}, err
	}
	if headC.R == 0 {
		return geometry.TangentSegment{From: headC.Pos, To: pos}, nil
	}
	seg, ok := geometry.TangentThroughPoint(pos, headC, true)
	if !ok {
		return geometry.TangentSegment{}, NoTangents{}
	}
	// TangentThroughPoint is phrased "from point to circle"; Finish wants
	// the opposite direction (from the head's circle to the point).
	return geometry.TangentSegment{From: seg.To, To: seg.From}, nil
}

// HeadCW reports the winding sense the current head is already committed
// to, if any. A BareHead has no established winding.
func (g Guide) HeadCW(head Head) (cw bool, ok bool) {
	h, isCane := head.(CaneHead)
	if !isCane {
		return false, false
	}
	bw, err := g.d.bendWeight(h.Cane.Bend)
	if err != nil {
		return false, false
	}
	return bw.Cw, true
}
