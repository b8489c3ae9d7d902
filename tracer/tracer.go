// Package tracer extends a drawing.Head one navvertex at a time,
// producing the committed cane sequence astar.Astar probes edge by
// edge. There is no separate probe/commit pair to manage here: every
// drawing.Drawing call is already all-or-nothing, so a failed Step
// simply leaves the Drawing unchanged.
package tracer

import (
	"github.com/katalvlaran/boardrouter/drawing"
	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// Trace records one in-progress route: the navvertices visited so far
// and the current head.
type Trace struct {
	Path  []pcbgraph.Index
	Head  drawing.Head
	Width float64
	Layer int
	Net   int
}

// Tracer drives a Trace's Head through a Drawing.
type Tracer struct {
	d *drawing.Drawing
}

// New returns a Tracer bound to d.
func New(d *drawing.Drawing) *Tracer { return &Tracer{d: d} }

// Start initializes a Trace anchored at a bare FixedDot.
func (t *Tracer) Start(from pcbgraph.Index, width float64, layer, net int) *Trace {
	return &Trace{
		Path:  []pcbgraph.Index{from},
		Head:  drawing.BareHead{Dot: from},
		Width: width,
		Layer: layer,
		Net:   net,
	}
}

// Step wraps trace's head around to (a FixedDot or LooseBend), trying
// the shorter of the two possible windings first and falling back to
// the other on infringement. On success trace.Head becomes a CaneHead
// and to is appended to trace.Path; on failure the Drawing and trace
// are unchanged and a TracerException is returned.
func (t *Tracer) Step(trace *Trace, to pcbgraph.Index, width float64) error {
	conditions := drawing.Conditions{Net: trace.Net, Layer: trace.Layer}
	guide := t.d.Guide()

	lenFor := func(cw bool) (float64, bool) {
		toW, err := t.d.Graph().Weight(to)
		if err != nil {
			return 0, false
		}
		var s geometry.TangentSegment
		if _, isBend := toW.(pcbgraph.BendWeight); isBend {
			offset, err := guide.HeadAroundBendOffset(conditions, to)
			if err != nil {
				return 0, false
			}
			s, err = guide.HeadAroundBendSegment(trace.Head, to, cw, offset)
			if err != nil {
				return 0, false
			}
		} else {
			offset, err := guide.HeadAroundDotOffset(conditions, to)
			if err != nil {
				return 0, false
			}
			s, err = guide.HeadAroundDotSegment(trace.Head, to, cw, offset)
			if err != nil {
				return 0, false
			}
		}
		return geometry.Dist(s.From, s.To), true
	}

	lenCW, okCW := lenFor(true)
	lenCCW, okCCW := lenFor(false)

	var order []bool
	switch {
	case okCW && okCCW:
		if lenCW <= lenCCW {
			order = []bool{true, false}
		} else {
			order = []bool{false, true}
		}
	case okCW:
		order = []bool{true}
	case okCCW:
		order = []bool{false}
	default:
		return TracerException{Err: drawing.NoTangents{}}
	}

	var lastErr error
	for _, cw := range order {
		_, newHead, err := t.d.InsertCane(trace.Head, to, width, cw, trace.Net, trace.Layer)
		if err == nil {
			trace.Head = newHead
			trace.Path = append(trace.Path, to)
			return nil
		}
		lastErr = err
	}
	return TracerException{Err: lastErr}
}

// StepBack requires trace.Head to be a CaneHead; it removes that
// cane's bend/seg/dots and restores the head one step back. Infallible
// on a well-formed trace.
func (t *Tracer) StepBack(trace *Trace) error {
	caneHead, ok := trace.Head.(drawing.CaneHead)
	if !ok {
		return ErrNoCaneToUndo
	}
	origin, err := t.d.RemoveCane(caneHead.Cane)
	if err != nil {
		return err
	}
	head, err := t.d.HeadAt(origin)
	if err != nil {
		return err
	}
	trace.Head = head
	trace.Path = trace.Path[:len(trace.Path)-1]
	return nil
}

// Path drives trace through each navvertex in path in order, rolling
// back every step already taken if any step fails partway through.
func (t *Tracer) Path(trace *Trace, path []pcbgraph.Index, width float64) error {
	for i, v := range path {
		if err := t.Step(trace, v, width); err != nil {
			t.UndoPath(trace, i)
			return err
		}
	}
	return nil
}

// UndoPath calls StepBack stepCount times.
func (t *Tracer) UndoPath(trace *Trace, stepCount int) {
	for i := 0; i < stepCount; i++ {
		t.StepBack(trace)
	}
}

// ReworkPath retargets trace onto newPath: it finds the longest shared
// prefix with trace.Path, steps back the suffix that diverges, then
// steps forward along newPath's remainder. On partial failure the
// Drawing is rolled back to the pre-call state and the error reported.
func (t *Tracer) ReworkPath(trace *Trace, newPath []pcbgraph.Index, width float64) error {
	prefix := 0
	for prefix < len(trace.Path) && prefix < len(newPath) && trace.Path[prefix] == newPath[prefix] {
		prefix++
	}
	undone := append([]pcbgraph.Index(nil), trace.Path[prefix:]...)
	t.UndoPath(trace, len(undone))
	if err := t.Path(trace, newPath[prefix:], width); err != nil {
		t.Path(trace, undone, width)
		return err
	}
	return nil
}

// Finish lands trace's head on a FixedDot, completing the band: adds a
// LoneLooseSeg (bare head) or SeqLooseSeg (cane head) from the head's
// face to into, extending a cane head's face onto the tangent start
// first. Returns the index of the seg it adds: the band's only seg for
// a bare head, its last seg for a cane head.
func (t *Tracer) Finish(trace *Trace, into pcbgraph.Index, width float64) (pcbgraph.Index, error) {
	guide := t.d.Guide()
	tangent, err := guide.HeadIntoDotSegment(trace.Head, into)
	if err != nil {
		return 0, err
	}

	if caneHead, ok := trace.Head.(drawing.CaneHead); ok {
		if err := t.d.MoveDot(caneHead.Face(), pcbgraph.Point{X: tangent.From.X, Y: tangent.From.Y}); err != nil {
			return 0, err
		}
		return t.d.AddSeqLooseSeg(caneHead.Face(), into, width, trace.Layer, trace.Net)
	}
	bareHead := trace.Head.(drawing.BareHead)
	return t.d.AddLoneLooseSeg(bareHead.Face(), into, width, trace.Layer, trace.Net)
}
