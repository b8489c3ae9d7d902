package tracer

import (
	"testing"

	"github.com/katalvlaran/boardrouter/drawing"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

type fixedRules struct{ clearance float64 }

func (r fixedRules) Clearance(a, b drawing.Conditions) float64 { return r.clearance }
func (r fixedRules) LargestClearance(net int) float64          { return r.clearance }

func TestStepAndStepBackRoundTrip(t *testing.T) {
	d := drawing.NewDrawing(fixedRules{clearance: 0.2})
	source, err := d.AddFixedDot(pcbgraph.Point{X: 0, Y: 0}, 0.5, 0, 1)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	around, err := d.AddFixedDot(pcbgraph.Point{X: 10, Y: 0}, 2, 0, 0)
	if err != nil {
		t.Fatalf("around: %v", err)
	}

	tr := New(d)
	trace := tr.Start(source, 0.25, 0, 1)

	before := d.Graph().NodeCount()
	if err := tr.Step(trace, around, 0.25); err != nil {
		t.Fatalf("step: %v", err)
	}
	if _, ok := trace.Head.(drawing.CaneHead); !ok {
		t.Fatalf("expected CaneHead after Step, got %T", trace.Head)
	}
	if len(trace.Path) != 2 {
		t.Fatalf("expected path length 2, got %d", len(trace.Path))
	}

	if err := tr.StepBack(trace); err != nil {
		t.Fatalf("step back: %v", err)
	}
	if _, ok := trace.Head.(drawing.BareHead); !ok {
		t.Fatalf("expected BareHead after step back, got %T", trace.Head)
	}
	if got := d.Graph().NodeCount(); got != before {
		t.Fatalf("node count not restored: before=%d after=%d", before, got)
	}
}

func TestFinishFromBareHead(t *testing.T) {
	d := drawing.NewDrawing(fixedRules{clearance: 0.2})
	source, err := d.AddFixedDot(pcbgraph.Point{X: 0, Y: 0}, 0.5, 0, 1)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	target, err := d.AddFixedDot(pcbgraph.Point{X: 10, Y: 0}, 0.5, 0, 1)
	if err != nil {
		t.Fatalf("target: %v", err)
	}

	tr := New(d)
	trace := tr.Start(source, 0.25, 0, 1)
	seg, err := tr.Finish(trace, target, 0.25)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if seg == 0 {
		t.Fatalf("expected non-zero seg index")
	}
}
