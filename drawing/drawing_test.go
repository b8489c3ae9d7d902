package drawing

import (
	"testing"

	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// fixedRules returns the same clearance for every pair, enough to
// exercise infringement/collision logic without a real rules engine.
type fixedRules struct {
	clearance float64
}

func (r fixedRules) Clearance(a, b Conditions) float64 { return r.clearance }
func (r fixedRules) LargestClearance(net int) float64  { return r.clearance }

func TestAddFixedDotInfringementRollback(t *testing.T) {
	d := NewDrawing(fixedRules{clearance: 0.5})
	_, err := d.AddFixedDot(pcbgraph.Point{X: 0, Y: 0}, 1, 0, 1)
	if err != nil {
		t.Fatalf("first dot: %v", err)
	}
	before := d.Graph().NodeCount()

	_, err = d.AddFixedDot(pcbgraph.Point{X: 1, Y: 0}, 1, 0, 2)
	if err == nil {
		t.Fatalf("expected infringement, got nil error")
	}
	if _, ok := err.(Infringement); !ok {
		t.Fatalf("expected Infringement, got %T: %v", err, err)
	}
	if got := d.Graph().NodeCount(); got != before {
		t.Fatalf("node count changed on rollback: before=%d after=%d", before, got)
	}
}

func TestMoveDotIdempotent(t *testing.T) {
	d := NewDrawing(fixedRules{clearance: 0.1})
	dot, err := d.AddFixedDot(pcbgraph.Point{X: 0, Y: 0}, 1, 0, 1)
	if err != nil {
		t.Fatalf("add dot: %v", err)
	}

	if err := d.MoveDot(dot, pcbgraph.Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := d.MoveDot(dot, pcbgraph.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("move back: %v", err)
	}

	shape, err := d.PrimitiveShape(dot)
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	center := shape.Center()
	if center.X != 0 || center.Y != 0 {
		t.Fatalf("expected dot back at origin, got %+v", center)
	}
}

func TestInsertCaneRemoveCaneRoundTrip(t *testing.T) {
	d := NewDrawing(fixedRules{clearance: 0.2})
	around, err := d.AddFixedDot(pcbgraph.Point{X: 10, Y: 0}, 2, 0, 0)
	if err != nil {
		t.Fatalf("add around: %v", err)
	}
	headDot, err := d.AddFixedDot(pcbgraph.Point{X: 0, Y: 0}, 1, 0, 1)
	if err != nil {
		t.Fatalf("add head dot: %v", err)
	}
	head := BareHead{Dot: headDot}

	before := d.Graph().NodeCount()
	cane, _, err := d.InsertCane(head, around, 0.25, true, 1, 0)
	if err != nil {
		t.Fatalf("insert cane: %v", err)
	}
	if got := d.Graph().NodeCount(); got != before+4 {
		t.Fatalf("expected 4 new nodes (junction dot, seg, face dot, bend), before=%d after=%d", before, got)
	}

	if _, err := d.RemoveCane(cane); err != nil {
		t.Fatalf("remove cane: %v", err)
	}
	if got := d.Graph().NodeCount(); got != before {
		t.Fatalf("node count not restored: before=%d after=%d", before, got)
	}
}
