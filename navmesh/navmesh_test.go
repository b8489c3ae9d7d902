package navmesh

import (
	"testing"

	"github.com/katalvlaran/boardrouter/drawing"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

type fixedRules struct{ clearance float64 }

func (r fixedRules) Clearance(a, b drawing.Conditions) float64 { return r.clearance }
func (r fixedRules) LargestClearance(net int) float64          { return r.clearance }

func TestBuildConnectsSourceAndTarget(t *testing.T) {
	d := drawing.NewDrawing(fixedRules{clearance: 0.2})
	source, err := d.AddFixedDot(pcbgraph.Point{X: 0, Y: 0}, 0.5, 0, 1)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	target, err := d.AddFixedDot(pcbgraph.Point{X: 10, Y: 0}, 0.5, 0, 1)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	obstacle, err := d.AddFixedDot(pcbgraph.Point{X: 5, Y: 5}, 0.5, 0, 2)
	if err != nil {
		t.Fatalf("obstacle: %v", err)
	}

	nm, err := Build(d, source, target)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if nm.Source() != source || nm.Target() != target {
		t.Fatalf("source/target not preserved")
	}

	found := false
	for _, n := range nm.Neighbors(source) {
		if n == obstacle {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected obstacle to be a Delaunay neighbor of source")
	}
}
