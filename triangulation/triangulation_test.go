package triangulation

import (
	"testing"

	"github.com/katalvlaran/boardrouter/geometry"
)

func TestSquareTriangulatesWithDiagonalNeighbors(t *testing.T) {
	tr := New(100)
	tr.AddVertex(1, geometry.Point{X: 0, Y: 0})
	tr.AddVertex(2, geometry.Point{X: 10, Y: 0})
	tr.AddVertex(3, geometry.Point{X: 10, Y: 10})
	tr.AddVertex(4, geometry.Point{X: 0, Y: 10})

	if tr.Len() != 4 {
		t.Fatalf("expected 4 real vertices, got %d", tr.Len())
	}

	edges := tr.Edges()
	if len(edges) < 5 {
		t.Fatalf("expected at least 5 edges (4 sides + 1 diagonal), got %d", len(edges))
	}
	for _, e := range edges {
		if e.From == e.To {
			t.Fatalf("self edge: %+v", e)
		}
	}

	n1 := tr.Neighbors(1)
	if len(n1) == 0 {
		t.Fatalf("vertex 1 has no neighbors")
	}
}

func TestNeighborsExcludeSuperTriangle(t *testing.T) {
	tr := New(50)
	tr.AddVertex(10, geometry.Point{X: 1, Y: 1})
	tr.AddVertex(11, geometry.Point{X: 5, Y: 5})

	for _, n := range tr.Neighbors(10) {
		if n != 11 {
			t.Fatalf("unexpected neighbor %d (expected only 11)", n)
		}
	}
}
