package astar

import (
	"context"
	"testing"
)

type gridGraph map[int][]Edge[int]

func (g gridGraph) Edges(node int) []Edge[int] { return g[node] }

type noHeuristic struct{ goal int }

func (s *noHeuristic) IsGoal(node int, tracker *PathTracker[int]) (string, bool) {
	if node == s.goal {
		return "ok", true
	}
	return "", false
}
func (s *noHeuristic) EdgeCost(edge Edge[int]) (float64, bool) { return edge.Cost, true }
func (s *noHeuristic) EstimateCost(node int) float64           { return 0 }

func TestFindsShortestPath(t *testing.T) {
	// 1 -> 2 -> 4 (cost 1+1=2), 1 -> 3 -> 4 (cost 1+5=6): expect the first.
	g := gridGraph{
		1: {{To: 2, Cost: 1}, {To: 3, Cost: 1}},
		2: {{To: 4, Cost: 1}},
		3: {{To: 4, Cost: 5}},
	}
	cost, path, _, err := Run[int, string](context.Background(), g, 1, &noHeuristic{goal: 4})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cost != 2 {
		t.Fatalf("expected cost 2, got %v", cost)
	}
	want := []int{1, 2, 4}
	if len(path) != len(want) {
		t.Fatalf("expected path %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("expected path %v, got %v", want, path)
		}
	}
}

func TestNotFound(t *testing.T) {
	g := gridGraph{1: {}}
	_, _, _, err := Run[int, string](context.Background(), g, 1, &noHeuristic{goal: 99})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
