// Package astar is a generic, steppable A* search over a graph of
// comparable nodes. Search state lives in an Astar value so a caller
// can advance one frontier expansion at a time via Step, or run to
// completion with Run; the open set is a container/heap binary heap
// ordered by estimated total cost.
package astar

import (
	"container/heap"
	"context"
	"errors"

	"github.com/katalvlaran/boardrouter/stepper"
)

// ErrNotFound is returned when the open set empties before a goal is
// found.
var ErrNotFound = errors.New("astar: no path found")

// Graph is the minimal surface Astar needs: enumerate the edges
// leaving a node, each carrying a float64 cost.
type Graph[N comparable] interface {
	Edges(node N) []Edge[N]
}

// Edge is one graph edge with its traversal cost already resolved;
// Strategy.EdgeCost may still veto it by returning ok=false (e.g. an
// infringing navmesh edge).
type Edge[N comparable] struct {
	To   N
	Cost float64
}

// Strategy supplies the problem-specific parts of the search: goal
// test, per-edge cost (with the option to reject an edge), and the
// admissible heuristic.
type Strategy[N comparable, R any] interface {
	IsGoal(node N, tracker *PathTracker[N]) (R, bool)
	EdgeCost(edge Edge[N]) (float64, bool)
	EstimateCost(node N) float64
}

// PathTracker records the predecessor of every visited node so the
// winning path can be reconstructed once a goal is found.
type PathTracker[N comparable] struct {
	cameFrom map[N]N
}

func newPathTracker[N comparable]() *PathTracker[N] {
	return &PathTracker[N]{cameFrom: make(map[N]N)}
}

func (t *PathTracker[N]) setPredecessor(node, previous N) {
	t.cameFrom[node] = previous
}

// ReconstructPathTo walks cameFrom back from last to the start node.
func (t *PathTracker[N]) ReconstructPathTo(last N) []N {
	path := []N{last}
	cur := last
	for {
		prev, ok := t.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// scoredItem is one entry in the open-set heap: NaN estimate scores
// sort last (never explored), equal scores compare as equal — ported
// bit-for-bit from MinScored's Ord impl.
type scoredItem[N comparable] struct {
	estimate float64
	node     N
}

type openHeap[N comparable] []scoredItem[N]

func (h openHeap[N]) Len() int { return len(h) }
func (h openHeap[N]) Less(i, j int) bool {
	a, b := h[i].estimate, h[j].estimate
	if a == b {
		return false
	}
	aNaN, bNaN := a != a, b != b
	if aNaN && bNaN {
		return false
	}
	if aNaN {
		return false // NaN sorts last: never "less" than anything
	}
	if bNaN {
		return true
	}
	return a < b
}
func (h openHeap[N]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *openHeap[N]) Push(x any)   { *h = append(*h, x.(scoredItem[N])) }
func (h *openHeap[N]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Astar is a steppable A* search over a Graph[N] with node type N and
// strategy result type R.
type Astar[N comparable, R any] struct {
	graph          Graph[N]
	strategy       Strategy[N, R]
	visitNext      openHeap[N]
	scores         map[N]float64
	estimateScores map[N]float64
	tracker        *PathTracker[N]

	done   bool
	result R
	cost   float64
	path   []N
}

// New starts an A* search from start. Step must be called in a loop
// (directly, or via stepper.Run) until it reports stepper.Finished.
func New[N comparable, R any](graph Graph[N], start N, strategy Strategy[N, R]) *Astar[N, R] {
	a := &Astar[N, R]{
		graph:          graph,
		strategy:       strategy,
		scores:         map[N]float64{start: 0},
		estimateScores: make(map[N]float64),
		tracker:        newPathTracker[N](),
	}
	heap.Push(&a.visitNext, scoredItem[N]{estimate: strategy.EstimateCost(start), node: start})
	return a
}

// Step performs one A* relaxation round, satisfying stepper.Stepper.
func (a *Astar[N, R]) Step(ctx context.Context) (stepper.Status, error) {
	if a.done {
		return stepper.Finished, nil
	}
	if a.visitNext.Len() == 0 {
		a.done = true
		return stepper.Finished, ErrNotFound
	}

	top := heap.Pop(&a.visitNext).(scoredItem[N])
	node := top.node

	if result, ok := a.strategy.IsGoal(node, a.tracker); ok {
		a.done = true
		a.result = result
		a.cost = a.scores[node]
		a.path = a.tracker.ReconstructPathTo(node)
		return stepper.Finished, nil
	}

	nodeScore := a.scores[node]
	if prev, ok := a.estimateScores[node]; ok && prev <= top.estimate {
		return stepper.Running, nil
	}
	a.estimateScores[node] = top.estimate

	for _, edge := range a.graph.Edges(node) {
		cost, ok := a.strategy.EdgeCost(edge)
		if !ok {
			continue
		}
		next := edge.To
		nextScore := nodeScore + cost
		if prev, ok := a.scores[next]; ok && prev <= nextScore {
			continue
		}
		a.scores[next] = nextScore
		a.tracker.setPredecessor(next, node)
		heap.Push(&a.visitNext, scoredItem[N]{estimate: nextScore + a.strategy.EstimateCost(next), node: next})
	}

	return stepper.Running, nil
}

// Result returns the finished search's outcome. Only valid after Step
// has returned (stepper.Finished, nil).
func (a *Astar[N, R]) Result() (cost float64, path []N, result R) {
	return a.cost, a.path, a.result
}

// Run drives the search to completion and returns its result in one call.
func Run[N comparable, R any](ctx context.Context, graph Graph[N], start N, strategy Strategy[N, R]) (float64, []N, R, error) {
	a := New[N, R](graph, start, strategy)
	if err := stepper.Run(ctx, a); err != nil {
		var zero R
		return 0, nil, zero, err
	}
	cost, path, result := a.Result()
	return cost, path, result, nil
}
