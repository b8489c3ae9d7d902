package pcbgraph

// BFS walks the Joined relation breadth-first from start and returns the
// visit order. Traversals here are always small and synchronous, so
// there is no cancellation hook of its own; longer searches run through
// the stepper model instead.
func (g *Graph) BFS(start Index) []Index {
	if !g.HasNode(start) {
		return nil
	}
	visited := map[Index]bool{start: true}
	queue := []Index{start}
	order := make([]Index, 0, 8)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, nbr := range g.Neighbors(Joined, cur) {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return order
}

// Connected reports whether a and b are reachable from one another via
// Joined edges.
func (g *Graph) Connected(a, b Index) bool {
	for _, n := range g.BFS(a) {
		if n == b {
			return true
		}
	}
	return false
}
