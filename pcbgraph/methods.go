package pcbgraph

import "sort"

// AddNode inserts a new node carrying w and returns its Index.
// Complexity: O(1).
func (g *Graph) AddNode(w Weight) Index {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	g.nextIndex++
	idx := g.nextIndex
	g.weights[idx] = w
	g.alive[idx] = true

	g.muEdge.Lock()
	for k := range g.adj {
		g.adj[k][idx] = make(edgeSet)
	}
	g.muEdge.Unlock()

	return idx
}

// HasNode reports whether idx names a live node.
func (g *Graph) HasNode(idx Index) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return g.alive[idx]
}

// Weight returns the payload of idx, or ErrNodeNotFound.
func (g *Graph) Weight(idx Index) (Weight, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if !g.alive[idx] {
		return nil, ErrNodeNotFound
	}
	return g.weights[idx], nil
}

// SetWeight overwrites idx's payload in place, used by MoveDot and
// ShiftBend to mutate position/offset without disturbing idx's edges.
func (g *Graph) SetWeight(idx Index, w Weight) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if !g.alive[idx] {
		return ErrNodeNotFound
	}
	g.weights[idx] = w
	return nil
}

// RemoveNode deletes idx and every edge incident to it.
// Complexity: O(n), since every node's edge sets are scanned for idx.
func (g *Graph) RemoveNode(idx Index) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if !g.alive[idx] {
		return ErrNodeNotFound
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	for k := range g.adj {
		delete(g.adj[k], idx)
		for _, set := range g.adj[k] {
			delete(set, idx)
		}
	}

	delete(g.weights, idx)
	delete(g.alive, idx)
	return nil
}

// AddEdge records a directed edge of the given kind from "from" to "to".
// Joined edges are mirrored automatically (Joined is semantically
// undirected); Core and Outer stay directed, and each enforces its own
// at-most-one-outgoing-edge constraint: ErrMultipleCore/ErrMultipleOuter.
func (g *Graph) AddEdge(kind EdgeKind, from, to Index) error {
	if from == to {
		return ErrSelfLoop
	}
	g.muNode.RLock()
	okFrom, okTo := g.alive[from], g.alive[to]
	g.muNode.RUnlock()
	if !okFrom || !okTo {
		return ErrNodeNotFound
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.adj[kind][from][to]; exists {
		return ErrDuplicateEdge
	}
	switch kind {
	case Outer:
		if len(g.adj[Outer][from]) > 0 {
			return ErrMultipleOuter
		}
	case Core:
		if len(g.adj[Core][from]) > 0 {
			return ErrMultipleCore
		}
	}

	g.ensure(kind, from)
	g.ensure(kind, to)
	g.adj[kind][from][to] = struct{}{}
	if kind == Joined {
		g.adj[kind][to][from] = struct{}{}
	}
	return nil
}

func (g *Graph) ensure(kind EdgeKind, idx Index) {
	if g.adj[kind][idx] == nil {
		g.adj[kind][idx] = make(edgeSet)
	}
}

// RemoveEdge deletes the edge of kind between from and to (and its mirror,
// for Joined). Returns ErrEdgeNotFound if it does not exist.
func (g *Graph) RemoveEdge(kind EdgeKind, from, to Index) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, ok := g.adj[kind][from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[kind][from], to)
	if kind == Joined {
		delete(g.adj[kind][to], from)
	}
	return nil
}

// HasEdge reports whether an edge of kind exists from "from" to "to".
func (g *Graph) HasEdge(kind EdgeKind, from, to Index) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.adj[kind][from][to]
	return ok
}

// Neighbors returns, sorted, every node reachable from idx via one edge
// of the given kind (for Core/Outer this is at most one node).
func (g *Graph) Neighbors(kind EdgeKind, idx Index) []Index {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	set := g.adj[kind][idx]
	out := make([]Index, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SoleNeighbor returns the single neighbor of idx via kind, or (0, false)
// if idx has none. It panics if idx somehow has more than one, since
// Core and Outer are constructed to allow at most one.
func (g *Graph) SoleNeighbor(kind EdgeKind, idx Index) (Index, bool) {
	ns := g.Neighbors(kind, idx)
	switch len(ns) {
	case 0:
		return 0, false
	case 1:
		return ns[0], true
	default:
		panic("pcbgraph: sole-neighbor edge kind has more than one neighbor")
	}
}

// InNeighbors returns, sorted, every node with an outgoing edge of kind
// landing on idx — the reverse of Neighbors, needed for Core and Outer
// since those are directed and a caller sometimes has the target in hand
// (e.g. "which bend wraps around this core") and needs the source(s).
func (g *Graph) InNeighbors(kind EdgeKind, idx Index) []Index {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	var out []Index
	for from, set := range g.adj[kind] {
		if _, ok := set[idx]; ok {
			out = append(out, from)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SoleInNeighbor returns the single node with an outgoing kind edge to
// idx, or (0, false) if none. Panics if more than one, mirroring
// SoleNeighbor's contract for the Outer relation's "at most one incoming".
func (g *Graph) SoleInNeighbor(kind EdgeKind, idx Index) (Index, bool) {
	ns := g.InNeighbors(kind, idx)
	switch len(ns) {
	case 0:
		return 0, false
	case 1:
		return ns[0], true
	default:
		panic("pcbgraph: sole-in-neighbor edge kind has more than one source")
	}
}

// Nodes returns every live node index, sorted.
func (g *Graph) Nodes() []Index {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]Index, 0, len(g.alive))
	for idx, alive := range g.alive {
		if alive {
			out = append(out, idx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.alive)
}
