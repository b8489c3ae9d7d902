package pcbgraph

import "testing"

func TestAddNodeAndEdge(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(DotWeight{Pos: Point{0, 0}, Radius: 1})
	b := g.AddNode(SegWeight{Width: 1})
	if err := g.AddEdge(Joined, a, b); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasEdge(Joined, a, b) || !g.HasEdge(Joined, b, a) {
		t.Fatalf("expected Joined edge to be mirrored")
	}
	if got := g.Neighbors(Joined, a); len(got) != 1 || got[0] != b {
		t.Fatalf("unexpected neighbors: %v", got)
	}
}

func TestOuterEdgeIsSingular(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(BendWeight{})
	b := g.AddNode(BendWeight{})
	c := g.AddNode(BendWeight{})
	if err := g.AddEdge(Outer, a, b); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(Outer, a, c); err != ErrMultipleOuter {
		t.Fatalf("expected ErrMultipleOuter, got %v", err)
	}
}

func TestRemoveNodeClearsEdges(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(DotWeight{})
	b := g.AddNode(DotWeight{})
	_ = g.AddEdge(Joined, a, b)
	if err := g.RemoveNode(a); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	if g.HasEdge(Joined, a, b) || g.HasEdge(Joined, b, a) {
		t.Fatalf("expected edges gone after RemoveNode")
	}
	if g.HasNode(a) {
		t.Fatalf("expected node gone")
	}
}

func TestSelfLoopRejected(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(DotWeight{})
	if err := g.AddEdge(Joined, a, a); err != ErrSelfLoop {
		t.Fatalf("expected ErrSelfLoop, got %v", err)
	}
}

func TestBFSConnected(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(DotWeight{})
	b := g.AddNode(SegWeight{})
	c := g.AddNode(DotWeight{})
	d := g.AddNode(DotWeight{})
	_ = g.AddEdge(Joined, a, b)
	_ = g.AddEdge(Joined, b, c)
	if !g.Connected(a, c) {
		t.Fatalf("expected a and c to be connected through b")
	}
	if g.Connected(a, d) {
		t.Fatalf("expected d to be isolated")
	}
}
