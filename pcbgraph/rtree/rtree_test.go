package rtree

import "testing"

func TestInsertSearch(t *testing.T) {
	tr := New[string]()
	tr.Insert(BBox{0, 0, 1, 1}, "a")
	tr.Insert(BBox{5, 5, 6, 6}, "b")
	tr.Insert(BBox{0.5, 0.5, 1.5, 1.5}, "c")

	got := tr.Search(BBox{-1, -1, 0.6, 0.6})
	found := map[string]bool{}
	for _, v := range got {
		found[v] = true
	}
	if !found["a"] || !found["c"] || found["b"] {
		t.Fatalf("unexpected search result: %v", got)
	}
}

func TestRemove(t *testing.T) {
	tr := New[int]()
	tr.Insert(BBox{0, 0, 1, 1}, 42)
	if !tr.Remove(BBox{0, 0, 1, 1}, func(v int) bool { return v == 42 }) {
		t.Fatalf("expected Remove to find the entry")
	}
	if tr.Len() != 0 {
		t.Fatalf("expected tree empty after remove")
	}
}

func TestSplitKeepsAllEntries(t *testing.T) {
	tr := New[int]()
	for i := 0; i < 50; i++ {
		x := float64(i)
		tr.Insert(BBox{x, x, x + 1, x + 1}, i)
	}
	if tr.Len() != 50 {
		t.Fatalf("expected 50 entries, got %d", tr.Len())
	}
	all := tr.Search(BBox{-1000, -1000, 1000, 1000})
	if len(all) != 50 {
		t.Fatalf("expected search over everything to return 50, got %d", len(all))
	}
}
