package flow

import "testing"

func TestTopologicalOrderRejectsCycle(t *testing.T) {
	g, err := NewGraph(3, []Edge{{0, 1, 1}, {1, 2, 1}, {2, 0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := TopologicalOrder(g); err == nil {
		t.Fatalf("expected an error for a cyclic graph")
	}
}

func TestTopologicalOrderBreaksTiesByVertexID(t *testing.T) {
	// Three vertices with no edges are all ready simultaneously; the
	// min-heap must break the tie in vertex-id order so the result is
	// deterministic across calls.
	g, err := NewGraph(3, nil)
	if err != nil {
		t.Fatal(err)
	}
	order, err := TopologicalOrder(g)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2}
	for i, v := range want {
		if order[i] != v {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
