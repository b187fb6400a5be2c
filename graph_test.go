package flow

import "testing"

func TestNewGraphRejectsSelfLoop(t *testing.T) {
	if _, err := NewGraph(2, []Edge{{From: 0, To: 0, Cap: 1}}); err == nil {
		t.Fatalf("expected error for self-loop")
	}
}

func TestNewGraphRejectsNonPositiveCapacity(t *testing.T) {
	if _, err := NewGraph(2, []Edge{{From: 0, To: 1, Cap: 0}}); err == nil {
		t.Fatalf("expected error for non-positive capacity")
	}
	if _, err := NewGraph(2, []Edge{{From: 0, To: 1, Cap: -1}}); err == nil {
		t.Fatalf("expected error for negative capacity")
	}
}

func TestNewGraphRejectsUnknownVertex(t *testing.T) {
	if _, err := NewGraph(2, []Edge{{From: 0, To: 5, Cap: 1}}); err == nil {
		t.Fatalf("expected error for unknown vertex")
	}
}

func TestNewGraphRejectsEmptyVertexSet(t *testing.T) {
	if _, err := NewGraph(0, nil); err == nil {
		t.Fatalf("expected parameter error for empty vertex set")
	}
}

func TestIncidentOrderIsStable(t *testing.T) {
	g, err := NewGraph(3, []Edge{{0, 1, 5}, {1, 2, 3}, {0, 2, 1}})
	if err != nil {
		t.Fatal(err)
	}
	first := append([]ResidualEdge{}, g.Incident(0)...)
	second := append([]ResidualEdge{}, g.Incident(0)...)
	if len(first) != len(second) {
		t.Fatalf("incident count changed between calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("incident order is not stable across calls")
		}
	}
}

func TestParallelEdgesGetDistinctIdentities(t *testing.T) {
	g, err := NewGraph(2, []Edge{{0, 1, 3}, {0, 1, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if g.NumEdges() != 2 {
		t.Fatalf("expected 2 distinct edges, got %d", g.NumEdges())
	}
}

func TestReverseResidualEdge(t *testing.T) {
	re := ResidualEdge{Edge: 3, Dir: Forward}
	if re.Reverse() != (ResidualEdge{Edge: 3, Dir: Backward}) {
		t.Fatalf("Reverse did not flip orientation")
	}
	if re.Reverse().Reverse() != re {
		t.Fatalf("Reverse is not its own inverse")
	}
}
