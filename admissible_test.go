package flow

import "testing"

func TestAdmissibilityIndexTracksEmptyAdmOut(t *testing.T) {
	a := newAdmissibilityIndex(3, 2)
	re := ResidualEdge{Edge: 0, Dir: Forward}

	a.markAdmissible(re, 0)
	if a.admCount[0] != 1 {
		t.Fatalf("admCount[0] = %d, want 1", a.admCount[0])
	}

	a.markInadmissible(re, 0)
	if a.admCount[0] != 0 {
		t.Fatalf("admCount[0] = %d, want 0", a.admCount[0])
	}
	if !a.inWork[0] {
		t.Fatalf("vertex should have been enqueued once its last admissible edge vanished")
	}
}

func TestAdmissibilityIndexNextCandidateFiltersAtQuery(t *testing.T) {
	a := newAdmissibilityIndex(2, 1)
	a.enqueue(0)
	a.enqueue(1)

	alive := []bool{true, false}
	v, ok := a.nextCandidate(alive, func(int) bool { return true })
	if !ok || v != 0 {
		t.Fatalf("expected vertex 0 (alive), got %d, %v", v, ok)
	}
	// vertex 1 is not alive, so it should be discarded rather than returned.
	_, ok = a.nextCandidate(alive, func(int) bool { return true })
	if ok {
		t.Fatalf("dead vertex should not be returned as an ASNA candidate")
	}
}

func TestIsAdmissibleRequiresPositiveResidualCapacity(t *testing.T) {
	g, err := NewGraph(2, []Edge{{0, 1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	ctx := newSolveContext(g, make([]int64, 2), make([]int64, 2), UnitWeight, 2, NoopObserver{})
	re := ResidualEdge{Edge: 0, Dir: Forward}

	ctx.level[0] = 2
	ok, err := ctx.isAdmissible(re)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("forward edge with positive residual capacity and a sufficient level gap should be admissible")
	}

	ctx.residual.push(re, 1) // saturate it
	ok, err = ctx.isAdmissible(re)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("saturated edge should not be admissible")
	}
}

func TestIsAdmissibleRejectsDeadEndpoints(t *testing.T) {
	g, err := NewGraph(2, []Edge{{0, 1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	ctx := newSolveContext(g, make([]int64, 2), make([]int64, 2), UnitWeight, 2, NoopObserver{})
	ctx.level[0] = 2
	ctx.alive[1] = false
	re := ResidualEdge{Edge: 0, Dir: Forward}
	ok, err := ctx.isAdmissible(re)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("edge incident to a dead vertex should not be admissible")
	}
}
