package flow

// resIdx maps a residual edge to a dense index over [0, 2*numEdges), used
// to back admissibility membership with a flat bool slice instead of a set.
func resIdx(re ResidualEdge) int {
	idx := re.Edge * 2
	if re.Dir == Backward {
		idx++
	}
	return idx
}

// admissibilityIndex tracks, for every residual edge, whether it currently
// satisfies the admissibility conditions, and maintains a worklist of
// vertices that may belong to ASNA (alive, residual-sink-saturated, with no
// admissible outgoing residual edge). The worklist is an explicit
// driver-owned queue rather than a recomputed set: a vertex is enqueued the
// moment its last admissible outgoing edge is marked inadmissible, and
// membership is re-validated when the vertex is dequeued, since alive-ness
// and residual-sink status can change between enqueue and dequeue.
type admissibilityIndex struct {
	isAdm    []bool
	admCount []int
	inWork   []bool
	work     []int
}

func newAdmissibilityIndex(n, m int) *admissibilityIndex {
	return &admissibilityIndex{
		isAdm:    make([]bool, 2*m),
		admCount: make([]int, n),
		inWork:   make([]bool, n),
		work:     make([]int, 0, n),
	}
}

func (a *admissibilityIndex) markAdmissible(re ResidualEdge, tail int) {
	idx := resIdx(re)
	if a.isAdm[idx] {
		return
	}
	a.isAdm[idx] = true
	a.admCount[tail]++
}

func (a *admissibilityIndex) markInadmissible(re ResidualEdge, tail int) {
	idx := resIdx(re)
	if !a.isAdm[idx] {
		return
	}
	a.isAdm[idx] = false
	a.admCount[tail]--
	if a.admCount[tail] == 0 {
		a.enqueue(tail)
	}
}

// markDead records that v is no longer considered for admissibility.
// Stale isAdm bits for v's incident edges are left in place: every caller
// that would otherwise consult them also checks alive(v) first.
func (a *admissibilityIndex) markDead(v int) {}

func (a *admissibilityIndex) enqueue(v int) {
	if a.inWork[v] {
		return
	}
	a.inWork[v] = true
	a.work = append(a.work, v)
}

// nextCandidate dequeues vertices until one still genuinely belongs to
// ASNA is found, or the worklist empties.
func (a *admissibilityIndex) nextCandidate(alive []bool, residualSinkZero func(int) bool) (int, bool) {
	for len(a.work) > 0 {
		v := a.work[0]
		a.work = a.work[1:]
		a.inWork[v] = false
		if !alive[v] || a.admCount[v] != 0 || !residualSinkZero(v) {
			continue
		}
		return v, true
	}
	return 0, false
}

// isAdmissible evaluates the three admissibility conditions directly
// (positive residual capacity, the tail's level divisible by the edge's
// weight, and a level gap of at least twice the weight), and also rejects
// an edge with a dead endpoint.
func (ctx *solveContext) isAdmissible(re ResidualEdge) (bool, error) {
	if ctx.residual.residualCapacity(re) <= 0 {
		return false, nil
	}
	x := ctx.g.Tail(re)
	y := ctx.g.Head(re)
	if !ctx.alive[x] || !ctx.alive[y] {
		return false, nil
	}
	w, err := ctx.weights.weightOf(re.Edge)
	if err != nil {
		return false, err
	}
	if ctx.level[x]%w != 0 {
		return false, nil
	}
	if ctx.level[x]-ctx.level[y] < 2*w {
		return false, nil
	}
	return true, nil
}

// reevaluate recomputes admissibility for a single residual edge and
// updates the index accordingly, notifying the observer only when the
// edge's admissibility actually changes.
func (ctx *solveContext) reevaluate(re ResidualEdge) error {
	ok, err := ctx.isAdmissible(re)
	if err != nil {
		return err
	}
	was := ctx.adm.isAdm[resIdx(re)]
	tail := ctx.g.Tail(re)
	if ok {
		ctx.adm.markAdmissible(re, tail)
	} else {
		ctx.adm.markInadmissible(re, tail)
	}
	if was != ok {
		ctx.obs.OnEdgeStateChange(re, ok)
	}
	return nil
}
