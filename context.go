package flow

// solveContext bundles every piece of mutable state a single solve touches:
// the flow table and net-inflow cache (residual.go), the level function and
// liveness (level.go), the admissibility index and its worklist
// (admissible.go), the weight cache (weight.go), and the scratch buffers
// the path tracer reuses across calls. It exists so that component methods
// (relabel, reevaluate, tracePath, augment) can be written as plain methods
// on a receiver instead of threading half a dozen slices through every
// call.
type solveContext struct {
	g       *Graph
	supply  []int64
	demand  []int64
	h       int
	weights *weightCache

	residual *flowState
	level    []int
	alive    []bool
	adm      *admissibilityIndex
	obs      Observer

	excessCursor  int
	tracerVisited []bool
	tracerCursor  []int
}

func newSolveContext(g *Graph, supply, demand []int64, weight WeightFunc, h int, obs Observer) *solveContext {
	n := g.NumVertices()
	alive := make([]bool, n)
	for v := range alive {
		alive[v] = true
	}
	adm := newAdmissibilityIndex(n, g.NumEdges())
	ctx := &solveContext{
		g:             g,
		supply:        supply,
		demand:        demand,
		h:             h,
		weights:       newWeightCache(g, weight),
		residual:      newFlowState(g),
		level:         make([]int, n),
		alive:         alive,
		adm:           adm,
		obs:           obs,
		tracerVisited: make([]bool, n),
		tracerCursor:  make([]int, n),
	}
	// INIT: ASNA = V. Every vertex starts at level 0 with no admissible
	// outgoing edges, so every vertex is a legitimate relabel candidate
	// until proven otherwise.
	for v := 0; v < n; v++ {
		adm.enqueue(v)
	}
	return ctx
}

func (ctx *solveContext) residualSource(v int) int64 {
	return excessOf(ctx.residual.netIn[v], ctx.supply[v], ctx.demand[v])
}

func (ctx *solveContext) residualSink(v int) int64 {
	return residualSinkOf(ctx.residual.netIn[v], ctx.supply[v], ctx.demand[v])
}

// findExcessSource scans for an alive vertex with positive residual source,
// starting from a rotating cursor so repeated calls don't all restart at
// vertex 0 and repeatedly re-inspect vertices that were already checked and
// found to have no excess.
func (ctx *solveContext) findExcessSource() (int, bool) {
	n := ctx.g.NumVertices()
	for i := 0; i < n; i++ {
		v := (ctx.excessCursor + i) % n
		if ctx.alive[v] && ctx.residualSource(v) > 0 {
			ctx.excessCursor = v
			return v, true
		}
	}
	return 0, false
}
