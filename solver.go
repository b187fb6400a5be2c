package flow

import "fmt"

// Options configures a solve. Weight defaults to UnitWeight and Observer
// defaults to a no-op if left nil. H must be positive. MaxIterations, if
// positive, bounds the number of augmentations a solve will perform before
// returning a partial (but still feasible) result marked Incomplete — the
// mechanism a host uses to bound total work by an iteration budget rather
// than by cancelling mid-augmentation.
type Options struct {
	Weight        WeightFunc
	H             int
	Observer      Observer
	MaxIterations int
}

// Result is the output of a solve: the routed flow value and the flow
// assigned to every edge, indexed by edge identity. Incomplete is true
// only when Options.MaxIterations cut the solve short of fixpoint; the
// returned flow is still feasible (it respects every capacity and every
// vertex's demand), just not necessarily maximum.
type Result struct {
	RoutedFlow int64
	Flow       []int64
	Incomplete bool
}

// Solve runs the weighted push-relabel engine to fixpoint (or until
// opts.MaxIterations augmentations have been performed) and returns the
// routed flow value and the resulting flow assignment.
//
// supply and demand must each have length g.NumVertices() and contain only
// non-negative entries. opts.H must be positive. The driver alternates a
// relabel phase (raise levels until the admissibility worklist empties)
// with an augment phase (trace one admissible path from some excess vertex
// to some residual-sink vertex and saturate it), stopping the moment no
// alive vertex has positive residual source. Excess left on a dead vertex
// stays unrouted.
func Solve(g *Graph, supply, demand []int64, opts Options) (Result, error) {
	n := g.NumVertices()
	if n == 0 {
		return Result{}, &ParameterError{Reason: "empty vertex set"}
	}
	if opts.H <= 0 {
		return Result{}, &ParameterError{Reason: fmt.Sprintf("h must be positive, got %d", opts.H)}
	}
	if len(supply) != n || len(demand) != n {
		return Result{}, &ValidationError{Reason: "supply/demand vectors must have length equal to the vertex count"}
	}
	for v := 0; v < n; v++ {
		if supply[v] < 0 {
			return Result{}, &ValidationError{Reason: fmt.Sprintf("negative supply at vertex %d", v)}
		}
		if demand[v] < 0 {
			return Result{}, &ValidationError{Reason: fmt.Sprintf("negative demand at vertex %d", v)}
		}
	}

	weight := opts.Weight
	if weight == nil {
		weight = UnitWeight
	}
	obs := opts.Observer
	if obs == nil {
		obs = NoopObserver{}
	}

	ctx := newSolveContext(g, supply, demand, weight, opts.H, obs)

	incomplete := false
	iterations := 0
	for {
		if err := ctx.runRelabelPhase(); err != nil {
			return Result{}, err
		}

		s, found := ctx.findExcessSource()
		if !found {
			break
		}
		if opts.MaxIterations > 0 && iterations >= opts.MaxIterations {
			incomplete = true
			break
		}

		path, ok := ctx.tracePath(s)
		if !ok {
			return Result{}, &InternalConsistencyError{
				Vertex: s,
				Detail: "no admissible path to a residual-sink vertex after the relabel phase reached fixpoint",
			}
		}
		if err := ctx.augment(s, path); err != nil {
			return Result{}, err
		}
		iterations++
	}
	return ctx.result(incomplete), nil
}

// runRelabelPhase drains the admissibility worklist, relabeling every
// vertex that is still (after re-validation at dequeue) alive,
// residual-sink-saturated, and has no admissible outgoing residual edge. A
// single relabel only advances a vertex to the next weight-aligned level;
// that alone does not guarantee the level-gap condition holds for any
// incident edge, so a vertex that comes out of relabel still lacking an
// admissible out-edge is re-enqueued to try again at its new, higher level
// rather than being dropped from consideration.
func (ctx *solveContext) runRelabelPhase() error {
	for {
		v, ok := ctx.adm.nextCandidate(ctx.alive, func(v int) bool { return ctx.residualSink(v) == 0 })
		if !ok {
			return nil
		}
		if err := ctx.relabel(v); err != nil {
			return err
		}
		if ctx.alive[v] && ctx.adm.admCount[v] == 0 && ctx.residualSink(v) == 0 {
			ctx.adm.enqueue(v)
		}
	}
}

// augment saturates a traced path by the largest amount that keeps every
// edge on it within its residual capacity, the source vertex's excess, and
// the terminal vertex's residual sink.
func (ctx *solveContext) augment(s int, path []ResidualEdge) error {
	delta := ctx.residualSource(s)
	last := ctx.g.Head(path[len(path)-1])
	if rs := ctx.residualSink(last); rs < delta {
		delta = rs
	}
	for _, re := range path {
		if rc := ctx.residual.residualCapacity(re); rc < delta {
			delta = rc
		}
	}

	for _, re := range path {
		ctx.residual.push(re, delta)
		if ctx.residual.residualCapacity(re) == 0 {
			if err := ctx.reevaluate(re); err != nil {
				return err
			}
		}
	}
	ctx.obs.OnAugment(s, path, delta)
	return nil
}

// result reads out the flow table and computes the routed flow value: the
// total flow leaving every vertex with positive supply along its outgoing
// edges.
func (ctx *solveContext) result(incomplete bool) Result {
	flow := make([]int64, ctx.g.NumEdges())
	for id := 0; id < ctx.g.NumEdges(); id++ {
		flow[id] = ctx.residual.flowOf(id)
	}
	var routed int64
	for v := 0; v < ctx.g.NumVertices(); v++ {
		if ctx.supply[v] <= 0 {
			continue
		}
		for _, id := range ctx.g.outgoing[v] {
			routed += flow[id]
		}
	}
	return Result{RoutedFlow: routed, Flow: flow, Incomplete: incomplete}
}
