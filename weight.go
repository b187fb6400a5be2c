package flow

// WeightFunc is a pure, positive-integer-valued oracle over edges. Its
// result is orientation-invariant (w(e) == w(reverse(e))), so it is defined
// over the underlying Edge and its identity rather than a residual arc, and
// the driver consults it at most once per edge identity, caching the
// result.
type WeightFunc func(edgeID int, e Edge) (int, error)

// UnitWeight is the w ≡ 1 oracle. With h >= |V| it reduces weighted
// push-relabel to ordinary push-relabel over an arbitrary directed graph.
func UnitWeight(edgeID int, e Edge) (int, error) { return 1, nil }

// TopologicalRankWeight returns the w(u->v) = |rank(v) - rank(u)| oracle
// over a DAG, given a topological rank per vertex (rank[v] is v's position
// in the order; see TopologicalOrder). Every edge of a DAG under a genuine
// topological order has rank(v) != rank(u), so the weight is always >= 1;
// an edge violating that is reported through WeightOracleError rather than
// silently clamped.
func TopologicalRankWeight(rank []int) WeightFunc {
	return func(edgeID int, e Edge) (int, error) {
		d := rank[e.To] - rank[e.From]
		if d < 0 {
			d = -d
		}
		if d == 0 {
			return 0, &WeightOracleError{Edge: edgeID, Weight: 0}
		}
		return d, nil
	}
}

// weightCache memoizes a WeightFunc per edge identity.
type weightCache struct {
	fn      WeightFunc
	g       *Graph
	weights []int
	known   []bool
}

func newWeightCache(g *Graph, fn WeightFunc) *weightCache {
	return &weightCache{
		fn:      fn,
		g:       g,
		weights: make([]int, g.NumEdges()),
		known:   make([]bool, g.NumEdges()),
	}
}

// weightOf returns the weight of the underlying edge, consulting the
// oracle at most once per edge identity.
func (wc *weightCache) weightOf(edgeID int) (int, error) {
	if wc.known[edgeID] {
		return wc.weights[edgeID], nil
	}
	w, err := wc.fn(edgeID, wc.g.EdgeAt(edgeID))
	if err != nil {
		return 0, err
	}
	if w <= 0 {
		return 0, &WeightOracleError{Edge: edgeID, Weight: w}
	}
	wc.known[edgeID] = true
	wc.weights[edgeID] = w
	return w, nil
}
