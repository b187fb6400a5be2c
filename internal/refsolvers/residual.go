// Package refsolvers implements independent reference max-flow algorithms
// (Edmonds-Karp, Dinic, classic push-relabel, capacity scaling) used only
// by this package's own tests, which check that a single-source/single-sink
// instance solved by the weighted push-relabel engine under unit weight
// agrees with these independently-implemented oracles. No test compares a
// topological-rank-weighted solve against them. None of this package is
// part of the public API.
package refsolvers

import flow "github.com/kalexmills/weightedflow"

// residual is a mutable adjacency-map residual network built fresh for
// each reference-solver run. It is deliberately independent of the
// production solver's own flow bookkeeping (flowState), since the whole
// point of these algorithms is to check the production solver's answer
// against something that does not share its implementation.
type residual struct {
	n   int
	cap []map[int]int64 // cap[u][v] = residual capacity from u to v
}

// buildResidual aggregates parallel edges of g into a single adjacency-map
// residual network, the same aggregation katalvlaran-lvlath's buildCapMap
// performs before running Edmonds-Karp or Dinic.
func buildResidual(g *flow.Graph) *residual {
	n := g.NumVertices()
	r := &residual{n: n, cap: make([]map[int]int64, n)}
	for v := 0; v < n; v++ {
		r.cap[v] = make(map[int]int64)
	}
	for id := 0; id < g.NumEdges(); id++ {
		e := g.EdgeAt(id)
		r.cap[e.From][e.To] += e.Cap
	}
	return r
}

func (r *residual) push(u, v int, delta int64) {
	r.cap[u][v] -= delta
	if r.cap[u][v] <= 0 {
		delete(r.cap[u], v)
	}
	r.cap[v][u] += delta
}

func bfsLevels(r *residual, source int) []int {
	level := make([]int, r.n)
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v, c := range r.cap[u] {
			if c > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level
}
