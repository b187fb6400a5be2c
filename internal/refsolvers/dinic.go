package refsolvers

import (
	"math"

	flow "github.com/kalexmills/weightedflow"
)

// Dinic computes the maximum flow from source to sink by repeatedly
// building a level graph (BFS) and saturating it with blocking DFS flows,
// adapted from katalvlaran-lvlath/flow/dinic.go's level-graph-plus-
// blocking-flow structure.
func Dinic(g *flow.Graph, source, sink int) (int64, error) {
	r := buildResidual(g)
	var total int64
	for {
		level := bfsLevels(r, source)
		if level[sink] < 0 {
			break
		}
		for {
			pushed := dinicDFS(r, level, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}
	return total, nil
}

// dinicDFS recursively pushes flow along the level graph, updating the
// residual network in place and returning the amount actually sent.
func dinicDFS(r *residual, level []int, u, sink int, avail int64) int64 {
	if u == sink {
		return avail
	}
	for v, c := range r.cap[u] {
		if c <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := c
		if avail < send {
			send = avail
		}
		if send == 0 {
			continue
		}
		pushed := dinicDFS(r, level, v, sink, send)
		if pushed > 0 {
			r.push(u, v, pushed)
			return pushed
		}
	}
	return 0
}
