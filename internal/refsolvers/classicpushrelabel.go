package refsolvers

import (
	"math"

	flow "github.com/kalexmills/weightedflow"
)

// ClassicPushRelabel computes the maximum flow from source to sink using
// the FIFO discharge/relabel push-relabel algorithm, adapted
// directly from kalexmills-flownet's own graph.go/flow_network.go
// discharge-push-relabel loop, generalized from that implementation's
// fixed source=-2/sink=-1 pseudo-vertex convention to an arbitrary
// source/sink pair over this package's dense vertex ids. It exists purely
// as an unweighted-level oracle the weighted push-relabel engine's
// unit-weight equivalence law is checked against.
func ClassicPushRelabel(g *flow.Graph, source, sink int) (int64, error) {
	r := buildResidual(g)
	n := r.n
	height := make([]int, n)
	excess := make([]int64, n)
	seen := make([]int, n)

	neighbors := make([][]int, n)
	seenNeighbor := make([]map[int]bool, n)
	for v := 0; v < n; v++ {
		seenNeighbor[v] = make(map[int]bool)
	}
	for id := 0; id < g.NumEdges(); id++ {
		e := g.EdgeAt(id)
		if !seenNeighbor[e.From][e.To] {
			seenNeighbor[e.From][e.To] = true
			neighbors[e.From] = append(neighbors[e.From], e.To)
		}
		if !seenNeighbor[e.To][e.From] {
			seenNeighbor[e.To][e.From] = true
			neighbors[e.To] = append(neighbors[e.To], e.From)
		}
	}

	height[source] = n
	for v, c := range r.cap[source] {
		if c > 0 {
			excess[v] += c
			excess[source] -= c
			r.push(source, v, c)
		}
	}

	active := func(v int) bool { return v != source && v != sink && excess[v] > 0 }

	queue := make([]int, 0, n)
	inQueue := make([]bool, n)
	for v := 0; v < n; v++ {
		if active(v) {
			queue = append(queue, v)
			inQueue[v] = true
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false
		for excess[u] > 0 {
			if seen[u] < len(neighbors[u]) {
				v := neighbors[u][seen[u]]
				if r.cap[u][v] > 0 && height[u] == height[v]+1 {
					delta := excess[u]
					if r.cap[u][v] < delta {
						delta = r.cap[u][v]
					}
					r.push(u, v, delta)
					excess[u] -= delta
					excess[v] += delta
					if active(v) && !inQueue[v] {
						queue = append(queue, v)
						inQueue[v] = true
					}
				} else {
					seen[u]++
				}
			} else {
				minHeight := math.MaxInt
				for _, v := range neighbors[u] {
					if r.cap[u][v] > 0 && height[v] < minHeight {
						minHeight = height[v]
					}
				}
				if minHeight == math.MaxInt {
					// u has no residual outgoing edge left at all: its
					// excess can never reach the sink, so it stays stuck
					// rather than being relabeled into an overflow.
					break
				}
				height[u] = minHeight + 1
				seen[u] = 0
			}
		}
	}
	return excess[sink], nil
}
