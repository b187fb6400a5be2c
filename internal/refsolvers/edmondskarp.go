package refsolvers

import (
	"math"

	flow "github.com/kalexmills/weightedflow"
)

// EdmondsKarp computes the maximum flow from source to sink using
// breadth-first shortest augmenting paths, adapted from
// katalvlaran-lvlath/flow/edmonds_karp.go's bfsAugmentingPath, generalized
// from that package's string-keyed vertex model to the dense-integer
// vertex model this package's Graph uses.
func EdmondsKarp(g *flow.Graph, source, sink int) (int64, error) {
	r := buildResidual(g)
	var total int64
	for {
		parent := make([]int, r.n)
		for i := range parent {
			parent[i] = -1
		}
		parent[source] = source
		bottleneck := make([]int64, r.n)
		bottleneck[source] = math.MaxInt64

		queue := []int{source}
		for i := 0; i < len(queue) && parent[sink] == -1; i++ {
			u := queue[i]
			for v, c := range r.cap[u] {
				if c <= 0 || parent[v] != -1 {
					continue
				}
				parent[v] = u
				if c < bottleneck[u] {
					bottleneck[v] = c
				} else {
					bottleneck[v] = bottleneck[u]
				}
				queue = append(queue, v)
			}
		}
		if parent[sink] == -1 {
			break
		}
		delta := bottleneck[sink]
		for v := sink; v != source; {
			u := parent[v]
			r.push(u, v, delta)
			v = u
		}
		total += delta
	}
	return total, nil
}
