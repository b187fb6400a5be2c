package refsolvers

import flow "github.com/kalexmills/weightedflow"

// CapacityScaling computes the maximum flow from source to sink via
// repeated scaling-phase BFS augmentation, adapted from
// original_source/src/flows/capacity_scaling.py's CapacityScaling.max_flow
// (no Go analogue of this algorithm existed anywhere in the retrieval
// pack, so it is implemented fresh here in this package's own idiom).
func CapacityScaling(g *flow.Graph, source, sink int) (int64, error) {
	r := buildResidual(g)

	var maxCap int64
	for id := 0; id < g.NumEdges(); id++ {
		if c := g.EdgeAt(id).Cap; c > maxCap {
			maxCap = c
		}
	}
	if maxCap == 0 {
		return 0, nil
	}

	delta := int64(1)
	for delta*2 <= maxCap {
		delta *= 2
	}

	var total int64
	for delta >= 1 {
		for {
			parent := make([]int, r.n)
			for i := range parent {
				parent[i] = -1
			}
			parent[source] = source
			bottleneck := make([]int64, r.n)
			bottleneck[source] = maxCap

			queue := []int{source}
			for i := 0; i < len(queue) && parent[sink] == -1; i++ {
				u := queue[i]
				for v, c := range r.cap[u] {
					if c >= delta && parent[v] == -1 {
						parent[v] = u
						if c < bottleneck[u] {
							bottleneck[v] = c
						} else {
							bottleneck[v] = bottleneck[u]
						}
						queue = append(queue, v)
					}
				}
			}
			if parent[sink] == -1 {
				break
			}
			amount := bottleneck[sink]
			for v := sink; v != source; {
				u := parent[v]
				r.push(u, v, amount)
				v = u
			}
			total += amount
		}
		delta /= 2
	}
	return total, nil
}
