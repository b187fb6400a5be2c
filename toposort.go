package flow

import "container/heap"

// TopologicalOrder returns a topological ordering of g's vertices, using a
// min-heap of ready vertices so that ties among simultaneously-ready
// vertices break deterministically by vertex id. Adapted from
// kalexmills-flownet's FlowNetwork.TopSort (itself container/heap-based),
// generalized to this package's Graph type.
//
// It returns a *ValidationError if g is not a DAG. Callers use the result
// to build a TopologicalRankWeight oracle for a DAG instance.
func TopologicalOrder(g *Graph) ([]int, error) {
	indegree := make([]int, g.NumVertices())
	for id := 0; id < g.NumEdges(); id++ {
		indegree[g.EdgeAt(id).To]++
	}

	ready := &vertexHeap{}
	for v := 0; v < g.NumVertices(); v++ {
		if indegree[v] == 0 {
			heap.Push(ready, v)
		}
	}

	order := make([]int, 0, g.NumVertices())
	for ready.Len() > 0 {
		v := heap.Pop(ready).(int)
		order = append(order, v)
		for _, id := range g.outgoing[v] {
			w := g.EdgeAt(id).To
			indegree[w]--
			if indegree[w] == 0 {
				heap.Push(ready, w)
			}
		}
	}

	if len(order) != g.NumVertices() {
		return nil, &ValidationError{Reason: "graph has a cycle; topological order is undefined"}
	}
	return order, nil
}

// vertexHeap is a min-heap of vertex ids.
type vertexHeap []int

func (h vertexHeap) Len() int            { return len(h) }
func (h vertexHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h vertexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *vertexHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *vertexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
