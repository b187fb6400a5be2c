package flow

// tracePath is the admissible path tracer: an iterative depth-first search
// over the admissibility index only (never the raw graph), starting from
// an excess, alive vertex s, stopping at the first vertex reached with
// positive residual sink. Traversal follows the stable incidence order
// fixed at graph construction and visits each vertex at most once per call,
// so two calls over identical state return identical paths. The search is
// iterative with an explicit stack rather than recursive, so path length is
// bounded only by available memory, not goroutine stack depth.
func (ctx *solveContext) tracePath(s int) ([]ResidualEdge, bool) {
	visited := ctx.tracerVisited
	for i := range visited {
		visited[i] = false
	}
	cursor := ctx.tracerCursor
	for i := range cursor {
		cursor[i] = 0
	}

	path := make([]ResidualEdge, 0, 8)
	stack := make([]int, 0, 8)
	stack = append(stack, s)
	visited[s] = true

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		if ctx.residualSink(v) > 0 {
			return path, true
		}

		incident := ctx.g.Incident(v)
		advanced := false
		for cursor[v] < len(incident) {
			re := incident[cursor[v]]
			cursor[v]++
			if !ctx.adm.isAdm[resIdx(re)] {
				continue
			}
			next := ctx.g.Head(re)
			if !ctx.alive[next] || visited[next] {
				continue
			}
			visited[next] = true
			path = append(path, re)
			stack = append(stack, next)
			advanced = true
			break
		}
		if !advanced {
			if len(stack) == 1 {
				return nil, false
			}
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
		}
	}
	return nil, false
}
