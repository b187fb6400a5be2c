package flow

import "fmt"

// Edge is a directed edge (From, To) with capacity Cap >= 1. Self-loops are
// rejected at construction; parallel edges are supported, and each gets a
// distinct identity equal to its index in the graph's edge list.
type Edge struct {
	From, To int
	Cap      int64
}

// Orientation distinguishes the two residual arcs derived from a single
// Edge: the forward arc (residual capacity Cap - flow) and the backward arc
// (residual capacity flow).
type Orientation uint8

const (
	Forward Orientation = iota
	Backward
)

func (o Orientation) String() string {
	if o == Forward {
		return "forward"
	}
	return "backward"
}

// ResidualEdge names one of the two residual arcs derivable from an edge.
// Two residual edges are distinct if either field differs.
type ResidualEdge struct {
	Edge int
	Dir  Orientation
}

// Reverse returns the residual edge running the opposite direction across
// the same underlying edge.
func (re ResidualEdge) Reverse() ResidualEdge {
	if re.Dir == Forward {
		return ResidualEdge{Edge: re.Edge, Dir: Backward}
	}
	return ResidualEdge{Edge: re.Edge, Dir: Forward}
}

// Graph is an immutable directed multigraph over a dense 0..n-1 vertex set,
// with forward/incoming/incident-residual indexes precomputed once at
// construction rather than rebuilt on every traversal.
type Graph struct {
	n     int
	edges []Edge

	outgoing [][]int // outgoing[v]: ids of edges with From == v
	incoming [][]int // incoming[v]: ids of edges with To == v

	// incident[v] lists every residual arc with tail v: the forward arc for
	// each outgoing edge of v, then the backward arc for each incoming edge
	// of v. The order is fixed at construction, which is what gives the
	// path tracer and the relabel reevaluation step a deterministic,
	// repeatable iteration order.
	incident [][]ResidualEdge
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int { return len(g.edges) }

// EdgeAt returns the edge with the given identity.
func (g *Graph) EdgeAt(id int) Edge { return g.edges[id] }

// Tail returns the vertex a residual edge points out of.
func (g *Graph) Tail(re ResidualEdge) int {
	e := g.edges[re.Edge]
	if re.Dir == Forward {
		return e.From
	}
	return e.To
}

// Head returns the vertex a residual edge points into.
func (g *Graph) Head(re ResidualEdge) int {
	e := g.edges[re.Edge]
	if re.Dir == Forward {
		return e.To
	}
	return e.From
}

// Incident returns every residual arc with tail v, in stable construction
// order.
func (g *Graph) Incident(v int) []ResidualEdge { return g.incident[v] }

// NewGraph builds a graph with n vertices (dense IDs 0..n-1) and the given
// edges, constructing the incidence indexes once. It rejects self-loops,
// non-positive capacities, and edges referencing an unknown vertex.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n <= 0 {
		return nil, &ParameterError{Reason: "vertex set must be non-empty"}
	}
	g := &Graph{
		n:        n,
		edges:    make([]Edge, len(edges)),
		outgoing: make([][]int, n),
		incoming: make([][]int, n),
		incident: make([][]ResidualEdge, n),
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n {
			return nil, &ValidationError{Reason: fmt.Sprintf("edge %d: unknown vertex %d", i, e.From)}
		}
		if e.To < 0 || e.To >= n {
			return nil, &ValidationError{Reason: fmt.Sprintf("edge %d: unknown vertex %d", i, e.To)}
		}
		if e.From == e.To {
			return nil, &ValidationError{Reason: fmt.Sprintf("edge %d: self-loop at vertex %d", i, e.From)}
		}
		if e.Cap <= 0 {
			return nil, &ValidationError{Reason: fmt.Sprintf("edge %d: capacity must be positive, got %d", i, e.Cap)}
		}
		g.edges[i] = e
		g.outgoing[e.From] = append(g.outgoing[e.From], i)
		g.incoming[e.To] = append(g.incoming[e.To], i)
	}
	for v := 0; v < n; v++ {
		for _, id := range g.outgoing[v] {
			g.incident[v] = append(g.incident[v], ResidualEdge{Edge: id, Dir: Forward})
		}
		for _, id := range g.incoming[v] {
			g.incident[v] = append(g.incident[v], ResidualEdge{Edge: id, Dir: Backward})
		}
	}
	return g, nil
}
