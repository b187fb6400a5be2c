// Package flow implements a weighted push-relabel maximum-flow engine over
// directed, capacitated, possibly cyclic graphs with per-vertex supply and
// demand.
//
// The engine departs from classic (Goldberg-Tarjan) push-relabel in one
// respect: each edge carries a positive integer weight, and a vertex's
// level may only advance to the next multiple of an incident edge's weight,
// not simply by one. This is the mechanism that lets the driver bound its
// own work by a height ceiling of 9*h regardless of how the weights are
// chosen, where h is a caller-supplied parameter (for a traditional
// unweighted analysis, taking w ≡ 1 and h >= |V| recovers ordinary
// push-relabel).
//
// A solve never performs I/O, never blocks, and is not safe to share across
// goroutines: it is driven to a single result by one call to Solve.
package flow
