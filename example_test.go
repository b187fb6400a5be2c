package flow_test

import (
	"fmt"

	flow "github.com/kalexmills/weightedflow"
)

// This example mirrors kalexmills-flownet's own ExampleFlowNetwork: build a
// small network, solve it, and print the routed flow. Per-edge flow
// assignment is intentionally not asserted here, since which admissible
// path the tracer happens to saturate first is an implementation detail;
// only the routed flow value is part of the documented contract.
func ExampleSolve() {
	g, err := flow.NewGraph(6, []flow.Edge{
		{From: 0, To: 1, Cap: 16},
		{From: 0, To: 2, Cap: 13},
		{From: 1, To: 2, Cap: 10},
		{From: 2, To: 1, Cap: 4},
		{From: 1, To: 3, Cap: 12},
		{From: 2, To: 4, Cap: 14},
		{From: 3, To: 2, Cap: 9},
		{From: 4, To: 3, Cap: 7},
		{From: 3, To: 5, Cap: 20},
		{From: 4, To: 5, Cap: 4},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	supply := make([]int64, 6)
	demand := make([]int64, 6)
	supply[0] = 23
	demand[5] = 23

	result, err := flow.Solve(g, supply, demand, flow.Options{Weight: flow.UnitWeight, H: 6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("routed flow: %d\n", result.RoutedFlow)
	// Output:
	// routed flow: 23
}
