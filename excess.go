package flow

// absorptionOf, excessOf, and residualSinkOf implement the excess/
// absorption accounting: a vertex absorbs as much of what reaches it
// (net_in(v) + supply(v)) as its demand allows, and the remainder on either
// side is what still needs to be routed (excess) or still needs to arrive
// (residual sink). Each takes netIn as an argument rather than reading it
// itself, since flowState maintains netIn incrementally and these stay pure
// functions of their inputs.
func absorptionOf(netIn, supply, demand int64) int64 {
	received := netIn + supply
	if received < demand {
		return received
	}
	return demand
}

func excessOf(netIn, supply, demand int64) int64 {
	return netIn + supply - absorptionOf(netIn, supply, demand)
}

func residualSinkOf(netIn, supply, demand int64) int64 {
	return demand - absorptionOf(netIn, supply, demand)
}
