package flow

// nextMultipleAbove returns the smallest multiple of w strictly greater
// than cur. w must be >= 1.
func nextMultipleAbove(cur, w int) int {
	return (cur/w + 1) * w
}

// relabel raises l(v) to the smallest level strictly above its current
// level at which some incident residual edge becomes weight-aligned
// (divides the new level), or kills v outright if it has no incident
// residual arcs at all, or if the computed level would exceed the 9h death
// ceiling. This is the "next multiple of w(e)" rule: unlike classic
// push-relabel's l(v) += 1, the jump size here is dictated by the weights
// of v's incident edges, which is what lets the driver bound relabels
// overall regardless of how small or large those weights are.
func (ctx *solveContext) relabel(v int) error {
	incident := ctx.g.Incident(v)
	if len(incident) == 0 {
		ctx.level[v] = 9*ctx.h + 1
		return ctx.markDead(v)
	}

	newLevel := -1
	for _, re := range incident {
		w, err := ctx.weights.weightOf(re.Edge)
		if err != nil {
			return err
		}
		cand := nextMultipleAbove(ctx.level[v], w)
		if newLevel == -1 || cand < newLevel {
			newLevel = cand
		}
	}
	ctx.level[v] = newLevel
	ctx.obs.OnRelabel(v, newLevel)

	if newLevel > 9*ctx.h {
		return ctx.markDead(v)
	}

	for _, re := range incident {
		w, err := ctx.weights.weightOf(re.Edge)
		if err != nil {
			return err
		}
		if newLevel%w == 0 {
			if err := ctx.reevaluate(re); err != nil {
				return err
			}
		}
	}
	// Raising l(v) shrinks the level gap of every residual edge into v, so
	// those edges are reevaluated too.
	for _, re := range incident {
		if err := ctx.reevaluate(re.Reverse()); err != nil {
			return err
		}
	}
	return nil
}

// markDead kills v and reevaluates every residual edge that now points
// into a dead head. v's own outgoing residual edges (adm_out(v)) are left
// untouched: v is no longer a relabel or traversal candidate, so nothing
// ever consults them again. But a live predecessor x that held an
// admissible edge x->v must lose it now that v is dead, or x would never
// be re-enqueued into ASNA even though its real admissible-out set is
// empty.
func (ctx *solveContext) markDead(v int) error {
	ctx.alive[v] = false
	ctx.adm.markDead(v)
	ctx.obs.OnDead(v)
	for _, re := range ctx.g.Incident(v) {
		if err := ctx.reevaluate(re.Reverse()); err != nil {
			return err
		}
	}
	return nil
}
