package lift

import (
	"github.com/liftgraph/liftgraph/color"
	"github.com/liftgraph/liftgraph/fgraph"
)

// LiftUnknown fuses unknown factors into compatible known groups before
// running color refinement to a fixed point. tau (in [0, 1]) gates
// fusion: a candidate set only adopts a shared color when the largest
// pairwise-possibly-identical subset covers at least that fraction of
// the candidates. Returns InvalidArgument if tau is out of range.
func LiftUnknown(fg *fgraph.FactorGraph, tau float64, seed *color.Seed) (color.Result, error) {
	if tau < 0 || tau > 1 {
		return color.Result{}, errInvalidThreshold(tau)
	}

	nodeColor, factorColor := seedColors(fg, seed)

	cache := pairCache{}
	candidates := map[string][]*fgraph.Factor{}

	factors := fg.Factors()
	for _, f1 := range factors {
		if !f1.Unknown() {
			continue
		}
		for _, f2 := range factors {
			if f2.Name == f1.Name {
				continue
			}
			if !possiblyIdentical(fg, cache, f1, f2) {
				continue
			}
			if f2.Unknown() {
				factorColor[f2.Name] = factorColor[f1.Name]
				continue
			}
			candidates[f1.Name] = append(candidates[f1.Name], f2)
		}
	}

	for _, f1 := range factors {
		cands := candidates[f1.Name]
		if len(cands) == 0 {
			continue
		}

		subset := lppiSubset(fg, cache, cands)
		if float64(len(subset))/float64(len(cands)) < tau {
			continue
		}

		for _, f2 := range subset {
			factorColor[f2.Name] = factorColor[f1.Name]
		}
		f1.CopyTableFrom(subset[0])
	}

	return color.Refine(fg, &color.Seed{NodeColor: nodeColor, FactorColor: factorColor}), nil
}

// seedColors builds the node/factor coloring C3 starts from: the same
// initial pass color.Refine would use (or the caller's seed, if given),
// with every unknown factor's color forced unique.
func seedColors(fg *fgraph.FactorGraph, seed *color.Seed) (map[string]int, map[string]int) {
	var nodeColor, factorColor map[string]int
	if seed != nil {
		nodeColor = make(map[string]int, len(seed.NodeColor))
		for k, v := range seed.NodeColor {
			nodeColor[k] = v
		}
		factorColor = make(map[string]int, len(seed.FactorColor))
		for k, v := range seed.FactorColor {
			factorColor[k] = v
		}
	} else {
		nodeColor, factorColor = color.InitialColors(fg)
	}

	// Offset must clear every color color.InitialColors can hand a known
	// factor (at most len(RVs)+len(Fs)), not just len(Fs): otherwise an
	// unknown factor's "unique" seed color can coincide with a known
	// factor's color and get silently merged into it by the first
	// refinement pass regardless of tau.
	next := len(fg.RandVars()) + len(fg.Factors()) + 1
	for _, f := range fg.Factors() {
		if f.Unknown() {
			factorColor[f.Name] = next
			next++
		}
	}

	return nodeColor, factorColor
}

// lppiSubset approximates the largest pairwise-possibly-identical subset
// of candidates by taking, for each candidate, its neighborhood (itself
// plus every other candidate possibly identical to it) and returning the
// largest such neighborhood. Ties go to the first-encountered candidate.
func lppiSubset(fg *fgraph.FactorGraph, cache pairCache, candidates []*fgraph.Factor) []*fgraph.Factor {
	var best []*fgraph.Factor
	for i, c := range candidates {
		neigh := []*fgraph.Factor{c}
		for j, d := range candidates {
			if j == i {
				continue
			}
			if possiblyIdentical(fg, cache, c, d) {
				neigh = append(neigh, d)
			}
		}
		if len(neigh) > len(best) {
			best = neigh
		}
	}
	return best
}
