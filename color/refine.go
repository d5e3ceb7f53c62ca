package color

import (
	"sort"

	"github.com/liftgraph/liftgraph/fgraph"
)

// factorSig is the signature compared to group factors into color classes.
type factorSig struct {
	scopeColors string // encoded sequence of scope RV colors
	ownColor    int    // the factor's own current color
}

// edgeSig is one (factorColor, scopePosition) pair contributing to an RV's
// signature.
type edgeSig struct {
	factorColor int
	pos         int
}

// Refine runs color refinement to a fixed point and returns the resulting
// coloring. If seed is nil, Refine computes the canonical initial coloring
// itself: node colors from fgraph.RandVar.Signature, factor colors from
// fgraph.Factor.Signature, offset so the two ranges never collide.
func Refine(fg *fgraph.FactorGraph, seed *Seed) Result {
	nodeColor, factorColor := initialColors(fg, seed)

	passes := 0
	for {
		newFactorColor, fChanged := reassignFactorColors(fg, nodeColor, factorColor)
		newNodeColor, nChanged := reassignNodeColors(fg, nodeColor, newFactorColor)
		passes++

		nodeColor, factorColor = newNodeColor, newFactorColor
		if !fChanged && !nChanged {
			break
		}
	}

	return Result{NodeColor: nodeColor, FactorColor: factorColor, Passes: passes}
}

// initialColors computes the starting coloring used when seed is nil, or
// returns a defensive copy of seed's maps otherwise.
func initialColors(fg *fgraph.FactorGraph, seed *Seed) (map[string]int, map[string]int) {
	if seed != nil {
		nc := make(map[string]int, len(seed.NodeColor))
		for k, v := range seed.NodeColor {
			nc[k] = v
		}
		fc := make(map[string]int, len(seed.FactorColor))
		for k, v := range seed.FactorColor {
			fc[k] = v
		}
		return nc, fc
	}
	return InitialColors(fg)
}

// InitialColors computes the canonical starting coloring for fg with no
// seed: RVs colored by (range, evidence) in encounter order, known factors
// colored by potential table in encounter order, and every unknown factor
// sharing the single color |RVs| so the node and factor color spaces never
// collide. Exported so other components (the unknown-factor lifter) can
// build on the same initial pass before layering their own overrides.
func InitialColors(fg *fgraph.FactorGraph) (map[string]int, map[string]int) {
	nodeColor := make(map[string]int, len(fg.RandVars()))
	nodeBySig := make(map[string]int)
	for _, rv := range fg.RandVars() {
		sig := rv.Signature()
		c, ok := nodeBySig[sig]
		if !ok {
			c = len(nodeBySig)
			nodeBySig[sig] = c
		}
		nodeColor[rv.Name] = c
	}

	base := len(fg.RandVars())
	factorColor := make(map[string]int, len(fg.Factors()))
	knownBySig := make(map[string]int)
	for _, f := range fg.Factors() {
		if f.Unknown() {
			factorColor[f.Name] = base
			continue
		}
		sig := f.Signature()
		ord, ok := knownBySig[sig]
		if !ok {
			ord = len(knownBySig) + 1 // +1 reserves base for the unknown class
			knownBySig[sig] = ord
		}
		factorColor[f.Name] = base + ord
	}

	return nodeColor, factorColor
}

// reassignFactorColors builds each factor's signature from the current
// node coloring plus the factor's own current color, then assigns fresh,
// disjoint-from-node-space colors to equal-signature groups in
// first-encounter order.
func reassignFactorColors(fg *fgraph.FactorGraph, nodeColor, factorColor map[string]int) (map[string]int, bool) {
	base := len(fg.RandVars())

	order := make([]string, 0)
	classOf := make(map[string]string)
	for _, f := range fg.Factors() {
		scope := make([]int, len(f.Scope))
		for i, rv := range f.Scope {
			scope[i] = nodeColor[rv.Name]
		}
		sig := fgraph.EncodeIndices(scope) + "|" + fgraph.EncodeIndices([]int{factorColor[f.Name]})
		if _, ok := classOf[sig]; !ok {
			classOf[sig] = sig
			order = append(order, sig)
		}
	}

	classColor := make(map[string]int, len(order))
	for i, sig := range order {
		classColor[sig] = base + i
	}

	out := make(map[string]int, len(fg.Factors()))
	for _, f := range fg.Factors() {
		scope := make([]int, len(f.Scope))
		for i, rv := range f.Scope {
			scope[i] = nodeColor[rv.Name]
		}
		sig := fgraph.EncodeIndices(scope) + "|" + fgraph.EncodeIndices([]int{factorColor[f.Name]})
		out[f.Name] = classColor[sig]
	}

	return out, !intMapsEqual(out, factorColor)
}

// reassignNodeColors builds each RV's signature from the ascending-sorted
// sequence of (newFactorColor, position) pairs over its incident edges,
// with the RV's own prior color appended as a tie-breaking sentinel, then
// assigns fresh colors in [0, |RVs|) to equal-signature groups in
// first-encounter order.
func reassignNodeColors(fg *fgraph.FactorGraph, oldNodeColor, newFactorColor map[string]int) (map[string]int, bool) {
	order := make([]string, 0)
	seen := make(map[string]bool)
	sigOf := make(map[string]string, len(fg.RandVars()))

	for _, rv := range fg.RandVars() {
		edges := fg.EdgesOf(rv.Name)
		pairs := make([]edgeSig, len(edges))
		for i, e := range edges {
			pairs[i] = edgeSig{factorColor: newFactorColor[e.Factor], pos: e.Pos}
		}
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].factorColor != pairs[j].factorColor {
				return pairs[i].factorColor < pairs[j].factorColor
			}
			return pairs[i].pos < pairs[j].pos
		})

		idx := make([]int, 0, 2*len(pairs)+2)
		for _, p := range pairs {
			idx = append(idx, p.factorColor, p.pos)
		}
		idx = append(idx, oldNodeColor[rv.Name], 0)

		sig := fgraph.EncodeIndices(idx)
		sigOf[rv.Name] = sig
		if !seen[sig] {
			seen[sig] = true
			order = append(order, sig)
		}
	}

	classColor := make(map[string]int, len(order))
	for i, sig := range order {
		classColor[sig] = i
	}

	out := make(map[string]int, len(fg.RandVars()))
	for _, rv := range fg.RandVars() {
		out[rv.Name] = classColor[sigOf[rv.Name]]
	}

	return out, !intMapsEqual(out, oldNodeColor)
}

func intMapsEqual(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
