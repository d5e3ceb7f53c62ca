package lift

import "github.com/liftgraph/liftgraph/fgraph"

// pairCache memoizes the possibly-identical relation, keyed by an
// unordered pair of factor names.
type pairCache map[string]bool

func pairKey(a, b string) string {
	if a < b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}

// possiblyIdentical reports whether f1 and f2 (f1 != f2) could represent
// the same underlying factor: compatible potentials and symmetric
// neighborhoods.
func possiblyIdentical(fg *fgraph.FactorGraph, cache pairCache, f1, f2 *fgraph.Factor) bool {
	key := pairKey(f1.Name, f2.Name)
	if v, ok := cache[key]; ok {
		return v
	}

	result := compatiblePotentials(f1, f2) && symmetricNeighborhoods(fg, f1, f2)
	cache[key] = result
	return result
}

// compatiblePotentials is true when at least one of f1, f2 is unknown, or
// their known tables are bit-identical.
func compatiblePotentials(f1, f2 *fgraph.Factor) bool {
	if f1.Unknown() || f2.Unknown() {
		return true
	}
	return f1.Signature() == f2.Signature()
}

// symmetricNeighborhoods is true iff scope(f1) and scope(f2) have equal
// size and some bijection between them pairs RVs with matching range,
// evidence, and incident-factor count. Edge identity/position is not
// required to match, only these per-RV properties. Found via backtracking
// search, which is fine for the small scopes this domain produces but
// would need a real matching algorithm for large arities.
func symmetricNeighborhoods(fg *fgraph.FactorGraph, f1, f2 *fgraph.Factor) bool {
	if len(f1.Scope) != len(f2.Scope) {
		return false
	}

	used := make([]bool, len(f2.Scope))
	var assign func(i int) bool
	assign = func(i int) bool {
		if i == len(f1.Scope) {
			return true
		}
		rv1 := f1.Scope[i]
		for j, rv2 := range f2.Scope {
			if used[j] {
				continue
			}
			if !rv1.Compatible(rv2) {
				continue
			}
			if fg.Degree(rv1.Name) != fg.Degree(rv2.Name) {
				continue
			}
			used[j] = true
			if assign(i + 1) {
				return true
			}
			used[j] = false
		}
		return false
	}

	return assign(0)
}
