package groupbuild

import (
	"sort"

	"github.com/liftgraph/liftgraph/fgraph"
)

// rvGroups inverts nodeColor into color -> member RVs, preserving the
// order RVs were added to fg within each group.
func rvGroups(fg *fgraph.FactorGraph, nodeColor map[string]int) map[int][]*fgraph.RandVar {
	out := make(map[int][]*fgraph.RandVar)
	for _, rv := range fg.RandVars() {
		g := nodeColor[rv.Name]
		out[g] = append(out[g], rv)
	}
	return out
}

// factorGroups inverts factorColor into color -> member Factors,
// preserving insertion order within each group.
func factorGroups(fg *fgraph.FactorGraph, factorColor map[string]int) map[int][]*fgraph.Factor {
	out := make(map[int][]*fgraph.Factor)
	for _, f := range fg.Factors() {
		g := factorColor[f.Name]
		out[g] = append(out[g], f)
	}
	return out
}

// sortedKeys returns m's keys in ascending order, the stable traversal
// order every stage below uses.
func sortedKeys(m map[int][]*fgraph.RandVar) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedFactorKeys(m map[int][]*fgraph.Factor) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
