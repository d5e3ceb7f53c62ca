package glue

import (
	"fmt"

	"github.com/liftgraph/liftgraph/color"
	"github.com/liftgraph/liftgraph/fgraph"
)

// Similarity scores how structurally alike two factor graphs are by
// comparing their color-refinement partition shapes: the multiset of
// node-color-class sizes and the multiset of factor-color-class sizes,
// combined and compared with a Jaccard index. Two isomorphic graphs
// score 1.0; graphs with nothing in common score 0.0. This does not
// attempt a graph-isomorphism test — two non-isomorphic graphs that
// happen to produce the same class-size multiset will also score 1.0.
func Similarity(a, b *fgraph.FactorGraph) float64 {
	bagA := partitionBag(a)
	bagB := partitionBag(b)
	return jaccard(bagA, bagB)
}

// partitionBag refines fg and returns a multiset of "kind:size" tokens,
// one per color class, tagged by whether it's a node or factor class so
// a node class and a factor class of equal size never collapse together.
func partitionBag(fg *fgraph.FactorGraph) map[string]int {
	res := color.Refine(fg, nil)
	bag := make(map[string]int)

	nodeSizes := make(map[int]int)
	for _, c := range res.NodeColor {
		nodeSizes[c]++
	}
	for _, size := range nodeSizes {
		bag[fmt.Sprintf("node:%d", size)]++
	}

	factorSizes := make(map[int]int)
	for _, c := range res.FactorColor {
		factorSizes[c]++
	}
	for _, size := range factorSizes {
		bag[fmt.Sprintf("factor:%d", size)]++
	}

	return bag
}

// jaccard computes the Jaccard index of two multisets represented as
// token->count maps: sum of per-token minimums over sum of per-token
// maximums.
func jaccard(a, b map[string]int) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	keys := make(map[string]bool, len(a)+len(b))
	for k := range a {
		keys[k] = true
	}
	for k := range b {
		keys[k] = true
	}

	var inter, union int
	for k := range keys {
		ca, cb := a[k], b[k]
		if ca < cb {
			inter += ca
			union += cb
		} else {
			inter += cb
			union += ca
		}
	}
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}
