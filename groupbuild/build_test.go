package groupbuild_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liftgraph/liftgraph/color"
	"github.com/liftgraph/liftgraph/fgraph"
	"github.com/liftgraph/liftgraph/groupbuild"
	"github.com/liftgraph/liftgraph/pgraph"
)

func boolRV(t *testing.T, name string) *fgraph.RandVar {
	t.Helper()
	rv, err := fgraph.NewRandVar(name, []string{"true", "false"})
	require.NoError(t, err)
	return rv
}

// S1 — trivial propositional FG.
func TestBuildTrivialPropositional(t *testing.T) {
	fg := fgraph.NewFactorGraph()
	a := boolRV(t, "A")
	require.NoError(t, fg.AddRandVar(a))
	f := fgraph.NewFactor("f", []*fgraph.RandVar{a})
	f.Set([]int{0}, 0.5)
	f.Set([]int{1}, 0.5)
	require.NoError(t, fg.AddFactor(f))

	res := color.Refine(fg, nil)
	pfg, rvToIndividual, err := groupbuild.Build(fg, res.NodeColor, res.FactorColor, nil)
	require.NoError(t, err)

	require.Len(t, pfg.PRVs(), 1)
	require.Len(t, pfg.Parfactors(), 1)

	prv := pfg.PRVs()[0]
	require.True(t, prv.Propositional())
	require.Equal(t, []string{"true", "false"}, prv.Range)

	pf := pfg.Parfactors()[0]
	require.Len(t, pf.Scope, 1)
	got := pf.Table()
	require.Equal(t, 0.5, got["true"])
	require.Equal(t, 0.5, got["false"])

	require.Equal(t, prv.Name, rvToIndividual["A"])
}

func equalityFactor(name string, a, b *fgraph.RandVar) *fgraph.Factor {
	f := fgraph.NewFactor(name, []*fgraph.RandVar{a, b})
	f.Set([]int{0, 0}, 1.0)
	f.Set([]int{0, 1}, 0.0)
	f.Set([]int{1, 0}, 0.0)
	f.Set([]int{1, 1}, 1.0)
	return f
}

// S2 — three independent, structurally identical pairs f_i=(A_i,B_i)
// yield 2 PRVs (one per side, each with a size-3 LV sharing the same
// logical variable via the consistent A_i<->B_i bijection) and 1
// parfactor.
func TestBuildSymmetryDetection(t *testing.T) {
	fg := fgraph.NewFactorGraph()
	for i := 0; i < 3; i++ {
		a := boolRV(t, fmt.Sprintf("A%d", i))
		b := boolRV(t, fmt.Sprintf("B%d", i))
		require.NoError(t, fg.AddRandVar(a))
		require.NoError(t, fg.AddRandVar(b))
		require.NoError(t, fg.AddFactor(equalityFactor(fmt.Sprintf("f%d", i), a, b)))
	}

	res := color.Refine(fg, nil)
	pfg, rvToIndividual, err := groupbuild.Build(fg, res.NodeColor, res.FactorColor, nil)
	require.NoError(t, err)

	require.Len(t, pfg.PRVs(), 2)
	require.Len(t, pfg.Parfactors(), 1)

	for _, prv := range pfg.PRVs() {
		require.Len(t, prv.LogVars, 1)
		require.Equal(t, 3, prv.LogVars[0].Size())
	}
	// Stage 3 must have recognized the A-side and B-side groups as sharing
	// one logical variable rather than minting two independent ones.
	require.Same(t, pfg.PRVs()[0].LogVars[0], pfg.PRVs()[1].LogVars[0])

	require.Len(t, rvToIndividual, 6)
	// Every A_i and every B_i must resolve to a distinct ground individual.
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		for _, name := range []string{fmt.Sprintf("A%d", i), fmt.Sprintf("B%d", i)} {
			rep := rvToIndividual[name]
			require.False(t, seen[rep], "duplicate individual assignment: %s", rep)
			seen[rep] = true
		}
	}
}

// A shared-center star (one center RV, three distinct leaves) exercises
// the unequal-size path instead: the center forms a propositional PRV and
// the leaves form a size-3 PRV, with no logical-variable sharing to do.
func TestBuildSharedCenterStarStaysPropositionalAtCenter(t *testing.T) {
	fg := fgraph.NewFactorGraph()
	center := boolRV(t, "center")
	require.NoError(t, fg.AddRandVar(center))
	for i := 0; i < 3; i++ {
		leaf := boolRV(t, fmt.Sprintf("L%d", i))
		require.NoError(t, fg.AddRandVar(leaf))
		require.NoError(t, fg.AddFactor(equalityFactor(fmt.Sprintf("f%d", i), center, leaf)))
	}

	res := color.Refine(fg, nil)
	pfg, rvToIndividual, err := groupbuild.Build(fg, res.NodeColor, res.FactorColor, nil)
	require.NoError(t, err)

	require.Len(t, pfg.PRVs(), 2)

	var centerPRV, leafPRV *pgraph.PRV
	for _, prv := range pfg.PRVs() {
		if prv.Propositional() {
			centerPRV = prv
		} else {
			leafPRV = prv
		}
	}
	require.NotNil(t, centerPRV, "the center must stay propositional")
	require.NotNil(t, leafPRV)
	require.Len(t, leafPRV.LogVars, 1)
	require.Equal(t, 3, leafPRV.LogVars[0].Size())

	require.Equal(t, centerPRV.Name, rvToIndividual["center"])
}

// Stage 3 must refuse to share a logical variable when a common factor is
// incident to more than one member of a group: the bijection it would
// need to build is ambiguous.
func TestBuildInconsistentLogVarSharing(t *testing.T) {
	fg := fgraph.NewFactorGraph()
	a0 := boolRV(t, "A0")
	a1 := boolRV(t, "A1")
	b0 := boolRV(t, "B0")
	b1 := boolRV(t, "B1")
	for _, rv := range []*fgraph.RandVar{a0, a1, b0, b1} {
		require.NoError(t, fg.AddRandVar(rv))
	}
	f := fgraph.NewFactor("f", []*fgraph.RandVar{a0, a1, b0})
	require.NoError(t, fg.AddFactor(f))

	nodeColor := map[string]int{"A0": 0, "A1": 0, "B0": 1, "B1": 1}
	factorColor := map[string]int{"f": 2}

	_, _, err := groupbuild.Build(fg, nodeColor, factorColor, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot share a logical variable")
}

// S6 — a factor with a commutative argument set yields a parfactor whose
// CRV appears first in scope, with histogram-shaped potential keys.
func TestBuildCRVEmission(t *testing.T) {
	fg := fgraph.NewFactorGraph()
	a1 := boolRV(t, "A1")
	a2 := boolRV(t, "A2")
	a3 := boolRV(t, "A3")
	b := boolRV(t, "B")
	for _, rv := range []*fgraph.RandVar{a1, a2, a3, b} {
		require.NoError(t, fg.AddRandVar(rv))
	}
	f := fgraph.NewFactor("f", []*fgraph.RandVar{a1, a2, a3, b})
	require.NoError(t, fg.AddFactor(f))

	// Force A1..A3 into one color (as if color refinement had already
	// recognized them as interchangeable) and give the parfactor a
	// 2-element scope: the counting PRV plus B.
	nodeColor := map[string]int{"A1": 0, "A2": 0, "A3": 0, "B": 1}
	factorColor := map[string]int{"f": 2}

	caches := &groupbuild.Caches{
		CommutativeArgs: map[string][]string{"f": {"A1", "A2", "A3"}},
		Histograms: map[string][]groupbuild.HistogramEntry{
			"f": {
				{Histogram: []int{3, 0}, Rest: []int{0}, Potential: 0.9},
				{Histogram: []int{2, 1}, Rest: []int{0}, Potential: 0.6},
				{Histogram: []int{1, 2}, Rest: []int{0}, Potential: 0.3},
				{Histogram: []int{0, 3}, Rest: []int{0}, Potential: 0.1},
			},
		},
	}

	pfg, _, err := groupbuild.Build(fg, nodeColor, factorColor, caches)
	require.NoError(t, err)

	require.Len(t, pfg.Parfactors(), 1)
	pf := pfg.Parfactors()[0]
	require.Len(t, pf.Scope, 2)
	require.True(t, pf.Scope[0].IsCountingIn(pf.Name), "the counting PRV must be first in scope")

	table := pf.Table()
	require.Equal(t, 0.9, table["3;0, true"])
	require.Equal(t, 0.1, table["0;3, true"])
}

func TestBuildMissingCommutativityAnnotation(t *testing.T) {
	fg := fgraph.NewFactorGraph()
	a1 := boolRV(t, "A1")
	a2 := boolRV(t, "A2")
	require.NoError(t, fg.AddRandVar(a1))
	require.NoError(t, fg.AddRandVar(a2))
	f := fgraph.NewFactor("f", []*fgraph.RandVar{a1, a2})
	require.NoError(t, fg.AddFactor(f))

	nodeColor := map[string]int{"A1": 0, "A2": 0}
	factorColor := map[string]int{"f": 1}

	_, _, err := groupbuild.Build(fg, nodeColor, factorColor, nil)
	require.Error(t, err)
}
