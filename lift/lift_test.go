package lift_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liftgraph/liftgraph/color"
	"github.com/liftgraph/liftgraph/fgraph"
	"github.com/liftgraph/liftgraph/lift"
)

func boolRV(t *testing.T, name string) *fgraph.RandVar {
	t.Helper()
	rv, err := fgraph.NewRandVar(name, []string{"true", "false"})
	require.NoError(t, err)
	return rv
}

func equalityFactor(name string, a, b *fgraph.RandVar) *fgraph.Factor {
	f := fgraph.NewFactor(name, []*fgraph.RandVar{a, b})
	f.Set([]int{0, 0}, 1.0)
	f.Set([]int{0, 1}, 0.0)
	f.Set([]int{1, 0}, 0.0)
	f.Set([]int{1, 1}, 1.0)
	return f
}

// threeStars builds the S2/S3 fixture: three structurally identical star
// factors f0, f1, f2 each linking "center" to a distinct leaf.
func threeStars(t *testing.T) (*fgraph.FactorGraph, []*fgraph.RandVar) {
	t.Helper()
	fg := fgraph.NewFactorGraph()
	center := boolRV(t, "center")
	require.NoError(t, fg.AddRandVar(center))

	leaves := make([]*fgraph.RandVar, 3)
	for i := 0; i < 3; i++ {
		leaf := boolRV(t, string(rune('A'+i)))
		require.NoError(t, fg.AddRandVar(leaf))
		leaves[i] = leaf
		require.NoError(t, fg.AddFactor(equalityFactor(fmt.Sprintf("f%d", i), center, leaf)))
	}
	return fg, leaves
}

func distinctValues(m map[string]int) map[int]bool {
	out := make(map[int]bool)
	for _, v := range m {
		out[v] = true
	}
	return out
}

func TestInvalidThreshold(t *testing.T) {
	fg, _ := threeStars(t)
	_, err := lift.LiftUnknown(fg, 1.5, nil)
	require.Error(t, err)
	_, err = lift.LiftUnknown(fg, -0.1, nil)
	require.Error(t, err)
}

// S3 — clearing f1's potential and running with tau=1.0 must fuse it back
// with f0 and f2, imputing their shared table, reaching the same final
// partition color.Refine alone would reach on the fully-known graph.
func TestUnknownFactorFusionMatchesKnownBaseline(t *testing.T) {
	known, _ := threeStars(t)
	baseline := color.Refine(known, nil)

	withUnknown, _ := threeStars(t)
	f1, ok := withUnknown.FactorByName("f1")
	require.True(t, ok)
	f1.CopyTableFrom(fgraph.NewFactor("empty", f1.Scope)) // clears the table

	res, err := lift.LiftUnknown(withUnknown, 1.0, nil)
	require.NoError(t, err)

	require.Len(t, distinctValues(res.NodeColor), len(distinctValues(baseline.NodeColor)))
	require.Len(t, distinctValues(res.FactorColor), len(distinctValues(baseline.FactorColor)))
}

// S4 — if A0 carries evidence while A1, A2 do not, the neighborhood
// asymmetry must prevent f0 from being folded back in with f1, f2.
func TestAsymmetricEvidenceBlocksRejoin(t *testing.T) {
	fg := fgraph.NewFactorGraph()
	center := boolRV(t, "center")
	require.NoError(t, fg.AddRandVar(center))

	a0 := boolRV(t, "A0")
	withEv, err := a0.WithEvidence("true")
	require.NoError(t, err)
	a0 = withEv
	require.NoError(t, fg.AddRandVar(a0))
	f0 := equalityFactor("f0", center, a0)
	f0.CopyTableFrom(fgraph.NewFactor("empty", f0.Scope))
	require.NoError(t, fg.AddFactor(f0))

	for i := 1; i < 3; i++ {
		leaf := boolRV(t, fmt.Sprintf("A%d", i))
		require.NoError(t, fg.AddRandVar(leaf))
		require.NoError(t, fg.AddFactor(equalityFactor(fmt.Sprintf("f%d", i), center, leaf)))
	}

	res, err := lift.LiftUnknown(fg, 1.0, nil)
	require.NoError(t, err)
	require.NotEqual(t, res.FactorColor["f0"], res.FactorColor["f1"])
}

// S5 — of three possibly-identical candidates for one unknown factor, two
// (c0, c1) are pairwise-consistent with each other but not with the third
// (odd, whose table differs). The LPPI subset {c0, c1} covers 2/3 of the
// candidates: at tau=1.0 that's below threshold and fusion is blocked; at
// tau=0.5 it's let through.
func TestThresholdGating(t *testing.T) {
	build := func(t *testing.T) *fgraph.FactorGraph {
		t.Helper()
		fg := fgraph.NewFactorGraph()
		center := boolRV(t, "center")
		require.NoError(t, fg.AddRandVar(center))

		u := boolRV(t, "U")
		require.NoError(t, fg.AddRandVar(u))
		unknownF := fgraph.NewFactor("unknownF", []*fgraph.RandVar{center, u})
		require.NoError(t, fg.AddFactor(unknownF))

		for i := 0; i < 2; i++ {
			leaf := boolRV(t, fmt.Sprintf("C%d", i))
			require.NoError(t, fg.AddRandVar(leaf))
			require.NoError(t, fg.AddFactor(equalityFactor(fmt.Sprintf("c%d", i), center, leaf)))
		}

		odd := boolRV(t, "Odd")
		require.NoError(t, fg.AddRandVar(odd))
		oddFactor := fgraph.NewFactor("odd", []*fgraph.RandVar{center, odd})
		oddFactor.Set([]int{0, 0}, 0.9)
		oddFactor.Set([]int{0, 1}, 0.1)
		oddFactor.Set([]int{1, 0}, 0.9)
		oddFactor.Set([]int{1, 1}, 0.1)
		require.NoError(t, fg.AddFactor(oddFactor))

		return fg
	}

	strict := build(t)
	resStrict, err := lift.LiftUnknown(strict, 1.0, nil)
	require.NoError(t, err)
	require.NotEqual(t, resStrict.FactorColor["unknownF"], resStrict.FactorColor["c0"])

	lenient := build(t)
	resLenient, err := lift.LiftUnknown(lenient, 0.5, nil)
	require.NoError(t, err)
	require.Equal(t, resLenient.FactorColor["unknownF"], resLenient.FactorColor["c0"])
	require.Equal(t, resLenient.FactorColor["unknownF"], resLenient.FactorColor["c1"])
}
