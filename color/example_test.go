package color_test

import (
	"fmt"

	"github.com/liftgraph/liftgraph/color"
	"github.com/liftgraph/liftgraph/fgraph"
)

// Example builds a center RV connected to three
// leaves by identical equality factors. Refinement must separate the
// center from the leaves (2 RV colors) while collapsing the three
// structurally identical factors into one.
func Example() {
	fg := fgraph.NewFactorGraph()

	center, _ := fgraph.NewRandVar("center", []string{"true", "false"})
	_ = fg.AddRandVar(center)

	leaves := []string{"A", "B", "C"}
	for i, name := range leaves {
		leaf, _ := fgraph.NewRandVar(name, []string{"true", "false"})
		_ = fg.AddRandVar(leaf)

		f := fgraph.NewFactor(fmt.Sprintf("f%d", i), []*fgraph.RandVar{center, leaf})
		f.Set([]int{0, 0}, 1.0)
		f.Set([]int{0, 1}, 0.0)
		f.Set([]int{1, 0}, 0.0)
		f.Set([]int{1, 1}, 1.0)
		_ = fg.AddFactor(f)
	}

	res := color.Refine(fg, nil)

	nodeColors := make(map[int]bool)
	for _, c := range res.NodeColor {
		nodeColors[c] = true
	}
	factorColors := make(map[int]bool)
	for _, c := range res.FactorColor {
		factorColors[c] = true
	}

	fmt.Println("distinct RV colors:", len(nodeColors))
	fmt.Println("distinct factor colors:", len(factorColors))

	// Output:
	// distinct RV colors: 2
	// distinct factor colors: 1
}
