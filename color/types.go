package color

// Seed carries a pre-computed starting coloring. When passed to Refine,
// it replaces the default initialization pass entirely; the refinement
// loop that follows runs identically either way.
type Seed struct {
	NodeColor   map[string]int
	FactorColor map[string]int
}

// Result is the output of a completed refinement: the fixed-point node
// and factor colorings, plus the number of passes taken (exposed for
// tests that check the fixed-point property).
type Result struct {
	NodeColor   map[string]int
	FactorColor map[string]int
	Passes      int
}

// clone returns an independent copy of r's color maps.
func (r Result) clone() Result {
	nc := make(map[string]int, len(r.NodeColor))
	for k, v := range r.NodeColor {
		nc[k] = v
	}
	fc := make(map[string]int, len(r.FactorColor))
	for k, v := range r.FactorColor {
		fc[k] = v
	}
	return Result{NodeColor: nc, FactorColor: fc, Passes: r.Passes}
}

// AsSeed converts a Result into a Seed usable as the starting point of a
// further refinement pass (e.g. after the lifter augments factor colors).
func (r Result) AsSeed() *Seed {
	cp := r.clone()
	return &Seed{NodeColor: cp.NodeColor, FactorColor: cp.FactorColor}
}
