package fgraph

import "fmt"

// EdgeRef names one occurrence of an RV within a factor's scope.
type EdgeRef struct {
	Factor string
	Pos    int
}

// FactorGraph is a bipartite graph over RandVars and Factors. Every edge
// connects one RV to one Factor at a specific scope position; |edges(F)|
// equals |scope(F)| by construction (AddFactor records one edge per scope
// entry, including repeats).
type FactorGraph struct {
	rv     map[string]*RandVar
	factor map[string]*Factor

	rvOrder     []string // insertion order
	factorOrder []string

	edgesOf map[string][]EdgeRef // rv name -> ordered edge occurrences
}

// NewFactorGraph returns an empty FactorGraph.
func NewFactorGraph() *FactorGraph {
	return &FactorGraph{
		rv:      make(map[string]*RandVar),
		factor:  make(map[string]*Factor),
		edgesOf: make(map[string][]EdgeRef),
	}
}

// AddRandVar inserts v. Returns ErrDuplicateName if v.Name is already present.
func (fg *FactorGraph) AddRandVar(v *RandVar) error {
	if _, ok := fg.rv[v.Name]; ok {
		return fmt.Errorf("AddRandVar(%q): %w", v.Name, ErrDuplicateName)
	}
	fg.rv[v.Name] = v
	fg.rvOrder = append(fg.rvOrder, v.Name)
	if _, ok := fg.edgesOf[v.Name]; !ok {
		fg.edgesOf[v.Name] = nil
	}
	return nil
}

// AddFactor inserts f, recording one edge per scope position. Every RV in
// f.Scope must already be the same instance held by fg (see fgraph.doc.go
// on Clone/sharing); returns ErrDuplicateName or ErrUnknownRandVar.
func (fg *FactorGraph) AddFactor(f *Factor) error {
	if _, ok := fg.factor[f.Name]; ok {
		return fmt.Errorf("AddFactor(%q): %w", f.Name, ErrDuplicateName)
	}
	for _, rv := range f.Scope {
		owned, ok := fg.rv[rv.Name]
		if !ok || owned != rv {
			return fmt.Errorf("AddFactor(%q): scope var %q: %w", f.Name, rv.Name, ErrUnknownRandVar)
		}
	}

	fg.factor[f.Name] = f
	fg.factorOrder = append(fg.factorOrder, f.Name)
	for pos, rv := range f.Scope {
		fg.edgesOf[rv.Name] = append(fg.edgesOf[rv.Name], EdgeRef{Factor: f.Name, Pos: pos})
	}
	return nil
}

// HasRandVar reports whether name names an RV in fg.
func (fg *FactorGraph) HasRandVar(name string) bool {
	_, ok := fg.rv[name]
	return ok
}

// HasFactor reports whether name names a Factor in fg.
func (fg *FactorGraph) HasFactor(name string) bool {
	_, ok := fg.factor[name]
	return ok
}

// RandVar looks up an RV by name.
func (fg *FactorGraph) RandVar(name string) (*RandVar, bool) {
	v, ok := fg.rv[name]
	return v, ok
}

// FactorByName looks up a Factor by name.
func (fg *FactorGraph) FactorByName(name string) (*Factor, bool) {
	f, ok := fg.factor[name]
	return f, ok
}

// RandVars returns all RVs in insertion order.
func (fg *FactorGraph) RandVars() []*RandVar {
	out := make([]*RandVar, len(fg.rvOrder))
	for i, name := range fg.rvOrder {
		out[i] = fg.rv[name]
	}
	return out
}

// Factors returns all Factors in insertion order.
func (fg *FactorGraph) Factors() []*Factor {
	out := make([]*Factor, len(fg.factorOrder))
	for i, name := range fg.factorOrder {
		out[i] = fg.factor[name]
	}
	return out
}

// UnknownFactors returns the sub-list of Factors with an empty potential
// table, in insertion order.
func (fg *FactorGraph) UnknownFactors() []*Factor {
	var out []*Factor
	for _, name := range fg.factorOrder {
		if f := fg.factor[name]; f.Unknown() {
			out = append(out, f)
		}
	}
	return out
}
