package pgraph

import "fmt"

// EdgeRef names one occurrence of a PRV within a parfactor's scope.
type EdgeRef struct {
	Parfactor string
	Pos       int
}

// ParfactorGraph is a bipartite graph over PRVs and Parfactors, the
// lifted counterpart of fgraph.FactorGraph.
//
// Unlike fgraph.Factor, a Parfactor's Scope is not frozen once added —
// stage 4 of the group builder reorders a parfactor's scope in place to
// put its counting PRV first. EdgesOf and Degree therefore derive their
// answer from the live Scope slices on every call instead of maintaining
// an incremental index that a later reorder would silently invalidate.
type ParfactorGraph struct {
	prv map[string]*PRV
	pf  map[string]*Parfactor

	prvOrder []string
	pfOrder  []string
}

// NewParfactorGraph returns an empty ParfactorGraph.
func NewParfactorGraph() *ParfactorGraph {
	return &ParfactorGraph{
		prv: make(map[string]*PRV),
		pf:  make(map[string]*Parfactor),
	}
}

// AddPRV inserts p. Returns ErrDuplicateName if p.Name is already present.
func (g *ParfactorGraph) AddPRV(p *PRV) error {
	if _, ok := g.prv[p.Name]; ok {
		return fmt.Errorf("AddPRV(%q): %w", p.Name, ErrDuplicateName)
	}
	g.prv[p.Name] = p
	g.prvOrder = append(g.prvOrder, p.Name)
	return nil
}

// AddParfactor inserts f. Every PRV in f.Scope must already be an
// instance owned by g.
func (g *ParfactorGraph) AddParfactor(f *Parfactor) error {
	if _, ok := g.pf[f.Name]; ok {
		return fmt.Errorf("AddParfactor(%q): %w", f.Name, ErrDuplicateName)
	}
	for _, p := range f.Scope {
		owned, ok := g.prv[p.Name]
		if !ok || owned != p {
			return fmt.Errorf("AddParfactor(%q): scope var %q: %w", f.Name, p.Name, ErrUnknownPRV)
		}
	}

	g.pf[f.Name] = f
	g.pfOrder = append(g.pfOrder, f.Name)
	return nil
}

// PRV looks up a PRV by name.
func (g *ParfactorGraph) PRV(name string) (*PRV, bool) {
	p, ok := g.prv[name]
	return p, ok
}

// ParfactorByName looks up a Parfactor by name.
func (g *ParfactorGraph) ParfactorByName(name string) (*Parfactor, bool) {
	f, ok := g.pf[name]
	return f, ok
}

// PRVs returns every PRV in insertion order.
func (g *ParfactorGraph) PRVs() []*PRV {
	out := make([]*PRV, len(g.prvOrder))
	for i, name := range g.prvOrder {
		out[i] = g.prv[name]
	}
	return out
}

// Parfactors returns every Parfactor in insertion order.
func (g *ParfactorGraph) Parfactors() []*Parfactor {
	out := make([]*Parfactor, len(g.pfOrder))
	for i, name := range g.pfOrder {
		out[i] = g.pf[name]
	}
	return out
}

// EdgesOf returns every (parfactorName, position) occurrence of the PRV
// named name, in parfactor insertion order, reflecting each parfactor's
// current scope.
func (g *ParfactorGraph) EdgesOf(name string) []EdgeRef {
	var out []EdgeRef
	for _, pfName := range g.pfOrder {
		for pos, p := range g.pf[pfName].Scope {
			if p.Name == name {
				out = append(out, EdgeRef{Parfactor: pfName, Pos: pos})
			}
		}
	}
	return out
}

// Degree returns the number of edges incident to the PRV named name.
func (g *ParfactorGraph) Degree(name string) int {
	return len(g.EdgesOf(name))
}
