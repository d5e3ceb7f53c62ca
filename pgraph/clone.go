package pgraph

// Equal is deep structural equality: same PRVs (name/range/logvars), same
// Parfactors (name/scope names in order/potential table). CountedOver and
// CountedIn are not compared (PRV.Equal excludes them), so two graphs that
// differ only in which PRVs count in which parfactors compare equal.
func (g *ParfactorGraph) Equal(other *ParfactorGraph) bool {
	if other == nil {
		return false
	}
	if len(g.prvOrder) != len(other.prvOrder) || len(g.pfOrder) != len(other.pfOrder) {
		return false
	}
	for name, p := range g.prv {
		op, ok := other.prv[name]
		if !ok || !p.Equal(op) {
			return false
		}
	}
	for name, f := range g.pf {
		of, ok := other.pf[name]
		if !ok || len(f.Scope) != len(of.Scope) {
			return false
		}
		for i, p := range f.Scope {
			if p.Name != of.Scope[i].Name {
				return false
			}
		}
		if len(f.table) != len(of.table) {
			return false
		}
		for k, v := range f.table {
			if ov, ok := of.table[k]; !ok || ov != v {
				return false
			}
		}
	}
	return true
}
