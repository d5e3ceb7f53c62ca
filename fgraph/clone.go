package fgraph

import (
	"github.com/liftgraph/liftgraph/errkind"
)

// Clone returns a deep copy of fg. RVs are copied once into a fresh map;
// every Factor's Scope is rebuilt to point at those new instances, so an
// RV referenced from multiple Factors remains a single shared instance
// after the copy.
func (fg *FactorGraph) Clone() *FactorGraph {
	out := NewFactorGraph()

	newRV := make(map[string]*RandVar, len(fg.rv))
	for _, name := range fg.rvOrder {
		cp := fg.rv[name].clone()
		newRV[name] = cp
		_ = out.AddRandVar(cp)
	}

	for _, name := range fg.factorOrder {
		f := fg.factor[name]
		scope := make([]*RandVar, len(f.Scope))
		for i, rv := range f.Scope {
			scope[i] = newRV[rv.Name]
		}
		nf := NewFactor(f.Name, scope)
		for k, v := range f.table {
			nf.table = mapSet(nf.table, k, v)
		}
		_ = out.AddFactor(nf)
	}

	return out
}

func mapSet(m map[string]float64, k string, v float64) map[string]float64 {
	if m == nil {
		m = make(map[string]float64)
	}
	m[k] = v
	return m
}

// Equal is deep structural equality: same RVs (name/range/evidence), same
// Factors (name/scope names in order/potential table).
func (fg *FactorGraph) Equal(other *FactorGraph) bool {
	if other == nil {
		return false
	}
	if len(fg.rvOrder) != len(other.rvOrder) || len(fg.factorOrder) != len(other.factorOrder) {
		return false
	}
	for name, v := range fg.rv {
		ov, ok := other.rv[name]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	for name, f := range fg.factor {
		of, ok := other.factor[name]
		if !ok || len(f.Scope) != len(of.Scope) {
			return false
		}
		for i, rv := range f.Scope {
			if rv.Name != of.Scope[i].Name {
				return false
			}
		}
		if !f.sameTable(of) {
			return false
		}
	}
	return true
}

// Validate checks that every factor's scope
// resolves to an RV owned by fg, and every known factor's table has
// exactly one entry per point in the Cartesian product of its scope's
// ranges. Returns an *errkind.Error of Kind InvariantViolation.
func (fg *FactorGraph) Validate() error {
	for _, fname := range fg.factorOrder {
		f := fg.factor[fname]
		for _, rv := range f.Scope {
			owned, ok := fg.rv[rv.Name]
			if !ok || owned != rv {
				return errkind.New(errkind.InvariantViolation, "factor %q: scope var %q not owned by graph", fname, rv.Name)
			}
		}
		if f.Unknown() {
			continue
		}
		want := 1
		for _, rv := range f.Scope {
			want *= len(rv.Range)
		}
		if len(f.table) != want {
			return errkind.New(errkind.InvariantViolation, "factor %q: table has %d entries, want %d (Cartesian product of scope ranges)", fname, len(f.table), want)
		}
		for key := range f.table {
			idx := DecodeIndices(key)
			if len(idx) != len(f.Scope) {
				return errkind.New(errkind.InvariantViolation, "factor %q: key %q has %d components, want %d", fname, key, len(idx), len(f.Scope))
			}
			for i, v := range idx {
				if v < 0 || v >= len(f.Scope[i].Range) {
					return errkind.New(errkind.InvariantViolation, "factor %q: key %q position %d out of range", fname, key, i)
				}
			}
		}
	}
	return nil
}
