package fgraph

import (
	"encoding/json"
	"fmt"
)

// factorJSON is the on-disk shape of a Factor: its scope recorded by RV
// name (resolved back to shared pointers on load) rather than embedding
// full RandVar copies.
type factorJSON struct {
	Name  string             `json:"name"`
	Scope []string           `json:"scope"`
	Table map[string]float64 `json:"table,omitempty"`
}

type factorGraphJSON struct {
	RandVars []*RandVar   `json:"rand_vars"`
	Factors  []factorJSON `json:"factors"`
}

// MarshalJSON serializes fg as its RVs followed by its Factors (scope
// recorded by name), both in insertion order.
func (fg *FactorGraph) MarshalJSON() ([]byte, error) {
	out := factorGraphJSON{RandVars: fg.RandVars()}
	for _, f := range fg.Factors() {
		names := make([]string, len(f.Scope))
		for i, rv := range f.Scope {
			names[i] = rv.Name
		}
		out.Factors = append(out.Factors, factorJSON{Name: f.Name, Scope: names, Table: f.table})
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds fg from MarshalJSON's output, re-resolving
// scope names to the single shared RandVar instances it owns.
func (fg *FactorGraph) UnmarshalJSON(data []byte) error {
	var in factorGraphJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*fg = *NewFactorGraph()
	for _, rv := range in.RandVars {
		if err := fg.AddRandVar(rv); err != nil {
			return err
		}
	}
	for _, fj := range in.Factors {
		scope := make([]*RandVar, len(fj.Scope))
		for i, name := range fj.Scope {
			rv, ok := fg.rv[name]
			if !ok {
				return fmt.Errorf("UnmarshalJSON: factor %q references unknown RV %q: %w", fj.Name, name, ErrUnknownRandVar)
			}
			scope[i] = rv
		}
		f := NewFactor(fj.Name, scope)
		f.table = fj.Table
		if err := fg.AddFactor(f); err != nil {
			return err
		}
	}
	return nil
}
