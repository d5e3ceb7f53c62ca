package fgraph

// Degree returns the number of edges incident to the RV named name
// (occurrences across all factor scopes, counting repeats within a
// single factor's scope once per position).
func (fg *FactorGraph) Degree(name string) int {
	return len(fg.edgesOf[name])
}

// Neighbors returns the distinct Factors incident to the RV named name,
// in first-occurrence order.
func (fg *FactorGraph) Neighbors(name string) []*Factor {
	seen := make(map[string]bool)
	var out []*Factor
	for _, e := range fg.edgesOf[name] {
		if seen[e.Factor] {
			continue
		}
		seen[e.Factor] = true
		out = append(out, fg.factor[e.Factor])
	}
	return out
}

// EdgesOf returns every (factorName, position) occurrence of the RV named
// name, in the order factors were added. This is the basis of C2's RV
// signature: "(factorColor(F), position-of-RV-within-F)" per edge.
func (fg *FactorGraph) EdgesOf(name string) []EdgeRef {
	refs := fg.edgesOf[name]
	out := make([]EdgeRef, len(refs))
	copy(out, refs)
	return out
}
