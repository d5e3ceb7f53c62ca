// Package pgraph is the lifted counterpart of fgraph: parameterized
// random variables (PRVs) and parfactors (PFs) arranged in a bipartite
// parfactor graph (PFG), produced by the groupbuild package from a
// refined color partition.
//
// A PRV generalizes a random variable with zero or more logical
// variables (LVs) — named finite domains of individuals — standing for
// the whole family of ground RVs obtained by substituting domain
// elements. A PRV acts as a counting RV (CRV) within one particular
// parfactor when it carries a CountedOver LV and that parfactor's name
// appears in its CountedIn list.
//
// CountedIn intentionally holds parfactor names rather than *Parfactor
// pointers: a PRV and the parfactors that count over it would otherwise
// reference each other directly, which would force PRV.Equal to either
// recurse forever or hand-roll cycle detection on every comparison.
// Keeping the back-reference as a name list — a handle into the PFG's
// own parfactor table — means Equal can simply ignore it, and any
// consumer that needs the actual Parfactor looks it up through the PFG.
//
// Unlike fgraph.Factor, a Parfactor's potential table is keyed directly
// by formatted assignment strings (plain "i,j,k" for ordinary scopes,
// "h1;h2;…, rest" when the first argument is a CRV's histogram) — the
// table format an external inference engine expects on the wire, so
// there is no index-tuple encoding layer here the way there is in
// fgraph.
package pgraph
