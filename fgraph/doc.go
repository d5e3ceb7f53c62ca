// Package fgraph defines the ground-level data model the lifting pipeline
// consumes: random variables (RandVar), factors (Factor) and the bipartite
// FactorGraph connecting them.
//
// Design:
//   - RandVar and Factor are plain value-ish structs; a Factor's Scope
//     holds pointers into the owning FactorGraph's RandVar instances, so
//     cloning a graph preserves RV sharing across factors the same way
//     pointer-sharing edge-endpoint pattern this
//     package is modeled on.
//   - A Factor's potential table is keyed internally by an encoded tuple
//     of range indices (see EncodeIndices/DecodeIndices), not by
//     stringified values — C2's initial coloring and C3's
//     possibly-identical test compare these tables, so the encoding is
//     chosen for cheap comparisons rather than human readability.
//   - FactorGraph maintains an incidence index (edgesOf) alongside its
//     RV/Factor maps, updated on every AddFactor, so Neighbors/Reachable
//     never re-scan every factor's scope.
//
// The graph performs no locking: the concurrency model here is
// single-threaded and cooperative, so the sync.RWMutex a shared graph
// around its own Graph type is deliberately not carried over here.
package fgraph
