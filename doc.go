// Package liftgraph turns a ground (fully propositional) factor graph
// into a lifted, first-order parfactor graph.
//
// The pipeline runs in stages, each its own package:
//
//	fgraph     — the ground data model: RandVar, Factor, FactorGraph
//	color      — color refinement: partitions random variables and
//	             factors into classes with identical local structure
//	lift       — fuses unknown (untabulated) factors into a compatible
//	             known neighborhood, imputing a shared potential table
//	pgraph     — the lifted data model: LogVar, PRV, Parfactor, ParfactorGraph
//	groupbuild — turns color classes into parfactors, promoting counting
//	             random variables where several arguments of a factor
//	             collapse into a single PRV
//	modeltext  — renders a ParfactorGraph as the textual statement format
//	             an external inference engine consumes
//	glue       — persistence, a structural similarity score, and query
//	             rewriting across the ground/lifted boundary
//
// Run end to end: build a fgraph.FactorGraph, run color.Refine, pass the
// result to lift.LiftUnknown, refine once more, then hand the fixed-point
// coloring to groupbuild.Build to get a *pgraph.ParfactorGraph and a
// ground-to-individual name mapping for glue.Rewrite.
//
//   - Pure Go – no cgo, no hidden deps beyond testify in tests
//   - Deterministic – every stage is single-threaded with no shared
//     mutable state; identical input always yields identical output
//   - Total where possible – color.Refine never fails; lift and
//     groupbuild report errors via the errkind package
package liftgraph
