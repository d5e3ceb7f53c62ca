// Package lift extends color refinement so that factors with no known
// potential table can be grouped with known ones whose potentials they
// then adopt.
//
// # Algorithm
//
//  1. Seed node colors and known-factor colors the same way color.Refine
//     does by default; give every unknown factor its own unique color
//     (starting at |RVs|+|Fs|+1, above every initial known-factor color).
//  2. For each unknown factor F1, scan every other factor F2 and test
//     "possibly identical": symmetric neighborhoods (a scope-size-matching
//     bijection preserving range, evidence, and incident-factor count) and
//     compatible potentials (at least one unknown, or identical tables).
//     An unknown F2 that is possibly identical to F1 is fused into F1's
//     color immediately; a known F2 becomes a candidate for F1.
//  3. For each F1 with candidates, compute the largest pairwise-possibly-
//     identical (LPPI) subset via a per-element neighborhood proxy: for
//     each candidate, its neighborhood is itself plus every other
//     candidate possibly identical to it; the largest such neighborhood is
//     taken as the subset. This is an approximation of maximum clique, not
//     an exact solution.
//  4. If the subset covers at least a τ fraction of F1's candidates, every
//     member adopts F1's color and F1 imputes the potential table of an
//     arbitrary member. Otherwise F1 stays isolated.
//  5. Re-run color refinement on the augmented seed; this may split
//     fusions apart again once the imputed potentials feed back into
//     ordinary signature comparison.
//
// Determinism depends on iterating factors and candidates in a single
// stable order — the factor graph's insertion order — throughout.
package lift
