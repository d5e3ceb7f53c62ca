// Package color implements color refinement (a.k.a. color passing): a
// Weisfeiler–Leman-style fixed-point procedure that assigns equivalence-
// class colors to a factor graph's random variables and factors based on
// iterated neighborhood signatures.
//
// # Algorithm
//
// Steps per pass, repeated until neither color map changes:
//  1. Build each factor's signature: the ordered sequence of its scope's
//     current node colors, followed by the factor's own current color.
//     Position matters — the algorithm is not symmetric in argument order.
//  2. Reassign factor colors so equal signatures get equal (fresh) colors.
//  3. Build each RV's signature: the ascending-sorted sequence of
//     (newFactorColor, scopePosition) over its incident edges, followed by
//     the sentinel (oldNodeColor, 0).
//  4. Reassign RV colors analogously.
//
// Node colors and factor colors are kept in numerically disjoint ranges
// (node colors in [0, |RVs|), factor colors at |RVs| or above) on every
// pass, not only the first, so a combined signature (as built by the
// groupbuild package) never confuses the two color spaces.
//
// Termination is guaranteed within at most |RVs|+|Fs| passes (colors only
// ever split, never merge, and the number of colors is bounded by the
// number of nodes). Refine is a total function with no
// failure path.
//
// Time complexity: O(passes · (V + E log E)) for the RV-signature sort;
// memory: O(V + E).
package color
