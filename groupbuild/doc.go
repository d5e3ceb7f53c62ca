// Package groupbuild translates a refined color partition of a factor
// graph into a parfactor graph: one parameterized random variable (PRV)
// per node-color group, one parfactor per factor-color group, logical
// variables synthesized for groups of size greater than one, and
// counting random variables (CRVs) where a parfactor's scope collapsed
// relative to its representative factor's.
//
// # Stages
//
//  1. Group extraction: invert nodeColor/factorColor into per-color
//     member lists.
//  2. Placeholder PRVs and parfactors: one PRV per RV group (with a
//     fresh logical variable when the group has more than one member),
//     one parfactor per factor group, scopes wired from factor members.
//  3. Shared logical variables: when two equal-size RV groups are linked
//     by a consistent one-to-one correspondence across every factor that
//     touches both, the later group's PRV adopts the earlier group's LV
//     instead of keeping its own.
//  4. CRVs and potential re-encoding: if a factor group's parfactor ended
//     up with fewer scope positions than its representative factor's
//     arity, the missing arguments collapsed into one counting PRV; the
//     commutative-argument and histogram caches (supplied by an upstream
//     analyzer this package does not implement) are required to rebuild
//     the potential table in that case.
//  5. rvToIndividual: every ground RV is mapped to the textual name of
//     its PRV, applied to an individual from its logical variable's
//     domain when the PRV is not propositional.
//
// Build requires neither cache when no factor group needs a CRV; both
// must be supplied (with an entry for the representative factor) when
// one does, or Build fails with errkind.MissingCommutativityAnnotation.
package groupbuild
