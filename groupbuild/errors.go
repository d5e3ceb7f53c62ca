package groupbuild

import "github.com/liftgraph/liftgraph/errkind"

func errMissingCommutativity(factorName string) error {
	return errkind.New(errkind.MissingCommutativityAnnotation,
		"factor %q needs a commutative-argument set but no cache entry supplies one", factorName)
}

func errInconsistentLogVarSharing(g1, g2 int) error {
	return errkind.New(errkind.InvariantViolation,
		"groups %d and %d cannot share a logical variable: a common factor is incident to more than one member of a group", g1, g2)
}

func errCountingPRVNotUnary(prvName string) error {
	return errkind.New(errkind.InvariantViolation,
		"PRV %q would become a counting RV but does not carry exactly one logical variable", prvName)
}
