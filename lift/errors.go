package lift

import "github.com/liftgraph/liftgraph/errkind"

// errInvalidThreshold reports a fusion threshold outside [0, 1].
func errInvalidThreshold(tau float64) error {
	return errkind.New(errkind.InvalidArgument, "fusion threshold %v out of range [0, 1]", tau)
}
