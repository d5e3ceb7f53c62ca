package modeltext

import "github.com/liftgraph/liftgraph/errkind"

func errUnsupportedRange(prvName string, rng []string) error {
	return errkind.New(errkind.UnsupportedRange, "PRV %q: range %v has no known engine type (only Boolean is supported)", prvName, rng)
}
