package glue

import "github.com/liftgraph/liftgraph/errkind"

func errUnknownQueryVar(name string) error {
	return errkind.New(errkind.InvalidArgument, "query references unknown random variable %q", name)
}
