package pgraph

import "errors"

var (
	ErrDuplicateName  = errors.New("pgraph: duplicate name")
	ErrUnknownPRV     = errors.New("pgraph: scope references a PRV not owned by this graph")
	ErrEmptyDomain    = errors.New("pgraph: logical variable domain must not be empty")
	ErrEmptyRange     = errors.New("pgraph: PRV range must not be empty")
	ErrNotCounting    = errors.New("pgraph: PRV has no counted-over logical variable")
	ErrMultipleLogVar = errors.New("pgraph: counting PRV must carry exactly one logical variable")
)
