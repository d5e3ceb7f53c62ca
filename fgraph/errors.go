package fgraph

import "errors"

// Sentinel errors for fgraph operations. Wrapped with fmt.Errorf("...: %w", ...)
// at call sites that add positional context.
var (
	// ErrDuplicateName indicates an RV or Factor name collides with one
	// already present in its kind's namespace.
	ErrDuplicateName = errors.New("fgraph: duplicate name")
	// ErrUnknownRandVar indicates a factor's scope references an RV the
	// graph does not contain.
	ErrUnknownRandVar = errors.New("fgraph: unknown random variable")
	// ErrRandVarNotFound indicates a lookup by name failed.
	ErrRandVarNotFound = errors.New("fgraph: random variable not found")
	// ErrFactorNotFound indicates a lookup by name failed.
	ErrFactorNotFound = errors.New("fgraph: factor not found")
	// ErrEmptyRange indicates an RV was constructed with no domain values.
	ErrEmptyRange = errors.New("fgraph: random variable range is empty")
	// ErrBadEvidence indicates evidence is not a member of the RV's range.
	ErrBadEvidence = errors.New("fgraph: evidence not in range")
)
