// Package errkind provides the shared error taxonomy raised by the
// lifting pipeline's components. Every stage — color refinement, the
// unknown-factor lifter, the parfactor builder, the textual emitter, and
// fgraph's Validate — reports its failures as a *errkind.Error so a caller one layer up
// (the out-of-scope CLI driver) can discriminate on Kind without parsing
// strings.
package errkind

import (
	"errors"
	"fmt"
)

// Kind classifies why the pipeline stopped.
type Kind int

const (
	// InvalidArgument marks malformed input, e.g. a threshold outside [0,1].
	InvalidArgument Kind = iota
	// InvariantViolation marks a factor-graph or parfactor-graph validity failure.
	InvariantViolation
	// MissingCommutativityAnnotation marks a CRV inferred without a cache entry.
	MissingCommutativityAnnotation
	// UnsupportedRange marks a PRV range the emitter cannot map to a concrete type.
	UnsupportedRange
	// Timeout is reserved for the external inference collaborator; the core
	// never raises it itself, but carries it so driver code can switch on a
	// single Kind type across both.
	Timeout
)

// String renders a Kind the way fmt.Stringer callers (including %v) expect.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvariantViolation:
		return "InvariantViolation"
	case MissingCommutativityAnnotation:
		return "MissingCommutativityAnnotation"
	case UnsupportedRange:
		return "UnsupportedRange"
	case Timeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Error is the single error type every component returns. Wrap it with
// fmt.Errorf("...: %w", err) at call sites that add local context; Kind
// survives unwrapping via errors.As.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New constructs an *Error of the given Kind.
func New(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given Kind, unwrapping as needed.
func Is(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k
}
