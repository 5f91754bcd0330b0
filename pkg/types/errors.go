package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindResolution ErrKind = iota // class/member/chain missing from the host registry
	ErrKindFormat                    // malformed dump or gamedata file
	ErrKindBounds                    // offset outside the object view
	ErrKindState                     // invalid operation for current state (e.g., read-only object)
)

// String implements fmt.Stringer.
func (k ErrKind) String() string {
	switch k {
	case ErrKindResolution:
		return "resolution"
	case ErrKindFormat:
		return "format"
	case ErrKindBounds:
		return "bounds"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrClassNotFound indicates the registry has no class with the given name.
	ErrClassNotFound = &Error{Kind: ErrKindResolution, Msg: "class not found"}
	// ErrMemberNotFound indicates the class exists but lacks the named member.
	ErrMemberNotFound = &Error{Kind: ErrKindResolution, Msg: "member not found"}
	// ErrChainNotFound indicates the class has no networked-state chain anchor.
	ErrChainNotFound = &Error{Kind: ErrKindResolution, Msg: "chain offset not found"}
	// ErrBadFormat indicates a dump or gamedata file could not be parsed.
	ErrBadFormat = &Error{Kind: ErrKindFormat, Msg: "malformed schema data"}
	// ErrOutOfBounds indicates an offset that falls outside the object view.
	ErrOutOfBounds = &Error{Kind: ErrKindBounds, Msg: "offset out of bounds"}
	// ErrReadonly indicates a mutation was attempted through a read-only object.
	ErrReadonly = &Error{Kind: ErrKindState, Msg: "object is read-only"}
)

// Resolution wraps a resolution sentinel with the names that failed to resolve.
func Resolution(sentinel *Error, msg string) *Error {
	return &Error{Kind: ErrKindResolution, Msg: msg, Err: sentinel}
}

// IsResolutionFailure reports whether err (or anything it wraps) is a
// resolution failure. Resolution failures come from a version mismatch with
// the host and are never worth retrying.
func IsResolutionFailure(err error) bool {
	var te *Error
	for errors.As(err, &te) {
		if te.Kind == ErrKindResolution {
			return true
		}
		if te.Err == nil {
			return false
		}
		err = te.Err
	}
	return false
}
