package schema

import (
	"fmt"
	"strings"
)

// FailurePolicy decides what the fail-fast resolver forms (Member,
// ChainOffset, MustField) do when a name does not resolve. There is no
// "continue" policy: a guessed offset would corrupt host memory.
type FailurePolicy int

const (
	// FailPanic panics with the *types.Error. This is the default.
	FailPanic FailurePolicy = iota
	// FailExit logs the failure and exits the process with status 1.
	FailExit
)

// String implements fmt.Stringer.
func (p FailurePolicy) String() string {
	switch p {
	case FailPanic:
		return "panic"
	case FailExit:
		return "exit"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// ParseFailurePolicy parses "panic" or "exit". The empty string selects
// the default.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "panic":
		return FailPanic, nil
	case "exit", "abort":
		return FailExit, nil
	default:
		return FailPanic, fmt.Errorf("schema: unknown failure policy %q", s)
	}
}
