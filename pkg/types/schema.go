package types

import "fmt"

// SchemaKey locates one member inside a host object layout.
//
// Offset is the byte distance from the start of an instance of the owning
// class. Networked reports whether the host's replication system tracks
// writes to the member. A SchemaKey never changes for the lifetime of a
// process, so callers resolve once and keep it.
type SchemaKey struct {
	Offset    int32
	Networked bool
}

// String implements fmt.Stringer.
func (k SchemaKey) String() string {
	return fmt.Sprintf("0x%X (networked=%t)", k.Offset, k.Networked)
}

// Handle is the host-issued identity of an object. The library never
// dereferences it; it only hands it back to the host's dirty-marking primitive.
type Handle uint64

// Access is the capability carried by an object reference.
type Access uint8

const (
	// AccessReadOnly allows reads through the object view only.
	AccessReadOnly Access = iota
	// AccessMutable allows writes and change notification.
	AccessMutable
)

// String implements fmt.Stringer.
func (a Access) String() string {
	switch a {
	case AccessReadOnly:
		return "read-only"
	case AccessMutable:
		return "mutable"
	default:
		return fmt.Sprintf("Access(%d)", uint8(a))
	}
}
