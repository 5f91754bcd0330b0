package schema

import "github.com/joshuapare/schemakit/pkg/types"

// MemberRegistry is the host's class/member schema table.
//
// classKey and memberKey are the 32-bit fingerprints of the names and only
// accelerate the lookup; implementations must confirm the literal names.
// A missing class or member must be reported as a resolution failure
// (types.ErrClassNotFound / types.ErrMemberNotFound), never as a zero key.
type MemberRegistry interface {
	LookupMember(className string, classKey uint32, memberName string, memberKey uint32) (types.SchemaKey, error)
}

// ChainRegistry is the host's table of networked-state chain anchors.
type ChainRegistry interface {
	LookupChainOffset(className string) (int16, error)
}

// Registry combines both host tables. *index.Table satisfies it.
type Registry interface {
	MemberRegistry
	ChainRegistry
}

// StateMarker is the host's dirty-marking primitive: it flags the bytes at
// offset within obj for the next replication pass.
type StateMarker interface {
	SetStateChanged(obj types.Handle, offset int32)
}

// StateMarkerFunc adapts a plain function to StateMarker.
type StateMarkerFunc func(obj types.Handle, offset int32)

// SetStateChanged implements StateMarker.
func (f StateMarkerFunc) SetStateChanged(obj types.Handle, offset int32) { f(obj, offset) }
