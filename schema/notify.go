package schema

import (
	"fmt"

	"github.com/joshuapare/schemakit/internal/buf"
	"github.com/joshuapare/schemakit/pkg/types"
	"github.com/joshuapare/schemakit/schema/blacklist"
)

// Notifier gates the host's dirty-marking primitive.
//
// A notification for a blacklisted member is dropped: no marker call, no
// error, no log line. Every other notification reaches the marker exactly
// once. Notifier holds no state of its own and performs no locking; call it
// on the thread that owns the object.
type Notifier struct {
	marker StateMarker
}

// NewNotifier creates a notifier that forwards to marker.
func NewNotifier(marker StateMarker) *Notifier {
	return &Notifier{marker: marker}
}

// NotifyChanged marks offset within obj as changed on behalf of memberName.
//
// It returns false, nil when memberName is blacklisted. Otherwise obj must
// be a mutable capability and offset must fall inside it; on success the
// marker has been called once and the result is true, nil.
func (n *Notifier) NotifyChanged(obj *Object, memberName string, offset int32) (bool, error) {
	if blacklist.Contains(memberName) {
		return false, nil
	}
	if obj == nil {
		return false, &types.Error{Kind: types.ErrKindState, Msg: "schema: notify " + memberName + " on nil object"}
	}
	if !obj.Writable() {
		return false, &types.Error{
			Kind: types.ErrKindState,
			Msg:  fmt.Sprintf("schema: notify %s on object %#x", memberName, obj.Handle()),
			Err:  types.ErrReadonly,
		}
	}
	if _, err := obj.Slice(offset, 1); err != nil {
		return false, err
	}

	n.marker.SetStateChanged(obj.Handle(), offset)
	return true, nil
}

// NotifyField notifies a resolved field. Fields the host does not replicate
// are skipped (false, nil).
func (n *Notifier) NotifyField(obj *Object, f Field) (bool, error) {
	if !f.Key.Networked {
		return false, nil
	}
	return n.NotifyChanged(obj, f.Member, f.Key.Offset)
}

// NotifyChained notifies a field whose dirty bit lives relative to a chain
// anchor: the absolute offset is chainOffset + f.Key.Offset.
func (n *Notifier) NotifyChained(obj *Object, f Field, chainOffset int16) (bool, error) {
	if !f.Key.Networked || blacklist.Contains(f.Member) {
		return false, nil
	}
	off, ok := buf.Compose(chainOffset, f.Key.Offset)
	if !ok {
		return false, &types.Error{
			Kind: types.ErrKindBounds,
			Msg:  fmt.Sprintf("schema: chain %#x + member %#x overflows", chainOffset, f.Key.Offset),
			Err:  types.ErrOutOfBounds,
		}
	}
	return n.NotifyChanged(obj, f.Member, off)
}
