package schema

import (
	"fmt"
	"math"

	"github.com/joshuapare/schemakit/internal/buf"
	"github.com/joshuapare/schemakit/pkg/types"
)

// Object is a capability for one host object: the host-issued handle, a byte
// view of the instance, and whether the holder may mutate it.
//
// All offset arithmetic happens in Slice; nothing else in the library turns
// an offset into memory. Object performs no locking: the host's tick owns
// the instance.
type Object struct {
	handle types.Handle
	mem    []byte
	access types.Access
}

// NewObject wraps a host object. mem must cover the whole instance.
func NewObject(h types.Handle, mem []byte, access types.Access) *Object {
	return &Object{handle: h, mem: mem, access: access}
}

// Handle returns the host-issued identity.
func (o *Object) Handle() types.Handle { return o.handle }

// Size returns the length of the instance view in bytes.
func (o *Object) Size() int { return len(o.mem) }

// Access returns the capability held.
func (o *Object) Access() types.Access { return o.access }

// Writable reports whether the holder may mutate the object.
func (o *Object) Writable() bool { return o != nil && o.access == types.AccessMutable }

// ReadOnly returns a read-only capability for the same instance.
func (o *Object) ReadOnly() *Object {
	return &Object{handle: o.handle, mem: o.mem, access: types.AccessReadOnly}
}

// Slice returns the n bytes at offset, or an ErrOutOfBounds failure.
func (o *Object) Slice(offset int32, n int) ([]byte, error) {
	b, ok := buf.Slice(o.mem, int(offset), n)
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindBounds,
			Msg:  fmt.Sprintf("schema: object %#x: %d bytes at offset %#x (size %d)", o.handle, n, offset, len(o.mem)),
			Err:  types.ErrOutOfBounds,
		}
	}
	return b, nil
}

func (o *Object) mutableSlice(offset int32, n int) ([]byte, error) {
	if !o.Writable() {
		return nil, &types.Error{
			Kind: types.ErrKindState,
			Msg:  fmt.Sprintf("schema: object %#x", o.handle),
			Err:  types.ErrReadonly,
		}
	}
	return o.Slice(offset, n)
}

// ReadU8 reads one byte.
func (o *Object) ReadU8(offset int32) (uint8, error) {
	b, err := o.Slice(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads a one-byte boolean.
func (o *Object) ReadBool(offset int32) (bool, error) {
	v, err := o.ReadU8(offset)
	return v != 0, err
}

// ReadI32 reads a little-endian int32.
func (o *Object) ReadI32(offset int32) (int32, error) {
	b, err := o.Slice(offset, 4)
	if err != nil {
		return 0, err
	}
	return buf.I32LE(b), nil
}

// ReadU32 reads a little-endian uint32.
func (o *Object) ReadU32(offset int32) (uint32, error) {
	b, err := o.Slice(offset, 4)
	if err != nil {
		return 0, err
	}
	return buf.U32LE(b), nil
}

// ReadF32 reads a little-endian float32.
func (o *Object) ReadF32(offset int32) (float32, error) {
	v, err := o.ReadU32(offset)
	return math.Float32frombits(v), err
}

// WriteU8 writes one byte.
func (o *Object) WriteU8(offset int32, v uint8) error {
	b, err := o.mutableSlice(offset, 1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// WriteBool writes a one-byte boolean.
func (o *Object) WriteBool(offset int32, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return o.WriteU8(offset, b)
}

// WriteU32 writes a little-endian uint32.
func (o *Object) WriteU32(offset int32, v uint32) error {
	b, err := o.mutableSlice(offset, 4)
	if err != nil {
		return err
	}
	buf.PutU32LE(b, v)
	return nil
}

// WriteI32 writes a little-endian int32.
func (o *Object) WriteI32(offset int32, v int32) error {
	return o.WriteU32(offset, uint32(v))
}

// WriteF32 writes a little-endian float32.
func (o *Object) WriteF32(offset int32, v float32) error {
	return o.WriteU32(offset, math.Float32bits(v))
}
