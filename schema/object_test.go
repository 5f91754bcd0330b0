package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/schemakit/pkg/types"
)

func TestObject_ReadWrite(t *testing.T) {
	obj := NewObject(7, make([]byte, 16), types.AccessMutable)
	require.Equal(t, types.Handle(7), obj.Handle())
	require.Equal(t, 16, obj.Size())
	require.True(t, obj.Writable())

	require.NoError(t, obj.WriteI32(0, -100))
	require.NoError(t, obj.WriteF32(4, 1.5))
	require.NoError(t, obj.WriteBool(8, true))
	require.NoError(t, obj.WriteU8(9, 0xAB))
	require.NoError(t, obj.WriteU32(12, 0xDEADBEEF))

	i, err := obj.ReadI32(0)
	require.NoError(t, err)
	require.Equal(t, int32(-100), i)

	f, err := obj.ReadF32(4)
	require.NoError(t, err)
	require.InDelta(t, 1.5, f, 0)

	b, err := obj.ReadBool(8)
	require.NoError(t, err)
	require.True(t, b)

	u8, err := obj.ReadU8(9)
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	u32, err := obj.ReadU32(12)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)
}

func TestObject_Bounds(t *testing.T) {
	obj := NewObject(1, make([]byte, 8), types.AccessMutable)

	_, err := obj.ReadI32(5)
	require.ErrorIs(t, err, types.ErrOutOfBounds)

	_, err = obj.ReadU8(-1)
	require.ErrorIs(t, err, types.ErrOutOfBounds)

	require.ErrorIs(t, obj.WriteU32(6, 1), types.ErrOutOfBounds)

	s, err := obj.Slice(4, 4)
	require.NoError(t, err)
	require.Len(t, s, 4)
	require.Equal(t, 4, cap(s))
}

func TestObject_ReadOnly(t *testing.T) {
	mem := []byte{1, 0, 0, 0}
	ro := NewObject(1, mem, types.AccessMutable).ReadOnly()

	require.False(t, ro.Writable())
	require.Equal(t, types.AccessReadOnly, ro.Access())

	v, err := ro.ReadI32(0)
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	require.ErrorIs(t, ro.WriteI32(0, 2), types.ErrReadonly)
	require.Equal(t, byte(1), mem[0])

	var nilObj *Object
	require.False(t, nilObj.Writable())
}
