package dirty

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/schemakit/pkg/types"
)

const obj types.Handle = 0x1000

func TestTracker_SetStateChanged(t *testing.T) {
	tr := NewTracker(0)
	tr.SetStateChanged(obj, 0x34)

	require.Equal(t, 1, tr.Count(obj))
	require.Equal(t, 1, tr.Calls())
	require.True(t, tr.Marked(obj, 0x34))
	require.False(t, tr.Marked(obj, 0x35))
	require.False(t, tr.Marked(obj+1, 0x34))
}

func TestTracker_CountsEveryCall(t *testing.T) {
	tr := NewTracker(0)
	for i := 0; i < 3; i++ {
		tr.SetStateChanged(obj, 0x10)
	}
	require.Equal(t, 3, tr.Count(obj))
	require.Len(t, tr.DebugMarks(obj), 3)

	// Coalesced view collapses duplicates.
	require.Equal(t, []Range{{Off: 0x10, Len: 1}}, tr.Ranges(obj))
}

func TestTracker_Coalesce_Adjacent(t *testing.T) {
	tr := NewTracker(0)
	tr.Add(obj, 0x10, 4)
	tr.Add(obj, 0x14, 4)

	require.Equal(t, []Range{{Off: 0x10, Len: 8}}, tr.Ranges(obj))
}

func TestTracker_Coalesce_Overlapping(t *testing.T) {
	tr := NewTracker(0)
	tr.Add(obj, 0x20, 16)
	tr.Add(obj, 0x18, 12)

	require.Equal(t, []Range{{Off: 0x18, Len: 0x18}}, tr.Ranges(obj))
}

func TestTracker_Coalesce_Disjoint(t *testing.T) {
	tr := NewTracker(0)
	tr.Add(obj, 0x40, 4)
	tr.Add(obj, 0x10, 4)

	require.Equal(t, []Range{{Off: 0x10, Len: 4}, {Off: 0x40, Len: 4}}, tr.Ranges(obj))
}

func TestTracker_Granularity(t *testing.T) {
	tr := NewTracker(8)
	tr.SetStateChanged(obj, 0x10)
	tr.SetStateChanged(obj, 0x14)
	tr.SetStateChanged(obj, 0x30)

	require.Equal(t, []Range{{Off: 0x10, Len: 8}, {Off: 0x30, Len: 8}}, tr.Ranges(obj))
}

func TestTracker_NegativeOffsetAlignment(t *testing.T) {
	tr := NewTracker(8)
	tr.SetStateChanged(obj, -3)

	require.Equal(t, []Range{{Off: -8, Len: 8}}, tr.Ranges(obj))
}

func TestTracker_ObjectsAndReset(t *testing.T) {
	tr := NewTracker(0)
	tr.SetStateChanged(3, 0)
	tr.SetStateChanged(1, 0)
	require.Equal(t, []types.Handle{1, 3}, tr.Objects())

	tr.Reset()
	require.Empty(t, tr.Objects())
	require.Zero(t, tr.Calls())
	require.Nil(t, tr.Ranges(1))
}
