package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/schemakit/pkg/types"
	"github.com/joshuapare/schemakit/schema/dirty"
)

const entityHandle types.Handle = 0x2A

func newEntity(size int) *Object {
	return NewObject(entityHandle, make([]byte, size), types.AccessMutable)
}

func TestNotify_NetworkedFieldIsMarkedOnce(t *testing.T) {
	r := NewResolver(testTable())
	tr := dirty.NewTracker(0)
	n := NewNotifier(tr)
	obj := newEntity(0x40)

	f := r.MustField("Entity", "m_health")
	require.True(t, f.Networked())

	marked, err := n.NotifyField(obj, f)
	require.NoError(t, err)
	require.True(t, marked)
	require.Equal(t, 1, tr.Calls())
	require.True(t, tr.Marked(entityHandle, 0x10))
}

func TestNotify_BlacklistedIsNoop(t *testing.T) {
	r := NewResolver(testTable())
	tr := dirty.NewTracker(0)
	n := NewNotifier(tr)
	obj := newEntity(0x40)

	f := r.MustField("Entity", "m_bInitialized")

	marked, err := n.NotifyField(obj, f)
	require.NoError(t, err)
	require.False(t, marked)

	marked, err = n.NotifyChanged(obj, "m_bInitialized", f.Key.Offset)
	require.NoError(t, err)
	require.False(t, marked)

	marked, err = n.NotifyChained(obj, f, 0x08)
	require.NoError(t, err)
	require.False(t, marked)

	require.Zero(t, tr.Calls())
}

// Blacklisted names short-circuit before the capability is inspected.
func TestNotify_BlacklistedSkipsCapabilityChecks(t *testing.T) {
	tr := dirty.NewTracker(0)
	n := NewNotifier(tr)

	marked, err := n.NotifyChanged(nil, "m_iAccountID", 0x1C)
	require.NoError(t, err)
	require.False(t, marked)

	marked, err = n.NotifyChanged(newEntity(4).ReadOnly(), "m_nMusicID", 0x1000)
	require.NoError(t, err)
	require.False(t, marked)
	require.Zero(t, tr.Calls())
}

func TestNotify_NonNetworkedFieldSkipped(t *testing.T) {
	r := NewResolver(testTable())
	tr := dirty.NewTracker(0)
	n := NewNotifier(tr)

	marked, err := n.NotifyField(newEntity(0x40), r.MustField("Entity", "m_flLocalTime"))
	require.NoError(t, err)
	require.False(t, marked)
	require.Zero(t, tr.Calls())
}

func TestNotify_EveryCallReachesMarker(t *testing.T) {
	tr := dirty.NewTracker(0)
	n := NewNotifier(tr)
	obj := newEntity(0x40)

	for i := 0; i < 3; i++ {
		marked, err := n.NotifyChanged(obj, "m_health", 0x10)
		require.NoError(t, err)
		require.True(t, marked)
	}
	require.Equal(t, 3, tr.Calls())
	require.Equal(t, 3, tr.Count(entityHandle))
}

func TestNotify_CapabilityErrors(t *testing.T) {
	tr := dirty.NewTracker(0)
	n := NewNotifier(tr)

	_, err := n.NotifyChanged(nil, "m_health", 0x10)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrKindState, te.Kind)

	_, err = n.NotifyChanged(newEntity(0x40).ReadOnly(), "m_health", 0x10)
	require.ErrorIs(t, err, types.ErrReadonly)

	_, err = n.NotifyChanged(newEntity(0x10), "m_health", 0x10)
	require.ErrorIs(t, err, types.ErrOutOfBounds)

	_, err = n.NotifyChanged(newEntity(0x10), "m_health", -1)
	require.ErrorIs(t, err, types.ErrOutOfBounds)

	require.Zero(t, tr.Calls())
}

func TestNotifyChained(t *testing.T) {
	r := NewResolver(testTable())
	var got []int32
	n := NewNotifier(StateMarkerFunc(func(obj types.Handle, offset int32) {
		require.Equal(t, entityHandle, obj)
		got = append(got, offset)
	}))
	obj := newEntity(0x40)

	f := r.MustField("Entity", "m_health")
	marked, err := n.NotifyChained(obj, f, r.ChainOffset("Entity"))
	require.NoError(t, err)
	require.True(t, marked)
	require.Equal(t, []int32{0x18}, got)
}

func TestNotifyChained_Overflow(t *testing.T) {
	n := NewNotifier(dirty.NewTracker(0))
	f := Field{Class: "Entity", Member: "m_health", Key: types.SchemaKey{Offset: 0x7FFFFFFF, Networked: true}}

	_, err := n.NotifyChained(newEntity(0x40), f, 1)
	require.ErrorIs(t, err, types.ErrOutOfBounds)
}

// A resolution failure leaves the host untouched: no key, no mark.
func TestNotify_MissingClassDoesNotMark(t *testing.T) {
	r := NewResolver(testTable())
	tr := dirty.NewTracker(0)

	_, err := r.Field("Missing", "m_health")
	require.True(t, types.IsResolutionFailure(err))
	require.Zero(t, tr.Calls())
	require.Empty(t, tr.Objects())
}
