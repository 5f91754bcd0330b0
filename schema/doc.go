// Package schema resolves host object layouts by name and gates change
// notifications for replicated fields.
//
// # Overview
//
// The host (a game engine) does not export its type headers. It does keep
// schema tables describing every class: member offsets, which members are
// networked, and where each class anchors its networked-state chain. Those
// tables are looked up by the FNV-1a fingerprints of the names.
//
// This package wraps that in three pieces:
//
//   - Resolver: (class, member) -> types.SchemaKey, and class -> chain offset.
//   - Object: a bounds-checked capability over one host instance.
//   - Notifier: forwards "this field changed" to the host's dirty-marking
//     primitive, except for blacklisted members.
//
// # Usage
//
//	r := schema.NewResolver(registry)
//	health := r.MustField("CBaseEntity", "m_iHealth")
//
//	obj := schema.NewObject(handle, instanceBytes, types.AccessMutable)
//	obj.WriteI32(health.Key.Offset, 100)
//	notifier.NotifyField(obj, health)
//
// # Failure Handling
//
// A name that does not resolve means the schema and the host disagree,
// usually after a host update. There is no safe fallback offset, so the
// fail-fast forms (Member, ChainOffset, MustField) never return a zero key:
// they panic or exit according to the FailurePolicy. The error-returning
// forms report a types.ErrKindResolution error and leave no cached state.
//
// # Thread Safety
//
// Resolver is safe for concurrent use. Object and Notifier are not: the
// host's tick owns object memory and replication bookkeeping.
//
// # Related Packages
//
//   - schema/fingerprint: the FNV-1a name hashes
//   - schema/blacklist: members whose notifications are suppressed
//   - schema/index: in-memory registry built from dumps and gamedata
//   - schema/dirty: recording StateMarker for tests and tooling
package schema
