// Package index provides the in-memory schema table that backs every
// registry schemakit can load (binary dumps, gamedata files, tests).
//
// # Overview
//
// The host describes its object layouts as (class, member) -> (offset,
// networked) records and looks them up by the FNV-1a fingerprints of the
// names. Table mirrors that: entries are keyed by fingerprint pairs for
// speed, and the literal names break ties.
//
// # Usage Example
//
//	t := index.NewTable(0, 0)
//	t.AddClass("CBaseEntity", 0x10, true)
//	t.AddMember("CBaseEntity", "m_iHealth", types.SchemaKey{Offset: 0x34, Networked: true})
//
//	key, err := t.LookupMember("CBaseEntity", fingerprint.Fingerprint32("CBaseEntity"),
//	    "m_iHealth", fingerprint.Fingerprint32("m_iHealth"))
//
// Table satisfies schema.Registry.
//
// # Thread Safety
//
// Build the table on one goroutine, then share it read-only.
package index
