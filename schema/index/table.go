package index

import (
	"fmt"
	"sort"

	"github.com/joshuapare/schemakit/pkg/types"
	"github.com/joshuapare/schemakit/schema/fingerprint"
)

const (
	defaultClassCap  = 256
	defaultMemberCap = 4096
)

// Table is an in-memory schema registry.
//
// Member key format: (classKey << 32) | memberKey, where both keys are the
// 32-bit fingerprints of the names. Unlike a pure hash index the names are
// always stored next to the entry and compared on lookup: the fingerprint
// only narrows the search, the name decides.
//
// Fingerprint collisions go to a separate collision map that is allocated
// lazily (it is empty for every real schema we have seen).
//
// Table is not safe for concurrent mutation. Concurrent lookups are fine once
// building has finished.
type Table struct {
	classes map[uint32]classEntry
	members map[uint64]memberEntry

	classCollisions  map[uint32][]classEntry
	memberCollisions map[uint64][]memberEntry
}

type classEntry struct {
	name        string
	chainOffset int16
	hasChain    bool
}

type memberEntry struct {
	class  string
	member string
	key    types.SchemaKey
}

// ClassInfo describes one class in the table.
type ClassInfo struct {
	Name        string
	ChainOffset int16
	HasChain    bool
}

// MemberInfo describes one member in the table.
type MemberInfo struct {
	Class  string
	Member string
	Key    types.SchemaKey
}

// Stats reports table metrics.
type Stats struct {
	Classes          int
	Members          int
	ClassCollisions  int // entries living in the collision map
	MemberCollisions int
}

// NewTable creates a Table with optional capacity hints.
func NewTable(classCap, memberCap int) *Table {
	if classCap <= 0 {
		classCap = defaultClassCap
	}
	if memberCap <= 0 {
		memberCap = defaultMemberCap
	}
	return &Table{
		classes: make(map[uint32]classEntry, classCap),
		members: make(map[uint64]memberEntry, memberCap),
	}
}

func makeMemberKey(classKey, memberKey uint32) uint64 {
	return (uint64(classKey) << 32) | uint64(memberKey)
}

// AddClass registers a class. hasChain reports whether the class anchors a
// networked-state chain at chainOffset. Re-adding a class updates it.
func (t *Table) AddClass(className string, chainOffset int16, hasChain bool) {
	t.putClass(fingerprint.Fingerprint32(className), classEntry{
		name:        className,
		chainOffset: chainOffset,
		hasChain:    hasChain,
	})
}

// ensureClass registers className without a chain unless it already exists.
func (t *Table) ensureClass(className string, classKey uint32) {
	if _, ok := t.findClass(className, classKey); ok {
		return
	}
	t.putClass(classKey, classEntry{name: className})
}

func (t *Table) putClass(classKey uint32, e classEntry) {
	existing, ok := t.classes[classKey]
	if !ok || existing.name == e.name {
		t.classes[classKey] = e
		return
	}

	// Different name, same fingerprint.
	if t.classCollisions == nil {
		t.classCollisions = make(map[uint32][]classEntry)
	}
	entries := t.classCollisions[classKey]
	for i := range entries {
		if entries[i].name == e.name {
			entries[i] = e
			return
		}
	}
	t.classCollisions[classKey] = append(entries, e)
}

func (t *Table) findClass(className string, classKey uint32) (classEntry, bool) {
	if e, ok := t.classes[classKey]; ok && e.name == className {
		return e, true
	}
	for _, e := range t.classCollisions[classKey] {
		if e.name == className {
			return e, true
		}
	}
	return classEntry{}, false
}

// AddMember registers a member of className, creating the class if needed.
func (t *Table) AddMember(className, memberName string, key types.SchemaKey) {
	t.AddMemberHash(
		className, fingerprint.Fingerprint32(className),
		memberName, fingerprint.Fingerprint32(memberName),
		key,
	)
}

// AddMemberHash is AddMember with precomputed fingerprints. The keys must be
// the fingerprints of the names; lookups through mismatched keys will miss.
func (t *Table) AddMemberHash(className string, classKey uint32, memberName string, memberKey uint32, key types.SchemaKey) {
	t.ensureClass(className, classKey)

	k := makeMemberKey(classKey, memberKey)
	e := memberEntry{class: className, member: memberName, key: key}

	existing, ok := t.members[k]
	if !ok || (existing.class == className && existing.member == memberName) {
		t.members[k] = e
		return
	}

	if t.memberCollisions == nil {
		t.memberCollisions = make(map[uint64][]memberEntry)
	}
	entries := t.memberCollisions[k]
	for i := range entries {
		if entries[i].class == className && entries[i].member == memberName {
			entries[i] = e
			return
		}
	}
	t.memberCollisions[k] = append(entries, e)
}

// LookupMember resolves a member by names and fingerprints.
// A missing class and a missing member are reported with different sentinels
// so version mismatches are easy to diagnose.
func (t *Table) LookupMember(className string, classKey uint32, memberName string, memberKey uint32) (types.SchemaKey, error) {
	if _, ok := t.findClass(className, classKey); !ok {
		return types.SchemaKey{}, types.Resolution(types.ErrClassNotFound,
			fmt.Sprintf("schema: class %q (0x%08X)", className, classKey))
	}

	k := makeMemberKey(classKey, memberKey)
	if e, ok := t.members[k]; ok && e.class == className && e.member == memberName {
		return e.key, nil
	}
	for _, e := range t.memberCollisions[k] {
		if e.class == className && e.member == memberName {
			return e.key, nil
		}
	}
	return types.SchemaKey{}, types.Resolution(types.ErrMemberNotFound,
		fmt.Sprintf("schema: %s::%s (0x%08X)", className, memberName, memberKey))
}

// LookupChainOffset returns the chain anchor offset of className.
func (t *Table) LookupChainOffset(className string) (int16, error) {
	e, ok := t.findClass(className, fingerprint.Fingerprint32(className))
	if !ok {
		return 0, types.Resolution(types.ErrClassNotFound,
			fmt.Sprintf("schema: class %q", className))
	}
	if !e.hasChain {
		return 0, types.Resolution(types.ErrChainNotFound,
			fmt.Sprintf("schema: class %q", className))
	}
	return e.chainOffset, nil
}

// Classes returns every class sorted by name.
func (t *Table) Classes() []ClassInfo {
	out := make([]ClassInfo, 0, len(t.classes))
	add := func(e classEntry) {
		out = append(out, ClassInfo{Name: e.name, ChainOffset: e.chainOffset, HasChain: e.hasChain})
	}
	for _, e := range t.classes {
		add(e)
	}
	for _, entries := range t.classCollisions {
		for _, e := range entries {
			add(e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Members returns the members of className sorted by offset, then name.
func (t *Table) Members(className string) []MemberInfo {
	var out []MemberInfo
	add := func(e memberEntry) {
		if e.class == className {
			out = append(out, MemberInfo{Class: e.class, Member: e.member, Key: e.key})
		}
	}
	for _, e := range t.members {
		add(e)
	}
	for _, entries := range t.memberCollisions {
		for _, e := range entries {
			add(e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Offset != out[j].Key.Offset {
			return out[i].Key.Offset < out[j].Key.Offset
		}
		return out[i].Member < out[j].Member
	})
	return out
}

// Stats returns table metrics.
func (t *Table) Stats() Stats {
	s := Stats{Classes: len(t.classes), Members: len(t.members)}
	for _, entries := range t.classCollisions {
		s.Classes += len(entries)
		s.ClassCollisions += len(entries)
	}
	for _, entries := range t.memberCollisions {
		s.Members += len(entries)
		s.MemberCollisions += len(entries)
	}
	return s
}
