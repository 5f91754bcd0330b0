package schema

import (
	"fmt"
	"os"
	"sync"

	"github.com/joshuapare/schemakit/internal/logger"
	"github.com/joshuapare/schemakit/pkg/types"
	"github.com/joshuapare/schemakit/schema/blacklist"
	"github.com/joshuapare/schemakit/schema/fingerprint"
	"github.com/joshuapare/schemakit/schema/keycache"
)

// Field is a resolved member: the names it was resolved from plus its key.
type Field struct {
	Class  string
	Member string
	Key    types.SchemaKey
}

// Networked reports whether writes to the field must be replicated.
func (f Field) Networked() bool { return f.Key.Networked }

// Suppressed reports whether change notifications for the field are
// always dropped.
func (f Field) Suppressed() bool { return blacklist.Contains(f.Member) }

// String implements fmt.Stringer.
func (f Field) String() string {
	return fmt.Sprintf("%s::%s @ %s", f.Class, f.Member, f.Key)
}

// Resolver turns (class, member) names into SchemaKeys and classes into
// chain offsets by querying a host Registry.
//
// A key never changes within a process, so each pair hits the registry once
// until Reset. Every successful resolution is pinned; the bounded LRU only
// speeds up hot lookups and eviction from it never causes a re-query.
// Failures are not cached. Resolver is safe for concurrent use as long as
// the Registry is.
type Resolver struct {
	reg    Registry
	cache  *keycache.Cache
	policy FailurePolicy
	exit   func(code int)

	keyMu sync.Mutex
	keys  map[memberID]types.SchemaKey

	chainMu sync.Mutex
	chains  map[string]int16
}

type memberID struct {
	class  string
	member string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCacheCapacity sets the capacity of the hot-key LRU. 0 disables it;
// resolved keys stay pinned either way.
func WithCacheCapacity(n int) Option {
	return func(r *Resolver) { r.cache = keycache.New(n) }
}

// WithFailurePolicy sets the policy used by the fail-fast forms.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(r *Resolver) { r.policy = p }
}

// NewResolver creates a resolver over reg.
func NewResolver(reg Registry, opts ...Option) *Resolver {
	r := &Resolver{
		reg:    reg,
		cache:  keycache.New(keycache.DefaultCapacity),
		policy: FailPanic,
		exit:   os.Exit,
		keys:   make(map[memberID]types.SchemaKey),
		chains: make(map[string]int16),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the resolver queries.
func (r *Resolver) Registry() Registry { return r.reg }

// Policy returns the configured failure policy.
func (r *Resolver) Policy() FailurePolicy { return r.policy }

// ResolveMember returns the key of memberName within className.
//
// classKey and memberKey must be fingerprint.Fingerprint32 of the names.
// A missing class or member yields a resolution failure and no key.
func (r *Resolver) ResolveMember(className string, classKey uint32, memberName string, memberKey uint32) (types.SchemaKey, error) {
	if key, ok := r.cache.Lookup(className, classKey, memberName, memberKey); ok {
		return key, nil
	}

	id := memberID{class: className, member: memberName}
	r.keyMu.Lock()
	key, ok := r.keys[id]
	r.keyMu.Unlock()
	if ok {
		r.cache.Store(className, classKey, memberName, memberKey, key)
		return key, nil
	}

	key, err := r.reg.LookupMember(className, classKey, memberName, memberKey)
	if err != nil {
		err = asResolutionFailure(err, fmt.Sprintf("schema: resolve %s::%s", className, memberName))
		logger.Error("schema member unresolved",
			"class", className, "member", memberName, "err", err)
		return types.SchemaKey{}, err
	}

	r.keyMu.Lock()
	if pinned, ok := r.keys[id]; ok {
		// Another goroutine won the race; its key is the one callers saw.
		key = pinned
	} else {
		r.keys[id] = key
	}
	r.keyMu.Unlock()

	r.cache.Store(className, classKey, memberName, memberKey, key)
	logger.Debug("schema member resolved",
		"class", className, "member", memberName,
		"offset", key.Offset, "networked", key.Networked)
	return key, nil
}

// Member is the fail-fast form of ResolveMember: on failure it applies the
// resolver's FailurePolicy instead of returning.
func (r *Resolver) Member(className string, classKey uint32, memberName string, memberKey uint32) types.SchemaKey {
	key, err := r.ResolveMember(className, classKey, memberName, memberKey)
	if err != nil {
		r.fail(err)
	}
	return key
}

// ResolveChainOffset returns the offset of className's networked-state
// chain anchor relative to the start of an instance.
func (r *Resolver) ResolveChainOffset(className string) (int16, error) {
	r.chainMu.Lock()
	off, ok := r.chains[className]
	r.chainMu.Unlock()
	if ok {
		return off, nil
	}

	off, err := r.reg.LookupChainOffset(className)
	if err != nil {
		err = asResolutionFailure(err, fmt.Sprintf("schema: chain offset of %s", className))
		logger.Error("schema chain offset unresolved", "class", className, "err", err)
		return 0, err
	}

	r.chainMu.Lock()
	r.chains[className] = off
	r.chainMu.Unlock()
	logger.Debug("schema chain offset resolved", "class", className, "offset", off)
	return off, nil
}

// ChainOffset is the fail-fast form of ResolveChainOffset.
func (r *Resolver) ChainOffset(className string) int16 {
	off, err := r.ResolveChainOffset(className)
	if err != nil {
		r.fail(err)
	}
	return off
}

// Field fingerprints the names and resolves them.
func (r *Resolver) Field(className, memberName string) (Field, error) {
	key, err := r.ResolveMember(
		className, fingerprint.Fingerprint32(className),
		memberName, fingerprint.Fingerprint32(memberName),
	)
	if err != nil {
		return Field{}, err
	}
	return Field{Class: className, Member: memberName, Key: key}, nil
}

// MustField is the fail-fast form of Field.
func (r *Resolver) MustField(className, memberName string) Field {
	f, err := r.Field(className, memberName)
	if err != nil {
		r.fail(err)
	}
	return f
}

// Reset drops every cached key and chain offset. The next resolution of each
// pair queries the registry again.
func (r *Resolver) Reset() {
	r.cache.Reset()
	r.keyMu.Lock()
	clear(r.keys)
	r.keyMu.Unlock()
	r.chainMu.Lock()
	clear(r.chains)
	r.chainMu.Unlock()
}

func (r *Resolver) fail(err error) {
	if r.policy == FailExit {
		logger.Error("schema resolution failed, exiting", "err", err)
		r.exit(1)
	}
	// Also reached when exit returns (tests): never fall through with a zero key.
	panic(err)
}

// asResolutionFailure keeps typed resolution failures as they are and wraps
// anything else a registry returns, since the caller cannot tell a broken
// registry from a missing name.
func asResolutionFailure(err error, msg string) error {
	if types.IsResolutionFailure(err) {
		return err
	}
	return &types.Error{Kind: types.ErrKindResolution, Msg: msg, Err: err}
}
