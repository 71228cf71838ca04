package domain

import (
	"sort"
	"sync"

	"go.trai.ch/zerr"
)

// moduleKey identifies a cache entry: realm identity plus canonical path.
type moduleKey struct {
	realm uint64
	path  InternedString
}

// ModuleCache is the per engine-context table of resolved modules. It is
// shared by all realms within one context; entries are distinguished by the
// realm recorded in their key.
//
// The cache owns one reference of each entry's realm and module: Insert takes
// exactly one of each, Evict releases exactly one of each. That pairing is the
// invariant that prevents both leaks and premature frees.
//
// The original design is single-threaded; this port keeps an RWMutex so the
// cache can be shared by goroutines resolving concurrently.
type ModuleCache struct {
	mu      sync.RWMutex
	entries map[moduleKey]*CachedModule
}

// NewModuleCache creates an empty ModuleCache.
func NewModuleCache() *ModuleCache {
	return &ModuleCache{entries: make(map[moduleKey]*CachedModule)}
}

// Lookup returns a new reference to the module cached under (realm, path).
// The entry itself is left untouched. Realm matching is by handle identity,
// path matching is byte equality on the canonical path.
func (c *ModuleCache) Lookup(realm Value, path string) (Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[moduleKey{realm: realm.ID(), path: NewInternedString(path)}]
	if !ok {
		return nil, false
	}
	return entry.Module.Acquire(), true
}

// Entry returns the cache entry for (realm, path) without touching reference
// counts. The returned entry is borrowed and owned by the cache.
func (c *ModuleCache) Entry(realm Value, path string) (*CachedModule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[moduleKey{realm: realm.ID(), path: NewInternedString(path)}]
	return entry, ok
}

// Insert adds a new entry for (realm, path), taking one reference each of
// realm and module. Inserting a key that is already present is a caller error
// and is rejected rather than shadowed; callers must check via Lookup first.
func (c *ModuleCache) Insert(path string, directoryLength int, contentHash uint64, realm, module Value) (*CachedModule, error) {
	key := moduleKey{realm: realm.ID(), path: NewInternedString(path)}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return nil, zerr.With(zerr.Wrap(ErrDuplicateModule, "insert rejected"), "path", path)
	}

	entry := &CachedModule{
		CanonicalPath:   key.path,
		DirectoryLength: directoryLength,
		ContentHash:     contentHash,
		Realm:           realm.Acquire(),
		Module:          module.Acquire(),
	}
	c.entries[key] = entry
	return entry, nil
}

// Evict removes every entry whose realm matches the given handle, or every
// entry when realm is nil or not an object. It releases the one realm and one
// module reference the cache holds per removed entry and returns the number
// of entries removed.
func (c *ModuleCache) Evict(realm Value) int {
	evictAll := realm == nil || !realm.IsObject()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if !evictAll && key.realm != realm.ID() {
			continue
		}
		entry.Realm.Release()
		entry.Module.Release()
		delete(c.entries, key)
		removed++
	}
	return removed
}

// Len returns the number of live entries.
func (c *ModuleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries returns a snapshot of the live entries, sorted by canonical path
// and realm for deterministic reporting.
func (c *ModuleCache) Entries() []*CachedModule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]*CachedModule, 0, len(c.entries))
	for _, entry := range c.entries {
		snapshot = append(snapshot, entry)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		pi, pj := snapshot[i].CanonicalPath.String(), snapshot[j].CanonicalPath.String()
		if pi != pj {
			return pi < pj
		}
		return snapshot[i].Realm.ID() < snapshot[j].Realm.ID()
	})
	return snapshot
}
