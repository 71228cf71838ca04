// Package resolver implements module resolution and caching for one engine
// context.
package resolver

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Resolver turns module specifiers into parsed module values, deduplicated
// through a per-context cache. Within one context a given (realm, canonical
// path) pair is loaded and parsed at most once; every later request for it is
// answered from the cache.
type Resolver struct {
	engine     ports.EngineContext
	loader     ports.SourceLoader
	normalizer ports.PathNormalizer

	cache *domain.ModuleCache

	// requestGroup collapses concurrent resolutions of the same key so the
	// at-most-one-parse guarantee also holds across goroutines.
	requestGroup singleflight.Group
}

// New creates a Resolver bound to one engine context. The cache it creates is
// scoped to that context and shared by all of the context's realms.
func New(engine ports.EngineContext, loader ports.SourceLoader, normalizer ports.PathNormalizer) *Resolver {
	return &Resolver{
		engine:     engine,
		loader:     loader,
		normalizer: normalizer,
		cache:      domain.NewModuleCache(),
	}
}

// Resolve resolves specifier relative to referrer and returns the module
// value, parsing it on first sight and answering from the cache afterwards.
// The returned handle carries one reference owned by the caller.
//
// referrer may be nil or carry no module metadata; the specifier is then
// resolved against the process working directory. On any failure nothing is
// inserted into the cache and reference counts are unchanged.
func (r *Resolver) Resolve(ctx context.Context, specifier string, referrer domain.Value) (domain.Value, error) {
	base := ""
	if meta, ok := r.engine.ModuleData(referrer); ok {
		base = meta.BasePath()
	}

	canonical, err := r.normalizer.Normalize(specifier, base)
	if err != nil {
		// Wrap before decorating so the cause stays matchable.
		return nil, zerr.With(zerr.Wrap(err, "cannot normalize specifier"), "specifier", specifier)
	}

	realm := r.engine.Global()

	if module, ok := r.cache.Lookup(realm, canonical); ok {
		return module, nil
	}

	key := flightKey(realm, canonical)
	result, err, _ := r.requestGroup.Do(key, func() (any, error) {
		return r.fill(ctx, specifier, canonical, realm)
	})
	if err != nil {
		return nil, err
	}

	entry := result.(*domain.CachedModule)
	return entry.Module.Acquire(), nil
}

// fill loads, hashes, parses and caches the module at canonical. It returns
// the cache entry; the caller acquires its own module reference from it.
func (r *Resolver) fill(ctx context.Context, specifier, canonical string, realm domain.Value) (*domain.CachedModule, error) {
	// A lost singleflight race leaves the winner's entry in the cache.
	if entry, ok := r.cache.Entry(realm, canonical); ok {
		return entry, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "resolution canceled")
	}

	source, err := r.loader.Load(canonical)
	if err != nil {
		return nil, err
	}

	contentHash := xxhash.Sum64(source)

	// The original specifier, not the canonical path, is the resource name
	// attached to the parse. Error messages then point at what the source
	// actually wrote.
	module, err := r.engine.Parse(source, specifier)
	if err != nil {
		return nil, zerr.With(err, "path", canonical)
	}

	entry, err := r.cache.Insert(canonical, domain.DirectoryEnd(canonical), contentHash, realm, module)
	if err != nil {
		module.Release()
		return nil, err
	}
	r.engine.SetModuleData(module, entry)

	// The cache took its own reference; drop the one from Parse so the entry
	// holds exactly one.
	module.Release()

	return entry, nil
}

// HostResolve is the resolve callback surface exposed to the engine: instead
// of an error it returns an engine error value, translated so script code
// observes stable error categories and messages.
func (r *Resolver) HostResolve(ctx context.Context, specifier string, referrer domain.Value) domain.Value {
	module, err := r.Resolve(ctx, specifier, referrer)
	if err != nil {
		kind, message := domain.MapResolveError(err)
		return r.engine.NewError(kind, message)
	}
	return module
}

// EvictRealm removes all cache entries of the given realm, or every entry
// when realm is nil or not an object. It returns the number of entries
// removed.
func (r *Resolver) EvictRealm(realm domain.Value) int {
	return r.cache.Evict(realm)
}

// Entries returns a snapshot of the live cache entries for reporting.
func (r *Resolver) Entries() []*domain.CachedModule {
	return r.cache.Entries()
}

// Len returns the number of live cache entries.
func (r *Resolver) Len() int {
	return r.cache.Len()
}

// Close evicts every cache entry, releasing the references the cache holds.
// The resolver must not be used afterwards.
func (r *Resolver) Close() error {
	r.cache.Evict(nil)
	return nil
}

func flightKey(realm domain.Value, canonical string) string {
	return fmt.Sprintf("%d\x00%s", realm.ID(), canonical)
}
