// Package domain contains the core types of the module resolution subsystem.
package domain

import "os"

// CachedModule is one entry of the ModuleCache: a module that was resolved,
// loaded and parsed once for a given realm. Entries are never mutated after
// creation except for removal.
type CachedModule struct {
	// CanonicalPath is the absolute normalized path; together with the realm
	// it is the dedup key.
	CanonicalPath InternedString

	// DirectoryLength is the length of the CanonicalPath prefix up to and
	// including the last path separator. It supplies the base path when this
	// module acts as a referrer for further resolution.
	DirectoryLength int

	// ContentHash is the xxhash of the source bytes the module was parsed from.
	ContentHash uint64

	// Realm is the global object the module was resolved under. The cache
	// holds one reference for the lifetime of the entry.
	Realm Value

	// Module is the parsed module value. The cache holds one reference for
	// the lifetime of the entry, independent of any references the engine
	// itself holds.
	Module Value
}

// BasePath returns the directory part of the canonical path, with trailing
// separator, or "" if the path has no separator.
func (m *CachedModule) BasePath() string {
	return m.CanonicalPath.String()[:m.DirectoryLength]
}

// DirectoryEnd computes the length of the directory part of path, up to and
// including the last path separator, or 0 if the path has none.
func DirectoryEnd(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			return i + 1
		}
	}
	return 0
}
