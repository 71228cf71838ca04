// Package ports defines the interfaces between the resolution core and its
// collaborators: the script engine, the file system and the host ambient
// services.
package ports

import "go.trai.ch/lode/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// Engine creates engine process-contexts.
type Engine interface {
	// NewContext creates a fresh process-context with its own initial realm.
	NewContext() (EngineContext, error)
}

// EngineContext is one engine process-context: the container that owns value
// lifetimes, realms and module metadata. It scopes exactly one module cache.
type EngineContext interface {
	// Global returns a borrowed handle to the current realm's global object.
	Global() domain.Value

	// Parse parses source as a module. resourceName is the displayed name
	// attached to the parse; it need not be a canonical path. The returned
	// handle carries one reference owned by the caller.
	Parse(source []byte, resourceName string) (domain.Value, error)

	// ModuleRequests lists the specifiers the module statically imports.
	ModuleRequests(module domain.Value) ([]string, error)

	// NewError constructs an error value of the given category.
	NewError(kind domain.ErrorKind, message string) domain.Value

	// SetModuleData attaches cache metadata to a module value so the module
	// can supply its own base path when it later acts as a referrer.
	SetModuleData(v domain.Value, m *domain.CachedModule)

	// ModuleData retrieves metadata attached with SetModuleData. The second
	// return is false when v is not an object or carries no metadata.
	ModuleData(v domain.Value) (*domain.CachedModule, bool)

	// Close tears down the context. All handles created in it become invalid.
	Close() error
}
