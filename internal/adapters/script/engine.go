// Package script is the reference engine adapter. It implements the engine
// ports with an in-process miniature engine: values are reference-counted
// handles, a context owns one or more realms, and parsing is a static scan
// for module dependencies. It exists so the resolver can be exercised without
// binding a real script engine.
package script

import (
	"sync"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Engine        = (*Engine)(nil)
	_ ports.EngineContext = (*Context)(nil)
)

// Engine creates contexts of the reference engine.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// NewContext creates a fresh context with one initial realm.
func (e *Engine) NewContext() (ports.EngineContext, error) {
	ctx := &Context{
		moduleData: make(map[uint64]*domain.CachedModule),
	}
	ctx.current = ctx.newRealmLocked()
	return ctx, nil
}

// Context is one engine process-context. All handles created through it
// become invalid on Close.
type Context struct {
	mu         sync.Mutex
	nextID     uint64
	realms     []*Value
	current    *Value
	moduleData map[uint64]*domain.CachedModule
	closed     bool
}

func (c *Context) newValueLocked(kind valueKind) *Value {
	c.nextID++
	v := &Value{id: c.nextID, kind: kind}
	v.refs.Store(1)
	return v
}

func (c *Context) newRealmLocked() *Value {
	realm := c.newValueLocked(kindGlobal)
	c.realms = append(c.realms, realm)
	return realm
}

// NewRealm creates an additional realm and returns its global object without
// switching to it.
func (c *Context) NewRealm() domain.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.newRealmLocked()
}

// SwitchRealm makes the realm of the given global object current. It fails
// when global does not name a realm of this context.
func (c *Context) SwitchRealm(global domain.Value) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, realm := range c.realms {
		if realm.ID() == global.ID() {
			c.current = realm
			return nil
		}
	}
	return zerr.With(zerr.New("no such realm"), "id", global.ID())
}

// Global returns a borrowed handle to the current realm's global object.
func (c *Context) Global() domain.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Parse parses source as a module. The returned handle carries one reference
// owned by the caller.
func (c *Context) Parse(source []byte, resourceName string) (domain.Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, domain.ErrContextClosed
	}

	requests, err := scanModule(source)
	if err != nil {
		return nil, zerr.With(err, "resource", resourceName)
	}

	v := c.newValueLocked(kindModule)
	v.source = source
	v.resourceName = resourceName
	v.requests = requests
	return v, nil
}

// ModuleRequests lists the specifiers the module statically imports, in
// source order.
func (c *Context) ModuleRequests(module domain.Value) ([]string, error) {
	v, ok := module.(*Value)
	if !ok || v.kind != kindModule {
		return nil, zerr.New("value is not a module")
	}
	return v.requests, nil
}

// NewError constructs an error value of the given category. The handle
// carries one reference owned by the caller.
func (c *Context) NewError(kind domain.ErrorKind, message string) domain.Value {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.newValueLocked(kindError)
	v.message = kind.String() + ": " + message
	return v
}

// SetModuleData attaches cache metadata to a module value.
func (c *Context) SetModuleData(v domain.Value, m *domain.CachedModule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moduleData[v.ID()] = m
}

// ModuleData retrieves metadata attached with SetModuleData.
func (c *Context) ModuleData(v domain.Value) (*domain.CachedModule, bool) {
	if v == nil || !v.IsObject() {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.moduleData[v.ID()]
	return m, ok
}

// Close tears down the context.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrContextClosed
	}
	c.closed = true
	c.moduleData = nil
	c.realms = nil
	return nil
}
