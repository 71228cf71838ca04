package script

import (
	"sync/atomic"

	"go.trai.ch/lode/internal/core/domain"
)

var _ domain.Value = (*Value)(nil)

// valueKind discriminates what an engine value represents.
type valueKind int

const (
	kindGlobal valueKind = iota
	kindModule
	kindError
)

// Value is the engine's reference-counted handle implementation. The handle
// itself is shared; callers balance Acquire and Release against the single
// underlying count.
type Value struct {
	id   uint64
	kind valueKind
	refs atomic.Int64

	// module payload, set for kindModule
	source       []byte
	resourceName string
	requests     []string

	// error payload, set for kindError
	message string
}

// ID returns the context-unique identity of the underlying value.
func (v *Value) ID() uint64 { return v.id }

// IsObject reports whether the value is an object. Globals and modules are
// objects; error values are not treated as objects here.
func (v *Value) IsObject() bool {
	return v.kind == kindGlobal || v.kind == kindModule
}

// Acquire increments the reference count and returns the same handle.
func (v *Value) Acquire() domain.Value {
	v.refs.Add(1)
	return v
}

// Release decrements the reference count.
func (v *Value) Release() {
	if v.refs.Add(-1) < 0 {
		panic("script: value released more times than acquired")
	}
}

// RefCount returns the current reference count. Intended for tests and leak
// checks.
func (v *Value) RefCount() int64 {
	return v.refs.Load()
}

// ResourceName returns the display name attached at parse time.
func (v *Value) ResourceName() string { return v.resourceName }

// Message returns the message of an error value, empty otherwise.
func (v *Value) Message() string { return v.message }
