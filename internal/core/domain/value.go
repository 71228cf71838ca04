package domain

// Value is an opaque handle to an engine-managed value. The engine reference
// counts the underlying value; every Acquire must be paired with exactly one
// Release, and a handle must not be used after its last reference is gone.
type Value interface {
	// ID is a context-unique identity for the underlying value. Two handles
	// refer to the same value exactly when their IDs are equal.
	ID() uint64

	// IsObject reports whether the value is an object.
	IsObject() bool

	// Acquire increments the reference count and returns the same handle.
	Acquire() Value

	// Release decrements the reference count.
	Release()
}
