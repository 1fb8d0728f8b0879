// capability.go — the capability contract any host object implements to
// carry extensions, plus the blanket typed operations granted in return.
//
// Design tenets:
//   - Capability over inheritance: a host gains the typed operations by
//     exposing its embedded Extensions through two small accessor methods,
//     not by embedding a base type. Unrelated hosts stay unrelated.
//   - The operations are implemented ONCE against the interfaces and reused
//     by every implementer; Report is the chief implementer in this module.
//   - Hosts MUST initialize their store to the empty state at construction.
//     Embedding an Extensions value satisfies this for free: the zero value
//     is the empty state.
package xgxext

// Holder is the read capability: anything that can expose its extension
// store for lookup. Implementations return the embedded store; they MUST NOT
// return a copy, or GetMut pointers would alias a throwaway.
type Holder interface {
	Extensions() *Extensions
}

// MutHolder is the write capability: anything that can expose its extension
// store for insertion and removal. Callers of the write path must have
// exclusive access to the host; the store performs no locking of its own.
type MutHolder interface {
	ExtensionsMut() *Extensions
}

// SetExtension inserts val into h's store, replacing and returning any
// previous value of type T. Semantics are identical to Insert on the store
// itself.
func SetExtension[T any](h MutHolder, val T) (prev T, replaced bool) {
	return Insert(h.ExtensionsMut(), val)
}

// GetExtension returns the value of type T from h's store, if present.
func GetExtension[T any](h Holder) (T, bool) {
	return Get[T](h.Extensions())
}

// MutExtension returns a pointer to the value of type T in h's store for
// in-place mutation, or (nil, false) if absent.
func MutExtension[T any](h MutHolder) (*T, bool) {
	return GetMut[T](h.ExtensionsMut())
}

// RemoveExtension removes and returns the value of type T from h's store.
func RemoveExtension[T any](h MutHolder) (T, bool) {
	return Remove[T](h.ExtensionsMut())
}

// ClearExtensions empties h's store.
func ClearExtensions(h MutHolder) {
	h.ExtensionsMut().Clear()
}
