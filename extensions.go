// extensions.go — type-identity keyed value store for xgx-ext core.
//
// Design:
//   • Key space is the type itself: a reflect.Type derived from the static
//     type parameter, never a string or enum. Two insertions of the same
//     concrete type always collide (replace); structurally identical but
//     distinct types never do.
//   • Entries are stored as *T boxes. The comma-ok assertion back to *T is
//     the downcast tag check: a mismatched entry resolves to "not found",
//     never to a reinterpreted value. The box also gives GetMut a stable
//     pointer for in-place mutation without re-inserting.
//   • At most one value per distinct type. Insert of an already-present type
//     replaces and RETURNS the displaced value; nothing is silently dropped.
//
// Rationale:
//   • Go methods cannot be generic, so the typed operations are package-level
//     generic functions over *Extensions. Clear, which is type-agnostic,
//     stays a method.
//   • reflect.TypeOf((*T)(nil)).Elem() is used (not reflect.TypeOf(val)) so
//     interface type parameters key on the interface type itself rather than
//     on the dynamic type of the stored value.
//
// Concurrency: no internal locking. Operations are synchronous, non-blocking
// local computation; callers serialize access to a given Extensions value.
package xgxext

import "reflect"

// Extensions stores at most one value per distinct type, retrievable only as
// the exact type it was inserted under.
//
// The zero value is an empty, ready-to-use store. A nil *Extensions is a
// valid empty store for all read operations; writes require a non-nil
// receiver, like writes to a nil map.
//
// There is deliberately no way to enumerate stored types: callers must know
// what they are looking for.
type Extensions struct {
	entries map[reflect.Type]any // each value is a *T keyed by typeKey[T]
}

// NewExtensions returns an empty extension store.
// Equivalent to &Extensions{}; provided for call-site symmetry with hosts
// that allocate their store explicitly.
func NewExtensions() *Extensions {
	return &Extensions{}
}

// typeKey returns the process-stable identity key for T.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Insert stores val under T's type identity.
// If a value of type T was already present it is replaced, and the displaced
// value is returned with replaced=true. Otherwise the zero value of T is
// returned with replaced=false.
func Insert[T any](x *Extensions, val T) (prev T, replaced bool) {
	k := typeKey[T]()
	if old, ok := x.entries[k]; ok {
		if p, ok := old.(*T); ok {
			prev, replaced = *p, true
		}
	}
	if x.entries == nil {
		x.entries = make(map[reflect.Type]any, 1)
	}
	x.entries[k] = &val
	return prev, replaced
}

// Get returns the stored value of type T, if present.
// Absence is a normal result, not a fault: a T that was never inserted and a
// T that was removed both report (zero, false). Never allocates.
func Get[T any](x *Extensions) (T, bool) {
	var zero T
	if x == nil {
		return zero, false
	}
	p, ok := x.entries[typeKey[T]()].(*T)
	if !ok {
		return zero, false
	}
	return *p, true
}

// GetMut returns a pointer to the stored value of type T for in-place
// mutation, or (nil, false) if absent. The pointer remains valid until the
// entry is replaced or removed; mutations through it are visible to
// subsequent Gets.
func GetMut[T any](x *Extensions) (*T, bool) {
	if x == nil {
		return nil, false
	}
	p, ok := x.entries[typeKey[T]()].(*T)
	if !ok {
		return nil, false
	}
	return p, true
}

// Remove deletes the entry for T and returns the value it held, transferring
// ownership to the caller. After Remove, Get[T] reports absent until a new T
// is inserted.
func Remove[T any](x *Extensions) (T, bool) {
	var zero T
	if x == nil {
		return zero, false
	}
	k := typeKey[T]()
	p, ok := x.entries[k].(*T)
	if !ok {
		return zero, false
	}
	delete(x.entries, k)
	return *p, true
}

// Clear drops every stored value, returning the store to its empty state.
// Nil-safe.
func (x *Extensions) Clear() {
	if x == nil {
		return
	}
	clear(x.entries)
}
