// attach.go — extension operations over plain errors.
//
// Purpose
//   - Apply the typed extension operations to ANY error value, not just
//     *Report: attachment converts via From, lookup scans the unwrap chain
//     for capability holders.
//   - Preserve interop with the standard library: chains built with
//     fmt.Errorf("%w") and errors.Join remain fully searchable.
//
// Traversal notes (Go ≥1.20):
//   - errors.Join produces Unwrap() []error; classic wrapping produces
//     Unwrap() error. Correct traversal must handle BOTH forms, pre-order,
//     cycle-safe. A blanket map[error] "seen" set would panic on errors with
//     non-comparable dynamic types, so the guard is dual: comparable values
//     by identity, pointer-typed non-comparables by pointer; anything else
//     is treated as acyclic and bounded by the depth cap.
//
// Lookup scans the WHOLE chain, not just the outermost report: an extension
// attached before the error was wrapped again stays reachable, which is the
// same convention errors.As establishes for typed retrieval.
package xgxext

import "reflect"

// Attach inserts val into err's extension store, converting err into a
// *Report first if necessary. A nil err stays nil. If a value of type T is
// already present on the resulting report it is replaced.
func Attach[T any](err error, val T) error {
	if err == nil {
		return nil
	}
	r := From(err)
	Insert(r.ExtensionsMut(), val)
	return r
}

// AttachFunc is the lazy form of Attach: f runs only when err is non-nil,
// so constructing an expensive extension value costs nothing on the success
// path.
func AttachFunc[T any](err error, f func() T) error {
	if err == nil {
		return nil
	}
	r := From(err)
	Insert(r.ExtensionsMut(), f())
	return r
}

// Detach removes the value of type T from err's own store, if err carries
// one. A nil err stays nil. Detach operates on the outermost report only:
// it converts err via From, so a foreign error comes back as a report with
// an empty store and the removal is a no-op.
func Detach[T any](err error) error {
	if err == nil {
		return nil
	}
	r := From(err)
	Remove[T](r.ExtensionsMut())
	return r
}

// ExtensionFrom returns the first value of type T found on any extension
// holder in err's unwrap chain.
func ExtensionFrom[T any](err error) (T, bool) {
	var out T
	var found bool
	walkChain(err, func(e error) bool {
		h, ok := e.(Holder)
		if !ok {
			return true
		}
		if v, ok := GetExtension[T](h); ok {
			out, found = v, true
			return false
		}
		return true
	})
	return out, found
}

// MutExtensionFrom returns a pointer to the first value of type T found on
// any writable extension holder in err's unwrap chain, for in-place
// mutation.
func MutExtensionFrom[T any](err error) (*T, bool) {
	var out *T
	walkChain(err, func(e error) bool {
		h, ok := e.(MutHolder)
		if !ok {
			return true
		}
		if p, ok := MutExtension[T](h); ok {
			out = p
			return false
		}
		return true
	})
	return out, out != nil
}

// HasExtension reports whether any holder in err's unwrap chain carries a
// value of type T.
func HasExtension[T any](err error) bool {
	_, ok := ExtensionFrom[T](err)
	return ok
}

// ExtensionsFrom returns the extension store of the first holder in err's
// unwrap chain, or (nil, false) if the chain contains none.
func ExtensionsFrom(err error) (*Extensions, bool) {
	var out *Extensions
	walkChain(err, func(e error) bool {
		if h, ok := e.(Holder); ok {
			out = h.Extensions()
			return false
		}
		return true
	})
	return out, out != nil
}

// ---------- chain traversal ---------------------------------------------

// single/multi unwrap interfaces (stdlib-compatible)
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// markSeen returns true if err was newly marked; false if already seen.
// Comparable dynamics go in seenErr; pointer-typed non-comparables go in
// seenPtr by identity; everything else is treated as acyclic (the depth cap
// still bounds traversal).
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if reflect.TypeOf(err).Comparable() {
		if _, dup := seenErr[err]; dup {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	return true
}

// walkChain visits each distinct node of err's unwrap graph in pre-order
// (visit before children, left to right). If visit returns false, traversal
// stops early. Nil is a no-op.
func walkChain(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12 // generous cap against runaway graphs

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Expand children: multi first, pushed in reverse for L→R order.
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] == nil {
					continue
				}
				if markSeen(kids[i], seenErr, seenPtr) {
					stack = append(stack, kids[i])
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil && markSeen(u, seenErr, seenPtr) {
				stack = append(stack, u)
			}
		}
	}
}
