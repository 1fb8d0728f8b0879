// doc.go — package documentation for xgx-ext
//
// Package xgxext attaches arbitrary typed values to error reports and
// retrieves them by static type. The core is Extensions, a store keyed by
// type identity: unrelated call sites can each park one value of their own
// type on an error without the error's definition knowing those types, and
// later recover the value with full type safety.
//
// # The Store
//
// Extensions holds at most one value per distinct type. Inserting a second
// value of an already-present type replaces the first and hands the
// displaced value back — nothing is dropped silently. Retrieval is strict:
// a value inserted as T comes back only as exactly T; any other requested
// type reports absent. Absence is a normal comma-ok miss, never an error,
// and "never inserted" is indistinguishable from "inserted then removed".
//
//	var x xgxext.Extensions            // zero value is ready
//	xgxext.Insert(&x, Retry{After: time.Second})
//	if r, ok := xgxext.Get[Retry](&x); ok {
//	    // ...
//	}
//
// There is no way to enumerate stored types. Callers must know what they
// are looking for; that restriction is deliberate.
//
// # The Capability Contract
//
// Any object becomes an extension host by embedding one Extensions value
// and exposing it through two accessors:
//
//	func (o *MyObject) Extensions() *xgxext.Extensions    // read (Holder)
//	func (o *MyObject) ExtensionsMut() *xgxext.Extensions // write (MutHolder)
//
// The typed operations (SetExtension, GetExtension, MutExtension,
// RemoveExtension) are implemented once against those interfaces and work
// on every host. No base type, no inheritance.
//
// # Reports
//
// Report is the built-in host: an error wrapping a message, an optional
// cause, and a per-report Handler holding the store and an optionally
// captured stack. The plain-error adapters make attachment ergonomic at
// boundaries that deal in error, not *Report:
//
//	return xgxext.Attach(err, Retry{After: time.Second})
//
//	if r, ok := xgxext.ExtensionFrom[Retry](err); ok {
//	    // reachable even through fmt.Errorf("%w") or errors.Join layers
//	}
//
// # Hooks
//
// HookBuilder configures report construction (stack capture, frame filters)
// and panic rendering (extra section, runtime section). The report hook
// installs once per process; Recovered renders recovered panic values via
// the installed panic hook:
//
//	defer func() {
//	    if v := recover(); v != nil {
//	        fmt.Fprintln(os.Stderr, xgxext.Recovered(v))
//	        panic(v)
//	    }
//	}()
//
// # Concurrency
//
// The store performs no internal synchronization; operations on one
// Extensions value must be externally serialized. If a host is shared
// across goroutines, every stored type must itself tolerate that sharing —
// the store does not launder an unsafe type into a safe one.
//
// # Formatting
//
// Report and PanicReport implement fmt.Formatter: %v and %s give the
// concise one-liner, %+v the verbose multi-line form with cause recursion
// and the filtered stack; %q quotes the concise form.
package xgxext
