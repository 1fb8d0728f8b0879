// report.go — the error report host object and its constructors.
//
// Report is the chief implementer of the capability contract: it owns one
// Handler (and through it one Extensions store), wraps an optional cause,
// and interoperates with the standard library via Unwrap and fmt.Formatter.
//
// Constructor discipline follows a three-way switch on the input:
//   - nil        → nil (From) or a fresh report (Wrap with a message)
//   - *Report    → returned/augmented as-is, identity preserved
//   - other      → wrapped as cause, with a new handler from the hook
//
// Unlike the store itself, reports are MUTABLE through the capability
// surface: attaching an extension modifies the report in place rather than
// cloning it, because the store owns its values exclusively and a clone
// would require copying values of unknown types.
package xgxext

import "fmt"

// Report is an error carrying a typed extension store alongside its message
// and cause. The zero value is not useful; construct via New, Errorf, Wrap
// or From so the handler exists.
type Report struct {
	msg   string
	cause error
	h     *Handler
}

// New creates a report with a message and no cause. The stack is captured
// here if the installed hook says so.
func New(msg string) *Report {
	return &Report{msg: msg, h: newHandler(1)}
}

// Errorf creates a report with a fmt-formatted message.
func Errorf(format string, args ...any) *Report {
	return &Report{msg: fmt.Sprintf(format, args...), h: newHandler(1)}
}

// Wrap creates a report with msg wrapping err as its cause. If err is nil,
// the result is a fresh report carrying only the message. Wrapping always
// builds a new report with its own empty extension store; extensions on a
// wrapped report remain reachable through the chain getters (ExtensionFrom
// and friends).
func Wrap(err error, msg string) *Report {
	return &Report{msg: msg, cause: err, h: newHandler(1)}
}

// From converts any error into a *Report without adding a message.
//   - nil → nil
//   - *Report → returned as-is (identity preserved, extensions kept)
//   - other → wrapped as cause under a new handler
func From(err error) *Report {
	if err == nil {
		return nil
	}
	if r, ok := err.(*Report); ok {
		return r
	}
	return &Report{cause: err, h: newHandler(1)}
}

// Error returns the concise message: "msg", "msg: cause", or the cause's
// own text when the report has no message of its own.
func (r *Report) Error() string {
	switch {
	case r.msg != "" && r.cause != nil:
		return r.msg + ": " + r.cause.Error()
	case r.msg != "":
		return r.msg
	case r.cause != nil:
		return r.cause.Error()
	}
	return "error"
}

// Unwrap exposes the cause to errors.Is/As traversal.
func (r *Report) Unwrap() error { return r.cause }

// Extensions exposes the report's store for lookup (read capability).
func (r *Report) Extensions() *Extensions { return r.h.Extensions() }

// ExtensionsMut exposes the report's store for mutation (write capability).
func (r *Report) ExtensionsMut() *Extensions { return r.h.ExtensionsMut() }

// Handler returns the report's handler, for callers that need the captured
// stack or want to reach the store through the handler directly.
func (r *Report) Handler() *Handler { return r.h }

// Interface conformance guards (keep in the file that defines the type).
var (
	_ error         = (*Report)(nil)
	_ Holder        = (*Report)(nil)
	_ MutHolder     = (*Report)(nil)
	_ fmt.Formatter = (*Report)(nil)
)
