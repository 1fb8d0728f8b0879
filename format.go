// format.go — fmt.Formatter implementations for xgx-ext.
//
// Behavior:
//
//	%s, %v   → concise string (Error() / "panic: <message>").
//	%+v      → verbose, structured multi-line format:
//	             msg="<message>"
//	             cause: <recursively formatted with %+v>
//	             stack:
//	               funcA file.go:123
//	               funcB other.go:45
//	%q       → quoted concise string.
//
// Rationale:
//   - Only fmt formatting in core; no logging/HTTP/JSON policy.
//   - Frame filters from the hook apply here, at render time.
//   - Cause formatting defers to fmt with %+v to preserve nested details.
package xgxext

import (
	"fmt"
	"io"
	"runtime"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// writeStack renders the filtered frames, most recent first.
func writeStack(w io.Writer, stk Stack, filters []FrameFilter) {
	frames := applyFilters(stk, filters)
	if len(frames) == 0 {
		return
	}
	_, _ = io.WriteString(w, "\nstack:")
	for _, fr := range frames {
		_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
	}
}

// Format implements fmt.Formatter for Report.
func (r *Report) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "msg=%q", r.msg)
			if r.cause != nil {
				_, _ = io.WriteString(s, "\ncause: ")
				// Recurse with %+v so nested reports render verbosely too.
				_, _ = fmt.Fprintf(s, "%+v", r.cause)
			}
			writeStack(s, r.h.stk, r.h.filters)
			return
		}
		formatConcise(s, r)
	case 's':
		formatConcise(s, r)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.Error())
	default:
		formatConcise(s, r)
	}
}

// PanicReport is a formattable rendering of a recovered panic value,
// produced by PanicHook.Report or Recovered.
type PanicReport struct {
	value      any
	stk        Stack
	section    string
	displayEnv bool
	filters    []FrameFilter
}

// Message returns the panic payload as text: strings and errors verbatim,
// anything else via %v.
func (p *PanicReport) Message() string {
	switch v := p.value.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// String renders the full report (same as %+v). Panic reports exist to be
// printed, so the default form is the verbose one.
func (p *PanicReport) String() string {
	return fmt.Sprintf("%+v", p)
}

// Format implements fmt.Formatter.
//
//	%v, %s → "panic: <message>" one-liner.
//	%+v    → message, optional section, optional runtime section, stack.
func (p *PanicReport) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "panic: %s", p.Message())
			if p.section != "" {
				_, _ = fmt.Fprintf(s, "\n%s", p.section)
			}
			if p.displayEnv {
				_, _ = fmt.Fprintf(s, "\nruntime: %s %s/%s",
					runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
			writeStack(s, p.stk, p.filters)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprintf(s, "panic: %s", p.Message())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", "panic: "+p.Message())
	default:
		_, _ = fmt.Fprintf(s, "panic: %s", p.Message())
	}
}

var _ fmt.Formatter = (*PanicReport)(nil)
var _ fmt.Stringer = (*PanicReport)(nil)
