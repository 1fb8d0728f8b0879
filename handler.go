// handler.go — per-report state and the process-global report hook.
//
// Every Report owns exactly one Handler, created by the installed report
// hook at construction time. The Handler carries:
//   - the report's Extensions store (always created empty), and
//   - the optional stack captured at the construction site, plus the render
//     options the hook was configured with.
//
// The hook is process-global and installs at most once (a second install is
// an error); when nothing is installed, a default hook with stack capture
// enabled is used. This mirrors the install-once contract of global error
// hooks while keeping report construction race-free via an atomic pointer.
package xgxext

import "sync/atomic"

// Handler holds the per-report extension store and diagnostic state.
type Handler struct {
	ext     Extensions
	stk     Stack
	filters []FrameFilter
}

// Extensions exposes the handler's store for lookup (read capability).
func (h *Handler) Extensions() *Extensions { return &h.ext }

// ExtensionsMut exposes the handler's store for mutation (write capability).
func (h *Handler) ExtensionsMut() *Extensions { return &h.ext }

// Stack returns the stack captured when the owning report was constructed,
// or nil if the hook had capture disabled.
func (h *Handler) Stack() Stack { return h.stk }

var (
	_ Holder    = (*Handler)(nil)
	_ MutHolder = (*Handler)(nil)
)

// installedReportHook is nil until a hook is installed; construction falls
// back to defaultReportHook.
var installedReportHook atomic.Pointer[ReportHook]

// installedPanicHook may be replaced freely (unlike the report hook).
var installedPanicHook atomic.Pointer[PanicHook]

var defaultReportHook = &ReportHook{capture: true}

var defaultPanicHook = &PanicHook{}

func currentReportHook() *ReportHook {
	if h := installedReportHook.Load(); h != nil {
		return h
	}
	return defaultReportHook
}

func currentPanicHook() *PanicHook {
	if h := installedPanicHook.Load(); h != nil {
		return h
	}
	return defaultPanicHook
}

// newHandler builds a Handler via the current report hook. skip counts the
// constructor frames between the user call site and newHandler.
func newHandler(skip int) *Handler {
	hook := currentReportHook()
	h := &Handler{filters: hook.filters}
	if hook.capture {
		h.stk = captureStack(skip + 1) // +1 to skip newHandler
	}
	return h
}
