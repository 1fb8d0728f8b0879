// config.go — configuration for report construction and panic reporting.
//
// HookBuilder configures both hooks in one place:
//   - the report hook, which decides whether new reports capture a stack and
//     which frame filters apply when one is rendered;
//   - the panic hook, which renders recovered panic values with an optional
//     extra section and an optional runtime section.
//
// Install contract:
//   - The report hook installs at most once per process; a second Install
//     returns ErrInstalled. Check with errors.Is.
//   - The panic hook may be replaced freely; the last install wins.
//
// Go has no process-wide panic hook to overwrite, so the panic side is used
// from a deferred recover: see Recovered.
package xgxext

import "errors"

// ErrInstalled is returned when a report hook has already been installed.
var ErrInstalled = errors.New("xgxext: report hook already installed")

// HookBuilder accumulates hook configuration. The zero value has every
// feature disabled; NewHookBuilder returns the recommended defaults.
type HookBuilder struct {
	capture      bool
	filters      []FrameFilter
	panicSection string
	displayEnv   bool
}

// NewHookBuilder returns a builder with the default features enabled:
// stack capture on report construction. To start from nothing, use
// BlankHookBuilder.
func NewHookBuilder() *HookBuilder {
	return &HookBuilder{capture: true}
}

// BlankHookBuilder returns a builder with every feature disabled.
func BlankHookBuilder() *HookBuilder {
	return &HookBuilder{}
}

// CaptureStacksByDefault sets whether reports capture a stack when they are
// constructed.
func (b *HookBuilder) CaptureStacksByDefault(cond bool) *HookBuilder {
	b.capture = cond
	return b
}

// AddFrameFilter appends a filter applied to stacks at render time, after
// any previously added filters.
func (b *HookBuilder) AddFrameFilter(f FrameFilter) *HookBuilder {
	b.filters = append(b.filters, f)
	return b
}

// PanicSection sets an extra section printed at the end of panic reports,
// e.g. an issue-tracker pointer.
func (b *HookBuilder) PanicSection(section string) *HookBuilder {
	b.panicSection = section
	return b
}

// DisplayEnvSection sets whether panic reports include a runtime section
// (Go version, GOOS/GOARCH).
func (b *HookBuilder) DisplayEnvSection(cond bool) *HookBuilder {
	b.displayEnv = cond
	return b
}

// IntoHooks splits the builder into its two hooks without installing them.
// Useful for combining with other handlers or for tests that must not touch
// process-global state.
func (b *HookBuilder) IntoHooks() (*PanicHook, *ReportHook) {
	// Copy the filter slice: the builder may keep appending afterwards.
	filters := make([]FrameFilter, len(b.filters))
	copy(filters, b.filters)

	panicHook := &PanicHook{
		section:    b.panicSection,
		displayEnv: b.displayEnv,
		filters:    filters,
	}
	reportHook := &ReportHook{
		capture: b.capture,
		filters: filters,
	}
	return panicHook, reportHook
}

// Install registers both hooks globally. The report hook install fails with
// ErrInstalled if one is already registered; in that case the panic hook is
// not touched either.
func (b *HookBuilder) Install() error {
	panicHook, reportHook := b.IntoHooks()
	if err := reportHook.Install(); err != nil {
		return err
	}
	panicHook.Install()
	return nil
}

// Install registers the default hooks (NewHookBuilder) globally.
func Install() error {
	return NewHookBuilder().Install()
}

// ReportHook decides how new reports are constructed.
type ReportHook struct {
	capture bool
	filters []FrameFilter
}

// Install registers the hook as the process-global report hook. It fails
// with ErrInstalled if any hook (including this one) is already installed.
func (h *ReportHook) Install() error {
	if !installedReportHook.CompareAndSwap(nil, h) {
		return ErrInstalled
	}
	return nil
}

// PanicHook renders recovered panic values.
type PanicHook struct {
	section    string
	displayEnv bool
	filters    []FrameFilter
}

// Install registers the hook as the process-global panic hook, replacing any
// previous one.
func (h *PanicHook) Install() {
	installedPanicHook.Store(h)
}

// Report builds a PanicReport for a recovered value, capturing the stack at
// the caller. Intended for use directly inside a deferred recover block so
// the stack still shows the panicking frames.
func (h *PanicHook) Report(v any) *PanicReport {
	return &PanicReport{
		value:      v,
		stk:        captureStack(1), // +1 to skip Report
		section:    h.section,
		displayEnv: h.displayEnv,
		filters:    h.filters,
	}
}

// Recovered builds a PanicReport for a recovered value using the installed
// panic hook (or the default one).
//
//	defer func() {
//	    if v := recover(); v != nil {
//	        fmt.Fprintln(os.Stderr, xgxext.Recovered(v))
//	        panic(v)
//	    }
//	}()
func Recovered(v any) *PanicReport {
	h := currentPanicHook()
	return &PanicReport{
		value:      v,
		stk:        captureStack(1), // +1 to skip Recovered
		section:    h.section,
		displayEnv: h.displayEnv,
		filters:    h.filters,
	}
}
