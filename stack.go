// stack.go — stack capture for xgx-ext reports and panic reports.
//
// Design goals:
//   - Accuracy: runtime.Callers + runtime.CallersFrames so inlined frames
//     resolve correctly.
//   - Opt-out, not opt-in: reports capture by default because they exist to
//     be read by a human later; BlankHookBuilder disables capture.
//   - Filtering happens at RENDER time, never at capture time, so a frame
//     filter added to the hook cannot lose information already captured.
package xgxext

import (
	"runtime"
	"strings"
)

// Frame is a single call site in a captured stack.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified (pkg.Func or recv.method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// FrameFilter rewrites the frame list before rendering, typically to drop
// uninteresting frames. Filters receive the full captured stack and return
// the frames to keep; they run in the order they were added to the hook.
type FrameFilter func(frames []Frame) []Frame

// FilterPrefix returns a FrameFilter that drops every frame whose function
// name starts with any of the given prefixes.
func FilterPrefix(prefixes ...string) FrameFilter {
	return func(frames []Frame) []Frame {
		out := frames[:0]
		for _, fr := range frames {
			drop := false
			for _, p := range prefixes {
				if strings.HasPrefix(fr.Function, p) {
					drop = true
					break
				}
			}
			if !drop {
				out = append(out, fr)
			}
		}
		return out
	}
}

const defaultMaxDepth = 64

// captureStack captures up to defaultMaxDepth frames, skipping 'skip' frames
// beyond the internal helpers.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureStack
//
// so skip=0 places the first recorded frame at captureStack's caller; each
// constructor adds +1 for itself so user-visible stacks begin at the user
// call site.
func captureStack(skip int) Stack {
	pc := make([]uintptr, defaultMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// applyFilters runs the filters over a defensive copy of stk.
// The copy keeps captured stacks immutable; FilterPrefix-style filters may
// reslice their input freely.
func applyFilters(stk Stack, filters []FrameFilter) Stack {
	if len(stk) == 0 || len(filters) == 0 {
		return stk
	}
	frames := make([]Frame, len(stk))
	copy(frames, stk)
	for _, f := range filters {
		if f != nil {
			frames = f(frames)
		}
	}
	return frames
}
