// report_test.go — Report construction, message forms, and stdlib interop.
package xgxext

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_MessageAndStack(t *testing.T) {
	t.Parallel()

	r := New("boom")
	require.Equal(t, "boom", r.Error())
	require.Nil(t, r.Unwrap())
	// Default hook captures stacks; the first frame is this test.
	require.NotEmpty(t, r.Handler().Stack())
}

func TestErrorf_FormatsMessage(t *testing.T) {
	t.Parallel()

	r := Errorf("step %d of %s failed", 2, "sync")
	require.Equal(t, "step 2 of sync failed", r.Error())
}

func TestWrap_MessageForms(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")

	r := Wrap(cause, "read config")
	require.Equal(t, "read config: connection reset", r.Error())
	require.Same(t, cause, r.Unwrap())

	// Wrapping nil yields a fresh report with just the message.
	r2 := Wrap(nil, "read config")
	require.Equal(t, "read config", r2.Error())
	require.Nil(t, r2.Unwrap())
}

func TestReport_ErrorFallbacks(t *testing.T) {
	t.Parallel()

	// No message: the cause speaks.
	r := From(io.ErrUnexpectedEOF)
	require.Equal(t, io.ErrUnexpectedEOF.Error(), r.Error())

	// Neither message nor cause.
	empty := &Report{h: newHandler(0)}
	require.Equal(t, "error", empty.Error())
}

func TestFrom_ThreeWaySwitch(t *testing.T) {
	t.Parallel()

	require.Nil(t, From(nil))

	r := New("boom")
	require.Same(t, r, From(r), "From must preserve report identity")

	foreign := errors.New("raw")
	wrapped := From(foreign)
	require.NotNil(t, wrapped)
	require.Same(t, foreign, wrapped.Unwrap())
}

func TestReport_StdlibTraversal(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	r := Wrap(fmt.Errorf("mid: %w", sentinel), "outer")

	require.True(t, errors.Is(r, sentinel))

	var got *Report
	require.True(t, errors.As(fmt.Errorf("again: %w", r), &got))
	require.Same(t, r, got)
}

func TestWrap_FreshStorePerReport(t *testing.T) {
	t.Parallel()

	type marker struct{}

	inner := New("inner")
	SetExtension(inner, marker{})

	outer := Wrap(inner, "outer")
	// The new report's own store starts empty...
	_, ok := GetExtension[marker](outer)
	require.False(t, ok, "outer report must not inherit the inner store")
	// ...but the chain getter still reaches the inner value.
	_, ok = ExtensionFrom[marker](outer)
	require.True(t, ok)
}
