// attach_test.go — extension operations over plain errors, including chain
// traversal through %w wrapping and errors.Join.
package xgxext

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type retry struct{ Allowed bool }

type counter struct{ N int }

func TestAttach_NilStaysNil(t *testing.T) {
	t.Parallel()

	require.Nil(t, Attach(nil, retry{Allowed: true}))
	require.Nil(t, Detach[retry](nil))
}

func TestAttach_ForeignErrorBecomesReport(t *testing.T) {
	t.Parallel()

	err := Attach(errors.New("cmd exited with non-zero status code"), retry{Allowed: true})

	var r *Report
	require.True(t, errors.As(err, &r))
	require.Equal(t, "cmd exited with non-zero status code", err.Error())

	v, ok := ExtensionFrom[retry](err)
	require.True(t, ok)
	require.True(t, v.Allowed)
}

func TestAttach_PreservesReportIdentity(t *testing.T) {
	t.Parallel()

	r := New("boom")
	got := Attach(r, retry{})
	require.Same(t, r, got.(*Report))
}

func TestAttachFunc_LazyConstruction(t *testing.T) {
	t.Parallel()

	calls := 0
	make2 := func() retry { calls++; return retry{Allowed: true} }

	require.Nil(t, AttachFunc(nil, make2))
	require.Zero(t, calls, "constructor must not run for a nil error")

	err := AttachFunc(errors.New("boom"), make2)
	require.Equal(t, 1, calls)
	require.True(t, HasExtension[retry](err))
}

func TestDetach_RemovesFromOwnStore(t *testing.T) {
	t.Parallel()

	err := Attach(New("boom"), retry{Allowed: true})
	err = Detach[retry](err)
	require.False(t, HasExtension[retry](err))

	// Detaching a type that was never attached is a quiet no-op.
	err = Detach[counter](err)
	require.NotNil(t, err)
}

func TestExtensionFrom_ThroughWrappingLayers(t *testing.T) {
	t.Parallel()

	base := Attach(errors.New("io failure"), retry{Allowed: true})

	wrapped := fmt.Errorf("load config: %w", base)
	v, ok := ExtensionFrom[retry](wrapped)
	require.True(t, ok)
	require.True(t, v.Allowed)

	rewrapped := Wrap(wrapped, "startup")
	v, ok = ExtensionFrom[retry](rewrapped)
	require.True(t, ok)
	require.True(t, v.Allowed)
}

func TestExtensionFrom_ThroughJoin(t *testing.T) {
	t.Parallel()

	left := errors.New("left")
	right := Attach(errors.New("right"), counter{N: 9})

	joined := errors.Join(left, right)
	v, ok := ExtensionFrom[counter](joined)
	require.True(t, ok)
	require.Equal(t, 9, v.N)

	_, ok = ExtensionFrom[retry](joined)
	require.False(t, ok)
}

func TestExtensionFrom_FirstHolderWins(t *testing.T) {
	t.Parallel()

	inner := Attach(errors.New("inner"), counter{N: 1})
	outer := Attach(Wrap(inner, "outer"), counter{N: 2})

	// Pre-order traversal: the outermost holder's value is found first.
	v, ok := ExtensionFrom[counter](outer)
	require.True(t, ok)
	require.Equal(t, 2, v.N)
}

func TestMutExtensionFrom_InPlaceMutation(t *testing.T) {
	t.Parallel()

	err := Attach(errors.New("boom"), counter{N: 0})

	for i := 0; i < 3; i++ {
		p, ok := MutExtensionFrom[counter](err)
		require.True(t, ok)
		p.N++
	}

	v, ok := ExtensionFrom[counter](err)
	require.True(t, ok)
	require.Equal(t, 3, v.N)
}

func TestExtensionsFrom_FindsFirstHolder(t *testing.T) {
	t.Parallel()

	r := New("boom")
	wrapped := fmt.Errorf("ctx: %w", r)

	x, ok := ExtensionsFrom(wrapped)
	require.True(t, ok)
	require.Same(t, r.Extensions(), x)

	_, ok = ExtensionsFrom(errors.New("plain"))
	require.False(t, ok)
}

// loopErr unwraps to itself; traversal must terminate anyway.
type loopErr struct{}

func (e *loopErr) Error() string { return "loop" }
func (e *loopErr) Unwrap() error { return e }

func TestWalkChain_CycleSafe(t *testing.T) {
	t.Parallel()

	_, ok := ExtensionFrom[retry](&loopErr{})
	require.False(t, ok)
}
