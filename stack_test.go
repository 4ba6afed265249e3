package linkedstack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verist/linkedstack"
	"github.com/verist/linkedstack/errs"
)

// contents captures the stack head first through its public surface.
func contents[T any](st *linkedstack.Stack[T]) []T {
	out := make([]T, st.Len())
	for i := range out {
		out[i] = st.Lookup(i)
	}
	return out
}

// requirePanicCode asserts that fn panics with a *errs.Error of the given
// code.
func requirePanicCode(t *testing.T, code errs.Code, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.Equal(t, code, errs.CodeOf(err))
	}()
	fn()
}

func TestNew(t *testing.T) {
	st := linkedstack.New[int]()
	require.Equal(t, 0, st.Len())
	require.True(t, st.IsEmpty())
}

func TestPushPopScenario(t *testing.T) {
	st := linkedstack.New[int]()
	st.Push(5)
	st.Push(10)
	require.False(t, st.IsEmpty())
	require.Equal(t, 2, st.Len())
	require.Equal(t, 10, st.Lookup(0))
	require.Equal(t, 5, st.Lookup(1))

	require.Equal(t, 10, st.Pop())

	v, ok := st.TryPop()
	require.True(t, ok)
	require.Equal(t, 5, v)

	v, ok = st.TryPop()
	require.False(t, ok)
	require.Zero(t, v)
	require.True(t, st.IsEmpty())
	require.Equal(t, 0, st.Len())
}

func TestPushIsAPurePrepend(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	st := linkedstack.New[int]()
	for i := 0; i < 100; i++ {
		before := contents(st)
		elem := rng.Int()
		st.Push(elem)

		require.Equal(t, len(before)+1, st.Len())
		require.Equal(t, elem, st.Lookup(0))
		for j, v := range before {
			require.Equal(t, v, st.Lookup(j+1))
		}
	}
}

func TestTryPopRemovesExactlyTheHead(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	st := linkedstack.New[int]()
	for i := 0; i < 50; i++ {
		st.Push(rng.Int())
	}
	for !st.IsEmpty() {
		before := contents(st)
		v, ok := st.TryPop()

		require.True(t, ok)
		require.Equal(t, before[0], v)
		require.Equal(t, len(before)-1, st.Len())
		for j := 1; j < len(before); j++ {
			require.Equal(t, before[j], st.Lookup(j-1))
		}
	}
}

func TestTryPopOnEmptyIsANoOp(t *testing.T) {
	st := linkedstack.New[string]()
	v, ok := st.TryPop()
	require.False(t, ok)
	require.Zero(t, v)
	require.True(t, st.IsEmpty())

	// Still empty, still a no-op.
	v, ok = st.TryPop()
	require.False(t, ok)
	require.Zero(t, v)
	require.True(t, st.IsEmpty())
}

func TestPushPopRoundTrip(t *testing.T) {
	st := linkedstack.New[int]()
	st.Push(1)
	st.Push(2)
	st.Push(3)
	before := contents(st)

	st.Push(42)
	require.Equal(t, 42, st.Pop())

	require.Equal(t, len(before), st.Len())
	require.Equal(t, before, contents(st))
}

func TestIsEmptyAgreesWithLen(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	st := linkedstack.New[int]()
	for i := 0; i < 200; i++ {
		require.Equal(t, st.Len() == 0, st.IsEmpty())
		if rng.Intn(2) == 0 {
			st.Push(rng.Int())
		} else {
			st.TryPop()
		}
	}
}

func TestStructElements(t *testing.T) {
	type foo struct {
		bar string
	}

	st := linkedstack.New[foo]()
	st.Push(foo{bar: "baz"})

	require.Equal(t, foo{bar: "baz"}, st.Lookup(0))

	v, ok := st.TryPop()
	require.True(t, ok)
	require.Equal(t, foo{bar: "baz"}, v)
	require.Zero(t, st.Len())
}

func TestPopOnEmptyPanics(t *testing.T) {
	st := linkedstack.New[int]()
	requirePanicCode(t, errs.CodeEmptyStack, func() { st.Pop() })
}

func TestLookupOutOfRangePanics(t *testing.T) {
	st := linkedstack.New[int]()
	st.Push(1)

	requirePanicCode(t, errs.CodeIndexOutOfRange, func() { st.Lookup(1) })
	requirePanicCode(t, errs.CodeIndexOutOfRange, func() { st.Lookup(-1) })
}
