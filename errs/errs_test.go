package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verist/linkedstack/errs"
)

func TestErrs(t *testing.T) {
	var nilErr *errs.Error
	assert.Equal(t, "<nil>", nilErr.Error())

	e := errs.New(errs.CodeEmptyStack, "pop on empty stack")
	require.NotNil(t, e)
	assert.Equal(t, errs.CodeEmptyStack, errs.CodeOf(e))
	assert.Equal(t, "pop on empty stack", errs.Msg(e))

	err, ok := e.(*errs.Error)
	require.True(t, ok)
	assert.Contains(t, err.Error(), "pop on empty stack")

	e = errs.Newf(errs.CodeIndexOutOfRange, "lookup index %d out of range", 3)
	assert.Equal(t, errs.CodeIndexOutOfRange, errs.CodeOf(e))
	assert.Equal(t, "lookup index 3 out of range", errs.Msg(e))
}

func TestForeignErrors(t *testing.T) {
	assert.Equal(t, errs.CodeUnknown, errs.CodeOf(nil))
	assert.Equal(t, "", errs.Msg(nil))

	plain := errors.New("plain")
	assert.Equal(t, errs.CodeUnknown, errs.CodeOf(plain))
	assert.Equal(t, "plain", errs.Msg(plain))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, errs.CodeContractViolated, "ignored"))

	cause := errors.New("push changed an element")
	e := errs.Wrap(cause, errs.CodeContractViolated, "Push broke its contract")
	require.NotNil(t, e)

	assert.Equal(t, errs.CodeContractViolated, errs.CodeOf(e))
	assert.Equal(t, "Push broke its contract", errs.Msg(e))
	assert.True(t, errors.Is(e, cause))
	assert.Contains(t, e.Error(), "caused by push changed an element")

	e = errs.Wrapf(cause, errs.CodeContractViolated, "op %q broke its contract", "Push")
	assert.Equal(t, `op "Push" broke its contract`, errs.Msg(e))
}

func TestFormat(t *testing.T) {
	e := errs.New(errs.CodeEmptyStack, "peek on empty stack")

	assert.Equal(t, e.Error(), fmt.Sprintf("%s", e))
	assert.Equal(t, e.Error(), fmt.Sprintf("%v", e))
	assert.Equal(t, fmt.Sprintf("%q", e.Error()), fmt.Sprintf("%q", e))
	assert.Contains(t, fmt.Sprintf("%d", e), "errs.Error")
}

func TestTraceable(t *testing.T) {
	errs.SetTraceable(true)
	defer errs.SetTraceable(false)

	e := errs.New(errs.CodeEmptyStack, "pop on empty stack")
	out := fmt.Sprintf("%+v", e)
	assert.Contains(t, out, "errs_test.go")

	// Wrapping must not add a second stack to the chain.
	wrapped := errs.Wrap(e, errs.CodeContractViolated, "outer")
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errs_test.go")
}
