// Package errs defines the error kinds surfaced by the stack packages.
//
// There are exactly two families: precondition violations (popping or
// peeking an empty stack, an out-of-range lookup), which the core raises as
// panics carrying a *Error, and contract violations, which the checked
// package reports when a stack implementation breaks a documented
// postcondition. Absence of an element is never an error.
package errs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/verist/linkedstack/internal/env"
)

// Code identifies a kind of failure.
type Code int32

const (
	// CodeUnknown is reported for errors that did not originate here.
	CodeUnknown Code = 0

	// CodeEmptyStack is carried by panics from Pop, Peek, PeekMut and
	// MutateHead on an empty stack.
	CodeEmptyStack Code = 11
	// CodeIndexOutOfRange is carried by panics from Lookup when the index
	// is negative or not below the stack length.
	CodeIndexOutOfRange Code = 12

	// CodeContractViolated reports a postcondition broken by a stack
	// implementation, detected by the checked package.
	CodeContractViolated Code = 21
)

func init() {
	if os.Getenv(env.ErrTrace) != "" {
		SetTraceable(true)
	}
}

// Error is the error carried by stack panics and contract reports.
type Error struct {
	Code Code
	Msg  string

	cause error      // inner error, forms the error chain.
	stack stackTrace // call stack, set once per chain when traceable.
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("code:%d, msg:%s, caused by %s", e.Code, e.Msg, e.cause.Error())
	}
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Msg)
}

// Format implements the fmt.Formatter interface. %+v prints the captured
// call stack, if any, and the cause chain.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "code:%d, msg:%s", e.Code, e.Msg)
			if e.stack != nil {
				e.stack.Format(s, verb)
			}
			if e.cause != nil {
				_, _ = fmt.Fprintf(s, "\ncaused by %+v", e.cause)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(errs.Error=%s)", verb, e.Error())
	}
}

// Unwrap supports Go 1.13+ error chains.
func (e *Error) Unwrap() error { return e.cause }

// New creates an error with a code and a message.
func New(code Code, msg string) error {
	err := &Error{
		Code: code,
		Msg:  msg,
	}
	if traceable {
		err.stack = callers()
	}
	return err
}

// Newf is New with a format string.
func Newf(code Code, format string, params ...interface{}) error {
	err := &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, params...),
	}
	if traceable {
		err.stack = callers()
	}
	return err
}

// Wrap creates a new error containing the input error. A stack is captured
// only when the chain does not already hold one, so a chain never carries
// more than one.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	wrapErr := &Error{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
	var e *Error
	if traceable && !errors.As(err, &e) {
		wrapErr.stack = callers()
	}
	return wrapErr
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, code Code, format string, params ...interface{}) error {
	return Wrap(err, code, fmt.Sprintf(format, params...))
}

// CodeOf extracts the code of an error chain. It returns CodeUnknown when
// no *Error is found.
func CodeOf(e error) Code {
	if e == nil {
		return CodeUnknown
	}
	// Type assertion first avoids reflection when it is probably true.
	err, ok := e.(*Error)
	if !ok && !errors.As(e, &err) {
		return CodeUnknown
	}
	if err == nil {
		return CodeUnknown
	}
	return err.Code
}

// Msg extracts the message of the outermost *Error in a chain. It falls
// back to Error() for foreign errors.
func Msg(e error) string {
	if e == nil {
		return ""
	}
	err, ok := e.(*Error)
	if !ok && !errors.As(e, &err) {
		return e.Error()
	}
	if err == nil {
		return ""
	}
	return err.Msg
}
