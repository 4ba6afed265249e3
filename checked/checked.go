// Package checked enforces the documented stack contracts at runtime.
//
// A checked.Stack decorates a stack implementation and verifies, after
// every operation, the postconditions the core documents: push is a pure
// prepend, popping removes exactly the head, in-place head mutation leaves
// the rest of the chain untouched, read-only operations change nothing.
// The decorator consumes the contracts; it is not part of the core, and a
// core used directly never pays for the checks.
//
// Elements are compared structurally, without requiring any equality
// capability on the element type.
package checked

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/verist/linkedstack"
	"github.com/verist/linkedstack/errs"
	"github.com/verist/linkedstack/internal/env"
)

// Mode selects how a detected contract violation is surfaced.
type Mode int32

const (
	// ModeOff disables checking; the decorator is a pass-through.
	ModeOff Mode = iota
	// ModePanic panics with an errs.CodeContractViolated error. This is
	// the default.
	ModePanic
	// ModeError records violations for later retrieval through Err.
	ModeError
)

var defaultMode = atomic.NewInt32(int32(ModePanic))

func init() {
	switch os.Getenv(env.ContractMode) {
	case "off":
		SetDefaultMode(ModeOff)
	case "error":
		SetDefaultMode(ModeError)
	}
}

// SetDefaultMode sets the process-wide default mode used by stacks created
// without WithMode.
func SetDefaultMode(m Mode) {
	defaultMode.Store(int32(m))
}

// DefaultMode returns the process-wide default mode.
func DefaultMode() Mode {
	return Mode(defaultMode.Load())
}

// Core is the stack surface a checked Stack decorates.
type Core[T any] interface {
	Len() int
	IsEmpty() bool
	Lookup(index int) T
	Push(elem T)
	TryPop() (T, bool)
	Pop() T
	Peek() T
	MutateHead(fn func(*T))
}

var _ Core[int] = (*linkedstack.Stack[int])(nil)

type options struct {
	mode   Mode
	logger *zap.Logger
}

// Option sets an option of a checked stack.
type Option func(*options)

// WithMode overrides the process-wide default mode for one stack.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithLogger sets the logger violations are reported to before they are
// surfaced. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Stack wraps a Core and verifies its contracts around every call. Like
// the core it is not safe for concurrent use.
type Stack[T any] struct {
	core Core[T]
	mode Mode
	log  *zap.Logger
	err  error
}

// New returns a checked stack over a fresh linked core.
func New[T any](opts ...Option) *Stack[T] {
	return Wrap[T](linkedstack.New[T](), opts...)
}

// Wrap decorates an existing core.
func Wrap[T any](core Core[T], opts ...Option) *Stack[T] {
	o := options{
		mode:   DefaultMode(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Stack[T]{
		core: core,
		mode: o.mode,
		log:  o.logger,
	}
}

// Err returns the violations recorded so far. It is only ever non-nil in
// ModeError.
func (st *Stack[T]) Err() error {
	if merr, ok := st.err.(*multierror.Error); ok {
		return merr.ErrorOrNil()
	}
	return st.err
}

// violate reports every broken clause of one operation, then surfaces the
// aggregate according to the stack's mode.
func (st *Stack[T]) violate(op string, merr *multierror.Error) {
	if merr.ErrorOrNil() == nil {
		return
	}
	err := errs.Wrap(merr.ErrorOrNil(), errs.CodeContractViolated, op+" broke its contract")
	st.log.Error("stack contract violated",
		zap.String("op", op),
		zap.Int("clauses", merr.Len()),
		zap.Error(err),
	)
	switch st.mode {
	case ModeError:
		st.err = multierror.Append(st.err, err)
	default:
		panic(err)
	}
}
