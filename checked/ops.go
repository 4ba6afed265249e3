package checked

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Len returns the element count and verifies it against the reachable
// nodes and against IsEmpty.
func (st *Stack[T]) Len() int {
	if st.mode == ModeOff {
		return st.core.Len()
	}
	before := snapshot(st.core)
	n := st.core.Len()

	var merr *multierror.Error
	merr = unchanged(merr, before, snapshot(st.core))
	if n != len(before) {
		merr = multierror.Append(merr, fmt.Errorf("Len reported %d, %d nodes are reachable", n, len(before)))
	}
	if st.core.IsEmpty() != (n == 0) {
		merr = multierror.Append(merr, errors.New("IsEmpty disagrees with Len() == 0"))
	}
	st.violate("Len", merr)
	return n
}

// IsEmpty reports emptiness and verifies it agrees with Len() == 0.
func (st *Stack[T]) IsEmpty() bool {
	if st.mode == ModeOff {
		return st.core.IsEmpty()
	}
	before := snapshot(st.core)
	empty := st.core.IsEmpty()

	var merr *multierror.Error
	merr = unchanged(merr, before, snapshot(st.core))
	if empty != (len(before) == 0) {
		merr = multierror.Append(merr, errors.New("IsEmpty disagrees with Len() == 0"))
	}
	st.violate("IsEmpty", merr)
	return empty
}

// Lookup returns the element at index and verifies the result against the
// state snapshot. An out-of-range index panics in the core, before any
// check runs.
func (st *Stack[T]) Lookup(index int) T {
	if st.mode == ModeOff {
		return st.core.Lookup(index)
	}
	before := snapshot(st.core)
	elem := st.core.Lookup(index)

	var merr *multierror.Error
	merr = unchanged(merr, before, snapshot(st.core))
	if index >= 0 && index < len(before) && !identical(elem, before[index]) {
		merr = multierror.Append(merr, fmt.Errorf("Lookup(%d) returned %v, want %v", index, elem, before[index]))
	}
	st.violate("Lookup", merr)
	return elem
}

// Push pushes elem and verifies the pure-prepend postcondition: length up
// by one, elem at the head, every prior element shifted back by one.
func (st *Stack[T]) Push(elem T) {
	if st.mode == ModeOff {
		st.core.Push(elem)
		return
	}
	before := snapshot(st.core)
	st.core.Push(elem)
	after := snapshot(st.core)

	var merr *multierror.Error
	if len(after) != len(before)+1 {
		merr = multierror.Append(merr, fmt.Errorf("length %d after push onto %d elements, want %d",
			len(after), len(before), len(before)+1))
	} else {
		if !identical(after[0], elem) {
			merr = multierror.Append(merr, fmt.Errorf("head is %v after push, want the pushed element %v",
				after[0], elem))
		}
		for i := range before {
			if !identical(before[i], after[i+1]) {
				merr = multierror.Append(merr, fmt.Errorf(
					"element at index %d changed while shifting to %d: %v -> %v",
					i, i+1, before[i], after[i+1]))
			}
		}
	}
	st.violate("Push", merr)
}

// TryPop pops the head if present and verifies either the head-removal
// postcondition or, on an empty stack, that nothing changed.
func (st *Stack[T]) TryPop() (T, bool) {
	if st.mode == ModeOff {
		return st.core.TryPop()
	}
	before := snapshot(st.core)
	elem, ok := st.core.TryPop()
	after := snapshot(st.core)

	var merr *multierror.Error
	switch {
	case !ok:
		if len(before) != 0 {
			merr = multierror.Append(merr, fmt.Errorf("no element returned from a stack of %d elements", len(before)))
		}
		if len(after) != 0 {
			merr = multierror.Append(merr, fmt.Errorf("length %d after popping an empty stack, want 0", len(after)))
		}
	case len(before) == 0:
		merr = multierror.Append(merr, errors.New("an element was returned from an empty stack"))
	default:
		if !identical(elem, before[0]) {
			merr = multierror.Append(merr, fmt.Errorf("returned %v, want the previous head %v", elem, before[0]))
		}
		merr = headRemoved(merr, before, after)
	}
	st.violate("TryPop", merr)
	return elem, ok
}

// Pop pops the head and verifies the head-removal postcondition. An empty
// stack panics in the core, before any check runs.
func (st *Stack[T]) Pop() T {
	if st.mode == ModeOff {
		return st.core.Pop()
	}
	before := snapshot(st.core)
	elem := st.core.Pop()
	after := snapshot(st.core)

	var merr *multierror.Error
	if len(before) == 0 {
		merr = multierror.Append(merr, errors.New("an element was returned from an empty stack"))
	} else {
		if !identical(elem, before[0]) {
			merr = multierror.Append(merr, fmt.Errorf("returned %v, want the previous head %v", elem, before[0]))
		}
		merr = headRemoved(merr, before, after)
	}
	st.violate("Pop", merr)
	return elem
}

// Peek returns the head element and verifies it against the state
// snapshot.
func (st *Stack[T]) Peek() T {
	if st.mode == ModeOff {
		return st.core.Peek()
	}
	before := snapshot(st.core)
	elem := st.core.Peek()

	var merr *multierror.Error
	merr = unchanged(merr, before, snapshot(st.core))
	if len(before) > 0 && !identical(elem, before[0]) {
		merr = multierror.Append(merr, fmt.Errorf("Peek returned %v, want the head %v", elem, before[0]))
	}
	st.violate("Peek", merr)
	return elem
}

// MutateHead applies fn to the head element and verifies the frame
// condition of an in-place head mutation once the borrow ends: the length
// and every element below the head are untouched, and the value the
// mutator left behind is the new head.
//
// The unscoped PeekMut of the core is deliberately absent here: a raw
// pointer gives the checker no point at which the borrow ends, so there is
// nothing it could re-validate.
func (st *Stack[T]) MutateHead(fn func(*T)) {
	if st.mode == ModeOff {
		st.core.MutateHead(fn)
		return
	}
	before := snapshot(st.core)
	var final T
	st.core.MutateHead(func(p *T) {
		fn(p)
		final = *p
	})
	after := snapshot(st.core)

	var merr *multierror.Error
	if len(after) != len(before) {
		merr = multierror.Append(merr, fmt.Errorf("length changed from %d to %d during a head mutation",
			len(before), len(after)))
	} else {
		for i := 1; i < len(before); i++ {
			if !identical(before[i], after[i]) {
				merr = multierror.Append(merr, fmt.Errorf(
					"element at index %d changed during a head mutation: %v -> %v",
					i, before[i], after[i]))
			}
		}
		if len(after) > 0 && !identical(after[0], final) {
			merr = multierror.Append(merr, fmt.Errorf(
				"head is %v, want the value left by the mutator %v", after[0], final))
		}
	}
	st.violate("MutateHead", merr)
}
