// Package linkedstack implements a singly-linked stack with head-only
// mutation and exclusively owned nodes.
//
// Every node is owned by exactly one link (its predecessor's next pointer,
// or the stack head), so the chain is acyclic and finite. The element at
// logical index i is the element of the i-th node counting from the head;
// index 0 is the most recently pushed surviving element. Push and the pop
// family touch only the head and run in constant time; Len and Lookup walk
// the chain.
//
// Operations whose precondition is violated by the caller (popping or
// peeking an empty stack, looking up an out-of-range index) panic with a
// *errs.Error carrying the matching code. Absence is not an error: TryPop
// reports it through its second return value.
//
// A Stack is not safe for concurrent use. Mutation requires exclusive
// access; read-only operations may run alongside each other but never
// alongside a mutation.
package linkedstack

import (
	"github.com/verist/linkedstack/errs"
)

// Stack is a non-thread-safe singly-linked stack. The zero value is an
// empty stack ready to use.
type Stack[T any] struct {
	head *node[T]
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len returns the number of elements on the stack. It walks the chain, so
// it costs O(n).
func (st *Stack[T]) Len() int {
	n := 0
	for nd := st.head; nd != nil; nd = nd.next {
		n++
	}
	return n
}

// IsEmpty reports whether the stack holds no elements. It agrees with
// Len() == 0 in every reachable state.
func (st *Stack[T]) IsEmpty() bool {
	return st.head == nil
}

// Lookup returns the element at the given logical index, counting from the
// head. It panics with an errs.CodeIndexOutOfRange error when index is
// negative or not below Len().
func (st *Stack[T]) Lookup(index int) T {
	if index >= 0 {
		i := index
		for nd := st.head; nd != nil; nd = nd.next {
			if i == 0 {
				return nd.elem
			}
			i--
		}
	}
	panic(errs.Newf(errs.CodeIndexOutOfRange, "lookup index %d out of range", index))
}

// Push places elem on top of the stack. Existing elements keep their values
// and relative order; each prior index shifts back by one.
func (st *Stack[T]) Push(elem T) {
	st.head = &node[T]{
		elem: elem,
		next: st.head,
	}
}

// TryPop removes and returns the head element. On an empty stack it returns
// the zero value and false and leaves the stack empty. Otherwise it returns
// the previous head and true; ownership of the remainder of the chain moves
// back to the stack and every surviving element shifts forward by one.
func (st *Stack[T]) TryPop() (T, bool) {
	if st.head == nil {
		var zero T
		return zero, false
	}
	top := st.head
	st.head = top.next
	top.next = nil
	return top.elem, true
}

// Pop removes and returns the head element. It panics with an
// errs.CodeEmptyStack error when the stack is empty.
func (st *Stack[T]) Pop() T {
	elem, ok := st.TryPop()
	if !ok {
		panic(errs.New(errs.CodeEmptyStack, "pop on empty stack"))
	}
	return elem
}
