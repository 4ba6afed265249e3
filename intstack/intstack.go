// Package intstack provides the int-element variant of the linked stack.
//
// It is the minimal form of the structure: element type fixed to int and no
// peek operations. The contracts match the generic linkedstack package.
package intstack

import (
	"github.com/verist/linkedstack/errs"
)

// Stack is a non-thread-safe singly-linked stack of ints.
type Stack struct {
	head *node
}

type node struct {
	elem int
	next *node
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{}
}

// Len returns the number of elements on the stack.
func (st *Stack) Len() int {
	n := 0
	for nd := st.head; nd != nil; nd = nd.next {
		n++
	}
	return n
}

// IsEmpty reports whether the stack holds no elements.
func (st *Stack) IsEmpty() bool {
	return st.head == nil
}

// Lookup returns the element at the given logical index, counting from the
// head. It panics with an errs.CodeIndexOutOfRange error when index is
// negative or not below Len().
func (st *Stack) Lookup(index int) int {
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

// Push places elem on top of the stack; each prior index shifts back by
// one.
func (st *Stack) Push(elem int) {
	st.head = &node{
		elem: elem,
		next: st.head,
	}
}

// TryPop removes and returns the head element. It returns 0 and false on an
// empty stack, leaving it empty.
func (st *Stack) TryPop() (int, bool) {
	if st.head == nil {
		return 0, false
	}
	top := st.head
	st.head = top.next
	top.next = nil
	return top.elem, true
}

// Pop removes and returns the head element. It panics with an
// errs.CodeEmptyStack error when the stack is empty.
func (st *Stack) Pop() int {
	elem, ok := st.TryPop()
	if !ok {
		panic(errs.New(errs.CodeEmptyStack, "pop on empty stack"))
	}
	return elem
}
