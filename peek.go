package linkedstack

import (
	"github.com/verist/linkedstack/errs"
)

// Peek returns the head element without removing it. It panics with an
// errs.CodeEmptyStack error when the stack is empty.
func (st *Stack[T]) Peek() T {
	if st.head == nil {
		panic(errs.New(errs.CodeEmptyStack, "peek on empty stack"))
	}
	return st.head.elem
}

// PeekMut returns a pointer to the head element, allowing it to be
// overwritten in place without popping and re-pushing. The pointer reaches
// only the element, never the links: writing through it cannot change the
// stack's length or any element below the head, and the value it is left
// holding is the next Peek result. It panics with an errs.CodeEmptyStack
// error when the stack is empty.
//
// The pointer stays valid until the head node is popped. The stack must not
// be mutated while the caller still intends to write through it.
func (st *Stack[T]) PeekMut() *T {
	if st.head == nil {
		panic(errs.New(errs.CodeEmptyStack, "peek on empty stack"))
	}
	return &st.head.elem
}

// MutateHead applies fn to the head element in place. It is the scoped form
// of PeekMut: the borrow ends when fn returns, which gives wrappers a point
// to re-validate the rest of the chain. It panics with an
// errs.CodeEmptyStack error when the stack is empty.
func (st *Stack[T]) MutateHead(fn func(*T)) {
	fn(st.PeekMut())
}
