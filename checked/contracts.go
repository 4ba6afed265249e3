package checked

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
)

// snapshot captures the logical state of a core, head first. The before and
// after values of every postcondition are stated over such captures.
func snapshot[T any](core Core[T]) []T {
	out := make([]T, core.Len())
	for i := range out {
		out[i] = core.Lookup(i)
	}
	return out
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// identical reports structural equality of two values, unexported fields
// included, without requiring an Equal method on the type.
func identical[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}

// headRemoved appends the broken clauses of the head-removal postcondition:
// the length went down by one and every surviving element shifted forward
// by one.
func headRemoved[T any](merr *multierror.Error, before, after []T) *multierror.Error {
	if len(after) != len(before)-1 {
		return multierror.Append(merr, fmt.Errorf(
			"length %d after removing the head of %d elements, want %d",
			len(after), len(before), len(before)-1))
	}
	for i := 1; i < len(before); i++ {
		if !identical(before[i], after[i-1]) {
			merr = multierror.Append(merr, fmt.Errorf(
				"element at index %d changed while shifting to %d: %v -> %v",
				i, i-1, before[i], after[i-1]))
		}
	}
	return merr
}

// unchanged appends a clause when a read-only operation left the core in a
// different state.
func unchanged[T any](merr *multierror.Error, before, after []T) *multierror.Error {
	if !identical(before, after) {
		merr = multierror.Append(merr, fmt.Errorf(
			"read-only operation changed the stack: %v -> %v", before, after))
	}
	return merr
}
