package errs

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
)

var (
	traceable bool               // if traceable is true, created errors capture a call stack.
	stackSkip = defaultStackSkip // number of stack frames skipped.
)

const defaultStackSkip = 3

// SetTraceable controls whether created errors capture a call stack. It can
// also be enabled through the environment, see internal/env. Set it before
// the errors of interest are created; it is not concurrency safe.
func SetTraceable(x bool) {
	traceable = x
}

// SetStackSkip sets the number of skipped stack frames. When wrapping New
// in another helper layer, raise it by one per layer.
func SetStackSkip(skip int) {
	stackSkip = skip
}

// frame represents a program counter inside a stack frame. Interpreted as a
// uintptr its value is the program counter + 1.
type frame uintptr

func (f frame) pc() uintptr { return uintptr(f) - 1 }

// location resolves the frame to its source file, line and function name.
func (f frame) location() (file string, line int, fn string) {
	fc := runtime.FuncForPC(f.pc())
	if fc == nil {
		return "unknown", 0, "unknown"
	}
	file, line = fc.FileLine(f.pc())
	return file, line, fc.Name()
}

// Format formats the frame according to the fmt.Formatter interface.
//
//	%s    source file
//	%d    source line
//	%n    function name
//	%v    equivalent to %s:%d
//	%+s   function name and full source path separated by \n\t
//	%+v   equivalent to %+s:%d
func (f frame) Format(s fmt.State, verb rune) {
	file, line, fn := f.location()
	switch verb {
	case 's':
		if s.Flag('+') {
			io.WriteString(s, fn)
			io.WriteString(s, "\n\t")
			io.WriteString(s, file)
		} else {
			io.WriteString(s, path.Base(file))
		}
	case 'd':
		io.WriteString(s, strconv.Itoa(line))
	case 'n':
		io.WriteString(s, funcName(fn))
	case 'v':
		f.Format(s, 's')
		io.WriteString(s, ":")
		f.Format(s, 'd')
	}
}

// stackTrace is a stack of frames from innermost (newest) to outermost
// (oldest).
type stackTrace []frame

// Format formats the stack of frames according to the fmt.Formatter
// interface. %+v prints one "file:line" per line; %s and %v print the
// frames as a slice.
func (st stackTrace) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for _, f := range st {
				io.WriteString(s, "\n")
				f.Format(s, verb)
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, "[")
		for i, f := range st {
			if i > 0 {
				io.WriteString(s, " ")
			}
			f.Format(s, verb)
		}
		io.WriteString(s, "]")
	}
}

func callers() stackTrace {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(stackSkip, pcs[:])
	st := make(stackTrace, n)
	for i := range st {
		st[i] = frame(pcs[i])
	}
	return st
}

// funcName removes the path prefix component of a function's name reported
// by func.Name().
func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}
