package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, so that a panic or runtime.Goexit
// within f ends only that goroutine. Either one is returned as an error:
// a *PanicError or a *GoexitError respectively, both naming what was run.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			if returned {
				return
			}
			if e := recover(); e != nil {
				errch <- &PanicError{Name: name, Value: e, Stack: debug.Stack()}
			} else {
				errch <- &GoexitError{Name: name}
			}
		}()
		err := f()
		returned = true
		errch <- err
	}()
	return <-errch
}

// PanicError is a panic recovered by Recover, along with the stack of the
// goroutine that raised it.
type PanicError struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe *PanicError) Error() string {
	if pe.Name == "" {
		return fmt.Sprintf("panic: %v", pe.Value)
	}
	return fmt.Sprintf("%v panic: %v", pe.Name, pe.Value)
}

// Unwrap returns the panic value if it was an error.
func (pe *PanicError) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// GoexitError reports that a function run by Recover called runtime.Goexit.
type GoexitError struct{ Name string }

func (ge *GoexitError) Error() string {
	if ge.Name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", ge.Name)
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// PanicStack returns the stack trace of a recovered goroutine panic, or ""
// if err is not one.
func PanicStack(err error) string {
	var pe *PanicError
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
