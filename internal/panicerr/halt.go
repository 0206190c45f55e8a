package panicerr

import "fmt"

// Halt aborts the current computation by panicking with err; the panic is
// expected to be turned back into err by a deferred Catch further up the
// same goroutine's stack.
func Halt(err error) {
	panic(haltError{err})
}

// Catch recovers a Halt panic, storing its error into *errp; it must be
// called directly by a defer statement. Any other panic is re-raised
// unchanged.
func Catch(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	he, ok := e.(haltError)
	if !ok {
		panic(e)
	}
	*errp = he.error
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }
