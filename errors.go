package forth

import (
	"errors"
	"fmt"
)

// Error kinds, as returned through errors.Is from any evaluation failure.
var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrUnknownWord    = errors.New("unknown word")

	// ErrInvalidWord covers every malformed definition: a number, ":" or ";"
	// as the defined name, a ":" within a body, a definition left open at the
	// end of input, and a bare ";" outside of any definition.
	ErrInvalidWord = errors.New("invalid word")
)

// Error locates an evaluation failure; Err is one of the Err* kinds, or an
// underlying dictionary memory error.
type Error struct {
	Err      error
	Word     string // raw text of the token being evaluated
	Location string // "name:line" of that token
	Line     string // full text of the source line at Location, if known
}

func (err *Error) Error() string {
	switch {
	case err.Location != "" && err.Word != "":
		return fmt.Sprintf("%v: %v %q", err.Location, err.Err, err.Word)
	case err.Location != "":
		return fmt.Sprintf("%v: %v", err.Location, err.Err)
	case err.Word != "":
		return fmt.Sprintf("%v %q", err.Err, err.Word)
	}
	return err.Err.Error()
}

func (err *Error) Unwrap() error { return err.Err }
