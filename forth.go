package forth

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amkartashov/forth/internal/fileinput"
	"github.com/amkartashov/forth/internal/panicerr"
)

// Interpreter holds a data stack and a Dictionary of words, both of which
// persist across evaluations. An Interpreter must not be used from more than
// one goroutine at a time.
type Interpreter struct {
	logging

	dict  *Dictionary
	stack []int

	rollback bool
	undo     journal

	// raw text and location of the token being evaluated
	word string
	loc  string
}

// New creates an Interpreter with an empty stack, and a dictionary holding
// only the primitive words.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{dict: NewDictionary()}
	Options(opts...).apply(in)
	return in
}

// Stack returns a copy of the data stack, bottom first.
func (in *Interpreter) Stack() []int {
	return append(make([]int, 0, len(in.stack)), in.stack...)
}

// Words returns the names of all visible words, newest first.
func (in *Interpreter) Words() []string { return in.dict.Names() }

// Eval evaluates text, returning the first error encountered as an *Error.
func (in *Interpreter) Eval(text string) error {
	return in.EvalReader(fileinput.NamedReader("input", strings.NewReader(text)))
}

// EvalReader evaluates all of r, which may contain any number of lines;
// definitions may span lines. If r implements Name() string, error
// locations use that name.
func (in *Interpreter) EvalReader(r io.Reader) error {
	return in.eval(NewScanner(r))
}

// EvalSource evaluates source text generated by src, like Prelude.
func (in *Interpreter) EvalSource(src io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := src.WriteTo(&buf); err != nil {
		return err
	}
	name := fmt.Sprintf("<%T>", src)
	if nom, ok := src.(interface{ Name() string }); ok {
		name = nom.Name()
	}
	return in.EvalReader(fileinput.NamedReader(name, &buf))
}

func (in *Interpreter) eval(sc *Scanner) (err error) {
	defer func() {
		if err != nil && in.rollback {
			in.stack = in.undo.restore(in.stack)
		}
		in.word, in.loc = "", ""
	}()
	defer func() {
		var e *Error
		if errors.As(err, &e) && e.Line == "" && e.Location == sc.Location() {
			e.Line = sc.Line()
		}
	}()
	defer panicerr.Catch(&err)
	in.run(sc)
	return nil
}
