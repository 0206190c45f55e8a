package forth

import (
	"bytes"
	"io"
)

// Prelude is a library of common words, written in Forth on top of the eight
// primitives; load it with Interpreter.EvalSource.
var Prelude io.WriterTo = preludeSource{}

type preludeSource struct{}

func (preludeSource) Name() string { return "prelude.fs" }

func (preludeSource) WriteTo(w io.Writer) (n int64, err error) {
	var buf bytes.Buffer
	line := func(parts ...string) {
		if err != nil {
			return
		}
		for _, s := range parts {
			buf.WriteString(s)
		}
		buf.WriteByte('\n')
		var m int64
		m, err = buf.WriteTo(w)
		n += m
	}

	// Stack shuffling beyond the primitives: drop or copy the second item,
	// and the two-item forms of dup and drop.
	line(`: nip swap drop ;`)
	line(`: tuck swap over ;`)
	line(`: 2dup over over ;`)
	line(`: 2drop drop drop ;`)

	// There is no negation primitive, but subtracting from zero will do; the
	// swap puts the zero under the value.
	line(`: negate 0 swap - ;`)

	// Small constant arithmetic.
	line(`: 1+ 1 + ;`)
	line(`: 1- 1 - ;`)
	line(`: 2* 2 * ;`)
	line(`: 2/ 2 / ;`)

	// Powers are built on dup, and on each other.
	line(`: square dup * ;`)
	line(`: cube dup square * ;`)

	return n, err
}
