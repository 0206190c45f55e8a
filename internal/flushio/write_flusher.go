package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer: if the given writer is a
// buffer, a wrapping with a noop Flush is returned; otherwise, unless the
// original writer WriteFlusher, a new bufio.Writer is returned.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return discardWriteFlusher
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

// LineFlusher returns a WriteFlusher that flushes after every write ending in
// a line feed, for output that an interactive user waits on.
func LineFlusher(w io.Writer) WriteFlusher {
	wf := NewWriteFlusher(w)
	if _, is := wf.(*bufio.Writer); !is {
		return wf
	}
	return lineFlusher{wf}
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

type lineFlusher struct{ WriteFlusher }

func (lf lineFlusher) Write(p []byte) (n int, err error) {
	n, err = lf.WriteFlusher.Write(p)
	if err == nil && n > 0 && p[n-1] == '\n' {
		err = lf.Flush()
	}
	return n, err
}
