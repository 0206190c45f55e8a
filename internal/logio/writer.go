package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function, like
// testing.T.Logf, calling it once per line written.
type Writer struct {
	Logf func(string, ...interface{})

	// Prefix, if set, is prepended to every logged line.
	Prefix string

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, and logs any lines that it completes.
// Safe to call from multiple goroutines; never fails.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.logLines(false)
	return len(p), nil
}

// Sync logs any partial line left in the buffer.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.logLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) logLines(partial bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			lw.logf(lw.buf.Next(i + 1)[:i])
		} else if partial {
			lw.logf(lw.buf.Next(len(line)))
		} else {
			break
		}
	}
}

func (lw *Writer) logf(line []byte) {
	lw.Logf("%s%s", lw.Prefix, line)
}
