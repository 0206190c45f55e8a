package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger implements a leveled logging facility, shared by any number of
// goroutines, that remembers whether anything went wrong.
type Logger struct {
	sync.Mutex

	// Style, if set, decorates each level label before it is written.
	Style func(level string) string

	output   io.Writer
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the logger's output stream; any prior stream is closed if it
// implements io.Closer.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	if cl, ok := log.output.(io.Closer); ok {
		cl.Close()
	}
	log.output = out
}

// ExitCode returns a code to pass to os.Exit: 0 if nothing was logged through
// Errorf, 1 if something was, and 2 if the output stream itself failed.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if log.exitCode == 0 {
		log.exitCode = 1
	}
	if err := log.printf("ERROR", mess, args...); err != nil {
		log.exitCode = 2
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// Any io error results in an ExitCode of 2.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if level != "" {
		if log.Style != nil {
			level = log.Style(level)
		}
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	if log.output == nil {
		log.buf.Reset()
		return nil
	}
	_, err := log.buf.WriteTo(log.output)
	log.buf.Reset()
	return err
}
