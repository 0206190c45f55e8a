package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/amkartashov/forth"
	"github.com/amkartashov/forth/internal/fileinput"
	"github.com/amkartashov/forth/internal/flushio"
	"github.com/amkartashov/forth/internal/logio"
	"github.com/amkartashov/forth/internal/panicerr"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Style = levelStyle
	}

	cfg, args, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}
	cfg.Tracef = log.Leveledf("TRACE")

	out := flushio.NewWriteFlusher(os.Stdout)
	switch {
	case len(args) > 0:
		sessions := make([]*session, len(args))
		for i, name := range args {
			sessions[i] = fileSession(name)
		}
		runBatch(ctx, cfg, sessions, out, &log)

	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		runBatch(ctx, cfg, []*session{readerSession("stdin", os.Stdin)}, out, &log)

	default:
		log.ErrorIf(runREPL(ctx, cfg))
	}

	log.ErrorIf(out.Flush())
	os.Exit(log.ExitCode())
}

// session evaluates one input stream in a fresh interpreter.
type session struct {
	name string
	open func() (io.ReadCloser, error)

	stack []int
	dump  bytes.Buffer
	err   error
}

func fileSession(name string) *session {
	return &session{name: name, open: func() (io.ReadCloser, error) {
		return os.Open(name)
	}}
}

func readerSession(name string, r io.Reader) *session {
	return &session{name: name, open: func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}}
}

func (sess *session) run(cfg config) error {
	in, err := cfg.newInterpreter()
	if err != nil {
		return err
	}
	rc, err := sess.open()
	if err != nil {
		return err
	}
	defer rc.Close()
	err = in.EvalReader(fileinput.NamedReader(sess.name, rc))
	sess.stack = in.Stack()
	if cfg.Dump {
		if derr := in.Dump(&sess.dump); err == nil {
			err = derr
		}
	}
	return err
}

// runBatch runs every session, up to cfg.Jobs of them at once, and then
// reports their results in order. A failed session does not stop others;
// its error is logged along with the source line it happened on, or the
// goroutine stack of a panic.
func runBatch(ctx context.Context, cfg config, sessions []*session, out flushio.WriteFlusher, log *logio.Logger) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Jobs)
	for _, sess := range sessions {
		sess := sess
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				sess.err = err
				return nil
			}
			sess.err = panicerr.Recover(sess.name, func() error {
				return sess.run(cfg)
			})
			return nil
		})
	}
	eg.Wait()

	for _, sess := range sessions {
		if sess.err != nil {
			log.Errorf("%v: %v", sess.name, sess.err)
			var located *forth.Error
			if errors.As(sess.err, &located) && located.Line != "" {
				log.Printf("", "  | %v", located.Line)
			}
			if panicerr.IsPanic(sess.err) {
				log.Printf("STACK", "%v", panicerr.PanicStack(sess.err))
			}
		}
		fmt.Fprintf(out, "%v: %v\n", sess.name, sess.stack)
		if sess.dump.Len() > 0 {
			sess.dump.WriteTo(out)
		}
	}
}
