package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/amkartashov/forth/internal/flushio"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	stackStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// levelStyle colors log level labels for a terminal.
func levelStyle(level string) string {
	if level == "ERROR" {
		return errorStyle.Bold(true).Render(level)
	}
	return stackStyle.Render(level)
}

func runREPL(ctx context.Context, cfg config) error {
	in, err := cfg.newInterpreter()
	if err != nil {
		return err
	}

	var wc wordCompleter
	wc.update(in.Words())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptStyle.Render("forth>") + " ",
		HistoryFile:       cfg.History,
		AutoComplete:      &wc,
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	out := flushio.LineFlusher(rl.Stdout())
	for ctx.Err() == nil {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ".dump":
			err = in.Dump(out)
		default:
			err = in.Eval(line)
			wc.update(in.Words())
		}

		stack := stackStyle.Render(fmt.Sprint(in.Stack()))
		if err != nil {
			fmt.Fprintf(out, "%v %v\n", errorStyle.Render(err.Error()), stack)
		} else {
			fmt.Fprintf(out, "%v %v\n", okStyle.Render("ok"), stack)
		}
	}
	return ctx.Err()
}

// wordCompleter completes the word under the cursor from a snapshot of the
// names visible in an interpreter; readline calls Do on its own goroutine,
// so the snapshot is replaced under lock after each evaluation.
type wordCompleter struct {
	sync.Mutex
	names []string
}

func (wc *wordCompleter) update(names []string) {
	names = append([]string(nil), names...)
	sort.Strings(names)
	wc.Lock()
	defer wc.Unlock()
	wc.names = names
}

func (wc *wordCompleter) Do(line []rune, pos int) (suffixes [][]rune, length int) {
	start := pos
	for start > 0 && !unicode.IsSpace(line[start-1]) {
		start--
	}
	prefix := cases.Lower(language.Und).String(string(line[start:pos]))

	wc.Lock()
	defer wc.Unlock()
	for _, name := range wc.names {
		if strings.HasPrefix(name, prefix) {
			suffixes = append(suffixes, []rune(name[len(prefix):]+" "))
		}
	}
	return suffixes, pos - start
}
