package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/amkartashov/forth"
	"github.com/amkartashov/forth/internal/fileinput"
)

// config holds session settings, loaded from an optional YAML file, and then
// overridden by any explicitly set flags.
type config struct {
	Trace    bool     `yaml:"trace"`
	MemLimit uint     `yaml:"mem_limit"`
	Rollback bool     `yaml:"rollback"`
	Prelude  bool     `yaml:"prelude"`
	Words    []string `yaml:"words"`
	History  string   `yaml:"history"`

	Dump bool `yaml:"-"`
	Jobs int  `yaml:"-"`

	// Tracef receives trace lines when Trace is set.
	Tracef func(mess string, args ...interface{}) `yaml:"-"`
}

func loadConfig(name string) (cfg config, err error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %v: %w", name, err)
	}
	return cfg, nil
}

// parseArgs parses command line flags, loading any -config file underneath
// them, and returns the remaining arguments.
func parseArgs(fs *flag.FlagSet, args []string) (cfg config, rest []string, err error) {
	var (
		configFile string
		flags      config
	)
	fs.StringVar(&configFile, "config", "", "load settings from a YAML file")
	fs.BoolVar(&flags.Trace, "trace", false, "enable trace logging")
	fs.UintVar(&flags.MemLimit, "mem-limit", 0, "limit dictionary memory cells")
	fs.BoolVar(&flags.Rollback, "rollback", false, "restore the stack after a failed word")
	fs.BoolVar(&flags.Prelude, "prelude", false, "load the prelude word library")
	fs.StringVar(&flags.History, "history", "", "REPL history file")
	fs.BoolVar(&flags.Dump, "dump", false, "dump the dictionary after each session")
	fs.IntVar(&flags.Jobs, "j", 4, "how many batch sessions to run at once")
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}

	if configFile != "" {
		if cfg, err = loadConfig(configFile); err != nil {
			return cfg, nil, err
		}
	}
	cfg.Dump, cfg.Jobs = flags.Dump, flags.Jobs

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = flags.Trace
		case "mem-limit":
			cfg.MemLimit = flags.MemLimit
		case "rollback":
			cfg.Rollback = flags.Rollback
		case "prelude":
			cfg.Prelude = flags.Prelude
		case "history":
			cfg.History = flags.History
		}
	})
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}

	return cfg, fs.Args(), nil
}

func (cfg config) options() []forth.Option {
	var opts []forth.Option
	if cfg.Trace && cfg.Tracef != nil {
		opts = append(opts, forth.WithLogf(cfg.Tracef))
	}
	if cfg.MemLimit != 0 {
		opts = append(opts, forth.WithMemLimit(cfg.MemLimit))
	}
	if cfg.Rollback {
		opts = append(opts, forth.WithRollback())
	}
	return opts
}

// newInterpreter creates an interpreter, loading the prelude and any
// configured words into it.
func (cfg config) newInterpreter() (*forth.Interpreter, error) {
	in := forth.New(cfg.options()...)
	if cfg.Prelude {
		if err := in.EvalSource(forth.Prelude); err != nil {
			return nil, err
		}
	}
	if len(cfg.Words) > 0 {
		words := strings.Join(cfg.Words, "\n")
		if err := in.EvalReader(fileinput.NamedReader("config", strings.NewReader(words))); err != nil {
			return nil, err
		}
	}
	return in, nil
}
