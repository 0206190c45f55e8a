package forth

// Option configures an Interpreter at construction.
type Option interface{ apply(in *Interpreter) }

// Options combines any number of options into one, skipping nil ones.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	return all
}

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		opt.apply(in)
	}
}

// WithLogf enables trace logging of scanning, definition, and execution.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithMemLimit limits how many cells the dictionary may compile bodies into;
// the pre-registered primitives use one cell each, and count toward it.
func WithMemLimit(cells uint) Option { return memLimitOption(cells) }

// WithRollback makes every top-level step of an evaluation atomic: when a
// step fails, the stack is restored to what it was before that step,
// instead of being left with its operands popped.
func WithRollback() Option { return rollbackOption(true) }

type withLogfn func(mess string, args ...interface{})
type memLimitOption uint
type rollbackOption bool

func (logfn withLogfn) apply(in *Interpreter)   { in.logfn = logfn }
func (lim memLimitOption) apply(in *Interpreter) { in.dict.code.Limit = uint(lim) }
func (rb rollbackOption) apply(in *Interpreter)  { in.rollback = bool(rb) }
