package forth

import "github.com/amkartashov/forth/internal/panicerr"

// The evaluator is a small state machine: in normal mode tokens execute
// immediately; a ":" switches to naming mode to take the next token as the
// name being defined, and then to defining mode to buffer a body up to ";".
type evalMode uint8

const (
	normal evalMode = iota
	naming
	defining
)

type evaluator struct {
	*Interpreter
	mode evalMode
	name string
	body []Token
}

func (in *Interpreter) run(sc *Scanner) {
	ev := evaluator{Interpreter: in}
	for sc.Scan() {
		in.word, in.loc = sc.Text(), sc.Location()
		in.undo.mark(len(in.stack))
		in.logf("scan", "%q @%v", in.word, in.loc)
		ev.feed(sc.Token())
	}
	in.undo.mark(len(in.stack))
	if err := sc.Err(); err != nil {
		in.halt(err)
	}
	ev.finish()
}

func (ev *evaluator) feed(tok Token) {
	switch ev.mode {
	case naming:
		if tok.Kind != Word {
			ev.halt(ErrInvalidWord)
		}
		ev.name, ev.body, ev.mode = tok.Name, ev.body[:0], defining

	case defining:
		switch tok.Kind {
		case Colon:
			ev.halt(ErrInvalidWord)
		case Semicolon:
			ev.define(ev.name, ev.body)
			ev.mode = normal
		default:
			ev.body = append(ev.body, tok)
		}

	default:
		switch tok.Kind {
		case Colon:
			ev.mode = naming
		case Semicolon:
			ev.halt(ErrInvalidWord)
		case Word:
			ev.call(tok.Name)
		default:
			ev.exec(tok)
		}
	}
}

// finish fails any definition left open at the end of input.
func (ev *evaluator) finish() {
	if ev.mode != normal {
		if ev.mode == defining {
			ev.word = ev.name
		}
		ev.halt(ErrInvalidWord)
	}
}

func (in *Interpreter) define(name string, body []Token) {
	in.logf("define", "%v %v", name, body)
	if err := in.dict.Define(name, body); err != nil {
		in.halt(err)
	}
}

func (in *Interpreter) call(name string) {
	ex, err := in.dict.Resolve(name)
	if err != nil {
		in.halt(err)
	}
	if in.logfn != nil {
		defer in.withLogPrefix("  ")()
	}
	for tok, ok := ex.Next(); ok; tok, ok = ex.Next() {
		in.exec(tok)
	}
}

func (in *Interpreter) exec(tok Token) {
	if in.logfn != nil {
		in.logf("exec", "%v -- s:%v", tok, in.stack)
	}
	switch tok.Kind {
	case Number:
		in.push(tok.Value)
	case Primitive:
		opTable[tok.Op](in)
	default:
		in.halt(ErrInvalidWord)
	}
}

// halt aborts evaluation with err, located at the token being evaluated.
func (in *Interpreter) halt(err error) {
	e, ok := err.(*Error)
	if !ok {
		e = &Error{Err: err, Word: in.word}
	}
	if e.Location == "" {
		e.Location = in.loc
	}
	in.logf("halt", "%v", e)
	panicerr.Halt(e)
}

func (in *Interpreter) push(val int) {
	in.stack = append(in.stack, val)
}

func (in *Interpreter) pop() int {
	i := len(in.stack) - 1
	if i < 0 {
		in.halt(ErrStackUnderflow)
	}
	val := in.stack[i]
	in.stack = in.stack[:i]
	if in.rollback {
		in.undo.popped(i, val)
	}
	return val
}

//// Primitives pop their operands right to left: b is the top of the stack,
//// and a is under it.

func (in *Interpreter) add() { b, a := in.pop(), in.pop(); in.push(a + b) }
func (in *Interpreter) sub() { b, a := in.pop(), in.pop(); in.push(a - b) }
func (in *Interpreter) mul() { b, a := in.pop(), in.pop(); in.push(a * b) }

func (in *Interpreter) div() {
	b := in.pop()
	if b == 0 {
		in.halt(ErrDivisionByZero)
	}
	a := in.pop()
	in.push(a / b)
}

func (in *Interpreter) dup()  { a := in.pop(); in.push(a); in.push(a) }
func (in *Interpreter) drop() { in.pop() }
func (in *Interpreter) swap() { b, a := in.pop(), in.pop(); in.push(b); in.push(a) }
func (in *Interpreter) over() { b, a := in.pop(), in.pop(); in.push(a); in.push(b); in.push(a) }

var opTable [opMax]func(in *Interpreter)

func init() {
	opTable = [...]func(in *Interpreter){
		(*Interpreter).add,
		(*Interpreter).sub,
		(*Interpreter).mul,
		(*Interpreter).div,
		(*Interpreter).dup,
		(*Interpreter).drop,
		(*Interpreter).swap,
		(*Interpreter).over,
	}
}

// journal records the values popped below the stack depth that the current
// top-level step started at, so that a failed step can be undone.
type journal struct {
	floor int
	saved []int
}

func (j *journal) mark(depth int) {
	j.floor = depth
	j.saved = j.saved[:0]
}

func (j *journal) popped(depth, val int) {
	if depth < j.floor {
		j.saved = append(j.saved, val)
		j.floor = depth
	}
}

func (j *journal) restore(stack []int) []int {
	stack = stack[:j.floor]
	for i := len(j.saved) - 1; i >= 0; i-- {
		stack = append(stack, j.saved[i])
	}
	j.saved = j.saved[:0]
	return stack
}
