package forth

import (
	"strings"
	"unicode"

	"github.com/amkartashov/forth/internal/arena"
)

// Definition bodies are compiled into arena cells:
//
//     cellPush n      push the literal n
//     cellCall id     expand definition #id
//     cellOp + op     run the primitive op
//
// Word references are bound to a definition id when compiled, so a body keeps
// meaning what it meant when it was defined, no matter what gets defined
// afterwards.
const (
	cellPush = iota
	cellCall
	cellOp
)

type definition struct {
	name      string
	addr, end uint
}

// Dictionary is an append-only table of word definitions. Any number of
// definitions may share a name; lookup resolves to the newest one.
type Dictionary struct {
	f     folder
	defs  []definition
	names map[string][]int
	code  arena.Cells
}

// NewDictionary creates a Dictionary holding only the primitive operations,
// each defined as a single-token word.
func NewDictionary() *Dictionary {
	dict := &Dictionary{
		f:     newFolder(),
		names: make(map[string][]int, opMax),
	}
	for op := Op(0); op < opMax; op++ {
		if err := dict.define(opNames[op], cellOp+int(op)); err != nil {
			panic(err)
		}
	}
	return dict
}

// Len returns how many definitions have been made, including shadowed ones.
func (dict *Dictionary) Len() int { return len(dict.defs) }

// Define compiles body as the newest definition of name.
// Returns ErrInvalidWord if name cannot be a word, or if body contains a
// definition delimiter. Returns ErrUnknownWord if body references any word
// that is not defined yet. Returns an arena.LimitError if there is no room
// left for body. Nothing gets defined when an error is returned.
func (dict *Dictionary) Define(name string, body []Token) error {
	name = dict.f.fold(name)
	if !dict.validName(name) {
		return &Error{Err: ErrInvalidWord, Word: name}
	}

	code := make([]int, 0, 2*len(body))
	for _, tok := range body {
		switch tok.Kind {
		case Number:
			code = append(code, cellPush, tok.Value)
		case Primitive:
			if tok.Op >= opMax {
				return &Error{Err: ErrInvalidWord, Word: tok.String()}
			}
			code = append(code, cellOp+int(tok.Op))
		case Word:
			id, defined := dict.Lookup(tok.Name)
			if !defined {
				return &Error{Err: ErrUnknownWord, Word: tok.Name}
			}
			code = append(code, cellCall, id)
		default:
			return &Error{Err: ErrInvalidWord, Word: tok.String()}
		}
	}

	if err := dict.define(name, code...); err != nil {
		return &Error{Err: err, Word: name}
	}
	return nil
}

func (dict *Dictionary) define(name string, code ...int) error {
	addr, err := dict.code.Append(code...)
	if err != nil {
		return err
	}
	id := len(dict.defs)
	dict.defs = append(dict.defs, definition{name, addr, addr + uint(len(code))})
	dict.names[name] = append(dict.names[name], id)
	return nil
}

func (dict *Dictionary) validName(name string) bool {
	return name != "" &&
		dict.f.token(name).Kind == Word &&
		strings.IndexFunc(name, unicode.IsSpace) < 0
}

// Lookup returns the id of the newest definition of name, matched case
// insensitively.
func (dict *Dictionary) Lookup(name string) (id int, defined bool) {
	ids := dict.names[dict.f.fold(name)]
	if i := len(ids) - 1; i >= 0 {
		return ids[i], true
	}
	return 0, false
}

// Names returns the name of every visible word, newest first.
func (dict *Dictionary) Names() []string {
	names := make([]string, 0, len(dict.names))
	for id := len(dict.defs) - 1; id >= 0; id-- {
		if dict.visible(id) {
			names = append(names, dict.defs[id].name)
		}
	}
	return names
}

// visible returns true if definition #id is not shadowed by a newer one.
func (dict *Dictionary) visible(id int) bool {
	ids := dict.names[dict.defs[id].name]
	return ids[len(ids)-1] == id
}

// Resolve returns an Expansion of the newest definition of name, or
// ErrUnknownWord if there is none.
func (dict *Dictionary) Resolve(name string) (*Expansion, error) {
	id, defined := dict.Lookup(name)
	if !defined {
		return nil, &Error{Err: ErrUnknownWord, Word: dict.f.fold(name)}
	}
	return dict.Expand(id), nil
}

// Expand returns an Expansion of definition #id.
func (dict *Dictionary) Expand(id int) *Expansion {
	ex := &Expansion{dict: dict}
	if id >= 0 && id < len(dict.defs) {
		def := dict.defs[id]
		ex.frames = append(ex.frames, frame{def.addr, def.end})
	}
	return ex
}

// Expansion lazily yields the Number and Primitive tokens that a word
// definition amounts to, expanding any nested words depth first.
// Nesting is tracked by an explicit stack of frames rather than by Go
// recursion, and a word called last in its caller's body takes over the
// caller's frame; so arbitrarily deep word chains expand in bounded Go stack.
type Expansion struct {
	dict   *Dictionary
	frames []frame
}

type frame struct{ pc, end uint }

// Depth returns how many frames are currently being expanded.
func (ex *Expansion) Depth() int { return len(ex.frames) }

// Next returns the next token, or false once the expansion is exhausted.
func (ex *Expansion) Next() (Token, bool) {
	code := &ex.dict.code
	for n := len(ex.frames); n > 0; n = len(ex.frames) {
		fr := &ex.frames[n-1]
		if fr.pc >= fr.end {
			ex.frames = ex.frames[:n-1]
			continue
		}
		switch cell := code.Load(fr.pc); cell {
		case cellPush:
			tok := NumberToken(code.Load(fr.pc + 1))
			fr.pc += 2
			return tok, true
		case cellCall:
			def := ex.dict.defs[code.Load(fr.pc+1)]
			fr.pc += 2
			if fr.pc >= fr.end {
				*fr = frame{def.addr, def.end}
			} else {
				ex.frames = append(ex.frames, frame{def.addr, def.end})
			}
		default:
			fr.pc++
			return Token{Kind: Primitive, Op: Op(cell - cellOp)}, true
		}
	}
	return Token{}, false
}
