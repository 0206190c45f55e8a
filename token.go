package forth

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind tags the variant held by a Token.
type Kind uint8

// Token kinds; only Primitive tokens are never produced by scanning input,
// since operator names scan as Word references to the pre-registered
// primitive definitions.
const (
	Number    Kind = iota // signed integer literal
	Primitive             // one of the eight built-in stack operations
	Word                  // reference to a (possibly user-defined) word
	Colon                 // ":" starts a definition
	Semicolon             // ";" ends a definition
)

var kindNames = [...]string{"number", "primitive", "word", "colon", "semicolon"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Op identifies a primitive stack operation.
type Op uint8

// The primitive operations, pre-registered under their opNames.
const (
	OpAdd  Op = iota // +     ( a b -- a+b )
	OpSub            // -     ( a b -- a-b )
	OpMul            // *     ( a b -- a*b )
	OpDiv            // /     ( a b -- a/b )
	OpDup            // dup   ( a -- a a )
	OpDrop           // drop  ( a -- )
	OpSwap           // swap  ( a b -- b a )
	OpOver           // over  ( a b -- a b a )

	opMax
)

var opNames = [opMax]string{"+", "-", "*", "/", "dup", "drop", "swap", "over"}

func (op Op) String() string {
	if op < opMax {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Token is a single lexical element of input, or of a word definition body.
type Token struct {
	Kind  Kind
	Value int    // Number literal value
	Op    Op     // Primitive operation
	Name  string // Word name, always lower case
}

// NumberToken returns a Number literal token.
func NumberToken(n int) Token { return Token{Kind: Number, Value: n} }

// WordToken returns a Word reference token, normalizing name to lower case.
func WordToken(name string) Token { return Token{Kind: Word, Name: newFolder().fold(name)} }

func (tok Token) String() string {
	switch tok.Kind {
	case Number:
		return strconv.Itoa(tok.Value)
	case Primitive:
		return tok.Op.String()
	case Word:
		return tok.Name
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	}
	return tok.Kind.String()
}

// ParseToken classifies a single space-free string: integer literals first,
// then the definition delimiters, and anything else is a Word reference.
func ParseToken(s string) Token { return newFolder().token(s) }

// folder normalizes word names; a cases.Caser keeps state while transforming,
// so each Scanner and Dictionary holds its own.
type folder struct{ caser cases.Caser }

func newFolder() folder { return folder{cases.Lower(language.Und)} }

func (f folder) fold(name string) string { return f.caser.String(name) }

func (f folder) token(s string) Token {
	if n, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
		return NumberToken(int(n))
	}
	switch s {
	case ":":
		return Token{Kind: Colon}
	case ";":
		return Token{Kind: Semicolon}
	}
	return Token{Kind: Word, Name: f.fold(s)}
}
