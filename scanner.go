package forth

import (
	"io"
	"strings"

	"github.com/amkartashov/forth/internal/fileinput"
)

// Scanner reads a lazy stream of Tokens from a queue of input streams,
// tracking the location of each one.
type Scanner struct {
	in  fileinput.Input
	f   folder
	tok Token
	txt string
	loc fileinput.Location
	err error
}

// NewScanner creates a Scanner reading from each of the given readers in
// turn. Any reader implementing Name() string names its locations.
func NewScanner(rs ...io.Reader) *Scanner {
	sc := &Scanner{f: newFolder()}
	sc.in.Queue = append(sc.in.Queue, rs...)
	return sc
}

// Scan advances to the next token, returning false once input is exhausted
// or if a read error happened; Err then tells which.
func (sc *Scanner) Scan() bool {
	if sc.err != nil {
		return false
	}
	txt, loc, err := sc.in.ScanToken()
	if err != nil {
		sc.tok, sc.txt, sc.err = Token{}, "", err
		return false
	}
	sc.txt, sc.loc = txt, loc
	sc.tok = sc.f.token(sc.txt)
	return true
}

// Token returns the most recently scanned token.
func (sc *Scanner) Token() Token { return sc.tok }

// Text returns the raw text of the most recently scanned token.
func (sc *Scanner) Text() string { return sc.txt }

// Location returns "name:line" where the most recently scanned token started;
// it is left unchanged once scanning stops.
func (sc *Scanner) Location() string { return sc.loc.String() }

// Line returns the full text of the line holding the most recent token,
// reading on through the rest of that line if need be; so it should only be
// called once scanning is done. Returns "" if the line is not available.
func (sc *Scanner) Line() string {
	line, _ := sc.in.FinishLine(sc.loc)
	return line
}

// Err returns any non-EOF error that stopped scanning.
func (sc *Scanner) Err() error {
	if sc.err == io.EOF {
		return nil
	}
	return sc.err
}

// Tokenize returns all tokens from s.
func Tokenize(s string) (toks []Token) {
	sc := NewScanner(strings.NewReader(s))
	for sc.Scan() {
		toks = append(toks, sc.Token())
	}
	return toks
}
