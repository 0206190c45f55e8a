package fileinput

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/amkartashov/forth/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a buffer of its text.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	src   *runeio.Source
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
// Moves on to the next Queue-d stream at the end of each one, returning io.EOF
// only once all of them are exhausted. The boundary between two streams reads
// as a zero-width line feed, so that no token spans two streams.
func (in *Input) ReadRune() (rune, int, error) {
	if in.src == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}
	r, n, err := in.src.ReadRune()
	if n > 0 {
		if r == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteRune(r)
		}
		return r, n, nil
	}
	if err != io.EOF {
		return 0, 0, err
	}
	in.closeIn()
	if len(in.Queue) > 0 {
		return '\n', 0, nil
	}
	return 0, 0, io.EOF
}

// ScanToken skips any leading space, and then reads one space-delimited
// token, returning it along with the Location that it started at.
// Returns io.EOF if input runs out before a token starts.
func (in *Input) ScanToken() (token string, loc Location, err error) {
	var sb strings.Builder
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return "", in.Scan.Location, err
		}
		if !unicode.IsSpace(r) {
			loc = in.Scan.Location
			sb.WriteRune(r)
			break
		}
	}
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF || err == nil && unicode.IsSpace(r) {
			break
		} else if err != nil {
			return sb.String(), loc, err
		}
		sb.WriteRune(r)
	}
	return sb.String(), loc, nil
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

// FinishLine reads on through the end of the line at loc, if that line is
// still being scanned, returning its full text once it has rolled over to
// Last. Returns false if the line at loc is not (or no longer) available.
func (in *Input) FinishLine(loc Location) (string, bool) {
	for in.Scan.Location == loc {
		if _, _, err := in.ReadRune(); err != nil {
			break
		}
	}
	if in.Last.Location == loc {
		return in.Last.Buffer.String(), true
	}
	return "", false
}

func (in *Input) closeIn() {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	in.src.Close()
	in.src = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	src := runeio.NewSource(in.Queue[0])
	in.Queue = in.Queue[1:]
	in.src = &src
	in.Scan.Name = src.Name
	in.Scan.Line = 1
	return true
}

// NamedReader attaches a name to a reader, to be reported in any Location
// that it provides.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
