package runeio

import (
	"bufio"
	"fmt"
	"io"
)

// Source is a stream of runes, named for locating what is read from it.
type Source struct {
	io.RuneReader
	Name string

	closer io.Closer
}

// NewSource reads runes from r, directly if r is already an io.RuneReader,
// and through a bufio.Reader otherwise. The Source is named by r's Name()
// method if it has one; unnamed readers are named after their type.
func NewSource(r io.Reader) Source {
	var src Source
	if rr, ok := r.(io.RuneReader); ok {
		src.RuneReader = rr
	} else {
		src.RuneReader = bufio.NewReader(r)
	}
	if nom, ok := r.(interface{ Name() string }); ok {
		src.Name = nom.Name()
	} else {
		src.Name = fmt.Sprintf("<unnamed %T>", r)
	}
	src.closer, _ = r.(io.Closer)
	return src
}

// Close closes the underlying reader, if it is an io.Closer.
func (src Source) Close() error {
	if src.closer != nil {
		return src.closer.Close()
	}
	return nil
}
