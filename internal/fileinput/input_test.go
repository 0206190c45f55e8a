package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amkartashov/forth/internal/fileinput"
)

type scanned struct {
	token string
	loc   string
}

func scanAll(t *testing.T, in *fileinput.Input) (toks []scanned) {
	for {
		token, loc, err := in.ScanToken()
		if err == io.EOF {
			return toks
		}
		require.NoError(t, err, "unexpected scan error")
		toks = append(toks, scanned{token, loc.String()})
	}
}

func TestInput_ScanToken(t *testing.T) {
	t.Run("single stream", func(t *testing.T) {
		in := fileinput.Input{Queue: []io.Reader{
			fileinput.NamedReader("a.fs", strings.NewReader("  1 2\t+\n\n: foo\r\n dup ;")),
		}}
		assert.Equal(t, []scanned{
			{"1", "a.fs:1"},
			{"2", "a.fs:1"},
			{"+", "a.fs:1"},
			{":", "a.fs:3"},
			{"foo", "a.fs:3"},
			{"dup", "a.fs:4"},
			{";", "a.fs:4"},
		}, scanAll(t, &in))
		assert.Equal(t, fileinput.Location{Name: "a.fs", Line: 4}, in.Last.Location, "expected last line")
		assert.Equal(t, " dup ;", in.Last.Buffer.String(), "expected last line text")
	})

	t.Run("stream boundary separates tokens", func(t *testing.T) {
		in := fileinput.Input{Queue: []io.Reader{
			fileinput.NamedReader("a", strings.NewReader("1 2")),
			fileinput.NamedReader("b", strings.NewReader("3\n4")),
		}}
		assert.Equal(t, []scanned{
			{"1", "a:1"},
			{"2", "a:1"},
			{"3", "b:1"},
			{"4", "b:2"},
		}, scanAll(t, &in))
	})

	t.Run("unnamed", func(t *testing.T) {
		in := fileinput.Input{Queue: []io.Reader{strings.NewReader("x")}}
		assert.Equal(t, []scanned{
			{"x", "<unnamed *strings.Reader>:1"},
		}, scanAll(t, &in))
	})

	t.Run("empty", func(t *testing.T) {
		var in fileinput.Input
		assert.Empty(t, scanAll(t, &in))
	})
}

func TestInput_FinishLine(t *testing.T) {
	newInput := func() *fileinput.Input {
		return &fileinput.Input{Queue: []io.Reader{
			fileinput.NamedReader("a", strings.NewReader("1 2 3\n4 5")),
			fileinput.NamedReader("b", strings.NewReader("6")),
		}}
	}

	t.Run("mid line", func(t *testing.T) {
		in := newInput()
		_, loc, err := in.ScanToken()
		require.NoError(t, err)
		line, ok := in.FinishLine(loc)
		assert.True(t, ok)
		assert.Equal(t, "1 2 3", line)

		tok, loc, err := in.ScanToken()
		require.NoError(t, err)
		assert.Equal(t, "4", tok, "expected scanning to go on after the finished line")
		assert.Equal(t, "a:2", loc.String())
	})

	t.Run("end of stream", func(t *testing.T) {
		in := newInput()
		var loc fileinput.Location
		for i := 0; i < 5; i++ {
			_, loc, _ = in.ScanToken()
		}
		line, ok := in.FinishLine(loc)
		assert.True(t, ok)
		assert.Equal(t, "4 5", line)
	})

	t.Run("last stream", func(t *testing.T) {
		in := newInput()
		var loc fileinput.Location
		for i := 0; i < 6; i++ {
			_, loc, _ = in.ScanToken()
		}
		assert.Equal(t, "b:1", loc.String())
		line, ok := in.FinishLine(loc)
		assert.True(t, ok)
		assert.Equal(t, "6", line)
	})

	t.Run("gone", func(t *testing.T) {
		in := newInput()
		_, _, err := in.ScanToken()
		require.NoError(t, err)
		_, ok := in.FinishLine(fileinput.Location{Name: "a", Line: 7})
		assert.False(t, ok)
	})
}
