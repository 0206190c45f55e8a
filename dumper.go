package forth

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/amkartashov/forth/internal/runeio"
)

// Dump writes a human-readable listing of the stack and every definition in
// the dictionary, shadowed ones included.
func (in *Interpreter) Dump(w io.Writer) error {
	var buf bytes.Buffer
	dumper{in: in, out: &buf}.dump()
	_, err := buf.WriteTo(w)
	return err
}

type dumper struct {
	in  *Interpreter
	out *bytes.Buffer
}

func (dump dumper) dump() {
	dict := dump.in.dict
	fmt.Fprintf(dump.out, "# Forth Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.in.stack)
	fmt.Fprintf(dump.out, "  words: %v\n", dict.Len())
	fmt.Fprintf(dump.out, "# Dictionary\n")
	for id := range dict.defs {
		dump.dumpWord(id)
	}
}

func (dump dumper) dumpWord(id int) {
	dict := dump.in.dict
	def := dict.defs[id]
	fmt.Fprintf(dump.out, "  @%v : %v", id, runeio.Printable(def.name))
	body := make([]int, def.end-def.addr)
	dict.code.LoadInto(def.addr, body)
	for len(body) > 0 {
		dump.out.WriteByte(' ')
		body = dump.formatCode(body)
	}
	dump.out.WriteString(" ;\n")
}

// formatCode writes the first instruction in code, returning the rest.
func (dump dumper) formatCode(code []int) []int {
	dict := dump.in.dict
	switch cell := code[0]; cell {
	case cellPush:
		dump.out.WriteString(strconv.Itoa(code[1]))
		return code[2:]
	case cellCall:
		callee := code[1]
		dump.out.WriteString(runeio.Printable(dict.defs[callee].name))
		if !dict.visible(callee) {
			dump.out.WriteByte('#')
			dump.out.WriteString(strconv.Itoa(callee))
		}
		return code[2:]
	default:
		dump.out.WriteString(Op(cell - cellOp).String())
		return code[1:]
	}
}
