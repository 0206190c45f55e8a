// gen_test_expects generates a standalone wrapper function for each with* and
// expect* builder method of a test case type, so that test tables can apply
// them as a list of options.
//
// Usage:
//
//	go run scripts/gen_test_expects.go [-type T] [-infix X] -- input.go [output.go]
//
// Every with* or expect* method of T must take a value receiver, name all of
// its parameters, and return exactly T; anything else fails generation rather
// than being skipped.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"log"
	"os"
	"strings"
)

var (
	caseType = flag.String("type", "forthTestCase", "test case builder type to wrap")
	infix    = flag.String("infix", "Forth", "name infix added to each wrapper")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		log.Fatalf("usage: gen_test_expects [flags] -- input.go [output.go]")
	}

	src, err := generate(args)
	if err != nil {
		log.Fatalln(err)
	}
	if len(args) > 1 {
		err = os.WriteFile(args[1], src, 0o644)
	} else {
		_, err = os.Stdout.Write(src)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

var builderPrefixes = []string{"with", "expect"}

type wrapper struct {
	name   string
	method string
	doc    []string
	params []string
	args   []string
}

func generate(args []string) ([]byte, error) {
	name := args[0]
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var wrappers []wrapper
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !isBuilderMethod(fn) {
			continue
		}
		w, err := wrap(fset, fn)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", fset.Position(fn.Pos()), err)
		}
		wrappers = append(wrappers, w)
	}
	if len(wrappers) == 0 {
		return nil, fmt.Errorf("%v: no builder methods found on %v", name, *caseType)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %v\n\n", file.Name.Name)
	fmt.Fprintf(&buf, "// @generated from %v\n\n", name)
	if len(args) > 1 {
		fmt.Fprintf(&buf, "//go:generate go run scripts/gen_test_expects.go -- %v\n\n", strings.Join(args, " "))
	}
	for _, w := range wrappers {
		w.writeTo(&buf)
	}
	return format.Source(buf.Bytes())
}

// isBuilderMethod returns true for any method of the case type, by value or
// by pointer, named with a builder prefix.
func isBuilderMethod(fn *ast.FuncDecl) bool {
	if fn.Recv == nil || len(fn.Recv.List) != 1 {
		return false
	}
	recv := fn.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	if !isIdent(recv, *caseType) {
		return false
	}
	_, ok := splitPrefix(fn.Name.Name)
	return ok
}

func splitPrefix(name string) (prefix string, ok bool) {
	for _, prefix := range builderPrefixes {
		if len(name) > len(prefix) && strings.HasPrefix(name, prefix) {
			return prefix, true
		}
	}
	return "", false
}

func isIdent(expr ast.Expr, name string) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == name
}

func wrap(fset *token.FileSet, fn *ast.FuncDecl) (w wrapper, err error) {
	method := fn.Name.Name
	if _, ok := fn.Recv.List[0].Type.(*ast.StarExpr); ok {
		return w, fmt.Errorf("%v must take a %v value receiver", method, *caseType)
	}
	if res := fn.Type.Results; res == nil || res.NumFields() != 1 || !isIdent(res.List[0].Type, *caseType) {
		return w, fmt.Errorf("%v must return exactly %v", method, *caseType)
	}

	prefix, _ := splitPrefix(method)
	w.method = method
	w.name = prefix + *infix + method[len(prefix):]

	for _, field := range fn.Type.Params.List {
		if len(field.Names) == 0 {
			return w, fmt.Errorf("%v must name all of its parameters", method)
		}
		var typ strings.Builder
		if err := format.Node(&typ, fset, field.Type); err != nil {
			return w, err
		}
		_, variadic := field.Type.(*ast.Ellipsis)
		for _, id := range field.Names {
			if id.Name == "tc" || id.Name == "_" {
				return w, fmt.Errorf("%v parameter %q cannot be passed through", method, id.Name)
			}
			w.params = append(w.params, id.Name+" "+typ.String())
			if variadic {
				w.args = append(w.args, id.Name+"...")
			} else {
				w.args = append(w.args, id.Name)
			}
		}
	}

	if text := fn.Doc.Text(); text != "" {
		w.doc = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		if rest := strings.TrimPrefix(w.doc[0], method+" "); rest != w.doc[0] {
			w.doc[0] = w.name + " " + rest
		}
	} else {
		w.doc = []string{fmt.Sprintf("%v wraps %v.%v.", w.name, *caseType, method)}
	}
	return w, nil
}

func (w wrapper) writeTo(buf *bytes.Buffer) {
	for _, line := range w.doc {
		if line == "" {
			buf.WriteString("//\n")
		} else {
			fmt.Fprintf(buf, "// %v\n", line)
		}
	}
	fmt.Fprintf(buf, "func %v(%v) func(%v) %v {\n", w.name, strings.Join(w.params, ", "), *caseType, *caseType)
	fmt.Fprintf(buf, "\treturn func(tc %v) %v {\n", *caseType, *caseType)
	fmt.Fprintf(buf, "\t\treturn tc.%v(%v)\n", w.method, strings.Join(w.args, ", "))
	buf.WriteString("\t}\n}\n\n")
}
