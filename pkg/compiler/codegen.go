package compiler

import (
	"fmt"
	"strings"
)

// CodeGen walks a program and emits C source text.
type CodeGen struct {
	out strings.Builder
}

func newCodeGen() *CodeGen {
	return &CodeGen{}
}

func (cg *CodeGen) line(format string, args ...any) {
	fmt.Fprintf(&cg.out, format+"\n", args...)
}

// Generate maps a program to C source text wrapped in a fixed main()
// preamble and postamble, one line per statement in program order.
// Generation is total: every node shape the parser can produce maps to
// exactly one line, so there is no error path.
func Generate(stmts []Stmt) string {
	cg := newCodeGen()

	cg.line("#include <stdio.h>")
	cg.line("")
	cg.line("int main(void) {")

	for _, s := range stmts {
		cg.genStmt(s)
	}

	cg.line("    return 0;")
	cg.line("}")
	return cg.out.String()
}

func (cg *CodeGen) genStmt(s Stmt) {
	switch n := s.(type) {
	case *VariableDecl:
		switch v := n.Value.(type) {
		case *NumberLit:
			cg.line("    int %s = %d;", n.Name, v.Value)
		case *StringLit:
			cg.line("    char %s[] = \"%s\";", n.Name, escapeC(v.Value))
		}
	case *ShowStmt:
		cg.line("    printf(\"%s\\n\");", escapeC(n.Text))
	}
}

// escapeC makes a lexed string safe inside a C string literal. BP strings
// are taken verbatim by the lexer, so embedded quotes, backslashes and
// control characters would otherwise flow straight into the output and
// break or subvert the generated program.
func escapeC(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(fmt.Sprintf(`\%03o`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
