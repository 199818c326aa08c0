package compiler

import "fmt"

// Literal is the initializer of a variable declaration. BP has exactly two
// literal shapes; there are no expressions.
type Literal interface {
	literalNode()
	String() string
}

// NumberLit is a 32-bit signed integer constant.
type NumberLit struct {
	Value int32
}

func (*NumberLit) literalNode()     {}
func (n *NumberLit) String() string { return fmt.Sprintf("%d", n.Value) }

// StringLit is a string constant, stored verbatim as lexed.
type StringLit struct {
	Value string
}

func (*StringLit) literalNode()     {}
func (s *StringLit) String() string { return fmt.Sprintf("%q", s.Value) }

// Stmt is implemented by every top-level statement node. A program is an
// ordered []Stmt; statements emit in source order. Nodes are immutable value
// data once built.
type Stmt interface {
	stmtNode()
	String() string
}

// VariableDecl represents  ("m" | "c") name = literal;
type VariableDecl struct {
	Name  string
	Value Literal
}

func (*VariableDecl) stmtNode() {}
func (d *VariableDecl) String() string {
	return fmt.Sprintf("VariableDecl(%s = %s)", d.Name, d.Value)
}

// ShowStmt represents  show "text";
type ShowStmt struct {
	Text string
}

func (*ShowStmt) stmtNode() {}
func (s *ShowStmt) String() string {
	return fmt.Sprintf("ShowStmt(%q)", s.Text)
}
