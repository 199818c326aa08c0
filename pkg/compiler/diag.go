package compiler

import "fmt"

// Mode selects how the pipeline reacts to malformed input.
type Mode int

const (
	// Strict aborts on the first diagnostic from any stage.
	Strict Mode = iota
	// Lenient accumulates diagnostics and keeps producing best-effort output.
	Lenient
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// Stage names the pipeline stage that produced a diagnostic.
type Stage int

const (
	StageLex Stage = iota
	StageParse
)

func (s Stage) String() string {
	if s == StageLex {
		return "lex"
	}
	return "parse"
}

// DiagKind classifies a recoverable pipeline failure.
type DiagKind int

const (
	// Lexer kinds
	UnexpectedChar DiagKind = iota
	UnterminatedString
	IntegerOverflow

	// Parser kinds
	MissingIdentifier
	MissingEquals
	MissingLiteral
	MissingStringAfterShow
	UnknownKeyword
	UnexpectedToken
	UnexpectedEndOfInput
)

var diagKindNames = [...]string{
	UnexpectedChar:         "unexpected-character",
	UnterminatedString:     "unterminated-string",
	IntegerOverflow:        "integer-overflow",
	MissingIdentifier:      "missing-identifier",
	MissingEquals:          "missing-equals",
	MissingLiteral:         "missing-literal",
	MissingStringAfterShow: "missing-string-after-show",
	UnknownKeyword:         "unknown-keyword",
	UnexpectedToken:        "unexpected-token",
	UnexpectedEndOfInput:   "unexpected-end-of-input",
}

func (k DiagKind) String() string {
	if int(k) >= 0 && int(k) < len(diagKindNames) {
		return diagKindNames[k]
	}
	return fmt.Sprintf("DiagKind(%d)", int(k))
}

// Diag is a structured record of a recoverable failure. Pos is a byte offset
// for lexer diagnostics and a token index for parser diagnostics; positions
// are coarse on purpose, there is no line/column tracking.
type Diag struct {
	Stage Stage
	Kind  DiagKind
	Pos   int
	Msg   string
}

func (d Diag) Error() string {
	return fmt.Sprintf("%s error at %d: %s: %s", d.Stage, d.Pos, d.Kind, d.Msg)
}

func lexDiag(kind DiagKind, pos int, format string, args ...any) Diag {
	return Diag{Stage: StageLex, Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func parseDiag(kind DiagKind, idx int, format string, args ...any) Diag {
	return Diag{Stage: StageParse, Kind: kind, Pos: idx, Msg: fmt.Sprintf(format, args...)}
}
