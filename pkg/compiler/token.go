package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	KEYWORD    // "m", "c" or "show"
	IDENTIFIER // variable name
	NUMBER     // decimal integer literal, int32 range
	STRING     // string literal "..."

	EQUALS    // =
	SEMICOLON // ;
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:        "EOF",
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	EQUALS:     "EQUALS",
	SEMICOLON:  "SEMICOLON",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords is the closed keyword set of BP. Both "m" and "c" declare a
// variable; the spellings carry no semantic distinction.
var keywords = map[string]bool{
	"m":    true,
	"c":    true,
	"show": true,
}

// Token is a single lexical unit produced by Lex.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched (quotes stripped for STRING)
	Num    int32  // parsed value when Type == NUMBER
	Pos    int    // byte offset of the first character in the source
}

func (t Token) String() string {
	if t.Type == NUMBER {
		return fmt.Sprintf("%-10s %-14d  offset %d", t.Type, t.Num, t.Pos)
	}
	return fmt.Sprintf("%-10s %-14q  offset %d", t.Type, t.Lexeme, t.Pos)
}
