package compiler

import (
	"strconv"
)

// Lexer holds all mutable state for a single scanning pass over src.
// The cursor is owned by the lex call; nothing is shared.
type Lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.peek() {
		case ' ', '\t', '\n', '\r':
			l.advance()
		default:
			return
		}
	}
}

// scanIdent collects a full identifier or keyword token. Identifiers are
// alphabetic runs only; a digit ends the run.
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && isAlpha(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if keywords[lexeme] {
		tt = KEYWORD
	}
	return Token{Type: tt, Lexeme: lexeme, Pos: start}
}

// scanNumber collects a run of decimal digits and parses it as int32.
// Overflow is reported as a diagnostic, never wrapped or ignored.
func (l *Lexer) scanNumber() (Token, *Diag) {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	n, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		d := lexDiag(IntegerOverflow, start, "number %s does not fit in 32 bits", lexeme)
		return Token{}, &d
	}
	return Token{Type: NUMBER, Lexeme: lexeme, Num: int32(n), Pos: start}, nil
}

// scanString collects a string literal "...". Characters are taken verbatim,
// there is no escape processing in BP. Running off the end of the input
// before the closing quote is a diagnostic.
func (l *Lexer) scanString() (Token, *Diag) {
	start := l.pos
	l.advance() // consume opening "
	for l.pos < len(l.src) && l.peek() != '"' {
		l.advance()
	}
	if l.pos >= len(l.src) {
		d := lexDiag(UnterminatedString, start, "string literal is never closed")
		return Token{}, &d
	}
	lexeme := string(l.src[start+1 : l.pos])
	l.advance() // consume closing "
	return Token{Type: STRING, Lexeme: lexeme, Pos: start}, nil
}

// Lex tokenises src and returns all tokens plus any diagnostics.
// In Strict mode scanning stops at the first diagnostic; in Lenient mode the
// offending input is skipped and scanning continues. On every path the token
// stream ends with exactly one EOF token.
func Lex(src string, mode Mode) ([]Token, []Diag) {
	l := newLexer(src)
	var tokens []Token
	var diags []Diag

	for l.pos < len(l.src) {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			break
		}

		ch := l.peek()
		switch {
		case ch == '=':
			tokens = append(tokens, Token{Type: EQUALS, Lexeme: "=", Pos: l.pos})
			l.advance()
		case ch == ';':
			tokens = append(tokens, Token{Type: SEMICOLON, Lexeme: ";", Pos: l.pos})
			l.advance()
		case ch == '"':
			tok, d := l.scanString()
			if d != nil {
				diags = append(diags, *d)
				if mode == Strict {
					return finishLex(tokens, l.pos), diags
				}
				continue // an unterminated string consumes the rest of the input
			}
			tokens = append(tokens, tok)
		case isDigit(ch):
			tok, d := l.scanNumber()
			if d != nil {
				diags = append(diags, *d)
				if mode == Strict {
					return finishLex(tokens, l.pos), diags
				}
				continue // the digit run is already consumed
			}
			tokens = append(tokens, tok)
		case isAlpha(ch):
			tokens = append(tokens, l.scanIdent())
		default:
			diags = append(diags, lexDiag(UnexpectedChar, l.pos, "unexpected character %q", ch))
			if mode == Strict {
				return finishLex(tokens, l.pos), diags
			}
			l.advance() // skip the character and keep going
		}
	}

	return finishLex(tokens, l.pos), diags
}

// finishLex appends the single terminating EOF token.
func finishLex(tokens []Token, pos int) []Token {
	return append(tokens, Token{Type: EOF, Pos: pos})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
