package compiler

// Parser consumes the flat token slice produced by Lex and builds a program.
//
// Grammar:
//
//	program   = statement* EOF
//	statement = decl | show
//	decl      = ("m" | "c") IDENTIFIER "=" (NUMBER | STRING) (";")?
//	show      = "show" STRING (";")?
//
// The trailing semicolon is optional and carries no meaning. Recovery is
// per-statement: a malformed statement produces one diagnostic naming the
// token index and the parser skips the offending token before rescanning.
type Parser struct {
	tokens []Token
	pos    int
}

// peek returns the current token without consuming it. Lookahead past the
// end of the slice yields a synthetic EOF token; the parser never indexes
// out of range.
func (p *Parser) peek() Token {
	tok, _ := p.peekChecked()
	return tok
}

// peekChecked reports whether the current position is inside the slice. A
// false return means the stream ran out without its terminating EOF token.
func (p *Parser) peekChecked() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF, Pos: len(p.tokens)}, false
	}
	return p.tokens[p.pos], true
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// skipOne discards the offending token so the next scan makes progress.
// EOF is never consumed.
func (p *Parser) skipOne() {
	if p.peek().Type != EOF {
		p.pos++
	}
}

// Parse builds the program from tokens. In Strict mode the first diagnostic
// ends the pass; in Lenient mode diagnostics accumulate and parsing
// continues with the next token. Statements that parsed cleanly are always
// returned, in source order.
func Parse(tokens []Token, mode Mode) ([]Stmt, []Diag) {
	p := &Parser{tokens: tokens}
	var prog []Stmt
	var diags []Diag

	for p.peek().Type != EOF {
		stmt, d := p.parseStatement()
		if d != nil {
			diags = append(diags, *d)
			if mode == Strict {
				return prog, diags
			}
			continue
		}
		prog = append(prog, stmt)
	}

	return prog, diags
}

func (p *Parser) parseStatement() (Stmt, *Diag) {
	tok, ok := p.peekChecked()
	if !ok {
		d := parseDiag(UnexpectedEndOfInput, p.pos, "token stream ended without EOF")
		return nil, &d
	}

	if tok.Type != KEYWORD {
		d := parseDiag(UnexpectedToken, p.pos, "unexpected token %s %q", tok.Type, tok.Lexeme)
		p.skipOne()
		return nil, &d
	}

	switch tok.Lexeme {
	case "m", "c":
		return p.parseDecl()
	case "show":
		return p.parseShow()
	default:
		// Unreachable through Lex, which only emits the closed keyword set.
		// Diagnosed anyway so a forged token slice cannot slip through.
		d := parseDiag(UnknownKeyword, p.pos, "unknown keyword %q", tok.Lexeme)
		p.skipOne()
		return nil, &d
	}
}

// parseDecl handles  ("m" | "c") IDENTIFIER "=" (NUMBER | STRING)
func (p *Parser) parseDecl() (Stmt, *Diag) {
	p.advance() // keyword

	tok, ok := p.peekChecked()
	if !ok {
		d := parseDiag(UnexpectedEndOfInput, p.pos, "token stream ended without EOF")
		return nil, &d
	}
	if tok.Type != IDENTIFIER {
		d := parseDiag(MissingIdentifier, p.pos, "expected identifier after keyword, got %s", tok.Type)
		p.skipOne()
		return nil, &d
	}
	name := tok.Lexeme
	p.advance()

	tok, ok = p.peekChecked()
	if !ok {
		d := parseDiag(UnexpectedEndOfInput, p.pos, "token stream ended without EOF")
		return nil, &d
	}
	if tok.Type != EQUALS {
		d := parseDiag(MissingEquals, p.pos, "expected = after identifier, got %s", tok.Type)
		p.skipOne()
		return nil, &d
	}
	p.advance()

	tok, ok = p.peekChecked()
	if !ok {
		d := parseDiag(UnexpectedEndOfInput, p.pos, "token stream ended without EOF")
		return nil, &d
	}

	var value Literal
	switch tok.Type {
	case NUMBER:
		value = &NumberLit{Value: tok.Num}
	case STRING:
		value = &StringLit{Value: tok.Lexeme}
	default:
		d := parseDiag(MissingLiteral, p.pos, "expected number or string after =, got %s", tok.Type)
		p.skipOne()
		return nil, &d
	}
	p.advance()

	p.acceptSemicolon()
	return &VariableDecl{Name: name, Value: value}, nil
}

// parseShow handles  "show" STRING
func (p *Parser) parseShow() (Stmt, *Diag) {
	p.advance() // show

	tok, ok := p.peekChecked()
	if !ok {
		d := parseDiag(UnexpectedEndOfInput, p.pos, "token stream ended without EOF")
		return nil, &d
	}
	if tok.Type != STRING {
		d := parseDiag(MissingStringAfterShow, p.pos, "expected string literal after show, got %s", tok.Type)
		p.skipOne()
		return nil, &d
	}
	text := tok.Lexeme
	p.advance()

	p.acceptSemicolon()
	return &ShowStmt{Text: text}, nil
}

// acceptSemicolon consumes an optional trailing semicolon.
func (p *Parser) acceptSemicolon() {
	if p.peek().Type == SEMICOLON {
		p.advance()
	}
}
