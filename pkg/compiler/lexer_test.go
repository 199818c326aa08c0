package compiler

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Type: EOF, Pos: 0},
			},
		},
		{
			name:  "Declaration",
			input: "m x = 5;",
			expected: []Token{
				{Type: KEYWORD, Lexeme: "m", Pos: 0},
				{Type: IDENTIFIER, Lexeme: "x", Pos: 2},
				{Type: EQUALS, Lexeme: "=", Pos: 4},
				{Type: NUMBER, Lexeme: "5", Num: 5, Pos: 6},
				{Type: SEMICOLON, Lexeme: ";", Pos: 7},
				{Type: EOF, Pos: 8},
			},
		},
		{
			name:  "Show",
			input: `show "hi";`,
			expected: []Token{
				{Type: KEYWORD, Lexeme: "show", Pos: 0},
				{Type: STRING, Lexeme: "hi", Pos: 5},
				{Type: SEMICOLON, Lexeme: ";", Pos: 9},
				{Type: EOF, Pos: 10},
			},
		},
		{
			name:  "Keywords and Identifiers",
			input: "m c show name Show",
			expected: []Token{
				{Type: KEYWORD, Lexeme: "m", Pos: 0},
				{Type: KEYWORD, Lexeme: "c", Pos: 2},
				{Type: KEYWORD, Lexeme: "show", Pos: 4},
				{Type: IDENTIFIER, Lexeme: "name", Pos: 9},
				{Type: IDENTIFIER, Lexeme: "Show", Pos: 14},
				{Type: EOF, Pos: 18},
			},
		},
		{
			name:  "Digit ends an identifier",
			input: "var01",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "var", Pos: 0},
				{Type: NUMBER, Lexeme: "01", Num: 1, Pos: 3},
				{Type: EOF, Pos: 5},
			},
		},
		{
			name:  "Whitespace",
			input: "\tm\n\nx\r\n= 1",
			expected: []Token{
				{Type: KEYWORD, Lexeme: "m", Pos: 1},
				{Type: IDENTIFIER, Lexeme: "x", Pos: 4},
				{Type: EQUALS, Lexeme: "=", Pos: 7},
				{Type: NUMBER, Lexeme: "1", Num: 1, Pos: 9},
				{Type: EOF, Pos: 10},
			},
		},
		{
			name:  "Empty string literal",
			input: `c s = ""`,
			expected: []Token{
				{Type: KEYWORD, Lexeme: "c", Pos: 0},
				{Type: IDENTIFIER, Lexeme: "s", Pos: 2},
				{Type: EQUALS, Lexeme: "=", Pos: 4},
				{Type: STRING, Lexeme: "", Pos: 6},
				{Type: EOF, Pos: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Lex(tt.input, Strict)
			if len(diags) != 0 {
				t.Fatalf("Lex produced unexpected diagnostics: %v", diags)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Lex(%q) mismatch\n got: %v\nwant: %v", tt.input, tokens, tt.expected)
			}
		})
	}
}

func TestLexDiagnostics(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		mode       Mode
		wantKinds  []DiagKind
		wantTokens int // excluding the terminating EOF
	}{
		{
			name:       "Unexpected character lenient skips it",
			input:      "m ? x",
			mode:       Lenient,
			wantKinds:  []DiagKind{UnexpectedChar},
			wantTokens: 2, // m, x
		},
		{
			name:       "Unexpected character strict stops",
			input:      "m ? x",
			mode:       Strict,
			wantKinds:  []DiagKind{UnexpectedChar},
			wantTokens: 1, // m
		},
		{
			name:       "Unterminated string",
			input:      `show "oops`,
			mode:       Lenient,
			wantKinds:  []DiagKind{UnterminatedString},
			wantTokens: 1, // show
		},
		{
			name:       "Integer overflow",
			input:      "m x = 2147483648",
			mode:       Lenient,
			wantKinds:  []DiagKind{IntegerOverflow},
			wantTokens: 3, // m, x, =
		},
		{
			name:       "Int32 max is fine",
			input:      "m x = 2147483647",
			mode:       Lenient,
			wantKinds:  nil,
			wantTokens: 4,
		},
		{
			name:       "Multiple bad characters accumulate in lenient",
			input:      "@ # m",
			mode:       Lenient,
			wantKinds:  []DiagKind{UnexpectedChar, UnexpectedChar},
			wantTokens: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Lex(tt.input, tt.mode)

			var kinds []DiagKind
			for _, d := range diags {
				if d.Stage != StageLex {
					t.Errorf("diagnostic from wrong stage: %v", d)
				}
				kinds = append(kinds, d.Kind)
			}
			if !reflect.DeepEqual(kinds, tt.wantKinds) {
				t.Errorf("diagnostic kinds = %v, want %v", kinds, tt.wantKinds)
			}
			if got := len(tokens) - 1; got != tt.wantTokens {
				t.Errorf("got %d tokens before EOF, want %d (tokens: %v)", got, tt.wantTokens, tokens)
			}
		})
	}
}

// Every lexed stream ends with exactly one EOF token, malformed input or not.
func TestLexEOFInvariant(t *testing.T) {
	inputs := []string{
		"",
		"m x = 5;",
		`show "unterminated`,
		"@@@@",
		"m x = 99999999999999999999",
		"   \n\t  ",
	}

	for _, mode := range []Mode{Strict, Lenient} {
		for _, src := range inputs {
			tokens, _ := Lex(src, mode)
			if len(tokens) == 0 {
				t.Fatalf("Lex(%q, %v) returned no tokens", src, mode)
			}
			count := 0
			for _, tok := range tokens {
				if tok.Type == EOF {
					count++
				}
			}
			if count != 1 || tokens[len(tokens)-1].Type != EOF {
				t.Errorf("Lex(%q, %v): want exactly one trailing EOF, got %v", src, mode, tokens)
			}
		}
	}
}
