package compiler

// Compile runs the full pipeline: Lex -> Parse -> Generate.
//
// In Strict mode the first diagnostic from either stage aborts the pipeline;
// it is returned as the error and no code is produced. In Lenient mode all
// diagnostics accumulate and the generated code covers every statement that
// parsed cleanly; the error is nil and the caller decides whether the output
// is usable despite the diagnostics.
//
// The pipeline is strictly linear and pure: identical input always yields
// byte-identical output.
func Compile(src string, mode Mode) (string, []Diag, error) {
	tokens, diags := Lex(src, mode)
	if mode == Strict && len(diags) > 0 {
		return "", diags, diags[0]
	}

	stmts, parseDiags := Parse(tokens, mode)
	diags = append(diags, parseDiags...)
	if mode == Strict && len(parseDiags) > 0 {
		return "", diags, parseDiags[0]
	}

	return Generate(stmts), diags, nil
}
