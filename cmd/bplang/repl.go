package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"bplang/pkg/compiler"
)

const (
	historyFile = ".bplang_history"
	promptMain  = "bp> "
)

// runREPL reads BP statements interactively and prints the C each one
// compiles to. Always lenient: diagnostics are shown but never end the
// session. Ctrl+D or :quit exits.
func runREPL() {
	fmt.Println("bplang REPL. Ctrl+D or :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return
		}

		code, diags, _ := compiler.Compile(line, compiler.Lenient)
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		fmt.Print(code)
		ln.AppendHistory(line)
	}
}
