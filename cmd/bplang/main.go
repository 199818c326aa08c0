package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bplang/pkg/compiler"
	"bplang/pkg/runner"
)

// execPath makes a freshly built binary invocable. A bare name like "main"
// would otherwise be looked up on PATH; absolute paths and paths that
// already carry a directory component are left alone.
func execPath(binPath string) string {
	if !filepath.IsAbs(binPath) && !strings.ContainsRune(binPath, filepath.Separator) {
		return "./" + binPath
	}
	return binPath
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "repl" {
		runREPL()
		return
	}

	var (
		outPath = flag.String("o", "main.c", "path of the generated C file")
		strict  = flag.Bool("strict", false, "abort on the first diagnostic")
		lenient = flag.Bool("lenient", false, "collect diagnostics and emit best-effort output (default)")
		cc      = flag.String("cc", "cc", "C compiler to invoke on the generated file")
		emit    = flag.Bool("emit", false, "stop after writing the C file")
		run     = flag.Bool("run", false, "execute the compiled binary")
		timeout = flag.Duration("timeout", 30*time.Second, "bound on each external process call")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: bplang [flags] file.bp")
		fmt.Fprintln(os.Stderr, "       bplang repl")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *strict && *lenient {
		log.Fatal("-strict and -lenient are mutually exclusive")
	}
	mode := compiler.Lenient
	if *strict {
		mode = compiler.Strict
	}

	srcPath := flag.Arg(0)
	source, err := os.ReadFile(srcPath)
	if err != nil {
		log.Fatalf("failed to read source file: %v", err)
	}

	code, diags, err := compiler.Compile(string(source), mode)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s: %s\n", srcPath, d.Error())
	}
	if err != nil {
		os.Exit(1)
	}

	if err := os.WriteFile(*outPath, []byte(code), 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *outPath, err)
	}
	if *emit {
		return
	}

	binPath := strings.TrimSuffix(*outPath, filepath.Ext(*outPath))
	if binPath == *outPath {
		binPath = *outPath + ".bin"
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := runner.Build(ctx, *cc, *outPath, binPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *run {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		stdout, err := runner.Run(ctx, execPath(binPath))
		fmt.Print(stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
