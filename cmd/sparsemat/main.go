// SPDX-License-Identifier: MIT

// Command sparsemat runs sparse matrix arithmetic over triplet text files.
//
// Usage:
//
//	sparsemat <command> [options]
//
// Commands add, sub and mul (or 1, 2, 3) read two matrices and write the
// result; gen writes a random fixture; list shows the input files of a directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks command-line mistakes; run maps it to exitUsage.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args[0] to a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	var err error
	switch cmd := strings.ToLower(args[0]); cmd {
	case "add", "1", "sub", "2", "mul", "3":
		err = arithCmd(cmd, args[1:], stdout, stderr)
	case "gen":
		err = genCmd(args[1:], stdout, stderr)
	case "list":
		err = listCmd(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return exitOK
	default:
		err = fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	if err == nil {
		return exitOK
	}
	paint(stderr, color.FgRed).Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		printUsage(stderr)
		return exitUsage
	}
	return exitError
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `sparsemat - sparse integer matrix arithmetic

Usage:
  sparsemat <command> [options]

Commands:
  add, 1      A + B
  sub, 2      A - B
  mul, 3      A × B
  gen         Write a random sparse matrix
  list        List sample input files in a directory
  help        Show this help

Examples:
  sparsemat add -a a.txt -b b.txt -o sum.txt
  sparsemat 3 -a a.txt -b b.txt -bracket paren
  sparsemat gen -rows 100 -cols 80 -density 0.05 -seed 7 -o big.txt
  sparsemat list -dir sample_inputs
`)
}

// paint returns a color that is only active when w is a terminal.
func paint(w io.Writer, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// setupTracing routes the engine's tracer to w at the given level.
func setupTracing(level string, w io.Writer) error {
	var lvl tracing.TraceLevel
	switch strings.ToLower(level) {
	case "error", "info", "debug":
		lvl = tracing.TraceLevelFromString(level)
	default:
		return fmt.Errorf("-trace %q: want error, info or debug: %w", level, errUsage)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("sparsemat")
	t.SetOutput(w)
	t.SetTraceLevel(lvl)
	return nil
}
