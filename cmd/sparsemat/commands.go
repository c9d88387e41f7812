// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/katalvlaran/sparsemat/builder"
	"github.com/katalvlaran/sparsemat/format"
	"github.com/katalvlaran/sparsemat/sparse"
)

// binaryOps maps command names and the numeric menu choices to kernels.
var binaryOps = map[string]func(a, b *sparse.Matrix) (*sparse.Matrix, error){
	"add": sparse.Add, "1": sparse.Add,
	"sub": sparse.Sub, "2": sparse.Sub,
	"mul": sparse.Mul, "3": sparse.Mul,
}

// newFlagSet returns a FlagSet that reports parse errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %v: %w", fs.Name(), err, errUsage)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected arguments %v: %w", fs.Name(), fs.Args(), errUsage)
	}
	return nil
}

func bracketFromFlag(s string) (format.Bracket, error) {
	switch s {
	case "brace", "{}":
		return format.Brace, nil
	case "paren", "()":
		return format.Paren, nil
	}
	return 0, fmt.Errorf("-bracket %q: want brace or paren: %w", s, errUsage)
}

// emit writes m to path, or to stdout when path is empty.
func emit(m *sparse.Matrix, path string, bracket format.Bracket, stdout, stderr io.Writer) error {
	if path == "" {
		return format.Write(stdout, m, format.WithBracket(bracket))
	}
	if err := format.WriteFile(path, m, format.WithBracket(bracket)); err != nil {
		return err
	}
	paint(stderr, color.FgGreen).Fprintf(stderr, "✓ Result written to %s\n", path)
	return nil
}

func arithCmd(name string, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet(name, stderr)
	pathA := fs.String("a", "", "Matrix A file (required)")
	pathB := fs.String("b", "", "Matrix B file (required)")
	out := fs.String("o", "", "Output file (default stdout)")
	bracketName := fs.String("bracket", "brace", "Output bracket style: brace or paren")
	strict := fs.Bool("strict", false, "Reject duplicate coordinates in the inputs")
	trace := fs.String("trace", "error", "Trace level: error, info or debug")

	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *pathA == "" || *pathB == "" {
		return fmt.Errorf("%s: -a and -b are required: %w", name, errUsage)
	}
	bracket, err := bracketFromFlag(*bracketName)
	if err != nil {
		return err
	}
	if err = setupTracing(*trace, stderr); err != nil {
		return err
	}

	var popts []format.Option
	if *strict {
		popts = append(popts, format.WithRejectDuplicates())
	}
	a, err := format.ParseFile(*pathA, popts...)
	if err != nil {
		return err
	}
	b, err := format.ParseFile(*pathB, popts...)
	if err != nil {
		return err
	}

	result, err := binaryOps[name](a, b)
	if err != nil {
		return err
	}
	return emit(result, *out, bracket, stdout, stderr)
}

func genCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("gen", stderr)
	rows := fs.Int("rows", 10, "Number of rows")
	cols := fs.Int("cols", 10, "Number of columns")
	density := fs.Float64("density", 0.1, "Probability that a cell is set, in [0,1]")
	seed := fs.Int64("seed", 1, "Random seed")
	lo := fs.Int64("min", -9, "Smallest value")
	hi := fs.Int64("max", 9, "Largest value")
	out := fs.String("o", "", "Output file (default stdout)")
	bracketName := fs.String("bracket", "brace", "Output bracket style: brace or paren")
	trace := fs.String("trace", "error", "Trace level: error, info or debug")

	if err := parseFlags(fs, args); err != nil {
		return err
	}
	bracket, err := bracketFromFlag(*bracketName)
	if err != nil {
		return err
	}
	if *hi < *lo || (*lo == 0 && *hi == 0) {
		return fmt.Errorf("gen: -min %d -max %d is not a non-zero range: %w", *lo, *hi, errUsage)
	}
	if err = setupTracing(*trace, stderr); err != nil {
		return err
	}

	m, err := builder.BuildMatrix(*rows, *cols,
		[]builder.BuilderOption{builder.WithSeed(*seed), builder.WithValueFn(builder.UniformValueFn(*lo, *hi))},
		builder.RandomSparse(*density))
	if err != nil {
		return err
	}
	return emit(m, *out, bracket, stdout, stderr)
}

func listCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("list", stderr)
	dir := fs.String("dir", "sample_inputs", "Directory with matrix files")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("list: no sample files found in %s", *dir)
	}

	fmt.Fprintf(stdout, "Available files in %s:\n", filepath.Clean(*dir))
	for i, n := range names {
		fmt.Fprintf(stdout, "%d. %s\n", i+1, n)
	}
	return nil
}
