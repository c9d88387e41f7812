// SPDX-License-Identifier: MIT

// Package format - reading the triplet text format.
//
// Implementation:
//   - Stage 1: scan lines, skipping blank ones; the first two non-blank lines
//     are the positional rows/cols header.
//   - Stage 2: every later non-blank line goes through the triplet state
//     machine, then a bounds check against the header.
//     In-range lines with value 0 are dropped right there.
//   - Stage 3: stable sort by (row, col), keep the last entry per key and
//     load the canonical sequence into a sparse.Matrix.
//
// Complexity: O(L + n log n) for L bytes and n data lines.
package format

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/katalvlaran/sparsemat/sparse"
)

// entry is a parsed data line before canonicalization.
type entry struct {
	t    sparse.Triplet
	line int
}

func compareEntries(a, b entry) int {
	if a.t.Row != b.t.Row {
		return a.t.Row - b.t.Row
	}
	return a.t.Col - b.t.Col
}

// Parse reads a matrix from r.
//
// Errors (first one wins, no recovery):
//   - ErrMalformedHeader: first/second non-blank line is not rows=/cols=, or input ends early.
//   - ErrMalformedTriplet: a data line matches neither bracket grammar.
//   - sparse.ErrOutOfRange: a triplet lies outside the declared shape.
//   - ErrDuplicateTriplet: repeated (row, col) under WithRejectDuplicates.
//   - ErrIOFailure: r returned a read error.
//
// All but ErrIOFailure carry the 1-based line number.
func Parse(r io.Reader, opts ...Option) (*sparse.Matrix, error) {
	o := gatherOptions(opts...)

	var (
		sc         = bufio.NewScanner(r)
		lineNo     int
		headerSeen int
		rows, cols int
		entries    []entry
		seen       map[[2]int]int // key -> first line, only with rejectDuplicates
		err        error
	)
	if o.rejectDuplicates {
		seen = make(map[[2]int]int)
	}

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if isBlank(line) {
			continue
		}

		switch headerSeen {
		case 0:
			if rows, err = parseHeader(line, keyRows); err != nil {
				return nil, lineErrorf(lineNo, err)
			}
			headerSeen++
			continue
		case 1:
			if cols, err = parseHeader(line, keyCols); err != nil {
				return nil, lineErrorf(lineNo, err)
			}
			headerSeen++
			tracer().Debugf("format: header %dx%d", rows, cols)
			continue
		}

		row, col, value, err := parseTriplet(line)
		if err != nil {
			return nil, lineErrorf(lineNo, err)
		}
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return nil, lineErrorf(lineNo,
				fmt.Errorf("(%d,%d) outside %dx%d: %w", row, col, rows, cols, sparse.ErrOutOfRange))
		}
		if value == 0 {
			// Zero lines are dropped: they neither clear nor duplicate a cell.
			continue
		}
		if seen != nil {
			key := [2]int{row, col}
			if first, dup := seen[key]; dup {
				return nil, lineErrorf(lineNo,
					fmt.Errorf("(%d,%d) already set on line %d: %w", row, col, first, ErrDuplicateTriplet))
			}
			seen[key] = lineNo
		}
		entries = append(entries, entry{t: sparse.Triplet{Row: row, Col: col, Value: value}, line: lineNo})
	}
	if err = sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, lineErrorf(lineNo+1, fmt.Errorf("%w: %w", err, ErrMalformedTriplet))
		}
		return nil, fmt.Errorf("read: %w: %w", ErrIOFailure, err)
	}
	switch headerSeen {
	case 0:
		return nil, fmt.Errorf("missing %q line: %w", keyRows, ErrMalformedHeader)
	case 1:
		return nil, fmt.Errorf("missing %q line: %w", keyCols, ErrMalformedHeader)
	}

	canonical := canonicalize(entries)
	m, err := sparse.New(rows, cols, sparse.WithCapacity(max(len(canonical), sparse.DefaultCapacity)))
	if err != nil {
		return nil, err
	}
	for _, t := range canonical {
		// Ascending keys make every Set an append at the tail.
		if err = m.Set(t.Row, t.Col, t.Value); err != nil {
			return nil, err
		}
	}

	tracer().Debugf("format: parsed %d lines, %d entries, nnz=%d", lineNo, len(entries), m.NNZ())
	return m, nil
}

// canonicalize sorts entries by (row, col) and keeps the last line per key.
// The stable sort keeps file order inside a key, so "last" means the latest
// line. Entries are non-zero; Parse drops zero lines before they get here.
func canonicalize(entries []entry) []sparse.Triplet {
	slices.SortStableFunc(entries, compareEntries)

	out := make([]sparse.Triplet, 0, len(entries))
	for i, e := range entries {
		if i+1 < len(entries) && compareEntries(e, entries[i+1]) == 0 {
			continue
		}
		out = append(out, e.t)
	}
	return out
}

// ParseFile opens path, parses it and closes it on every path.
//
// Errors:
//   - ErrIOFailure (wrapping the os error) when the file cannot be opened.
//   - Any Parse error, prefixed with the path.
func ParseFile(path string, opts ...Option) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("open", path, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		tracer().Errorf("format: %s: %v", path, err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
