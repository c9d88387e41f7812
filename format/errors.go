// SPDX-License-Identifier: MIT
// Package format: sentinel error set.
// Callers match with errors.Is; index violations reuse sparse.ErrOutOfRange so
// one sentinel covers both accessor and file bounds.

package format

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader signals a missing or unparseable "rows = N" / "cols = N" line,
	// including non-positive counts and swapped header lines.
	ErrMalformedHeader = errors.New("format: malformed header")

	// ErrMalformedTriplet signals a data line that matches neither bracket grammar.
	ErrMalformedTriplet = errors.New("format: malformed triplet")

	// ErrDuplicateTriplet signals a repeated (row, col) under WithRejectDuplicates.
	ErrDuplicateTriplet = errors.New("format: duplicate triplet")

	// ErrIOFailure signals that a file could not be opened, read, written or closed.
	// The underlying os error is wrapped alongside it.
	ErrIOFailure = errors.New("format: i/o failure")
)

// lineErrorf attaches a 1-based line number to err.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

// ioErrorf wraps both ErrIOFailure and the cause so either can be matched.
func ioErrorf(op, path string, err error) error {
	return fmt.Errorf("%s %q: %w: %w", op, path, ErrIOFailure, err)
}
