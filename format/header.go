// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Header keys in their mandatory order.
const (
	keyRows = "rows"
	keyCols = "cols"
)

// parseHeader parses "<key> = N" (spaces around '=' optional) and returns N.
//
// Errors:
//   - ErrMalformedHeader when the key differs, '=' is missing, N is not an
//     integer, N <= 0, or anything trails N.
func parseHeader(line, key string) (int, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), key)
	if !ok {
		return 0, fmt.Errorf("want %q line, got %q: %w", key, line, ErrMalformedHeader)
	}
	rest, ok = strings.CutPrefix(strings.TrimLeft(rest, " \t"), "=")
	if !ok {
		return 0, fmt.Errorf("%s: missing '=': %w", key, ErrMalformedHeader)
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer: %w", key, strings.TrimSpace(rest), ErrMalformedHeader)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: %d must be > 0: %w", key, n, ErrMalformedHeader)
	}

	return n, nil
}

// isBlank reports whether line holds only spaces, tabs or a carriage return.
func isBlank(line string) bool {
	return strings.TrimLeft(line, " \t\r") == ""
}
