// SPDX-License-Identifier: MIT

package format

import "fmt"

// Bracket selects the delimiter pair used when writing triplets.
type Bracket int

const (
	// Brace writes "{row,col,value}".
	Brace Bracket = iota
	// Paren writes "(row,col,value)".
	Paren
)

// DefaultBracket is the output style when WithBracket is not given.
const DefaultBracket = Brace

// DefaultRejectDuplicates controls whether a repeated (row, col) is an error.
// false ⇒ last occurrence wins.
const DefaultRejectDuplicates = false

// delimiters returns the opening and closing rune of b.
func (b Bracket) delimiters() (open, closer byte) {
	if b == Paren {
		return '(', ')'
	}
	return '{', '}'
}

// String implements fmt.Stringer.
func (b Bracket) String() string {
	switch b {
	case Brace:
		return "brace"
	case Paren:
		return "paren"
	}
	return fmt.Sprintf("Bracket(%d)", int(b))
}

// Option customizes Parse and Write.
type Option func(*options)

type options struct {
	bracket          Bracket // Write only
	rejectDuplicates bool    // Parse only
}

// WithBracket selects the output bracket style. Panics on an unknown style.
func WithBracket(b Bracket) Option {
	if b != Brace && b != Paren {
		panic("format: WithBracket: unknown bracket style")
	}
	return func(o *options) { o.bracket = b }
}

// WithRejectDuplicates makes Parse fail with ErrDuplicateTriplet when the same
// (row, col) appears on more than one line.
func WithRejectDuplicates() Option {
	return func(o *options) { o.rejectDuplicates = true }
}

func gatherOptions(opts ...Option) options {
	o := options{
		bracket:          DefaultBracket,
		rejectDuplicates: DefaultRejectDuplicates,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
