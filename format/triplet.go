// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"math"
)

// scanState is the position of the triplet scanner inside one data line.
type scanState int

const (
	stateBeforeOpen scanState = iota // waiting for '(' or '{'
	stateInRow                       // reading the row number
	stateInCol                       // reading the column number
	stateInValue                     // reading the value
	stateAfterClose                  // only whitespace may follow
)

// tripletScanner is a single-use state machine over one data line.
// Each numeric field accepts: optional leading '-', then one or more digits.
// Row and column must fit in int, the value in int64.
// Whitespace is allowed between tokens but not inside a number.
type tripletScanner struct {
	state  scanState
	closer byte     // ')' or '}' depending on the opening bracket
	fields [3]int64 // row, col, value
	acc    uint64   // magnitude of the field being read
	neg    bool     // field has a leading '-'
	digits int      // digits read in the current field
	gap    bool     // whitespace seen after the field started
}

// parseTriplet scans "(r,c,v)" or "{r,c,v}".
// Errors wrap ErrMalformedTriplet with the 1-based character position.
func parseTriplet(line string) (row, col int, value int64, err error) {
	var s tripletScanner
	for i := 0; i < len(line); i++ {
		if err = s.step(line[i]); err != nil {
			return 0, 0, 0, fmt.Errorf("col %d: %w: %w", i+1, err, ErrMalformedTriplet)
		}
	}
	if s.state != stateAfterClose {
		return 0, 0, 0, fmt.Errorf("unterminated %q: %w", line, ErrMalformedTriplet)
	}

	return int(s.fields[0]), int(s.fields[1]), s.fields[2], nil
}

// step feeds one byte to the scanner.
func (s *tripletScanner) step(ch byte) error {
	if ch == ' ' || ch == '\t' || ch == '\r' {
		if s.inField() && (s.digits > 0 || s.neg) {
			s.gap = true
		}
		return nil
	}

	switch s.state {
	case stateBeforeOpen:
		switch ch {
		case '(':
			s.closer = ')'
		case '{':
			s.closer = '}'
		default:
			return fmt.Errorf("unexpected %q before opening bracket", ch)
		}
		s.state = stateInRow
		return nil
	case stateAfterClose:
		return fmt.Errorf("unexpected %q after closing bracket", ch)
	}

	switch {
	case ch == '-':
		if s.neg || s.digits > 0 {
			return fmt.Errorf("misplaced '-'")
		}
		s.neg = true
	case ch >= '0' && ch <= '9':
		if s.gap {
			return fmt.Errorf("whitespace inside number")
		}
		d := uint64(ch - '0')
		if s.acc > (math.MaxInt64-d)/10 {
			return fmt.Errorf("number overflows int64")
		}
		s.acc = s.acc*10 + d
		s.digits++
	case ch == ',':
		if s.state == stateInValue {
			return fmt.Errorf("too many fields")
		}
		return s.endField(s.state + 1)
	case ch == s.closer:
		if s.state != stateInValue {
			return fmt.Errorf("too few fields")
		}
		return s.endField(stateAfterClose)
	default:
		return fmt.Errorf("unexpected %q", ch)
	}
	return nil
}

// endField stores the current field and moves to next.
func (s *tripletScanner) endField(next scanState) error {
	if s.digits == 0 {
		return fmt.Errorf("empty field")
	}
	if s.state != stateInValue && s.acc > uint64(math.MaxInt) {
		return fmt.Errorf("index overflows int")
	}
	v := int64(s.acc)
	if s.neg {
		v = -v
	}
	s.fields[s.state-stateInRow] = v
	s.acc, s.neg, s.digits, s.gap = 0, false, 0, false
	s.state = next
	return nil
}

func (s *tripletScanner) inField() bool {
	return s.state >= stateInRow && s.state <= stateInValue
}
