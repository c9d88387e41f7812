// SPDX-License-Identifier: MIT

package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Write serializes m to w:
//
//	rows = R
//	cols = C
//	{r,c,v}   one line per entry, ascending (row, col)
//
// Output is buffered and flushed once; the bracket style comes from WithBracket.
//
// Errors:
//   - sparse.ErrNilMatrix for a nil m.
//   - ErrIOFailure wrapping the first error returned by w.
func Write(w io.Writer, m *sparse.Matrix, opts ...Option) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	o := gatherOptions(opts...)
	open, closer := o.bracket.delimiters()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s = %d\n%s = %d\n", keyRows, m.Rows(), keyCols, m.Cols())

	buf := make([]byte, 0, 64)
	m.Each(func(t sparse.Triplet) bool {
		buf = append(buf[:0], open)
		buf = strconv.AppendInt(buf, int64(t.Row), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(t.Col), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, t.Value, 10)
		buf = append(buf, closer, '\n')
		_, err := bw.Write(buf)
		return err == nil // bufio latches the first error; Flush reports it
	})

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w: %w", ErrIOFailure, err)
	}
	return nil
}

// WriteFile creates or truncates path and writes m into it.
//
// Errors:
//   - ErrIOFailure (wrapping the os error) on create, write or close failure.
func WriteFile(path string, m *sparse.Matrix, opts ...Option) (err error) {
	if err = sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf("close", path, cerr)
		}
	}()

	if err = Write(f, m, opts...); err != nil {
		tracer().Errorf("format: %s: %v", path, err)
		return fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("format: wrote %s (%dx%d, nnz=%d)", path, m.Rows(), m.Cols(), m.NNZ())
	return nil
}
