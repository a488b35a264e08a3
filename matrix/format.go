// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Two layouts:
//   - String(): the short debugging form "[a, b]\n[c, d]\n", shortest exact cells.
//   - Format / Fprint: fixed-width, right-aligned cells configured by Option
//     (width, precision, delimiter, brackets).
//
// WritePoints emits the plain-text coordinate list read by external
// triangulation tools: the dimension (Cols) on the first line, the point
// count (Rows) on the second, then one point per line.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	opFprint      = "Fprint"
	opWritePoints = "WritePoints"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtNewline  = "\n"
)

// shortString renders m as "[a, b]\n" lines with the shortest exact cells.
// Complexity: O(r*c).
func shortString[T any](m Matrix[T]) string {
	if m == nil {
		return "<nil>"
	}
	ops := m.Ops()
	var b strings.Builder
	var i, j int
	for i = 0; i < m.Rows(); i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(ops.Format(cell(m, i, j), -1))
		}
		b.WriteString(_fmtRowClose)
		b.WriteString(_fmtNewline)
	}

	return b.String()
}

// Format renders m with the fixed-width layout and returns it as a string.
// A nil matrix renders as "<nil>".
// Complexity: O(r*c).
func Format[T any](m Matrix[T], opts ...Option) string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	_ = Fprint(&b, m, opts...) // strings.Builder never fails

	return b.String()
}

// Fprint writes m to w with the fixed-width layout, one row per line.
// Errors: ErrNilMatrix; any error from w.
// Complexity: O(r*c).
func Fprint[T any](w io.Writer, m Matrix[T], opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFprint, err)
	}
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	writeRows(bw, m, o)
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opFprint, err)
	}

	return nil
}

// WritePoints writes m as a point list: Cols on the first line, Rows on the
// second (both omitted with WithoutPointsHeader), then each row as one point.
// Errors: ErrNilMatrix; any error from w.
// Complexity: O(r*c).
func WritePoints[T any](w io.Writer, m Matrix[T], opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWritePoints, err)
	}
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	if o.header {
		fmt.Fprintf(bw, "%d\n%d\n", m.Cols(), m.Rows())
	}
	writeRows(bw, m, o)
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opWritePoints, err)
	}

	return nil
}

// writeRows emits every row of m; bufio keeps the first write error for Flush.
func writeRows[T any](bw *bufio.Writer, m Matrix[T], o Options) {
	ops := m.Ops()
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		if o.brackets {
			bw.WriteString(_fmtRowOpen)
		}
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				bw.WriteString(o.delimiter)
			}
			fmt.Fprintf(bw, "%*s", o.width, ops.Format(cell(m, i, j), o.precision))
		}
		if o.brackets {
			bw.WriteString(_fmtRowClose)
		}
		bw.WriteString(_fmtNewline)
	}
}
