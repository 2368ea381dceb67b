// SPDX-License-Identifier: MIT

// Package matrix - textual display of a Matrix.
//
// Formats:
//   - whole grid: one line per row, "[ v1 v2 ... ]".
//   - row:        "v1 v2 ...".
//   - column:     "r0 r1 ...", one value per row.
//
// Every format ends with a newline. Values use fmt's %v verb.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "[ "
	_fmtRowClose = " ]\n"
	_fmtSep      = " "
	_fmtEOL      = "\n"
)

// writeValues writes vals separated by _fmtSep.
func writeValues[T Number](w *bufio.Writer, vals []T) {
	for j, v := range vals {
		if j > 0 {
			w.WriteString(_fmtSep)
		}
		fmt.Fprint(w, v)
	}
}

// Fprint writes the whole grid to w, one bracketed row per line.
// Complexity: O(r*c).
func (m *Matrix[T]) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.r; i++ {
		bw.WriteString(_fmtRowOpen)
		writeValues(bw, m.row(i))
		bw.WriteString(_fmtRowClose)
	}

	return bw.Flush()
}

// FprintRow writes row to w. Out-of-range rows write nothing.
func (m *Matrix[T]) FprintRow(w io.Writer, row int) error {
	if !inRange(row, m.r) {
		return nil
	}
	bw := bufio.NewWriter(w)
	writeValues(bw, m.row(row))
	bw.WriteString(_fmtEOL)

	return bw.Flush()
}

// FprintColumn writes column col to w. Out-of-range columns write nothing.
func (m *Matrix[T]) FprintColumn(w io.Writer, col int) error {
	vals, ok := m.Column(col)
	if !ok {
		return nil
	}
	bw := bufio.NewWriter(w)
	writeValues(bw, vals)
	bw.WriteString(_fmtEOL)

	return bw.Flush()
}

// Print writes the grid to the configured output (os.Stdout unless WithOutput).
// Write errors are dropped, as with fmt.Println.
func (m *Matrix[T]) Print() { _ = m.Fprint(m.out) }

// PrintRow writes row to the configured output; no-op when out of range.
func (m *Matrix[T]) PrintRow(row int) { _ = m.FprintRow(m.out, row) }

// PrintColumn writes column col to the configured output; no-op when out of range.
func (m *Matrix[T]) PrintColumn(col int) { _ = m.FprintColumn(m.out, col) }

// String implements fmt.Stringer with the same text Print produces.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_ = m.Fprint(&sb)

	return sb.String()
}
