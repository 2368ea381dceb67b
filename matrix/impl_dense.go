// SPDX-License-Identifier: MIT

// Package matrix - Dense grid storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Keep the sorted flag honest: every write path goes through markDirty.
//   - Tolerate bad indices on the mutating surface (no-op), report them on At.
//
// Complexity quicksheet:
//   - New/Zeros/FromRows: O(r*c); At/Set: O(1); SetAll/Clone/Values: O(r*c).

package matrix

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // ctor tag used in error wrappers
	ctxZeros    = "Zeros"    // ctor tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag used in error wrappers
	ctxAt       = "At"       // method tag used in error wrappers
)

// Matrix is a mutable rows×cols grid of T in row-major order.
//   - r,c hold dimensions (both >= MinDimension, swapped only by Rotate).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - sorted is true only between a Sort and the next mutation.
//
// A Matrix is not safe for concurrent use.
type Matrix[T Number] struct {
	r, c   int        // row and column counts
	data   []T        // contiguous row-major storage (len == r*c)
	sorted bool       // every row non-decreasing; cleared by markDirty
	out    io.Writer  // Print* destination
	rng    *rand.Rand // Randomize source, seeded once
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a rows×cols matrix with every cell set to fill.
// Implementation:
//   - Stage 1: validate rows >= 2 && cols >= 2; else ErrInvalidDimension.
//   - Stage 2: allocate the flat buffer and write fill into each cell.
//   - Stage 3: resolve options (output, random generator).
//
// Behavior highlights:
//   - The new matrix is not considered sorted, even when fill makes every row constant.
//
// Errors:
//   - ErrInvalidDimension wrapped as "New(rows,cols): ...".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int, fill T, opts ...Option) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxNew, rows, cols), err)
	}

	buf := make([]T, rows*cols)
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}

	return newMatrix(rows, cols, buf, opts), nil
}

// Zeros creates a rows×cols matrix of zeros.
// Complexity: O(r*c).
func Zeros[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxZeros, rows, cols), err)
	}

	return newMatrix(rows, cols, make([]T, rows*cols), opts), nil
}

// FromRows builds a matrix from literal row data. The input is copied.
// Implementation:
//   - Stage 1: validate shape (>= 2×2) and rectangularity.
//   - Stage 2: copy rows into a flat row-major buffer.
//
// Errors:
//   - ErrInvalidDimension, ErrRagged wrapped as "FromRows: ...".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return newMatrix(r, c, buf, opts), nil
}

// newMatrix assembles a Matrix around an already validated buffer.
func newMatrix[T Number](rows, cols int, buf []T, opts []Option) *Matrix[T] {
	o := gatherOptions(opts...)

	return &Matrix[T]{
		r:    rows,
		c:    cols,
		data: buf,
		out:  o.out,
		rng:  o.rng,
	}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.c }

// IsSorted reports whether every row is known to be in non-decreasing order,
// i.e. Sort ran and nothing has been written since.
func (m *Matrix[T]) IsSorted() bool { return m.sorted }

// markDirty is the single place the sorted flag is cleared.
// Every method that writes cells or reshapes the grid MUST call it.
func (m *Matrix[T]) markDirty() {
	m.sorted = false
}

// row returns the live slice backing row i (caller guarantees bounds).
func (m *Matrix[T]) row(i int) []T {
	return m.data[i*m.c : (i+1)*m.c]
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange wrapped as "Matrix.At(row,col): ..." on bad indices.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if !inRange(row, m.r) || !inRange(col, m.c) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col) and reports whether the write happened.
// Out-of-range indices leave the matrix (and its sorted flag) untouched.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) bool {
	if !inRange(row, m.r) || !inRange(col, m.c) {
		return false
	}
	m.data[row*m.c+col] = v
	m.markDirty()

	return true
}

// SetAll assigns v to every cell.
// Complexity: O(r*c).
func (m *Matrix[T]) SetAll(v T) {
	for i := range m.data {
		m.data[i] = v
	}
	m.markDirty()
}

// Row returns a copy of row i, or (nil, false) when i is out of range.
func (m *Matrix[T]) Row(i int) ([]T, bool) {
	if !inRange(i, m.r) {
		return nil, false
	}

	return append([]T(nil), m.row(i)...), true
}

// Column returns a copy of column j, or (nil, false) when j is out of range.
func (m *Matrix[T]) Column(j int) ([]T, bool) {
	if !inRange(j, m.c) {
		return nil, false
	}
	col := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+j]
	}

	return col, true
}

// Values returns a row-major copy of the grid as a slice of rows.
// Complexity: O(r*c).
func (m *Matrix[T]) Values() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = append([]T(nil), m.row(i)...)
	}

	return out
}

// Clone returns a deep copy that shares no cell storage with m.
// The sorted flag, output writer and random generator carry over; the
// generator is shared, so clones must stay on the owner's goroutine.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := *m
	cp.data = append([]T(nil), m.data...)

	return &cp
}
