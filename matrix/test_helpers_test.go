// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for grid tests.
//   • Dump grid state with spew on assertion failures.

package matrix_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

// fixedSeed makes Randomize reproducible across runs.
const fixedSeed uint64 = 42

// MustFromRows builds a matrix from literal rows or fails the test.
func MustFromRows[T matrix.Number](t *testing.T, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustNew allocates an r×c matrix filled with fill or fails the test.
func MustNew[T matrix.Number](t *testing.T, r, c int, fill T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(r, c, fill, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// requireRowsSorted asserts every row of m is non-decreasing.
func requireRowsSorted[T matrix.Number](t *testing.T, m *matrix.Matrix[T]) {
	t.Helper()
	for i, row := range m.Values() {
		for j := 1; j < len(row); j++ {
			require.LessOrEqualf(t, row[j-1], row[j], "row %d not sorted:\n%s", i, spew.Sdump(m.Values()))
		}
	}
}

// requireAllWithin asserts every cell of m lies in [lo, hi].
func requireAllWithin[T matrix.Number](t *testing.T, m *matrix.Matrix[T], lo, hi T) {
	t.Helper()
	for _, row := range m.Values() {
		for _, v := range row {
			if v < lo || v > hi {
				t.Fatalf("value %v outside [%v,%v]:\n%s", v, lo, hi, spew.Sdump(m.Values()))
			}
		}
	}
}
