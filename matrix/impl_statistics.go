// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the grid's aggregate queries: per-row sum and average, global min and max.
//
// Determinism & Performance:
//   - Fixed i→j traversal over the flat buffer; no allocations.
//   - Out-of-range rows contribute nothing: RowSum returns 0 and RowAverage 0.0.

package matrix

import "slices"

// RowSum returns the sum of the elements of row, or 0 if row is out of range.
// Sums accumulate in T; overflow is not detected.
// Complexity: O(c).
func (m *Matrix[T]) RowSum(row int) T {
	if !inRange(row, m.r) {
		return 0
	}

	var sum T
	for _, v := range m.row(row) {
		sum += v
	}

	return sum
}

// RowAverage returns RowSum(row) / Cols() as float64, or 0.0 if row is out of range.
// Complexity: O(c).
func (m *Matrix[T]) RowAverage(row int) float64 {
	if !inRange(row, m.r) {
		return 0.0
	}

	return float64(m.RowSum(row)) / float64(m.c)
}

// Min returns the smallest element in the grid.
// The grid is never empty (≥ 2×2), so there is no error path.
// Complexity: O(r*c).
func (m *Matrix[T]) Min() T {
	return slices.Min(m.data)
}

// Max returns the largest element in the grid.
// Complexity: O(r*c).
func (m *Matrix[T]) Max() T {
	return slices.Max(m.data)
}
