// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and index checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package matrix

// ValidateShape – Ensures a requested grid shape is legal.
//
// Returns ErrInvalidDimension if rows < MinDimension or cols < MinDimension.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < MinDimension || cols < MinDimension {
		return ErrInvalidDimension
	}

	return nil
}

// ValidateRows – Ensures literal row data forms a legal rectangular grid.
//
// Order: shape first (row count, then first row length), then raggedness.
// Returns ErrInvalidDimension or ErrRagged.
// Complexity: O(rows).
func ValidateRows[T Number](rows [][]T) error {
	if len(rows) < MinDimension {
		return ErrInvalidDimension
	}
	cols := len(rows[0])
	if err := ValidateShape(len(rows), cols); err != nil {
		return err
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return ErrRagged
		}
	}

	return nil
}

// inRange reports whether 0 ≤ i < n.
func inRange(i, n int) bool {
	return i >= 0 && i < n
}
