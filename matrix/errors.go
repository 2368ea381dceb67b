// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors return these sentinels wrapped with call-site context;
// tests MUST check them via errors.Is. No method panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels
// are wrapped once, at the detection site, with matrixErrorf/denseErrorf.

var (
	// ErrInvalidDimension is returned when a requested shape has rows < 2 or cols < 2.
	// It is the only error produced by the grid's mutating and query surface.
	ErrInvalidDimension = errors.New("matrix: rows and cols must be >= 2")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Only the explicit accessor At reports it; the rest of the API tolerates bad indices.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRagged indicates that literal row data has rows of different lengths.
	ErrRagged = errors.New("matrix: rows have different lengths")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with method context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
