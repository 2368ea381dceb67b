// SPDX-License-Identifier: MIT

// Package matrix: element constraint for the grid.
package matrix

import "golang.org/x/exp/constraints"

// Number is the set of element types a Matrix may hold: every built-in
// integer and floating-point type (and named types derived from them).
// Sums are accumulated in T; overflow is not detected.
type Number interface {
	constraints.Integer | constraints.Float
}

// MinDimension is the smallest legal row or column count.
const MinDimension = 2
