// SPDX-License-Identifier: MIT

// Package matrix provides the in-place transforms and the search of a Matrix:
// per-row sort, transpose, randomization and membership lookup. Every
// transform that changes cell contents or shape clears the sorted flag
// through markDirty; only Sort sets it.
package matrix

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Sort orders every row ascending in place and marks the matrix sorted.
// Calling Sort on an already sorted matrix leaves it unchanged.
// Complexity: O(r · c log c).
func (m *Matrix[T]) Sort() {
	for i := 0; i < m.r; i++ {
		slices.Sort(m.row(i))
	}
	m.sorted = true
}

// Find reports whether v occurs anywhere in the grid.
// While the matrix is sorted each row is binary-searched, O(r · log c);
// otherwise each row is scanned, O(r · c). Both paths agree on the result.
func (m *Matrix[T]) Find(v T) bool {
	// NaN equals nothing; BinarySearch would otherwise match it via cmp.Compare.
	if v != v {
		return false
	}
	for i := 0; i < m.r; i++ {
		row := m.row(i)
		if m.sorted {
			if _, found := slices.BinarySearch(row, v); found {
				return true
			}
			continue
		}
		if slices.Contains(row, v) {
			return true
		}
	}

	return false
}

// Rotate replaces the grid with its transpose: the new cell (i,j) is the old
// cell (j,i), and Rows/Cols swap.
// Stage 1 (Prepare): allocate a c×r buffer.
// Stage 2 (Execute): data[i*c + j] → res[j*r + i].
// Stage 3 (Finalize): swap dimensions, install buffer, mark dirty.
// Complexity: O(r·c) time and memory.
func (m *Matrix[T]) Rotate() {
	rows, cols := m.r, m.c
	res := make([]T, len(m.data))

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res[j*rows+i] = m.data[base+j]
		}
	}

	m.r, m.c = cols, rows
	m.data = res
	m.markDirty()
}

// Randomize assigns every cell an independent integer drawn uniformly from
// [lower, upper] (inclusive), computed in T's own domain so the draw never
// wraps. Reversed bounds are swapped. For floating-point T the draw covers
// the integers in [ceil(lower), floor(upper)], limited to ±2^53; when that
// interval is empty every cell is set to lower. NaN bounds leave the matrix
// untouched. The generator is the one resolved at construction (see
// WithSeed, WithRand).
// Complexity: O(r*c).
func (m *Matrix[T]) Randomize(lower, upper T) {
	if lower != lower || upper != upper {
		return
	}
	if lower > upper {
		lower, upper = upper, lower
	}

	var draw func() T
	switch {
	case isFloat[T]():
		lo := math.Max(math.Ceil(float64(lower)), -maxExactFloat)
		hi := math.Min(math.Floor(float64(upper)), maxExactFloat)
		if lo > hi {
			draw = func() T { return lower }
			break
		}
		a, b := int64(lo), int64(hi)
		draw = func() T { return T(float64(uniformInt64(m.rng, a, b))) }
	case isSigned[T]():
		a, b := int64(lower), int64(upper)
		draw = func() T { return T(uniformInt64(m.rng, a, b)) }
	default:
		a, b := uint64(lower), uint64(upper)
		draw = func() T { return T(uniformUint64(m.rng, a, b)) }
	}

	for i := range m.data {
		m.data[i] = draw()
	}
	m.markDirty()
}

// maxExactFloat is 2^53, the largest magnitude below which every integer is
// representable in a float64.
const maxExactFloat = 1 << 53

func isFloat[T Number]() bool {
	one := T(1)
	return one/2 != 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// uniformUint64 draws from [lo, hi]; lo <= hi.
func uniformUint64(r *rand.Rand, lo, hi uint64) uint64 {
	span := hi - lo
	if span == math.MaxUint64 {
		return r.Uint64()
	}

	return lo + r.Uint64N(span+1)
}

// uniformInt64 draws from [lo, hi]; lo <= hi. Flipping the sign bit maps
// int64 order onto uint64 order, so the full int64 range needs no special case.
func uniformInt64(r *rand.Rand, lo, hi int64) int64 {
	const signBit = 1 << 63
	v := uniformUint64(r, uint64(lo)^signBit, uint64(hi)^signBit)

	return int64(v ^ signBit)
}
