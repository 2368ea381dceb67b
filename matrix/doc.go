// Package matrix offers a small, mutable, row-major numeric grid.
//
// The matrix package provides:
//
//   - Matrix[T], a rows×cols grid (both ≥ 2) over any integer or float type.
//   - Element access (At, Set, SetAll), row/column copies and printing.
//   - Aggregates: RowSum, RowAverage, Min, Max.
//   - In-place transforms: Sort (per row, ascending), Rotate (transpose),
//     Randomize (uniform integers in an inclusive range).
//   - Membership search (Find) that switches to per-row binary search while
//     every row is known to be sorted.
//
// Indices passed to Set, RowSum, RowAverage and the Print* family are
// tolerated when out of range: the call has no effect or yields zero. Use At
// when an out-of-range index must be reported as ErrOutOfRange.
//
// A Matrix is owned by a single goroutine; callers sharing one across
// goroutines must guard it themselves.
package matrix
