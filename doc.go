// Package lvgrid is a small in-memory playground for 2D numeric grids.
//
// What is in here?
//
//	matrix/      — Matrix[T]: a mutable rows×cols grid (≥ 2×2) with element access,
//	               row/column printing, row sums and averages, min/max, per-row sort,
//	               sorted-aware membership search, transpose and randomization.
//	cmd/lvgrid/  — demonstration driver that exercises every matrix operation.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{3, 1}, {4, 2}})
//	m.Sort()      // [ 1 3 ] / [ 2 4 ]
//	m.Find(4)     // true, via per-row binary search
//	m.Rotate()    // [ 1 2 ] / [ 3 4 ]
//
//	go run github.com/katalvlaran/lvgrid/cmd/lvgrid --rows 4 --cols 5
package lvgrid
