// Package matrix_test provides benchmarks for grid operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
)

// benchSizes are the square grid sizes to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkB bool
	sinkI int
)

// mustRandom allocates an n×n grid of values in [0, 4n) or aborts the benchmark.
func mustRandom(b *testing.B, n int, seed uint64) *matrix.Matrix[int] {
	b.Helper()
	m, err := matrix.Zeros[int](n, n, matrix.WithSeed(seed))
	if err != nil {
		b.Fatal(err)
	}
	m.Randomize(0, 4*n)

	return m
}

// BenchmarkFind compares the linear and binary search paths on the same data.
func BenchmarkFind(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("linear/n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = m.Find(-1) // absent: worst case
			}
		})
		b.Run(fmt.Sprintf("binary/n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 1337)
			m.Sort()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = m.Find(-1)
			}
		})
	}
}

func BenchmarkSort(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				m.Randomize(0, 4*n)
				b.StartTimer()
				m.Sort()
			}
		})
	}
}

func BenchmarkRotate(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Rotate()
			}
			sinkI = m.Rows()
		})
	}
}

func BenchmarkRowSum(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = m.RowSum(i % n)
			}
		})
	}
}
