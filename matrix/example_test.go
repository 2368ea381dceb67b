package matrix_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvgrid/matrix"
)

// ExampleMatrix_Find shows that lookups agree before and after sorting.
func ExampleMatrix_Find() {
	m, _ := matrix.FromRows([][]int{{3, 1}, {4, 2}})
	fmt.Println(m.Find(4), m.Find(5))

	m.Sort()
	fmt.Print(m)
	fmt.Println(m.IsSorted(), m.Find(4), m.Find(5))

	// Output:
	// true false
	// [ 1 3 ]
	// [ 2 4 ]
	// true true false
}

// ExampleMatrix_Rotate transposes a grid and back.
func ExampleMatrix_Rotate() {
	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}}, matrix.WithOutput(os.Stdout))
	m.Rotate()
	m.Print()
	fmt.Println(m.Rows(), "x", m.Cols())

	// Output:
	// [ 1 4 ]
	// [ 2 5 ]
	// [ 3 6 ]
	// 3 x 2
}

// ExampleNew demonstrates construction errors and row statistics.
func ExampleNew() {
	if _, err := matrix.New(1, 4, 0); errors.Is(err, matrix.ErrInvalidDimension) {
		fmt.Println(err)
	}

	m, _ := matrix.New(2, 3, 1)
	m.Set(0, 2, 4)
	fmt.Println(m.RowSum(0), m.RowAverage(0), m.RowSum(9))

	// Output:
	// New(1,4): matrix: rows and cols must be >= 2
	// 6 2 0
}
