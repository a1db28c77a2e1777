package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleNewFromRows shows the column-major storage behind a row-wise literal.
func ExampleNewFromRows() {
	m, _ := matrix.NewFromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	fmt.Println(m.Rows(), m.Cols(), m.Elements())
	// Output:
	// 2 3 [1 4 2 5 3 6]
}

// ExampleMatrix_String renders an aligned ASCII table.
func ExampleMatrix_String() {
	m, _ := matrix.NewColumnVector([]int{3, 65, -6989, -1})
	fmt.Println(m)
	// Output:
	// +-     -+
	// | 3     |
	// | 65    |
	// | -6989 |
	// | -1    |
	// +-     -+
}

// ExampleMatrix_LaTeX exports a bmatrix block.
func ExampleMatrix_LaTeX() {
	m, _ := matrix.NewFromRows([][]int{{1, -2}, {30, 4}})
	fmt.Print(m.LaTeX())
	// Output:
	// \begin{bmatrix}
	// 1 & -2\\
	// 30 & 4\\
	// \end{bmatrix}
}

// ExampleSolveCramer solves 2x + y - z = 8, -3x - y + 2z = -11, -2x + y + 2z = -3.
func ExampleSolveCramer() {
	a, _ := matrix.NewFromRows([][]int{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	det, _ := matrix.Determinant(a)
	x, err := matrix.SolveCramer(a, []int{8, -11, -3})
	fmt.Println(det, x, err)
	// Output:
	// -1 [2 3 -1] <nil>
}
