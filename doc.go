// Package linalg is a small dense linear algebra toolkit: generic matrices
// stored in column-major order, determinants, and Cramer's rule, with ASCII
// and LaTeX renderers for showing the results.
//
// 🚀 What is inside?
//
//	• matrix/    : Matrix[T], constructors, accessors, Minor, Determinant,
//	               SolveCramer, String and LaTeX renderers
//	• matrix/ops/: LU decomposition, O(n³) determinant and Solve
//	               for float matrices
//	• cmd/cramer : command-line front end reading systems from TOML or YAML
//
// ✨ Highlights
//
//   - One generic type for numbers, strings, or anything fmt can print
//   - Every accessor reports out-of-range access as an error, never a panic
//   - Exact integer determinants via cofactor expansion; fast floats via LU
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int{{2, 1}, {1, 3}})
//	x, _ := matrix.SolveCramer(m, []int{5, 10}) // x = [1 3]
//	fmt.Println(m)
//
//	+-    -+
//	| 2  1 |
//	| 1  3 |
//	+-    -+
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
