// Package matrix provides a small generic dense-matrix type with
// determinant, Cramer's rule and two text renderings.
//
// What & Why:
//
//	Matrix[T] is a rows×cols table stored in column-major order: element
//	(row, col) lives at linear index col*rows + row. Shape is fixed at
//	construction; content is mutable through Set, SetIndex and SetColumn.
//	A column vector is simply a Matrix with one column.
//
// Construction (all copy their input):
//
//	NewFromRows([][]T)              rows[i][j] -> (i, j)
//	NewFromColumns([][]T)           cols[j][i] -> (i, j)
//	NewFromColumnMajor([]T, nCols)  already column-major
//	NewFromRowMajor([]T, nRows)     permuted into column-major
//	NewColumnVector([]T), NewRowVector([]T)
//
// Algebra (T constrained by Field: signed integers and floats):
//
//	Minor, Determinant (cofactor expansion), SetColumn, WithColumnReplaced,
//	SolveCramer. Package ops adds an O(n³) LU determinant and solver for
//	floating-point matrices.
//
// Rendering (any T, via fmt.Sprint):
//
//	String() aligned ASCII table; LaTeX() amsmath bmatrix block.
//
// Errors:
//
//	Invalid data never panics: every failure is one of the sentinels in errors.go,
//	wrapped with call-site context and matched via errors.Is. Only the option
//	constructors panic, on nonsensical arguments.
//
// Concurrency:
//
//	No internal locking. Each Matrix exclusively owns its buffer; copies made
//	by Clone, Minor and WithColumnReplaced are independent.
package matrix
