// SPDX-License-Identifier: MIT

// Package matrix: constructors.
//
// Every constructor copies its input into a freshly allocated column-major
// buffer, so later mutation of the caller's slices never reaches the Matrix.
// All shape violations are reported as sentinel errors, wrapped with the
// constructor name.
package matrix

import "fmt"

const (
	ctxNewColumnVector    = "NewColumnVector"
	ctxNewRowVector       = "NewRowVector"
	ctxNewFromRows        = "NewFromRows"
	ctxNewFromColumns     = "NewFromColumns"
	ctxNewFromColumnMajor = "NewFromColumnMajor"
	ctxNewFromRowMajor    = "NewFromRowMajor"
)

// builderErrorf wraps err with the constructor name.
func builderErrorf(ctor string, err error) error {
	return fmt.Errorf("%s: %w", ctor, err)
}

// NewColumnVector creates a len(values)×1 matrix holding values top to bottom.
//
// Errors:
//   - ErrInvalidDimensions when values is empty.
//
// Complexity: O(n).
func NewColumnVector[T any](values []T) (*Matrix[T], error) {
	if len(values) == 0 {
		return nil, builderErrorf(ctxNewColumnVector, ErrInvalidDimensions)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Matrix[T]{elements: buf, rows: len(values), cols: 1}, nil
}

// NewRowVector creates a 1×len(values) matrix. With a single row the
// column-major and row-major layouts coincide.
//
// Errors:
//   - ErrInvalidDimensions when values is empty.
func NewRowVector[T any](values []T) (*Matrix[T], error) {
	if len(values) == 0 {
		return nil, builderErrorf(ctxNewRowVector, ErrInvalidDimensions)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Matrix[T]{elements: buf, rows: 1, cols: len(values)}, nil
}

// NewFromRows builds a matrix from a slice of rows.
// MAIN DESCRIPTION:
//   - rows[i][j] becomes element (i, j); storage is filled columns-outer,
//     rows-inner so the result is column-major.
//
// Implementation:
//   - Stage 1: reject empty input and an empty first row.
//   - Stage 2: verify EVERY row has the same length as the first.
//   - Stage 3: copy into column-major order.
//
// Errors:
//   - ErrInvalidDimensions: no rows, or the first row is empty.
//   - ErrDimensionMismatch: some row length differs (reported with its index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, builderErrorf(ctxNewFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxNewFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}

	buf := make([]T, 0, r*c)
	var i, j int
	for j = 0; j < c; j++ { // columns outer
		for i = 0; i < r; i++ { // rows inner
			buf = append(buf, rows[i][j])
		}
	}

	return &Matrix[T]{elements: buf, rows: r, cols: c}, nil
}

// NewFromColumns builds a matrix from a slice of columns; cols[j][i] becomes
// element (i, j). Columns are already contiguous in column-major order, so
// they are appended as-is.
//
// Errors:
//   - ErrInvalidDimensions: no columns, or the first column is empty.
//   - ErrDimensionMismatch: some column length differs from the first.
//
// Complexity: O(r*c).
func NewFromColumns[T any](cols [][]T) (*Matrix[T], error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, builderErrorf(ctxNewFromColumns, ErrInvalidDimensions)
	}
	r, c := len(cols[0]), len(cols)

	buf := make([]T, 0, r*c)
	for j, col := range cols {
		if len(col) != r {
			return nil, fmt.Errorf("%s: column %d has %d elements, want %d: %w",
				ctxNewFromColumns, j, len(col), r, ErrDimensionMismatch)
		}
		buf = append(buf, col...)
	}

	return &Matrix[T]{elements: buf, rows: r, cols: c}, nil
}

// NewFromColumnMajor wraps a copy of elements, already in column-major order,
// into a matrix with numCols columns and len(elements)/numCols rows.
//
// Errors:
//   - ErrInvalidDimensions: numCols <= 0 or elements is empty.
//   - ErrDimensionMismatch: len(elements) is not a multiple of numCols.
func NewFromColumnMajor[T any](elements []T, numCols int) (*Matrix[T], error) {
	if numCols <= 0 || len(elements) == 0 {
		return nil, builderErrorf(ctxNewFromColumnMajor, ErrInvalidDimensions)
	}
	if len(elements)%numCols != 0 {
		return nil, fmt.Errorf("%s: %d elements into %d columns: %w",
			ctxNewFromColumnMajor, len(elements), numCols, ErrDimensionMismatch)
	}
	buf := make([]T, len(elements))
	copy(buf, elements)

	return &Matrix[T]{elements: buf, rows: len(elements) / numCols, cols: numCols}, nil
}

// NewFromRowMajor builds a matrix with numRows rows from elements given in
// row-major order, permuting them into column-major storage.
// MAIN DESCRIPTION:
//   - Column-major slot (row, col) pulls from row-major source row*cols + col.
//
// Errors:
//   - ErrInvalidDimensions: numRows <= 0 or elements is empty.
//   - ErrDimensionMismatch: len(elements) is not a multiple of numRows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRowMajor[T any](elements []T, numRows int) (*Matrix[T], error) {
	if numRows <= 0 || len(elements) == 0 {
		return nil, builderErrorf(ctxNewFromRowMajor, ErrInvalidDimensions)
	}
	if len(elements)%numRows != 0 {
		return nil, fmt.Errorf("%s: %d elements into %d rows: %w",
			ctxNewFromRowMajor, len(elements), numRows, ErrDimensionMismatch)
	}

	m := &Matrix[T]{
		elements: make([]T, 0, len(elements)),
		rows:     numRows,
		cols:     len(elements) / numRows,
	}
	var i, j int
	for j = 0; j < m.cols; j++ {
		for i = 0; i < m.rows; i++ {
			m.elements = append(m.elements, elements[m.rowMajorIndex(i, j)])
		}
	}

	return m, nil
}
