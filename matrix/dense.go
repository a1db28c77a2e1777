// SPDX-License-Identifier: MIT

// Package matrix - column-major storage & safe accessors.
//
// Purpose:
//   - Keep a flat column-major buffer with the explicit index formula col*rows + row.
//   - Guarantee safety at the public surface: At/Set/AtIndex/SetIndex return errors
//     instead of panicking.
//   - Exclusive ownership: every constructor and Clone copy their data, so no two
//     Matrix values ever share a buffer.
//
// Complexity quicksheet:
//   - At/Set/AtIndex/SetIndex: O(1); Clone/Elements/RowMajor: O(r*c); Row/Column: O(c)/O(r).
package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAtIndex  = "AtIndex"
	ctxSetIndex = "SetIndex"
	ctxRow      = "Row"
	ctxColumn   = "Column"
)

// Matrix is a rows×cols table of T stored in column-major order.
//   - elements holds rows*cols values; (row, col) lives at col*rows + row.
//   - rows and cols are fixed after construction; content is mutable.
//
// A column vector is a Matrix with Cols()==1, a row vector one with Rows()==1.
// Matrix performs no internal synchronization: concurrent reads are safe,
// concurrent writes to one instance must be serialized by the caller.
type Matrix[T any] struct {
	elements []T // column-major storage (len == rows*cols)
	rows     int // row count (>=1)
	cols     int // column count (>=1)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of stored elements, Rows()*Cols().
func (m *Matrix[T]) Len() int { return len(m.elements) }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// Elements returns a copy of the column-major storage.
// Mutating the result never affects m.
// Complexity: O(r*c).
func (m *Matrix[T]) Elements() []T {
	out := make([]T, len(m.elements))
	copy(out, m.elements)

	return out
}

// colMajorIndex bounds-checks (row, col) and returns the column-major offset.
// MAIN DESCRIPTION:
//   - Single source of truth for 2-D bounds semantics.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < rows and 0 ≤ col < cols.
//   - Stage 2: compute col*rows + row.
//
// Returns:
//   - (offset, nil) on success; (0, ErrOutOfRange) otherwise. Public callers
//     wrap the sentinel with their own method tag and coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) colMajorIndex(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Column-major offset: j*r + i.
	return col*m.rows + row, nil
}

// rowMajorIndex maps (row, col) to the offset the same cell would have in a
// row-major buffer of this shape. Callers guarantee the indices are in range.
func (m *Matrix[T]) rowMajorIndex(row, col int) int {
	return row*m.cols + col
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via colMajorIndex (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.colMajorIndex(row, col)
	if err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, err, row, col)
	}

	return m.elements[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// All other elements are left untouched.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.colMajorIndex(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, err, row, col)
	}
	m.elements[off] = v

	return nil
}

// AtIndex returns the i-th element in column-major order: index 0..Rows()-1
// walks down column 0, then column 1 follows, and so on. For a vector this is
// simply its i-th entry.
// Complexity: O(1).
func (m *Matrix[T]) AtIndex(i int) (T, error) {
	if i < 0 || i >= len(m.elements) {
		var zero T
		return zero, matrixErrorf(ctxAtIndex, ErrOutOfRange, i)
	}

	return m.elements[i], nil
}

// SetIndex overwrites the i-th element in column-major order.
// Complexity: O(1).
func (m *Matrix[T]) SetIndex(i int, v T) error {
	if i < 0 || i >= len(m.elements) {
		return matrixErrorf(ctxSetIndex, ErrOutOfRange, i)
	}
	m.elements[i] = v

	return nil
}

// Row returns a copy of row r, left to right.
// Complexity: O(c).
func (m *Matrix[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.rows {
		return nil, matrixErrorf(ctxRow, ErrOutOfRange, r)
	}
	out := make([]T, m.cols)
	for j := 0; j < m.cols; j++ {
		out[j] = m.elements[j*m.rows+r]
	}

	return out, nil
}

// Column returns a copy of column c, top to bottom.
// Complexity: O(r).
func (m *Matrix[T]) Column(c int) ([]T, error) {
	if c < 0 || c >= m.cols {
		return nil, matrixErrorf(ctxColumn, ErrOutOfRange, c)
	}
	out := make([]T, m.rows)
	copy(out, m.elements[c*m.rows:(c+1)*m.rows])

	return out, nil
}

// RowMajor returns a copy of the elements in row-major order, the inverse of
// the permutation applied by NewFromRowMajor.
// Complexity: O(r*c).
func (m *Matrix[T]) RowMajor() []T {
	out := make([]T, len(m.elements))
	var i, j int
	for j = 0; j < m.cols; j++ {
		for i = 0; i < m.rows; i++ {
			out[m.rowMajorIndex(i, j)] = m.elements[j*m.rows+i]
		}
	}

	return out
}

// Clone returns a deep copy with the same shape.
// The returned Matrix is independent of the original.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		elements: m.Elements(),
		rows:     m.rows,
		cols:     m.cols,
	}
}
