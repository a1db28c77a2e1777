// SPDX-License-Identifier: MIT

// Package matrix - cofactor determinant & Cramer's rule.
//
// Purpose:
//   - Minor: copy a matrix without one row and one column.
//   - Determinant: Laplace (cofactor) expansion, exact for integer kinds.
//   - SetColumn / WithColumnReplaced: column substitution in place or on a copy.
//   - SolveCramer: x[i] = det(A_i) / det(A) where A_i has column i replaced by b.
//
// These are package-level generics rather than methods: Go methods cannot
// tighten the receiver's type parameter from any to Field.
//
// Complexity quicksheet:
//   - Minor: O(r*c); Determinant: O(n!) time, n levels of recursion;
//     SolveCramer: (n+1) determinants. See package ops for the O(n³) LU route.
package matrix

import "fmt"

const (
	opMinor              = "Minor"
	opDeterminant        = "Determinant"
	opSetColumn          = "SetColumn"
	opWithColumnReplaced = "WithColumnReplaced"
	opSolveCramer        = "SolveCramer"
)

// opErrorf wraps err as "<op>: <err>".
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Minor returns the (r-1)×(c-1) matrix obtained by deleting skipRow and skipCol.
// MAIN DESCRIPTION:
//   - Traverses columns outer, rows inner (like NewFromRows), so the output
//     buffer is itself valid column-major storage.
//
// Errors:
//   - ErrNilMatrix for nil m.
//   - ErrOutOfRange when skipRow or skipCol is outside the matrix.
//   - ErrInvalidDimensions when m has a single row or column (no minor exists).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Minor[T any](m *Matrix[T], skipRow, skipCol int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMinor, err)
	}
	if skipRow < 0 || skipRow >= m.rows || skipCol < 0 || skipCol >= m.cols {
		return nil, matrixErrorf(opMinor, ErrOutOfRange, skipRow, skipCol)
	}
	if m.rows < 2 || m.cols < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions, skipRow, skipCol)
	}

	return minor(m, skipRow, skipCol), nil
}

// minor is Minor without validation; callers guarantee a ≥2×2 matrix and
// in-range skip indices.
func minor[T any](m *Matrix[T], skipRow, skipCol int) *Matrix[T] {
	out := &Matrix[T]{
		elements: make([]T, 0, (m.rows-1)*(m.cols-1)),
		rows:     m.rows - 1,
		cols:     m.cols - 1,
	}
	var i, j int
	for j = 0; j < m.cols; j++ {
		if j == skipCol {
			continue
		}
		for i = 0; i < m.rows; i++ {
			if i == skipRow {
				continue
			}
			out.elements = append(out.elements, m.elements[j*m.rows+i])
		}
	}

	return out
}

// Determinant computes det(m) by cofactor expansion.
// MAIN DESCRIPTION:
//   - 1×1: the single element.
//   - 2×2: closed form a00*a11 - a01*a10.
//   - n>2: Σ_c (-1)^(p+c) * m[p,c] * det(minor(p,c)) along pivot row p
//     (WithPivotRow, default 0); nested minors expand along their row 0.
//
// Implementation:
//   - Stage 1: validate square, pivot row and order bound.
//   - Stage 2: recurse; terms are added for even p+c and subtracted for odd,
//     so integer kinds stay exact and floats follow a fixed evaluation order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange (pivot row), ErrOrderTooLarge.
//
// Complexity:
//   - Time O(n!), recursion depth n (bounded by WithMaxOrder).
func Determinant[T Field](m *Matrix[T], opts ...Option) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, opErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	if o.pivotRow >= m.rows {
		return zero, matrixErrorf(opDeterminant, ErrOutOfRange, o.pivotRow)
	}
	if m.rows > o.maxOrder {
		return zero, opErrorf(opDeterminant,
			fmt.Errorf("order %d > %d: %w", m.rows, o.maxOrder, ErrOrderTooLarge))
	}

	return cofactorDet(m, o.pivotRow), nil
}

// cofactorDet is the unchecked recursion behind Determinant.
func cofactorDet[T Field](m *Matrix[T], pivotRow int) T {
	n := m.rows
	e := m.elements
	switch n {
	case 1:
		return e[0]
	case 2:
		// column-major: a00=e[0], a10=e[1], a01=e[2], a11=e[3]
		return e[0]*e[3] - e[2]*e[1]
	}

	var det T
	var c int
	for c = 0; c < n; c++ {
		sub := cofactorDet(minor(m, pivotRow, c), 0)
		term := e[c*n+pivotRow] * sub
		if (pivotRow+c)%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}

	return det
}

// SetColumn overwrites column col of m in place with values (top to bottom).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when len(values) != Rows();
//     ErrOutOfRange when col is outside [0, Cols()).
//
// Complexity: O(r).
func SetColumn[T any](m *Matrix[T], col int, values []T) error {
	if err := ValidateNotNil(m); err != nil {
		return opErrorf(opSetColumn, err)
	}
	if err := ValidateVecLen(m, len(values)); err != nil {
		return opErrorf(opSetColumn, err)
	}
	if err := ValidateColumn(m, col); err != nil {
		return opErrorf(opSetColumn, err)
	}
	copy(m.elements[col*m.rows:(col+1)*m.rows], values)

	return nil
}

// WithColumnReplaced returns a copy of m whose column col is values.
// m itself is never mutated, including on error.
//
// Errors: as SetColumn.
// Complexity: O(r*c).
func WithColumnReplaced[T any](m *Matrix[T], col int, values []T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opWithColumnReplaced, err)
	}
	out := m.Clone()
	if err := SetColumn(out, col, values); err != nil {
		return nil, opErrorf(opWithColumnReplaced, err)
	}

	return out, nil
}

// SolveCramer solves a·x = b for square a by Cramer's rule.
// MAIN DESCRIPTION:
//   - detA = det(a); for each i, x[i] = det(a with column i := b) / detA.
//
// Implementation:
//   - Stage 1: validate square a and len(b) == Rows().
//   - Stage 2: compute detA (pivot row from opts).
//   - Stage 3: singular guard, see below.
//   - Stage 4: one determinant per unknown on an independent copy.
//
// Behavior highlights:
//   - detA == 0 returns ErrSingular. WithAllowSingular(true) skips the guard
//     for Float kinds, letting ±Inf/NaN propagate; Integer kinds keep the
//     guard because their division by zero panics.
//   - Integer kinds divide with truncation.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrOrderTooLarge, ErrSingular.
//
// Complexity:
//   - (n+1) cofactor determinants: O((n+1)·n!).
func SolveCramer[T Field](a *Matrix[T], b []T, opts ...Option) ([]T, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, opErrorf(opSolveCramer, err)
	}
	if err := ValidateVecLen(a, len(b)); err != nil {
		return nil, opErrorf(opSolveCramer, err)
	}
	o := gatherOptions(opts...)

	detA, err := Determinant(a, opts...)
	if err != nil {
		return nil, opErrorf(opSolveCramer, err)
	}
	if detA == 0 && (!o.allowSingular || !isFloat[T]()) {
		return nil, opErrorf(opSolveCramer, ErrSingular)
	}

	x := make([]T, a.cols)
	var i int
	for i = 0; i < a.cols; i++ {
		ai, err := WithColumnReplaced(a, i, b)
		if err != nil {
			return nil, opErrorf(opSolveCramer, err)
		}
		detAi, err := Determinant(ai, opts...)
		if err != nil {
			return nil, opErrorf(opSolveCramer, err)
		}
		x[i] = detAi / detA
	}

	return x, nil
}

// isFloat reports whether T's underlying kind is floating point:
// 1/2 truncates to 0 for every Integer kind.
func isFloat[T Field]() bool {
	one := T(1)
	return one/(one+one) != 0
}
