// Package ops provides elimination-based operations for floating-point
// matrices of the linalg/matrix package: Doolittle LU, an O(n³) determinant
// and an LU solver. They complement the factorial-time cofactor routines in
// package matrix and are cross-checked against them in tests.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ZeroPivot is the sentinel for detecting a zero pivot. No pivoting is
// performed, so an exact zero on U's diagonal stops the factorization.
const ZeroPivot = 0.0

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) with m = L·U.
// Returns matrix.ErrNonSquare for non-square input and matrix.ErrSingular on a
// zero pivot.
// Time Complexity: O(n³), where n = m.Rows(); Memory: O(n²) for L and U.
func LU[T matrix.Float](m *matrix.Matrix[T]) (*matrix.Matrix[T], *matrix.Matrix[T], error) {
	// Stage 1: Validate input is square
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	n := m.Rows()
	a := m.Elements() // column-major: A[i][j] = a[j*n+i]

	// Stage 2: Prepare L and U buffers (column-major)
	l := make([]T, n*n)
	u := make([]T, n*n)
	for i := 0; i < n; i++ {
		l[i*n+i] = 1 // unit diagonal
	}

	// Stage 3: Execute decomposition
	var (
		i, j, k int // loop indices
		sum     T   // accumulator for dot products
	)
	for i = 0; i < n; i++ {
		// U's row i for columns j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l[k*n+i] * u[j*n+k] // L[i][k]*U[k][j]
			}
			u[j*n+i] = a[j*n+i] - sum
		}
		if u[i*n+i] == ZeroPivot {
			return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, matrix.ErrSingular)
		}
		// L's column i for rows j > i
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l[k*n+j] * u[i*n+k] // L[j][k]*U[k][i]
			}
			l[i*n+j] = (a[i*n+j] - sum) / u[i*n+i]
		}
	}

	// Stage 4: Finalize and return
	L, err := matrix.NewFromColumnMajor(l, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.NewFromColumnMajor(u, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}

	return L, U, nil
}

// Det returns det(m) as the product of U's diagonal from LU.
// Without pivoting a zero pivot does not imply a zero determinant
// (e.g. [[0,1],[1,0]]), so in that case Det falls back to cofactor expansion
// and inherits its order limit.
// Complexity: O(n³) on the LU path.
func Det[T matrix.Float](m *matrix.Matrix[T]) (T, error) {
	_, U, err := LU(m)
	switch {
	case err == nil:
	case errors.Is(err, matrix.ErrSingular):
		det, cerr := matrix.Determinant(m)
		if cerr != nil {
			return 0, fmt.Errorf("Det: %w", cerr)
		}
		return det, nil
	default:
		return 0, fmt.Errorf("Det: %w", err)
	}

	det := T(1)
	n := U.Rows()
	for i := 0; i < n; i++ {
		d, _ := U.At(i, i) // in range by construction
		det *= d
	}

	return det, nil
}
