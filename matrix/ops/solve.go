package ops

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// Solve returns x with a·x = b using LU and forward/backward substitution.
// Blueprint:
//
//	Stage 1 (Validate): ensure a is square and len(b) == a.Rows().
//	Stage 2 (Decompose): A = L·U via Doolittle (no pivoting).
//	Stage 3 (Substitute): solve L·y = b, then U·x = y.
//
// Returns matrix.ErrSingular on a zero pivot; a nonsingular matrix with a
// zero leading minor needs pivoting and is reported the same way.
// Complexity: O(n³) time, O(n²) memory, where n = a.Rows().
func Solve[T matrix.Float](a *matrix.Matrix[T], b []T) ([]T, error) {
	// Stage 1: Validate
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := matrix.ValidateVecLen(a, len(b)); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 2: LU decomposition
	L, U, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	n := a.Rows()

	// Stage 3: substitution
	x := make([]T, n)
	substitute(L.Elements(), U.Elements(), n, b, make([]T, n), x)

	return x, nil
}

// substitute solves L·U·x = b in place of y and x, where l and u are the
// column-major factors from LU (l has a unit diagonal, u non-zero pivots).
func substitute[T matrix.Float](l, u []T, n int, b, y, x []T) {
	var (
		i, k int
		sum  T
	)
	// L·y = b
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += l[k*n+i] * y[k]
		}
		y[i] = b[i] - sum
	}
	// U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += u[k*n+i] * x[k]
		}
		x[i] = (y[i] - sum) / u[i*n+i]
	}
}
