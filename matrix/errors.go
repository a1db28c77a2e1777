// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites wrap
// with fmt.Errorf("Matrix.<Method>(...): %w", ErrX); callers still match with
// errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> dimension mismatch -> square -> singular.

var (
	// ErrInvalidDimensions indicates empty input or a non-positive row/column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a linear, row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths: ragged rows/columns,
	// an element count not divisible by the requested count, or a replacement
	// column / right-hand side whose length differs from Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by solvers when the coefficient determinant is zero
	// (Cramer) or a zero pivot is met during non-pivoting elimination (LU).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOrderTooLarge guards the factorial-time cofactor expansion: the matrix
	// order exceeds the configured recursion bound (see WithMaxOrder).
	ErrOrderTooLarge = errors.New("matrix: order exceeds cofactor expansion limit")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange

// matrixErrorf wraps err with a method tag and its integer arguments:
// "Matrix.At(3,1): matrix: index out of range".
func matrixErrorf(method string, err error, args ...int) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("Matrix.%s: %w", method, err)
	case 1:
		return fmt.Errorf("Matrix.%s(%d): %w", method, args[0], err)
	default:
		return fmt.Errorf("Matrix.%s(%d,%d): %w", method, args[0], args[1], err)
	}
}
