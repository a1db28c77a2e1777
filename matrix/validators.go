// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating nil/shape/length checks here.
//  - Return validator-tagged sentinel errors so call sites can wrap uniformly.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows()==Cols().
// Returns ErrNilMatrix or ErrNonSquare.
func ValidateSquare[T any](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare))
	}

	return nil
}

// ValidateVecLen ensures a vector of length n matches Rows().
// Assumes m is non-nil. Returns ErrDimensionMismatch.
func ValidateVecLen[T any](m *Matrix[T], n int) error {
	if n != m.rows {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("got %d, want %d: %w", n, m.rows, ErrDimensionMismatch))
	}

	return nil
}

// ValidateColumn ensures 0 ≤ col < Cols(). Assumes m is non-nil.
func ValidateColumn[T any](m *Matrix[T], col int) error {
	if col < 0 || col >= m.cols {
		return validatorErrorf("ValidateColumn",
			fmt.Errorf("column %d of %d: %w", col, m.cols, ErrOutOfRange))
	}

	return nil
}
