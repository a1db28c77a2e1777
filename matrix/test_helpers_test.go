// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep constructor boilerplate out of the table-driven tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// grid4x3 is the 4×3 fixture used across storage tests; its column-major
// storage is colMajor4x3.
var grid4x3 = [][]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{10, 11, 12},
}

var colMajor4x3 = []int{1, 4, 7, 10, 2, 5, 8, 11, 3, 6, 9, 12}

// render4x3 is the fixture shared by the renderer tests.
var render4x3 = [][]int{
	{2, 3, 5},
	{3, 65, 32},
	{-6, -6989, 0},
	{-68, 1, 1},
}

// MustRows builds a matrix from rows or fails the test.
func MustRows[T any](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T any](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustDet computes the cofactor determinant or fails the test.
func MustDet[T matrix.Field](t testing.TB, m *matrix.Matrix[T], opts ...matrix.Option) T {
	t.Helper()
	d, err := matrix.Determinant(m, opts...)
	require.NoError(t, err)

	return d
}

// randomSquare returns an n×n matrix with entries in [-25, 25), seeded for
// reproducibility. Diagonal entries are shifted away from zero so the matrix
// is strictly diagonally dominant (nonsingular, no zero LU pivots).
func randomSquare(t testing.TB, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		var off float64
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*50 - 25
			if i != j {
				if rows[i][j] < 0 {
					off -= rows[i][j]
				} else {
					off += rows[i][j]
				}
			}
		}
		rows[i][i] = off + 1 + rng.Float64()
	}

	return MustRows(t, rows)
}

// mulVec returns a·x computed through the public accessors.
func mulVec(t testing.TB, a *matrix.Matrix[float64], x []float64) []float64 {
	t.Helper()
	out := make([]float64, a.Rows())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			out[i] += MustAt(t, a, i, j) * x[j]
		}
	}

	return out
}
