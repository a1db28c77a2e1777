// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints.
// Construction, indexing and rendering accept any element type; determinant
// and Cramer's rule need an ordered field, elimination needs floating point.
package matrix

// Integer lists the built-in signed integer kinds. Division truncates, so
// Cramer's rule over integers is exact only when every ratio is integral.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float lists the built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Field is the constraint for element types that support + - * / together
// with == and <. Complex kinds are excluded: they are not ordered.
type Field interface {
	Integer | Float
}
