// SPDX-License-Identifier: MIT

// Package matrix - text renderers.
//
// Two fixed formats, reproduced byte-for-byte by tests and docs tooling:
//
//	String():          LaTeX():
//	+-          -+     \begin{bmatrix}
//	| 2   3   5  |     2 & 3 & 5\\
//	| -6  65  32 |     -6 & 65 & 32\\
//	+-          -+     \end{bmatrix}
//
// Element text comes from fmt.Sprint, so any element type renders; types
// implementing fmt.Stringer control their own text.
package matrix

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ---------- Formatting literals ----------
const (
	_asciiRowOpen   = "| "
	_asciiRowClose  = " |"
	_asciiSep       = "  "
	_asciiEdgeOpen  = "+-"
	_asciiEdgeClose = "-+"
	_asciiEdgeFill  = " "

	_nilText = "<nil>"

	_latexBegin  = "\\begin{bmatrix}\n"
	_latexEnd    = "\\end{bmatrix}\n"
	_latexSep    = " & "
	_latexRowEnd = "\\\\\n"
)

// cellText converts one element to its display text.
func cellText[T any](v T) string { return fmt.Sprint(v) }

// String renders m as an aligned ASCII table.
// MAIN DESCRIPTION:
//   - Every column is left-aligned and right-padded to its own widest cell.
//   - Rows print as "| " + cells joined by two spaces + " |".
//   - Top and bottom borders are "+-" + spaces + "-+", as wide as a row.
//   - Lines are joined with "\n"; no trailing newline.
//
// Implementation:
//   - Stage 1: per column, convert cells and measure width (runes).
//   - Stage 2: reassemble padded cells row by row.
//   - Stage 3: frame with borders.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the cell texts.
func (m *Matrix[T]) String() string {
	if m == nil || len(m.elements) == 0 {
		return _nilText
	}

	// Stage 1: cell texts in storage order plus per-column widths.
	cells := make([]string, len(m.elements))
	widths := make([]int, m.cols)
	var i, j, w int
	for j = 0; j < m.cols; j++ {
		for i = 0; i < m.rows; i++ {
			s := cellText(m.elements[j*m.rows+i])
			cells[j*m.rows+i] = s
			if w = utf8.RuneCountInString(s); w > widths[j] {
				widths[j] = w
			}
		}
	}

	// Stage 2: rows.
	lines := make([]string, 0, m.rows+2)
	lines = append(lines, "") // top border placeholder
	var b strings.Builder
	for i = 0; i < m.rows; i++ {
		b.Reset()
		b.WriteString(_asciiRowOpen)
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(_asciiSep)
			}
			s := cells[j*m.rows+i]
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(s)))
		}
		b.WriteString(_asciiRowClose)
		lines = append(lines, b.String())
	}

	// Stage 3: borders sized from the last row.
	inner := utf8.RuneCountInString(lines[len(lines)-1]) - len(_asciiEdgeOpen) - len(_asciiEdgeClose)
	edge := _asciiEdgeOpen + strings.Repeat(_asciiEdgeFill, inner) + _asciiEdgeClose
	lines[0] = edge
	lines = append(lines, edge)

	return strings.Join(lines, "\n")
}

// LaTeX renders m as an amsmath bmatrix environment. Cells are joined with
// " & ", each row ends in "\\" and a newline, and the block ends with a newline.
// No padding and no escaping of the element text. A nil or empty matrix
// renders as "<nil>", as in String.
// Complexity: O(r*c).
func (m *Matrix[T]) LaTeX() string {
	if m == nil || len(m.elements) == 0 {
		return _nilText
	}
	var b strings.Builder
	_ = m.writeLaTeX(&b)

	return b.String()
}

// writeLaTeX streams the bmatrix block into w.
func (m *Matrix[T]) writeLaTeX(w io.Writer) error {
	if _, err := io.WriteString(w, _latexBegin); err != nil {
		return err
	}
	row := make([]string, m.cols)
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			row[j] = cellText(m.elements[j*m.rows+i])
		}
		if _, err := io.WriteString(w, strings.Join(row, _latexSep)+_latexRowEnd); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, _latexEnd)

	return err
}

// Fprint writes the ASCII table of m followed by a newline.
func Fprint[T any](w io.Writer, m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, m.String())

	return err
}

// FprintLaTeX writes the bmatrix block of m.
func FprintLaTeX[T any](w io.Writer, m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return m.writeLaTeX(w)
}
