// Package matrix_test contains unit tests for the ASCII and LaTeX renderers.
package matrix_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestString_4x3(t *testing.T) {
	m := MustRows(t, render4x3)

	expected := "" +
		"+-              -+\n" +
		"| 2    3      5  |\n" +
		"| 3    65     32 |\n" +
		"| -6   -6989  0  |\n" +
		"| -68  1      1  |\n" +
		"+-              -+"

	require.Equal(t, expected, m.String())
	require.Equal(t, expected, fmt.Sprint(m))
}

func TestString_ColumnVector(t *testing.T) {
	m, err := matrix.NewColumnVector([]int{3, 65, -6989, -1})
	require.NoError(t, err)

	expected := "" +
		"+-     -+\n" +
		"| 3     |\n" +
		"| 65    |\n" +
		"| -6989 |\n" +
		"| -1    |\n" +
		"+-     -+"

	require.Equal(t, expected, m.String())
}

func TestString_RowVectorAndScalar(t *testing.T) {
	row, err := matrix.NewRowVector([]string{"a", "bb", "ccc"})
	require.NoError(t, err)
	require.Equal(t, "+-          -+\n| a  bb  ccc |\n+-          -+", row.String())

	one, err := matrix.NewColumnVector([]float64{2.5})
	require.NoError(t, err)
	require.Equal(t, "+-   -+\n| 2.5 |\n+-   -+", one.String())
}

// TestString_RuneWidth pads by runes, not bytes.
func TestString_RuneWidth(t *testing.T) {
	m := MustRows(t, [][]string{{"π", "x"}, {"ab", "y"}})
	require.Equal(t, "+-     -+\n| π   x |\n| ab  y |\n+-     -+", m.String())
}

func TestRenderers_NilReceiver(t *testing.T) {
	var m *matrix.Matrix[int]
	require.NotPanics(t, func() {
		require.Equal(t, "<nil>", m.String())
		require.Equal(t, "<nil>", m.LaTeX())
	})
}

func TestLaTeX_4x3(t *testing.T) {
	m := MustRows(t, render4x3)

	expected := "\\begin{bmatrix}\n" +
		"2 & 3 & 5\\\\\n" +
		"3 & 65 & 32\\\\\n" +
		"-6 & -6989 & 0\\\\\n" +
		"-68 & 1 & 1\\\\\n" +
		"\\end{bmatrix}\n"

	require.Equal(t, expected, m.LaTeX())
}

func TestLaTeX_NoEscaping(t *testing.T) {
	m := MustRows(t, [][]string{{`\alpha`, "x_1"}})
	require.Equal(t, "\\begin{bmatrix}\n\\alpha & x_1\\\\\n\\end{bmatrix}\n", m.LaTeX())
}

func TestFprint(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})

	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, m))
	require.Equal(t, m.String()+"\n", buf.String())

	buf.Reset()
	require.NoError(t, matrix.FprintLaTeX(&buf, m))
	require.Equal(t, m.LaTeX(), buf.String())

	require.ErrorIs(t, matrix.Fprint[int](&buf, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.FprintLaTeX[int](&buf, nil), matrix.ErrNilMatrix)
}
