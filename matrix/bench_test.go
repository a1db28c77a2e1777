// Package matrix_test provides benchmarks for the matrix package,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// benchOrders are the matrix orders to benchmark; cofactor expansion is
// factorial, so they stay small.
var benchOrders = []int{3, 5, 7}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkV []float64
	sinkF float64
	sinkS string
)

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchOrders {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomSquare(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkSolveCramer(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchOrders {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomSquare(b, n, 4242)
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i + 1)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.SolveCramer(a, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkNewFromRowMajor(b *testing.B) {
	b.ReportAllocs()
	src := make([]float64, 256*256)
	for i := range src {
		src[i] = float64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.NewFromRowMajor(src, 256)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkString(b *testing.B) {
	b.ReportAllocs()
	a := randomSquare(b, 16, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = a.String()
	}
}
