// Package matrix_test provides benchmarks for the banded assembly and solve path.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/csaps/matrix"
)

// benchSizes are the system sizes to benchmark.
var benchSizes = []int{128, 1024, 8192}

// sinks to defeat dead-code elimination
var (
	sinkS *matrix.Sparse
	sinkD *matrix.Dense
)

// tridiag returns an SPD tridiagonal matrix of order n.
func tridiag(b *testing.B, n int) *matrix.Sparse {
	off := make([]float64, n)
	mid := make([]float64, n)
	for i := range mid {
		off[i], mid[i] = 1, 4
	}
	s, err := matrix.Diags([][]float64{off, mid, off}, []int{-1, 0, 1}, n, n)
	if err != nil {
		b.Fatal(err)
	}

	return s
}

func BenchmarkMulSparse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := tridiag(b, n)
			at := a.Transpose()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := matrix.MulSparse(a, at)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = p
			}
		})
	}
}

func BenchmarkSolveSym(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := tridiag(b, n)
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i%7) - 3
			}
			bd, err := matrix.NewDenseFrom(n, 1, rhs)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.SolveSym(a, bd)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = x
			}
		})
	}
}
