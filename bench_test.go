// Package csaps_test provides end-to-end benchmarks for the generic facade.
package csaps_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/csaps"
	"github.com/katalvlaran/csaps/ndarray"
)

var sinkA *ndarray.Array[float64]

func BenchmarkMakeEvaluate(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := make([]float64, n)
			yv := make([]float64, n)
			for i := range x {
				x[i] = float64(i) / float64(n-1)
				yv[i] = math.Cos(6*x[i]) + 0.05*math.Sin(91*x[i])
			}
			y, err := ndarray.FromSlice(yv, n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := csaps.Make(x, y)
				if err != nil {
					b.Fatal(err)
				}
				v, err := s.Evaluate(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = v
			}
		})
	}
}

func BenchmarkMakeGrid(b *testing.B) {
	b.ReportAllocs()
	const n = 64
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i)
	}
	yv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			yv[i*n+j] = math.Sin(float64(i)/8) * math.Cos(float64(j)/5)
		}
	}
	y, err := ndarray.FromSlice(yv, n, n)
	if err != nil {
		b.Fatal(err)
	}
	x := [][]float64{axis, axis}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := csaps.MakeGrid(x, y)
		if err != nil {
			b.Fatal(err)
		}
		v, err := g.Evaluate(x)
		if err != nil {
			b.Fatal(err)
		}
		sinkA = v
	}
}
