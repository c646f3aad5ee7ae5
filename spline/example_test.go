// SPDX-License-Identifier: MIT
package spline_test

import (
	"fmt"

	"github.com/katalvlaran/csaps/matrix"
	"github.com/katalvlaran/csaps/ndarray"
	"github.com/katalvlaran/csaps/spline"
)

// ExampleFitUnivariate smooths noisy samples with an automatic parameter.
func ExampleFitUnivariate() {
	x := []float64{1, 2, 3, 4, 5}
	y, _ := matrix.NewDenseFrom(1, 5, []float64{1.5, 3.5, 2.6, 1.2, 4.4})

	pp, p, err := spline.FitUnivariate(x, y, nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	ys, _ := pp.Evaluate(x)
	fmt.Printf("p = %.4f\n", p)
	fmt.Printf("%.4f\n", ys.RawData())
	// Output:
	// p = 0.9000
	// [1.7785 2.9586 2.4439 2.0222 3.9967]
}

// ExampleFitGrid evaluates a surface between its grid nodes.
func ExampleFitGrid() {
	x := [][]float64{{1, 2, 3}, {1, 2, 3, 4}}
	y, _ := ndarray.FromSlice([]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}, 3, 4)

	g, err := spline.FitGrid(x, y, nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	ys, _ := g.Evaluate([][]float64{{1.5}, {1, 2.5, 4}})
	fmt.Println(ys.Shape())
	fmt.Printf("%.2f\n", ys.Data())
	// Output:
	// [1 3]
	// [3.00 4.50 6.00]
}
