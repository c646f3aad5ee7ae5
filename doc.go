// SPDX-License-Identifier: MIT

// Package csaps fits cubic smoothing splines to univariate, multivariate
// and n-d gridded data and evaluates them.
//
// What is inside?
//
//	csaps/    generic facade: Make / MakeGrid with functional options,
//	            float32 or float64 data in and out.
//	spline/   the float64 core: univariate fit, piecewise evaluation,
//	            tensor-product grid fit and evaluation, validators.
//	ndarray/  n-d row-major arrays with axis permutation and the
//	            2-d folding used to fit along an arbitrary axis.
//	matrix/   dense and CSR/CSC sparse storage, banded construction
//	            (Diags/Diagonal) and the symmetric banded solver.
//
// Quick start:
//
//	x := []float64{1, 2, 3, 4, 5}
//	y, _ := ndarray.FromSlice([]float64{1.5, 3.5, 2.6, 1.2, 4.4}, 5)
//	s, err := csaps.Make(x, y)            // automatic smoothing
//	ys, err := s.Evaluate([]float64{1.5, 2.5})
//
//	s, err = csaps.Make(x, y, csaps.WithSmooth(0.85), csaps.WithWeights(w))
//
// Grid data:
//
//	g, err := csaps.MakeGrid([][]float64{x0, x1}, y2d, csaps.WithAxisSmooth(1, 0.5))
//	zs, err := g.Evaluate([][]float64{xi0, xi1})
//
// Configuration is consumed once by Make/MakeGrid; fitted values are
// immutable and safe for concurrent Evaluate calls. Errors match the
// sentinels re-exported here with errors.Is.
package csaps
