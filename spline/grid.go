// SPDX-License-Identifier: MIT

package spline

import (
	"github.com/katalvlaran/csaps/matrix"
	"github.com/katalvlaran/csaps/ndarray"
)

const (
	opFitGrid      = "FitGrid"
	opEvaluateGrid = "GridPP.Evaluate"
)

// GridPP is a tensor-product smoothing spline on an n-d grid.
//   - axis k of coeffs has extent pieces[k]*order[k] and the layout of a
//     univariate PP fitted along that axis.
//   - breaks[k] is shared with the caller, not copied.
//
// A GridPP is immutable once built and safe for concurrent Evaluate calls.
type GridPP struct {
	ndim   int
	order  []int
	pieces []int
	breaks [][]float64
	smooth []float64
	coeffs *ndarray.Array[float64]
}

// cyclicAxes returns [nd-1, 0, 1, ..., nd-2]: the last axis moves to the front.
func cyclicAxes(nd int) []int {
	axes := make([]int, nd)
	axes[0] = nd - 1
	for ax := 0; ax < nd-1; ax++ {
		axes[ax+1] = ax
	}

	return axes
}

// FitGrid fits a tensor-product smoothing spline to y over the grid x.
// MAIN DESCRIPTION:
//   - y has shape [len(x[0]), ..., len(x[D-1])].
//   - weights/smooth are nil or hold one (possibly nil) entry per axis.
//
// Implementation:
//   - Stage 1: validate the grid, weights and smooth values.
//   - Stage 2: for ax = D-1 .. 0: flatten the current array to 2-d over its
//     last axis, fit along it, put the coefficient extent in place of that
//     axis and rotate the axes so the next target axis becomes the last one.
//   - Stage 3: after D rotations every axis is back in its original position.
//
// Errors:
//   - see ValidateGridData; ErrSolve when an axis system cannot be factorized.
//
// Complexity:
//   - Time O(D·numel(coeffs)), Space O(numel(coeffs)).
func FitGrid(x [][]float64, y *ndarray.Array[float64], weights [][]float64, smooth []*float64) (*GridPP, error) {
	if err := ValidateGridData(x, y, weights, smooth); err != nil {
		return nil, err
	}

	nd := y.Ndim()
	g := &GridPP{
		ndim:   nd,
		order:  make([]int, nd),
		pieces: make([]int, nd),
		breaks: make([][]float64, nd),
		smooth: make([]float64, nd),
	}
	rotate := cyclicAxes(nd)
	coeffs := y

	for ax := nd - 1; ax >= 0; ax-- {
		var w []float64
		if weights != nil {
			w = weights[ax]
		}
		var s *float64
		if smooth != nil {
			s = smooth[ax]
		}

		y2, err := ndarray.To2DSimple(coeffs)
		if err != nil {
			return nil, splineErrorf(opFitGrid, err)
		}
		shape2 := y2.Shape()
		yd, err := matrix.NewDenseFrom(shape2[0], shape2[1], y2.Data())
		if err != nil {
			return nil, splineErrorf(opFitGrid, err)
		}

		pp, p, err := FitUnivariate(x[ax], yd, w, s)
		if err != nil {
			return nil, err
		}
		g.order[ax], g.pieces[ax], g.breaks[ax], g.smooth[ax] = pp.order, pp.pieces, x[ax], p

		coeffs, err = unfoldRotate(pp.coeffs, coeffs.Shape(), pp.pieces*pp.order, rotate)
		if err != nil {
			return nil, splineErrorf(opFitGrid, err)
		}
	}
	g.coeffs = coeffs

	return g, nil
}

// unfoldRotate reshapes a 2-d result back to shape with its last extent set
// to last, then applies the cyclic axis rotation.
func unfoldRotate(m *matrix.Dense, shape []int, last int, rotate []int) (*ndarray.Array[float64], error) {
	shape[len(shape)-1] = last
	a, err := ndarray.FromSlice(m.RawData(), shape...)
	if err != nil {
		return nil, err
	}

	return a.Permute(rotate...)
}

// Ndim returns the grid dimensionality.
func (g *GridPP) Ndim() int { return g.ndim }

// Order returns the per-axis polynomial orders.
func (g *GridPP) Order() []int { return append([]int(nil), g.order...) }

// Pieces returns the per-axis piece counts.
func (g *GridPP) Pieces() []int { return append([]int(nil), g.pieces...) }

// Breaks returns the per-axis breakpoints (shared, do not modify).
func (g *GridPP) Breaks() [][]float64 { return g.breaks }

// Smooth returns the per-axis smoothing parameters used.
func (g *GridPP) Smooth() []float64 { return append([]float64(nil), g.smooth...) }

// Coeffs returns the tensor-product coefficient array (shared, do not modify).
func (g *GridPP) Coeffs() *ndarray.Array[float64] { return g.coeffs }

// Evaluate computes the spline on the grid spanned by xi; the result has
// shape [len(xi[0]), ..., len(xi[D-1])].
//
// Implementation:
//   - Same traversal as FitGrid: for ax = D-1 .. 0 evaluate along the last
//     axis, put len(xi[ax]) in place of its extent and rotate the axes.
//
// Errors:
//   - ErrNotFitted for a nil receiver; see ValidateGridQuery for xi.
func (g *GridPP) Evaluate(xi [][]float64) (*ndarray.Array[float64], error) {
	if g == nil || g.coeffs == nil {
		return nil, ErrNotFitted
	}
	if err := ValidateGridQuery(g.ndim, xi); err != nil {
		return nil, err
	}

	rotate := cyclicAxes(g.ndim)
	values := g.coeffs

	for ax := g.ndim - 1; ax >= 0; ax-- {
		c2, err := ndarray.To2DSimple(values)
		if err != nil {
			return nil, splineErrorf(opEvaluateGrid, err)
		}
		shape2 := c2.Shape()
		cd, err := matrix.NewDenseFrom(shape2[0], shape2[1], c2.Data())
		if err != nil {
			return nil, splineErrorf(opEvaluateGrid, err)
		}

		v, err := EvaluatePP(g.order[ax], g.pieces[ax], g.breaks[ax], cd, xi[ax])
		if err != nil {
			return nil, splineErrorf(opEvaluateGrid, err)
		}

		values, err = unfoldRotate(v, values.Shape(), len(xi[ax]), rotate)
		if err != nil {
			return nil, splineErrorf(opEvaluateGrid, err)
		}
	}

	return values, nil
}
