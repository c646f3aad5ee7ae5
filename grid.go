// SPDX-License-Identifier: MIT

package csaps

import (
	"github.com/katalvlaran/csaps/ndarray"
	"github.com/katalvlaran/csaps/spline"
	"golang.org/x/exp/constraints"
)

// GridSpline is a fitted tensor-product smoothing spline on an n-d grid.
type GridSpline[T constraints.Float] struct {
	g *spline.GridPP
}

// MakeGrid fits a tensor-product smoothing spline to y over the grid x,
// where y has shape [len(x[0]), ..., len(x[D-1])].
// Axes without WithAxisWeights use unit weights; axes without
// WithAxisSmooth select their smoothing parameter automatically.
//
// Errors:
//   - ErrInvalidInput with ErrAxis for an option naming an axis ≥ D.
//   - see Make for the remaining data checks, applied per axis.
func MakeGrid[T constraints.Float](x [][]T, y *ndarray.Array[T], opts ...GridOption) (*GridSpline[T], error) {
	o := gatherGridOptions(opts)
	weights, smooth, err := o.resolve(len(x))
	if err != nil {
		return nil, err
	}

	x64 := make([][]float64, len(x))
	for ax, v := range x {
		x64[ax] = toFloat64(v)
	}
	var y64 *ndarray.Array[float64]
	if y != nil {
		y64 = ndarray.Convert[float64](y)
	}

	g, err := spline.FitGrid(x64, y64, weights, smooth)
	if err != nil {
		return nil, err
	}

	return &GridSpline[T]{g: g}, nil
}

// Evaluate computes the spline on the grid spanned by xi; the result has
// shape [len(xi[0]), ..., len(xi[D-1])].
//
// Errors:
//   - ErrNotFitted for a nil receiver.
//   - ErrInvalidInput with ErrLengthMismatch, ErrEmptyQuery or ErrNonFinite.
func (g *GridSpline[T]) Evaluate(xi [][]T) (*ndarray.Array[T], error) {
	if g == nil {
		return nil, ErrNotFitted
	}
	xi64 := make([][]float64, len(xi))
	for ax, v := range xi {
		xi64[ax] = toFloat64(v)
	}
	v, err := g.g.Evaluate(xi64)
	if err != nil {
		return nil, err
	}

	return ndarray.Convert[T](v), nil
}

// Smooth returns the per-axis smoothing parameters used.
func (g *GridSpline[T]) Smooth() []T { return fromFloat64[T](g.g.Smooth()) }

// Ndim returns the grid dimensionality.
func (g *GridSpline[T]) Ndim() int { return g.g.Ndim() }

// PP returns the tensor-product piecewise-polynomial form (float64).
func (g *GridSpline[T]) PP() *spline.GridPP { return g.g }
