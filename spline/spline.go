// SPDX-License-Identifier: MIT

package spline

import (
	"github.com/katalvlaran/csaps/matrix"
	"github.com/katalvlaran/csaps/ndarray"
)

const (
	opFitAxis      = "Fit"
	opEvaluateAxis = "Spline.Evaluate"
)

// Spline is a univariate smoothing spline fitted along one axis of n-d data.
// The PP rows enumerate every combination of the other axes in row-major order.
type Spline struct {
	pp     *PP
	axis   int
	shape  []int // shape of the fitted y
	smooth float64
}

// Fit folds y to [rows, len(x)] along axis, fits every row and keeps what
// Evaluate needs to unfold the result.
//
// Errors:
//   - see ValidateData; reshape failures surface as *ndarray.ShapeError;
//     solver failures as ErrSolve.
func Fit(x []float64, y *ndarray.Array[float64], axis int, weights []float64, smooth *float64) (*Spline, error) {
	if err := ValidateData(x, y, axis, weights, smooth); err != nil {
		return nil, err
	}

	y2, err := ndarray.To2D(y, axis)
	if err != nil {
		return nil, splineErrorf(opFitAxis, err)
	}
	shape2 := y2.Shape()
	yd, err := matrix.NewDenseFrom(shape2[0], shape2[1], y2.Data())
	if err != nil {
		return nil, splineErrorf(opFitAxis, err)
	}

	pp, p, err := FitUnivariate(x, yd, weights, smooth)
	if err != nil {
		return nil, err
	}

	return &Spline{pp: pp, axis: axis, shape: y.Shape(), smooth: p}, nil
}

// PP returns the underlying piecewise polynomial.
func (s *Spline) PP() *PP { return s.pp }

// Axis returns the data axis the spline was fitted along.
func (s *Spline) Axis() int { return s.axis }

// Smooth returns the smoothing parameter used (given or computed).
func (s *Spline) Smooth() float64 { return s.smooth }

// Evaluate computes the spline at xi. The result has the shape of the fitted
// y with the fitted axis resized to len(xi).
//
// Errors:
//   - ErrNotFitted for a nil receiver; see ValidateQuery for xi.
func (s *Spline) Evaluate(xi []float64) (*ndarray.Array[float64], error) {
	if s == nil || s.pp == nil {
		return nil, ErrNotFitted
	}
	if err := ValidateQuery(xi); err != nil {
		return nil, err
	}

	v, err := EvaluatePP(s.pp.order, s.pp.pieces, s.pp.breaks, s.pp.coeffs, xi)
	if err != nil {
		return nil, splineErrorf(opEvaluateAxis, err)
	}
	rows, cols := v.Shape()
	v2, err := ndarray.FromSlice(v.RawData(), rows, cols)
	if err != nil {
		return nil, splineErrorf(opEvaluateAxis, err)
	}

	shape := append([]int(nil), s.shape...)
	shape[s.axis] = len(xi)
	out, err := ndarray.From2D(v2, shape, s.axis)
	if err != nil {
		return nil, splineErrorf(opEvaluateAxis, err)
	}

	return out, nil
}
