// SPDX-License-Identifier: MIT

package csaps

import (
	"github.com/katalvlaran/csaps/ndarray"
	"github.com/katalvlaran/csaps/spline"
	"golang.org/x/exp/constraints"
)

// Spline is a fitted smoothing spline over float32 or float64 data.
type Spline[T constraints.Float] struct {
	s *spline.Spline
}

// Make fits a cubic smoothing spline to y along one of its axes.
// MAIN DESCRIPTION:
//   - x holds the strictly increasing data sites.
//   - y is 1-d (one curve) or n-d; the selected axis (last by default, see
//     WithAxis) must have len(x) entries, every other axis is an independent
//     output dimension.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: convert x, y and weights to float64.
//   - Stage 3: spline.Fit.
//
// Errors:
//   - ErrInvalidInput together with the specific cause (ErrTooFewPoints,
//     ErrNotIncreasing, ErrLengthMismatch, ErrAxis, ErrEmptyAxis, ErrWeights,
//     ErrSmoothRange, ErrNonFinite).
//   - ErrSolve when the smoothing system cannot be factorized.
func Make[T constraints.Float](x []T, y *ndarray.Array[T], opts ...Option) (*Spline[T], error) {
	o := gatherOptions(opts)

	var y64 *ndarray.Array[float64]
	if y != nil {
		y64 = ndarray.Convert[float64](y)
	}
	axis := o.axis
	if axis == DefaultAxis && y != nil {
		axis = y.Ndim() - 1
	}

	s, err := spline.Fit(toFloat64(x), y64, axis, o.weights, o.smooth)
	if err != nil {
		return nil, err
	}

	return &Spline[T]{s: s}, nil
}

// Evaluate computes the spline at xi (any order, duplicates allowed).
// The result has the shape of the fitted y with its fitted axis resized to
// len(xi); sites outside the data range extrapolate the edge pieces.
//
// Errors:
//   - ErrNotFitted for a nil receiver.
//   - ErrInvalidInput with ErrEmptyQuery or ErrNonFinite for bad xi.
func (s *Spline[T]) Evaluate(xi []T) (*ndarray.Array[T], error) {
	if s == nil {
		return nil, ErrNotFitted
	}
	v, err := s.s.Evaluate(toFloat64(xi))
	if err != nil {
		return nil, err
	}

	return ndarray.Convert[T](v), nil
}

// Smooth returns the smoothing parameter used, given or automatic.
func (s *Spline[T]) Smooth() T { return T(s.s.Smooth()) }

// Axis returns the axis of y the spline was fitted along.
func (s *Spline[T]) Axis() int { return s.s.Axis() }

// PP returns the piecewise-polynomial form (float64).
func (s *Spline[T]) PP() *spline.PP { return s.s.PP() }
