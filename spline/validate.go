// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/csaps/ndarray"
	"gonum.org/v1/gonum/floats/scalar"
)

// almostTol is the relative tolerance of almostEqual (√ε for float64).
var almostTol = math.Sqrt(2.220446049250313e-16)

// almostEqual reports a == b within a relative √ε tolerance.
func almostEqual(a, b float64) bool {
	return a == b || scalar.EqualWithinRel(a, b, almostTol)
}

func validateFinite(name string, v []float64) error {
	for i, e := range v {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return invalidf(ErrNonFinite, "%s[%d] = %v", name, i, e)
		}
	}

	return nil
}

// validateExtents rejects zero-length axes of y.
func validateExtents(shape []int) error {
	for ax, n := range shape {
		if n == 0 {
			return invalidf(ErrEmptyAxis, "y.shape[%d] = 0", ax)
		}
	}

	return nil
}

// validateBreaks checks len ≥ 2, finiteness and strict increase.
// Neighbours that are almost equal count as non-increasing.
func validateBreaks(name string, x []float64) error {
	if len(x) < 2 {
		return invalidf(ErrTooFewPoints, "len(%s) = %d", name, len(x))
	}
	if err := validateFinite(name, x); err != nil {
		return err
	}
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] || almostEqual(x[i], x[i-1]) {
			return invalidf(ErrNotIncreasing, "%s[%d] = %v, %s[%d] = %v", name, i-1, x[i-1], name, i, x[i])
		}
	}

	return nil
}

// validateWeights accepts nil (unit weights) or n finite positive values.
func validateWeights(name string, w []float64, n int) error {
	if w == nil {
		return nil
	}
	if len(w) != n {
		return invalidf(ErrLengthMismatch, "len(%s) = %d, want %d", name, len(w), n)
	}
	if err := validateFinite(name, w); err != nil {
		return err
	}
	for i, v := range w {
		if v <= 0 {
			return invalidf(ErrWeights, "%s[%d] = %v", name, i, v)
		}
	}

	return nil
}

// validateSmooth accepts nil (automatic) or a value in [0, 1].
func validateSmooth(name string, s *float64) error {
	if s == nil {
		return nil
	}
	if math.IsNaN(*s) || *s < 0 || *s > 1 {
		return invalidf(ErrSmoothRange, "%s = %v", name, *s)
	}

	return nil
}

// ValidateData checks the preconditions of Fit.
//
// Errors (all wrap ErrInvalidInput):
//   - ErrTooFewPoints, ErrNotIncreasing, ErrNonFinite for x.
//   - ErrAxis when y is 0-d or axis ∉ [0, y.Ndim()); ErrEmptyAxis for a zero extent.
//   - ErrLengthMismatch when y.Shape()[axis] != len(x) or len(weights) != len(x).
//   - ErrNonFinite for y or weights, ErrWeights for non-positive weights.
//   - ErrSmoothRange for smooth outside [0, 1].
func ValidateData(x []float64, y *ndarray.Array[float64], axis int, weights []float64, smooth *float64) error {
	if err := validateBreaks("x", x); err != nil {
		return err
	}
	if y == nil || y.Ndim() < 1 {
		return invalidf(ErrAxis, "y must have at least one dimension")
	}
	if axis < 0 || axis >= y.Ndim() {
		return invalidf(ErrAxis, "axis %d for %d-d y", axis, y.Ndim())
	}
	if err := validateExtents(y.Shape()); err != nil {
		return err
	}
	if n := y.Shape()[axis]; n != len(x) {
		return invalidf(ErrLengthMismatch, "y.shape[%d] = %d, len(x) = %d", axis, n, len(x))
	}
	if err := validateFinite("y", y.Data()); err != nil {
		return err
	}
	if err := validateWeights("weights", weights, len(x)); err != nil {
		return err
	}

	return validateSmooth("smooth", smooth)
}

// ValidateGridData checks the preconditions of FitGrid.
// weights and smooth may be nil, otherwise they hold one (possibly nil)
// entry per axis.
func ValidateGridData(x [][]float64, y *ndarray.Array[float64], weights [][]float64, smooth []*float64) error {
	if y == nil || y.Ndim() < 1 {
		return invalidf(ErrAxis, "y must have at least one dimension")
	}
	nd := y.Ndim()
	if len(x) != nd {
		return invalidf(ErrLengthMismatch, "len(x) = %d, y.ndim = %d", len(x), nd)
	}
	if weights != nil && len(weights) != nd {
		return invalidf(ErrLengthMismatch, "len(weights) = %d, y.ndim = %d", len(weights), nd)
	}
	if smooth != nil && len(smooth) != nd {
		return invalidf(ErrLengthMismatch, "len(smooth) = %d, y.ndim = %d", len(smooth), nd)
	}

	shape := y.Shape()
	if err := validateExtents(shape); err != nil {
		return err
	}
	for ax := 0; ax < nd; ax++ {
		if err := validateBreaks(axisName("x", ax), x[ax]); err != nil {
			return err
		}
		if shape[ax] != len(x[ax]) {
			return invalidf(ErrLengthMismatch, "y.shape[%d] = %d, len(x[%d]) = %d", ax, shape[ax], ax, len(x[ax]))
		}
		if weights != nil {
			if err := validateWeights(axisName("weights", ax), weights[ax], len(x[ax])); err != nil {
				return err
			}
		}
		if smooth != nil {
			if err := validateSmooth(axisName("smooth", ax), smooth[ax]); err != nil {
				return err
			}
		}
	}

	return validateFinite("y", y.Data())
}

// ValidateQuery checks that xi is non-empty and finite.
func ValidateQuery(xi []float64) error {
	if len(xi) == 0 {
		return invalidf(ErrEmptyQuery, "len(xi) = 0")
	}

	return validateFinite("xi", xi)
}

// ValidateGridQuery checks one non-empty finite query vector per axis.
func ValidateGridQuery(ndim int, xi [][]float64) error {
	if len(xi) != ndim {
		return invalidf(ErrLengthMismatch, "len(xi) = %d, ndim = %d", len(xi), ndim)
	}
	for ax, v := range xi {
		if len(v) == 0 {
			return invalidf(ErrEmptyQuery, "len(xi[%d]) = 0", ax)
		}
		if err := validateFinite(axisName("xi", ax), v); err != nil {
			return err
		}
	}

	return nil
}

func axisName(name string, ax int) string {
	return fmt.Sprintf("%s[%d]", name, ax)
}
