// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/csaps/matrix"
)

// Orders of the local polynomials.
const (
	CubicOrder  = 4 // a·t³ + b·t² + c·t + d
	LinearOrder = 2 // two-site degenerate fit: b·t + d
)

// PP is a fitted univariate spline in piecewise-polynomial form.
//   - coeffs has shape [ndim, pieces*order]; column block k*pieces..(k+1)*pieces-1
//     holds the coefficient of t^(order-1-k) for every piece.
//   - breaks has pieces+1 entries and is shared with the caller, not copied.
//
// A PP is immutable once built and safe for concurrent Evaluate calls.
type PP struct {
	ndim   int
	order  int
	pieces int
	breaks []float64
	coeffs *matrix.Dense
}

// NewPP wraps breaks and coefficients into a PP, deriving order and pieces.
//
// Errors:
//   - ErrInvalidInput/ErrTooFewPoints when len(breaks) < 2.
//   - ErrInvalidInput/ErrLengthMismatch when coeffs.Cols is not a multiple of len(breaks)-1.
func NewPP(breaks []float64, coeffs *matrix.Dense) (*PP, error) {
	if len(breaks) < 2 {
		return nil, invalidf(ErrTooFewPoints, "len(breaks) = %d", len(breaks))
	}
	if coeffs == nil {
		return nil, invalidf(ErrLengthMismatch, "coeffs is nil")
	}
	pieces := len(breaks) - 1
	if coeffs.Cols()%pieces != 0 {
		return nil, invalidf(ErrLengthMismatch, "coeffs has %d columns for %d pieces", coeffs.Cols(), pieces)
	}

	return &PP{
		ndim:   coeffs.Rows(),
		order:  coeffs.Cols() / pieces,
		pieces: pieces,
		breaks: breaks,
		coeffs: coeffs,
	}, nil
}

// Ndim returns the number of output dimensions (rows of Coeffs).
func (pp *PP) Ndim() int { return pp.ndim }

// Order returns the polynomial order (4 for cubic, 2 for the two-site case).
func (pp *PP) Order() int { return pp.order }

// Pieces returns the number of polynomial pieces (len(Breaks) - 1).
func (pp *PP) Pieces() int { return pp.pieces }

// Breaks returns the breakpoints (shared, do not modify).
func (pp *PP) Breaks() []float64 { return pp.breaks }

// Coeffs returns the coefficient matrix (shared, do not modify).
func (pp *PP) Coeffs() *matrix.Dense { return pp.coeffs }

// Evaluate computes the spline at xi; the result has shape [Ndim, len(xi)].
//
// Errors:
//   - ErrNotFitted for a nil receiver.
//   - ErrInvalidInput/ErrEmptyQuery, ErrInvalidInput/ErrNonFinite for xi.
func (pp *PP) Evaluate(xi []float64) (*matrix.Dense, error) {
	if pp == nil {
		return nil, ErrNotFitted
	}
	if err := ValidateQuery(xi); err != nil {
		return nil, err
	}

	return EvaluatePP(pp.order, pp.pieces, pp.breaks, pp.coeffs, xi)
}

// String summarizes the PP shape for diagnostics.
func (pp *PP) String() string {
	return fmt.Sprintf("PP(ndim=%d, order=%d, pieces=%d)", pp.ndim, pp.order, pp.pieces)
}
