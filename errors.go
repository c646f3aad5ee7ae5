// SPDX-License-Identifier: MIT

package csaps

import (
	"fmt"

	"github.com/katalvlaran/csaps/spline"
)

// Sentinels re-exported from package spline.
var (
	ErrInvalidInput   = spline.ErrInvalidInput
	ErrTooFewPoints   = spline.ErrTooFewPoints
	ErrNotIncreasing  = spline.ErrNotIncreasing
	ErrLengthMismatch = spline.ErrLengthMismatch
	ErrEmptyAxis      = spline.ErrEmptyAxis
	ErrAxis           = spline.ErrAxis
	ErrWeights        = spline.ErrWeights
	ErrSmoothRange    = spline.ErrSmoothRange
	ErrNonFinite      = spline.ErrNonFinite
	ErrEmptyQuery     = spline.ErrEmptyQuery
	ErrNotFitted      = spline.ErrNotFitted
	ErrSolve          = spline.ErrSolve
)

// invalidf mirrors the spline precondition errors: both ErrInvalidInput and
// cause match.
func invalidf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidInput, cause, fmt.Sprintf(format, args...))
}
