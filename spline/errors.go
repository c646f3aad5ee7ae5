// SPDX-License-Identifier: MIT
// Package spline: sentinel error set.
// Precondition failures wrap ErrInvalidInput together with one specific
// sentinel, so callers may match either the family or the exact cause.

package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the family of precondition violations detected
	// before any matrix is built.
	ErrInvalidInput = errors.New("spline: invalid input")

	// ErrTooFewPoints indicates fewer than two data sites on an axis.
	ErrTooFewPoints = errors.New("spline: at least 2 data sites are required")

	// ErrNotIncreasing indicates data sites that are not strictly increasing.
	ErrNotIncreasing = errors.New("spline: data sites must be strictly increasing")

	// ErrLengthMismatch indicates inconsistent lengths between x, y and weights.
	ErrLengthMismatch = errors.New("spline: length mismatch")

	// ErrEmptyAxis indicates a y axis of length zero.
	ErrEmptyAxis = errors.New("spline: zero-length axis")

	// ErrAxis indicates an axis index outside the data dimensions.
	ErrAxis = errors.New("spline: axis out of range")

	// ErrWeights indicates weights that are not strictly positive.
	ErrWeights = errors.New("spline: weights must be strictly positive")

	// ErrSmoothRange indicates a smoothing parameter outside [0, 1].
	ErrSmoothRange = errors.New("spline: smoothing parameter must be in [0, 1]")

	// ErrNonFinite indicates NaN or ±Inf in data sites, values, weights or queries.
	ErrNonFinite = errors.New("spline: NaN or Inf encountered")

	// ErrEmptyQuery indicates evaluation with no query sites.
	ErrEmptyQuery = errors.New("spline: query sites must not be empty")

	// ErrNotFitted indicates evaluation of an absent (nil) spline.
	ErrNotFitted = errors.New("spline: spline has not been fitted")

	// ErrSolve indicates that the penalized system could not be factorized.
	ErrSolve = errors.New("spline: linear solve failed")
)

// invalidf builds a precondition error matching both ErrInvalidInput and cause.
func invalidf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidInput, cause, fmt.Sprintf(format, args...))
}

// splineErrorf wraps err with an operation tag, preserving it via %w.
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
