// SPDX-License-Identifier: MIT
// Package: matrix
//
// Shape and index checks shared by the sparse kernels, the banded builders
// and the solver. Every check is pure and allocation-free; failures wrap a
// package sentinel with the validator tag.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims rejects non-positive matrix dimensions with ErrInvalidDimensions.
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDims(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateOffset checks that diagonal k exists in a rows×cols matrix,
// i.e. k ∈ (-rows, cols). Returns ErrOutOfRange otherwise.
func ValidateOffset(k, rows, cols int) error {
	if k <= -rows || k >= cols {
		return validatorErrorf(fmt.Sprintf("ValidateOffset(%d) for %d×%d", k, rows, cols), ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: %d×%d vs %d×%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks Rows == Cols; ErrNonSquare otherwise.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %d×%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows for a product a·b.
func ValidateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %d×%d · %d×%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}
