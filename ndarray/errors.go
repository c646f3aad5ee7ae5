// SPDX-License-Identifier: MIT

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates an element-count or dimension contract violation.
	// *ShapeError values match it through errors.Is.
	ErrShape = errors.New("ndarray: incompatible shape")

	// ErrAxis indicates an axis index outside [0, ndim).
	ErrAxis = errors.New("ndarray: axis out of range")

	// ErrPermutation indicates an axes list that is not a permutation of [0, ndim).
	ErrPermutation = errors.New("ndarray: invalid axes permutation")

	// ErrOutOfRange indicates an element index outside the array bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")
)

// ShapeError reports a failed reshape together with both shapes and the axis
// the operation was performed along (-1 when not axis-bound).
type ShapeError struct {
	Op   string // "Reshape", "To2D", "From2D", ...
	From []int  // input shape
	To   []int  // requested shape
	Axis int
}

// Error implements error.
func (e *ShapeError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("ndarray: %s: cannot reshape %v into %v", e.Op, e.From, e.To)
	}

	return fmt.Sprintf("ndarray: %s: cannot reshape %v into %v by axis %d", e.Op, e.From, e.To, e.Axis)
}

// Is makes errors.Is(err, ErrShape) true for every *ShapeError.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }
