// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Array is a dense n-d array of floats stored in row-major order.
//   - shape[k] is the extent of axis k (zero extents are legal).
//   - data has len == prod(shape); a 0-d array holds one element.
type Array[T constraints.Float] struct {
	shape []int
	data  []T
}

// numel returns prod(shape), or -1 when an extent is negative.
func numel(shape []int) int {
	n := 1
	for _, s := range shape {
		if s < 0 {
			return -1
		}
		n *= s
	}

	return n
}

// New allocates a zero-filled array with the given shape.
// Errors: *ShapeError (matches ErrShape) for negative extents.
func New[T constraints.Float](shape ...int) (*Array[T], error) {
	n := numel(shape)
	if n < 0 {
		return nil, &ShapeError{Op: "New", From: nil, To: slices.Clone(shape), Axis: -1}
	}

	return &Array[T]{shape: slices.Clone(shape), data: make([]T, n)}, nil
}

// FromSlice copies data into a new array of the given shape.
// Errors: *ShapeError when len(data) != prod(shape).
func FromSlice[T constraints.Float](data []T, shape ...int) (*Array[T], error) {
	n := numel(shape)
	if n < 0 || n != len(data) {
		return nil, &ShapeError{Op: "FromSlice", From: []int{len(data)}, To: slices.Clone(shape), Axis: -1}
	}

	return &Array[T]{shape: slices.Clone(shape), data: slices.Clone(data)}, nil
}

// Shape returns a copy of the extents.
func (a *Array[T]) Shape() []int { return slices.Clone(a.shape) }

// Ndim returns the number of axes.
func (a *Array[T]) Ndim() int { return len(a.shape) }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Data exposes the row-major buffer (shared, not copied).
func (a *Array[T]) Data() []T { return a.data }

// strides returns row-major element strides.
func (a *Array[T]) strides() []int {
	st := make([]int, len(a.shape))
	acc := 1
	for k := len(a.shape) - 1; k >= 0; k-- {
		st[k] = acc
		acc *= a.shape[k]
	}

	return st
}

// At returns the element at the multi-index idx.
// Errors: ErrShape when len(idx) != Ndim, ErrOutOfRange for bad indices.
func (a *Array[T]) At(idx ...int) (T, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("ndarray: At%v on %d-d array: %w", idx, len(a.shape), ErrShape)
	}
	off := 0
	st := a.strides()
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("ndarray: At%v on shape %v: %w", idx, a.shape, ErrOutOfRange)
		}
		off += i * st[k]
	}

	return a.data[off], nil
}

// Clone returns a deep copy.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// Equal reports whether a and b have identical shapes and elements.
func (a *Array[T]) Equal(b *Array[T]) bool {
	return slices.Equal(a.shape, b.shape) && slices.Equal(a.data, b.data)
}

// Convert returns a copy of a with elements converted to U.
func Convert[U, T constraints.Float](a *Array[T]) *Array[U] {
	out := make([]U, len(a.data))
	for i, v := range a.data {
		out[i] = U(v)
	}

	return &Array[U]{shape: slices.Clone(a.shape), data: out}
}
