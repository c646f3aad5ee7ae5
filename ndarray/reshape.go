// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Reshape returns a copy of a with a new shape holding the same elements in
// the same row-major order.
// Errors: *ShapeError when the element counts differ.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	if n := numel(shape); n < 0 || n != len(a.data) {
		return nil, &ShapeError{Op: "Reshape", From: a.Shape(), To: slices.Clone(shape), Axis: -1}
	}

	return &Array[T]{shape: slices.Clone(shape), data: slices.Clone(a.data)}, nil
}

// Permute returns a materialized copy of a with its axes reordered:
// axis i of the result is axis axes[i] of a.
//
// Implementation:
//   - Stage 1: validate that axes is a permutation of [0, ndim).
//   - Stage 2: walk the result in row-major order with an odometer over its
//     shape while advancing the source offset by the permuted strides.
//
// Errors:
//   - ErrPermutation for a malformed axes list.
//
// Complexity:
//   - Time O(numel·ndim) worst case, O(numel) amortized; Space O(numel).
func (a *Array[T]) Permute(axes ...int) (*Array[T], error) {
	nd := len(a.shape)
	if len(axes) != nd {
		return nil, fmt.Errorf("ndarray: Permute%v on %d-d array: %w", axes, nd, ErrPermutation)
	}
	seen := make([]bool, nd)
	for _, ax := range axes {
		if ax < 0 || ax >= nd || seen[ax] {
			return nil, fmt.Errorf("ndarray: Permute%v on %d-d array: %w", axes, nd, ErrPermutation)
		}
		seen[ax] = true
	}

	srcStrides := a.strides()
	shape := make([]int, nd)
	step := make([]int, nd)
	for i, ax := range axes {
		shape[i] = a.shape[ax]
		step[i] = srcStrides[ax]
	}

	out := &Array[T]{shape: shape, data: make([]T, len(a.data))}
	if len(out.data) == 0 {
		return out, nil
	}

	counter := make([]int, nd)
	src := 0
	var k int
	for dst := range out.data {
		out.data[dst] = a.data[src]
		// Advance the odometer from the innermost axis.
		for k = nd - 1; k >= 0; k-- {
			counter[k]++
			src += step[k]
			if counter[k] < shape[k] {
				break
			}
			src -= step[k] * shape[k]
			counter[k] = 0
		}
	}

	return out, nil
}

// To2D folds a into a 2-d array [numel/shape[axis], shape[axis]]: the given
// axis becomes the column dimension and all other axes, in their original
// order, are flattened into rows. This is a full permutation, not a view.
//
// Errors:
//   - ErrAxis when axis is outside [0, ndim).
func To2D[T constraints.Float](a *Array[T], axis int) (*Array[T], error) {
	nd := a.Ndim()
	if axis < 0 || axis >= nd {
		return nil, fmt.Errorf("ndarray: To2D axis %d on %d-d array: %w", axis, nd, ErrAxis)
	}

	axes := make([]int, 0, nd)
	rows := 1
	for k := 0; k < nd; k++ {
		if k != axis {
			axes = append(axes, k)
			rows *= a.shape[k]
		}
	}
	axes = append(axes, axis)

	p, err := a.Permute(axes...)
	if err != nil {
		return nil, err
	}
	p.shape = []int{rows, a.shape[axis]}

	return p, nil
}

// To2DSimple flattens every axis but the last into rows without permuting:
// [prod(shape[:ndim-1]), shape[ndim-1]].
//
// Errors:
//   - ErrAxis for a 0-d array.
func To2DSimple[T constraints.Float](a *Array[T]) (*Array[T], error) {
	nd := a.Ndim()
	if nd == 0 {
		return nil, fmt.Errorf("ndarray: To2DSimple on 0-d array: %w", ErrAxis)
	}
	rows := 1
	for _, s := range a.shape[:nd-1] {
		rows *= s
	}

	return a.Reshape(rows, a.shape[nd-1])
}

// From2D reverses To2D: a2 of shape [rows, shape[axis]] is unfolded into an
// array of the given shape, with its column dimension restored to position
// axis.
//
// Implementation:
//   - Stage 1: reshape a2 to shape-without-axis + [shape[axis]].
//   - Stage 2: permute so the trailing axis moves back to position axis.
//
// Errors:
//   - ErrAxis when axis is outside [0, len(shape)).
//   - *ShapeError when a2 is not 2-d or its element count differs.
func From2D[T constraints.Float](a2 *Array[T], shape []int, axis int) (*Array[T], error) {
	nd := len(shape)
	if axis < 0 || axis >= nd {
		return nil, fmt.Errorf("ndarray: From2D axis %d for %d-d shape: %w", axis, nd, ErrAxis)
	}

	folded := make([]int, 0, nd)
	folded = append(folded, shape[:axis]...)
	folded = append(folded, shape[axis+1:]...)
	folded = append(folded, shape[axis])

	if a2.Ndim() != 2 || numel(folded) != a2.Len() {
		return nil, &ShapeError{Op: "From2D", From: a2.Shape(), To: folded, Axis: axis}
	}
	nda := &Array[T]{shape: folded, data: a2.data}

	axes := make([]int, 0, nd)
	for k := 0; k < nd-1; k++ {
		axes = append(axes, k)
	}
	axes = slices.Insert(axes, axis, nd-1)

	return nda.Permute(axes...)
}
