// SPDX-License-Identifier: MIT
// Package matrix provides the sparse kernels used to assemble the penalized
// normal equations: product, sum, scaling and trace.
//
// Purpose:
//   - Keep every kernel deterministic: rows are produced in order, and
//     entries inside a row are sorted by column.
//   - Validate operands through the central validators and wrap failures
//     with an operation tag via matrixErrorf.

package matrix

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opMulSparse   = "MulSparse"
	opAddSparse   = "AddSparse"
	opScaleSparse = "ScaleSparse"
	opTrace       = "Trace"
	opDiags       = "Diags"
	opDiagonal    = "Diagonal"
	opSolveSym    = "SolveSym"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulSparse returns the product a·b in CSR order.
// MAIN DESCRIPTION:
//   - Row-by-row Gustavson product with a dense accumulator.
//
// Implementation:
//   - Stage 1: validate operands (non-nil, a.Cols == b.Rows).
//   - Stage 2: bring both operands to CSR (a CSC operand is converted).
//   - Stage 3: for each row i of a, scatter a(i,k)·b(k,:) into the accumulator,
//     remember touched columns, sort them and gather the row.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(flops + rows·log(row nnz)), Space O(b.Cols).
func MulSparse(a, b *Sparse) (*Sparse, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMulSparse, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulSparse, err)
	}
	if a.order != CSR {
		a = a.ToCSR()
	}
	if b.order != CSR {
		b = b.ToCSR()
	}

	acc := make([]float64, b.cols)
	seen := make([]bool, b.cols)
	touched := make([]int, 0, b.cols)

	indptr := make([]int, a.rows+1)
	indices := make([]int, 0, a.Nnz()+b.Nnz())
	data := make([]float64, 0, a.Nnz()+b.Nnz())

	var i, p, q, k, j int
	var av float64
	for i = 0; i < a.rows; i++ {
		touched = touched[:0]
		for p = a.indptr[i]; p < a.indptr[i+1]; p++ {
			k, av = a.indices[p], a.data[p]
			for q = b.indptr[k]; q < b.indptr[k+1]; q++ {
				j = b.indices[q]
				if !seen[j] {
					seen[j] = true
					touched = append(touched, j)
				}
				acc[j] += av * b.data[q]
			}
		}
		slices.Sort(touched)
		for _, j = range touched {
			indices = append(indices, j)
			data = append(data, acc[j])
			acc[j], seen[j] = 0, false
		}
		indptr[i+1] = len(data)
	}

	return &Sparse{rows: a.rows, cols: b.cols, order: CSR, indptr: indptr, indices: indices, data: data}, nil
}

// AddSparse returns a + b in CSR order, merging coincident entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b) + rows).
func AddSparse(a, b *Sparse) (*Sparse, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opAddSparse, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAddSparse, err)
	}

	t := NewTriplets(a.rows, a.cols)
	a.do(t.push)
	b.do(t.push)
	sum := t.compress(CSR)

	return sum.merged(), nil
}

// ScaleSparse returns alpha·s, keeping the storage order of s.
func ScaleSparse(s *Sparse, alpha float64) (*Sparse, error) {
	if s == nil {
		return nil, matrixErrorf(opScaleSparse, ErrNilMatrix)
	}
	out := s.Transpose()
	out.rows, out.cols, out.order = s.rows, s.cols, s.order
	floats.Scale(alpha, out.data)

	return out, nil
}

// Trace returns the sum of the main diagonal of a square sparse matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(s *Sparse) (float64, error) {
	if s == nil {
		return 0, matrixErrorf(opTrace, ErrNilMatrix)
	}
	if err := ValidateSquare(s); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := Diagonal(s, 0)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	return floats.Sum(d), nil
}

// merged collapses duplicate entries inside each (sorted) line.
func (s *Sparse) merged() *Sparse {
	n := s.outer()
	indptr := make([]int, n+1)
	indices := make([]int, 0, len(s.indices))
	data := make([]float64, 0, len(s.data))
	var k, p int
	for k = 0; k < n; k++ {
		for p = s.indptr[k]; p < s.indptr[k+1]; p++ {
			last := len(indices) - 1
			if last >= indptr[k] && indices[last] == s.indices[p] {
				data[last] += s.data[p]
				continue
			}
			indices = append(indices, s.indices[p])
			data = append(data, s.data[p])
		}
		indptr[k+1] = len(data)
	}

	return &Sparse{rows: s.rows, cols: s.cols, order: s.order, indptr: indptr, indices: indices, data: data}
}
