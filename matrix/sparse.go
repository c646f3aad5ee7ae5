// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse storage (CSR/CSC) and triplet ingestion.
//
// Purpose:
//   - Hold short-lived banded operators (difference, penalty, weight matrices)
//     without materializing their zeros.
//   - Accept entries in any order through Triplets, then compress once.
//   - Keep duplicates as stored entries; readers (At, Diagonal) sum them.
//
// Layout:
//   - indptr has outer+1 entries; entries of outer line k live in
//     indices[indptr[k]:indptr[k+1]] / data[indptr[k]:indptr[k+1]].
//   - outer = rows for CSR, cols for CSC.
//
// Complexity quicksheet:
//   - Triplets.ToCSR/ToCSC: O(nnz + outer); At: O(nnz in line); Transpose: O(nnz).

package matrix

import (
	"fmt"
)

const (
	ctxTripletsAdd = "Triplets.Add"
	ctxSparseAt    = "Sparse.At"
)

// Sparse is a compressed sparse matrix in CSR or CSC order.
type Sparse struct {
	rows, cols int
	order      StorageOrder
	indptr     []int     // outer+1 offsets
	indices    []int     // inner index per stored entry
	data       []float64 // value per stored entry
}

var _ Matrix = (*Sparse)(nil)

// Rows returns the row count. Complexity: O(1).
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the column count. Complexity: O(1).
func (s *Sparse) Cols() int { return s.cols }

// Shape packs Rows() and Cols().
func (s *Sparse) Shape() (rows, cols int) { return s.rows, s.cols }

// Order reports the storage order.
func (s *Sparse) Order() StorageOrder { return s.order }

// Nnz returns the number of stored entries (duplicates counted separately).
func (s *Sparse) Nnz() int { return len(s.data) }

// outer returns the length of the compressed dimension.
func (s *Sparse) outer() int {
	if s.order == CSR {
		return s.rows
	}

	return s.cols
}

// At returns the sum of stored entries at (i, j); zero when nothing is stored.
// Errors: ErrOutOfRange for invalid indices.
// Complexity: O(entries in the outer line).
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxSparseAt, i, j, ErrOutOfRange)
	}
	o, in := i, j
	if s.order == CSC {
		o, in = j, i
	}
	var sum float64
	for p := s.indptr[o]; p < s.indptr[o+1]; p++ {
		if s.indices[p] == in {
			sum += s.data[p]
		}
	}

	return sum, nil
}

// do visits every stored entry in storage order as f(row, col, value).
func (s *Sparse) do(f func(i, j int, v float64)) {
	n := s.outer()
	var k, p int
	for k = 0; k < n; k++ {
		for p = s.indptr[k]; p < s.indptr[k+1]; p++ {
			if s.order == CSR {
				f(k, s.indices[p], s.data[p])
			} else {
				f(s.indices[p], k, s.data[p])
			}
		}
	}
}

// Transpose returns sᵗ by reinterpreting the compressed arrays in the
// opposite storage order (CSR of s is CSC of sᵗ). Buffers are copied.
// Complexity: O(nnz).
func (s *Sparse) Transpose() *Sparse {
	return &Sparse{
		rows:    s.cols,
		cols:    s.rows,
		order:   s.order.flip(),
		indptr:  append([]int(nil), s.indptr...),
		indices: append([]int(nil), s.indices...),
		data:    append([]float64(nil), s.data...),
	}
}

// ToCSR returns s in CSR order; a copy is returned even when s is already CSR.
func (s *Sparse) ToCSR() *Sparse { return s.convert(CSR) }

// ToCSC returns s in CSC order; a copy is returned even when s is already CSC.
func (s *Sparse) ToCSC() *Sparse { return s.convert(CSC) }

func (s *Sparse) convert(order StorageOrder) *Sparse {
	if s.order == order {
		t := s.Transpose() // copy buffers, then restore orientation
		t.rows, t.cols, t.order = s.rows, s.cols, s.order

		return t
	}
	t := NewTriplets(s.rows, s.cols)
	s.do(func(i, j int, v float64) { t.push(i, j, v) })

	return t.compress(order)
}

// ToDense materializes s as a Dense matrix, summing duplicates.
// Complexity: O(rows*cols + nnz).
func (s *Sparse) ToDense() (*Dense, error) {
	d, err := NewDense(s.rows, s.cols)
	if err != nil {
		return nil, err
	}
	s.do(func(i, j int, v float64) { d.data[i*d.c+j] += v })

	return d, nil
}

// Triplets accumulates (row, col, value) entries before compression.
// Entries may arrive in any order; duplicates are preserved.
type Triplets struct {
	rows, cols int
	ri, ci     []int
	vals       []float64
}

// NewTriplets creates an empty triplet buffer for a rows×cols matrix.
// Non-positive dimensions are reported by Add/ToCSR through ErrInvalidDimensions.
func NewTriplets(rows, cols int) *Triplets {
	return &Triplets{rows: rows, cols: cols}
}

// Add appends the entry v at (i, j).
// Errors: ErrOutOfRange for invalid indices.
func (t *Triplets) Add(i, j int, v float64) error {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		return fmt.Errorf("%s(%d,%d): %w", ctxTripletsAdd, i, j, ErrOutOfRange)
	}
	t.push(i, j, v)

	return nil
}

// push appends without bounds checks (internal producers guarantee them).
func (t *Triplets) push(i, j int, v float64) {
	t.ri = append(t.ri, i)
	t.ci = append(t.ci, j)
	t.vals = append(t.vals, v)
}

// Len returns the number of accumulated entries.
func (t *Triplets) Len() int { return len(t.vals) }

// ToCSR compresses the triplets into CSR storage.
func (t *Triplets) ToCSR() (*Sparse, error) {
	if err := ValidateDims(t.rows, t.cols); err != nil {
		return nil, err
	}

	return t.compress(CSR), nil
}

// ToCSC compresses the triplets into CSC storage.
func (t *Triplets) ToCSC() (*Sparse, error) {
	if err := ValidateDims(t.rows, t.cols); err != nil {
		return nil, err
	}

	return t.compress(CSC), nil
}

// compress performs a stable counting sort by outer index.
// Implementation:
//   - Stage 1: count entries per outer line.
//   - Stage 2: prefix-sum into indptr.
//   - Stage 3: scatter in insertion order, then sort each line by inner index.
func (t *Triplets) compress(order StorageOrder) *Sparse {
	outerIdx, innerIdx := t.ri, t.ci
	n := t.rows
	if order == CSC {
		outerIdx, innerIdx = t.ci, t.ri
		n = t.cols
	}

	indptr := make([]int, n+1)
	for _, o := range outerIdx {
		indptr[o+1]++
	}
	for k := 0; k < n; k++ {
		indptr[k+1] += indptr[k]
	}

	nnz := len(t.vals)
	indices := make([]int, nnz)
	data := make([]float64, nnz)
	next := make([]int, n)
	copy(next, indptr[:n])
	var p, dst int
	for p = 0; p < nnz; p++ {
		dst = next[outerIdx[p]]
		indices[dst] = innerIdx[p]
		data[dst] = t.vals[p]
		next[outerIdx[p]]++
	}

	for k := 0; k < n; k++ {
		sortLine(indices[indptr[k]:indptr[k+1]], data[indptr[k]:indptr[k+1]])
	}

	return &Sparse{rows: t.rows, cols: t.cols, order: order, indptr: indptr, indices: indices, data: data}
}

// sortLine orders one compressed line by inner index (stable insertion sort).
func sortLine(idx []int, vals []float64) {
	var i, j int
	for i = 1; i < len(idx); i++ {
		for j = i; j > 0 && idx[j-1] > idx[j]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
			vals[j-1], vals[j] = vals[j], vals[j-1]
		}
	}
}
