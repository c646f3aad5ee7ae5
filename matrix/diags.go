// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// diagStart returns the first cell (i, j) of diagonal k and its length
// n = min(rows-i, cols-j).
func diagStart(k, rows, cols int) (n, i, j int) {
	if k < 0 {
		i = -k
	} else {
		j = k
	}
	n = rows - i
	if cols-j < n {
		n = cols - j
	}

	return n, i, j
}

// Diags builds a rows×cols CSR matrix from diagonal vectors (DIA → CSR).
// MAIN DESCRIPTION:
//   - diagonals[k] holds the values of diagonal offsets[k]
//     (positive = above the main diagonal, negative = below).
//
// Implementation:
//   - Stage 1: validate shape, offsets and vector lengths.
//   - Stage 2: for every offset take n = min(rows-i, cols-j) values from the
//     head or the tail of its vector, then push them as triplets.
//   - Stage 3: compress to CSR.
//
// Behavior highlights:
//   - Callers pass equal-length vectors regardless of the true diagonal length.
//     When rows >= cols a super-diagonal (k >= 0) is read from the tail and a
//     sub-diagonal from the head; when rows < cols the choice is reversed.
//   - An offset outside (-rows, cols) has no cells and contributes nothing.
//
// Errors:
//   - ErrInvalidDimensions for non-positive rows/cols.
//   - ErrDimensionMismatch when len(diagonals) != len(offsets) or a vector is
//     shorter than its diagonal.
//
// Complexity:
//   - Time O(Σn + rows), Space O(Σn).
func Diags(diagonals [][]float64, offsets []int, rows, cols int) (*Sparse, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opDiags, err)
	}
	if len(diagonals) != len(offsets) {
		return nil, matrixErrorf(opDiags, ErrDimensionMismatch)
	}

	t := NewTriplets(rows, cols)
	for idx, k := range offsets {
		n, i, j := diagStart(k, rows, cols)
		if n <= 0 {
			continue // diagonal lies outside the matrix
		}
		row := diagonals[idx]
		if len(row) < n {
			return nil, fmt.Errorf("%s: offset %d needs %d values, got %d: %w",
				opDiags, k, n, len(row), ErrDimensionMismatch)
		}

		var diag []float64
		head := rows >= cols
		if k >= 0 {
			head = !head
		}
		if head {
			diag = row[:n]
		} else {
			diag = row[len(row)-n:]
		}

		for l := 0; l < n; l++ {
			t.push(l+i, l+j, diag[l])
		}
	}

	return t.compress(CSR), nil
}

// Diagonal extracts the stored values on diagonal k of s, summing duplicates.
// CSC input is handled as the transposed problem: row and column swap roles
// and k changes sign.
//
// Errors:
//   - ErrNilMatrix for nil s.
//   - ErrOutOfRange when k lies outside (-rows, cols).
//
// Complexity:
//   - Time O(nnz), Space O(n).
func Diagonal(s *Sparse, k int) ([]float64, error) {
	if s == nil {
		return nil, matrixErrorf(opDiagonal, ErrNilMatrix)
	}
	if err := ValidateOffset(k, s.rows, s.cols); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}

	rows, cols := s.rows, s.cols
	if s.order == CSC {
		rows, cols, k = cols, rows, -k
	}
	n, i, j := diagStart(k, rows, cols)

	out := make([]float64, n)
	var l, p int
	for l = 0; l < n; l++ {
		o, in := i+l, j+l
		for p = s.indptr[o]; p < s.indptr[o+1]; p++ {
			if s.indices[p] == in {
				out[l] += s.data[p]
			}
		}
	}

	return out, nil
}
