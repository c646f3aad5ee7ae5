// Package matrix offers the dense and sparse linear-algebra primitives used
// to assemble and solve the smoothing-spline normal equations.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At and a gonum handoff.
//   - Sparse: compressed CSR/CSC storage built from Triplets, with O(nnz)
//     transpose and deterministic product/sum kernels.
//   - Diags/Diagonal: the DIA → CSR adapter for banded operators and its
//     inverse for a single diagonal.
//   - SolveSym: a column-by-column symmetric solve (band Cholesky with a dense
//     LU fallback) backed by gonum.
//
// Every public entry point returns sentinel errors (see errors.go) instead of
// panicking; match them with errors.Is.
package matrix
