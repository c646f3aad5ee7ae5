// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// SolveSym solves A·X = B for a symmetric sparse A, one column of B at a time.
// MAIN DESCRIPTION:
//   - Factorizes A once and reuses the factor for every right-hand side.
//
// Implementation:
//   - Stage 1: validate A square and B.Rows == A.Rows.
//   - Stage 2: a 1×1 system is solved by scalar division.
//   - Stage 3: otherwise copy the upper band of A into a gonum SymBandDense
//     and factorize with BandCholesky.
//   - Stage 4: if Cholesky rejects A (not positive definite), fall back to a
//     dense partial-pivoting LU of A.
//   - Stage 5: solve column by column into the result.
//
// Behavior highlights:
//   - A is never asserted to be SPD; only the upper triangle is read on the
//     Cholesky path, the full matrix on the LU path.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//   - ErrSingular when neither factorization yields a usable solve.
//
// Complexity:
//   - Cholesky path: Time O(n·bw² + n·bw·m), Space O(n·bw).
//   - LU path: Time O(n³ + n²·m), Space O(n²).
func SolveSym(a *Sparse, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opSolveSym, ErrNilMatrix)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolveSym, err)
	}
	if b.r != a.rows {
		return nil, matrixErrorf(opSolveSym, ErrDimensionMismatch)
	}

	n, m := a.rows, b.c
	x, err := NewDense(n, m)
	if err != nil {
		return nil, matrixErrorf(opSolveSym, err)
	}

	if n == 1 {
		a00, _ := a.At(0, 0)
		if a00 == 0 {
			return nil, matrixErrorf(opSolveSym, ErrSingular)
		}
		for j := 0; j < m; j++ {
			x.data[j] = b.data[j] / a00
		}

		return x, nil
	}

	solve, err := factorize(a)
	if err != nil {
		return nil, matrixErrorf(opSolveSym, err)
	}

	col := make([]float64, n)
	dst := mat.NewVecDense(n, nil)
	var i, j int
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			col[i] = b.data[i*m+j]
		}
		if err = solve(dst, mat.NewVecDense(n, col)); err != nil {
			return nil, matrixErrorf(opSolveSym, ErrSingular)
		}
		for i = 0; i < n; i++ {
			x.data[i*m+j] = dst.AtVec(i)
		}
	}

	return x, nil
}

// vecSolver solves one right-hand side against a prepared factorization.
type vecSolver func(dst *mat.VecDense, rhs mat.Vector) error

// factorize prepares a band Cholesky factor of a, or a dense LU factor when
// a is not positive definite.
func factorize(a *Sparse) (vecSolver, error) {
	n := a.rows

	// Upper bandwidth from the stored pattern.
	kd := 0
	a.do(func(i, j int, _ float64) {
		if d := j - i; d > kd {
			kd = d
		} else if -d > kd {
			kd = -d
		}
	})

	sb := mat.NewSymBandDense(n, kd, nil)
	upper := make([]float64, n*(kd+1))
	a.do(func(i, j int, v float64) {
		if j >= i {
			upper[i*(kd+1)+(j-i)] += v // duplicates sum
		}
	})
	var i, d int
	for i = 0; i < n; i++ {
		for d = 0; d <= kd && i+d < n; d++ {
			sb.SetSymBand(i, i+d, upper[i*(kd+1)+d])
		}
	}

	var chol mat.BandCholesky
	if chol.Factorize(sb) {
		return chol.SolveVecTo, nil
	}

	dense, err := a.ToDense()
	if err != nil {
		return nil, err
	}
	var lu mat.LU
	lu.Factorize(dense.ToGonum())
	if lu.Det() == 0 {
		return nil, ErrSingular
	}

	return func(dst *mat.VecDense, rhs mat.Vector) error {
		return lu.SolveVecTo(dst, false, rhs)
	}, nil
}
