// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/csaps/matrix"
	"gonum.org/v1/gonum/floats"
)

const opFit = "FitUnivariate"

// FitUnivariate fits a cubic smoothing spline to every row of y over the
// sites x and returns it together with the smoothing parameter used.
// MAIN DESCRIPTION:
//   - y has shape [M, N] with N = len(x); each row is an independent output
//     dimension sharing the breaks x.
//   - weights nil means unit weights; smooth nil selects p automatically.
//
// Implementation:
//   - Stage 1: validate x, y columns, weights and smooth.
//   - Stage 2: dx = diff(x), dydx = diff(y)/dx.
//   - Stage 3: N = 2 yields the linear PP [dydx | y0] with p = 1.
//   - Stage 4: assemble Qᵗ (N-2×N, offsets 0,1,2), QᵗWQ with W = diag(1/w)
//     and the tridiagonal penalty R (offsets -1,0,1).
//   - Stage 5: p = 1/(1 + tr(R)/(6·tr(QᵗWQ))) unless given.
//   - Stage 6: solve (6(1-p)·QᵗWQ + p·R)·u = diff(dydx)ᵗ.
//   - Stage 7: corrected ordinates yi = yᵗ − 6(1-p)·W·diff(diff(u)/dx).
//   - Stage 8: gather the four coefficient blocks per piece.
//
// Errors:
//   - ErrInvalidInput (with a specific cause) for precondition violations.
//   - ErrSolve (wrapping matrix.ErrSingular) when the system cannot be factorized.
//
// Complexity:
//   - Time O(N·M), Space O(N·M): every operator is banded.
func FitUnivariate(x []float64, y *matrix.Dense, weights []float64, smooth *float64) (*PP, float64, error) {
	if err := validateBreaks("x", x); err != nil {
		return nil, 0, err
	}
	if y == nil || y.Cols() != len(x) {
		return nil, 0, invalidf(ErrLengthMismatch, "y must have len(x) = %d columns", len(x))
	}
	if err := validateFinite("y", y.RawData()); err != nil {
		return nil, 0, err
	}
	if err := validateWeights("weights", weights, len(x)); err != nil {
		return nil, 0, err
	}
	if err := validateSmooth("smooth", smooth); err != nil {
		return nil, 0, err
	}

	n, m := len(x), y.Rows()
	yd := y.RawData()

	dx := make([]float64, n-1)
	floats.SubTo(dx, x[1:], x[:n-1])

	dydx := make([]float64, m*(n-1)) // [M, N-1]
	var r, i int
	for r = 0; r < m; r++ {
		row := yd[r*n : (r+1)*n]
		out := dydx[r*(n-1) : (r+1)*(n-1)]
		floats.SubTo(out, row[1:], row[:n-1])
		floats.Div(out, dx)
	}

	if n == 2 {
		coeffs, err := matrix.NewDense(m, LinearOrder)
		if err != nil {
			return nil, 0, splineErrorf(opFit, err)
		}
		c := coeffs.RawData()
		for r = 0; r < m; r++ {
			c[r*2] = dydx[r]
			c[r*2+1] = yd[r*n]
		}
		pp, err := NewPP(x, coeffs)

		return pp, 1, err
	}

	w := weights
	if w == nil {
		w = make([]float64, n)
		for i = range w {
			w[i] = 1
		}
	}

	qtwq, err := fidelity(dx, w)
	if err != nil {
		return nil, 0, splineErrorf(opFit, err)
	}
	pen, err := penalty(dx)
	if err != nil {
		return nil, 0, splineErrorf(opFit, err)
	}

	var p float64
	if smooth != nil {
		p = *smooth
	} else if p, err = autoSmooth(pen, qtwq); err != nil {
		return nil, 0, splineErrorf(opFit, err)
	}
	s1 := 6 * (1 - p)

	u, err := solveNormal(qtwq, pen, p, dydx, n, m)
	if err != nil {
		return nil, 0, err
	}

	coeffs, err := assemble(x, yd, w, dx, u, p, s1, m)
	if err != nil {
		return nil, 0, splineErrorf(opFit, err)
	}
	pp, err := NewPP(x, coeffs)
	if err != nil {
		return nil, 0, err
	}

	return pp, p, nil
}

// fidelity returns QᵗWQ = (Qᵗ·diag(1/√w))·(Qᵗ·diag(1/√w))ᵗ.
func fidelity(dx, w []float64) (*matrix.Sparse, error) {
	n := len(w)

	odx := make([]float64, n-1)
	for i, d := range dx {
		odx[i] = 1 / d
	}
	head, tail := odx[:n-2], odx[1:]
	body := make([]float64, n-2)
	floats.AddTo(body, head, tail)
	floats.Scale(-1, body)

	qt, err := matrix.Diags([][]float64{head, body, tail}, []int{0, 1, 2}, n-2, n)
	if err != nil {
		return nil, err
	}

	sqrw := make([]float64, n)
	for i, v := range w {
		sqrw[i] = 1 / math.Sqrt(v)
	}
	wm, err := matrix.Diags([][]float64{sqrw}, []int{0}, n, n)
	if err != nil {
		return nil, err
	}

	qtw, err := matrix.MulSparse(qt, wm)
	if err != nil {
		return nil, err
	}

	return matrix.MulSparse(qtw, qtw.Transpose())
}

// penalty returns the (N-2)×(N-2) tridiagonal roughness matrix R.
func penalty(dx []float64) (*matrix.Sparse, error) {
	k := len(dx) - 1 // N-2
	head, tail := dx[:k], dx[1:]
	body := make([]float64, k)
	floats.AddTo(body, head, tail)
	floats.Scale(2, body)

	return matrix.Diags([][]float64{tail, body, head}, []int{-1, 0, 1}, k, k)
}

// autoSmooth balances the traces of R and QᵗWQ.
func autoSmooth(pen, qtwq *matrix.Sparse) (float64, error) {
	trR, err := matrix.Trace(pen)
	if err != nil {
		return 0, err
	}
	trQ, err := matrix.Trace(qtwq)
	if err != nil {
		return 0, err
	}

	return 1 / (1 + trR/(6*trQ)), nil
}

// solveNormal solves (6(1-p)·QᵗWQ + p·R)·u = diff(dydx)ᵗ, u of shape [N-2, M].
func solveNormal(qtwq, pen *matrix.Sparse, p float64, dydx []float64, n, m int) (*matrix.Dense, error) {
	a1, err := matrix.ScaleSparse(qtwq, 6*(1-p))
	if err != nil {
		return nil, splineErrorf(opFit, err)
	}
	a2, err := matrix.ScaleSparse(pen, p)
	if err != nil {
		return nil, splineErrorf(opFit, err)
	}
	a, err := matrix.AddSparse(a1, a2)
	if err != nil {
		return nil, splineErrorf(opFit, err)
	}

	b, err := matrix.NewDense(n-2, m)
	if err != nil {
		return nil, splineErrorf(opFit, err)
	}
	bd := b.RawData()
	var r, i int
	for r = 0; r < m; r++ {
		row := dydx[r*(n-1) : (r+1)*(n-1)]
		for i = 0; i < n-2; i++ {
			bd[i*m+r] = row[i+1] - row[i]
		}
	}

	u, err := matrix.SolveSym(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opFit, ErrSolve, err)
	}

	return u, nil
}

// assemble builds the [M, pieces*4] coefficient matrix from the solution u.
func assemble(x, yd, w, dx []float64, u *matrix.Dense, p, s1 float64, m int) (*matrix.Dense, error) {
	n := len(x)
	pieces := n - 1
	ud := u.RawData()

	// padded u: row 0 and row n-1 are zero, rows 1..n-2 hold the solution.
	upad := func(i, r int) float64 {
		if i == 0 || i == n-1 {
			return 0
		}
		return ud[(i-1)*m+r]
	}

	coeffs, err := matrix.NewDense(m, pieces*CubicOrder)
	if err != nil {
		return nil, err
	}
	c := coeffs.RawData()
	cols := pieces * CubicOrder

	d1 := make([]float64, pieces)
	yi := make([]float64, n)
	var r, i int
	for r = 0; r < m; r++ {
		for i = 0; i < pieces; i++ {
			d1[i] = (upad(i+1, r) - upad(i, r)) / dx[i]
		}
		// d2 = diff of d1 padded with zeros on both ends.
		for i = 0; i < n; i++ {
			var d2 float64
			if i < pieces {
				d2 = d1[i]
			}
			if i > 0 {
				d2 -= d1[i-1]
			}
			yi[i] = yd[r*n+i] - s1*d2/w[i]
		}

		base := r * cols
		for i = 0; i < pieces; i++ {
			c3h, c3t := p*upad(i, r), p*upad(i+1, r)
			c[base+i] = (c3t - c3h) / dx[i]
			c[base+pieces+i] = 3 * c3h
			c[base+2*pieces+i] = (yi[i+1]-yi[i])/dx[i] - (2*c3h+c3t)*dx[i]
			c[base+3*pieces+i] = yi[i]
		}
	}

	return coeffs, nil
}
