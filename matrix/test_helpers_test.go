// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for sparse/dense kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/csaps/matrix"
	"github.com/stretchr/testify/require"
)

// MustDenseFrom BUILDS an r×c *Dense from row-major values or fails the test.
func MustDenseFrom(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// MustDiags BUILDS a banded CSR matrix or fails the test.
func MustDiags(t testing.TB, d [][]float64, offsets []int, r, c int) *matrix.Sparse {
	t.Helper()
	s, err := matrix.Diags(d, offsets, r, c)
	require.NoError(t, err, "Diags(%v, %d×%d)", offsets, r, c)

	return s
}

// ToRows RENDERS any Matrix as [][]float64 for readable assertions.
func ToRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// diagsFixture is the 3-diagonal input shared by the Diags tests.
var diagsFixture = [][]float64{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
}
