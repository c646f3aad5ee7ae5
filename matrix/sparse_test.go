// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/csaps/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTriplets_Compress checks unordered ingestion and both storage orders.
func TestTriplets_Compress(t *testing.T) {
	tr := matrix.NewTriplets(2, 3)
	require.NoError(t, tr.Add(1, 2, 6))
	require.NoError(t, tr.Add(0, 1, 2))
	require.NoError(t, tr.Add(1, 0, 4))
	require.NoError(t, tr.Add(0, 0, 1))
	assert.Equal(t, 4, tr.Len())

	want := [][]float64{{1, 2, 0}, {4, 0, 6}}

	csr, err := tr.ToCSR()
	require.NoError(t, err)
	assert.Equal(t, want, ToRows(t, csr))

	csc, err := tr.ToCSC()
	require.NoError(t, err)
	assert.Equal(t, matrix.CSC, csc.Order())
	assert.Equal(t, want, ToRows(t, csc))

	assert.ErrorIs(t, tr.Add(2, 0, 1), matrix.ErrOutOfRange)
	_, err = csr.At(0, 3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewTriplets(0, 1).ToCSR()
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestSparse_Transpose verifies the storage flip and the value layout.
func TestSparse_Transpose(t *testing.T) {
	s := MustDiags(t, diagsFixture, []int{-1, 0, 1}, 3, 5)
	st := s.Transpose()

	assert.Equal(t, matrix.CSC, st.Order())
	r, c := st.Shape()
	assert.Equal(t, 5, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, [][]float64{
		{4, 2, 0},
		{7, 5, 3},
		{0, 8, 6},
		{0, 0, 9},
		{0, 0, 0},
	}, ToRows(t, st))

	// Back to CSR keeps values.
	assert.Equal(t, ToRows(t, st), ToRows(t, st.ToCSR()))
	assert.Equal(t, matrix.CSR, st.ToCSR().Order())
}

// TestMulSparse compares a banded product against its dense expansion.
func TestMulSparse(t *testing.T) {
	a := MustDiags(t, diagsFixture, []int{-1, 0, 1}, 3, 5)
	p, err := matrix.MulSparse(a, a.Transpose())
	require.NoError(t, err)

	// a = [4 7 0 0 0; 2 5 8 0 0; 0 3 6 9 0]
	assert.Equal(t, [][]float64{
		{65, 43, 21},
		{43, 93, 63},
		{21, 63, 126},
	}, ToRows(t, p))

	d, err := p.ToDense()
	require.NoError(t, err)
	assert.Equal(t, []float64{65, 43, 21, 43, 93, 63, 21, 63, 126}, d.RawData())

	_, err = matrix.MulSparse(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulSparse(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddScaleTrace covers the remaining assembly kernels.
func TestAddScaleTrace(t *testing.T) {
	a := MustDiags(t, diagsFixture, []int{-1, 0, 1}, 3, 3)
	b := MustDiags(t, [][]float64{{1, 1, 1}}, []int{0}, 3, 3)

	sum, err := matrix.AddSparse(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{5, 8, 0},
		{1, 6, 9},
		{0, 2, 7},
	}, ToRows(t, sum))
	assert.Equal(t, 7, sum.Nnz(), "coincident entries must merge")

	scaled, err := matrix.ScaleSparse(a, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{8, 16, 0},
		{2, 10, 18},
		{0, 4, 12},
	}, ToRows(t, scaled))

	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	assert.Equal(t, 15.0, tr)

	wide := MustDiags(t, diagsFixture, []int{-1, 0, 1}, 3, 5)
	_, err = matrix.Trace(wide)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.AddSparse(a, wide)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
