// SPDX-License-Identifier: MIT
package csaps_test

import (
	"testing"

	"github.com/katalvlaran/csaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid34 = [][]float64{{1, 2, 3}, {1, 2, 3, 4}}

func planar(t *testing.T) []float64 {
	t.Helper()
	y := make([]float64, 12)
	for i := range y {
		y[i] = float64(i + 1)
	}

	return y
}

func TestMakeGrid_Reproduces(t *testing.T) {
	y := planar(t)
	g, err := csaps.MakeGrid(grid34, array(t, y, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Ndim())
	assert.InDeltaSlice(t, []float64{0.9, 0.9}, g.Smooth(), 1e-12)
	assert.Equal(t, []int{2, 3}, g.PP().Pieces())

	ys, err := g.Evaluate(grid34)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, ys.Shape())
	assert.InDeltaSlice(t, y, ys.Data(), 1e-10)
}

func TestMakeGrid_AxisOptions(t *testing.T) {
	g, err := csaps.MakeGrid(grid34, array(t, planar(t), 3, 4),
		csaps.WithAxisSmooth(1, 0.3),
		csaps.WithAxisWeights(0, []float64{1, 2, 1}),
	)
	require.NoError(t, err)
	sm := g.Smooth()
	// Weights [1, 2, 1] shrink tr(QᵗWQ) to 4: p = 1/(1 + 4/24).
	assert.InDelta(t, 6.0/7.0, sm[0], 1e-12)
	assert.Equal(t, 0.3, sm[1])

	// A plane is unaffected by smoothing or weights.
	ys, err := g.Evaluate([][]float64{{2}, {1.5, 3.5}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ys.Shape())
	assert.InDeltaSlice(t, []float64{5.5, 7.5}, ys.Data(), 1e-10)
}

func TestMakeGrid_Float32(t *testing.T) {
	x := [][]float32{{0, 1, 2}}
	g, err := csaps.MakeGrid(x, array(t, []float32{0, 1, 4}, 3), csaps.WithAxisSmooth[float32](0, 1))
	require.NoError(t, err)

	ys, err := g.Evaluate(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0, 1, 4}, ys.Data(), 1e-5)
}

func TestMakeGrid_Errors(t *testing.T) {
	y := array(t, planar(t), 3, 4)

	_, err := csaps.MakeGrid(grid34, y, csaps.WithAxisSmooth(2, 0.5))
	assert.ErrorIs(t, err, csaps.ErrAxis)
	assert.ErrorIs(t, err, csaps.ErrInvalidInput)

	_, err = csaps.MakeGrid(grid34, y, csaps.WithAxisWeights(5, []float64{1}))
	assert.ErrorIs(t, err, csaps.ErrAxis)

	_, err = csaps.MakeGrid(grid34, y, csaps.WithAxisWeights(1, []float64{1, 1}))
	assert.ErrorIs(t, err, csaps.ErrLengthMismatch)

	_, err = csaps.MakeGrid(grid34[:1], y)
	assert.ErrorIs(t, err, csaps.ErrLengthMismatch)

	var nilGrid *csaps.GridSpline[float64]
	_, err = nilGrid.Evaluate(grid34)
	assert.ErrorIs(t, err, csaps.ErrNotFitted)

	g, err := csaps.MakeGrid(grid34, y)
	require.NoError(t, err)
	_, err = g.Evaluate([][]float64{{1}, {}})
	assert.ErrorIs(t, err, csaps.ErrEmptyQuery)
}
