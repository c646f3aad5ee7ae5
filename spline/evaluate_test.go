// SPDX-License-Identifier: MIT
package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/csaps/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitize_Sorted(t *testing.T) {
	x := []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5}
	edges := []float64{math.Inf(-1), 2, 3, 4, math.Inf(1)}

	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3, 3}, spline.Digitize(x, edges))
}

func TestDigitize_Unsorted(t *testing.T) {
	x := []float64{1, 2, 1, 3, 3, 2, 1, 4, 5, 5, 4, 4, 3, 3, 2, 1}
	edges := []float64{math.Inf(-1), 2, 3, 4, 5, math.Inf(1)}

	assert.Equal(t,
		[]int{0, 1, 0, 2, 2, 1, 0, 3, 4, 4, 3, 3, 2, 2, 1, 0},
		spline.Digitize(x, edges))
}

func TestDigitize_Edges(t *testing.T) {
	edges := []float64{0, 1, 2}

	// A site on a breakpoint belongs to the piece on its right.
	assert.Equal(t, []int{1}, spline.Digitize([]float64{1}, edges))
	// Values outside every interval keep index 0.
	assert.Equal(t, []int{0, 0, 1}, spline.Digitize([]float64{-1, 2, 1.5}, edges))
	assert.Empty(t, spline.Digitize(nil, edges))
}

// TestPP_Extrapolation extends the edge pieces beyond the breaks.
func TestPP_Extrapolation(t *testing.T) {
	pp, _, err := spline.FitUnivariate([]float64{1, 2, 3, 4}, mustDense(t, 1, 4, 1, 2, 3, 4), nil, nil)
	require.NoError(t, err)

	ys, err := pp.Evaluate([]float64{-1, 0, 5, 10})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 0, 5, 10}, ys.RawData(), 1e-12)
}

func TestEvaluatePP_Errors(t *testing.T) {
	c := mustDense(t, 1, 4, 1, 1, 0, 1)

	_, err := spline.EvaluatePP(2, 2, []float64{0, 1, 2}, c, nil)
	assert.ErrorIs(t, err, spline.ErrEmptyQuery)

	_, err = spline.EvaluatePP(4, 2, []float64{0, 1, 2}, c, []float64{0.5})
	assert.ErrorIs(t, err, spline.ErrLengthMismatch)
	assert.ErrorIs(t, err, spline.ErrInvalidInput)

	_, err = spline.EvaluatePP(2, 2, []float64{0, 1}, c, []float64{0.5})
	assert.ErrorIs(t, err, spline.ErrLengthMismatch)

	ys, err := spline.EvaluatePP(2, 2, []float64{0, 1, 2}, c, []float64{0.5, 1.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5}, ys.RawData())
}

func TestPP_Evaluate(t *testing.T) {
	var nilPP *spline.PP
	_, err := nilPP.Evaluate([]float64{1})
	assert.ErrorIs(t, err, spline.ErrNotFitted)

	pp, err := spline.NewPP([]float64{0, 1, 2}, mustDense(t, 1, 4, 0, 0, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, pp.Order())
	assert.Equal(t, "PP(ndim=1, order=2, pieces=2)", pp.String())

	_, err = pp.Evaluate([]float64{math.NaN()})
	assert.ErrorIs(t, err, spline.ErrNonFinite)
	_, err = pp.Evaluate([]float64{})
	assert.ErrorIs(t, err, spline.ErrEmptyQuery)

	_, err = spline.NewPP([]float64{0}, mustDense(t, 1, 2, 0, 0))
	assert.ErrorIs(t, err, spline.ErrTooFewPoints)
	_, err = spline.NewPP([]float64{0, 1, 2}, mustDense(t, 1, 3, 0, 0, 0))
	assert.ErrorIs(t, err, spline.ErrLengthMismatch)
	_, err = spline.NewPP([]float64{0, 1}, nil)
	assert.ErrorIs(t, err, spline.ErrLengthMismatch)
}

func TestSpline_EvaluateNil(t *testing.T) {
	var s *spline.Spline
	_, err := s.Evaluate([]float64{1})
	assert.ErrorIs(t, err, spline.ErrNotFitted)

	var g *spline.GridPP
	_, err = g.Evaluate([][]float64{{1}})
	assert.ErrorIs(t, err, spline.ErrNotFitted)
}
