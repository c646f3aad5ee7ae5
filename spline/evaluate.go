// SPDX-License-Identifier: MIT

package spline

import (
	"cmp"
	"math"

	"github.com/katalvlaran/csaps/matrix"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

const opEvaluate = "EvaluatePP"

// Digitize returns, for every x[k], the index i with edges[i] ≤ x[k] < edges[i+1].
// MAIN DESCRIPTION:
//   - edges must be increasing; x may be unsorted and hold duplicates.
//
// Implementation:
//   - Stage 1: order positions of x by value (stable).
//   - Stage 2: scan the sorted values once, resuming each interval search
//     where the previous value was found.
//   - Stage 3: scatter indices back to the original positions.
//
// Behavior highlights:
//   - The lower bound is inclusive within a relative √ε tolerance, the upper
//     bound is strict, so a site equal to a breakpoint lands in the piece on
//     its right.
//   - Values found in no interval (NaN, or not below the last edge) keep index 0.
//
// Complexity:
//   - Time O(K·log K + len(edges)), Space O(K).
func Digitize(x, edges []float64) []int {
	indices := make([]int, len(x))
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(x[a], x[b]) })

	kstart := 0
	var k int
	var a, bl, br float64
	for _, pos := range order {
		a = x[pos]
		for k = kstart; k+1 < len(edges); k++ {
			bl, br = edges[k], edges[k+1]
			if (a > bl || almostEqual(a, bl)) && a < br {
				indices[pos] = k
				kstart = k
				break
			}
		}
	}

	return indices
}

// EvaluatePP evaluates a PP given by its parts at the sites xi.
// MAIN DESCRIPTION:
//   - coeffs has shape [M, pieces*order]; the result has shape [M, len(xi)].
//
// Implementation:
//   - Stage 1: edges = [-Inf, breaks[1:pieces], +Inf]; indices = Digitize(xi, edges).
//   - Stage 2: local coordinates t = xi − breaks[indices].
//   - Stage 3: nested multiplication over whole rows:
//     values = coeffs[:, idx]; repeat order-1 times:
//     idx += pieces; values = values·t + coeffs[:, idx].
//
// Errors:
//   - ErrInvalidInput/ErrLengthMismatch when coeffs does not match order·pieces
//     or breaks does not have pieces+1 entries.
//   - ErrInvalidInput/ErrEmptyQuery for empty xi.
//
// Complexity:
//   - Time O(M·K·order + K·log K), Space O(M·K).
func EvaluatePP(order, pieces int, breaks []float64, coeffs *matrix.Dense, xi []float64) (*matrix.Dense, error) {
	if coeffs == nil || order < 1 || pieces < 1 || len(breaks) != pieces+1 || coeffs.Cols() != order*pieces {
		return nil, invalidf(ErrLengthMismatch, "%s: order %d, pieces %d, %d breaks", opEvaluate, order, pieces, len(breaks))
	}
	if len(xi) == 0 {
		return nil, invalidf(ErrEmptyQuery, "%s: len(xi) = 0", opEvaluate)
	}

	edges := make([]float64, 0, pieces+1)
	edges = append(edges, math.Inf(-1))
	edges = append(edges, breaks[1:pieces]...)
	edges = append(edges, math.Inf(1))

	idx := Digitize(xi, edges)
	k := len(xi)
	t := make([]float64, k)
	for j, i := range idx {
		t[j] = xi[j] - breaks[i]
	}

	m := coeffs.Rows()
	out, err := matrix.NewDense(m, k)
	if err != nil {
		return nil, splineErrorf(opEvaluate, err)
	}

	cd, od := coeffs.RawData(), out.RawData()
	cols := order * pieces
	gathered := make([]float64, k)
	var r, d, j int
	for r = 0; r < m; r++ {
		crow := cd[r*cols : (r+1)*cols]
		values := od[r*k : (r+1)*k]
		for j = range idx {
			values[j] = crow[idx[j]]
		}
		for d = 1; d < order; d++ {
			off := d * pieces
			for j = range idx {
				gathered[j] = crow[idx[j]+off]
			}
			floats.Mul(values, t)
			floats.Add(values, gathered)
		}
	}

	return out, nil
}
