// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/csaps/matrix"
	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	assert.NoError(t, matrix.ValidateDims(1, 1))
	assert.ErrorIs(t, matrix.ValidateDims(0, 4), matrix.ErrInvalidDimensions)
	assert.ErrorIs(t, matrix.ValidateDims(3, -1), matrix.ErrInvalidDimensions)

	assert.NoError(t, matrix.ValidateOffset(-2, 3, 5))
	assert.NoError(t, matrix.ValidateOffset(4, 3, 5))
	assert.ErrorIs(t, matrix.ValidateOffset(-3, 3, 5), matrix.ErrOutOfRange)
	assert.ErrorIs(t, matrix.ValidateOffset(5, 3, 5), matrix.ErrOutOfRange)

	a := MustDenseFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDenseFrom(t, 3, 2, 1, 2, 3, 4, 5, 6)
	assert.NoError(t, matrix.ValidateMulCompatible(a, b))
	assert.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSameShape(a, a))
	assert.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	assert.NoError(t, matrix.ValidateSquare(MustDiags(t, [][]float64{{1, 1}}, []int{0}, 2, 2)))
}
