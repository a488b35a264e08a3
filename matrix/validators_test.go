// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidators exercises each validator's accept and reject branch.
func TestValidators(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustSparse(t, 3, 2)
	sq := mustDense(t, 2, 2)

	require.NoError(t, matrix.ValidateDims(1, 1))
	require.ErrorIs(t, matrix.ValidateDims(0, 1), matrix.ErrInvalidDimensions)

	require.NoError(t, matrix.ValidateNotNil[float64](a))
	require.ErrorIs(t, matrix.ValidateNotNil[float64](nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateIndex[float64](a, 1, 2))
	require.ErrorIs(t, matrix.ValidateIndex[float64](a, 2, 0), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateSameShape[float64](a, a))
	require.ErrorIs(t, matrix.ValidateSameShape[float64](a, b), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape[float64](nil, a), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulShape[float64](a, b))
	require.ErrorIs(t, matrix.ValidateMulShape[float64](a, a), matrix.ErrShapeMismatch)

	require.NoError(t, matrix.ValidateSquare[float64](sq))
	require.ErrorIs(t, matrix.ValidateSquare[float64](a), matrix.ErrShapeMismatch)

	u := mustVec(t, matrix.Row, 1, 2)
	require.NoError(t, matrix.ValidateVector(u))
	require.ErrorIs(t, matrix.ValidateVector[float64](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSameLength(u, u.Transpose()))
	require.ErrorIs(t, matrix.ValidateSameLength(u, mustVec(t, matrix.Row, 1)), matrix.ErrShapeMismatch)
}
