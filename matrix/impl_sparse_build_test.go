// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tf = matrix.Triple[float64]

// TestTriplesLastWins resolves duplicate coordinates by input order.
func TestTriplesLastWins(t *testing.T) {
	s, err := matrix.NewSparseFromTriples(2, 2, []tf{{0, 0, 5}, {0, 0, 7}})
	require.NoError(t, err)
	v, _ := s.At(0, 0)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, 1, s.NNZ())
	requireCRS(t, s)
}

// TestTriplesZeroDropped stores nothing for a zero value, including a zero
// that overrides an earlier nonzero duplicate.
func TestTriplesZeroDropped(t *testing.T) {
	s, err := matrix.NewSparseFromTriples(2, 2, []tf{{1, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0, s.NNZ())

	s, err = matrix.NewSparseFromTriples(2, 2, []tf{{1, 1, 3}, {0, 1, 2}, {1, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, s.NNZ())
	requireCells(t, s, 0, 2, 0, 0)
}

// TestTriplesUnordered sorts arbitrary input into CRS order without touching it.
func TestTriplesUnordered(t *testing.T) {
	in := []tf{{2, 1, 6}, {0, 2, 3}, {1, 0, 4}, {0, 0, 1}, {2, 0, 5}}
	snapshot := append([]tf(nil), in...)

	s, err := matrix.NewSparseFromTriples(3, 3, in)
	require.NoError(t, err)
	requireCRS(t, s)
	requireCells(t, s, 1, 0, 3, 4, 0, 0, 5, 6, 0)
	assert.Equal(t, snapshot, in)

	rebuilt, err := matrix.NewSparseFromTriples(3, 3, s.Triples())
	require.NoError(t, err)
	assert.True(t, rebuilt.Equal(s))
}

// TestTriplesOutOfRange names the offending triple.
func TestTriplesOutOfRange(t *testing.T) {
	_, err := matrix.NewSparseFromTriples(2, 2, []tf{{0, 0, 1}, {2, 0, 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "triple 1")

	_, err = matrix.NewSparseFromTriples(0, 2, []tf{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestSparseFromMatrix compresses Dense, Sparse and wrapped sources alike.
func TestSparseFromMatrix(t *testing.T) {
	for name, m := range families(t, 2, 3, 0, 1, 0, 2, 0, 3) {
		t.Run(name, func(t *testing.T) {
			s, err := matrix.NewSparseFromMatrix(m)
			require.NoError(t, err)
			requireCRS(t, s)
			assert.Equal(t, 3, s.NNZ())
			requireCells(t, s, 0, 1, 0, 2, 0, 3)
		})
	}

	_, err := matrix.NewSparseFromMatrix[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewSparseFromRows([][]float64{{1}, {1, 2}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
