// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for both storage families.
//   - Keep all data finite and well-formed so exact comparisons stay valid.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions, so
// kernels fall back to their generic At/Set paths.
type hide struct{ matrix.Matrix[float64] }

// mustDense builds an r×c *Dense from row-major vals.
func mustDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	if len(vals) == 0 {
		vals = make([]float64, r*c)
	}
	m, err := matrix.NewDenseFromSlice(r, c, vals)
	require.NoError(t, err)

	return m
}

// mustSparse builds an r×c *Sparse from row-major vals.
func mustSparse(t testing.TB, r, c int, vals ...float64) *matrix.Sparse[float64] {
	t.Helper()
	s, err := matrix.NewSparseFromMatrix[float64](mustDense(t, r, c, vals...))
	require.NoError(t, err)
	requireCRS(t, s)

	return s
}

// requireCRS asserts the CRS structural rules hold.
func requireCRS[T any](t testing.TB, s *matrix.Sparse[T]) {
	t.Helper()
	require.NoError(t, matrix.CheckSparse(s))
}

// mustVec builds a vector of the given orientation from values.
func mustVec(t testing.TB, o matrix.Orientation, vals ...float64) *matrix.Vector[float64] {
	t.Helper()
	v, err := matrix.NewVectorFrom(vals, o)
	require.NoError(t, err)

	return v
}

// randomDense fills an r×c Dense with deterministic U(-1,1) values by seed,
// zeroing roughly one cell in three so sparse paths see structure.
func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDenseFunc(r, c, func(_, _ int) float64 {
		if rng.Intn(3) == 0 {
			return 0
		}
		return rng.Float64()*2 - 1
	})
	require.NoError(t, err)

	return m
}

// requireCells compares m against row-major want.
func requireCells(t testing.TB, m matrix.Matrix[float64], want ...float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows()*m.Cols(), "shape %dx%d", m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i*m.Cols()+j], v, 1e-12, "cell (%d,%d)", i, j)
		}
	}
}

// families yields the same data in both storage families.
func families(t testing.TB, r, c int, vals ...float64) map[string]matrix.Matrix[float64] {
	t.Helper()

	return map[string]matrix.Matrix[float64]{
		"dense":  mustDense(t, r, c, vals...),
		"sparse": mustSparse(t, r, c, vals...),
		"hidden": hide{mustDense(t, r, c, vals...)},
	}
}
