// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVectorNorms checks [3,4] in both families and both orientations.
func TestVectorNorms(t *testing.T) {
	dense := mustVec(t, matrix.Row, 3, 4)
	sparse, err := matrix.NewSparseVector[float64](2, matrix.Column)
	require.NoError(t, err)
	require.NoError(t, sparse.Set(0, 3))
	require.NoError(t, sparse.Set(1, -4))

	for name, v := range map[string]*matrix.Vector[float64]{"dense": dense, "sparse": sparse} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 5.0, v.Norm(), 1e-12)
			assert.InDelta(t, 25.0, v.NormSquared(), 1e-12)
			assert.InDelta(t, 4.0, v.InfinityNorm(), 1e-12)
			assert.InDelta(t, 7.0, v.OneNorm(), 1e-12)
		})
	}
}

// TestVectorNormsIntegerAndComplex use the element magnitude, not the raw value.
func TestVectorNormsIntegerAndComplex(t *testing.T) {
	iv, err := matrix.NewVectorFrom([]int{-3, 4}, matrix.Row)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, iv.Norm(), 1e-12)

	cv, err := matrix.NewVectorFrom([]complex128{3 + 4i}, matrix.Column)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, cv.Norm(), 1e-12)
}

// TestVectorOrientation derives orientation from the owned shape.
func TestVectorOrientation(t *testing.T) {
	v := mustVec(t, matrix.Column, 1, 2, 3)
	assert.Equal(t, matrix.Column, v.Orientation())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Matrix().Rows())

	vt := v.Transpose()
	assert.Equal(t, matrix.Row, vt.Orientation())
	assert.Equal(t, []float64{1, 2, 3}, vt.Slice())
	assert.Equal(t, matrix.Column, vt.Orientation().Flip())
}

// TestVectorAtSet checks bounds and element round trips.
func TestVectorAtSet(t *testing.T) {
	v, err := matrix.NewVector[float64](3, matrix.Row)
	require.NoError(t, err)
	require.NoError(t, v.Set(2, 1.5))
	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), matrix.ErrOutOfRange)

	_, err = matrix.NewVector[float64](0, matrix.Row)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewVectorFunc[float64](2, matrix.Row, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
}

// TestVectorConstructors covers the filled and func forms.
func TestVectorConstructors(t *testing.T) {
	f, err := matrix.NewVectorFilled(3, matrix.Column, 2.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, f.Slice())

	g, err := matrix.NewVectorFunc(4, matrix.Row, func(i int) float64 { return float64(i * i) })
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 4, 9}, g.Slice())
}

// TestDotAndDistance mix families and orientations.
func TestDotAndDistance(t *testing.T) {
	u := mustVec(t, matrix.Row, 1, 2, 3)
	w := mustVec(t, matrix.Column, 4, 0, -1)

	d, err := matrix.Dot(u, w)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	s, err := matrix.NewSparseVector[float64](3, matrix.Row)
	require.NoError(t, err)
	require.NoError(t, s.Set(2, 2))
	d, err = u.Dot(s)
	require.NoError(t, err)
	assert.Equal(t, 6.0, d)
	d, err = s.Dot(u)
	require.NoError(t, err)
	assert.Equal(t, 6.0, d)

	dist, err := matrix.Distance(u, w)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(9+4+16), dist, 1e-12)

	d2, err := matrix.DistanceSquared(u, s)
	require.NoError(t, err)
	assert.InDelta(t, 1+4+1, d2, 1e-12)

	_, err = matrix.Dot(u, mustVec(t, matrix.Row, 1, 2))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Distance(u, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDistanceSquaredExact gives bit-identical sums on dense and sparse
// vectors, equal to Σ(u_i−v_i)² accumulated in index order.
func TestDistanceSquaredExact(t *testing.T) {
	const n = 257
	a, b := randomDense(t, 1, n, 7), randomDense(t, 1, n, 11)
	u, err := matrix.AsVector[float64](a)
	require.NoError(t, err)
	v, err := matrix.AsVector[float64](b)
	require.NoError(t, err)

	sv, err := matrix.NewSparseVector[float64](n, matrix.Row)
	require.NoError(t, err)
	us := u.Slice()
	var want float64
	for i, x := range v.Slice() {
		require.NoError(t, sv.Set(i, x))
		d := us[i] - x
		want += float64(d * d)
	}

	dense, err := matrix.DistanceSquared(u, v)
	require.NoError(t, err)
	generic, err := matrix.DistanceSquared(u, sv)
	require.NoError(t, err)
	assert.Equal(t, want, dense)
	assert.Equal(t, want, generic)
}

// TestVectorArithmetic covers Add, Sub, Hadamard, Scale, DivScalar and Neg.
func TestVectorArithmetic(t *testing.T) {
	a := mustVec(t, matrix.Row, 1, 2, 3)
	b := mustVec(t, matrix.Row, 4, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.Slice())

	back, err := sum.Sub(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))

	h, err := a.Hadamard(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 10, 18}, h.Slice())

	assert.Equal(t, []float64{2, 4, 6}, a.Scale(2).Slice())
	assert.Equal(t, []float64{-1, -2, -3}, a.Neg().Slice())

	q, err := b.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2.5, 3}, q.Slice())
	_, err = b.DivScalar(0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	_, err = a.Add(b.Transpose())
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestVectorCloneAndEqual checks independence and approximate comparison.
func TestVectorCloneAndEqual(t *testing.T) {
	a := mustVec(t, matrix.Row, 1, 2)
	c := a.Clone()
	require.NoError(t, c.Set(0, 1+1e-9))
	assert.False(t, a.Equal(c))

	ok, err := a.ApproxEqual(c, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = a.ApproxEqual(c, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	var nilVec *matrix.Vector[float64]
	assert.False(t, a.Equal(nilVec))
}

// TestVectorStringFormat renders a row vector in both layouts.
func TestVectorStringFormat(t *testing.T) {
	v := mustVec(t, matrix.Row, 1.5, 2)
	assert.Equal(t, "[1.5, 2]\n", v.String())
	assert.Equal(t, "1.5 2\n", v.Format(matrix.WithWidth(0), matrix.WithPrecision(2)))
}
