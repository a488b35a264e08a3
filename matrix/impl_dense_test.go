// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/arith"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument) // the root category

	_, err = matrix.NewDense[int](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZero verifies shape and that every cell starts at zero.
func TestNewDenseZero(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 4)
	require.NoError(t, err)

	r, c := m.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.False(t, m.IsSquare())
	assert.Equal(t, matrix.DenseStorage, m.Kind())
	requireCells(t, m, make([]float64, 12)...)
}

// TestNewDenseUnsupportedType checks that an element type without arithmetic is refused.
func TestNewDenseUnsupportedType(t *testing.T) {
	_, err := matrix.NewDense[string](2, 2)
	require.ErrorIs(t, err, matrix.ErrUnsupportedElementType)
	require.ErrorIs(t, err, arith.ErrUnsupportedElementType)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds) // deprecated alias
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestDenseConstructors covers the filled, func, rows, slice and identity builders.
func TestDenseConstructors(t *testing.T) {
	f, err := matrix.NewDenseFilled(2, 2, 3.5)
	require.NoError(t, err)
	requireCells(t, f, 3.5, 3.5, 3.5, 3.5)

	g, err := matrix.NewDenseFunc(2, 3, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)
	requireCells(t, g, 0, 1, 2, 10, 11, 12)

	_, err = matrix.NewDenseFunc[float64](2, 2, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)

	r, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	requireCells(t, r, 1, 2, 3, 4)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.NewDenseFromRows[float64](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	src := []float64{1, 2, 3, 4}
	s, err := matrix.NewDenseFromSlice(2, 2, src)
	require.NoError(t, err)
	src[0] = 99 // the matrix owns a copy
	requireCells(t, s, 1, 2, 3, 4)

	_, err = matrix.NewDenseFromSlice(2, 2, []float64{1})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	id, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Slice())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 0, 0, 2)
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	requireCells(t, m, 1, 0, 0, 2)
	requireCells(t, clone, 3, 0, 0, 2)
	assert.False(t, m.Equal(clone))
}

// TestDenseIteration checks Do visits every cell, DoNonZero skips zeros and
// both stop when the callback returns false.
func TestDenseIteration(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 0, 0, 4)

	var all, nz int
	m.Do(func(_, _ int, _ float64) bool { all++; return true })
	m.DoNonZero(func(_, _ int, _ float64) bool { nz++; return true })
	assert.Equal(t, 4, all)
	assert.Equal(t, 2, nz)

	var seen int
	m.Do(func(_, _ int, _ float64) bool { seen++; return false })
	assert.Equal(t, 1, seen)
}

// TestDenseApply maps every cell in place.
func TestDenseApply(t *testing.T) {
	m := mustDense(t, 1, 3, 1, 2, 3)
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * float64(j+1) }))
	requireCells(t, m, 1, 4, 9)
	require.ErrorIs(t, m.Apply(nil), matrix.ErrNilFunc)
}

// TestDenseTransposeInvolution verifies T(T(A)) == A on a non-square matrix.
func TestDenseTransposeInvolution(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	at := a.Transpose()
	assert.Equal(t, 3, at.Rows())
	requireCells(t, at, 1, 4, 2, 5, 3, 6)
	assert.True(t, at.Transpose().Equal(a))
}

// TestDenseScaleNeg checks the direct-loop scalar methods.
func TestDenseScaleNeg(t *testing.T) {
	a := mustDense(t, 1, 3, 1, -2, 3)
	requireCells(t, a.Scale(2), 2, -4, 6)
	requireCells(t, a.Neg(), -1, 2, -3)
	requireCells(t, a, 1, -2, 3) // source untouched

	d, err := a.DivScalar(2)
	require.NoError(t, err)
	requireCells(t, d, 0.5, -1, 1.5)

	_, err = a.DivScalar(0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

// TestDenseString renders the short debug form.
func TestDenseString(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2.5, -3, 0)
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", a.String())
}

// TestDenseIntegers exercises a non-float element type end to end.
func TestDenseIntegers(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	p, err := a.Mul(a)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 10, 15, 22}, p.Slice())

	_, err = a.DivScalar(0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

// TestDenseComplex exercises complex elements and their conjugate-free product.
func TestDenseComplex(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]complex128{{1 + 1i, 0}, {0, 2}})
	require.NoError(t, err)
	p, err := a.Mul(a)
	require.NoError(t, err)
	assert.Equal(t, []complex128{2i, 0, 0, 4}, p.Slice())
}
