// SPDX-License-Identifier: MIT

package solve_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/solve"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SolveSuite runs every engine against the same well-conditioned system.
type SolveSuite struct {
	suite.Suite

	dense  *matrix.Dense[float64]
	sparse *matrix.Sparse[float64]
	b      *matrix.Vector[float64]
	want   []float64
}

// SetupTest builds a 5×5 diagonally dominant tridiagonal system with a
// known solution.
func (s *SolveSuite) SetupTest() {
	const n = 5
	d, err := matrix.NewDenseFunc(n, n, func(i, j int) float64 {
		switch {
		case i == j:
			return 4
		case i-j == 1 || j-i == 1:
			return -1
		}
		return 0
	})
	s.Require().NoError(err)
	s.dense = d
	s.sparse = d.ToSparse()

	s.want = []float64{1, 2, 3, 4, 5}
	x, err := matrix.NewVectorFrom(s.want, matrix.Column)
	s.Require().NoError(err)
	s.b, err = matrix.MatVec[float64](d, x)
	s.Require().NoError(err)
}

func (s *SolveSuite) TestDense() {
	x, err := solve.Dense(s.dense, s.b)
	s.Require().NoError(err)
	s.Equal(matrix.Column, x.Orientation())
	s.InDeltaSlice(s.want, x.Slice(), 1e-12)
}

func (s *SolveSuite) TestDenseOnSparseInput() {
	x, err := solve.Dense(s.sparse, s.b, solve.WithResidualTolerance(1e-10))
	s.Require().NoError(err)
	s.InDeltaSlice(s.want, x.Slice(), 1e-12)
}

func (s *SolveSuite) TestSparse() {
	x, err := solve.Sparse(s.sparse, s.b)
	s.Require().NoError(err)
	s.InDeltaSlice(s.want, x.Slice(), 1e-9)
}

func (s *SolveSuite) TestSolveDispatch() {
	for _, a := range []matrix.Matrix[float64]{s.dense, s.sparse} {
		x, err := solve.Solve(a, s.b)
		s.Require().NoError(err)
		s.InDeltaSlice(s.want, x.Slice(), 1e-9)
	}
}

func (s *SolveSuite) TestRowRHSKeepsOrientation() {
	x, err := solve.Solve(s.sparse, s.b.Transpose())
	s.Require().NoError(err)
	s.Equal(matrix.Row, x.Orientation())
}

func (s *SolveSuite) TestDenseMatrix() {
	id, err := matrix.NewIdentity[float64](5)
	s.Require().NoError(err)
	inv, err := solve.DenseMatrix(s.dense, id)
	s.Require().NoError(err)

	prod, err := s.dense.Mul(inv)
	s.Require().NoError(err)
	ok, err := matrix.ApproxEqual[float64](prod, id, 1e-12)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *SolveSuite) TestShapeErrors() {
	short, err := matrix.NewVector[float64](3, matrix.Column)
	s.Require().NoError(err)
	_, err = solve.Dense(s.dense, short)
	s.ErrorIs(err, matrix.ErrShapeMismatch)
	_, err = solve.Sparse(s.sparse, short)
	s.ErrorIs(err, matrix.ErrShapeMismatch)

	rect, err := matrix.NewDense[float64](2, 3)
	s.Require().NoError(err)
	_, err = solve.Solve(rect, s.b)
	s.ErrorIs(err, matrix.ErrShapeMismatch)

	_, err = solve.Solve(nil, s.b)
	s.ErrorIs(err, matrix.ErrNilMatrix)
	_, err = solve.Dense(s.dense, nil)
	s.ErrorIs(err, matrix.ErrNilMatrix)
}

func (s *SolveSuite) TestSingular() {
	// row 2 repeats row 1
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2, 0}, {1, 2, 0}, {0, 0, 3}})
	s.Require().NoError(err)
	b, err := matrix.NewVectorFrom([]float64{1, 1, 1}, matrix.Column)
	s.Require().NoError(err)
	_, err = solve.Dense(a, b)
	s.Error(err)
	s.True(isGateError(err))

	// an empty row is caught before the sparse engine runs
	z, err := matrix.NewSparseFromRows([][]float64{{1, 0}, {0, 0}})
	s.Require().NoError(err)
	b2, err := matrix.NewVectorFrom([]float64{1, 1}, matrix.Column)
	s.Require().NoError(err)
	_, err = solve.Sparse(z, b2)
	s.ErrorIs(err, solve.ErrSingular)
}

func (s *SolveSuite) TestDet() {
	a, err := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
	s.Require().NoError(err)
	det, err := solve.Det(a)
	s.Require().NoError(err)
	s.InDelta(5.0, det, 1e-12)

	_, err = solve.Det(s.b.Matrix())
	s.ErrorIs(err, matrix.ErrShapeMismatch)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// isGateError reports whether err is one of the accuracy gate errors.
func isGateError(err error) bool {
	return errors.Is(err, solve.ErrSingular) || errors.Is(err, solve.ErrIllConditioned)
}

// TestOptionPanics rejects nonsense gate values at construction.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { solve.WithConditionLimit(0.5) })
	require.Panics(t, func() { solve.WithResidualTolerance(0) })
	require.NotPanics(t, func() { solve.WithoutResidualCheck() })
}
