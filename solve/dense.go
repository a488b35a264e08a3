// SPDX-License-Identifier: MIT

package solve

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/mat"
)

// Dense solves A·x = b by LU factorization with partial pivoting.
// Implementation:
//   - Stage 1: validate A square and len(b) == n.
//   - Stage 2: copy A into gonum storage and factorize.
//   - Stage 3: gate on the condition estimate (Inf → ErrSingular,
//     above the limit → ErrIllConditioned).
//   - Stage 4: triangular solves; optional residual check.
//
// Any storage family is accepted; A is read through its nonzeros.
// Complexity: O(n³).
func Dense(a matrix.Matrix[float64], b *matrix.Vector[float64], opts ...Option) (*matrix.Vector[float64], error) {
	if err := validateSystem(a, b); err != nil {
		return nil, solveErrorf(opDense, err)
	}
	o := gatherOptions(false, opts...)

	lu, err := factorize(a, o)
	if err != nil {
		return nil, solveErrorf(opDense, err)
	}
	bv, err := matrix.VecToGonum(b)
	if err != nil {
		return nil, solveErrorf(opDense, err)
	}
	var xv mat.VecDense
	if err := acceptCondition(lu.SolveVecTo(&xv, false, bv)); err != nil {
		return nil, solveErrorf(opDense, err)
	}
	x, err := matrix.VecFromGonum(&xv, b.Orientation())
	if err != nil {
		return nil, solveErrorf(opDense, err)
	}
	if o.residual {
		if err := checkResidual(a, x, b, o.residualTol); err != nil {
			return nil, solveErrorf(opDense, err)
		}
	}

	return x, nil
}

// DenseMatrix solves A·X = B for every column of B at once.
// Errors: as Dense; ErrShapeMismatch when B.Rows() != n.
// Complexity: O(n³ + n²·k) for k = B.Cols().
func DenseMatrix(a, b matrix.Matrix[float64], opts ...Option) (*matrix.Dense[float64], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opDenseMatrix, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, solveErrorf(opDenseMatrix, err)
	}
	if err := matrix.ValidateMulShape(a, b); err != nil {
		return nil, solveErrorf(opDenseMatrix, err)
	}
	o := gatherOptions(false, opts...)

	lu, err := factorize(a, o)
	if err != nil {
		return nil, solveErrorf(opDenseMatrix, err)
	}
	bg, err := matrix.ToGonum(b)
	if err != nil {
		return nil, solveErrorf(opDenseMatrix, err)
	}
	var xg mat.Dense
	if err := acceptCondition(lu.SolveTo(&xg, false, bg)); err != nil {
		return nil, solveErrorf(opDenseMatrix, err)
	}

	return matrix.FromGonum(&xg)
}

// Det returns the determinant of a square A through its LU factors.
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch.
// Complexity: O(n³).
func Det(a matrix.Matrix[float64]) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, solveErrorf(opDet, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, solveErrorf(opDet, err)
	}
	g, err := matrix.ToGonum(a)
	if err != nil {
		return 0, solveErrorf(opDet, err)
	}
	var lu mat.LU
	lu.Factorize(g)

	return lu.Det(), nil
}

// factorize copies a into gonum storage, factorizes it and applies the
// condition gate.
func factorize(a matrix.Matrix[float64], o Options) (*mat.LU, error) {
	g, err := matrix.ToGonum(a)
	if err != nil {
		return nil, err
	}
	var lu mat.LU
	lu.Factorize(g)
	switch cond := lu.Cond(); {
	case math.IsInf(cond, 1):
		return nil, ErrSingular
	case cond > o.condLimit:
		return nil, fmt.Errorf("condition %.3g > %.3g: %w", cond, o.condLimit, ErrIllConditioned)
	}

	return &lu, nil
}

// acceptCondition drops the mat.Condition warning: the condition gate in
// factorize already ran with the caller's limit.
func acceptCondition(err error) error {
	var c mat.Condition
	if err == nil || errors.As(err, &c) {
		return nil
	}

	return err
}
