// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reductions and data-preparation transforms used by map trainers and
//     visualizers before feeding samples into distance computations.
//
// Exposed API:
//   - RowSums(X)         -> column vector, Σ_j X[i,j]   (any T)
//   - ColSums(X)         -> row vector,    Σ_i X[i,j]   (any T)
//   - CenterColumns(X)   -> (Xc, means)                 (float64)
//   - NormalizeRowsL2(X) -> (Y, norms)                  (float64; degenerate rows unchanged)
//   - ColumnRanges(X)    -> (min, max) per column       (float64)
//   - Covariance(X)      -> sample covariance of columns (float64, gonum/stat)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Sparse inputs are reduced over their stored entries only.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRowSums         = "RowSums"
	opColSums         = "ColSums"
	opCenterColumns   = "CenterColumns"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opColumnRanges    = "ColumnRanges"
	opCovariance      = "Covariance"
)

// RowSums returns the n×1 vector r with r[i] = Σ_j X[i,j], in X's family.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) dense, O(nnz) sparse.
func RowSums[T any](X Matrix[T]) (*Vector[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]T, X.Rows())
	ops := X.Ops()
	X.DoNonZero(func(i, _ int, v T) bool {
		sums[i] = ops.Add(sums[i], v)
		return true
	})

	return vectorFromSums(X, sums, Column)
}

// ColSums returns the 1×c vector s with s[j] = Σ_i X[i,j], in X's family.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) dense, O(nnz) sparse.
func ColSums[T any](X Matrix[T]) (*Vector[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	sums := make([]T, X.Cols())
	ops := X.Ops()
	X.DoNonZero(func(_, j int, v T) bool {
		sums[j] = ops.Add(sums[j], v)
		return true
	})

	return vectorFromSums(X, sums, Row)
}

func vectorFromSums[T any](X Matrix[T], sums []T, o Orientation) (*Vector[T], error) {
	r, c := shapeOf(len(sums), o)
	m, err := X.Factory().New(r, c)
	if err != nil {
		return nil, err
	}
	out := &Vector[T]{m: m}
	for i, s := range sums {
		out.setAt(i, s)
	}

	return out, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X.
//   - Stage 2: Column means from ColSums / r.
//   - Stage 3: ewBroadcastSubCols builds the centered Dense copy.
//
// Returns:
//   - *Dense[float64]: centered copy (r×c). Centering fills zeros, so the result is Dense
//     whatever the family of X.
//   - []float64: column means (len=c), reusable to un-center later.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix[float64]) (*Dense[float64], []float64, error) {
	sums, err := ColSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means := sums.Slice()
	floats.Scale(1/float64(X.Rows()), means)
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// NormalizeRowsL2 scales each row to unit Euclidean norm; rows with norm 0
// are left unchanged. The result keeps X's family. Also returns the
// original per-row norms.
// Complexity: O(r*c) dense, O(nnz) sparse.
func NormalizeRowsL2(X Matrix[float64]) (Matrix[float64], []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	norms := make([]float64, X.Rows())
	X.DoNonZero(func(i, _ int, v float64) bool {
		norms[i] += v * v
		return true
	})
	scale := make([]float64, len(norms))
	for i := range norms {
		norms[i] = math.Sqrt(norms[i])
		scale[i] = 1
		if norms[i] > 0 {
			scale[i] = 1 / norms[i]
		}
	}
	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return Y, norms, nil
}

// ColumnRanges returns per-column minimum and maximum. Visualizers use them
// to map weights onto a color scale.
// Complexity: O(r*c).
func ColumnRanges(X Matrix[float64]) (lo, hi []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnRanges, err)
	}
	lo = make([]float64, X.Cols())
	hi = make([]float64, X.Cols())
	col := make([]float64, X.Rows())
	for j := range lo {
		for i := range col {
			col[i] = cell(X, i, j)
		}
		lo[j], hi[j] = floats.Min(col), floats.Max(col)
	}

	return lo, hi, nil
}

// Covariance computes the sample covariance of the columns of X,
// Cov = (Xcᵀ Xc)/(r-1), through gonum/stat.
// Errors: ErrNilMatrix, ErrShapeMismatch (fewer than 2 rows).
// Complexity: O(r*c^2).
func Covariance(X Matrix[float64]) (*Dense[float64], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, matrixErrorf(opCovariance, fmt.Errorf("%d rows: %w", X.Rows(), ErrShapeMismatch))
	}
	g, err := ToGonum(X)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, g, nil)

	return FromGonum(&cov)
}
