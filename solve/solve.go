// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/floats"
)

// Solve returns x with A·x = b, choosing the engine from A's storage family:
// Sparse goes to the sparse direct solver, everything else to dense LU.
// x has b's orientation.
// Errors: see package documentation.
func Solve(a matrix.Matrix[float64], b *matrix.Vector[float64], opts ...Option) (*matrix.Vector[float64], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solveErrorf(opSolve, err)
	}
	if a.Kind() == matrix.SparseStorage {
		return Sparse(a, b, opts...)
	}

	return Dense(a, b, opts...)
}

// validateSystem checks A is square and b matches it.
func validateSystem(a matrix.Matrix[float64], b *matrix.Vector[float64]) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}
	if err := matrix.ValidateVector(b); err != nil {
		return err
	}
	if b.Len() != a.Rows() {
		return fmt.Errorf("rhs length %d for %d×%d: %w", b.Len(), a.Rows(), a.Cols(), matrix.ErrShapeMismatch)
	}

	return nil
}

// checkResidual reports ErrIllConditioned when ‖A·x − b‖∞ exceeds
// tol·max(1, ‖b‖∞), and ErrSingular when x is not finite.
// Complexity: O(nnz(A) + n).
func checkResidual(a matrix.Matrix[float64], x, b *matrix.Vector[float64], tol float64) error {
	xs := x.Slice()
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("x[%d] = %v: %w", i, v, ErrSingular)
		}
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return err
	}
	bs := b.Slice()
	scale := math.Max(1, floats.Norm(bs, math.Inf(1)))
	if res := floats.Distance(ax.Slice(), bs, math.Inf(1)); res > tol*scale {
		return fmt.Errorf("residual %.3g > %.3g: %w", res, tol*scale, ErrIllConditioned)
	}

	return nil
}
