// SPDX-License-Identifier: MIT

package solve

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular indicates that A has no unique solution.
	ErrSingular = errors.New("solve: matrix is singular")

	// ErrIllConditioned indicates that a solution was computed but failed the
	// accuracy gate (condition estimate or residual).
	ErrIllConditioned = errors.New("solve: matrix is ill-conditioned")
)

const (
	opDense       = "Dense"
	opDenseMatrix = "DenseMatrix"
	opDet         = "Det"
	opSparse      = "Sparse"
	opSolve       = "Solve"
)

// solveErrorf wraps err with the operation tag.
func solveErrorf(op string, err error) error {
	return fmt.Errorf("solve.%s: %w", op, err)
}
