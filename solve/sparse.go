// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/edp1096/sparse"
	"github.com/katalvlaran/lvmat/matrix"
)

// Sparse solves A·x = b with the sparse direct solver.
// Implementation:
//   - Stage 1: validate A square and len(b) == n; reject A with an empty
//     row or column (structurally singular) before building anything.
//   - Stage 2: load the nonzeros of A into the solver (1-based indices).
//   - Stage 3: factor, then solve against a 1-based right-hand side.
//   - Stage 4: residual check unless WithoutResidualCheck.
//
// Complexity: O(nnz) to load; factor cost depends on fill-in.
func Sparse(a matrix.Matrix[float64], b *matrix.Vector[float64], opts ...Option) (*matrix.Vector[float64], error) {
	if err := validateSystem(a, b); err != nil {
		return nil, solveErrorf(opSparse, err)
	}
	o := gatherOptions(true, opts...)
	n := a.Rows()
	if err := structurallyRegular(a); err != nil {
		return nil, solveErrorf(opSparse, err)
	}

	eng, err := newEngine(n)
	if err != nil {
		return nil, solveErrorf(opSparse, err)
	}
	defer eng.Destroy()

	a.DoNonZero(func(i, j int, v float64) bool {
		eng.GetElement(int64(i+1), int64(j+1)).Real += v
		return true
	})
	if err := eng.Factor(); err != nil {
		return nil, solveErrorf(opSparse, fmt.Errorf("%w: %v", ErrSingular, err))
	}

	rhs := make([]float64, n+1) // 1-based
	copy(rhs[1:], b.Slice())
	sol, err := eng.Solve(rhs)
	if err != nil {
		return nil, solveErrorf(opSparse, fmt.Errorf("%w: %v", ErrSingular, err))
	}
	if len(sol) < n+1 {
		return nil, solveErrorf(opSparse, fmt.Errorf("solution length %d: %w", len(sol), ErrSingular))
	}

	x, err := matrix.NewVectorFrom(sol[1:n+1], b.Orientation())
	if err != nil {
		return nil, solveErrorf(opSparse, err)
	}
	if o.residual {
		if err := checkResidual(a, x, b, o.residualTol); err != nil {
			return nil, solveErrorf(opSparse, err)
		}
	}

	return x, nil
}

// newEngine creates a real n×n solver matrix. Modified-nodal pivoting lets
// the solver cope with zero diagonal entries.
func newEngine(n int) (*sparse.Matrix, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	return sparse.Create(int64(n), config)
}

// structurallyRegular returns ErrSingular when some row or column of a holds
// no nonzero.
// Complexity: O(n + nnz).
func structurallyRegular(a matrix.Matrix[float64]) error {
	rows := make([]bool, a.Rows())
	cols := make([]bool, a.Cols())
	a.DoNonZero(func(i, j int, _ float64) bool {
		rows[i], cols[j] = true, true
		return true
	})
	for i, ok := range rows {
		if !ok {
			return fmt.Errorf("row %d is empty: %w", i, ErrSingular)
		}
	}
	for j, ok := range cols {
		if !ok {
			return fmt.Errorf("column %d is empty: %w", j, ErrSingular)
		}
	}

	return nil
}
