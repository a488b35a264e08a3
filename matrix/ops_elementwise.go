// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* broadcast kernels (ew*) shared by the statistics
//     transforms, so the tight loops live in one place.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Results keep the family of X: Dense stays Dense, Sparse stays Sparse.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).

package matrix

const (
	opBroadcastSubCols = "broadcastSubCols"
	opScaleRows        = "scaleRows"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colShift[j].
// The result is always Dense: subtracting a nonzero shift fills every cell.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubCols[T any](X Matrix[T], colShift []T) (*Dense[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(colShift) != c {
		return nil, matrixErrorf(opBroadcastSubCols, ErrShapeMismatch)
	}
	ops := X.Ops()
	out := newDense(ops, r, c)

	var i, j int
	for i = 0; i < r; i++ {
		line := out.rowSlice(i)
		for j = 0; j < c; j++ {
			line[j] = ops.Sub(cell(X, i, j), colShift[j])
		}
	}

	return out, nil
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i] into X's family.
// Sparse inputs only visit stored entries.
// Time: O(r*c) dense, O(nnz) sparse.
func ewScaleRows[T any](X Matrix[T], scale []T) (Matrix[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if len(scale) != X.Rows() {
		return nil, matrixErrorf(opScaleRows, ErrShapeMismatch)
	}
	ops := X.Ops()

	if d, ok := X.(*Dense[T]); ok {
		out := newDense(ops, d.r, d.c)
		for k, v := range d.data {
			out.data[k] = ops.Mul(v, scale[k/d.c])
		}
		return out, nil
	}

	res, err := X.Factory().New(X.Rows(), X.Cols())
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	X.DoNonZero(func(i, j int, v T) bool {
		write(res, i, j, ops.Mul(v, scale[i]))
		return true
	})

	return res, nil
}
