// SPDX-License-Identifier: MIT

// Package solve solves square linear systems A·x = b over float64 matrices
// from package matrix.
//
// Two engines sit behind one entry point:
//
//   - Dense: LU factorization with partial pivoting (gonum/mat). The
//     condition estimate from the factorization gates the result.
//   - Sparse: the direct sparse solver of github.com/edp1096/sparse (a port of
//     Sparse 1.3, Markowitz pivoting with fill-in control), fed from the CRS
//     nonzeros of A without densifying it. The residual ‖A·x − b‖∞ gates the
//     result.
//
// Solve picks the engine from A's storage family.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch for malformed input.
//   - ErrSingular when A has no unique solution (an empty row or column,
//     an exactly singular factorization or a non-finite solution).
//   - ErrIllConditioned when the result fails the accuracy gate.
//
// Complexity:
//   - Dense: O(n³) time, O(n²) space.
//   - Sparse: O(nnz + fill-in) space; time depends on the sparsity pattern.
package solve
