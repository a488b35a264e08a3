// SPDX-License-Identifier: MIT

// Package matrix offers generic dense and sparse matrices and vectors.
//
// The matrix package provides:
//
//   - Matrix[T], the shape contract shared by every storage family, and
//     Factory[T], the creation capability kernels use to build results of the
//     operand's family without knowing its concrete type.
//   - Dense[T]: row-major flat buffer, O(1) element access.
//   - Sparse[T]: compressed row storage (CRS), O(log nnz_row) reads and O(nnz)
//     structural writes; zeros are never stored.
//   - Vector[T]: a one-dimensional view owning a 1×n (Row) or n×1 (Column)
//     matrix of either family.
//   - Kernels (Add, Sub, Hadamard, Mul, Scale, DivScalar, Neg, Transpose,
//     Repeat, CopyTo, GetRow/GetColumn/SetRow/SetColumn, Equal, ApproxEqual)
//     written once against Matrix[T].
//   - Fixed-width text rendering and plain-text point lists (Format, Fprint,
//     WritePoints), and gonum interop (ToGonum, FromGonum).
//
// Element types:
//
// Any T works for which arith.For[T] resolves an operator set: the built-in
// integer, float and complex kinds, named types over them, and types
// implementing arith.Field[T]. Resolution happens once per type at
// construction; an unusable T fails there with ErrUnsupportedElementType.
//
// Results of binary kernels take the storage family of the left operand.
// Dense[float64] products run through BLAS (gonum blas64.Gemm).
//
// Concurrency: instances are not safe for concurrent mutation. Clone before
// handing a matrix to another goroutine.
//
// Errors are sentinels matched with errors.Is: ErrInvalidArgument (and
// ErrInvalidDimensions, ErrNilMatrix, ErrNilFunc, ErrDivisionByZero wrapping
// it), ErrOutOfRange, ErrShapeMismatch and ErrUnsupportedElementType.
package matrix
