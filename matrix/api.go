// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or storage-family rules of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/arith"
)

const (
	opNewMatrix    = "NewMatrix"
	opZerosLike    = "ZerosLike"
	opIdentityLike = "IdentityLike"
)

// ---------- Constructors & Utilities ----------

// NewMatrix returns a rows×cols zero matrix of the requested storage family.
// Errors: ErrInvalidDimensions, ErrUnsupportedElementType, ErrInvalidArgument
// (unknown kind).
// Complexity: O(r*c) dense, O(r) sparse.
func NewMatrix[T any](kind StorageKind, rows, cols int) (Matrix[T], error) {
	var factory func() (Matrix[T], error)
	switch kind {
	case DenseStorage:
		factory = func() (Matrix[T], error) { return NewDense[T](rows, cols) }
	case SparseStorage:
		factory = func() (Matrix[T], error) { return NewSparse[T](rows, cols) }
	default:
		return nil, matrixErrorf(opNewMatrix, fmt.Errorf("storage kind %d: %w", kind, ErrInvalidArgument))
	}
	m, err := factory()
	if err != nil {
		return nil, err // no typed nil inside the interface
	}

	return m, nil
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T any](rows, cols int) (*Dense[T], error) { return NewDense[T](rows, cols) }

// ZerosLike returns a new zero matrix with the same shape and family as m.
// Complexity: O(1) alloc + O(rc) zeroing for Dense.
func ZerosLike[T any](m Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return m.Factory().New(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike[T arith.Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity[T](m.Rows())
}

// CloneMatrix is a discoverability alias for Clone.
func CloneMatrix[T any](m Matrix[T]) Matrix[T] { return Clone(m) }

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum[T any](a, b Matrix[T]) (Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff[T any](a, b Matrix[T]) (Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T any](a, b Matrix[T]) (Matrix[T], error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
// Complexity: O(rc).
func HadamardProd[T any](a, b Matrix[T]) (Matrix[T], error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T[E any](m Matrix[E]) (Matrix[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale: s·m.
// Complexity: O(rc).
func ScaleBy[T any](m Matrix[T], s T) (Matrix[T], error) { return Scale(m, s) }

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul[T any](m Matrix[T], x *Vector[T]) (*Vector[T], error) { return MatVec(m, x) }
