// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag) and tests MUST check them via errors.Is. No kernel panics on a
// user-triggered error condition.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/arith"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with fmt.Errorf("Op: %w", ErrX) through matrixErrorf; callers still match with
// errors.Is. The taxonomy has four roots:
//
//	ErrInvalidArgument        - missing collaborator (nil matrix/vector/func) or dimension <= 0
//	ErrOutOfRange             - row/column/vector index outside bounds
//	ErrShapeMismatch          - incompatible dimensions or orientation between operands
//	ErrUnsupportedElementType - no operator set could be resolved for T
//
// All four are local, synchronous contract violations; nothing is retried.

var (
	// ErrInvalidArgument is the root for missing collaborators and bad dimensions.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil Matrix or Vector (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)

	// ErrNilFunc indicates that a required generator/visitor callback was nil.
	ErrNilFunc = fmt.Errorf("%w: nil function", ErrInvalidArgument)

	// ErrDivisionByZero is returned by DivScalar when the divisor is the zero element.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrInvalidArgument)

	// ErrOutOfRange indicates that an index (row, column or vector position) is
	// outside valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, Mul where a.Cols != b.Rows, or SetRow with a
	// column vector.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrUnsupportedElementType is re-exported from arith so callers of this
	// package need not import arith to match it.
	ErrUnsupportedElementType = arith.ErrUnsupportedElementType
)

// BACKWARD-COMPATIBILITY ALIASES.

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ErrDimensionMismatch historically named the same condition as ErrShapeMismatch.
var ErrDimensionMismatch = ErrShapeMismatch // Deprecated: use ErrShapeMismatch.
