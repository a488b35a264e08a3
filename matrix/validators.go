// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures rows and cols are both positive.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T any](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateIndex ensures (i, j) addresses a cell of m. Assumes m is not nil.
// Complexity: O(1).
func ValidateIndex[T any](m Matrix[T], i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape[T any](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulShape is the composite NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulShape[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulShape", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShape: inner dimension", ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare[T any](m Matrix[T]) error {
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare", ErrShapeMismatch)
	}

	return nil
}

// ValidateVector ensures v is non-nil.
// Complexity: O(1).
func ValidateVector[T any](v *Vector[T]) error {
	if v == nil || v.m == nil {
		return validatorErrorf("ValidateVector", ErrNilMatrix)
	}

	return nil
}

// ValidateSameLength is the composite NotNil(u) → NotNil(v) → Len(u) == Len(v).
// Orientation is deliberately not compared (dot products are orientation-free).
// Complexity: O(1).
func ValidateSameLength[T any](u, v *Vector[T]) error {
	if err := ValidateVector(u); err != nil {
		return validatorErrorf("ValidateSameLength", err)
	}
	if err := ValidateVector(v); err != nil {
		return validatorErrorf("ValidateSameLength", err)
	}
	if u.Len() != v.Len() {
		return validatorErrorf("ValidateSameLength", ErrShapeMismatch)
	}

	return nil
}
