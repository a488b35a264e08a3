// SPDX-License-Identifier: MIT

// Package matrix: the shape contract shared by every storage family.
// This file contains ONLY the public domain types (Matrix, Factory, StorageKind,
// Orientation, Triple). Storage lives in impl_dense.go / impl_sparse.go,
// vectors in impl_vector.go.
package matrix

import "github.com/katalvlaran/lvmat/arith"

// StorageKind names a backing representation.
type StorageKind uint8

// Storage families.
const (
	DenseStorage  StorageKind = iota // row-major flat buffer
	SparseStorage                    // compressed row storage (CRS)
)

// String returns "dense" or "sparse".
func (k StorageKind) String() string {
	if k == SparseStorage {
		return "sparse"
	}
	return "dense"
}

// Orientation tells whether a Vector behaves as a 1×n (Row) or n×1 (Column) matrix.
type Orientation uint8

// Vector orientations.
const (
	Row    Orientation = iota // 1×n
	Column                    // n×1
)

// String returns "row" or "column".
func (o Orientation) String() string {
	if o == Column {
		return "column"
	}
	return "row"
}

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Column {
		return Row
	}
	return Column
}

// Matrix is the shape contract every storage family implements.
//
// Contract:
//   - Rows() >= 1 and Cols() >= 1 for every constructed instance.
//   - At/Set return ErrOutOfRange for row∉[0,Rows) or col∉[0,Cols); they never panic.
//   - Clone returns an instance sharing no backing storage with the receiver.
//   - DoNonZero visits stored nonzero cells in row-major order (row asc, col asc)
//     and stops early when f returns false.
//
// Complexity notes: Dense is O(1) per At/Set; Sparse is O(log nnz_row) per At and
// O(nnz) per structural Set (see impl_sparse.go).
type Matrix[T any] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Shape packs Rows() and Cols().
	Shape() (rows, cols int)

	// IsSquare reports Rows() == Cols().
	IsSquare() bool

	// At retrieves the element at (i, j).
	At(i, j int) (T, error)

	// Set assigns v at (i, j).
	Set(i, j int, v T) error

	// Kind reports the storage family.
	Kind() StorageKind

	// Ops returns the element arithmetic the instance was built with.
	Ops() *arith.Ops[T]

	// Factory returns the creation capability for results of the same family.
	Factory() Factory[T]

	// Clone returns a deep copy.
	Clone() Matrix[T]

	// DoNonZero visits stored nonzero elements in row-major order.
	DoNonZero(f func(i, j int, v T) bool)
}

// Factory creates zero matrices of one storage family. Shared kernels receive it
// from their left operand so results keep the operand's family without any
// knowledge of the concrete type.
type Factory[T any] interface {
	// Kind reports the family produced by New.
	Kind() StorageKind

	// New returns a rows×cols zero matrix.
	New(rows, cols int) (Matrix[T], error)
}

// Triple is one (row, column, value) entry of a coordinate list.
type Triple[T any] struct {
	Row   int
	Col   int
	Value T
}

// store is the unchecked accessor surface implemented by *Dense and *Sparse.
// Kernels use it after validating indices once, instead of paying for error
// returns per element.
type store[T any] interface {
	Matrix[T]
	get(i, j int) T
	put(i, j int, v T)
}

// cell reads (i,j) without a bounds check when m is one of our stores and falls
// back to At otherwise. Callers guarantee (i,j) is in range.
func cell[T any](m Matrix[T], i, j int) T {
	if s, ok := m.(store[T]); ok {
		return s.get(i, j)
	}
	v, _ := m.At(i, j) // in range by caller contract

	return v
}

// write stores v at (i,j) with the same fallback rule as cell.
func write[T any](m Matrix[T], i, j int, v T) {
	if s, ok := m.(store[T]); ok {
		s.put(i, j, v)
		return
	}
	_ = m.Set(i, j, v) // in range by caller contract
}
