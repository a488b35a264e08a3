// SPDX-License-Identifier: MIT

// Package matrix - bulk construction of CRS matrices.
//
// Entry points:
//   - NewSparseFromTriples: unordered (row, col, value) coordinate lists, e.g.
//     produced by external tools.
//   - NewSparseFromMatrix / NewSparseFromRows: compress an existing matrix or literal.
//
// All three build the arrays in one row-major pass, never through repeated Set.

package matrix

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmat/arith"
)

const (
	opNewSparseFromTriples = "NewSparseFromTriples"
	opNewSparseFromMatrix  = "NewSparseFromMatrix"
	opNewSparseFromRows    = "NewSparseFromRows"
)

// NewSparseFromTriples builds an r×c CRS matrix from an unordered triple list.
// MAIN DESCRIPTION:
//   - Duplicate coordinates resolve deterministically: the LAST occurrence in
//     the input wins. Entries whose (final) value is zero are not stored.
//
// Implementation:
//   - Stage 1: validate shape, resolve operators, range-check every triple.
//   - Stage 2: stable sort a copy by (row, col); input order survives among duplicates.
//   - Stage 3: keep the last entry of each equal-key run, drop zeros.
//   - Stage 4: count entries per row into rowPtr, prefix-sum.
//
// Errors:
//   - ErrInvalidDimensions, ErrUnsupportedElementType.
//   - ErrOutOfRange naming the offending triple index.
//
// Complexity:
//   - Time O(n log n + r), Space O(n) for n = len(triples). The input is not modified.
func NewSparseFromTriples[T any](rows, cols int, triples []Triple[T]) (*Sparse[T], error) {
	s, err := NewSparse[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewSparseFromTriples, err)
	}
	for k, t := range triples {
		if !s.inRange(t.Row, t.Col) {
			return nil, matrixErrorf(opNewSparseFromTriples,
				fmt.Errorf("triple %d at (%d,%d): %w", k, t.Row, t.Col, ErrOutOfRange))
		}
	}

	sorted := slices.Clone(triples)
	slices.SortStableFunc(sorted, func(a, b Triple[T]) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	s.colIdx = make([]int, 0, len(sorted))
	s.values = make([]T, 0, len(sorted))
	for k, t := range sorted {
		if k+1 < len(sorted) && sorted[k+1].Row == t.Row && sorted[k+1].Col == t.Col {
			continue // a later duplicate overrides this one
		}
		if s.ops.IsZero(t.Value) {
			continue
		}
		s.rowPtr[t.Row+1]++
		s.colIdx = append(s.colIdx, t.Col)
		s.values = append(s.values, t.Value)
	}
	for i := 0; i < rows; i++ {
		s.rowPtr[i+1] += s.rowPtr[i]
	}

	return s, nil
}

// NewSparseFromMatrix compresses any Matrix[T] into CRS form.
// The source is read through DoNonZero, which visits cells row-major, so the
// arrays are appended in final order.
// Errors: ErrNilMatrix.
// Complexity: O(r + nnz) for Sparse sources, O(r*c) for Dense sources.
func NewSparseFromMatrix[T any](m Matrix[T]) (*Sparse[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNewSparseFromMatrix, err)
	}
	if src, ok := m.(*Sparse[T]); ok {
		return src.CloneSparse(), nil
	}

	return compress(m.Ops(), m), nil
}

// NewSparseFromRows compresses a rectangular [][]T literal.
// Errors: ErrInvalidDimensions, ErrShapeMismatch (ragged rows), ErrUnsupportedElementType.
func NewSparseFromRows[T any](rows [][]T) (*Sparse[T], error) {
	d, err := NewDenseFromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opNewSparseFromRows, err)
	}

	return compress(d.ops, d), nil
}

// compress appends the nonzeros of m row by row.
func compress[T any](ops *arith.Ops[T], m Matrix[T]) *Sparse[T] {
	s := newSparse(ops, m.Rows(), m.Cols())
	m.DoNonZero(func(i, j int, v T) bool {
		s.rowPtr[i+1]++
		s.colIdx = append(s.colIdx, j)
		s.values = append(s.values, v)
		return true
	})
	for i := 0; i < s.r; i++ {
		s.rowPtr[i+1] += s.rowPtr[i]
	}

	return s
}

// ToSparse compresses m into CRS form.
// Complexity: O(r*c).
func (m *Dense[T]) ToSparse() *Sparse[T] { return compress(m.ops, m) }
