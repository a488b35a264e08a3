// SPDX-License-Identifier: MIT

// Package matrix - shape operations shared by every storage family.
//
// Purpose:
//   - Row/column extraction and assignment, transpose, tiling, sub-block copy and
//     matrix-to-vector conversion, written once against Matrix[T].
//   - Results are created through the operand's Factory, so a Sparse operand
//     yields Sparse results and a Dense operand Dense ones.
//   - *Dense and *Sparse operands take direct paths over their buffers; any
//     other Matrix[T] goes through At/Set.
//
// Every function validates completely before the first write.

package matrix

import (
	"fmt"
	"slices"
)

const (
	opGetRow    = "GetRow"
	opGetColumn = "GetColumn"
	opSetRow    = "SetRow"
	opSetColumn = "SetColumn"
	opTranspose = "Transpose"
	opRepeat    = "Repeat"
	opCopyTo    = "CopyTo"
	opAsVector  = "AsVector"
)

// GetRow returns a copy of row i as a Row vector of the same storage family.
// For Sparse sources the contiguous run is copied directly.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(c) dense, O(nnz_row) sparse.
func GetRow[T any](m Matrix[T], i int) (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGetRow, err)
	}
	if i < 0 || i >= m.Rows() {
		return nil, matrixErrorf(opGetRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}

	switch src := m.(type) {
	case *Dense[T]:
		out := newDense(src.ops, 1, src.c)
		copy(out.data, src.rowSlice(i))
		return &Vector[T]{m: out}, nil
	case *Sparse[T]:
		cols, vals := src.run(i)
		out := newSparse(src.ops, 1, src.c)
		out.colIdx = slices.Clone(cols)
		out.values = slices.Clone(vals)
		out.rowPtr[1] = len(vals)
		return &Vector[T]{m: out}, nil
	}

	out, err := m.Factory().New(1, m.Cols())
	if err != nil {
		return nil, matrixErrorf(opGetRow, err)
	}
	for j := 0; j < m.Cols(); j++ {
		write(out, 0, j, cell(m, i, j))
	}

	return &Vector[T]{m: out}, nil
}

// GetColumn returns a copy of column j as a Column vector of the same family.
// Sparse sources are scanned row by row with a binary search in each run;
// the result's rowPtr is built from that scan alone.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r) dense, O(r log nnz_row) sparse.
func GetColumn[T any](m Matrix[T], j int) (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGetColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opGetColumn, fmt.Errorf("column %d: %w", j, ErrOutOfRange))
	}

	switch src := m.(type) {
	case *Dense[T]:
		out := newDense(src.ops, src.r, 1)
		for i := 0; i < src.r; i++ {
			out.data[i] = src.data[i*src.c+j]
		}
		return &Vector[T]{m: out}, nil
	case *Sparse[T]:
		out := newSparse(src.ops, src.r, 1)
		for i := 0; i < src.r; i++ {
			if pos, found := src.locate(i, j); found {
				out.colIdx = append(out.colIdx, 0)
				out.values = append(out.values, src.values[pos])
			}
			out.rowPtr[i+1] = len(out.values)
		}
		return &Vector[T]{m: out}, nil
	}

	out, err := m.Factory().New(m.Rows(), 1)
	if err != nil {
		return nil, matrixErrorf(opGetColumn, err)
	}
	for i := 0; i < m.Rows(); i++ {
		write(out, i, 0, cell(m, i, j))
	}

	return &Vector[T]{m: out}, nil
}

// SetRow copies v into row i of m.
// MAIN DESCRIPTION:
//   - v must be a Row vector of length Cols. A length-1 vector is accepted in
//     either orientation (1×1 has no meaningful orientation).
//
// Implementation:
//   - Stage 1: validate m, v, the index, length and orientation (no writes yet).
//   - Stage 2: Dense copies the buffer; Sparse replaces the row run in one splice;
//     others go through Set.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrShapeMismatch.
//
// Complexity:
//   - O(c) dense, O(nnz + c) sparse.
func SetRow[T any](m Matrix[T], i int, v *Vector[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSetRow, err)
	}
	if err := ValidateVector(v); err != nil {
		return matrixErrorf(opSetRow, err)
	}
	if i < 0 || i >= m.Rows() {
		return matrixErrorf(opSetRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}
	if v.Len() != m.Cols() {
		return matrixErrorf(opSetRow, fmt.Errorf("length %d, want %d: %w", v.Len(), m.Cols(), ErrShapeMismatch))
	}
	if v.Orientation() != Row && v.Len() != 1 {
		return matrixErrorf(opSetRow, fmt.Errorf("column vector: %w", ErrShapeMismatch))
	}

	switch dst := m.(type) {
	case *Dense[T]:
		row := dst.rowSlice(i)
		for j := range row {
			row[j] = v.at(j)
		}
		return nil
	case *Sparse[T]:
		var cols []int
		var vals []T
		v.m.DoNonZero(func(r, c int, x T) bool {
			cols = append(cols, max(r, c))
			vals = append(vals, x)
			return true
		})
		dst.replaceRun(i, cols, vals)
		return nil
	}

	for j := 0; j < m.Cols(); j++ {
		write(m, i, j, v.at(j))
	}

	return nil
}

// SetColumn copies v into column j of m. v must be a Column vector of length
// Rows (or have length 1). Sparse targets apply the four-case write per row.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrShapeMismatch.
// Complexity: O(r) dense, O(r·nnz) sparse worst case.
func SetColumn[T any](m Matrix[T], j int, v *Vector[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSetColumn, err)
	}
	if err := ValidateVector(v); err != nil {
		return matrixErrorf(opSetColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return matrixErrorf(opSetColumn, fmt.Errorf("column %d: %w", j, ErrOutOfRange))
	}
	if v.Len() != m.Rows() {
		return matrixErrorf(opSetColumn, fmt.Errorf("length %d, want %d: %w", v.Len(), m.Rows(), ErrShapeMismatch))
	}
	if v.Orientation() != Column && v.Len() != 1 {
		return matrixErrorf(opSetColumn, fmt.Errorf("row vector: %w", ErrShapeMismatch))
	}

	for i := 0; i < m.Rows(); i++ {
		write(m, i, j, v.at(i))
	}

	return nil
}

// Transpose returns mᵀ in the family of m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) dense, O(r + c + nnz) sparse.
func Transpose[T any](m Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	switch src := m.(type) {
	case *Dense[T]:
		return transposeDense(src), nil
	case *Sparse[T]:
		return transposeSparse(src), nil
	}

	out, err := m.Factory().New(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	m.DoNonZero(func(i, j int, v T) bool {
		write(out, j, i, v)
		return true
	})

	return out, nil
}

// Repeat tiles m into a (v·Rows)×(h·Cols) matrix with
// result[r, c] = m[r mod Rows, c mod Cols].
// Errors: ErrNilMatrix, ErrInvalidArgument (v ≤ 0 or h ≤ 0).
// Complexity: O(v·h·r·c) dense, O(v·h·nnz + v·r) sparse.
func Repeat[T any](m Matrix[T], v, h int) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRepeat, err)
	}
	if v <= 0 || h <= 0 {
		return nil, matrixErrorf(opRepeat, fmt.Errorf("tiles %d×%d: %w", v, h, ErrInvalidArgument))
	}
	rows, cols := m.Rows(), m.Cols()

	switch src := m.(type) {
	case *Dense[T]:
		out := newDense(src.ops, v*rows, h*cols)
		for r := 0; r < out.r; r++ {
			line := src.rowSlice(r % rows)
			dst := out.rowSlice(r)
			for t := 0; t < h; t++ {
				copy(dst[t*cols:(t+1)*cols], line)
			}
		}
		return out, nil
	case *Sparse[T]:
		out := newSparse(src.ops, v*rows, h*cols)
		nnz := src.NNZ() * v * h
		out.colIdx = make([]int, 0, nnz)
		out.values = make([]T, 0, nnz)
		for r := 0; r < out.r; r++ {
			rc, rv := src.run(r % rows)
			for t := 0; t < h; t++ {
				for k := range rc {
					out.colIdx = append(out.colIdx, t*cols+rc[k])
					out.values = append(out.values, rv[k])
				}
			}
			out.rowPtr[r+1] = len(out.values)
		}
		return out, nil
	}

	out, err := m.Factory().New(v*rows, h*cols)
	if err != nil {
		return nil, matrixErrorf(opRepeat, err)
	}
	m.DoNonZero(func(i, j int, x T) bool {
		for a := 0; a < v; a++ {
			for b := 0; b < h; b++ {
				write(out, a*rows+i, b*cols+j, x)
			}
		}
		return true
	})

	return out, nil
}

// CopyTo writes every cell of src into dst at offset (r0, c0). Zero cells are
// written too, so the target block ends up equal to src.
// Errors:
//   - ErrNilMatrix.
//   - ErrOutOfRange for negative offsets.
//   - ErrShapeMismatch when src does not fit inside dst at (r0, c0).
//
// Complexity: O(r*c) writes into dst.
func CopyTo[T any](src, dst Matrix[T], r0, c0 int) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opCopyTo, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opCopyTo, err)
	}
	if r0 < 0 || c0 < 0 {
		return matrixErrorf(opCopyTo, fmt.Errorf("offset (%d,%d): %w", r0, c0, ErrOutOfRange))
	}
	if src.Rows() > dst.Rows()-r0 || src.Cols() > dst.Cols()-c0 { // room left; r0+rows may overflow
		return matrixErrorf(opCopyTo, fmt.Errorf("%d×%d at (%d,%d) into %d×%d: %w",
			src.Rows(), src.Cols(), r0, c0, dst.Rows(), dst.Cols(), ErrShapeMismatch))
	}

	if s, ok := src.(*Dense[T]); ok {
		if d, ok := dst.(*Dense[T]); ok {
			for i := 0; i < s.r; i++ {
				line := d.rowSlice(r0 + i)
				copy(line[c0:c0+s.c], s.rowSlice(i))
			}
			return nil
		}
	}
	var i, j int
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			write(dst, r0+i, c0+j, cell(src, i, j))
		}
	}

	return nil
}

// AsVector copies a 1×n or n×1 matrix into an independent Vector; the
// orientation follows the shape.
// Errors: ErrNilMatrix, ErrShapeMismatch when neither dimension is 1.
// Complexity: O(n) dense, O(nnz) sparse.
func AsVector[T any](m Matrix[T]) (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsVector, err)
	}
	if m.Rows() != 1 && m.Cols() != 1 {
		return nil, matrixErrorf(opAsVector, fmt.Errorf("%d×%d: %w", m.Rows(), m.Cols(), ErrShapeMismatch))
	}

	return &Vector[T]{m: m.Clone()}, nil
}
