// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (compressed row storage, CRS).
//
// Layout:
//   - rowPtr[0..r]: rowPtr[0] = 0, nondecreasing, rowPtr[r] = nnz.
//   - colIdx[0..nnz): ascending within each row run rowPtr[i]..rowPtr[i+1).
//   - values[0..nnz): parallel to colIdx; never the zero element.
//
// Cost profile (the asymmetry is deliberate and documented):
//   - At: O(log nnz_row) binary search in the row run.
//   - Set: O(log nnz_row) locate + O(nnz) shift on structural insert/delete.
//   - GetRow: O(nnz_row) slice of the run. GetColumn: O(r log nnz_row) scan of every row.
//
// Atomicity:
//   - Bounds are checked before any mutation, so a failed Set never leaves the
//     three arrays in a torn intermediate state.

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmat/arith"
)

const opNewSparse = "NewSparse"

// sparseErrorf mirrors denseErrorf for the CRS type.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a CRS matrix over T. The zero element is never stored.
// A Sparse is not safe for concurrent mutation.
type Sparse[T any] struct {
	r, c   int
	rowPtr []int // len r+1
	colIdx []int // len nnz
	values []T   // len nnz
	ops    *arith.Ops[T]
}

var (
	_ Matrix[float64] = (*Sparse[float64])(nil)
	_ store[float64]  = (*Sparse[float64])(nil)
	_ fmt.Stringer    = (*Sparse[float64])(nil)
)

func newSparse[T any](ops *arith.Ops[T], rows, cols int) *Sparse[T] {
	return &Sparse[T]{r: rows, c: cols, rowPtr: make([]int, rows+1), ops: ops}
}

// NewSparse creates an r×c sparse matrix with no stored entries.
// Errors: ErrInvalidDimensions, ErrUnsupportedElementType.
// Complexity: O(r) for rowPtr.
func NewSparse[T any](rows, cols int) (*Sparse[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewSparse, err)
	}
	ops, err := arith.For[T]()
	if err != nil {
		return nil, matrixErrorf(opNewSparse, err)
	}

	return newSparse(ops, rows, cols), nil
}

// Rows returns the row count.
func (s *Sparse[T]) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse[T]) Cols() int { return s.c }

// Shape packs Rows() and Cols().
func (s *Sparse[T]) Shape() (rows, cols int) { return s.r, s.c }

// IsSquare reports Rows() == Cols().
func (s *Sparse[T]) IsSquare() bool { return s.r == s.c }

// Kind reports SparseStorage.
func (s *Sparse[T]) Kind() StorageKind { return SparseStorage }

// Ops returns the operator set shared by all matrices over T.
func (s *Sparse[T]) Ops() *arith.Ops[T] { return s.ops }

// Factory returns a creation capability producing Sparse matrices over T.
func (s *Sparse[T]) Factory() Factory[T] { return sparseFactory[T]{ops: s.ops} }

// NNZ returns the number of stored (nonzero) entries.
func (s *Sparse[T]) NNZ() int { return len(s.values) }

// Density returns NNZ / (Rows*Cols).
func (s *Sparse[T]) Density() float64 { return float64(len(s.values)) / float64(s.r*s.c) }

// locate returns the position of (row, col) in colIdx/values, or the
// insertion point that keeps the row run ascending when absent.
func (s *Sparse[T]) locate(row, col int) (pos int, found bool) {
	lo, hi := s.rowPtr[row], s.rowPtr[row+1]
	k, found := slices.BinarySearch(s.colIdx[lo:hi], col)

	return lo + k, found
}

// run aliases the column indices and values of row i.
func (s *Sparse[T]) run(row int) ([]int, []T) {
	lo, hi := s.rowPtr[row], s.rowPtr[row+1]

	return s.colIdx[lo:hi], s.values[lo:hi]
}

func (s *Sparse[T]) inRange(row, col int) bool {
	return row >= 0 && row < s.r && col >= 0 && col < s.c
}

// At returns the stored value at (row, col), or T's zero when absent.
// Errors: ErrOutOfRange.
// Complexity: O(log nnz_row).
func (s *Sparse[T]) At(row, col int) (T, error) {
	if !s.inRange(row, col) {
		return s.ops.Zero(), sparseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return s.get(row, col), nil
}

// Set writes v at (row, col) following the four-case rule:
//
//	present, v == 0  -> delete the entry, rowPtr[row+1..] -= 1
//	present, v != 0  -> overwrite in place
//	absent,  v == 0  -> no-op
//	absent,  v != 0  -> insert at the located position, rowPtr[row+1..] += 1
//
// Errors: ErrOutOfRange (checked before any mutation).
// Complexity: O(log nnz_row) locate + O(nnz) shift on insert/delete.
func (s *Sparse[T]) Set(row, col int, v T) error {
	if !s.inRange(row, col) {
		return sparseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	s.put(row, col, v)

	return nil
}

func (s *Sparse[T]) get(row, col int) T {
	if pos, found := s.locate(row, col); found {
		return s.values[pos]
	}

	return s.ops.Zero()
}

func (s *Sparse[T]) put(row, col int, v T) {
	pos, found := s.locate(row, col)
	zero := s.ops.IsZero(v)
	switch {
	case found && zero:
		s.colIdx = slices.Delete(s.colIdx, pos, pos+1)
		s.values = slices.Delete(s.values, pos, pos+1)
		s.shiftRowPtr(row, -1)
	case found:
		s.values[pos] = v
	case zero:
		// absent and zero: the invariant already holds
	default:
		s.colIdx = slices.Insert(s.colIdx, pos, col)
		s.values = slices.Insert(s.values, pos, v)
		s.shiftRowPtr(row, +1)
	}
}

// shiftRowPtr adds delta to every row pointer after row.
func (s *Sparse[T]) shiftRowPtr(row, delta int) {
	for k := row + 1; k <= s.r; k++ {
		s.rowPtr[k] += delta
	}
}

// replaceRun swaps the whole run of row for (cols, vals), which must be
// ascending and zero-free. Used by SetRow.
// Complexity: O(nnz).
func (s *Sparse[T]) replaceRun(row int, cols []int, vals []T) {
	lo, hi := s.rowPtr[row], s.rowPtr[row+1]
	s.colIdx = slices.Replace(s.colIdx, lo, hi, cols...)
	s.values = slices.Replace(s.values, lo, hi, vals...)
	s.shiftRowPtr(row, len(cols)-(hi-lo))
}

// Clone returns a deep copy as Matrix[T] (dynamic type *Sparse[T]).
func (s *Sparse[T]) Clone() Matrix[T] { return s.CloneSparse() }

// CloneSparse returns a deep copy with the concrete type preserved.
// Complexity: O(r + nnz).
func (s *Sparse[T]) CloneSparse() *Sparse[T] {
	return &Sparse[T]{
		r:      s.r,
		c:      s.c,
		rowPtr: slices.Clone(s.rowPtr),
		colIdx: slices.Clone(s.colIdx),
		values: slices.Clone(s.values),
		ops:    s.ops,
	}
}

// DoNonZero visits the stored entries row-major until f returns false.
// Complexity: O(r + nnz).
func (s *Sparse[T]) DoNonZero(f func(i, j int, v T) bool) {
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			if !f(i, s.colIdx[k], s.values[k]) {
				return
			}
		}
	}
}

// Triples returns the stored entries as a row-major coordinate list. Feeding
// the result to NewSparseFromTriples rebuilds an equal matrix.
// Complexity: O(r + nnz).
func (s *Sparse[T]) Triples() []Triple[T] {
	out := make([]Triple[T], 0, len(s.values))
	s.DoNonZero(func(i, j int, v T) bool {
		out = append(out, Triple[T]{Row: i, Col: j, Value: v})
		return true
	})

	return out
}

// ToDense materializes the matrix in row-major storage.
// Complexity: O(r*c + nnz).
func (s *Sparse[T]) ToDense() *Dense[T] {
	out := newDense(s.ops, s.r, s.c)
	s.DoNonZero(func(i, j int, v T) bool {
		out.data[i*s.c+j] = v
		return true
	})

	return out
}

// mapNonZero returns a new Sparse holding f(v) for every stored v. Results
// equal to zero are dropped, so the no-stored-zero invariant survives
// scaling by zero or integer truncation. f(0) must be 0.
// Complexity: O(r + nnz).
func (s *Sparse[T]) mapNonZero(f func(v T) T) *Sparse[T] {
	out := newSparse(s.ops, s.r, s.c)
	out.colIdx = make([]int, 0, len(s.colIdx))
	out.values = make([]T, 0, len(s.values))
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			if v := f(s.values[k]); !s.ops.IsZero(v) {
				out.colIdx = append(out.colIdx, s.colIdx[k])
				out.values = append(out.values, v)
			}
		}
		out.rowPtr[i+1] = len(out.values)
	}

	return out
}

// transposeSparse is the counting transpose: one pass counts entries per
// column, a prefix sum turns counts into row pointers of the result, a second
// pass scatters. Row-major traversal keeps each result run ascending.
// Complexity: O(r + c + nnz).
func transposeSparse[T any](s *Sparse[T]) *Sparse[T] {
	nnz := len(s.values)
	out := newSparse(s.ops, s.c, s.r)
	out.colIdx = make([]int, nnz)
	out.values = make([]T, nnz)
	for _, j := range s.colIdx {
		out.rowPtr[j+1]++
	}
	for j := 0; j < s.c; j++ {
		out.rowPtr[j+1] += out.rowPtr[j]
	}
	next := slices.Clone(out.rowPtr[:s.c])
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			j := s.colIdx[k]
			out.colIdx[next[j]] = i
			out.values[next[j]] = s.values[k]
			next[j]++
		}
	}

	return out
}

// Row returns a copy of row i as a sparse Row vector.
func (s *Sparse[T]) Row(i int) (*Vector[T], error) { return GetRow[T](s, i) }

// Col returns a copy of column j as a sparse Column vector.
func (s *Sparse[T]) Col(j int) (*Vector[T], error) { return GetColumn[T](s, j) }

// SetRow replaces row i with the nonzeros of v.
func (s *Sparse[T]) SetRow(i int, v *Vector[T]) error { return SetRow[T](s, i, v) }

// SetCol replaces column j with the values of v.
func (s *Sparse[T]) SetCol(j int, v *Vector[T]) error { return SetColumn[T](s, j, v) }

// Transpose returns sᵀ as a new Sparse.
func (s *Sparse[T]) Transpose() *Sparse[T] { return transposeSparse(s) }

// Repeat tiles s v times vertically and h times horizontally.
func (s *Sparse[T]) Repeat(v, h int) (*Sparse[T], error) { return asSparse[T](Repeat[T](s, v, h)) }

// CopyTo blits s into dst with its top-left corner at (r0, c0).
func (s *Sparse[T]) CopyTo(dst Matrix[T], r0, c0 int) error { return CopyTo[T](s, dst, r0, c0) }

// AsVector copies a 1×n or n×1 matrix into a Vector.
func (s *Sparse[T]) AsVector() (*Vector[T], error) { return AsVector[T](s) }

// Add returns s + b as a new Sparse (clone s, then one write per nonzero of b).
func (s *Sparse[T]) Add(b Matrix[T]) (*Sparse[T], error) { return asSparse[T](Add[T](s, b)) }

// Sub returns s − b as a new Sparse.
func (s *Sparse[T]) Sub(b Matrix[T]) (*Sparse[T], error) { return asSparse[T](Sub[T](s, b)) }

// Hadamard returns s ⊙ b; only the stored pattern of s is visited.
func (s *Sparse[T]) Hadamard(b Matrix[T]) (*Sparse[T], error) { return asSparse[T](Hadamard[T](s, b)) }

// Mul returns s × b by row-wise sparse accumulation.
func (s *Sparse[T]) Mul(b Matrix[T]) (*Sparse[T], error) { return asSparse[T](Mul[T](s, b)) }

// Scale returns k·s as a new Sparse.
func (s *Sparse[T]) Scale(k T) *Sparse[T] {
	return s.mapNonZero(func(v T) T { return s.ops.Mul(v, k) })
}

// DivScalar returns s / k as a new Sparse.
// Errors: ErrDivisionByZero when k is the zero element.
func (s *Sparse[T]) DivScalar(k T) (*Sparse[T], error) { return asSparse[T](DivScalar[T](s, k)) }

// Neg returns −s as a new Sparse.
func (s *Sparse[T]) Neg() *Sparse[T] { return s.mapNonZero(s.ops.Neg) }

// Equal reports whether other is a Sparse of the same shape with equal cells.
func (s *Sparse[T]) Equal(other Matrix[T]) bool { return Equal[T](s, other) }

// Hash is the coarse Rows XOR Cols hash.
func (s *Sparse[T]) Hash() int { return Hash[T](s) }

// String renders rows as "[a, b]\n" lines, zeros included.
func (s *Sparse[T]) String() string { return shortString[T](s) }

func asSparse[T any](res Matrix[T], err error) (*Sparse[T], error) {
	if err != nil {
		return nil, err
	}

	return res.(*Sparse[T]), nil
}

// sparseFactory creates empty Sparse matrices sharing one operator set.
type sparseFactory[T any] struct{ ops *arith.Ops[T] }

// Kind reports SparseStorage.
func (f sparseFactory[T]) Kind() StorageKind { return SparseStorage }

// New returns a rows×cols Sparse with no stored entries.
func (f sparseFactory[T]) New(rows, cols int) (Matrix[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, err
	}

	return newSparse(f.ops, rows, cols), nil
}
