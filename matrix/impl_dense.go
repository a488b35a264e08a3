// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Route every element operation through the cached *arith.Ops[T] of the instance.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Transpose: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/arith"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// Constructor tags.
const (
	opNewDense          = "NewDense"
	opNewDenseFilled    = "NewDenseFilled"
	opNewDenseFunc      = "NewDenseFunc"
	opNewDenseFromRows  = "NewDenseFromRows"
	opNewDenseFromSlice = "NewDenseFromSlice"
	opNewIdentity       = "NewIdentity"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - ops is the operator set resolved for T at construction.
//
// A Dense is not safe for concurrent mutation; Clone before handing it to
// another goroutine.
type Dense[T any] struct {
	r, c int           // row and column counts
	data []T           // contiguous row-major storage (len == r*c)
	ops  *arith.Ops[T] // shared, immutable
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ store[float64]  = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// newDense allocates a zero r×c buffer. Callers validated the shape.
func newDense[T any](ops *arith.Ops[T], rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), ops: ops}
}

// prepareDense is the shared prologue of every public constructor: shape
// check, then operator resolution.
func prepareDense[T any](tag string, rows, cols int) (*Dense[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	ops, err := arith.For[T]()
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return newDense(ops, rows, cols), nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve the operator set for T (cached process-wide).
//   - Stage 3: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrUnsupportedElementType when T has no usable operator surface.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	return prepareDense[T](opNewDense, rows, cols)
}

// NewDenseFilled creates an r×c matrix with every cell set to v.
// Complexity: O(r*c).
func NewDenseFilled[T any](rows, cols int, v T) (*Dense[T], error) {
	m, err := prepareDense[T](opNewDenseFilled, rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// NewDenseFunc creates an r×c matrix with cell (i,j) = f(i,j), filled row-major.
// Errors: ErrInvalidDimensions, ErrNilFunc, ErrUnsupportedElementType.
// Complexity: O(r*c) calls to f.
func NewDenseFunc[T any](rows, cols int, f func(i, j int) T) (*Dense[T], error) {
	if f == nil {
		return nil, matrixErrorf(opNewDenseFunc, ErrNilFunc)
	}
	m, err := prepareDense[T](opNewDenseFunc, rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		base := i * cols
		for j = 0; j < cols; j++ {
			m.data[base+j] = f(i, j)
		}
	}

	return m, nil
}

// NewDenseFromRows copies a rectangular [][]T literal.
// MAIN DESCRIPTION:
//   - len(rows) becomes Rows, len(rows[0]) becomes Cols.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or rows[0] is empty.
//   - ErrShapeMismatch when the rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opNewDenseFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opNewDenseFromRows, fmt.Errorf("row %d: %w", i, ErrShapeMismatch))
		}
	}
	m, err := prepareDense[T](opNewDenseFromRows, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// NewDenseFromSlice creates an r×c matrix from a row-major slice. The slice is
// copied; later changes to data are not observed by the matrix.
// Errors: ErrInvalidDimensions, ErrShapeMismatch (len(data) != r*c).
// Complexity: O(r*c).
func NewDenseFromSlice[T any](rows, cols int, data []T) (*Dense[T], error) {
	m, err := prepareDense[T](opNewDenseFromSlice, rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNewDenseFromSlice, ErrShapeMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Only built-in numeric kinds have a literal one, hence the Scalar bound.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T arith.Scalar](n int) (*Dense[T], error) {
	m, err := prepareDense[T](opNewIdentity, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// Kind reports DenseStorage.
func (m *Dense[T]) Kind() StorageKind { return DenseStorage }

// Ops returns the operator set shared by all matrices over T.
func (m *Dense[T]) Ops() *arith.Ops[T] { return m.ops }

// Factory returns a creation capability producing Dense matrices over T.
func (m *Dense[T]) Factory() Factory[T] { return denseFactory[T]{ops: m.ops} }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel and T's zero.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return m.ops.Zero(), denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

func (m *Dense[T]) get(row, col int) T    { return m.data[row*m.c+col] }
func (m *Dense[T]) put(row, col int, v T) { m.data[row*m.c+col] = v }

// rowSlice aliases row i of the buffer; internal use only.
func (m *Dense[T]) rowSlice(row int) []T { return m.data[row*m.c : (row+1)*m.c] }

// Clone returns a deep copy as Matrix[T] (dynamic type *Dense[T]).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] { return m.CloneDense() }

// CloneDense returns a deep copy with the concrete type preserved.
// Mutations of the copy never reach m and vice versa.
// Complexity: O(r*c).
func (m *Dense[T]) CloneDense() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, ops: m.ops}
}

// Slice returns a row-major copy of the backing buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Slice() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// Do visits every cell in row-major order until f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// DoNonZero visits every cell that is not the zero element, row-major, until
// f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) DoNonZero(f func(i, j int, v T) bool) {
	m.Do(func(i, j int, v T) bool {
		if m.ops.IsZero(v) {
			return true
		}
		return f(i, j, v)
	})
}

// Apply replaces every cell with f(i, j, old) in row-major order (in place).
// Errors: ErrNilFunc.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	if f == nil {
		return matrixErrorf(opApply, ErrNilFunc)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return nil
}

// Row returns a copy of row i as a Row vector.
func (m *Dense[T]) Row(i int) (*Vector[T], error) { return GetRow[T](m, i) }

// Col returns a copy of column j as a Column vector.
func (m *Dense[T]) Col(j int) (*Vector[T], error) { return GetColumn[T](m, j) }

// SetRow copies v into row i. See the package-level SetRow for the rules.
func (m *Dense[T]) SetRow(i int, v *Vector[T]) error { return SetRow[T](m, i, v) }

// SetCol copies v into column j. See the package-level SetColumn for the rules.
func (m *Dense[T]) SetCol(j int, v *Vector[T]) error { return SetColumn[T](m, j, v) }

// Transpose returns mᵀ as a new Dense.
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] { return transposeDense(m) }

// Repeat tiles m v times vertically and h times horizontally.
func (m *Dense[T]) Repeat(v, h int) (*Dense[T], error) { return asDense[T](Repeat[T](m, v, h)) }

// CopyTo blits m into dst with its top-left corner at (r0, c0).
func (m *Dense[T]) CopyTo(dst Matrix[T], r0, c0 int) error { return CopyTo[T](m, dst, r0, c0) }

// AsVector copies a 1×n or n×1 matrix into a Vector.
func (m *Dense[T]) AsVector() (*Vector[T], error) { return AsVector[T](m) }

// Add returns m + b as a new Dense.
func (m *Dense[T]) Add(b Matrix[T]) (*Dense[T], error) { return asDense[T](Add[T](m, b)) }

// Sub returns m − b as a new Dense.
func (m *Dense[T]) Sub(b Matrix[T]) (*Dense[T], error) { return asDense[T](Sub[T](m, b)) }

// Hadamard returns m ⊙ b as a new Dense.
func (m *Dense[T]) Hadamard(b Matrix[T]) (*Dense[T], error) { return asDense[T](Hadamard[T](m, b)) }

// Mul returns the matrix product m × b as a new Dense. Dense float64 operands
// take the BLAS Gemm path.
func (m *Dense[T]) Mul(b Matrix[T]) (*Dense[T], error) { return asDense[T](Mul[T](m, b)) }

// Scale returns s·m as a new Dense.
func (m *Dense[T]) Scale(s T) *Dense[T] {
	out := newDense(m.ops, m.r, m.c)
	for k, v := range m.data {
		out.data[k] = m.ops.Mul(v, s)
	}

	return out
}

// DivScalar returns m / s as a new Dense.
// Errors: ErrDivisionByZero when s is the zero element.
func (m *Dense[T]) DivScalar(s T) (*Dense[T], error) { return asDense[T](DivScalar[T](m, s)) }

// Neg returns −m as a new Dense.
func (m *Dense[T]) Neg() *Dense[T] {
	out := newDense(m.ops, m.r, m.c)
	for k, v := range m.data {
		out.data[k] = m.ops.Neg(v)
	}

	return out
}

// Equal reports whether other is a Dense of the same shape with equal cells.
func (m *Dense[T]) Equal(other Matrix[T]) bool { return Equal[T](m, other) }

// Hash is the coarse Rows XOR Cols hash; equal matrices hash equally.
func (m *Dense[T]) Hash() int { return Hash[T](m) }

// String renders rows as "[a, b]\n" lines for diagnostics.
// Complexity: O(r*c).
func (m *Dense[T]) String() string { return shortString[T](m) }

// transposeDense is the flat-buffer transpose.
func transposeDense[T any](m *Dense[T]) *Dense[T] {
	out := newDense(m.ops, m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// asDense narrows a kernel result whose left operand was Dense.
func asDense[T any](res Matrix[T], err error) (*Dense[T], error) {
	if err != nil {
		return nil, err
	}

	return res.(*Dense[T]), nil
}

// denseFactory creates zero Dense matrices sharing one operator set.
type denseFactory[T any] struct{ ops *arith.Ops[T] }

// Kind reports DenseStorage.
func (f denseFactory[T]) Kind() StorageKind { return DenseStorage }

// New returns a rows×cols zero Dense.
func (f denseFactory[T]) New(rows, cols int) (Matrix[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, err
	}

	return newDense(f.ops, rows, cols), nil
}
