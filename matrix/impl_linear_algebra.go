// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix[T] implementation,
// including element-wise addition, subtraction, Hadamard product, matrix
// multiplication, scalar scaling and division, negation and equality. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - One kernel per operation, written against Matrix[T] and *arith.Ops[T].
//   - Results take the storage family of the LEFT operand (via its Factory).
//   - *Dense and *Sparse operands take direct paths; others go through At/Set.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
	"slices"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opDivScalar   = "DivScalar"
	opNeg         = "Neg"
	opHadamard    = "Hadamard"
	opMatVec      = "MatVec"
	opApply       = "Apply"
	opApproxEqual = "ApproxEqual"
	opEqualValues = "EqualValues"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; do not do this.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes a ± b into a new matrix of a's family.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: Fast-path if both are *Dense - single flat loop.
//   - Stage 3: Otherwise clone a, then for every nonzero of b apply one
//     accumulated write. For a Sparse left operand this costs
//     O(nnz(a)) for the clone plus O(nnz(b)) writes, never O(r*c).
//
// Complexity:
//   - Dense: Time O(r*c). Sparse: O(nnz(a) + nnz(b)·shift).
func addSub[T any](a, b Matrix[T], sub bool, opTag string) (Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	ops := a.Ops()
	combine := ops.Add
	if sub {
		combine = ops.Sub
	}

	if da, ok := a.(*Dense[T]); ok {
		if db, ok := b.(*Dense[T]); ok {
			out := newDense(ops, da.r, da.c)
			for k := range out.data {
				out.data[k] = combine(da.data[k], db.data[k])
			}
			return out, nil
		}
	}

	res := a.Clone()
	b.DoNonZero(func(i, j int, v T) bool {
		write(res, i, j, combine(cell(res, i, j), v))
		return true
	})

	return res, nil
}

// Add returns a + b in the storage family of a.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c) dense, O(nnz(a) + nnz(b)) writes sparse.
func Add[T any](a, b Matrix[T]) (Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns a − b in the storage family of a.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Sub[T any](a, b Matrix[T]) (Matrix[T], error) { return addSub(a, b, true, opSub) }

// Hadamard returns the element-wise product a ⊙ b.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: Dense×Dense flat loop.
//   - Stage 3: otherwise iterate the nonzeros of the sparser operand only: a
//     product with a zero factor is zero and is never written.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c) dense, O(nnz · log nnz_row) when either side is sparse.
func Hadamard[T any](a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	ops := a.Ops()

	if da, ok := a.(*Dense[T]); ok {
		if db, ok := b.(*Dense[T]); ok {
			out := newDense(ops, da.r, da.c)
			for k := range out.data {
				out.data[k] = ops.Mul(da.data[k], db.data[k])
			}
			return out, nil
		}
	}

	res, err := a.Factory().New(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	if b.Kind() == SparseStorage && a.Kind() != SparseStorage {
		b.DoNonZero(func(i, j int, v T) bool {
			write(res, i, j, ops.Mul(cell(a, i, j), v))
			return true
		})
		return res, nil
	}
	a.DoNonZero(func(i, j int, v T) bool {
		write(res, i, j, ops.Mul(v, cell(b, i, j)))
		return true
	})

	return res, nil
}

// forRow visits the nonzeros of row i of m in ascending column order.
func forRow[T any](m Matrix[T], i int, f func(j int, v T)) {
	switch src := m.(type) {
	case *Sparse[T]:
		cols, vals := src.run(i)
		for k, j := range cols {
			f(j, vals[k])
		}
	case *Dense[T]:
		for j, v := range src.rowSlice(i) {
			if !src.ops.IsZero(v) {
				f(j, v)
			}
		}
	default:
		ops := m.Ops()
		for j := 0; j < m.Cols(); j++ {
			if v := cell(m, i, j); !ops.IsZero(v) {
				f(j, v)
			}
		}
	}
}

// Mul returns the matrix product a × b, result[r,c] = Σ_k a[r,k]·b[k,c]
// accumulated with Ops.Accumulate.
// Implementation:
//   - Stage 1: ValidateMulShape (a.Cols == b.Rows).
//   - Stage 2: Dense[float64] × Dense[float64] goes to BLAS Gemm.
//   - Stage 3: Sparse left operand: row-wise sparse accumulation (Gustavson).
//   - Stage 4: otherwise i-k-j loops skipping zero a[i,k], into a's family.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r·n·c) dense; O(Σ_i Σ_{k∈row i} nnz(b_k)) sparse.
func Mul[T any](a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if res, ok := gemmFloat64(a, b); ok {
		return res, nil
	}
	if sa, ok := a.(*Sparse[T]); ok {
		return mulSparse(sa, b), nil
	}

	ops := a.Ops()
	rows, cols := a.Rows(), b.Cols()
	if da, ok := a.(*Dense[T]); ok {
		out := newDense(ops, rows, cols)
		for i := 0; i < rows; i++ {
			line := out.rowSlice(i)
			forRow[T](da, i, func(k int, av T) {
				forRow(b, k, func(j int, bv T) {
					line[j] = ops.Accumulate(line[j], av, bv)
				})
			})
		}
		return out, nil
	}

	res, err := a.Factory().New(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc := make([]T, cols)
	for i := 0; i < rows; i++ {
		clear(acc)
		forRow(a, i, func(k int, av T) {
			forRow(b, k, func(j int, bv T) {
				acc[j] = ops.Accumulate(acc[j], av, bv)
			})
		})
		for j, v := range acc {
			if !ops.IsZero(v) {
				write(res, i, j, v)
			}
		}
	}

	return res, nil
}

// mulSparse is Gustavson's row-by-row product into a Sparse result. A stamp
// per column marks which accumulator slots row i has touched; the touched
// list is sorted so each result run stays ascending.
func mulSparse[T any](a *Sparse[T], b Matrix[T]) *Sparse[T] {
	ops := a.ops
	cols := b.Cols()
	out := newSparse(ops, a.r, cols)
	acc := make([]T, cols)
	stamp := make([]int, cols) // stamp[j] == i+1 when acc[j] belongs to row i
	touched := make([]int, 0, cols)
	for i := 0; i < a.r; i++ {
		touched = touched[:0]
		ac, av := a.run(i)
		for p, k := range ac {
			forRow(b, k, func(j int, bv T) {
				if stamp[j] != i+1 {
					stamp[j] = i + 1
					acc[j] = ops.Zero()
					touched = append(touched, j)
				}
				acc[j] = ops.Accumulate(acc[j], av[p], bv)
			})
		}
		slices.Sort(touched)
		for _, j := range touched {
			if !ops.IsZero(acc[j]) { // cancellation may produce exact zeros
				out.colIdx = append(out.colIdx, j)
				out.values = append(out.values, acc[j])
			}
		}
		out.rowPtr[i+1] = len(out.values)
	}

	return out
}

// MatVec returns m·x as a Column vector of m's family; x must have length
// m.Cols() (its orientation is ignored).
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c) dense, O(nnz) sparse.
func MatVec[T any](m Matrix[T], x *Vector[T]) (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVector(x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if x.Len() != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrShapeMismatch)
	}
	xs := x.Slice()
	res, err := m.Factory().New(m.Rows(), 1)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	ops := m.Ops()
	for i := 0; i < m.Rows(); i++ {
		acc := ops.Zero()
		forRow(m, i, func(j int, v T) {
			acc = ops.Accumulate(acc, v, xs[j])
		})
		write(res, i, 0, acc)
	}

	return &Vector[T]{m: res}, nil
}

// mapValues applies f (with f(0) == 0) to every element into a new matrix of
// m's family. Sparse results drop entries that map to zero.
func mapValues[T any](m Matrix[T], f func(T) T) (Matrix[T], error) {
	switch src := m.(type) {
	case *Dense[T]:
		out := newDense(src.ops, src.r, src.c)
		for k, v := range src.data {
			out.data[k] = f(v)
		}
		return out, nil
	case *Sparse[T]:
		return src.mapNonZero(f), nil
	}

	res, err := m.Factory().New(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	m.DoNonZero(func(i, j int, v T) bool {
		write(res, i, j, f(v))
		return true
	})

	return res, nil
}

// Scale returns m·s (every element multiplied on the right by s).
// Errors: ErrNilMatrix.
// Complexity: O(r*c) dense, O(nnz) sparse.
func Scale[T any](m Matrix[T], s T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	ops := m.Ops()
	res, err := mapValues(m, func(v T) T { return ops.Mul(v, s) })
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// DivScalar returns m / s.
// Errors: ErrNilMatrix, ErrDivisionByZero when s is the zero element (for
// every element kind, floats included).
// Complexity: O(r*c) dense, O(nnz) sparse.
func DivScalar[T any](m Matrix[T], s T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	ops := m.Ops()
	if ops.IsZero(s) {
		return nil, matrixErrorf(opDivScalar, ErrDivisionByZero)
	}
	res, err := mapValues(m, func(v T) T { return ops.Div(v, s) })
	if err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}

	return res, nil
}

// Neg returns −m.
// Errors: ErrNilMatrix.
func Neg[T any](m Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res, err := mapValues(m, m.Ops().Neg)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return res, nil
}

// Equal reports whether a and b have the same storage family, the same shape
// and elementwise Ops.Equal cells. Two nil matrices are equal.
// Complexity: O(r*c) dense, O(nnz) sparse.
func Equal[T any](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	ok, err := EqualValues(a, b)

	return err == nil && ok
}

// EqualValues compares cells across storage families: a Sparse and a Dense
// holding the same numbers are equal here but not under Equal.
// Errors: ErrNilMatrix. A shape difference is reported as (false, nil).
// Complexity: O(r*c) dense, O(nnz) sparse.
func EqualValues[T any](a, b Matrix[T]) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqualValues, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqualValues, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	ops := a.Ops()

	if da, ok := a.(*Dense[T]); ok {
		if db, ok := b.(*Dense[T]); ok {
			return slices.EqualFunc(da.data, db.data, ops.Equal), nil
		}
	}
	if sa, ok := a.(*Sparse[T]); ok {
		if sb, ok := b.(*Sparse[T]); ok {
			return slices.Equal(sa.rowPtr, sb.rowPtr) &&
				slices.Equal(sa.colIdx, sb.colIdx) &&
				slices.EqualFunc(sa.values, sb.values, ops.Equal), nil
		}
	}

	// Cells where both sides are zero are equal; every other cell is a nonzero
	// of a or of b, so two nonzero sweeps cover the whole matrix.
	return sweepNonZero(a, b, ops.Equal), nil
}

// sweepNonZero reports pred(a[i,j], b[i,j]) for every (i,j) that is nonzero
// in a or in b.
func sweepNonZero[T any](a, b Matrix[T], pred func(x, y T) bool) bool {
	ok := true
	a.DoNonZero(func(i, j int, v T) bool {
		ok = pred(v, cell(b, i, j))
		return ok
	})
	if !ok {
		return false
	}
	b.DoNonZero(func(i, j int, v T) bool {
		ok = pred(cell(a, i, j), v)
		return ok
	})

	return ok
}

// ApproxEqual reports |a[i,j] − b[i,j]| ≤ eps for every cell, across families.
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrInvalidArgument (eps < 0 or NaN).
// Complexity: O(r*c) dense, O(nnz(a) + nnz(b)) sparse.
func ApproxEqual[T any](a, b Matrix[T], eps float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opApproxEqual, err)
	}
	if math.IsNaN(eps) || eps < 0 {
		return false, matrixErrorf(opApproxEqual, fmt.Errorf("eps %v: %w", eps, ErrInvalidArgument))
	}
	ops := a.Ops()

	return sweepNonZero(a, b, func(x, y T) bool { return ops.Abs(ops.Sub(x, y)) <= eps }), nil
}

// Hash is Rows XOR Cols: weak, but consistent with Equal (equal matrices share
// a shape, hence a hash). A nil matrix hashes to 0.
func Hash[T any](m Matrix[T]) int {
	if m == nil {
		return 0
	}

	return m.Rows() ^ m.Cols()
}

// Clone returns a deep copy of m (nil for nil). Thin wrapper over Matrix.Clone.
func Clone[T any](m Matrix[T]) Matrix[T] {
	if m == nil {
		return nil
	}

	return m.Clone()
}
