// SPDX-License-Identifier: MIT

// Package matrix - Vector: a one-dimensional view owning a 1×n or n×1 matrix.
//
// Purpose:
//   - Expose only 1-D operations; the owned 2-D storage is never reachable by
//     reference, so the single-dimension invariant cannot be broken from outside.
//   - Derive Orientation from the owned shape: rows == 1 is Row (so 1×1 is Row),
//     otherwise Column. It is never stored separately.
//   - Work over either storage family: NewVector* own a Dense, NewSparseVector a Sparse.
//
// Norms:
//   - Norm = sqrt(Σ|x_i|²), NormSquared skips the sqrt, InfinityNorm = max|x_i|,
//     OneNorm = Σ|x_i|. |x|² is Re²+Im² for complex elements.
//   - Dense float64 vectors go through gonum/floats.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvmat/arith"
)

// Vector operation tags.
const (
	opNewVector     = "NewVector"
	opNewVectorFunc = "NewVectorFunc"
	opNewVectorFrom = "NewVectorFrom"
	opDot           = "Dot"
	opDistance      = "Distance"
	opApproxVector  = "Vector.ApproxEqual"
)

func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a 1-D sequence over T backed by a 1×n (Row) or n×1 (Column) matrix.
type Vector[T any] struct {
	m Matrix[T] // Rows()==1 || Cols()==1
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// shapeOf maps (length, orientation) to matrix dimensions.
func shapeOf(n int, o Orientation) (rows, cols int) {
	if o == Column {
		return n, 1
	}

	return 1, n
}

// NewVector returns a zero vector of length n backed by Dense storage.
// Errors: ErrInvalidDimensions (n ≤ 0), ErrUnsupportedElementType.
// Complexity: O(n).
func NewVector[T any](n int, o Orientation) (*Vector[T], error) {
	r, c := shapeOf(n, o)
	m, err := prepareDense[T](opNewVector, r, c)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{m: m}, nil
}

// NewVectorFilled returns a Dense-backed vector with every element set to v.
func NewVectorFilled[T any](n int, o Orientation, v T) (*Vector[T], error) {
	r, c := shapeOf(n, o)
	m, err := NewDenseFilled(r, c, v)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{m: m}, nil
}

// NewVectorFunc returns a Dense-backed vector with element i = f(i).
// Errors: ErrInvalidDimensions, ErrNilFunc, ErrUnsupportedElementType.
func NewVectorFunc[T any](n int, o Orientation, f func(i int) T) (*Vector[T], error) {
	if f == nil {
		return nil, matrixErrorf(opNewVectorFunc, ErrNilFunc)
	}
	r, c := shapeOf(n, o)
	m, err := prepareDense[T](opNewVectorFunc, r, c)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = f(i)
	}

	return &Vector[T]{m: m}, nil
}

// NewVectorFrom copies values into a Dense-backed vector.
// Errors: ErrInvalidDimensions when values is empty.
func NewVectorFrom[T any](values []T, o Orientation) (*Vector[T], error) {
	r, c := shapeOf(len(values), o)
	m, err := prepareDense[T](opNewVectorFrom, r, c)
	if err != nil {
		return nil, err
	}
	copy(m.data, values)

	return &Vector[T]{m: m}, nil
}

// NewSparseVector returns a vector of length n backed by CRS storage.
func NewSparseVector[T any](n int, o Orientation) (*Vector[T], error) {
	r, c := shapeOf(n, o)
	m, err := NewSparse[T](r, c)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{m: m}, nil
}

// Len returns max(Rows, Cols) of the owned matrix.
func (v *Vector[T]) Len() int { return max(v.m.Rows(), v.m.Cols()) }

// Orientation is Row when the owned matrix has one row, Column otherwise.
func (v *Vector[T]) Orientation() Orientation {
	if v.m.Rows() == 1 {
		return Row
	}

	return Column
}

// Kind reports the storage family of the owned matrix.
func (v *Vector[T]) Kind() StorageKind { return v.m.Kind() }

// Ops returns the element operator set.
func (v *Vector[T]) Ops() *arith.Ops[T] { return v.m.Ops() }

// coord maps a 1-D index to matrix coordinates.
func (v *Vector[T]) coord(i int) (row, col int) {
	if v.m.Rows() == 1 {
		return 0, i
	}

	return i, 0
}

func (v *Vector[T]) at(i int) T {
	r, c := v.coord(i)
	return cell(v.m, r, c)
}

func (v *Vector[T]) setAt(i int, x T) {
	r, c := v.coord(i)
	write(v.m, r, c, x)
}

// At returns element i.
// Errors: ErrOutOfRange for i ∉ [0, Len).
// Complexity: O(1) dense, O(log nnz) sparse.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		return v.Ops().Zero(), vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.at(i), nil
}

// Set assigns element i.
// Errors: ErrOutOfRange for i ∉ [0, Len).
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.Len() {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	v.setAt(i, x)

	return nil
}

// denseF64 exposes the raw buffer of a Dense float64 vector for the gonum fast paths.
func (v *Vector[T]) denseF64() ([]float64, bool) {
	d, ok := any(v.m).(*Dense[float64])
	if !ok {
		return nil, false
	}

	return d.data, true
}

// sumAbs folds f(x_i) over the stored nonzeros (zeros contribute nothing to any norm).
func (v *Vector[T]) sumAbs(f func(T) float64) float64 {
	var acc float64
	v.m.DoNonZero(func(_, _ int, x T) bool {
		acc += f(x)
		return true
	})

	return acc
}

// Norm returns the Euclidean norm sqrt(Σ|x_i|²).
// Complexity: O(n) dense, O(nnz) sparse.
func (v *Vector[T]) Norm() float64 {
	if data, ok := v.denseF64(); ok {
		return floats.Norm(data, 2)
	}

	return math.Sqrt(v.NormSquared())
}

// NormSquared returns Σ|x_i|² without the square root.
func (v *Vector[T]) NormSquared() float64 {
	if data, ok := v.denseF64(); ok {
		return floats.Dot(data, data)
	}

	return v.sumAbs(v.Ops().AbsSq)
}

// InfinityNorm returns max|x_i|.
func (v *Vector[T]) InfinityNorm() float64 {
	if data, ok := v.denseF64(); ok {
		return floats.Norm(data, math.Inf(1))
	}
	ops := v.Ops()
	var best float64
	v.m.DoNonZero(func(_, _ int, x T) bool {
		best = max(best, ops.Abs(x))
		return true
	})

	return best
}

// OneNorm returns Σ|x_i|.
func (v *Vector[T]) OneNorm() float64 {
	if data, ok := v.denseF64(); ok {
		return floats.Norm(data, 1)
	}

	return v.sumAbs(v.Ops().Abs)
}

// Dot returns Σ u_i·v_i. Orientation is ignored; only lengths must match.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(n) dense, O(nnz(u) log nnz) when u is sparse.
func Dot[T any](u, v *Vector[T]) (T, error) {
	if err := ValidateSameLength(u, v); err != nil {
		var zero T
		return zero, matrixErrorf(opDot, err)
	}
	if a, ok := u.denseF64(); ok {
		if b, ok := v.denseF64(); ok {
			return any(floats.Dot(a, b)).(T), nil
		}
	}
	ops := u.Ops()
	acc := ops.Zero()
	src, other, left := u, v, true
	if v.Kind() == SparseStorage && u.Kind() != SparseStorage {
		src, other, left = v, u, false
	}
	src.m.DoNonZero(func(i, j int, x T) bool {
		y := other.at(max(i, j))
		if left {
			acc = ops.Accumulate(acc, x, y)
		} else {
			acc = ops.Accumulate(acc, y, x)
		}
		return true
	})

	return acc, nil
}

// Dot returns the dot product of v and w.
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) { return Dot(v, w) }

// DistanceSquared returns Σ|u_i − v_i|², orientation-free.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func DistanceSquared[T any](u, v *Vector[T]) (float64, error) {
	if err := ValidateSameLength(u, v); err != nil {
		return 0, matrixErrorf(opDistance, err)
	}
	var acc float64
	if a, ok := u.denseF64(); ok {
		if b, ok := v.denseF64(); ok {
			// same summation order as the generic loop below
			for i, x := range a {
				d := x - b[i]
				acc += float64(d * d)
			}
			return acc, nil
		}
	}
	ops := u.Ops()
	for i, n := 0, u.Len(); i < n; i++ {
		acc += ops.AbsSq(ops.Sub(u.at(i), v.at(i)))
	}

	return acc, nil
}

// Distance returns the Euclidean distance between u and v.
func Distance[T any](u, v *Vector[T]) (float64, error) {
	if u != nil && v != nil {
		a, okA := u.denseF64()
		b, okB := v.denseF64()
		if okA && okB && len(a) == len(b) {
			return floats.Distance(a, b, 2), nil
		}
	}
	d2, err := DistanceSquared(u, v)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(d2), nil
}

// wrap returns a Vector over m; m comes from a kernel that preserved the shape.
func wrap[T any](m Matrix[T], err error) (*Vector[T], error) {
	if err != nil {
		return nil, err
	}

	return &Vector[T]{m: m}, nil
}

// Add returns v + w. Both vectors must have the same length and orientation
// (a 1×n plus an n×1 is a shape mismatch, as for matrices).
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	if err := ValidateSameLength(v, w); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return wrap[T](Add(v.m, w.m))
}

// Sub returns v − w under the same rules as Add.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	if err := ValidateSameLength(v, w); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return wrap[T](Sub(v.m, w.m))
}

// Hadamard returns the element-wise product v ⊙ w.
func (v *Vector[T]) Hadamard(w *Vector[T]) (*Vector[T], error) {
	if err := ValidateSameLength(v, w); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return wrap[T](Hadamard(v.m, w.m))
}

// Scale returns s·v.
func (v *Vector[T]) Scale(s T) *Vector[T] {
	out, _ := wrap[T](Scale(v.m, s)) // v.m is never nil

	return out
}

// DivScalar returns v / s.
// Errors: ErrDivisionByZero.
func (v *Vector[T]) DivScalar(s T) (*Vector[T], error) { return wrap[T](DivScalar(v.m, s)) }

// Neg returns −v.
func (v *Vector[T]) Neg() *Vector[T] {
	out, _ := wrap[T](Neg(v.m))

	return out
}

// Transpose returns a copy with the other orientation.
func (v *Vector[T]) Transpose() *Vector[T] {
	out, _ := wrap[T](Transpose(v.m))

	return out
}

// Clone returns an independent deep copy.
func (v *Vector[T]) Clone() *Vector[T] { return &Vector[T]{m: v.m.Clone()} }

// Matrix returns a copy of the owned 1×n or n×1 matrix.
func (v *Vector[T]) Matrix() Matrix[T] { return v.m.Clone() }

// Slice returns the elements as a new slice.
// Complexity: O(n).
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.Len())
	if d, ok := v.m.(*Dense[T]); ok {
		copy(out, d.data)
		return out
	}
	v.m.DoNonZero(func(i, j int, x T) bool {
		out[max(i, j)] = x
		return true
	})

	return out
}

// Equal reports same storage family, orientation, length and elements.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == nil || w == nil {
		return v == w
	}

	return Equal(v.m, w.m)
}

// ApproxEqual reports |v_i − w_i| ≤ eps for every i. Orientation must match;
// storage family may differ.
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrInvalidArgument (eps < 0 or NaN).
func (v *Vector[T]) ApproxEqual(w *Vector[T], eps float64) (bool, error) {
	if err := ValidateSameLength(v, w); err != nil {
		return false, matrixErrorf(opApproxVector, err)
	}

	return ApproxEqual(v.m, w.m, eps)
}

// Format renders the vector through the matrix text renderer.
func (v *Vector[T]) Format(opts ...Option) string { return Format(v.m, opts...) }

// String renders the short debugging form of the owned matrix.
func (v *Vector[T]) String() string { return shortString(v.m) }
