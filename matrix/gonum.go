// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum/mat for float64 data.
//
// Conversions always copy; no buffer is shared between the two libraries.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum      = "ToGonum"
	opFromGonum    = "FromGonum"
	opVecToGonum   = "VecToGonum"
	opVecFromGonum = "VecFromGonum"
)

// ToGonum copies any float64 Matrix into a *mat.Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToGonum(m Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if d, ok := m.(*Dense[float64]); ok {
		return mat.NewDense(d.r, d.c, d.Slice()), nil
	}
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	m.DoNonZero(func(i, j int, v float64) bool {
		out.Set(i, j, v)
		return true
	})

	return out, nil
}

// FromGonum copies a gonum matrix into a new Dense[float64]. *mat.Dense
// sources are copied row by row from their raw storage (respecting Stride).
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty source).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense[float64], error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense[float64](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	if gd, ok := g.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.rowSlice(i), raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return out, nil
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// VecToGonum copies a float64 Vector into a *mat.VecDense (gonum vectors
// carry no orientation).
// Errors: ErrNilMatrix.
func VecToGonum(v *Vector[float64]) (*mat.VecDense, error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opVecToGonum, err)
	}

	return mat.NewVecDense(v.Len(), v.Slice()), nil
}

// VecFromGonum copies a gonum vector into a Dense-backed Vector with the
// requested orientation.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty source).
func VecFromGonum(g mat.Vector, o Orientation) (*Vector[float64], error) {
	if g == nil {
		return nil, matrixErrorf(opVecFromGonum, ErrNilMatrix)
	}
	n := g.Len()
	v, err := NewVector[float64](n, o)
	if err != nil {
		return nil, matrixErrorf(opVecFromGonum, err)
	}
	d := v.m.(*Dense[float64])
	for i := 0; i < n; i++ {
		d.data[i] = g.AtVec(i)
	}

	return v, nil
}
