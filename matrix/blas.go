// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// gemmFloat64 computes a×b with blas64.Gemm when both operands are
// *Dense[float64]; ok is false for every other combination. The row-major
// flat buffers map onto blas64.General without copying.
func gemmFloat64[T any](a, b Matrix[T]) (res Matrix[T], ok bool) {
	da, ok := any(a).(*Dense[float64])
	if !ok {
		return nil, false
	}
	db, ok := any(b).(*Dense[float64])
	if !ok {
		return nil, false
	}
	out := newDense(da.ops, da.r, db.c)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		general(da), general(db),
		0, general(out))

	return any(out).(Matrix[T]), true
}

func general(d *Dense[float64]) blas64.General {
	return blas64.General{Rows: d.r, Cols: d.c, Stride: d.c, Data: d.data}
}
