// Package lvmat is a generic matrix and vector algebra engine for
// numerical code that mixes dense and sparse data.
//
// What is in the box?
//
//	A typed, pure-Go core with gonum underneath where it pays off:
//		• Matrix[T]: one contract over Dense (row-major) and Sparse (CRS) storage
//		• Vector[T]: a 1×n or n×1 matrix with norms, dot and distance
//		• Kernels: Add, Sub, Mul, Hadamard, Scale, Transpose, MatVec
//		• Shape ops: rows, columns, Repeat, CopyTo
//		• Statistics: sums, centering, L2 rows, ranges, covariance
//		• Solvers: dense LU and sparse direct solve with accuracy gates
//		• Rendering: heat maps, lines and scatter plots via gonum/plot
//
// Element types come from arith.For: every built-in integer and float kind
// plus complex64/complex128, or any type registered with arith.Register.
//
// Packages:
//
//	arith/   runtime arithmetic tables for element types
//	matrix/  Matrix, Dense, Sparse, Vector and every kernel
//	solve/   linear systems over float64 matrices
//	render/  image output for float64 matrices and vectors
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewSparseFromRows([][]float64{{0, 1}, {0, 0}})
//	c, _ := matrix.Mul[float64](a, b) // dense: the left operand decides
//
//	go get github.com/katalvlaran/lvmat
package lvmat
