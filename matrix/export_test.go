// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Test bridge: exposes private kernels and a CRS structure check to
// matrix_test without widening the production API.

var (
	ExportedBroadcastSubCols = ewBroadcastSubCols[float64]
	ExportedScaleRows        = ewScaleRows[float64]
)

// CheckSparse reports the first violated CRS structural rule, or nil.
func CheckSparse[T any](s *Sparse[T]) error {
	if len(s.rowPtr) != s.r+1 {
		return fmt.Errorf("len(rowPtr)=%d, want %d", len(s.rowPtr), s.r+1)
	}
	if s.rowPtr[0] != 0 || s.rowPtr[s.r] != len(s.values) || len(s.colIdx) != len(s.values) {
		return fmt.Errorf("rowPtr ends %d..%d, nnz=%d/%d", s.rowPtr[0], s.rowPtr[s.r], len(s.colIdx), len(s.values))
	}
	for i := 0; i < s.r; i++ {
		lo, hi := s.rowPtr[i], s.rowPtr[i+1]
		if lo > hi {
			return fmt.Errorf("row %d: rowPtr decreases", i)
		}
		for k := lo; k < hi; k++ {
			if s.colIdx[k] < 0 || s.colIdx[k] >= s.c {
				return fmt.Errorf("row %d: column %d out of range", i, s.colIdx[k])
			}
			if k > lo && s.colIdx[k-1] >= s.colIdx[k] {
				return fmt.Errorf("row %d: columns not strictly ascending", i)
			}
			if s.ops.IsZero(s.values[k]) {
				return fmt.Errorf("row %d col %d: stored zero", i, s.colIdx[k])
			}
		}
	}

	return nil
}
