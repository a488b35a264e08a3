// SPDX-License-Identifier: MIT

// Package render draws float64 matrices and vectors as images through
// gonum/plot, for visualizers that inspect map weights or sample data.
//
//   - HeatMap: one colored cell per matrix element, row 0 at the top.
//   - Line: a vector's elements against their index.
//   - Scatter: the rows of an n×2 matrix as points.
//
// Every renderer writes a complete image in the configured format ("png" by
// default; "svg", "pdf", "eps", "jpg", "tif" also work) to an io.Writer.
// Size, title and palette depth are set with Option values.
//
// Renderers read their input once and never modify it.
package render
