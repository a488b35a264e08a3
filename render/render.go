// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

const (
	opHeatMap = "HeatMap"
	opLine    = "Line"
	opScatter = "Scatter"
)

func renderErrorf(op string, err error) error {
	return fmt.Errorf("render.%s: %w", op, err)
}

// grid adapts a float64 Matrix to plotter.GridXYZ. Cells are copied once so
// the plotter never calls back into the matrix.
type grid struct {
	rows, cols int
	z          []float64 // row-major
	lo, hi     float64
}

func newGrid(m matrix.Matrix[float64]) *grid {
	g := &grid{rows: m.Rows(), cols: m.Cols(), z: make([]float64, m.Rows()*m.Cols())}
	m.DoNonZero(func(i, j int, v float64) bool {
		g.z[i*g.cols+j] = v
		return true
	})
	g.lo, g.hi = floats.Min(g.z), floats.Max(g.z)
	if g.lo == g.hi {
		g.hi = g.lo + 1 // a flat matrix still maps onto the palette
	}

	return g
}

// Dims returns (columns, rows) as plotter.GridXYZ expects.
func (g *grid) Dims() (c, r int) { return g.cols, g.rows }

// Z flips rows so matrix row 0 is drawn at the top.
func (g *grid) Z(c, r int) float64 { return g.z[(g.rows-1-r)*g.cols+c] }

func (g *grid) X(c int) float64 { return float64(c) }
func (g *grid) Y(r int) float64 { return float64(r) }
func (g *grid) Min() float64    { return g.lo }
func (g *grid) Max() float64    { return g.hi }

// HeatMap renders m as a heat map.
// Errors: matrix.ErrNilMatrix; plot/format errors from the writer.
// Complexity: O(r*c).
func HeatMap(w io.Writer, m matrix.Matrix[float64], opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return renderErrorf(opHeatMap, err)
	}
	o := gatherOptions(opts...)
	p := newPlot(o)
	p.Add(plotter.NewHeatMap(newGrid(m), palette.Heat(o.levels, 1)))

	if err := emit(w, p, o); err != nil {
		return renderErrorf(opHeatMap, err)
	}

	return nil
}

// Line renders the elements of v against their index.
// Errors: matrix.ErrNilMatrix; plot/format errors.
// Complexity: O(n).
func Line(w io.Writer, v *matrix.Vector[float64], opts ...Option) error {
	if err := matrix.ValidateVector(v); err != nil {
		return renderErrorf(opLine, err)
	}
	o := gatherOptions(opts...)
	p := newPlot(o)
	xs := v.Slice()
	pts := make(plotter.XYs, len(xs))
	for i, y := range xs {
		pts[i] = plotter.XY{X: float64(i), Y: y}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return renderErrorf(opLine, err)
	}
	p.Add(l)

	if err := emit(w, p, o); err != nil {
		return renderErrorf(opLine, err)
	}

	return nil
}

// Scatter renders the rows of an n×2 matrix as points (x in column 0,
// y in column 1), the layout WritePoints emits for triangulation tools.
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch (Cols != 2); plot errors.
// Complexity: O(n).
func Scatter(w io.Writer, pts matrix.Matrix[float64], opts ...Option) error {
	if err := matrix.ValidateNotNil(pts); err != nil {
		return renderErrorf(opScatter, err)
	}
	if pts.Cols() != 2 {
		return renderErrorf(opScatter, fmt.Errorf("%d columns: %w", pts.Cols(), matrix.ErrShapeMismatch))
	}
	o := gatherOptions(opts...)
	p := newPlot(o)
	xy := make(plotter.XYs, pts.Rows())
	pts.DoNonZero(func(i, j int, v float64) bool {
		if j == 0 {
			xy[i].X = v
		} else {
			xy[i].Y = v
		}
		return true
	})
	s, err := plotter.NewScatter(xy)
	if err != nil {
		return renderErrorf(opScatter, err)
	}
	p.Add(s)

	if err := emit(w, p, o); err != nil {
		return renderErrorf(opScatter, err)
	}

	return nil
}

func newPlot(o Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = o.title

	return p
}

// emit draws p in the configured format and writes it to w.
func emit(w io.Writer, p *plot.Plot, o Options) error {
	wt, err := p.WriterTo(o.width, o.height, o.format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)

	return err
}
