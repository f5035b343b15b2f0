package interpolate

import (
	"fmt"
)

// Linear interpolates linearly between tabulated values.
type Linear struct {
	ax   axis
	vals []float64
}

// NewLinear creates a linear interpolator over the strictly increasing
// nodes xs, which take on the values vals.
//
// Panics if the slices have different lengths or if xs is not strictly
// increasing.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf("len(xs) = %d, but len(vals) = %d.",
			len(xs), len(vals)))
	}
	lin := &Linear{}
	lin.ax.init(xs)
	lin.vals = vals
	return lin
}

// NewUniformLinear creates a linear interpolator over uniformly spaced nodes
// starting at x0 and separated by dx, which take on the values vals. Lookups
// are O(1).
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	lin := &Linear{}
	lin.ax.initUniform(x0, dx, len(vals))
	lin.vals = vals
	return lin
}

// Eval returns the interpolated value at x. Panics if x is outside the node
// range.
func (lin *Linear) Eval(x float64) float64 {
	i := lin.ax.cell(x)
	x1, x2 := lin.ax.at(i), lin.ax.at(i+1)
	v1, v2 := lin.vals[i], lin.vals[i+1]
	return v1 + (v2-v1)*(x-x1)/(x2-x1)
}

// EvalAll evaluates the interpolator at every x in xs. If an output slice is
// given, the results are written to it and it is returned as a convenience.
// Otherwise a new slice is allocated.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

// BiLinear interpolates bilinearly on a 2D table. The table is indexed in
// the usual way: vals(ix, iy) -> vals[ix + iy*nx].
type BiLinear struct {
	xax, yax axis
	vals     []float64
	nx       int
}

// NewBiLinear creates a bilinear interpolator on the grid whose axis nodes
// are the strictly increasing slices xs and ys.
//
// Panics if len(xs)*len(ys) != len(vals) or if either axis is not strictly
// increasing.
func NewBiLinear(xs, ys, vals []float64) *BiLinear {
	if len(xs)*len(ys) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d and len(ys) = %d.",
			len(vals), len(xs), len(ys),
		))
	}
	bi := &BiLinear{}
	bi.xax.init(xs)
	bi.yax.init(ys)
	bi.nx = len(xs)
	bi.vals = vals
	return bi
}

// NewUniformBiLinear creates a bilinear interpolator on a uniform grid whose
// axes start at x0 and y0 and advance in steps of dx and dy.
//
// Panics if nx*ny != len(vals).
func NewUniformBiLinear(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	vals []float64,
) *BiLinear {
	if nx*ny != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d and ny = %d.", len(vals), nx, ny,
		))
	}
	bi := &BiLinear{}
	bi.xax.initUniform(x0, dx, nx)
	bi.yax.initUniform(y0, dy, ny)
	bi.nx = nx
	bi.vals = vals
	return bi
}

// Eval returns the interpolated value at (x, y). Panics if the point is
// outside the grid.
func (bi *BiLinear) Eval(x, y float64) float64 {
	ix1, iy1 := bi.xax.cell(x), bi.yax.cell(y)
	ix2, iy2 := ix1+1, iy1+1

	x1, x2 := bi.xax.at(ix1), bi.xax.at(ix2)
	y1, y2 := bi.yax.at(iy1), bi.yax.at(iy2)

	v11 := bi.vals[ix1+bi.nx*iy1]
	v12 := bi.vals[ix1+bi.nx*iy2]
	v21 := bi.vals[ix2+bi.nx*iy1]
	v22 := bi.vals[ix2+bi.nx*iy2]

	dx1, dx2 := x-x1, x2-x
	dy1, dy2 := y-y1, y2-y

	return (v11*dx2*dy2 + v12*dx2*dy1 +
		v21*dx1*dy2 + v22*dx1*dy1) / ((x2 - x1) * (y2 - y1))
}

// EvalAll evaluates the interpolator at every (xs[i], ys[i]) pair. If an
// output slice is given, the results are written to it and it is returned
// as a convenience. Otherwise a new slice is allocated.
func (bi *BiLinear) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i := range xs {
		out[0][i] = bi.Eval(xs[i], ys[i])
	}
	return out[0]
}
