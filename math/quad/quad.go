/*package quad integrates functions which look like power laws between
neighboring samples. Halo density profiles behave this way on log-spaced
grids, where the ordinary trapezoid rule would need orders of magnitude more
nodes to stop overshooting the cuspy inner regions.
*/
package quad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// GridSize returns the number of log-spaced nodes spanning [xmin, xmax] at a
// resolution of ndecade nodes per decade. Ranges much narrower than a single
// node can round down to fewer than two nodes, which no grid can represent,
// so callers should check the returned size before building grids by hand.
func GridSize(xmin, xmax float64, ndecade int) int {
	decades := math.Log10(xmax) - math.Log10(xmin)
	return int(math.Round(decades * float64(ndecade)))
}

// LogGrid returns GridSize(xmin, xmax, ndecade) logarithmically spaced nodes
// running from xmin to xmax, inclusive on both ends.
//
// LogGrid panics if the bounds are not ordered and positive, or if fewer
// than two nodes span them.
func LogGrid(xmin, xmax float64, ndecade int) []float64 {
	if xmin <= 0 || xmax <= xmin {
		panic(fmt.Sprintf(
			"Cannot build a log grid on the range [%g, %g].", xmin, xmax,
		))
	}
	n := GridSize(xmin, xmax, ndecade)
	if n < 2 {
		panic(fmt.Sprintf(
			"Only %d nodes span [%g, %g] at %d nodes per decade.",
			n, xmin, xmax, ndecade,
		))
	}
	return floats.LogSpan(make([]float64, n), xmin, xmax)
}

// TrapzLogLog integrates the samples ys taken at the points xs by passing a
// power law through each pair of neighboring samples. It is the log-log
// analogue of the trapezoid rule. A segment with a zero sample at either end
// contributes nothing, so truncated profiles integrate cleanly.
//
// TrapzLogLog panics if the slices have mismatched lengths or fewer than two
// samples, or if xs is not positive and non-decreasing.
func TrapzLogLog(xs, ys []float64) float64 {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("len(xs) = %d, but len(ys) = %d.", len(xs), len(ys)))
	}
	if len(xs) < 2 {
		panic(fmt.Sprintf("Cannot integrate %d samples.", len(xs)))
	}

	segs := make([]float64, len(xs)-1)
	for i := range segs {
		x1, x2 := xs[i], xs[i+1]
		if x1 <= 0 || x2 < x1 {
			panic(fmt.Sprintf(
				"xs must be positive and non-decreasing, but xs[%d] = %g "+
					"and xs[%d] = %g.", i, x1, i+1, x2,
			))
		}
		segs[i] = segment(x1, x2, ys[i], ys[i+1])
	}

	return floats.Sum(segs)
}

// segment integrates a single power law panel analytically. Slopes within
// 1e-10 of b = -1 would blow up the closed form and use the logarithmic
// antiderivative instead.
func segment(x1, x2, y1, y2 float64) float64 {
	if y1 == 0 || y2 == 0 || x1 == x2 {
		return 0
	}
	b := math.Log10(y2/y1) / math.Log10(x2/x1)
	if math.Abs(b+1) < 1e-10 {
		return x1 * y1 * math.Log(x2/x1)
	}
	return y1 * (x2*math.Pow(x2/x1, b) - x1) / (b + 1)
}

// LogLog integrates f over [xmin, xmax] by sampling it on a LogGrid with
// ndecade nodes per decade and applying TrapzLogLog to the samples.
func LogLog(f func(float64) float64, xmin, xmax float64, ndecade int) float64 {
	xs := LogGrid(xmin, xmax, ndecade)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return TrapzLogLog(xs, ys)
}
