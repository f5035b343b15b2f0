package interpolate

type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

type BiInterpolator interface {
	Eval(x, y float64) float64
	EvalAll(xs, ys []float64, out ...[]float64) []float64
}

var (
	_ Interpolator   = &Linear{}
	_ BiInterpolator = &BiLinear{}
)
