package jellyfish

import (
	"fmt"
	"math"
	"runtime"

	"github.com/phil-mansfield/jellyfish/math/quad"
	"github.com/phil-mansfield/jellyfish/units"
)

// DefaultNDecade is the standard resolution of the line of sight integrals,
// in grid nodes per decade of radius.
const DefaultNDecade = 10000

// Integral integrates the squared density of p over halo-centric radius
// along the line of sight an angle sep away from the halo center, as seen
// from ref.DistanceGC away. The substitution from path length to radius
// diverges at the tangent radius ref.DistanceGC * sin(sep), so rmin must
// stay above it: bounds at or below the tangent radius are not caught and
// return NaN. A sightline through the halo crosses each radius twice, and
// Integral counts a single crossing.
//
// The integrand is sampled on a log grid with ndecade nodes per decade,
// DefaultNDecade in the usual case. Invalid bounds (rmin not positive, rmax
// not above rmin, or a grid too narrow to hold two nodes) return an error.
func Integral(
	p Profile, ref Reference, rmin, rmax units.Length,
	sep units.Angle, ndecade int,
) (units.JFactor, error) {
	if err := checkBounds(rmin, rmax, ndecade); err != nil {
		return 0, err
	}
	v := losIntegrate(p, ref, rmin, rmax, sep, ndecade, true)
	return units.JFactor(v * units.CentimetersPerKiloparsec), nil
}

// IntegralAll computes Integral for every separation in seps, fanned out
// across the machine's CPUs. The results are ordered like seps and are bit
// for bit what len(seps) scalar calls would return.
func IntegralAll(
	p Profile, ref Reference, rmin, rmax units.Length,
	seps []units.Angle, ndecade int,
) ([]units.JFactor, error) {
	if err := checkBounds(rmin, rmax, ndecade); err != nil {
		return nil, err
	}

	out := make([]units.JFactor, len(seps))
	eachSeparation(len(seps), func(i int) {
		v := losIntegrate(p, ref, rmin, rmax, seps[i], ndecade, true)
		out[i] = units.JFactor(v * units.CentimetersPerKiloparsec)
	})
	return out, nil
}

// DecayIntegral integrates the density itself rather than its square, the
// line of sight factor of dark matter decay searches. Bounds behave exactly
// as in Integral.
func DecayIntegral(
	p Profile, ref Reference, rmin, rmax units.Length,
	sep units.Angle, ndecade int,
) (units.DFactor, error) {
	if err := checkBounds(rmin, rmax, ndecade); err != nil {
		return 0, err
	}
	v := losIntegrate(p, ref, rmin, rmax, sep, ndecade, false)
	return units.DFactor(v * units.CentimetersPerKiloparsec), nil
}

// DifferentialJFactorAll computes the J-factor per steradian toward each
// separation: twice the squared density integral from an inner bound of
// tan(sep) * ref.DistanceGC, which sits above the sightline's tangent
// radius ref.DistanceGC * sin(sep), out to ref.DistanceGC. This is the
// quantity annihilation sky maps tabulate per pixel.
//
// Each separation sets its own inner bound, so all bounds are vetted before
// any integration starts. Separations must sit strictly between 0 and 45
// degrees for the bounds to make sense.
func DifferentialJFactorAll(
	p Profile, ref Reference, seps []units.Angle, ndecade int,
) ([]units.JFactor, error) {
	rmax := ref.DistanceGC
	rmins := make([]units.Length, len(seps))
	for i, sep := range seps {
		rmins[i] = units.Length(math.Tan(sep.Radians())) * ref.DistanceGC
		if err := checkBounds(rmins[i], rmax, ndecade); err != nil {
			return nil, fmt.Errorf("separation %g deg: %v", sep.Degrees(), err)
		}
	}

	out := make([]units.JFactor, len(seps))
	eachSeparation(len(seps), func(i int) {
		v := 2 * losIntegrate(p, ref, rmins[i], rmax, seps[i], ndecade, true)
		out[i] = units.JFactor(v * units.CentimetersPerKiloparsec)
	})
	return out, nil
}

// losIntegrate integrates rho or rho^2 over halo-centric radius along a
// sightline offset from the halo center by sep. The change of variables
// from path length to radius contributes r / sqrt(r^2 - rt^2), with rt the
// tangent radius of the sightline. The caller has already vetted the
// bounds.
func losIntegrate(
	p Profile, ref Reference, rmin, rmax units.Length,
	sep units.Angle, ndecade int, squared bool,
) float64 {
	rt := ref.DistanceGC.Kiloparsecs() * math.Sin(sep.Radians())
	rt2 := rt * rt

	xs := quad.LogGrid(rmin.Kiloparsecs(), rmax.Kiloparsecs(), ndecade)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		rho := float64(p.Density(units.Length(x)))
		if squared {
			rho *= rho
		}
		ys[i] = rho * x / math.Sqrt(x*x-rt2)
	}

	return quad.TrapzLogLog(xs, ys)
}

// eachSeparation runs f(i) for i in [0, n) across one worker per CPU. The
// last worker runs on the calling goroutine.
func eachSeparation(n int, f func(i int)) {
	if n == 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}

	done := make(chan int, workers)
	work := func(id int) {
		for i := id; i < n; i += workers {
			f(i)
		}
		done <- id
	}

	for id := 0; id < workers-1; id++ {
		go work(id)
	}
	work(workers - 1)

	for i := 0; i < workers; i++ {
		<-done
	}
}

// checkBounds vets integration bounds before they reach the quadrature
// kernel, which panics on anything this rejects.
func checkBounds(rmin, rmax units.Length, ndecade int) error {
	xmin, xmax := rmin.Kiloparsecs(), rmax.Kiloparsecs()
	if xmin <= 0 {
		return fmt.Errorf(
			"invalid integration bounds: rmin = %g kpc must be positive", xmin,
		)
	}
	if xmax <= xmin {
		return fmt.Errorf(
			"invalid integration bounds: rmax = %g kpc is not above "+
				"rmin = %g kpc", xmax, xmin,
		)
	}
	if n := quad.GridSize(xmin, xmax, ndecade); n < 2 {
		return fmt.Errorf(
			"invalid integration bounds: only %d nodes span [%g, %g] kpc "+
				"at %d nodes per decade", n, xmin, xmax, ndecade,
		)
	}
	return nil
}
