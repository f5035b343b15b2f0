package jellyfish

import (
	"math"
	"testing"

	"github.com/phil-mansfield/jellyfish/math/quad"
	"github.com/phil-mansfield/jellyfish/units"
	"github.com/stretchr/testify/assert"
)

func TestIntegralNFWEndToEnd(t *testing.T) {
	p := DefaultNFW()
	j, err := Integral(
		p, MilkyWay, 1*units.Kiloparsec, 100*units.Kiloparsec, 0, 1000,
	)
	assert.NoError(t, err, "valid bounds")
	assert.True(t, float64(j) > 0, "positive")
	assert.False(t, math.IsInf(float64(j), 0), "finite")

	j2, err := Integral(
		p, MilkyWay, 1*units.Kiloparsec, 100*units.Kiloparsec, 0, 1000,
	)
	assert.NoError(t, err, "valid bounds")
	assert.Equal(t, j, j2, "bit for bit reproducible")
}

func TestIntegralHeadOnIsSquaredDensity(t *testing.T) {
	// At zero separation the tangent radius vanishes and the geometric
	// factor r / sqrt(r^2) drops out, so the integral is just the squared
	// density integrated over radius.
	p := DefaultNFW()
	rmin, rmax := 1.0, 100.0

	want := quad.LogLog(func(r float64) float64 {
		rho := float64(p.Density(units.Length(r) * units.Kiloparsec))
		return rho * rho
	}, rmin, rmax, 1000) * units.CentimetersPerKiloparsec

	j, err := Integral(
		p, MilkyWay, units.Length(rmin)*units.Kiloparsec,
		units.Length(rmax)*units.Kiloparsec, 0, 1000,
	)
	assert.NoError(t, err, "valid bounds")
	assert.InEpsilon(t, want, float64(j), 1e-12, "head-on integral")
}

func TestIntegralAllMatchesScalar(t *testing.T) {
	p := DefaultEinasto()
	rmin, rmax := 1*units.Kiloparsec, 100*units.Kiloparsec
	seps := []units.Angle{
		0, 0.5 * units.Degree, 1 * units.Degree, 2 * units.Degree,
	}

	js, err := IntegralAll(p, MilkyWay, rmin, rmax, seps, 100)
	assert.NoError(t, err, "valid bounds")
	assert.Equal(t, len(seps), len(js), "one integral per separation")

	for i, sep := range seps {
		j, err := Integral(p, MilkyWay, rmin, rmax, sep, 100)
		assert.NoError(t, err, "valid bounds")
		assert.Equal(t, j, js[i], "batch matches scalar")
	}
}

func TestInvalidBounds(t *testing.T) {
	p := DefaultNFW()

	_, err := Integral(p, MilkyWay, 0, 100*units.Kiloparsec, 0, 1000)
	assert.Error(t, err, "rmin = 0")

	_, err = Integral(
		p, MilkyWay, -1*units.Kiloparsec, 100*units.Kiloparsec, 0, 1000,
	)
	assert.Error(t, err, "negative rmin")

	_, err = Integral(
		p, MilkyWay, 10*units.Kiloparsec, 10*units.Kiloparsec, 0, 1000,
	)
	assert.Error(t, err, "empty range")

	_, err = Integral(
		p, MilkyWay, 10*units.Kiloparsec, 1*units.Kiloparsec, 0, 1000,
	)
	assert.Error(t, err, "reversed bounds")

	_, err = Integral(
		p, MilkyWay, 1*units.Kiloparsec, 1.001*units.Kiloparsec, 0, 10,
	)
	assert.Error(t, err, "grid too coarse for the range")

	_, err = IntegralAll(
		p, MilkyWay, 0, 100*units.Kiloparsec, []units.Angle{0}, 1000,
	)
	assert.Error(t, err, "batch rmin = 0")

	_, err = DecayIntegral(p, MilkyWay, 0, 100*units.Kiloparsec, 0, 1000)
	assert.Error(t, err, "decay rmin = 0")
}

func TestTangentRadiusViolation(t *testing.T) {
	// At 30 degrees the tangent radius is 8.33 sin(30 deg) = 4.165 kpc.
	// Starting the grid at 1 kpc crosses it, which the integral does not
	// guard: the sqrt goes imaginary and NaN comes out.
	p := DefaultNFW()
	j, err := Integral(
		p, MilkyWay, 1*units.Kiloparsec, 100*units.Kiloparsec,
		30*units.Degree, 100,
	)
	assert.NoError(t, err, "bounds pass the shape checks")
	assert.True(t, math.IsNaN(float64(j)), "NaN propagates")
}

func TestDecayIntegralHeadOn(t *testing.T) {
	// The decay factor drops the square, so head on it is the integral of
	// the density itself.
	p := DefaultBurkert()
	rmin, rmax := 1.0, 100.0

	want := quad.LogLog(func(r float64) float64 {
		return float64(p.Density(units.Length(r) * units.Kiloparsec))
	}, rmin, rmax, 1000) * units.CentimetersPerKiloparsec

	d, err := DecayIntegral(
		p, MilkyWay, units.Length(rmin)*units.Kiloparsec,
		units.Length(rmax)*units.Kiloparsec, 0, 1000,
	)
	assert.NoError(t, err, "valid bounds")
	assert.InEpsilon(t, want, float64(d), 1e-12, "head-on decay integral")
}

func TestDifferentialJFactorAll(t *testing.T) {
	p := DefaultNFW()
	seps := []units.Angle{
		0.5 * units.Degree, 1 * units.Degree, 2 * units.Degree,
	}

	js, err := DifferentialJFactorAll(p, MilkyWay, seps, 100)
	assert.NoError(t, err, "valid separations")

	for i, sep := range seps {
		rmin := units.Length(math.Tan(sep.Radians())) * MilkyWay.DistanceGC
		j, err := Integral(p, MilkyWay, rmin, MilkyWay.DistanceGC, sep, 100)
		assert.NoError(t, err, "valid bounds")
		assert.Equal(t, 2*j, js[i], "twice the one sided integral")
		assert.False(t, math.IsNaN(float64(js[i])),
			"bounds clear the tangent radius")
	}
}

func TestDifferentialJFactorAllRejectsZeroSeparation(t *testing.T) {
	// tan(0) puts the inner bound at zero radius, which the bound checks
	// catch before any integration runs.
	p := DefaultNFW()
	_, err := DifferentialJFactorAll(p, MilkyWay, []units.Angle{0}, 100)
	assert.Error(t, err, "zero separation")
}

func BenchmarkIntegral(b *testing.B) {
	p := DefaultNFW()
	for i := 0; i < b.N; i++ {
		Integral(
			p, MilkyWay, 1*units.Kiloparsec, 100*units.Kiloparsec,
			1*units.Degree, DefaultNDecade,
		)
	}
}
