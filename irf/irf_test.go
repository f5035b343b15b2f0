package irf

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/phil-mansfield/jellyfish/units"
	"github.com/stretchr/testify/assert"
)

func logEnergies(emin, emax units.Energy, n int) []units.Energy {
	es := make([]units.Energy, n)
	lmin, lmax := math.Log10(float64(emin)), math.Log10(float64(emax))
	for i := range es {
		l := lmin + (lmax-lmin)*float64(i)/float64(n-1)
		es[i] = units.Energy(math.Pow(10, l))
	}
	return es
}

func TestEffectiveAreaNodes(t *testing.T) {
	es := logEnergies(1e3*units.MeV, 1e7*units.MeV, 9)
	as := make([]units.Area, len(es))
	for i := range as {
		as[i] = units.Area(float64(i + 1))
	}
	a := NewEffectiveArea(es, as)

	for i := range es {
		assert.InEpsilon(t, float64(as[i]), float64(a.Evaluate(es[i])),
			1e-12, "node value")
	}
}

func TestEffectiveAreaLogAxis(t *testing.T) {
	// The table is linear in log10(E), so interpolation between nodes is
	// exact at the geometric mean of two neighbors.
	es := logEnergies(1e2*units.MeV, 1e6*units.MeV, 5)
	as := make([]units.Area, len(es))
	for i, e := range es {
		as[i] = units.Area(3*math.Log10(float64(e)) + 2)
	}
	a := NewEffectiveArea(es, as)

	for i := 0; i+1 < len(es); i++ {
		mid := units.Energy(math.Sqrt(float64(es[i]) * float64(es[i+1])))
		want := 3*math.Log10(float64(mid)) + 2
		assert.InEpsilon(t, want, float64(a.Evaluate(mid)), 1e-10,
			"geometric midpoint")
	}
}

func TestEffectiveAreaMaxArea(t *testing.T) {
	es := logEnergies(1*units.MeV, 1e4*units.MeV, 4)
	as := []units.Area{2, units.Area(math.NaN()), 7, 3}
	a := NewEffectiveArea(es, as)

	assert.Equal(t, 7.0, float64(a.MaxArea()), "NaN entries skipped")
}

func TestFindEnergy(t *testing.T) {
	es := []units.Energy{1, 10, 100, 1000}
	as := []units.Area{0, 10, 20, 30}
	a := NewEffectiveArea(es, as)

	// Area 15 sits halfway between the 10 and 100 MeV nodes.
	e, err := a.FindEnergy(15 * units.SquareCentimeter)
	assert.NoError(t, err, "reachable area")
	assert.InEpsilon(t, 55.0, float64(e), 1e-12, "interpolated threshold")

	_, err = a.FindEnergy(100 * units.SquareCentimeter)
	assert.Error(t, err, "area above the table maximum")
}

func TestFindEnergyNaNBins(t *testing.T) {
	es := []units.Energy{1, 10, 100, 1000}

	// The NaN bin sits between the target and the crossing. It must not be
	// mistaken for the crossing, and the crossing must not interpolate
	// against it.
	as := []units.Area{5, units.Area(math.NaN()), 20, 30}
	a := NewEffectiveArea(es, as)

	e, err := a.FindEnergy(15 * units.SquareCentimeter)
	assert.NoError(t, err, "reachable area")
	assert.False(t, math.IsNaN(float64(e)), "NaN bins are skipped")
	assert.Equal(t, 100.0, float64(e), "crossing after the bad bin")

	// A NaN bin at the front behaves like the table starting at node 1.
	as = []units.Area{units.Area(math.NaN()), 10, 20, 30}
	a = NewEffectiveArea(es, as)

	e, err = a.FindEnergy(5 * units.SquareCentimeter)
	assert.NoError(t, err, "reachable area")
	assert.Equal(t, 10.0, float64(e), "NaN left neighbor")
}

func TestParametrization(t *testing.T) {
	es := logEnergies(1e5*units.MeV, 1e8*units.MeV, 30)

	for _, instrument := range []Instrument{HESS, HESS2, CTA} {
		a, err := Parametrization(instrument, es)
		assert.NoError(t, err, string(instrument))

		for _, e := range es {
			v := float64(a.Evaluate(e))
			assert.True(t, v > 0 && !math.IsInf(v, 0),
				"positive finite area")
		}
	}

	// HESS at 1 TeV against the closed form.
	a, err := Parametrization(HESS, es)
	assert.NoError(t, err, "HESS")
	x := 1e6
	want := 6.85e9 * math.Pow(x, -0.0891) * math.Exp(-5e5/x)
	assert.InEpsilon(t, want, float64(a.Evaluate(1*units.TeV)), 1e-10,
		"HESS at 1 TeV")

	_, err = Parametrization("VERITAS", es)
	assert.Error(t, err, "unknown instrument")
}

func TestEffectiveArea2D(t *testing.T) {
	es := logEnergies(1e3*units.MeV, 1e6*units.MeV, 7)
	offs := []units.Angle{0, 1 * units.Degree, 2 * units.Degree}

	// Area falls linearly with offset at every energy.
	areas := make([]units.Area, len(es)*len(offs))
	for io := range offs {
		for ie := range es {
			areas[ie+io*len(es)] = units.Area(10 * (3 - float64(io)))
		}
	}
	a2 := NewEffectiveArea2D(es, offs, areas)

	assert.InEpsilon(t, 30.0,
		float64(a2.Evaluate(es[3], 0)), 1e-12, "on axis")
	assert.InEpsilon(t, 25.0,
		float64(a2.Evaluate(es[3], 0.5*units.Degree)), 1e-12,
		"between offset nodes")

	a1 := a2.At(1 * units.Degree)
	for _, e := range es {
		assert.InEpsilon(t, 20.0, float64(a1.Evaluate(e)), 1e-12,
			"sliced table")
	}
}

func TestNewEffectiveAreaPanics(t *testing.T) {
	es := []units.Energy{1, 10}
	assert.Panics(t, func() {
		NewEffectiveArea(es, []units.Area{1})
	}, "mismatched lengths")
	assert.Panics(t, func() {
		NewEffectiveArea([]units.Energy{-1, 10}, []units.Area{1, 1})
	}, "negative energy")
	assert.Panics(t, func() {
		NewEffectiveArea2D(es, []units.Angle{0, 1}, make([]units.Area, 3))
	}, "table size mismatch")
}

func TestReadEffectiveArea(t *testing.T) {
	text := `# E [MeV] A [cm^2]
1e3 1.0
1e4 2.0
1e5 4.0
`
	file := filepath.Join(t.TempDir(), "aeff.txt")
	err := os.WriteFile(file, []byte(text), 0666)
	assert.NoError(t, err, "write table")

	a, err := ReadEffectiveArea(file)
	assert.NoError(t, err, "read table")
	assert.InEpsilon(t, 2.0, float64(a.Evaluate(1e4*units.MeV)), 1e-12,
		"middle node")
	assert.Equal(t, 4.0, float64(a.MaxArea()), "max area")
}
