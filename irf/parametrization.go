package irf

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/jellyfish/units"
)

// Instrument names a Cherenkov telescope with a published effective area
// parametrization.
type Instrument string

const (
	HESS  Instrument = "HESS"
	HESS2 Instrument = "HESS2"
	CTA   Instrument = "CTA"
)

// Effective area fits from Appendix B of Abramowski et al. (2010),
//
//	A(E) = g1 * (E / MeV)^-g2 * exp(-g3 / (E / MeV))
//
// with g1 in cm^2 and g3 in MeV.
var instrumentPars = map[Instrument][3]float64{
	HESS:  {6.85e9, 0.0891, 5e5},
	HESS2: {2.05e9, 0.0891, 1e5},
	CTA:   {1.71e11, 0.0891, 1e5},
}

// Parametrization tabulates the published effective area fit for instrument
// at the given energy nodes.
//
// Returns an error for an instrument with no published fit.
func Parametrization(
	instrument Instrument, energies []units.Energy,
) (*EffectiveArea, error) {
	pars, ok := instrumentPars[instrument]
	if !ok {
		return nil, fmt.Errorf(
			"Unknown instrument '%s'. The known instruments are "+
				"HESS, HESS2, and CTA.", instrument,
		)
	}
	g1, g2, g3 := pars[0], pars[1], pars[2]

	areas := make([]units.Area, len(energies))
	for i, e := range energies {
		x := float64(e) // canonically MeV
		areas[i] = units.Area(g1 * math.Pow(x, -g2) * math.Exp(-g3/x))
	}
	return NewEffectiveArea(energies, areas), nil
}
