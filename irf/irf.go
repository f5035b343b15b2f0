/*package irf models instrument response tables, currently just effective
areas: the detector cross section a gamma-ray telescope presents to photons
of a given energy. EffectiveArea interpolates a tabulated area over energy
and EffectiveArea2D adds an offset axis for sources away from the pointing
direction.

The J-factor integrals in the parent package are purely astrophysical and do
not touch this package. Folding the two together into a flux prediction is
up to the caller.
*/
package irf

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/jellyfish/math/interpolate"
	"github.com/phil-mansfield/jellyfish/units"
)

// EffectiveArea is a table of effective area against photon energy. Areas
// are interpolated linearly in the log of the energy, which tracks the slow
// power law drifts of real instruments much better than interpolating in the
// energy itself.
type EffectiveArea struct {
	energies []units.Energy
	areas    []units.Area
	interp   *interpolate.Linear
}

// NewEffectiveArea creates an EffectiveArea from parallel node slices. The
// energies must be positive and strictly increasing.
//
// Panics if the slices have mismatched lengths, fewer than two nodes, or
// out of order energies.
func NewEffectiveArea(
	energies []units.Energy, areas []units.Area,
) *EffectiveArea {
	if len(energies) != len(areas) {
		panic(fmt.Sprintf("len(energies) = %d, but len(areas) = %d.",
			len(energies), len(areas)))
	}

	logEs := make([]float64, len(energies))
	vals := make([]float64, len(areas))
	for i := range energies {
		if energies[i] <= 0 {
			panic(fmt.Sprintf("Energy node %d is %g MeV.",
				i, float64(energies[i])))
		}
		logEs[i] = math.Log10(float64(energies[i]))
		vals[i] = float64(areas[i])
	}

	return &EffectiveArea{
		energies: energies,
		areas:    areas,
		interp:   interpolate.NewLinear(logEs, vals),
	}
}

// Energies returns the table's energy nodes. The slice is the backing store
// of the table, not a copy.
func (a *EffectiveArea) Energies() []units.Energy { return a.energies }

// Evaluate returns the effective area at energy e. Panics if e is outside
// the tabulated range.
func (a *EffectiveArea) Evaluate(e units.Energy) units.Area {
	return units.Area(a.interp.Eval(math.Log10(float64(e))))
}

// EvaluateAll evaluates the table at every energy in es. If an output slice
// is given, the results are written to it and it is returned as a
// convenience. Otherwise a new slice is allocated.
func (a *EffectiveArea) EvaluateAll(
	es []units.Energy, out ...[]units.Area,
) []units.Area {
	if len(out) == 0 {
		out = [][]units.Area{make([]units.Area, len(es))}
	}
	for i, e := range es {
		out[0][i] = a.Evaluate(e)
	}
	return out[0]
}

// MaxArea returns the largest tabulated area. NaN entries, which real
// response files use to mark unusable bins, are skipped.
func (a *EffectiveArea) MaxArea() units.Area {
	max := math.Inf(-1)
	for _, area := range a.areas {
		if v := float64(area); !math.IsNaN(v) && v > max {
			max = v
		}
	}
	return units.Area(max)
}

// FindEnergy returns the energy at which the table first climbs above area,
// interpolating linearly between the two straddling nodes. Instruments use
// this to turn an area threshold into an energy threshold. NaN entries
// never count as a crossing, and a crossing whose left neighbor is NaN
// returns the crossing node's energy without interpolating.
//
// Returns an error if no node exceeds area.
func (a *EffectiveArea) FindEnergy(area units.Area) (units.Energy, error) {
	for i, tab := range a.areas {
		if !(float64(tab) > float64(area)) {
			continue
		}
		if i == 0 || math.IsNaN(float64(a.areas[i-1])) {
			return a.energies[i], nil
		}
		e1, e2 := float64(a.energies[i-1]), float64(a.energies[i])
		a1, a2 := float64(a.areas[i-1]), float64(a.areas[i])
		frac := (float64(area) - a1) / (a2 - a1)
		return units.Energy(e1 + frac*(e2-e1)), nil
	}
	return 0, fmt.Errorf(
		"The table's maximum effective area is %g cm^2, which never "+
			"exceeds %g cm^2.", float64(a.MaxArea()), float64(area),
	)
}

// EffectiveArea2D is a table of effective area against photon energy and
// offset from the pointing direction. Lookups interpolate bilinearly, in log
// energy along the energy axis and linearly along the offset axis.
type EffectiveArea2D struct {
	energies []units.Energy
	offsets  []units.Angle
	interp   *interpolate.BiLinear
}

// NewEffectiveArea2D creates an EffectiveArea2D from its axis nodes and a
// flattened table with areas[ie + io*len(energies)] the area at energy node
// ie and offset node io.
//
// Panics if the table size does not match the axes or if either axis is out
// of order.
func NewEffectiveArea2D(
	energies []units.Energy, offsets []units.Angle, areas []units.Area,
) *EffectiveArea2D {
	if len(energies)*len(offsets) != len(areas) {
		panic(fmt.Sprintf(
			"len(areas) = %d, but len(energies) = %d and len(offsets) = %d.",
			len(areas), len(energies), len(offsets),
		))
	}

	logEs := make([]float64, len(energies))
	for i := range energies {
		if energies[i] <= 0 {
			panic(fmt.Sprintf("Energy node %d is %g MeV.",
				i, float64(energies[i])))
		}
		logEs[i] = math.Log10(float64(energies[i]))
	}
	offs := make([]float64, len(offsets))
	for i := range offsets {
		offs[i] = offsets[i].Radians()
	}
	vals := make([]float64, len(areas))
	for i := range areas {
		vals[i] = float64(areas[i])
	}

	return &EffectiveArea2D{
		energies: energies,
		offsets:  offsets,
		interp:   interpolate.NewBiLinear(logEs, offs, vals),
	}
}

// Evaluate returns the effective area at energy e and offset off. Panics if
// the point is outside the table.
func (a *EffectiveArea2D) Evaluate(
	e units.Energy, off units.Angle,
) units.Area {
	return units.Area(a.interp.Eval(math.Log10(float64(e)), off.Radians()))
}

// At slices the table at a fixed offset, returning the 1D effective area
// seen by a source there.
func (a *EffectiveArea2D) At(off units.Angle) *EffectiveArea {
	areas := make([]units.Area, len(a.energies))
	for i, e := range a.energies {
		areas[i] = a.Evaluate(e, off)
	}
	return NewEffectiveArea(a.energies, areas)
}
