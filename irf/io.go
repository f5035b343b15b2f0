package irf

import (
	"github.com/phil-mansfield/jellyfish/units"
	"github.com/phil-mansfield/table"
)

// ReadEffectiveArea reads an effective area table from a whitespace
// separated text file whose first column is energy in MeV and whose second
// is area in cm^2. Lines starting with # are comments.
func ReadEffectiveArea(file string) (*EffectiveArea, error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}

	es, as := cols[0], cols[1]
	energies := make([]units.Energy, len(es))
	areas := make([]units.Area, len(as))
	for i := range es {
		energies[i] = units.Energy(es[i])
		areas[i] = units.Area(as[i])
	}
	return NewEffectiveArea(energies, areas), nil
}
