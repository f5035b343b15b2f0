/*package units provides typed physical quantities for the unit families that
show up in halo density work. It follows the pattern of time.Duration: each
quantity is a float64 in a fixed canonical unit, the units themselves are
declared as constants, and conversions are multiplications and divisions by
those constants.

	r := 8.33 * units.Kiloparsec
	cm := r / units.Centimeter
*/
package units

import "math"

// Length is a distance. The canonical unit is the kiloparsec.
type Length float64

const (
	Kiloparsec Length = 1
	Parsec            = Kiloparsec / 1000
	Megaparsec        = 1000 * Kiloparsec
	Centimeter        = Kiloparsec / CentimetersPerKiloparsec
)

// CentimetersPerKiloparsec is the IAU 2015 value.
const CentimetersPerKiloparsec = 3.0856775814913673e21

// Kiloparsecs returns the length as a count of kiloparsecs.
func (l Length) Kiloparsecs() float64 { return float64(l) }

// Centimeters returns the length as a count of centimeters.
func (l Length) Centimeters() float64 { return float64(l) * CentimetersPerKiloparsec }

// Angle is a planar angle. The canonical unit is the radian.
type Angle float64

const (
	Radian Angle = 1
	Degree        = Radian * (math.Pi / 180)
	Arcminute     = Degree / 60
)

// Radians returns the angle as a count of radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle as a count of degrees.
func (a Angle) Degrees() float64 { return float64(a / Degree) }

// Density is an energy density. The canonical unit is GeV/cm^3, the
// conventional unit of dark matter densities in indirect detection work.
type Density float64

const GeVPerCm3 Density = 1

// Energy is a particle energy. The canonical unit is the MeV.
type Energy float64

const (
	MeV Energy = 1
	GeV        = 1000 * MeV
	TeV        = 1000 * GeV
)

// Area is a cross-sectional area. The canonical unit is cm^2.
type Area float64

const (
	SquareCentimeter Area = 1
	SquareMeter           = 1e4 * SquareCentimeter
)

// JFactor is a line of sight integral of squared density, the quantity that
// sets annihilation fluxes. The canonical unit is GeV^2/cm^5.
type JFactor float64

const GeV2PerCm5 JFactor = 1

// DFactor is a line of sight integral of density, the quantity that sets
// decay fluxes. The canonical unit is GeV/cm^2.
type DFactor float64

const GeVPerCm2 DFactor = 1
