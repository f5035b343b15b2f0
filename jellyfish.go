/*package jellyfish models the radial density structure of dark matter halos
and integrates that density along lines of sight. The squared-density
integral is the "J-factor" which sets the annihilation flux an instrument
sees from a given direction, and the plain density integral is the
"D-factor" of decay searches.

Quantities are typed through the units subpackage: lengths in kpc, densities
in GeV/cm^3, J-factors in GeV^2/cm^5.
*/
package jellyfish

import (
	"github.com/phil-mansfield/jellyfish/units"
)

// Profile is a spherically symmetric halo density profile.
//
// A Profile exposes its parameters through Params. Mutating a parameter
// value changes what Density returns on the next call. Concurrent reads are
// safe, mutating while other goroutines read is not. Constructors do not
// vet parameter values: nonsense like a negative scale radius flows through
// the math and surfaces as NaNs.
type Profile interface {
	// Density returns the density at radius r from the halo center.
	Density(r units.Length) units.Density
	// Params returns the profile's parameters in construction order.
	Params() *Params
}

var (
	_ Profile = &Zhao{}
	_ Profile = &NFW{}
	_ Profile = &Einasto{}
	_ Profile = &Isothermal{}
	_ Profile = &Burkert{}
	_ Profile = &Moore{}
)

// Reference ties profiles to an observer: how far the observer sits from
// the halo center and what the density is at that radius.
type Reference struct {
	LocalDensity units.Density
	DistanceGC   units.Length
}

// MilkyWay is the conventional solar neighborhood of Cirelli et al. (2011):
// 0.3 GeV/cm^3 at 8.33 kpc from the galactic center.
var MilkyWay = Reference{
	LocalDensity: 0.3 * units.GeVPerCm3,
	DistanceGC:   8.33 * units.Kiloparsec,
}

// ScaleToLocalDensity rescales the normalization of p so that its density
// at ref.DistanceGC comes out to ref.LocalDensity. The scale factor
// multiplies the profile's "rho_s" parameter in place, so scaling twice is
// the same as scaling once.
//
// The profile must be finite and nonzero at ref.DistanceGC.
func ScaleToLocalDensity(p Profile, ref Reference) {
	scale := float64(ref.LocalDensity) / float64(p.Density(ref.DistanceGC))
	p.Params().Get("rho_s").Value *= scale
}
