/*package io contains the configuration files read by the jellyfish command
line tool. Each mode of the tool reads one gcfg file with a single section,
is validated by the Valid* methods on the corresponding config struct, and
has a printable example file.
*/
package io

import (
	"math"
)

const (
	ExampleProfileFile = `[Profile]

#######################
# Required Parameters #
#######################

# The density profile to tabulate. Must be one of:
# [ Zhao | NFW | Einasto | Isothermal | Burkert | Moore ]
Profile = NFW

# Radius range of the table in kpc.
RMin = 0.1
RMax = 100

#######################
# Optional Parameters #
#######################

# Number of table rows per decade of radius. Default is 20.
# PointsPerDecade = 20

# Scale radius in kpc. Each profile has a documented Milky Way default,
# which is used when this is unset.
# ScaleRadius = 24.42

# Characteristic density in GeV/cm^3. Default is 1.
# RhoS = 1

# Shape parameters. Alpha is read by the Zhao and Einasto profiles, Beta
# and Gamma by Zhao alone. Unset parameters take the profile's documented
# defaults, and any explicit value is kept, so Gamma = 0 gives a cored
# Zhao profile.
# Alpha = 1
# Beta = 3
# Gamma = 1

# Rescale the profile so its density 8.33 kpc from the center is the local
# dark matter density, 0.3 GeV/cm^3. Default is true.
# ScaleToLocal = true

# File the table is written to. Default is stdout.
# Output = profile.txt`

	ExampleJFactorFile = `[JFactor]

#######################
# Required Parameters #
#######################

# The density profile to integrate. Must be one of:
# [ Zhao | NFW | Einasto | Isothermal | Burkert | Moore ]
Profile = NFW

# Angular separations between the line of sight and the galactic center, in
# degrees. Either repeat Separation, or point SeparationFile at a text file
# whose first column holds the separations.
Separation = 0.5
Separation = 1.0
Separation = 5.0
# SeparationFile = separations.txt

#######################
# Optional Parameters #
#######################

# Radius range of the integral in kpc. When Differential is set these are
# ignored: each sightline then runs from its own tangent radius out to the
# galactic center distance. Defaults are 0.1 and 100.
# RMin = 0.1
# RMax = 100

# Integration grid nodes per decade of radius. Default is 10000.
# NDecade = 10000

# Compute the per steradian J-factor with per sightline bounds instead of
# integrating over a fixed radius range. Default is false.
# Differential = false

# Integrate the density instead of its square, which gives the D-factor of
# decay searches in GeV/cm^2. Default is false.
# Decay = false

# Same profile knobs as in [Profile] mode:
# ScaleRadius = 24.42
# RhoS = 1
# Alpha = 1
# Beta = 3
# Gamma = 1
# ScaleToLocal = true

# File the table is written to. Default is stdout.
# Output = jfactor.txt`
)

// ProfileOptions are the profile construction knobs shared by every mode.
// A zero ScaleRadius or RhoS means "use the profile's documented default".
// The shape exponents instead use NaN for "unset", which the Default*Wrapper
// constructors install, since zero is a meaningful exponent.
type ProfileOptions struct {
	Profile      string
	ScaleRadius  float64
	RhoS         float64
	Alpha        float64
	Beta         float64
	Gamma        float64
	ScaleToLocal bool
}

func (opt *ProfileOptions) ValidProfile() bool {
	switch opt.Profile {
	case "Zhao", "NFW", "Einasto", "Isothermal", "Burkert", "Moore":
		return true
	}
	return false
}

// ProfileConfig configures [Profile] mode, which tabulates a density
// profile over a log spaced radius grid.
type ProfileConfig struct {
	ProfileOptions
	// Required
	RMin, RMax float64
	// Optional
	PointsPerDecade int
	Output          string
}

func (con *ProfileConfig) ValidRadiusRange() bool {
	return con.RMin > 0 && con.RMax > con.RMin
}
func (con *ProfileConfig) ValidPointsPerDecade() bool {
	return con.PointsPerDecade > 0
}

// ProfileWrapper is the struct gcfg reads a [Profile] file into.
type ProfileWrapper struct {
	Profile ProfileConfig
}

// DefaultProfileWrapper returns a ProfileWrapper with every optional
// parameter set to its default.
func DefaultProfileWrapper() *ProfileWrapper {
	con := ProfileConfig{}
	con.PointsPerDecade = 20
	con.RhoS = 1
	con.Alpha, con.Beta, con.Gamma = math.NaN(), math.NaN(), math.NaN()
	con.ScaleToLocal = true
	return &ProfileWrapper{con}
}

// JFactorConfig configures [JFactor] mode, which integrates a profile's
// squared density along lines of sight.
type JFactorConfig struct {
	ProfileOptions
	// Required (one of the two)
	Separation     []float64
	SeparationFile string
	// Optional
	RMin, RMax   float64
	NDecade      int
	Differential bool
	Decay        bool
	Output       string
}

func (con *JFactorConfig) ValidSeparations() bool {
	return len(con.Separation) > 0 || con.SeparationFile != ""
}
func (con *JFactorConfig) ValidRadiusRange() bool {
	return con.RMin > 0 && con.RMax > con.RMin
}
func (con *JFactorConfig) ValidNDecade() bool {
	return con.NDecade > 0
}

// JFactorWrapper is the struct gcfg reads a [JFactor] file into.
type JFactorWrapper struct {
	JFactor JFactorConfig
}

// DefaultJFactorWrapper returns a JFactorWrapper with every optional
// parameter set to its default.
func DefaultJFactorWrapper() *JFactorWrapper {
	con := JFactorConfig{}
	con.RMin, con.RMax = 0.1, 100
	con.NDecade = 10000
	con.RhoS = 1
	con.Alpha, con.Beta, con.Gamma = math.NaN(), math.NaN(), math.NaN()
	con.ScaleToLocal = true
	return &JFactorWrapper{con}
}
