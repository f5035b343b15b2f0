package jellyfish

import (
	"math"

	"github.com/phil-mansfield/jellyfish/units"
)

// Default scale radii are the Milky Way fits collected in Cirelli et al.
// (2011). New profiles are normalized to rho_s = 1 GeV/cm^3 and are usually
// rescaled afterwards with ScaleToLocalDensity.
const (
	DefaultZhaoScaleRadius       = 24.42 * units.Kiloparsec
	DefaultNFWScaleRadius        = 24.42 * units.Kiloparsec
	DefaultEinastoScaleRadius    = 28.44 * units.Kiloparsec
	DefaultIsothermalScaleRadius = 4.38 * units.Kiloparsec
	DefaultBurkertScaleRadius    = 12.67 * units.Kiloparsec
	DefaultMooreScaleRadius      = 30.28 * units.Kiloparsec

	DefaultRhoS = 1 * units.GeVPerCm3

	DefaultEinastoAlpha = 0.17
)

// Zhao is the double power law profile of Zhao (1996),
//
//	rho(r) = rho_s / ((r/r_s)^gamma * (1 + (r/r_s)^alpha)^((beta-gamma)/alpha))
//
// gamma sets the inner slope, beta the outer slope, and alpha how sharply
// one rolls over into the other. (alpha, beta, gamma) = (1, 3, 1) is NFW.
type Zhao struct {
	params                       *Params
	rs, rhoS, alpha, beta, gamma *Param
}

// NewZhao creates a Zhao profile with the given scale radius, normalization,
// and slopes.
func NewZhao(
	rs units.Length, rhoS units.Density, alpha, beta, gamma float64,
) *Zhao {
	z := &Zhao{
		rs:    &Param{"r_s", rs.Kiloparsecs(), "kpc"},
		rhoS:  &Param{"rho_s", float64(rhoS), "GeV / cm3"},
		alpha: &Param{"alpha", alpha, ""},
		beta:  &Param{"beta", beta, ""},
		gamma: &Param{"gamma", gamma, ""},
	}
	z.params = NewParams(z.rs, z.rhoS, z.alpha, z.beta, z.gamma)
	return z
}

// DefaultZhao returns a Zhao profile with the default scale radius and the
// (1, 3, 1) slopes of NFW.
func DefaultZhao() *Zhao {
	return NewZhao(DefaultZhaoScaleRadius, DefaultRhoS, 1, 3, 1)
}

// Density returns the density at radius r.
func (z *Zhao) Density(r units.Length) units.Density {
	rr := r.Kiloparsecs() / z.rs.Value
	slope := (z.beta.Value - z.gamma.Value) / z.alpha.Value
	return units.Density(z.rhoS.Value /
		(math.Pow(rr, z.gamma.Value) *
			math.Pow(1+math.Pow(rr, z.alpha.Value), slope)))
}

// Params returns the profile's parameters.
func (z *Zhao) Params() *Params { return z.params }

// NFW is the profile of Navarro, Frenk & White (1997),
//
//	rho(r) = rho_s / ((r/r_s) * (1 + r/r_s)^2)
type NFW struct {
	params   *Params
	rs, rhoS *Param
}

// NewNFW creates an NFW profile with the given scale radius and
// normalization.
func NewNFW(rs units.Length, rhoS units.Density) *NFW {
	nfw := &NFW{
		rs:   &Param{"r_s", rs.Kiloparsecs(), "kpc"},
		rhoS: &Param{"rho_s", float64(rhoS), "GeV / cm3"},
	}
	nfw.params = NewParams(nfw.rs, nfw.rhoS)
	return nfw
}

// DefaultNFW returns an NFW profile with the default scale radius.
func DefaultNFW() *NFW {
	return NewNFW(DefaultNFWScaleRadius, DefaultRhoS)
}

// Density returns the density at radius r.
func (nfw *NFW) Density(r units.Length) units.Density {
	rr := r.Kiloparsecs() / nfw.rs.Value
	return units.Density(nfw.rhoS.Value / (rr * (1 + rr) * (1 + rr)))
}

// Params returns the profile's parameters.
func (nfw *NFW) Params() *Params { return nfw.params }

// Einasto is the profile of Einasto (1965),
//
//	rho(r) = rho_s * exp(-(2/alpha) * ((r/r_s)^alpha - 1))
//
// Unlike the power law profiles its log slope rolls over smoothly, with
// alpha setting how quickly.
type Einasto struct {
	params          *Params
	rs, alpha, rhoS *Param
}

// NewEinasto creates an Einasto profile with the given scale radius, shape
// parameter, and normalization.
func NewEinasto(rs units.Length, alpha float64, rhoS units.Density) *Einasto {
	e := &Einasto{
		rs:    &Param{"r_s", rs.Kiloparsecs(), "kpc"},
		alpha: &Param{"alpha", alpha, ""},
		rhoS:  &Param{"rho_s", float64(rhoS), "GeV / cm3"},
	}
	e.params = NewParams(e.rs, e.alpha, e.rhoS)
	return e
}

// DefaultEinasto returns an Einasto profile with the default scale radius
// and shape.
func DefaultEinasto() *Einasto {
	return NewEinasto(DefaultEinastoScaleRadius, DefaultEinastoAlpha, DefaultRhoS)
}

// Density returns the density at radius r.
func (e *Einasto) Density(r units.Length) units.Density {
	rr := r.Kiloparsecs() / e.rs.Value
	a := e.alpha.Value
	return units.Density(e.rhoS.Value * math.Exp(-(2/a)*(math.Pow(rr, a)-1)))
}

// Params returns the profile's parameters.
func (e *Einasto) Params() *Params { return e.params }

// Isothermal is the cored isothermal sphere of Begeman et al. (1991),
//
//	rho(r) = rho_s / (1 + (r/r_s)^2)
type Isothermal struct {
	params   *Params
	rs, rhoS *Param
}

// NewIsothermal creates an isothermal profile with the given core radius
// and normalization.
func NewIsothermal(rs units.Length, rhoS units.Density) *Isothermal {
	iso := &Isothermal{
		rs:   &Param{"r_s", rs.Kiloparsecs(), "kpc"},
		rhoS: &Param{"rho_s", float64(rhoS), "GeV / cm3"},
	}
	iso.params = NewParams(iso.rs, iso.rhoS)
	return iso
}

// DefaultIsothermal returns an isothermal profile with the default core
// radius.
func DefaultIsothermal() *Isothermal {
	return NewIsothermal(DefaultIsothermalScaleRadius, DefaultRhoS)
}

// Density returns the density at radius r.
func (iso *Isothermal) Density(r units.Length) units.Density {
	rr := r.Kiloparsecs() / iso.rs.Value
	return units.Density(iso.rhoS.Value / (1 + rr*rr))
}

// Params returns the profile's parameters.
func (iso *Isothermal) Params() *Params { return iso.params }

// Burkert is the cored profile of Burkert (1995),
//
//	rho(r) = rho_s / ((1 + r/r_s) * (1 + (r/r_s)^2))
type Burkert struct {
	params   *Params
	rs, rhoS *Param
}

// NewBurkert creates a Burkert profile with the given core radius and
// normalization.
func NewBurkert(rs units.Length, rhoS units.Density) *Burkert {
	b := &Burkert{
		rs:   &Param{"r_s", rs.Kiloparsecs(), "kpc"},
		rhoS: &Param{"rho_s", float64(rhoS), "GeV / cm3"},
	}
	b.params = NewParams(b.rs, b.rhoS)
	return b
}

// DefaultBurkert returns a Burkert profile with the default core radius.
func DefaultBurkert() *Burkert {
	return NewBurkert(DefaultBurkertScaleRadius, DefaultRhoS)
}

// Density returns the density at radius r.
func (b *Burkert) Density(r units.Length) units.Density {
	rr := r.Kiloparsecs() / b.rs.Value
	return units.Density(b.rhoS.Value / ((1 + rr) * (1 + rr*rr)))
}

// Params returns the profile's parameters.
func (b *Burkert) Params() *Params { return b.params }

// Moore is the steep-cusped profile of Diemand et al. (2004),
//
//	rho(r) = rho_s * (r_s/r)^1.16 * (1 + r/r_s)^-1.84
type Moore struct {
	params   *Params
	rs, rhoS *Param
}

// NewMoore creates a Moore profile with the given scale radius and
// normalization.
func NewMoore(rs units.Length, rhoS units.Density) *Moore {
	m := &Moore{
		rs:   &Param{"r_s", rs.Kiloparsecs(), "kpc"},
		rhoS: &Param{"rho_s", float64(rhoS), "GeV / cm3"},
	}
	m.params = NewParams(m.rs, m.rhoS)
	return m
}

// DefaultMoore returns a Moore profile with the default scale radius.
func DefaultMoore() *Moore {
	return NewMoore(DefaultMooreScaleRadius, DefaultRhoS)
}

// Density returns the density at radius r.
func (m *Moore) Density(r units.Length) units.Density {
	rr := r.Kiloparsecs() / m.rs.Value
	return units.Density(m.rhoS.Value *
		math.Pow(rr, -1.16) * math.Pow(1+rr, -1.84))
}

// Params returns the profile's parameters.
func (m *Moore) Params() *Params { return m.params }
