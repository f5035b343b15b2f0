package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/jellyfish"
	"github.com/phil-mansfield/jellyfish/io"
	"github.com/phil-mansfield/jellyfish/math/quad"
	"github.com/phil-mansfield/jellyfish/units"
	"github.com/phil-mansfield/table"
)

func main() {
	// The main function manages input sanitization and calls the secondary
	// main functions for each mode.

	var (
		profile, jFactor string
		exampleConfig    string
	)
	vars := map[string]*string{
		"Profile":       &profile,
		"JFactor":       &jFactor,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&profile, "Profile", "",
		"Configuration file for [Profile] mode, which tabulates a density "+
			"profile over a radius range.",
	)
	flag.StringVar(
		&jFactor, "JFactor", "",
		"Configuration file for [JFactor] mode, which integrates a "+
			"profile's squared density along lines of sight.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Profile' and 'JFactor'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Profile":
		wrap := io.DefaultProfileWrapper()
		err := gcfg.ReadFileInto(wrap, profile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Profile

		if !con.ValidProfile() {
			log.Fatal("Invalid/non-existent 'Profile' value.")
		} else if !con.ValidRadiusRange() {
			log.Fatal("Invalid 'RMin'/'RMax' values.")
		} else if !con.ValidPointsPerDecade() {
			log.Fatal("Invalid 'PointsPerDecade' value.")
		}

		profileMain(con)

	case "JFactor":
		wrap := io.DefaultJFactorWrapper()
		err := gcfg.ReadFileInto(wrap, jFactor)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.JFactor

		if !con.ValidProfile() {
			log.Fatal("Invalid/non-existent 'Profile' value.")
		} else if !con.ValidSeparations() {
			log.Fatal(
				"You must set either 'Separation' or 'SeparationFile'.",
			)
		} else if !con.ValidRadiusRange() && !con.Differential {
			log.Fatal("Invalid 'RMin'/'RMax' values.")
		} else if !con.ValidNDecade() {
			log.Fatal("Invalid 'NDecade' value.")
		}

		jFactorMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Profile":
			fmt.Println(io.ExampleProfileFile)
		case "JFactor":
			fmt.Println(io.ExampleJFactorFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Profile' and 'JFactor'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive
// error if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but jellyfish only "+
				"accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// newProfile builds the profile a config file asks for. A zero scale radius
// or rho_s and NaN shape exponents take the profile's documented defaults;
// an explicit zero exponent is kept.
func newProfile(opt *io.ProfileOptions) jellyfish.Profile {
	rhoS := jellyfish.DefaultRhoS
	if opt.RhoS != 0 {
		rhoS = units.Density(opt.RhoS)
	}

	rs := func(def units.Length) units.Length {
		if opt.ScaleRadius != 0 {
			return units.Length(opt.ScaleRadius) * units.Kiloparsec
		}
		return def
	}

	var p jellyfish.Profile
	switch opt.Profile {
	case "Zhao":
		alpha, beta, gamma := opt.Alpha, opt.Beta, opt.Gamma
		if math.IsNaN(alpha) {
			alpha = 1
		}
		if math.IsNaN(beta) {
			beta = 3
		}
		if math.IsNaN(gamma) {
			gamma = 1
		}
		p = jellyfish.NewZhao(
			rs(jellyfish.DefaultZhaoScaleRadius), rhoS, alpha, beta, gamma,
		)
	case "NFW":
		p = jellyfish.NewNFW(rs(jellyfish.DefaultNFWScaleRadius), rhoS)
	case "Einasto":
		alpha := opt.Alpha
		if math.IsNaN(alpha) {
			alpha = jellyfish.DefaultEinastoAlpha
		}
		p = jellyfish.NewEinasto(
			rs(jellyfish.DefaultEinastoScaleRadius), alpha, rhoS,
		)
	case "Isothermal":
		p = jellyfish.NewIsothermal(
			rs(jellyfish.DefaultIsothermalScaleRadius), rhoS,
		)
	case "Burkert":
		p = jellyfish.NewBurkert(rs(jellyfish.DefaultBurkertScaleRadius), rhoS)
	case "Moore":
		p = jellyfish.NewMoore(rs(jellyfish.DefaultMooreScaleRadius), rhoS)
	default:
		panic("Impossible")
	}

	if opt.ScaleToLocal {
		jellyfish.ScaleToLocalDensity(p, jellyfish.MilkyWay)
	}
	return p
}

// outputFile opens the file a mode writes its table to, or returns stdout
// when the config left Output unset.
func outputFile(name string) *os.File {
	if name == "" {
		return os.Stdout
	}
	f, err := os.Create(name)
	if err != nil {
		log.Fatal(err.Error())
	}
	return f
}

// profileMain tabulates the configured profile over a log spaced radius
// grid.
func profileMain(con *io.ProfileConfig) {
	if quad.GridSize(con.RMin, con.RMax, con.PointsPerDecade) < 2 {
		log.Fatal(
			"The radius range is too narrow for the requested " +
				"'PointsPerDecade'.",
		)
	}

	p := newProfile(&con.ProfileOptions)
	rs := quad.LogGrid(con.RMin, con.RMax, con.PointsPerDecade)

	f := outputFile(con.Output)
	defer f.Close()

	fmt.Fprintf(f, "# %s profile\n", con.Profile)
	for _, param := range p.Params().All() {
		fmt.Fprintf(f, "# %s = %g %s\n", param.Name, param.Value, param.Unit)
	}
	fmt.Fprintf(f, "# r [kpc] rho [GeV/cm^3]\n")
	for _, r := range rs {
		rho := p.Density(units.Length(r) * units.Kiloparsec)
		fmt.Fprintf(f, "%.10g %.10g\n", r, float64(rho))
	}
}

// jFactorMain integrates the configured profile along the configured lines
// of sight.
func jFactorMain(con *io.JFactorConfig) {
	degs := con.Separation
	if con.SeparationFile != "" {
		cols, err := table.ReadTable(con.SeparationFile, []int{0}, nil)
		if err != nil {
			log.Fatal(err.Error())
		}
		degs = append(degs, cols[0]...)
	}

	seps := make([]units.Angle, len(degs))
	for i, deg := range degs {
		seps[i] = units.Angle(deg) * units.Degree
	}

	p := newProfile(&con.ProfileOptions)
	rmin := units.Length(con.RMin) * units.Kiloparsec
	rmax := units.Length(con.RMax) * units.Kiloparsec

	f := outputFile(con.Output)
	defer f.Close()

	fmt.Fprintf(f, "# %s profile\n", con.Profile)
	for _, param := range p.Params().All() {
		fmt.Fprintf(f, "# %s = %g %s\n", param.Name, param.Value, param.Unit)
	}

	switch {
	case con.Decay:
		fmt.Fprintf(f, "# psi [deg] D [GeV/cm^2]\n")
		for i, sep := range seps {
			d, err := jellyfish.DecayIntegral(
				p, jellyfish.MilkyWay, rmin, rmax, sep, con.NDecade,
			)
			if err != nil {
				log.Fatal(err.Error())
			}
			fmt.Fprintf(f, "%.10g %.10g\n", degs[i], float64(d))
		}
	case con.Differential:
		fmt.Fprintf(f, "# psi [deg] dJ/dOmega [GeV^2/cm^5/sr]\n")
		js, err := jellyfish.DifferentialJFactorAll(
			p, jellyfish.MilkyWay, seps, con.NDecade,
		)
		if err != nil {
			log.Fatal(err.Error())
		}
		for i, j := range js {
			fmt.Fprintf(f, "%.10g %.10g\n", degs[i], float64(j))
		}
	default:
		fmt.Fprintf(f, "# psi [deg] J [GeV^2/cm^5]\n")
		js, err := jellyfish.IntegralAll(
			p, jellyfish.MilkyWay, rmin, rmax, seps, con.NDecade,
		)
		if err != nil {
			log.Fatal(err.Error())
		}
		for i, j := range js {
			fmt.Fprintf(f, "%.10g %.10g\n", degs[i], float64(j))
		}
	}
}
