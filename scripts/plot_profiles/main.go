package main

import (
	"log"
	"os"

	"github.com/phil-mansfield/jellyfish"
	"github.com/phil-mansfield/jellyfish/math/quad"
	"github.com/phil-mansfield/jellyfish/units"

	plt "github.com/phil-mansfield/pyplot"
)

const (
	rMin, rMax      = 0.1, 200 // kpc
	pointsPerDecade = 50
)

var colors = []string{
	"DarkSlateBlue", "DarkSlateGray", "DarkTurquoise",
	"DarkViolet", "DeepPink", "DimGray",
}

func main() {
	if len(os.Args) > 2 {
		log.Fatalf("Usage: $ %s [plot_file]", os.Args[0])
	}

	names := []string{
		"Zhao", "NFW", "Einasto", "Isothermal", "Burkert", "Moore",
	}
	_ = names
	profiles := []jellyfish.Profile{
		jellyfish.DefaultZhao(), jellyfish.DefaultNFW(),
		jellyfish.DefaultEinasto(), jellyfish.DefaultIsothermal(),
		jellyfish.DefaultBurkert(), jellyfish.DefaultMoore(),
	}

	rs := quad.LogGrid(rMin, rMax, pointsPerDecade)

	plt.Reset()
	plt.Figure()

	for i, p := range profiles {
		jellyfish.ScaleToLocalDensity(p, jellyfish.MilkyWay)

		rhos := make([]float64, len(rs))
		for j, r := range rs {
			rhos[j] = float64(p.Density(units.Length(r) * units.Kiloparsec))
		}

		plt.Plot(rs, rhos, plt.LW(3), plt.C(colors[i]))
	}

	plt.XLabel(`$r$ $[{\rm kpc}]$`, plt.FontSize(16))
	plt.YLabel(`$\rho$ $[{\rm GeV}/{\rm cm}^3]$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))

	if len(os.Args) == 2 {
		plt.SaveFig(os.Args[1])
		plt.Execute()
	} else {
		plt.Show()
	}
}
