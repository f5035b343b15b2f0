package io

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

func TestExampleProfileFileParses(t *testing.T) {
	wrap := DefaultProfileWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleProfileFile)
	assert.NoError(t, err, "example file")

	con := &wrap.Profile
	assert.Equal(t, "NFW", con.Profile, "profile name")
	assert.True(t, con.ValidProfile(), "profile valid")
	assert.Equal(t, 0.1, con.RMin, "rmin")
	assert.Equal(t, 100.0, con.RMax, "rmax")
	assert.True(t, con.ValidRadiusRange(), "radius range valid")
	assert.Equal(t, 20, con.PointsPerDecade, "default points per decade")
	assert.True(t, con.ScaleToLocal, "default scaling")
	assert.True(t, math.IsNaN(con.Alpha), "alpha unset")
	assert.True(t, math.IsNaN(con.Beta), "beta unset")
	assert.True(t, math.IsNaN(con.Gamma), "gamma unset")
}

func TestExampleJFactorFileParses(t *testing.T) {
	wrap := DefaultJFactorWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleJFactorFile)
	assert.NoError(t, err, "example file")

	con := &wrap.JFactor
	assert.Equal(t, []float64{0.5, 1.0, 5.0}, con.Separation, "separations")
	assert.True(t, con.ValidSeparations(), "separations valid")
	assert.Equal(t, 10000, con.NDecade, "default ndecade")
	assert.False(t, con.Differential, "default differential")
	assert.False(t, con.Decay, "default decay")
}

func TestConfigValidation(t *testing.T) {
	wrap := DefaultJFactorWrapper()
	err := gcfg.ReadStringInto(wrap, `[JFactor]
Profile = Hernquist
RMin = 10
RMax = 1`)
	assert.NoError(t, err, "file parses")

	con := &wrap.JFactor
	assert.False(t, con.ValidProfile(), "unknown profile")
	assert.False(t, con.ValidRadiusRange(), "reversed radius range")
	assert.False(t, con.ValidSeparations(), "no separations")
}

func TestProfileOptionOverrides(t *testing.T) {
	wrap := DefaultProfileWrapper()
	err := gcfg.ReadStringInto(wrap, `[Profile]
Profile = Zhao
RMin = 1
RMax = 10
ScaleRadius = 20
Alpha = 1.5
Beta = 4
Gamma = 0
ScaleToLocal = false`)
	assert.NoError(t, err, "file parses")

	con := &wrap.Profile
	assert.Equal(t, 20.0, con.ScaleRadius, "scale radius")
	assert.Equal(t, 1.5, con.Alpha, "alpha")
	assert.Equal(t, 4.0, con.Beta, "beta")
	assert.Equal(t, 0.0, con.Gamma, "explicit zero gamma")
	assert.False(t, con.ScaleToLocal, "scaling off")
}
