package jellyfish

import (
	"fmt"
)

// Param is a single named profile parameter. Value is always in the fixed
// unit named by Unit, so fitting code can treat parameter vectors as plain
// floats.
type Param struct {
	Name  string
	Value float64
	Unit  string
}

// Params is an ordered collection of the parameters of a profile. The order
// is the order the parameters were handed to NewParams, so printed tables
// and fitted vectors stay stable across calls.
type Params struct {
	ps []*Param
}

// NewParams collects parameters into a Params. Panics if two parameters
// share a name.
func NewParams(ps ...*Param) *Params {
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			if ps[i].Name == ps[j].Name {
				panic(fmt.Sprintf(
					"The parameter name '%s' appears more than once.",
					ps[i].Name,
				))
			}
		}
	}
	return &Params{ps}
}

// Get returns the parameter called name. Asking for a name the profile does
// not have is a programming error, so Get panics instead of returning an
// error.
func (p *Params) Get(name string) *Param {
	for _, param := range p.ps {
		if param.Name == name {
			return param
		}
	}
	panic(fmt.Sprintf("No parameter is named '%s'.", name))
}

// All returns the parameters in insertion order. The slice is the backing
// store of p, not a copy.
func (p *Params) All() []*Param {
	return p.ps
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.ps)
}
