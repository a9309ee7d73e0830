// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements gas-phase material models: thermodynamic state,
// kinetics and transport roles consumed by the flow domain
package gas

import (
	"github.com/cpmech/gosl/chk"
)

// physical constants
const (
	// Rgas is the universal gas constant [J/(kmol·K)]
	Rgas = 8314.4621

	// OneAtm is one standard atmosphere [Pa]
	OneAtm = 101325.0

	// Tref is the reference temperature for formation enthalpies [K]
	Tref = 298.15
)

// Thermo defines the thermodynamic state role. Implementations hold a
// mutable (T, p, Y) state; all property getters refer to the current state.
type Thermo interface {

	// identification
	Name() string   // name of the phase
	Source() string // origin of the phase definition; e.g. input file path

	// species database
	NumSpecies() int              // number of species
	SpeciesName(k int) string     // name of k-th species
	SpeciesIndex(name string) int // index of named species; -1 if not present
	MolecularWeights() []float64  // [nsp] molecular weights [kg/kmol]
	MaxTemp() float64             // maximum valid temperature [K]

	// state setters
	SetTemperature(T float64)           // set temperature [K]
	SetPressure(p float64)              // set pressure [Pa]
	SetMassFractions(y []float64)       // set and normalize mass fractions
	SetMassFractionsNoNorm(y []float64) // set mass fractions without normalization

	// state getters
	Temperature() float64         // current temperature [K]
	Pressure() float64            // current pressure [Pa]
	MassFractions(y []float64)    // copy current mass fractions into y
	Density() float64             // mass density [kg/m³]
	MeanMolecularWeight() float64 // mean molecular weight [kg/kmol]
	CpMass() float64              // specific heat at constant pressure [J/(kg·K)]

	// PartialMolarEnthalpies fills hk [nsp] with species molar enthalpies [J/kmol]
	PartialMolarEnthalpies(hk []float64)
}

// Kinetics defines the kinetics role. NetProductionRates refers to the
// state currently held by the associated Thermo object.
type Kinetics interface {
	NetProductionRates(wdot []float64) // [nsp] net production rates [kmol/(m³·s)]
}

// Transport defines the transport-property role. All getters refer to the
// state currently held by the associated Thermo object.
type Transport interface {
	Model() string                  // capability string; e.g. "mixture-averaged", "multicomponent", "none"
	Viscosity() float64             // dynamic viscosity [Pa·s]
	ThermalConductivity() float64   // thermal conductivity [W/(m·K)]
	MixDiffCoeffs(d []float64)      // [nsp] mixture-averaged diffusion coefficients [m²/s]
	MultiDiffCoeffs(d [][]float64)  // [nsp][nsp] multicomponent diffusion coefficients [m²/s]
	ThermalDiffCoeffs(dt []float64) // [nsp] thermal diffusion coefficients [kg/(m·s)]
}

// Solution aggregates the three material-model roles with single ownership.
// Domains hold a borrowed reference to a Solution and never own the models.
type Solution struct {
	Name      string
	Thermo    Thermo
	Kinetics  Kinetics
	Transport Transport
}

// transport factory ////////////////////////////////////////////////////////

// tallocators maps transport model names to allocators
var tallocators = map[string]func(th Thermo) (Transport, error){}

// RegisterTransport adds a transport allocator to the factory
func RegisterTransport(model string, allocator func(th Thermo) (Transport, error)) {
	if _, ok := tallocators[model]; ok {
		chk.Panic("transport model %q registered twice", model)
	}
	tallocators[model] = allocator
}

// NewTransport returns a new transport object for the given model name,
// attached to the state held by th
func NewTransport(model string, th Thermo) (Transport, error) {
	if model == "none" || model == "" {
		return nil, chk.Err("cannot create transport object with model=%q", model)
	}
	allocator, ok := tallocators[model]
	if !ok {
		return nil, chk.Err("transport model %q is not available", model)
	}
	return allocator(th)
}

// SetTransportModel replaces the transport object held by this solution
func (o *Solution) SetTransportModel(model string) (err error) {
	tr, err := NewTransport(model, o.Thermo)
	if err != nil {
		return chk.Err("solution %q: cannot set transport model:\n%v", o.Name, err)
	}
	o.Transport = tr
	return
}
