// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Species holds the database entry of one species in a Mixture
type Species struct {
	Name string  `json:"name"` // species name; e.g. "CH4", "O2", "CO2", "H2O", "N2"
	Molw float64 `json:"molw"` // molecular weight [kg/kmol]
	Cp   float64 `json:"cp"`   // constant molar specific heat [J/(kmol·K)]
	H0   float64 `json:"h0"`   // molar formation enthalpy at Tref [J/kmol]
	D0   float64 `json:"d0"`   // reference diffusion coefficient at (Tref0, OneAtm) [m²/s]
	Dt0  float64 `json:"dt0"`  // constant thermal diffusion coefficient [kg/(m·s)]
}

// Reaction holds a single irreversible Arrhenius reaction
//
//   rate = A · T^b · exp(-Ea/(Rgas·T)) · Π conc[reactant]^|nu|
//
// with nu negative for reactants and positive for products.
type Reaction struct {
	Nu []float64 `json:"nu"` // [nsp] stoichiometric coefficients
	A  float64   `json:"a"`  // pre-exponential factor
	B  float64   `json:"b"`  // temperature exponent
	Ea float64   `json:"ea"` // activation energy [J/kmol]
}

// Mixture implements the Thermo and Kinetics roles for an ideal-gas mixture
// of constant-cp species, with an optional one-step reaction. It also serves
// as the property source for the transport objects in this package.
type Mixture struct {

	// database
	PhaseName string    // name of the phase
	From      string    // source of the phase definition
	Species   []Species // species database
	Reac      *Reaction // optional one-step reaction
	Tmax      float64   // maximum valid temperature [K]

	// transport reference data
	Mu0   float64 // reference viscosity at Tref0 [Pa·s]
	Lam0  float64 // reference thermal conductivity at Tref0 [W/(m·K)]
	Tref0 float64 // reference temperature for transport [K]

	// current state
	tt float64   // temperature [K]
	pp float64   // pressure [Pa]
	yy []float64 // mass fractions

	// derived
	wt  []float64      // molecular weights
	idx map[string]int // name => species index
}

// NewMixture returns a new mixture with state T=Tref, p=OneAtm and the first
// species holding all the mass
func NewMixture(name string, species []Species) (o *Mixture) {
	if len(species) < 1 {
		chk.Panic("mixture %q needs at least one species", name)
	}
	o = new(Mixture)
	o.PhaseName = name
	o.From = "<in-memory>"
	o.Species = species
	o.Tmax = 5000.0
	o.Mu0 = 1.8e-5
	o.Lam0 = 0.026
	o.Tref0 = 300.0
	o.tt = Tref
	o.pp = OneAtm
	o.yy = make([]float64, len(species))
	o.yy[0] = 1.0
	o.wt = make([]float64, len(species))
	o.idx = make(map[string]int)
	for k, sp := range species {
		if sp.Molw <= 0 {
			chk.Panic("species %q has invalid molecular weight %g", sp.Name, sp.Molw)
		}
		o.wt[k] = sp.Molw
		o.idx[sp.Name] = k
	}
	return
}

// Thermo role //////////////////////////////////////////////////////////////

// Name returns the name of the phase
func (o *Mixture) Name() string { return o.PhaseName }

// Source returns the origin of the phase definition
func (o *Mixture) Source() string { return o.From }

// NumSpecies returns the number of species
func (o *Mixture) NumSpecies() int { return len(o.Species) }

// SpeciesName returns the name of the k-th species
func (o *Mixture) SpeciesName(k int) string { return o.Species[k].Name }

// SpeciesIndex returns the index of the named species or -1 if not present
func (o *Mixture) SpeciesIndex(name string) int {
	if k, ok := o.idx[name]; ok {
		return k
	}
	return -1
}

// MolecularWeights returns the molecular weights [kg/kmol]
func (o *Mixture) MolecularWeights() []float64 { return o.wt }

// MaxTemp returns the maximum valid temperature
func (o *Mixture) MaxTemp() float64 { return o.Tmax }

// SetTemperature sets the temperature
func (o *Mixture) SetTemperature(T float64) { o.tt = T }

// SetPressure sets the pressure
func (o *Mixture) SetPressure(p float64) { o.pp = p }

// SetMassFractions sets mass fractions, clipping negatives and normalizing
func (o *Mixture) SetMassFractions(y []float64) {
	sum := 0.0
	for k := range o.yy {
		o.yy[k] = math.Max(y[k], 0.0)
		sum += o.yy[k]
	}
	if sum > 0 {
		for k := range o.yy {
			o.yy[k] /= sum
		}
	}
}

// SetMassFractionsNoNorm sets mass fractions without normalization
func (o *Mixture) SetMassFractionsNoNorm(y []float64) {
	copy(o.yy, y)
}

// Temperature returns the current temperature
func (o *Mixture) Temperature() float64 { return o.tt }

// Pressure returns the current pressure
func (o *Mixture) Pressure() float64 { return o.pp }

// MassFractions copies the current mass fractions into y
func (o *Mixture) MassFractions(y []float64) { copy(y, o.yy) }

// MeanMolecularWeight returns the mean molecular weight [kg/kmol]
func (o *Mixture) MeanMolecularWeight() float64 {
	sum := 0.0
	for k, y := range o.yy {
		sum += y / o.wt[k]
	}
	if sum == 0 {
		return o.wt[0]
	}
	return 1.0 / sum
}

// Density returns the ideal-gas mass density [kg/m³]
func (o *Mixture) Density() float64 {
	return o.pp * o.MeanMolecularWeight() / (Rgas * o.tt)
}

// CpMass returns the frozen specific heat [J/(kg·K)]
func (o *Mixture) CpMass() float64 {
	sum := 0.0
	for k, y := range o.yy {
		sum += y * o.Species[k].Cp / o.wt[k]
	}
	return sum
}

// PartialMolarEnthalpies fills hk with molar enthalpies [J/kmol]
func (o *Mixture) PartialMolarEnthalpies(hk []float64) {
	for k, sp := range o.Species {
		hk[k] = sp.H0 + sp.Cp*(o.tt-Tref)
	}
}

// Kinetics role ////////////////////////////////////////////////////////////

// NetProductionRates fills wdot with net production rates [kmol/(m³·s)].
// Rates are zero when no reaction is defined.
func (o *Mixture) NetProductionRates(wdot []float64) {
	for k := range wdot {
		wdot[k] = 0.0
	}
	if o.Reac == nil {
		return
	}
	rho := o.Density()
	rate := o.Reac.A * math.Pow(o.tt, o.Reac.B) * math.Exp(-o.Reac.Ea/(Rgas*o.tt))
	for k, nu := range o.Reac.Nu {
		if nu < 0 {
			conc := rho * o.yy[k] / o.wt[k] // molar concentration [kmol/m³]
			if conc <= 0 {
				return // no fuel or oxidizer left
			}
			rate *= math.Pow(conc, -nu)
		}
	}
	for k, nu := range o.Reac.Nu {
		wdot[k] = nu * rate
	}
}

// transport objects ////////////////////////////////////////////////////////

// MixAvgTransport implements mixture-averaged transport for a Mixture
type MixAvgTransport struct {
	mix *Mixture
}

// MultiTransport implements multicomponent transport for a Mixture, with
// binary diffusion coefficients from the geometric mean of reference values
type MultiTransport struct {
	mix *Mixture
}

// register allocators
func init() {
	RegisterTransport("mixture-averaged", func(th Thermo) (Transport, error) {
		mix, ok := th.(*Mixture)
		if !ok {
			return nil, chk.Err("mixture-averaged transport requires a gas.Mixture thermo object")
		}
		return &MixAvgTransport{mix}, nil
	})
	RegisterTransport("multicomponent", func(th Thermo) (Transport, error) {
		mix, ok := th.(*Mixture)
		if !ok {
			return nil, chk.Err("multicomponent transport requires a gas.Mixture thermo object")
		}
		return &MultiTransport{mix}, nil
	})
}

// Model returns the capability string
func (o *MixAvgTransport) Model() string { return "mixture-averaged" }

// Viscosity returns the power-law dynamic viscosity
func (o *MixAvgTransport) Viscosity() float64 {
	return o.mix.Mu0 * math.Pow(o.mix.tt/o.mix.Tref0, 0.7)
}

// ThermalConductivity returns the power-law thermal conductivity
func (o *MixAvgTransport) ThermalConductivity() float64 {
	return o.mix.Lam0 * math.Pow(o.mix.tt/o.mix.Tref0, 0.7)
}

// MixDiffCoeffs fills d with mixture-averaged diffusion coefficients
func (o *MixAvgTransport) MixDiffCoeffs(d []float64) {
	f := math.Pow(o.mix.tt/o.mix.Tref0, 1.7) * OneAtm / o.mix.pp
	for k, sp := range o.mix.Species {
		d[k] = sp.D0 * f
	}
}

// MultiDiffCoeffs is not provided by mixture-averaged transport
func (o *MixAvgTransport) MultiDiffCoeffs(d [][]float64) {
	chk.Panic("mixture-averaged transport cannot compute multicomponent diffusion coefficients")
}

// ThermalDiffCoeffs is not provided by mixture-averaged transport
func (o *MixAvgTransport) ThermalDiffCoeffs(dt []float64) {
	chk.Panic("mixture-averaged transport cannot compute thermal diffusion coefficients")
}

// Model returns the capability string
func (o *MultiTransport) Model() string { return "multicomponent" }

// Viscosity returns the power-law dynamic viscosity
func (o *MultiTransport) Viscosity() float64 {
	return o.mix.Mu0 * math.Pow(o.mix.tt/o.mix.Tref0, 0.7)
}

// ThermalConductivity returns the power-law thermal conductivity
func (o *MultiTransport) ThermalConductivity() float64 {
	return o.mix.Lam0 * math.Pow(o.mix.tt/o.mix.Tref0, 0.7)
}

// MixDiffCoeffs fills d with mixture-averaged diffusion coefficients
func (o *MultiTransport) MixDiffCoeffs(d []float64) {
	f := math.Pow(o.mix.tt/o.mix.Tref0, 1.7) * OneAtm / o.mix.pp
	for k, sp := range o.mix.Species {
		d[k] = sp.D0 * f
	}
}

// MultiDiffCoeffs fills d [nsp][nsp] with binary diffusion coefficients
func (o *MultiTransport) MultiDiffCoeffs(d [][]float64) {
	nsp := o.mix.NumSpecies()
	f := math.Pow(o.mix.tt/o.mix.Tref0, 1.7) * OneAtm / o.mix.pp
	for k := 0; k < nsp; k++ {
		for m := 0; m < nsp; m++ {
			if k == m {
				d[k][m] = 0.0
				continue
			}
			d[k][m] = math.Sqrt(o.mix.Species[k].D0*o.mix.Species[m].D0) * f
		}
	}
}

// ThermalDiffCoeffs fills dt with the constant thermal diffusion coefficients
func (o *MultiTransport) ThermalDiffCoeffs(dt []float64) {
	for k, sp := range o.mix.Species {
		dt[k] = sp.Dt0
	}
}
