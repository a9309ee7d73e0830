// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/goflame/mdl/gas"
)

// Flow is one spatial sub-region (the 1D flow region) contributing a block of
// equations and unknowns to a larger coupled boundary-value problem. It
// discretizes the continuity, radial-momentum, energy, species and auxiliary
// equations on its grid and assembles their residuals on demand.
//
// The external solver owns the flat global unknown vector; this domain reads
// and writes only within the slice starting at Loc, holding Nv components at
// each of its Np grid points.
type Flow struct {

	// configuration (fixed at construction)
	ID         string        // identity of this domain within the coupled problem
	Kind       string        // topology: Axisymmetric, FreeFlow or Unstrained
	UsesLambda bool          // topology solves V and Λ
	IsFree     bool          // topology anchors the solution at a fixed point
	Sol        *gas.Solution // borrowed material models; owned by the caller

	// dimensions
	Nsp int // number of species
	Nv  int // number of components per point
	Np  int // number of grid points

	// position of this domain within the global vector
	Loc   int // offset of this domain's slice
	First int // global index of the first grid point
	Last  int // global index of the last grid point

	// operating conditions
	Press  float64 // operating pressure [Pa]
	Dovisc bool    // include viscous terms (Λ-topologies only)

	// grid
	Z  []float64 // [Np] grid point positions, strictly increasing
	Dz []float64 // [Np-1] spacings

	// equation toggles and submodel flags
	DoEnergy    []bool // [Np] energy equation active per point
	DoSpecies   []bool // [Nsp] species equation toggles (snapshot bookkeeping)
	DoSoret     bool   // include thermal diffusion; requires multicomponent
	DoRadiation bool   // include optically-thin radiative loss
	Multi       bool   // multicomponent transport active
	ForceFull   bool   // force full property update during windowed evaluations

	// radiation
	EpsLeft  float64 // emissivity of the left boundary
	EpsRight float64 // emissivity of the right boundary

	// free-flame anchor
	ZFixed float64 // fixed location; Undef when unset
	TFixed float64 // fixed temperature; Undef when unset

	// FixedFactor scales the reference density in the anchoring residual when
	// the energy equation is off at the fixed point. The value 0.3 is carried
	// over from the original formulation; its origin is unclear.
	FixedFactor float64

	// external fixed-temperature profile, over z normalized to [0,1]
	zfix, tfix []float64
	fixedtemp  []float64 // [Np] temperatures used when the energy equation is off

	// solution bounds per component
	Lower, Upper []float64

	// refinement coupling
	RefineActive []bool         // [Nv] components considered by the external refiner
	Refine       RefineCriteria // criteria tracked for the refiner

	// borrowed material-model roles
	thermo gas.Thermo
	kin    gas.Kinetics
	trans  gas.Transport

	// property caches; transient, rebuilt on every evaluation
	wt        []float64     // [Nsp] molecular weights
	rho       []float64     // [Np] density
	wtm       []float64     // [Np] mean molecular weight
	cp        []float64     // [Np] specific heat
	visc      []float64     // [Np-1] midpoint viscosity
	tcon      []float64     // [Np-1] midpoint thermal conductivity
	diff      []float64     // [Nsp·Np] mixture diffusion data (or multicomponent factors)
	multidiff [][][]float64 // [Np-1][Nsp][Nsp] multicomponent diffusion matrices
	dthermal  [][]float64   // [Np][Nsp] thermal diffusion coefficients
	flux      [][]float64   // [Np][Nsp] diffusive mass fluxes at midpoints
	wdot      [][]float64   // [Np][Nsp] net production rates
	hk        [][]float64   // [Np][Nsp] species molar enthalpies
	dhkdz     [][]float64   // [Np-1][Nsp] upwinded enthalpy gradients
	ybar      []float64     // [Nsp] midpoint mass fractions scratch
	qdotRad   []float64     // [Np] radiative heat loss

	kRad         [2]int // indices of CO2 and H2O; -1 when absent
	kExcessLeft  int    // species pinned by the sum-to-one constraint on the left
	kExcessRight int    // likewise on the right

	// pseudo-transient storage
	slast []float64 // [Nv·Np] previous solution
}

// New returns a new flow domain of the given topology attached to the
// material models aggregated in sol. The grid starts as npoints equally
// spaced points on [0,1]; use SetGrid to replace it.
func New(sol *gas.Solution, id, kind string, npoints int) (o *Flow, err error) {

	// check topology and transport capability
	switch kind {
	case Axisymmetric, FreeFlow, Unstrained:
	default:
		return nil, errConf(id, "unknown flow topology %q", kind)
	}
	if sol.Transport == nil || sol.Transport.Model() == "none" {
		return nil, errConf(id, "an appropriate transport model must be set when instantiating the gas solution")
	}

	// basic data
	o = new(Flow)
	o.ID = id
	o.Kind = kind
	o.UsesLambda = kind == Axisymmetric
	o.IsFree = kind == FreeFlow
	o.Dovisc = o.UsesLambda
	o.Sol = sol
	o.thermo = sol.Thermo
	o.kin = sol.Kinetics

	o.Nsp = o.thermo.NumSpecies()
	o.Nv = CompY + o.Nsp
	o.wt = make([]float64, o.Nsp)
	copy(o.wt, o.thermo.MolecularWeights())
	o.Press = o.thermo.Pressure()

	// equation toggles: all species on, energy off everywhere
	o.DoSpecies = make([]bool, o.Nsp)
	for k := range o.DoSpecies {
		o.DoSpecies[k] = true
	}

	// anchor and submodel defaults
	o.ZFixed, o.TFixed = Undef, Undef
	o.FixedFactor = 0.3
	o.EpsLeft, o.EpsRight = 0.0, 0.0
	o.Refine = DefaultRefineCriteria()

	// solution bounds
	o.Lower = make([]float64, o.Nv)
	o.Upper = make([]float64, o.Nv)
	o.SetBounds(CompU, -1e20, 1e20)
	o.SetBounds(CompV, -1e20, 1e20)
	o.SetBounds(CompT, 200.0, 2.0*o.thermo.MaxTemp())
	o.SetBounds(CompL, -1e20, 1e20)
	o.SetBounds(CompE, -1e20, 1e20)
	for k := 0; k < o.Nsp; k++ {
		o.SetBounds(CompY+k, -1.0e-7, 1.0e5)
	}

	// refinement: velocity, spread rate, T and Λ start inactive
	o.RefineActive = make([]bool, o.Nv)
	for n := CompY; n < o.Nv; n++ {
		o.RefineActive[n] = true
	}

	// transport
	err = o.SetTransport(sol.Transport)
	if err != nil {
		return nil, err
	}

	// default grid
	err = o.SetGrid(utl.LinSpace(0, 1, npoints))
	if err != nil {
		return nil, err
	}

	// radiating species
	o.kRad[0] = o.thermo.SpeciesIndex("CO2")
	o.kRad[1] = o.thermo.SpeciesIndex("H2O")
	return
}

// SetTransport replaces the transport model. The multicomponent flag is
// re-derived from the model's capability string and the diffusion storage is
// resized accordingly.
func (o *Flow) SetTransport(trans gas.Transport) (err error) {
	if trans == nil {
		return errConf(o.ID, "unable to set empty transport model")
	}
	if trans.Model() == "none" {
		return errConf(o.ID, "invalid transport model %q", "none")
	}
	o.trans = trans
	o.Multi = trans.Model() == "multicomponent" || trans.Model() == "multicomponent-CK"
	if o.Np > 0 {
		o.allocDiffusion()
	}
	return
}

// SetTransportModel builds a new transport object from the solution's
// registry and installs it
func (o *Flow) SetTransportModel(model string) (err error) {
	err = o.Sol.SetTransportModel(model)
	if err != nil {
		return errConf(o.ID, "cannot switch transport model to %q:\n%v", model, err)
	}
	return o.SetTransport(o.Sol.Transport)
}

// TransportModel returns the capability string of the current transport model
func (o *Flow) TransportModel() string { return o.trans.Model() }

// SetPressure sets the operating pressure [Pa]
func (o *Flow) SetPressure(p float64) { o.Press = p }

// resize reallocates every per-point and per-cell derived array for the given
// number of grid points. Caches are rebuilt from scratch on the next
// evaluation; nothing survives a resize.
func (o *Flow) resize(points int) {
	o.Np = points
	o.Last = o.First + points - 1

	o.Z = make([]float64, points)
	o.Dz = make([]float64, points-1)

	o.rho = make([]float64, points)
	o.wtm = make([]float64, points)
	o.cp = make([]float64, points)
	o.visc = make([]float64, points)
	o.tcon = make([]float64, points)

	o.allocDiffusion()
	o.flux = la.MatAlloc(points, o.Nsp)
	o.wdot = la.MatAlloc(points, o.Nsp)
	o.hk = la.MatAlloc(points, o.Nsp)
	o.dhkdz = la.MatAlloc(points-1, o.Nsp)
	o.ybar = make([]float64, o.Nsp)
	o.qdotRad = make([]float64, points)
	o.fixedtemp = make([]float64, points)

	// energy-toggle state is per point and restarts disabled
	o.DoEnergy = make([]bool, points)

	o.slast = make([]float64, o.Nv*points)
}

// allocDiffusion sizes the diffusion storage for the current transport mode
func (o *Flow) allocDiffusion() {
	o.diff = make([]float64, o.Nsp*o.Np)
	if o.Multi {
		o.multidiff = make([][][]float64, o.Np)
		for j := range o.multidiff {
			o.multidiff[j] = la.MatAlloc(o.Nsp, o.Nsp)
		}
		o.dthermal = la.MatAlloc(o.Np, o.Nsp)
	} else {
		o.multidiff = nil
		o.dthermal = nil
	}
}

// gas state ////////////////////////////////////////////////////////////////

// SetGas sets the thermodynamic state object to the conditions at point j
func (o *Flow) SetGas(x []float64, j int) {
	o.thermo.SetTemperature(o.valT(x, j))
	o.thermo.SetMassFractionsNoNorm(x[o.Nv*j+CompY : o.Nv*j+CompY+o.Nsp])
	o.thermo.SetPressure(o.Press)
}

// SetGasAtMidpoint sets the thermodynamic state object to the average of the
// conditions at points j and j+1
func (o *Flow) SetGasAtMidpoint(x []float64, j int) {
	o.thermo.SetTemperature(0.5 * (o.valT(x, j) + o.valT(x, j+1)))
	for k := 0; k < o.Nsp; k++ {
		o.ybar[k] = 0.5 * (o.valY(x, k, j) + o.valY(x, k, j+1))
	}
	o.thermo.SetMassFractionsNoNorm(o.ybar)
	o.thermo.SetPressure(o.Press)
}

// InitialSoln fills this domain's slice of the global vector with the initial
// guess: the thermo object's current temperature and composition at every
// point
func (o *Flow) InitialSoln(xg []float64) {
	x := xg[o.Loc:]
	for j := 0; j < o.Np; j++ {
		x[o.Nv*j+CompT] = o.thermo.Temperature()
		o.thermo.MassFractions(x[o.Nv*j+CompY : o.Nv*j+CompY+o.Nsp])
		o.rho[j] = o.thermo.Density()
	}
}

// ResetBadValues renormalizes the mass fractions at every point by passing
// them through the thermodynamic model
func (o *Flow) ResetBadValues(xg []float64) {
	x := xg[o.Loc:]
	for j := 0; j < o.Np; j++ {
		y := x[o.Nv*j+CompY : o.Nv*j+CompY+o.Nsp]
		o.thermo.SetMassFractions(y)
		o.thermo.MassFractions(y)
	}
}

// SetFixedTempProfile installs an externally supplied temperature profile
// sampled at positions zfix normalized to [0,1]. It is interpolated into the
// per-point fixed temperatures whenever the energy equation is off.
func (o *Flow) SetFixedTempProfile(zfix, tfix []float64) {
	o.zfix = zfix
	o.tfix = tfix
}

// FixedTemp returns the temperature pinned at point j when the energy
// equation is disabled there
func (o *Flow) FixedTemp(j int) float64 { return o.fixedtemp[j] }

// Finalize performs the bookkeeping that follows an accepted solve: it
// validates the submodel combination, records the fixed-temperature profile
// and, for free flames, relocates the anchor if the grid no longer straddles
// it
func (o *Flow) Finalize(xg []float64) (err error) {
	if !o.Multi && o.DoSoret {
		return errConf(o.ID, "thermal diffusion (the Soret effect) requires a multicomponent transport model")
	}
	x := xg[o.Loc:]

	// record fixed temperatures: the locally solved values if energy was ever
	// solved (or no external profile exists), else the external profile
	e := o.DoEnergy[0]
	for j := 0; j < o.Np; j++ {
		if e || len(o.zfix) == 0 {
			o.fixedtemp[j] = o.valT(x, j)
		} else {
			zz := (o.Z[j] - o.Z[0]) / (o.Z[o.Np-1] - o.Z[0])
			o.fixedtemp[j] = linInterp(zz, o.zfix, o.tfix)
		}
	}
	if e {
		o.SolveEnergyEqn(AllPoints)
	}

	if o.IsFree && o.TFixed != Undef {
		// the anchor may no longer coincide with a grid point after external
		// grid modification
		for j := 0; j < o.Np; j++ {
			if o.Z[j] == o.ZFixed {
				return // fixed point is already set correctly
			}
		}
		for j := 0; j < o.Np-1; j++ {
			// find where the temperature profile crosses the fixed temperature
			if (o.valT(x, j)-o.TFixed)*(o.valT(x, j+1)-o.TFixed) <= 0.0 {
				o.TFixed = o.valT(x, j+1)
				o.ZFixed = o.Z[j+1]
				return
			}
		}
	}
	return
}

// linInterp returns the piecewise-linear interpolation of (xp,yp) at x,
// clamped to the end values outside the sampled range
func linInterp(x float64, xp, yp []float64) float64 {
	if x <= xp[0] {
		return yp[0]
	}
	n := len(xp)
	if x >= xp[n-1] {
		return yp[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xp[i] {
			f := (x - xp[i-1]) / (xp[i] - xp[i-1])
			return yp[i-1] + f*(yp[i]-yp[i-1])
		}
	}
	return yp[n-1]
}
