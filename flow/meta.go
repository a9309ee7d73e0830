// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/goflame/inp"
)

// equation toggles /////////////////////////////////////////////////////////

// SolveEnergyEqn enables the energy equation at point j, or at all points
// when j is AllPoints. The refiner is told to watch the velocity, spread
// rate and temperature components. The returned flag tells the caller that
// the change requires a Jacobian refresh; it is true only when the net state
// changed.
func (o *Flow) SolveEnergyEqn(j int) (changed bool) {
	if j == AllPoints {
		for i := range o.DoEnergy {
			if !o.DoEnergy[i] {
				changed = true
			}
			o.DoEnergy[i] = true
		}
	} else {
		if !o.DoEnergy[j] {
			changed = true
		}
		o.DoEnergy[j] = true
	}
	o.RefineActive[CompU] = true
	o.RefineActive[CompV] = true
	o.RefineActive[CompT] = true
	return
}

// FixTemperature disables the energy equation at point j (or everywhere when
// j is AllPoints), pinning the temperature to the fixed profile. The refiner
// stops watching the velocity, spread rate and temperature components. The
// returned flag signals a required Jacobian refresh on net change only.
func (o *Flow) FixTemperature(j int) (changed bool) {
	if j == AllPoints {
		for i := range o.DoEnergy {
			if o.DoEnergy[i] {
				changed = true
			}
			o.DoEnergy[i] = false
		}
	} else {
		if o.DoEnergy[j] {
			changed = true
		}
		o.DoEnergy[j] = false
	}
	o.RefineActive[CompU] = false
	o.RefineActive[CompV] = false
	o.RefineActive[CompT] = false
	return
}

// EnergyEnabled tells whether the energy equation is active at point j
func (o *Flow) EnergyEnabled(j int) bool { return o.DoEnergy[j] }

// submodel toggles /////////////////////////////////////////////////////////

// EnableSoret switches the thermal-diffusion (Soret) term on or off.
// Enabling it requires an active multicomponent transport model.
func (o *Flow) EnableSoret(enable bool) (err error) {
	if enable && !o.Multi {
		return errConf(o.ID, "thermal diffusion (the Soret effect) requires a multicomponent transport model; current model is %q", o.trans.Model())
	}
	o.DoSoret = enable
	return
}

// EnableRadiation switches the optically-thin radiative-loss term on or off.
// Disabling clears the cached losses so that the energy equation sees none.
func (o *Flow) EnableRadiation(enable bool) {
	o.DoRadiation = enable
	if !enable {
		for j := range o.qdotRad {
			o.qdotRad[j] = 0.0
		}
	}
}

// SetBoundaryEmissivities sets the boundary emissivities of the radiation
// submodel; both values must lie within [0,1]
func (o *Flow) SetBoundaryEmissivities(eLeft, eRight float64) (err error) {
	if eLeft < 0 || eLeft > 1 {
		return errConf(o.ID, "the left boundary emissivity must be between 0.0 and 1.0; got %g", eLeft)
	}
	if eRight < 0 || eRight > 1 {
		return errConf(o.ID, "the right boundary emissivity must be between 0.0 and 1.0; got %g", eRight)
	}
	o.EpsLeft = eLeft
	o.EpsRight = eRight
	return
}

// capability negotiation ///////////////////////////////////////////////////

// ElectricFieldSolver is the capability interface of domains that solve the
// electric-field equation. The plain flow domain does not implement it;
// callers negotiate by type assertion.
type ElectricFieldSolver interface {
	SolvingStage() int
	SetSolvingStage(stage int)
	SolveElectricField(j int)
	FixElectricField(j int)
	ElectricFieldEnabled(j int) bool
}

// Supports tells whether this domain implements the named optional equation
// family
func (o *Flow) Supports(capability string) bool {
	switch capability {
	case "spread_rate", "lambda":
		return o.UsesLambda
	case "efield":
		return false
	}
	return false
}

// UnsupportedOp returns the error reported when a capability this domain
// does not implement is invoked through a generic interface
func (o *Flow) UnsupportedOp(op string) error {
	return &UnsupportedOperationError{o.ID, op}
}

// snapshot export //////////////////////////////////////////////////////////

// ToSnapshot exports the grid, every active component profile, the density
// profile and all submodel metadata into a structured snapshot
func (o *Flow) ToSnapshot(xg []float64) *inp.Snapshot {
	x := xg[o.Loc:]
	snap := inp.NewSnapshot()

	// metadata
	snap.TransportModel = o.trans.Model()
	snap.Phase = &inp.Phase{Name: o.thermo.Name(), Source: o.thermo.Source()}
	snap.RadiationEnabled = boolPtr(o.DoRadiation)
	if o.DoRadiation {
		snap.EmissivityLeft = floatPtr(o.EpsLeft)
		snap.EmissivityRight = floatPtr(o.EpsRight)
	}
	snap.EnergyEnabled = inp.NewBoolVector(o.DoEnergy)
	snap.SoretEnabled = boolPtr(o.DoSoret)
	speciesNames := make([]string, o.Nsp)
	for k := 0; k < o.Nsp; k++ {
		speciesNames[k] = o.thermo.SpeciesName(k)
	}
	snap.SpeciesEnabled = inp.NewBoolMap(speciesNames, o.DoSpecies)
	snap.RefineCriteria = &inp.RefineCriteria{
		Ratio:     o.Refine.Ratio,
		Slope:     o.Refine.Slope,
		Curve:     o.Refine.Curve,
		Prune:     o.Refine.Prune,
		GridMin:   o.Refine.GridMin,
		MaxPoints: o.Refine.MaxPoints,
	}
	if o.ZFixed != Undef {
		snap.FixedPoint = &inp.FixedPoint{Location: o.ZFixed, Temperature: o.TFixed}
	}

	// grid and components
	snap.Grid = make([]float64, o.Np)
	copy(snap.Grid, o.Z)
	for n := 0; n < o.Nv; n++ {
		if !o.ComponentActive(n) {
			continue
		}
		data := make([]float64, o.Np)
		for j := 0; j < o.Np; j++ {
			data[j] = x[o.Index(n, j)]
		}
		snap.SetComponent(o.ComponentName(n), data)
	}

	// density rather than pressure
	d := make([]float64, o.Np)
	copy(d, o.rho)
	snap.SetComponent("D", d)

	if o.DoRadiation {
		q := make([]float64, o.Np)
		copy(q, o.qdotRad)
		snap.SetComponent("radiative-heat-loss", q)
	}
	return snap
}

// snapshot import //////////////////////////////////////////////////////////

// FromSnapshot restores the grid, the active component profiles and the
// submodel metadata from a snapshot. Absent metadata keys keep their
// defaults. A missing component array is reported through Warn and its
// values are left untouched.
func (o *Flow) FromSnapshot(snap *inp.Snapshot, xg []float64) (err error) {

	// grid first: it sizes every derived array
	err = o.SetGrid(snap.Grid)
	if err != nil {
		return
	}

	x := xg[o.Loc:]
	for n := 0; n < o.Nv; n++ {
		if !o.ComponentActive(n) {
			continue
		}
		name := o.ComponentName(n)
		data, ok := snap.Component(name)
		if !ok {
			Warn("restore: saved state does not contain values for component %q in domain %q", name, o.ID)
			continue
		}
		if len(data) != o.Np {
			return errGrid(o.ID, "component %q has %d values for %d grid points", name, len(data), o.Np)
		}
		for j := 0; j < o.Np; j++ {
			x[o.Index(n, j)] = data[j]
		}
	}

	err = o.applyMeta(snap)
	if err != nil {
		return
	}

	// rebuild the property caches over the whole domain
	o.updateProperties(AllPoints, x, 0, o.Np-1)
	return
}

// applyMeta applies the metadata section of a snapshot; absent keys leave
// the current settings unchanged except for the transport model, which
// defaults to mixture-averaged
func (o *Flow) applyMeta(snap *inp.Snapshot) (err error) {

	if snap.EnergyEnabled != nil {
		flags, e := snap.EnergyEnabled.Expand(o.Np)
		if e != nil {
			return errConf(o.ID, "energy-enabled: %v", e)
		}
		copy(o.DoEnergy, flags)
	}

	model := snap.TransportModel
	if model == "" {
		model = "mixture-averaged"
	}
	err = o.SetTransportModel(model)
	if err != nil {
		return
	}

	if snap.SoretEnabled != nil {
		err = o.EnableSoret(*snap.SoretEnabled)
		if err != nil {
			return
		}
	}

	if snap.SpeciesEnabled != nil {
		names := make([]string, o.Nsp)
		for k := 0; k < o.Nsp; k++ {
			names[k] = o.thermo.SpeciesName(k)
		}
		flags, e := snap.SpeciesEnabled.Expand(names)
		if e != nil {
			return errConf(o.ID, "species-enabled: %v", e)
		}
		copy(o.DoSpecies, flags)
	}

	if snap.RadiationEnabled != nil {
		o.DoRadiation = *snap.RadiationEnabled
		if o.DoRadiation {
			if snap.EmissivityLeft == nil || snap.EmissivityRight == nil {
				return errConf(o.ID, "radiation-enabled snapshot lacks emissivity-left/right")
			}
			err = o.SetBoundaryEmissivities(*snap.EmissivityLeft, *snap.EmissivityRight)
			if err != nil {
				return
			}
		}
	}

	if rc := snap.RefineCriteria; rc != nil {
		o.Refine.Ratio = rc.Ratio
		o.Refine.Slope = rc.Slope
		o.Refine.Curve = rc.Curve
		o.Refine.Prune = rc.Prune
		if rc.GridMin > 0 {
			o.Refine.GridMin = rc.GridMin
		}
		if rc.MaxPoints > 0 {
			o.Refine.MaxPoints = rc.MaxPoints
		}
	}

	if fp := snap.FixedPoint; fp != nil {
		o.ZFixed = fp.Location
		o.TFixed = fp.Temperature
	}
	return
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(v float64) *float64 { return &v }
