// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

// updateProperties refreshes the property caches for an evaluation over
// points [jmin,jmax]. Transport properties are recomputed only on full
// evaluations (or when ForceFull is set), preserving the external solver's
// Jacobian finite-difference assumptions; diffusive fluxes are always
// refreshed. The excess species at the boundaries are re-selected only on
// full evaluations.
func (o *Flow) updateProperties(jg int, x []float64, jmin, jmax int) {

	// properties are computed for grid points from j0 to j1
	j0 := imax(jmin, 1) - 1
	j1 := imin(jmax+1, o.Np-1)

	o.updateThermo(x, j0, j1)
	if jg == AllPoints || o.ForceFull {
		o.updateTransport(x, j0, j1)
	}
	if jg == AllPoints {
		o.kExcessLeft = o.argMaxY(x, jmin)
		o.kExcessRight = o.argMaxY(x, jmax)
	}

	o.updateDiffFluxes(x, j0, j1)
}

// updateThermo recomputes density, mean molecular weight, specific heat,
// production rates and species enthalpies at points j0..j1 (inclusive)
func (o *Flow) updateThermo(x []float64, j0, j1 int) {
	for j := j0; j <= j1; j++ {
		o.SetGas(x, j)
		o.rho[j] = o.thermo.Density()
		o.wtm[j] = o.thermo.MeanMolecularWeight()
		o.cp[j] = o.thermo.CpMass()
		o.kin.NetProductionRates(o.wdot[j])
		o.thermo.PartialMolarEnthalpies(o.hk[j])
	}
}

// updateTransport recomputes viscosity, thermal conductivity and diffusion
// data at the midpoints of cells [j0,j1)
func (o *Flow) updateTransport(x []float64, j0, j1 int) {
	if o.Multi {
		for j := j0; j < j1; j++ {
			o.SetGasAtMidpoint(x, j)
			wtm := o.thermo.MeanMolecularWeight()
			rho := o.thermo.Density()
			o.visc[j] = 0.0
			if o.Dovisc {
				o.visc[j] = o.trans.Viscosity()
			}
			o.trans.MultiDiffCoeffs(o.multidiff[j])

			// use diff as storage for the factor outside the summation
			for k := 0; k < o.Nsp; k++ {
				o.diff[k+j*o.Nsp] = o.wt[k] * rho / (wtm * wtm)
			}

			o.tcon[j] = o.trans.ThermalConductivity()
			if o.DoSoret {
				o.trans.ThermalDiffCoeffs(o.dthermal[j])
			}
		}
		return
	}

	// mixture-averaged transport
	for j := j0; j < j1; j++ {
		o.SetGasAtMidpoint(x, j)
		o.visc[j] = 0.0
		if o.Dovisc {
			o.visc[j] = o.trans.Viscosity()
		}
		o.trans.MixDiffCoeffs(o.diff[j*o.Nsp : (j+1)*o.Nsp])
		rho := o.thermo.Density()
		wtm := o.thermo.MeanMolecularWeight()
		for k := 0; k < o.Nsp; k++ {
			o.diff[k+j*o.Nsp] *= o.wt[k] * rho / wtm
		}
		o.tcon[j] = o.trans.ThermalConductivity()
	}
}

// argMaxY returns the index of the species with the largest mass fraction at
// point j; ties resolve to the lowest index
func (o *Flow) argMaxY(x []float64, j int) (kmax int) {
	ymax := o.valY(x, 0, j)
	for k := 1; k < o.Nsp; k++ {
		if y := o.valY(x, k, j); y > ymax {
			ymax = y
			kmax = k
		}
	}
	return
}

// ExcessSpecies returns the indices of the species whose equations are
// replaced by the mass-fraction-normalization constraint at the left and
// right boundaries
func (o *Flow) ExcessSpecies() (left, right int) {
	return o.kExcessLeft, o.kExcessRight
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
