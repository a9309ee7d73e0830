// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

// diagonal flags marking each equation for DAE / pseudo-transient solvers
const (
	Algebraic    = 0 // no time-derivative term
	Differential = 1 // carries a time-derivative term
)

// Eval assembles the residual of the governing equations. The external
// solver passes the global unknown vector xg; residuals and diagonal
// (algebraic/differential) flags are written into rsdg and diagg at the
// offsets belonging to this domain.
//
// jg selects the evaluation window: AllPoints fills every grid point (full
// residual), whereas a global point index restricts computation to the
// 3-point neighborhood of the perturbed point, as required for Jacobian
// finite differences. Windowed requests have no side effects outside their
// window except when ForceFull is set. rdt is the reciprocal time-step of
// the pseudo-transient term; zero for steady evaluation.
func (o *Flow) Eval(jg int, xg, rsdg []float64, diagg []int, rdt float64) {

	// when evaluating a Jacobian, skip points outside this domain's range
	// of influence
	if jg != AllPoints && (jg+1 < o.First || jg > o.Last+1) {
		return
	}

	// local slices of the global arrays
	x := xg[o.Loc:]
	rsd := rsdg[o.Loc:]
	diag := diagg[o.Loc:]

	var jmin, jmax int
	if jg == AllPoints { // evaluate all points
		jmin = 0
		jmax = o.Np - 1
	} else { // evaluate points for the Jacobian
		jpt := 0
		if jg > 0 {
			jpt = jg - o.First
		}
		jmin = imax(jpt, 1) - 1
		jmax = imin(jpt+1, o.Np-1)
	}

	o.updateProperties(jg, x, jmin, jmax)

	if o.DoRadiation {
		o.computeRadiation(x, jmin, jmax)
	}

	o.evalContinuity(x, rsd, diag, rdt, jmin, jmax)
	o.evalMomentum(x, rsd, diag, rdt, jmin, jmax)
	o.evalEnergy(x, rsd, diag, rdt, jmin, jmax)
	o.evalLambda(x, rsd, diag, rdt, jmin, jmax)
	o.evalElectricField(x, rsd, diag, rdt, jmin, jmax)
	o.evalSpecies(x, rsd, diag, rdt, jmin, jmax)
}

// evalContinuity assembles the continuity equation. The interior form
// depends on the topology: the axisymmetric formulation propagates the mass
// flow rate leftward from the right boundary; the free-flow formulation
// upwinds across the fixed point, pinning mass flux or temperature exactly
// there; the unstrained formulation holds the mass flux constant. All forms
// are algebraic.
func (o *Flow) evalContinuity(x, rsd []float64, diag []int, rdt float64, jmin, jmax int) {

	// the left boundary has the same form for all topologies
	if jmin == 0 {
		rsd[o.Index(CompU, 0)] = -(o.rhoU(x, 1)-o.rhoU(x, 0))/o.Dz[0] -
			(o.rho[1]*o.valV(x, 1) + o.rho[0]*o.valV(x, 0))
		diag[o.Index(CompU, 0)] = Algebraic
	}

	if jmax == o.Np-1 { // right boundary
		if o.UsesLambda {
			rsd[o.Index(CompU, jmax)] = o.rhoU(x, jmax)
		} else {
			rsd[o.Index(CompU, jmax)] = o.rhoU(x, jmax) - o.rhoU(x, jmax-1)
		}
		diag[o.Index(CompU, jmax)] = Algebraic
	}

	// interior points
	j0 := imax(jmin, 1)
	j1 := imin(jmax, o.Np-2)
	switch {
	case o.UsesLambda:
		for j := j0; j <= j1; j++ {
			rsd[o.Index(CompU, j)] = -(o.rhoU(x, j+1)-o.rhoU(x, j))/o.Dz[j] -
				(o.rho[j+1]*o.valV(x, j+1) + o.rho[j]*o.valV(x, j))
			diag[o.Index(CompU, j)] = Algebraic
		}
	case o.IsFree:
		// terms involving V vanish as V=0 by definition
		for j := j0; j <= j1; j++ {
			switch {
			case o.Z[j] > o.ZFixed:
				rsd[o.Index(CompU, j)] = -(o.rhoU(x, j) - o.rhoU(x, j-1)) / o.Dz[j-1]
			case o.Z[j] == o.ZFixed:
				if o.DoEnergy[j] {
					rsd[o.Index(CompU, j)] = o.valT(x, j) - o.TFixed
				} else {
					rsd[o.Index(CompU, j)] = o.rhoU(x, j) - o.rho[0]*o.FixedFactor
				}
			default: // z[j] < zfixed
				rsd[o.Index(CompU, j)] = -(o.rhoU(x, j+1) - o.rhoU(x, j)) / o.Dz[j]
			}
			diag[o.Index(CompU, j)] = Algebraic
		}
	default: // unstrained: fixed mass flow rate
		for j := j0; j <= j1; j++ {
			rsd[o.Index(CompU, j)] = o.rhoU(x, j) - o.rhoU(x, j-1)
			diag[o.Index(CompU, j)] = Algebraic
		}
	}
}

// evalMomentum assembles the radial-momentum equation: a force balance of
// viscous shear, the Λ curvature term, convection and ρV². The equation is
// disabled entirely (V forced to zero) for topologies without Λ.
func (o *Flow) evalMomentum(x, rsd []float64, diag []int, rdt float64, jmin, jmax int) {
	if !o.UsesLambda {
		for j := jmin; j <= jmax; j++ {
			rsd[o.Index(CompV, j)] = o.valV(x, j)
			diag[o.Index(CompV, j)] = Algebraic
		}
		return
	}

	if jmin == 0 {
		rsd[o.Index(CompV, 0)] = o.valV(x, 0)
		diag[o.Index(CompV, 0)] = Algebraic
	}
	if jmax == o.Np-1 {
		rsd[o.Index(CompV, jmax)] = o.valV(x, jmax)
		diag[o.Index(CompV, jmax)] = Algebraic
	}

	j0 := imax(jmin, 1)
	j1 := imin(jmax, o.Np-2)
	for j := j0; j <= j1; j++ {
		rsd[o.Index(CompV, j)] = (o.shear(x, j)-o.valL(x, j)-
			o.rhoU(x, j)*o.dVdz(x, j)-
			o.rho[j]*o.valV(x, j)*o.valV(x, j))/o.rho[j] -
			rdt*(o.valV(x, j)-o.prevV(j))
		diag[o.Index(CompV, j)] = Differential
	}
}

// evalLambda assembles the Λ equation: Λ is spatially constant, propagated
// from the right boundary where -ρu closes the system
func (o *Flow) evalLambda(x, rsd []float64, diag []int, rdt float64, jmin, jmax int) {
	if !o.UsesLambda {
		for j := jmin; j <= jmax; j++ {
			rsd[o.Index(CompL, j)] = o.valL(x, j)
			diag[o.Index(CompL, j)] = Algebraic
		}
		return
	}

	if jmin == 0 {
		rsd[o.Index(CompL, 0)] = -o.rhoU(x, 0)
		diag[o.Index(CompL, 0)] = Algebraic
	}
	if jmax == o.Np-1 {
		rsd[o.Index(CompL, jmax)] = o.valL(x, jmax) - o.valL(x, jmax-1)
		diag[o.Index(CompL, jmax)] = Algebraic
	}

	j0 := imax(jmin, 1)
	j1 := imin(jmax, o.Np-2)
	for j := j0; j <= j1; j++ {
		rsd[o.Index(CompL, j)] = o.valL(x, j) - o.valL(x, j-1)
		diag[o.Index(CompL, j)] = Algebraic
	}
}

// evalEnergy assembles the energy equation. Boundary temperatures are
// pinned. At interior points with the energy equation active, convective,
// diffusive, reactive and radiative heat terms are normalized by ρ·cp;
// otherwise the temperature is pinned to the fixed profile.
func (o *Flow) evalEnergy(x, rsd []float64, diag []int, rdt float64, jmin, jmax int) {
	if jmin == 0 {
		rsd[o.Index(CompT, 0)] = o.valT(x, 0)
		diag[o.Index(CompT, 0)] = Algebraic
	}
	if jmax == o.Np-1 {
		rsd[o.Index(CompT, jmax)] = o.valT(x, jmax)
		diag[o.Index(CompT, jmax)] = Algebraic
	}

	j0 := imax(jmin, 1)
	j1 := imin(jmax, o.Np-2)
	for j := j0; j <= j1; j++ {
		if !o.DoEnergy[j] {
			// residual equation when the energy equation is disabled
			rsd[o.Index(CompT, j)] = o.valT(x, j) - o.fixedtemp[j]
			diag[o.Index(CompT, j)] = Algebraic
			continue
		}

		o.gradHk(x, j)
		sum := 0.0
		for k := 0; k < o.Nsp; k++ {
			flxk := 0.5 * (o.flux[j-1][k] + o.flux[j][k])
			sum += o.wdot[j][k] * o.hk[j][k]
			sum += flxk * o.dhkdz[j][k] / o.wt[k]
		}

		r := -o.cp[j]*o.rhoU(x, j)*o.dTdz(x, j) - o.divHeatFlux(x, j) - sum
		r /= o.rho[j] * o.cp[j]
		r -= rdt * (o.valT(x, j) - o.prevT(j))
		r -= o.qdotRad[j] / (o.rho[j] * o.cp[j])
		rsd[o.Index(CompT, j)] = r
		diag[o.Index(CompT, j)] = Differential
	}
}

// evalSpecies assembles the species-conservation equations. At each boundary
// a flux balance holds for every species except the excess species, whose
// equation is replaced by the mass-fraction-normalization constraint.
func (o *Flow) evalSpecies(x, rsd []float64, diag []int, rdt float64, jmin, jmax int) {
	if jmin == 0 {
		sum := 0.0
		for k := 0; k < o.Nsp; k++ {
			sum += o.valY(x, k, 0)
			rsd[o.Index(CompY+k, 0)] = -(o.flux[0][k] + o.rhoU(x, 0)*o.valY(x, k, 0))
			diag[o.Index(CompY+k, 0)] = Algebraic
		}
		rsd[o.Index(CompY+o.kExcessLeft, 0)] = 1.0 - sum
	}

	if jmax == o.Np-1 {
		sum := 0.0
		for k := 0; k < o.Nsp; k++ {
			sum += o.valY(x, k, jmax)
			rsd[o.Index(CompY+k, jmax)] = o.flux[jmax-1][k] + o.rhoU(x, jmax)*o.valY(x, k, jmax)
			diag[o.Index(CompY+k, jmax)] = Algebraic
		}
		rsd[o.Index(CompY+o.kExcessRight, jmax)] = 1.0 - sum
	}

	j0 := imax(jmin, 1)
	j1 := imin(jmax, o.Np-2)
	for j := j0; j <= j1; j++ {
		for k := 0; k < o.Nsp; k++ {
			convec := o.rhoU(x, j) * o.dYdz(x, k, j)
			diffus := 2.0 * (o.flux[j][k] - o.flux[j-1][k]) / (o.Z[j+1] - o.Z[j-1])
			rsd[o.Index(CompY+k, j)] = (o.wt[k]*o.wdot[j][k]-convec-diffus)/o.rho[j] -
				rdt*(o.valY(x, k, j)-o.prevY(k, j))
			diag[o.Index(CompY+k, j)] = Differential
		}
	}
}

// evalElectricField assembles the inert electric-field placeholder: the
// residual is the field value itself at every point
func (o *Flow) evalElectricField(x, rsd []float64, diag []int, rdt float64, jmin, jmax int) {
	for j := jmin; j <= jmax; j++ {
		rsd[o.Index(CompE, j)] = x[o.Index(CompE, j)]
		diag[o.Index(CompE, j)] = Algebraic
	}
}

// discrete operators ///////////////////////////////////////////////////////

// shear returns the viscous shear term of the momentum equation at interior
// point j, using midpoint viscosities
func (o *Flow) shear(x []float64, j int) float64 {
	c1 := o.visc[j-1] * (o.valV(x, j) - o.valV(x, j-1))
	c2 := o.visc[j] * (o.valV(x, j+1) - o.valV(x, j))
	return 2.0 * (c2/o.Dz[j] - c1/o.Dz[j-1]) / (o.Z[j+1] - o.Z[j-1])
}

// divHeatFlux returns the divergence of the conductive heat flux at interior
// point j, using midpoint conductivities
func (o *Flow) divHeatFlux(x []float64, j int) float64 {
	c1 := o.tcon[j-1] * (o.valT(x, j) - o.valT(x, j-1))
	c2 := o.tcon[j] * (o.valT(x, j+1) - o.valT(x, j))
	return -2.0 * (c2/o.Dz[j] - c1/o.Dz[j-1]) / (o.Z[j+1] - o.Z[j-1])
}

// gradHk updates the upwinded axial gradients of the species enthalpies at
// point j
func (o *Flow) gradHk(x []float64, j int) {
	for k := 0; k < o.Nsp; k++ {
		if o.valU(x, j) > 0.0 {
			o.dhkdz[j][k] = (o.hk[j][k] - o.hk[j-1][k]) / o.Dz[j-1]
		} else {
			o.dhkdz[j][k] = (o.hk[j+1][k] - o.hk[j][k]) / o.Dz[j]
		}
	}
}
