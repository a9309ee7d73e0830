// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements the discretization and residual-assembly engine of
// a steady quasi-one-dimensional reacting flow (premixed or strained flame).
// An external nonlinear solver owns the global unknown vector and repeatedly
// calls Eval to obtain the residual of the governing equations.
package flow

import (
	"github.com/cpmech/gosl/chk"
)

// components of the unknown vector at each grid point, in storage order.
// Species mass fractions follow CompY.
const (
	CompU = iota // axial mass-flux proxy ρ·u
	CompV        // radial velocity / spread rate
	CompT        // temperature
	CompL        // pressure-curvature eigenvalue Λ
	CompE        // electric field (inert placeholder)
	CompY        // first species mass fraction
)

// flow domain topologies
const (
	Axisymmetric = "axisymmetric-flow" // strained flame; solves V and Λ
	FreeFlow     = "free-flow"         // freely propagating flame; anchored at a fixed point
	Unstrained   = "unstrained-flow"   // burner-stabilized flame; fixed mass flow rate
)

// Undef marks unset floating-point data such as the free-flame fixed point
const Undef = -999.1234

// AllPoints requests a full (non-windowed) residual evaluation
const AllPoints = -1

// RefineCriteria holds the grid-refinement criteria tracked on behalf of the
// external refiner. The flow domain never refines its own grid; it only
// round-trips these values through snapshots.
type RefineCriteria struct {
	Ratio     float64 // maximum ratio of adjacent spacings
	Slope     float64 // maximum fraction of change in value
	Curve     float64 // maximum fraction of change in slope
	Prune     float64 // threshold for removing points
	GridMin   float64 // minimum allowable spacing
	MaxPoints int     // maximum number of grid points
}

// DefaultRefineCriteria returns the default refinement criteria
func DefaultRefineCriteria() RefineCriteria {
	return RefineCriteria{Ratio: 10.0, Slope: 0.8, Curve: 0.8, Prune: -0.001,
		GridMin: 1e-10, MaxPoints: 1000}
}

// indexing /////////////////////////////////////////////////////////////////

// Index returns the offset of component n at point j within this domain's
// slice of the global vector
func (o *Flow) Index(n, j int) int { return o.Nv*j + n }

// state accessors; x is the local slice of the global vector

func (o *Flow) valU(x []float64, j int) float64 { return x[o.Nv*j+CompU] }
func (o *Flow) valV(x []float64, j int) float64 { return x[o.Nv*j+CompV] }
func (o *Flow) valT(x []float64, j int) float64 { return x[o.Nv*j+CompT] }
func (o *Flow) valL(x []float64, j int) float64 { return x[o.Nv*j+CompL] }

// valY returns the mass fraction of species k at point j
func (o *Flow) valY(x []float64, k, j int) float64 { return x[o.Nv*j+CompY+k] }

// valX returns the mole fraction of species k at point j, using the cached
// mean molecular weight
func (o *Flow) valX(x []float64, k, j int) float64 {
	return o.wtm[j] * o.valY(x, k, j) / o.wt[k]
}

// rhoU returns the axial mass flux ρ·u at point j
func (o *Flow) rhoU(x []float64, j int) float64 { return o.rho[j] * o.valU(x, j) }

// upwinded first derivatives; selected by the sign of u at point j

func (o *Flow) dVdz(x []float64, j int) float64 {
	jloc := j
	if o.valU(x, j) <= 0 {
		jloc = j + 1
	}
	return (o.valV(x, jloc) - o.valV(x, jloc-1)) / o.Dz[jloc-1]
}

func (o *Flow) dTdz(x []float64, j int) float64 {
	jloc := j
	if o.valU(x, j) <= 0 {
		jloc = j + 1
	}
	return (o.valT(x, jloc) - o.valT(x, jloc-1)) / o.Dz[jloc-1]
}

func (o *Flow) dYdz(x []float64, k, j int) float64 {
	jloc := j
	if o.valU(x, j) <= 0 {
		jloc = j + 1
	}
	return (o.valY(x, k, jloc) - o.valY(x, k, jloc-1)) / o.Dz[jloc-1]
}

// previous-solution accessors for pseudo-transient terms

func (o *Flow) prevV(j int) float64    { return o.slast[o.Nv*j+CompV] }
func (o *Flow) prevT(j int) float64    { return o.slast[o.Nv*j+CompT] }
func (o *Flow) prevY(k, j int) float64 { return o.slast[o.Nv*j+CompY+k] }

// component metadata ///////////////////////////////////////////////////////

// NumComponents returns the number of solution components per grid point
func (o *Flow) NumComponents() int { return o.Nv }

// NumPoints returns the number of grid points
func (o *Flow) NumPoints() int { return o.Np }

// ComponentName returns the name of the n-th solution component
func (o *Flow) ComponentName(n int) string {
	switch n {
	case CompU:
		return "velocity"
	case CompV:
		return "spread_rate"
	case CompT:
		return "T"
	case CompL:
		return "lambda"
	case CompE:
		return "eField"
	}
	if n >= CompY && n < CompY+o.Nsp {
		return o.thermo.SpeciesName(n - CompY)
	}
	return "<unknown>"
}

// ComponentIndex returns the index of the named solution component
func (o *Flow) ComponentIndex(name string) (n int, err error) {
	switch name {
	case "velocity":
		return CompU, nil
	case "spread_rate":
		return CompV, nil
	case "T":
		return CompT, nil
	case "lambda":
		return CompL, nil
	case "eField":
		return CompE, nil
	}
	if k := o.thermo.SpeciesIndex(name); k >= 0 {
		return CompY + k, nil
	}
	return -1, chk.Err("domain %q has no component named %q", o.ID, name)
}

// ComponentActive tells whether the n-th component is part of the solved
// equation set for this topology. V and Λ are active only when the
// axisymmetric formulation is used; the electric field is never active.
func (o *Flow) ComponentActive(n int) bool {
	switch n {
	case CompV, CompL:
		return o.UsesLambda
	case CompE:
		return false
	}
	return true
}

// Bounds returns the lower and upper bounds of the n-th component, used by
// the external solver for solution clamping
func (o *Flow) Bounds(n int) (lower, upper float64) {
	return o.Lower[n], o.Upper[n]
}

// SetBounds replaces the bounds of the n-th component
func (o *Flow) SetBounds(n int, lower, upper float64) {
	o.Lower[n] = lower
	o.Upper[n] = upper
}

// ActiveComponents returns the indices of the components to be considered by
// the external refiner at every point: the components marked refine-active
// plus all solved species
func (o *Flow) ActiveComponents() (list []int) {
	for n := 0; n < o.Nv; n++ {
		if !o.ComponentActive(n) {
			continue
		}
		if n < CompY && !o.RefineActive[n] {
			continue
		}
		list = append(list, n)
	}
	return
}

// pseudo-transient support /////////////////////////////////////////////////

// SaveLastSolution stores the current domain slice of the global vector for
// use by the pseudo-transient terms of the next evaluation
func (o *Flow) SaveLastSolution(xg []float64) {
	copy(o.slast, xg[o.Loc:o.Loc+o.Nv*o.Np])
}
