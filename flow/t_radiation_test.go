// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"testing"

	"github.com/cpmech/goflame/mdl/gas"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// fillIsothermal fills x with a uniform-temperature profile
func fillIsothermal(o *Flow, x []float64, T float64, y []float64) {
	fillProfile(o, x, y, y)
	for j := 0; j < o.Np; j++ {
		x[o.Index(CompT, j)] = T
	}
}

func Test_rad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rad01. radiative loss vanishes in thermal equilibrium")

	o := testDomain(FreeFlow, "mixture-averaged", 6)
	o.EnableRadiation(true)
	err := o.SetBoundaryEmissivities(1.0, 1.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// gas with CO2 and H2O at the boundary temperature: absorbed boundary
	// radiation balances emission exactly
	y := []float64{0.0, 0.05, 0.12, 0.10, 0.73}
	ndof := o.Nv * o.Np
	x := make([]float64, ndof)
	fillIsothermal(o, x, 1500.0, y)
	o.SaveLastSolution(x)

	rsd := make([]float64, ndof)
	diag := make([]int, ndof)
	o.Eval(AllPoints, x, rsd, diag, 0)

	for j := 0; j < o.Np-1; j++ {
		chk.Scalar(tst, io.Sf("qdot @ %d", j), 1e-17, o.RadiativeLoss(j), 0)
	}
}

func Test_rad02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rad02. cold black boundaries absorb a net loss")

	o := testDomain(FreeFlow, "mixture-averaged", 6)
	o.EnableRadiation(true) // both emissivities stay zero

	y := []float64{0.0, 0.05, 0.12, 0.10, 0.73}
	ndof := o.Nv * o.Np
	x := make([]float64, ndof)
	fillIsothermal(o, x, 1500.0, y)
	o.SaveLastSolution(x)

	rsd := make([]float64, ndof)
	diag := make([]int, ndof)
	o.Eval(AllPoints, x, rsd, diag, 0)

	// with zero boundary emissivities the hot gas loses heat everywhere
	for j := 0; j < o.Np-1; j++ {
		io.Pforan("qdot[%d] = %v\n", j, o.RadiativeLoss(j))
		if o.RadiativeLoss(j) <= 0 {
			tst.Errorf("test failed: positive radiative loss expected at point %d\n", j)
			return
		}
	}

	// uniform state radiates uniformly
	for j := 1; j < o.Np-1; j++ {
		chk.Scalar(tst, io.Sf("uniform qdot @ %d", j), 1e-12,
			o.RadiativeLoss(j), o.RadiativeLoss(0))
	}

	// the loss shows up as a negative energy source at interior points
	o.SolveEnergyEqn(AllPoints)
	rsdRad := make([]float64, ndof)
	o.Eval(AllPoints, x, rsdRad, diag, 0)
	o.EnableRadiation(false)
	rsdNoRad := make([]float64, ndof)
	o.Eval(AllPoints, x, rsdNoRad, diag, 0)
	j := o.Np / 2
	diff := rsdNoRad[o.Index(CompT, j)] - rsdRad[o.Index(CompT, j)]
	chk.Scalar(tst, "energy sink", 1e-12, diff, o.RadiativeLoss(j)/(o.rho[j]*o.cp[j]))
}

func Test_rad03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rad03. no radiating species, no loss")

	species := []gas.Species{
		{Name: "CH4", Molw: 16.04, Cp: 35.69e3, H0: -74.87e6, D0: 2.2e-5},
		{Name: "O2", Molw: 32.00, Cp: 29.38e3, D0: 2.0e-5},
		{Name: "N2", Molw: 28.01, Cp: 29.12e3, D0: 2.0e-5},
	}
	mix := gas.NewMixture("gas", species)
	trans, err := gas.NewTransport("mixture-averaged", mix)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sol := &gas.Solution{Name: "gas", Thermo: mix, Kinetics: mix, Transport: trans}

	o, err := New(sol, "flame", FreeFlow, 5)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = o.SetGrid(utl.LinSpace(0, 0.02, 5))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	o.EnableRadiation(true)

	ndof := o.Nv * o.Np
	x := make([]float64, ndof)
	y := []float64{0.1, 0.2, 0.7}
	fillIsothermal(o, x, 1800.0, y)
	o.SaveLastSolution(x)

	rsd := make([]float64, ndof)
	diag := make([]int, ndof)
	o.Eval(AllPoints, x, rsd, diag, 0)

	for j := 0; j < o.Np; j++ {
		chk.Scalar(tst, io.Sf("qdot @ %d", j), 1e-17, o.RadiativeLoss(j), 0)
	}
}
