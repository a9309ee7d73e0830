// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/goflame/mdl/gas"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// testSpecies returns the species table of a methane/air system
func testSpecies() []gas.Species {
	return []gas.Species{
		{Name: "CH4", Molw: 16.04, Cp: 35.69e3, H0: -74.87e6, D0: 2.2e-5, Dt0: 1.1e-7},
		{Name: "O2", Molw: 32.00, Cp: 29.38e3, H0: 0.0, D0: 2.0e-5, Dt0: 0.7e-7},
		{Name: "CO2", Molw: 44.01, Cp: 37.13e3, H0: -393.52e6, D0: 1.4e-5, Dt0: 0.5e-7},
		{Name: "H2O", Molw: 18.02, Cp: 33.59e3, H0: -241.83e6, D0: 2.4e-5, Dt0: 1.3e-7},
		{Name: "N2", Molw: 28.01, Cp: 29.12e3, H0: 0.0, D0: 2.0e-5, Dt0: 0.6e-7},
	}
}

// testSolution returns a methane/air solution with one-step chemistry and the
// given transport model
func testSolution(transport string) *gas.Solution {
	mix := gas.NewMixture("gas", testSpecies())
	mix.Reac = &gas.Reaction{
		Nu: []float64{-1, -2, 1, 2, 0},
		A:  1.1e10, B: 0, Ea: 1.2e8,
	}
	trans, err := gas.NewTransport(transport, mix)
	if err != nil {
		chk.Panic("cannot allocate transport model %q:\n%v", transport, err)
	}
	return &gas.Solution{Name: "gas", Thermo: mix, Kinetics: mix, Transport: trans}
}

// testDomain returns a flow domain of the given topology on a uniform grid
// over [0, 0.02]
func testDomain(kind, transport string, npoints int) *Flow {
	o, err := New(testSolution(transport), "flame", kind, npoints)
	if err != nil {
		chk.Panic("cannot allocate flow domain:\n%v", err)
	}
	err = o.SetGrid(utl.LinSpace(0, 0.02, npoints))
	if err != nil {
		chk.Panic("cannot set grid:\n%v", err)
	}
	return o
}

// fillProfile fills x with a smooth flame-like profile: positive velocity,
// linear temperature rise and a linear blend of the boundary compositions
func fillProfile(o *Flow, x []float64, yLeft, yRight []float64) {
	for j := 0; j < o.Np; j++ {
		f := float64(j) / float64(o.Np-1)
		x[o.Index(CompU, j)] = 0.5
		x[o.Index(CompV, j)] = 0.01
		x[o.Index(CompT, j)] = 300.0 + 1700.0*f
		x[o.Index(CompL, j)] = -1.0
		x[o.Index(CompE, j)] = 0.0
		for k := 0; k < o.Nsp; k++ {
			x[o.Index(CompY+k, j)] = (1.0-f)*yLeft[k] + f*yRight[k]
		}
	}
}

// testYLeft and testYRight are boundary compositions summing exactly to one
var (
	testYLeft  = []float64{0.05, 0.23, 0.0, 0.0, 0.72}
	testYRight = []float64{0.0, 0.05, 0.12, 0.10, 0.73}
)
