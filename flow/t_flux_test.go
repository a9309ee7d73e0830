// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_flux01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux01. corrective flux closes the mass balance")

	o := testDomain(FreeFlow, "mixture-averaged", 11)
	x := make([]float64, o.Nv*o.Np)
	fillProfile(o, x, testYLeft, testYRight)

	o.updateProperties(AllPoints, x, 0, o.Np-1)

	// the diffusive mass fluxes must sum to zero at every midpoint
	for j := 0; j < o.Np-1; j++ {
		sum := 0.0
		for k := 0; k < o.Nsp; k++ {
			sum += o.DiffFlux(k, j)
		}
		chk.Scalar(tst, io.Sf("Σ flux @ %d", j), 1e-10, sum, 0)
	}

	// and at least one species must actually diffuse
	if o.DiffFlux(0, o.Np/2) == 0 {
		tst.Errorf("test failed: zero diffusive flux\n")
	}
}

func Test_flux02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux02. thermal diffusion with uniform composition")

	o := testDomain(FreeFlow, "multicomponent", 6)
	err := o.EnableSoret(true)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// uniform composition: mole-fraction gradients vanish and the flux is the
	// thermal-diffusion term alone
	yUniform := []float64{0.05, 0.20, 0.05, 0.05, 0.65}
	x := make([]float64, o.Nv*o.Np)
	fillProfile(o, x, yUniform, yUniform)

	o.updateProperties(AllPoints, x, 0, o.Np-1)

	dt0 := []float64{1.1e-7, 0.7e-7, 0.5e-7, 1.3e-7, 0.6e-7}
	for j := 0; j < o.Np-1; j++ {
		gradlogT := 2.0 * (o.valT(x, j+1) - o.valT(x, j)) /
			((o.valT(x, j+1) + o.valT(x, j)) * (o.Z[j+1] - o.Z[j]))
		for k := 0; k < o.Nsp; k++ {
			chk.Scalar(tst, io.Sf("flux[%d][%d]", j, k), 1e-15, o.DiffFlux(k, j), -dt0[k]*gradlogT)
		}
	}
}

func Test_flux03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux03. multicomponent fluxes respond to all gradients")

	o := testDomain(FreeFlow, "multicomponent", 8)
	x := make([]float64, o.Nv*o.Np)
	fillProfile(o, x, testYLeft, testYRight)

	o.updateProperties(AllPoints, x, 0, o.Np-1)

	// CH4 diffuses down its gradient (leftward flux at every midpoint)
	for j := 0; j < o.Np-1; j++ {
		io.Pforan("flux[CH4][%d] = %v\n", j, o.DiffFlux(0, j))
		if o.DiffFlux(0, j) == 0 {
			tst.Errorf("test failed: zero multicomponent flux at midpoint %d\n", j)
			return
		}
	}
}
