// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_resid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resid01. windowed evaluation matches the full residual")

	o := testDomain(FreeFlow, "mixture-averaged", 9)
	o.SolveEnergyEqn(AllPoints)

	ndof := o.Nv * o.Np
	x := make([]float64, ndof)
	fillProfile(o, x, testYLeft, testYRight)
	o.SaveLastSolution(x)

	rsdFull := make([]float64, ndof)
	diagFull := make([]int, ndof)
	o.Eval(AllPoints, x, rsdFull, diagFull, 0)

	for jg := 0; jg < o.Np; jg++ {
		rsdWin := make([]float64, ndof)
		diagWin := make([]int, ndof)
		o.Eval(jg, x, rsdWin, diagWin, 0)

		jmin := imax(jg, 1) - 1
		jmax := imin(jg+1, o.Np-1)
		for j := jmin; j <= jmax; j++ {
			for n := 0; n < o.Nv; n++ {
				chk.Scalar(tst, io.Sf("rsd[%d][%d] @ window %d", n, j, jg), 1e-15,
					rsdWin[o.Index(n, j)], rsdFull[o.Index(n, j)])
				chk.IntAssert(diagWin[o.Index(n, j)], diagFull[o.Index(n, j)])
			}
		}
	}
}

func Test_resid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resid02. axisymmetric boundary and interior equations")

	o := testDomain(Axisymmetric, "mixture-averaged", 7)
	o.SolveEnergyEqn(AllPoints)

	ndof := o.Nv * o.Np
	x := make([]float64, ndof)
	fillProfile(o, x, testYLeft, testYRight)
	o.SaveLastSolution(x)

	rsd := make([]float64, ndof)
	diag := make([]int, ndof)
	o.Eval(AllPoints, x, rsd, diag, 0)

	N := o.Np - 1
	io.Pforan("rho = %v\n", o.rho)

	// right-boundary continuity pins the mass flux itself
	chk.Scalar(tst, "continuity right", 1e-15, rsd[o.Index(CompU, N)], o.rho[N]*0.5)

	// spread rate vanishes at both boundaries
	chk.Scalar(tst, "V left", 1e-17, rsd[o.Index(CompV, 0)], 0.01)
	chk.Scalar(tst, "V right", 1e-17, rsd[o.Index(CompV, N)], 0.01)

	// Λ propagates from the right: -ρu on the left, constant elsewhere
	chk.Scalar(tst, "Λ left", 1e-15, rsd[o.Index(CompL, 0)], -o.rho[0]*0.5)
	for j := 1; j <= N; j++ {
		chk.Scalar(tst, io.Sf("Λ @ %d", j), 1e-17, rsd[o.Index(CompL, j)], 0)
	}

	// boundary temperatures are pinned
	chk.Scalar(tst, "T left", 1e-17, rsd[o.Index(CompT, 0)], 300.0)
	chk.Scalar(tst, "T right", 1e-17, rsd[o.Index(CompT, N)], 2000.0)

	// diagonal flags: algebraic at the boundaries, differential inside
	chk.IntAssert(diag[o.Index(CompT, 0)], Algebraic)
	chk.IntAssert(diag[o.Index(CompT, 3)], Differential)
	chk.IntAssert(diag[o.Index(CompV, 3)], Differential)
	chk.IntAssert(diag[o.Index(CompU, 3)], Algebraic)
	chk.IntAssert(diag[o.Index(CompL, 3)], Algebraic)
	chk.IntAssert(diag[o.Index(CompY, 3)], Differential)
	chk.IntAssert(diag[o.Index(CompY, 0)], Algebraic)
}

func Test_resid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resid03. excess species and boundary flux balances")

	o := testDomain(FreeFlow, "mixture-averaged", 6)
	yL := []float64{0.10, 0.70, 0.05, 0.05, 0.10}
	yR := []float64{0.20, 0.10, 0.35, 0.10, 0.25}

	ndof := o.Nv * o.Np
	x := make([]float64, ndof)
	fillProfile(o, x, yL, yR)
	o.SaveLastSolution(x)

	rsd := make([]float64, ndof)
	diag := make([]int, ndof)
	o.Eval(AllPoints, x, rsd, diag, 0)

	left, right := o.ExcessSpecies()
	io.Pforan("excess species: left=%d right=%d\n", left, right)
	chk.IntAssert(left, 1)  // O2 dominates the left boundary
	chk.IntAssert(right, 2) // CO2 dominates the right boundary

	// the excess equations enforce normalization; compositions sum to one here
	chk.Scalar(tst, "excess left", 1e-15, rsd[o.Index(CompY+left, 0)], 0)
	chk.Scalar(tst, "excess right", 1e-15, rsd[o.Index(CompY+right, o.Np-1)], 0)

	// the other species balance convection against diffusion at the inlet
	for k := 0; k < o.Nsp; k++ {
		if k == left {
			continue
		}
		expected := -(o.DiffFlux(k, 0) + o.rho[0]*0.5*yL[k])
		chk.Scalar(tst, io.Sf("species %d left", k), 1e-15, rsd[o.Index(CompY+k, 0)], expected)
	}
}

func Test_resid04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resid04. unstrained topology holds the mass flux constant")

	o := testDomain(Unstrained, "mixture-averaged", 6)
	o.SolveEnergyEqn(AllPoints)

	ndof := o.Nv * o.Np
	x := make([]float64, ndof)
	fillProfile(o, x, testYLeft, testYRight)
	o.SaveLastSolution(x)

	rsd := make([]float64, ndof)
	diag := make([]int, ndof)
	o.Eval(AllPoints, x, rsd, diag, 0)

	for j := 1; j < o.Np; j++ {
		chk.Scalar(tst, io.Sf("continuity @ %d", j), 1e-15,
			rsd[o.Index(CompU, j)], o.rho[j]*0.5-o.rho[j-1]*0.5)
	}

	// V and Λ are forced to zero in this topology
	for j := 0; j < o.Np; j++ {
		chk.Scalar(tst, io.Sf("V @ %d", j), 1e-17, rsd[o.Index(CompV, j)], 0.01)
		chk.Scalar(tst, io.Sf("Λ @ %d", j), 1e-17, rsd[o.Index(CompL, j)], -1.0)
		chk.Scalar(tst, io.Sf("E @ %d", j), 1e-17, rsd[o.Index(CompE, j)], 0)
		chk.IntAssert(diag[o.Index(CompV, j)], Algebraic)
		chk.IntAssert(diag[o.Index(CompL, j)], Algebraic)
		chk.IntAssert(diag[o.Index(CompE, j)], Algebraic)
	}
}

func Test_resid05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resid05. pseudo-transient term")

	o := testDomain(FreeFlow, "mixture-averaged", 7)
	o.SolveEnergyEqn(AllPoints)

	ndof := o.Nv * o.Np
	x := make([]float64, ndof)
	fillProfile(o, x, testYLeft, testYRight)
	o.SaveLastSolution(x)

	// perturb the temperature at one interior point after saving
	j := 3
	delta := 25.0
	x[o.Index(CompT, j)] += delta

	rsd0 := make([]float64, ndof)
	rsd1 := make([]float64, ndof)
	diag := make([]int, ndof)
	rdt := 100.0
	o.Eval(AllPoints, x, rsd0, diag, 0)
	o.Eval(AllPoints, x, rsd1, diag, rdt)

	// the two residuals differ exactly by rdt·ΔT in the energy equation
	chk.Scalar(tst, "transient energy term", 1e-11,
		rsd0[o.Index(CompT, j)]-rsd1[o.Index(CompT, j)], rdt*delta)

	// algebraic equations carry no transient term
	chk.Scalar(tst, "continuity unchanged", 1e-15,
		rsd0[o.Index(CompU, j)], rsd1[o.Index(CompU, j)])
}
