// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/goflame/flow"
	"github.com/cpmech/goflame/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveSnapshot := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGoflame -- 1D reacting flow residual assembly\n")
		io.Pf("Copyright 2017 The Goflame Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save snapshot", "saveSnapshot", saveSnapshot,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath, "", saveSnapshot)
	sol, err := sim.Solution()
	if err != nil {
		chk.Panic("cannot build gas solution:\n%v", err)
	}

	// flow domain
	z := sim.GridPoints()
	dom, err := flow.New(sol, sim.Domain.Name, sim.Domain.Kind, len(z))
	if err != nil {
		chk.Panic("cannot allocate flow domain:\n%v", err)
	}
	err = dom.SetGrid(z)
	if err != nil {
		chk.Panic("cannot set grid:\n%v", err)
	}
	dom.SetPressure(sim.Gas.Pressure)

	// options
	if sim.Domain.Energy {
		dom.SolveEnergyEqn(flow.AllPoints)
	} else {
		dom.FixTemperature(flow.AllPoints)
		if len(sim.Domain.Tprofile.Pos) > 0 {
			dom.SetFixedTempProfile(sim.Domain.Tprofile.Pos, sim.Domain.Tprofile.Temp)
		}
	}
	if sim.Domain.Soret {
		err = dom.EnableSoret(true)
		if err != nil {
			chk.Panic("cannot enable thermal diffusion:\n%v", err)
		}
	}
	if sim.Domain.Radiation {
		dom.EnableRadiation(true)
		err = dom.SetBoundaryEmissivities(sim.Domain.EpsLeft, sim.Domain.EpsRight)
		if err != nil {
			chk.Panic("cannot set emissivities:\n%v", err)
		}
	}
	if sim.Domain.Ratio > 0 {
		dom.Refine.Ratio = sim.Domain.Ratio
	}
	if sim.Domain.Slope > 0 {
		dom.Refine.Slope = sim.Domain.Slope
	}
	if sim.Domain.Curve > 0 {
		dom.Refine.Curve = sim.Domain.Curve
	}
	if sim.Domain.MaxPoints > 0 {
		dom.Refine.MaxPoints = sim.Domain.MaxPoints
	}

	// initial solution and residuals
	ndof := dom.NumComponents() * dom.NumPoints()
	x := make([]float64, ndof)
	rsd := make([]float64, ndof)
	diag := make([]int, ndof)
	dom.InitialSoln(x)
	dom.SaveLastSolution(x)
	err = dom.Finalize(x)
	if err != nil {
		chk.Panic("cannot finalize domain:\n%v", err)
	}
	dom.Eval(flow.AllPoints, x, rsd, diag, 0)

	// residual norms per component
	if verbose {
		io.Pf("\nresidual norms of the initial guess:\n")
		tmp := make([]float64, dom.NumPoints())
		for _, n := range dom.ActiveComponents() {
			for j := 0; j < dom.NumPoints(); j++ {
				tmp[j] = rsd[dom.Index(n, j)]
			}
			io.Pf("  %-12s = %23.15e\n", dom.ComponentName(n), la.VecNorm(tmp))
		}
	}

	// save snapshot
	if saveSnapshot {
		snap := dom.ToSnapshot(x)
		err = snap.Save(sim.DirOut, sim.Key)
		if err != nil {
			chk.Panic("cannot save snapshot:\n%v", err)
		}
		if verbose {
			io.Pf("\nfile <%s/%s.json> written\n", sim.DirOut, sim.Key)
		}
	}
}
