// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim := ReadSim("data/flame01.sim", "", false)
	if sim == nil {
		tst.Errorf("test failed:\n")
		return
	}

	io.Pfyel("Key    = %v\n", sim.Key)
	io.Pfyel("DirOut = %v\n", sim.DirOut)
	chk.StrAssert(sim.Key, "flame01")
	chk.StrAssert(sim.DirOut, "/tmp/goflame/flame01")
	chk.StrAssert(sim.EncType, "json")

	io.Pfcyan("\nGas.Transport = %v\n", sim.Gas.Transport)
	chk.StrAssert(sim.Gas.Transport, "mixture-averaged")
	chk.Scalar(tst, "pressure", 1e-15, sim.Gas.Pressure, 101325.0)
	chk.IntAssert(len(sim.Gas.Species), 5)
	chk.StrAssert(sim.Gas.Species[2].Name, "CO2")
	chk.Scalar(tst, "molw CO2", 1e-15, sim.Gas.Species[2].Molw, 44.01)
	chk.Vector(tst, "nu", 1e-17, sim.Gas.Reaction.Nu, []float64{-1, -2, 1, 2, 0})

	chk.StrAssert(sim.Domain.Kind, "free-flow")
	if sim.Domain.Energy {
		tst.Errorf("test failed: energy must be off\n")
		return
	}
	chk.Scalar(tst, "slope", 1e-17, sim.Domain.Slope, 0.2)
	chk.IntAssert(sim.Domain.MaxPoints, 400)
	chk.Vector(tst, "tprofile pos", 1e-17, sim.Domain.Tprofile.Pos, []float64{0, 0.3, 0.5, 1})

	z := sim.GridPoints()
	chk.IntAssert(len(z), 11)
	chk.Scalar(tst, "z0", 1e-17, z[0], 0)
	chk.Scalar(tst, "z10", 1e-15, z[10], 0.02)
	chk.Scalar(tst, "z5", 1e-15, z[5], 0.01)

	sol, err := sim.Solution()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(sol.Thermo.NumSpecies(), 5)
	chk.StrAssert(sol.Transport.Model(), "mixture-averaged")
	chk.Scalar(tst, "maxtemp", 1e-15, sol.Thermo.MaxTemp(), 3000.0)
}

func Test_boolvec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boolvec01. scalar collapse of uniform flags")

	v := NewBoolVector([]bool{true, true, true})
	b, err := json.Marshal(v)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("uniform = %s\n", string(b))
	chk.StrAssert(string(b), "true")

	v = NewBoolVector([]bool{true, false, true})
	b, err = json.Marshal(v)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("mixed = %s\n", string(b))
	chk.StrAssert(string(b), "[true,false,true]")

	// scalar form expands to any length
	var w BoolVector
	err = json.Unmarshal([]byte("false"), &w)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	flags, err := w.Expand(4)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(flags), 4)
	for i, f := range flags {
		if f {
			tst.Errorf("test failed: flag %d must be false\n", i)
			return
		}
	}

	// list form must match the requested length
	err = json.Unmarshal([]byte("[true,false]"), &w)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, err = w.Expand(4)
	if err == nil {
		tst.Errorf("test failed: error expected\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_boolmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boolmap01. per-species flags keyed by name")

	names := []string{"CH4", "O2", "N2"}

	m := NewBoolMap(names, []bool{true, true, true})
	b, err := json.Marshal(m)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("uniform = %s\n", string(b))
	chk.StrAssert(string(b), "true")

	m = NewBoolMap(names, []bool{true, false, true})
	b, err = json.Marshal(m)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("mixed = %s\n", string(b))

	var m2 BoolMap
	err = json.Unmarshal(b, &m2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	flags, err := m2.Expand(names)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if flags[0] != true || flags[1] != false || flags[2] != true {
		tst.Errorf("test failed: wrong flags %v\n", flags)
		return
	}

	// species absent from the map default to enabled
	flags, err = m2.Expand([]string{"CH4", "O2", "N2", "AR"})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if !flags[3] {
		tst.Errorf("test failed: absent species must default to enabled\n")
	}
}

func Test_snap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snap01. snapshot round trip through JSON")

	snap := NewSnapshot()
	snap.TransportModel = "multicomponent"
	snap.Phase = &Phase{Name: "gas", Source: "<in-memory>"}
	snap.Grid = []float64{0, 0.01, 0.02}
	snap.SetComponent("T", []float64{300, 1500, 2000})
	snap.SetComponent("velocity", []float64{0.5, 0.8, 1.2})
	soret := true
	snap.SoretEnabled = &soret
	snap.FixedPoint = &FixedPoint{Location: 0.01, Temperature: 1500}
	snap.RefineCriteria = &RefineCriteria{Ratio: 10, Slope: 0.8, Curve: 0.8, Prune: -0.001}

	b, err := snap.Encode()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pfyel("%s\n", string(b))

	var snap2 Snapshot
	err = json.Unmarshal(b, &snap2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.StrAssert(snap2.TransportModel, "multicomponent")
	chk.StrAssert(snap2.Phase.Name, "gas")
	chk.Vector(tst, "grid", 1e-17, snap2.Grid, snap.Grid)
	chk.Strings(tst, "columns", snap2.Columns, []string{"T", "velocity"})
	temp, ok := snap2.Component("T")
	if !ok {
		tst.Errorf("test failed: component T missing\n")
		return
	}
	chk.Vector(tst, "T", 1e-17, temp, []float64{300, 1500, 2000})
	if snap2.SoretEnabled == nil || !*snap2.SoretEnabled {
		tst.Errorf("test failed: Soret flag lost\n")
		return
	}
	chk.Scalar(tst, "fixed location", 1e-17, snap2.FixedPoint.Location, 0.01)
	chk.Scalar(tst, "refine ratio", 1e-17, snap2.RefineCriteria.Ratio, 10)

	if !snap2.HasComponent("velocity") || snap2.HasComponent("lambda") {
		tst.Errorf("test failed: wrong component set\n")
	}
}
