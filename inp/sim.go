// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
// and the structured snapshots written after solving
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/goflame/mdl/gas"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/goflame
	Encoder string `json:"encoder"` // encoder name; e.g. "json"
}

// GasData holds the gas mixture definition
type GasData struct {
	Name      string        `json:"name"`      // phase name; e.g. "gas"
	Pressure  float64       `json:"pressure"`  // operating pressure [Pa]
	MaxTemp   float64       `json:"maxtemp"`   // maximum valid temperature [K]
	Species   []gas.Species `json:"species"`   // species table
	Reaction  *gas.Reaction `json:"reaction"`  // one-step reaction; may be absent for frozen chemistry
	Transport string        `json:"transport"` // transport model: "mixture-averaged" or "multicomponent"
}

// GridData holds the grid definition
type GridData struct {
	Zmin    float64   `json:"zmin"`    // left boundary coordinate [m]
	Zmax    float64   `json:"zmax"`    // right boundary coordinate [m]
	Npoints int       `json:"npoints"` // number of grid points for a uniform grid
	Points  []float64 `json:"points"`  // explicit grid points; overrides zmin/zmax/npoints
}

// DomainData holds the flow domain definition and options
type DomainData struct {

	// domain
	Name string `json:"name"` // domain identifier; e.g. "flame"
	Kind string `json:"kind"` // "axisymmetric-flow", "free-flow" or "unstrained-flow"

	// options
	Energy    bool     `json:"energy"`    // solve the energy equation
	Soret     bool     `json:"soret"`     // include thermal diffusion; requires multicomponent transport
	Radiation bool     `json:"radiation"` // enable the optically thin radiation term
	EpsLeft   float64  `json:"epsleft"`   // left boundary emissivity
	EpsRight  float64  `json:"epsright"`  // right boundary emissivity
	Tprofile  struct { // fixed temperature profile used when the energy equation is off
		Pos  []float64 `json:"pos"`  // normalized positions in [0, 1]
		Temp []float64 `json:"temp"` // temperatures [K]
	} `json:"tprofile"`

	// refinement criteria; zero values keep the defaults
	Ratio     float64 `json:"ratio"`     // maximum size ratio of adjacent intervals
	Slope     float64 `json:"slope"`     // maximum normalized slope
	Curve     float64 `json:"curve"`     // maximum normalized curvature
	Prune     float64 `json:"prune"`     // pruning threshold; negative disables
	MaxPoints int     `json:"maxpoints"` // maximum number of grid points
}

// Simulation holds all simulation data read from a .sim file
type Simulation struct {

	// input data
	Data   Data       `json:"data"`   // global data
	Gas    GasData    `json:"gas"`    // gas mixture definition
	Grid   GridData   `json:"grid"`   // grid definition
	Domain DomainData `json:"domain"` // flow domain definition

	// derived
	Key     string // simulation key; e.g. mysim01 or mysim01-alias
	EncType string // encoder type
	DirOut  string // output directory
}

// SetDefault sets default values for the gas definition
func (o *GasData) SetDefault() {
	o.Name = "gas"
	o.Pressure = gas.OneAtm
	o.MaxTemp = 3000.0
	o.Transport = "mixture-averaged"
}

// SetDefault sets default values for the domain definition
func (o *DomainData) SetDefault() {
	o.Kind = "free-flow"
	o.Energy = true
	o.Prune = -0.001
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Gas.SetDefault()
	o.Domain.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/goflame/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "json" {
		o.EncType = "json"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// check gas definition
	if len(o.Gas.Species) < 1 {
		chk.Panic("ReadSim: simulation file %q has no species", simfilepath)
	}
	if o.Gas.Pressure <= 0 {
		chk.Panic("ReadSim: pressure must be positive. %g is invalid", o.Gas.Pressure)
	}

	// check grid definition
	if len(o.Grid.Points) == 0 {
		if o.Grid.Npoints < 3 {
			chk.Panic("ReadSim: grid needs at least 3 points. npoints=%d is invalid", o.Grid.Npoints)
		}
		if o.Grid.Zmax <= o.Grid.Zmin {
			chk.Panic("ReadSim: grid range is empty: zmin=%g zmax=%g", o.Grid.Zmin, o.Grid.Zmax)
		}
	}

	// check fixed temperature profile
	np, nt := len(o.Domain.Tprofile.Pos), len(o.Domain.Tprofile.Temp)
	if np != nt {
		chk.Panic("ReadSim: tprofile pos and temp must have the same length: %d != %d", np, nt)
	}
	return &o
}

// GridPoints returns the grid coordinates defined by the simulation file
func (o *Simulation) GridPoints() []float64 {
	if len(o.Grid.Points) > 0 {
		return o.Grid.Points
	}
	n := o.Grid.Npoints
	z := make([]float64, n)
	dz := (o.Grid.Zmax - o.Grid.Zmin) / float64(n-1)
	for i := 0; i < n; i++ {
		z[i] = o.Grid.Zmin + float64(i)*dz
	}
	return z
}

// Mixture builds the gas mixture defined by the simulation file
func (o *Simulation) Mixture() *gas.Mixture {
	mix := gas.NewMixture(o.Gas.Name, o.Gas.Species)
	mix.Reac = o.Gas.Reaction
	if o.Gas.MaxTemp > 0 {
		mix.Tmax = o.Gas.MaxTemp
	}
	return mix
}

// Solution builds the complete gas solution, transport included
func (o *Simulation) Solution() (*gas.Solution, error) {
	mix := o.Mixture()
	trans, err := gas.NewTransport(o.Gas.Transport, mix)
	if err != nil {
		return nil, err
	}
	return &gas.Solution{Name: o.Gas.Name, Thermo: mix, Kinetics: mix, Transport: trans}, nil
}
