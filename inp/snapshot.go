// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Phase identifies the gas phase a snapshot belongs to
type Phase struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// RefineCriteria holds the grid-refinement criteria stored in snapshots
type RefineCriteria struct {
	Ratio     float64 `json:"ratio"`
	Slope     float64 `json:"slope"`
	Curve     float64 `json:"curve"`
	Prune     float64 `json:"prune"`
	GridMin   float64 `json:"grid-min,omitempty"`
	MaxPoints int     `json:"max-points,omitempty"`
}

// FixedPoint holds the free-flame anchor stored in snapshots
type FixedPoint struct {
	Location    float64 `json:"location"`
	Temperature float64 `json:"temperature"`
}

// BoolVector serializes a per-point boolean sequence, collapsing to a single
// scalar when all entries agree. The per-point sequence remains the primary
// representation; the collapse happens only at this serialization boundary.
type BoolVector struct {
	scalar *bool
	list   []bool
}

// NewBoolVector returns a BoolVector for the given per-point flags
func NewBoolVector(flags []bool) *BoolVector {
	uniform := true
	for _, f := range flags {
		if f != flags[0] {
			uniform = false
			break
		}
	}
	if uniform {
		v := flags[0]
		return &BoolVector{scalar: &v}
	}
	list := make([]bool, len(flags))
	copy(list, flags)
	return &BoolVector{list: list}
}

// Expand returns the per-point flags for n points
func (o *BoolVector) Expand(n int) ([]bool, error) {
	if o.scalar != nil {
		flags := make([]bool, n)
		for i := range flags {
			flags[i] = *o.scalar
		}
		return flags, nil
	}
	if len(o.list) != n {
		return nil, chk.Err("boolean vector has %d entries but %d are required", len(o.list), n)
	}
	return o.list, nil
}

// MarshalJSON encodes either the scalar or the full list
func (o *BoolVector) MarshalJSON() ([]byte, error) {
	if o.scalar != nil {
		return json.Marshal(*o.scalar)
	}
	return json.Marshal(o.list)
}

// UnmarshalJSON accepts a scalar boolean or a list of booleans
func (o *BoolVector) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		o.scalar = &v
		o.list = nil
		return nil
	}
	o.scalar = nil
	return json.Unmarshal(b, &o.list)
}

// BoolMap serializes per-species boolean flags, collapsing to a scalar when
// all species agree and keying by species name otherwise
type BoolMap struct {
	scalar *bool
	byName map[string]bool
}

// NewBoolMap returns a BoolMap for the given species names and flags
func NewBoolMap(names []string, flags []bool) *BoolMap {
	uniform := true
	for _, f := range flags {
		if f != flags[0] {
			uniform = false
			break
		}
	}
	if uniform {
		v := flags[0]
		return &BoolMap{scalar: &v}
	}
	m := make(map[string]bool)
	for k, name := range names {
		m[name] = flags[k]
	}
	return &BoolMap{byName: m}
}

// Expand returns the per-species flags in the order of names. Species absent
// from the map default to true.
func (o *BoolMap) Expand(names []string) ([]bool, error) {
	flags := make([]bool, len(names))
	if o.scalar != nil {
		for i := range flags {
			flags[i] = *o.scalar
		}
		return flags, nil
	}
	for k, name := range names {
		f, ok := o.byName[name]
		if !ok {
			f = true
		}
		flags[k] = f
	}
	return flags, nil
}

// MarshalJSON encodes either the scalar or the name-keyed map
func (o *BoolMap) MarshalJSON() ([]byte, error) {
	if o.scalar != nil {
		return json.Marshal(*o.scalar)
	}
	return json.Marshal(o.byName)
}

// UnmarshalJSON accepts a scalar boolean or a map of booleans keyed by name
func (o *BoolMap) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		o.scalar = &v
		o.byName = nil
		return nil
	}
	o.scalar = nil
	return json.Unmarshal(b, &o.byName)
}

// Snapshot is the structured state of one solved (or partially solved) flow
// domain: metadata, the grid, and one value array per active solution
// component. Optional metadata is held by pointers so that absent keys
// round-trip as absent and restore applies defaults.
type Snapshot struct {
	TransportModel   string               `json:"transport-model,omitempty"`
	Phase            *Phase               `json:"phase,omitempty"`
	RadiationEnabled *bool                `json:"radiation-enabled,omitempty"`
	EmissivityLeft   *float64             `json:"emissivity-left,omitempty"`
	EmissivityRight  *float64             `json:"emissivity-right,omitempty"`
	EnergyEnabled    *BoolVector          `json:"energy-enabled,omitempty"`
	SoretEnabled     *bool                `json:"Soret-enabled,omitempty"`
	SpeciesEnabled   *BoolMap             `json:"species-enabled,omitempty"`
	RefineCriteria   *RefineCriteria      `json:"refine-criteria,omitempty"`
	FixedPoint       *FixedPoint          `json:"fixed-point,omitempty"`
	Grid             []float64            `json:"grid"`
	Columns          []string             `json:"columns"`
	Components       map[string][]float64 `json:"components"`
}

// NewSnapshot returns an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{Components: make(map[string][]float64)}
}

// SetComponent stores one component array, keeping column order
func (o *Snapshot) SetComponent(name string, data []float64) {
	if _, ok := o.Components[name]; !ok {
		o.Columns = append(o.Columns, name)
	}
	o.Components[name] = data
}

// Component returns the array of the named component
func (o *Snapshot) Component(name string) (data []float64, ok bool) {
	data, ok = o.Components[name]
	return
}

// HasComponent tells whether the named component is present
func (o *Snapshot) HasComponent(name string) bool {
	_, ok := o.Components[name]
	return ok
}

// Encode writes the snapshot as indented JSON
func (o *Snapshot) Encode() ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// Save writes the snapshot to dirout/fnkey.json
func (o *Snapshot) Save(dirout, fnkey string) (err error) {
	b, err := o.Encode()
	if err != nil {
		return chk.Err("cannot encode snapshot:\n%v", err)
	}
	io.WriteStringToFileD(dirout, fnkey+".json", string(b))
	return
}

// ReadSnapshot reads a snapshot from a JSON file
func ReadSnapshot(path string) (o *Snapshot, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read snapshot file %q:\n%v", path, err)
	}
	o = NewSnapshot()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode snapshot file %q:\n%v", path, err)
	}
	return
}
