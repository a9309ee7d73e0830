// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements results extraction and plotting of flame profiles
package out

import (
	"github.com/cpmech/goflame/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Global variables
var (
	Snap   *inp.Snapshot // snapshot with loaded results
	Splots []*SplotDat   // all subplots
	Csplot *SplotDat     // current subplot
)

// Start loads results from a snapshot file
func Start(snapshotPath string) {
	snap, err := inp.ReadSnapshot(snapshotPath)
	if err != nil {
		chk.Panic("cannot start post-processing:\n%v", err)
	}
	StartWithSnapshot(snap)
}

// StartWithSnapshot loads results from an in-memory snapshot
func StartWithSnapshot(snap *inp.Snapshot) {
	Snap = snap
	Splots = nil
	Csplot = nil
}

// GetRes returns the profile of one result key. The key "z" returns the grid;
// any other key must name a snapshot component such as "T", "velocity" or a
// species name.
func GetRes(key string) []float64 {
	if Snap == nil {
		chk.Panic("results must be loaded with Start before calling GetRes")
	}
	if key == "z" {
		return Snap.Grid
	}
	data, ok := Snap.Component(key)
	if !ok {
		chk.Panic("cannot find result key %q in snapshot", key)
	}
	return data
}

// Keys returns all available result keys in column order
func Keys() []string {
	if Snap == nil {
		return nil
	}
	return Snap.Columns
}

// Table formats selected profiles as a text table with one row per grid
// point. Keys may include "z"
func Table(keys []string) string {
	cols := make([][]float64, len(keys))
	buf := ""
	for i, key := range keys {
		cols[i] = GetRes(key)
		buf += io.Sf("%23s", key)
	}
	buf += "\n"
	for j := 0; j < len(Snap.Grid); j++ {
		for i := range keys {
			buf += io.Sf("%23.15e", cols[i][j])
		}
		buf += "\n"
	}
	return buf
}

// SaveTable writes the text table of selected profiles to dirout/fnkey.res
func SaveTable(keys []string, dirout, fnkey string) {
	io.WriteFileSD(dirout, fnkey+".res", Table(keys))
}
