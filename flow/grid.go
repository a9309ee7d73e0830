// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

// SetGrid replaces the spatial mesh. The points must be strictly increasing;
// otherwise an InvalidGridError is returned and the prior grid and derived
// arrays are left untouched. On success every per-point and per-cell array is
// resized and the property caches are invalidated.
func (o *Flow) SetGrid(z []float64) (err error) {
	if len(z) < 2 {
		return errGrid(o.ID, "at least two grid points are required; got %d", len(z))
	}
	for j := 1; j < len(z); j++ {
		if z[j] <= z[j-1] {
			return errGrid(o.ID, "grid points must be monotonically increasing; z[%d]=%g, z[%d]=%g",
				j-1, z[j-1], j, z[j])
		}
	}
	o.resize(len(z))
	o.Z[0] = z[0]
	for j := 1; j < o.Np; j++ {
		o.Z[j] = z[j]
		o.Dz[j-1] = z[j] - z[j-1]
	}
	return
}

// Grid returns the position of point j
func (o *Flow) Grid(j int) float64 { return o.Z[j] }
