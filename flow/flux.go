// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

// updateDiffFluxes recomputes the diffusive species mass fluxes at the
// midpoints of cells [j0,j1). In mixture-averaged mode each species' flux is
// driven by its own mole-fraction gradient and a corrective flux is applied
// so that the mass-weighted diffusion velocities sum exactly to zero. In
// multicomponent mode the flux of each species sums the matrix-weighted
// mole-fraction gradients of all species. Thermal diffusion, when enabled,
// subtracts a term proportional to the logarithmic temperature gradient.
func (o *Flow) updateDiffFluxes(x []float64, j0, j1 int) {
	if o.Multi {
		for j := j0; j < j1; j++ {
			dz := o.Z[j+1] - o.Z[j]
			for k := 0; k < o.Nsp; k++ {
				sum := 0.0
				for m := 0; m < o.Nsp; m++ {
					sum += o.wt[m] * o.multidiff[j][k][m] * (o.valX(x, m, j+1) - o.valX(x, m, j))
				}
				o.flux[j][k] = sum * o.diff[k+j*o.Nsp] / dz
			}
		}
	} else {
		for j := j0; j < j1; j++ {
			sum := 0.0
			dz := o.Z[j+1] - o.Z[j]
			for k := 0; k < o.Nsp; k++ {
				o.flux[j][k] = o.diff[k+j*o.Nsp] * (o.valX(x, k, j) - o.valX(x, k, j+1)) / dz
				sum -= o.flux[j][k]
			}
			// correction flux to ensure that Σ_k Y_k·V_k = 0
			for k := 0; k < o.Nsp; k++ {
				o.flux[j][k] += sum * o.valY(x, k, j)
			}
		}
	}

	if o.DoSoret {
		for j := j0; j < j1; j++ {
			gradlogT := 2.0 * (o.valT(x, j+1) - o.valT(x, j)) /
				((o.valT(x, j+1) + o.valT(x, j)) * (o.Z[j+1] - o.Z[j]))
			for k := 0; k < o.Nsp; k++ {
				o.flux[j][k] -= o.dthermal[j][k] * gradlogT
			}
		}
	}
}

// DiffFlux returns the cached diffusive mass flux of species k at the
// midpoint of cell j (for inspection and testing)
func (o *Flow) DiffFlux(k, j int) float64 { return o.flux[j][k] }
