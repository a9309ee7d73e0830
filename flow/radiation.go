// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/goflame/mdl/gas"
)

// StefanBoltz is the Stefan-Boltzmann constant [W/(m²·K⁴)]
const StefanBoltz = 5.670374419e-8

// polynomial coefficients of the Planck-mean absorption coefficients of H2O
// and CO2, in powers of 1000/T
var (
	cH2O = [6]float64{-0.23093, -1.12390, 9.41530, -2.99880, 0.51382, -1.86840e-5}
	cCO2 = [6]float64{18.741, -121.310, 273.500, -194.050, 56.310, -5.8169}
)

// computeRadiation fills the radiative-loss cache at points [jmin,jmax) using
// an optically-thin model: the Planck-mean absorption coefficient is built
// from the local partial pressures of H2O and CO2, and each point radiates
// against the two boundaries weighted by their emissivities. Species not
// present in the composition contribute zero.
func (o *Flow) computeRadiation(x []float64, jmin, jmax int) {

	// reference pressure of the absorption-coefficient fits
	kPref := 1.0 * gas.OneAtm

	// boundary contributions
	radLeft := o.EpsLeft * StefanBoltz * math.Pow(o.valT(x, 0), 4)
	radRight := o.EpsRight * StefanBoltz * math.Pow(o.valT(x, o.Np-1), 4)

	for j := jmin; j < jmax; j++ {
		kP := 0.0
		if o.kRad[1] >= 0 { // H2O
			kH2O := 0.0
			for n := 0; n <= 5; n++ {
				kH2O += cH2O[n] * math.Pow(1000/o.valT(x, j), float64(n))
			}
			kH2O /= kPref
			kP += o.Press * o.valX(x, o.kRad[1], j) * kH2O
		}
		if o.kRad[0] >= 0 { // CO2
			kCO2 := 0.0
			for n := 0; n <= 5; n++ {
				kCO2 += cCO2[n] * math.Pow(1000/o.valT(x, j), float64(n))
			}
			kCO2 /= kPref
			kP += o.Press * o.valX(x, o.kRad[0], j) * kCO2
		}
		o.qdotRad[j] = 2 * kP * (2*StefanBoltz*math.Pow(o.valT(x, j), 4) - radLeft - radRight)
	}
}

// RadiativeLoss returns the cached radiative heat loss at point j
func (o *Flow) RadiativeLoss(j int) float64 { return o.qdotRad[j] }
