// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// GetTexLabel returns a TeX label for a result key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "z":
		l += "z"
	case "T":
		l += "T"
	case "velocity":
		l += "u"
	case "spread_rate":
		l += "V"
	case "lambda":
		l += "\\Lambda"
	case "eField":
		l += "E"
	case "D":
		l += "\\rho"
	case "radiative-heat-loss":
		l += "\\dot{q}_{rad}"
	default:
		l += "Y_{" + key + "}"
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
