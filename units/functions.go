// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "math"

// etaCompStag is the adiabatic (total-to-total) compressor efficiency as a
// function of the polytropic one.
func etaCompStag(piStag, k, etaP float64) float64 {
	return (math.Pow(piStag, (k-1)/k) - 1) / (math.Pow(piStag, (k-1)/(k*etaP)) - 1)
}

// etaTurbStag is the adiabatic (total-to-total) turbine efficiency as a
// function of the polytropic one.
func etaTurbStag(piStag, k, etaP float64) float64 {
	return (1 - math.Pow(piStag, (1-k)*etaP/k)) / (1 - math.Pow(piStag, (1-k)/k))
}
