// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import "math"

// MixResult holds the outcome of Mix: the converged mixture temperature,
// a scratch fluid instance left at that temperature and alpha, and the two
// instantaneous specific heats used in the enthalpy balance.
type MixResult struct {
	Temp      float64
	Mixture   Fluid
	CpHotTrue float64
	CpColTrue float64
	Residual  float64
}

// Mix computes the mixture temperature of a hot and a cold stream of a
// combustion-products species by Picard iteration on the enthalpy balance
//
//	c_p,h(T_h)·T_h·g_h + c_p,c(T_c)·T_c·g_c = c̄_p,mix(T_m,α_mix)·(g_h+g_c)·T_m
//
// hot and cold must be distinct instances; they may be different variants
// (a Source mixes combustion products with returned air). A scratch
// instance of hot's variant is allocated for the mixture. The two
// instantaneous specific heats c_p,h and c_p,c are evaluated once, at the
// given hot/cold temperatures, before the loop starts.
func Mix(hot, cold Fluid, Th, Tc, gHot, gCold, alphaMix float64) (res MixResult, err error) {
	mixture := New(hot.Name())
	if hot.HasAlpha() {
		err = mixture.SetAlpha(alphaMix)
		if err != nil {
			return
		}
	}

	hot.SetT(Th)
	cold.SetT(Tc)
	cpHot := hot.Cp()
	cpCold := cold.Cp()

	mixture.SetT(Th)
	tempNew := Th
	residual := 1.0
	for residual >= 1e-3 {
		temp := tempNew
		mixture.SetT(tempNew)
		tempNew = (cpHot*Th*gHot + cpCold*Tc*gCold) / (mixture.CpAv() * (gHot + gCold))
		residual = math.Abs(tempNew-temp) / temp
	}

	res = MixResult{Temp: tempNew, Mixture: mixture, CpHotTrue: cpHot, CpColTrue: cpCold, Residual: residual}
	return
}
