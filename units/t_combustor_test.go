// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/turbocycle/network"
)

// Test_combustor01 feeds a combustion chamber placed upstream of the power
// turbine (pressure resolves forward) a bare upstream state and checks the
// fuel-conservation law of §8: g_out = g_in*(1+g_fuel_prime) with
// g_fuel_prime >= 0 whenever T_gas > T_in, α decreasing from the inlet
// value, and stagnation pressure dropping by exactly σ.
func Test_combustor01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("combustor01")

	up := newFakeUpstream()
	comb := NewCombustionChamber(1400)

	connectGD(up, comb)
	connectGD(comb, newFakeUpstream())
	for _, p := range []*network.Port{up.gd.TempOutlet, up.gd.PresOutlet, up.gd.AlphaOutlet, up.gd.GWorkFluidOut, up.gd.GFuelOutlet} {
		if err := p.MakeOutput(); err != nil {
			tst.Errorf("fake upstream port resolution failed: %v\n", err)
			return
		}
	}
	if err := comb.SetBehaviour(); err != nil {
		tst.Errorf("comb.SetBehaviour failed: %v\n", err)
		return
	}
	if !comb.CheckUpstreamBehaviour() {
		tst.Errorf("a chamber fed by a plain upstream unit with no pressure guess should resolve upstream\n")
		return
	}

	up.gd.TempOutlet.Set(600)
	up.gd.PresOutlet.Set(6e5)
	up.gd.AlphaOutlet.Set(math.Inf(1))
	up.gd.GWorkFluidOut.Set(1.0)
	up.gd.GFuelOutlet.Set(0.0)

	comb.Update()

	if comb.GFuelPrime() <= 0 {
		tst.Errorf("chamber should inject positive fuel fraction when T_gas > T_in, got %v\n", comb.GFuelPrime())
	}

	gIn, _ := comb.GasDynamic().GIn()
	gOut, _ := comb.GasDynamic().GWorkFluidOut.Get()
	if math.Abs(gOut-gIn*(1+comb.GFuelPrime())) > 1e-9 {
		tst.Errorf("fuel conservation violated: gOut=%v want %v\n", gOut, gIn*(1+comb.GFuelPrime()))
	}

	alphaOut, _ := comb.GasDynamic().AlphaOutlet.Get()
	if math.IsInf(alphaOut, 1) || alphaOut <= 0 {
		tst.Errorf("combustion should report a finite positive excess-air ratio, got %v\n", alphaOut)
	}

	pIn, _ := comb.GasDynamic().PStagIn()
	pOut, _ := comb.GasDynamic().PStagOut()
	if math.Abs(pOut-pIn*comb.SigmaComb) > 1e-6 {
		tst.Errorf("chamber should drop stagnation pressure by exactly sigma, got pIn=%v pOut=%v sigma=%v\n", pIn, pOut, comb.SigmaComb)
	}

	Tout, _ := comb.GasDynamic().TStagOut()
	if Tout != comb.TGas {
		tst.Errorf("chamber should reach its target outlet temperature, got %v want %v\n", Tout, comb.TGas)
	}
}
