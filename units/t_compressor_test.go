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

// Test_compressor01 feeds a compressor a bare upstream state and checks it
// raises stagnation pressure by exactly PiC, raises temperature, consumes
// positive specific work, and passes composition and flow through
// unchanged (mass conservation across a unit with no bleed or injection).
func Test_compressor01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("compressor01")

	up := newFakeUpstream()
	compr := NewCompressor(6)

	connectGD(up, compr)
	connectGD(compr, newFakeUpstream())
	peer := network.NewPort(&fakeGenUnit{}, network.RoleOutlet)
	s := network.NewStream()
	peer.SetConnection(s)
	compr.Mechanical().LabourConsume.SetConnection(s)

	for _, p := range []*network.Port{up.gd.TempOutlet, up.gd.PresOutlet, up.gd.AlphaOutlet, up.gd.GWorkFluidOut, up.gd.GFuelOutlet} {
		if err := p.MakeOutput(); err != nil {
			tst.Errorf("fake upstream port resolution failed: %v\n", err)
			return
		}
	}
	if err := compr.SetBehaviour(); err != nil {
		tst.Errorf("compr.SetBehaviour failed: %v\n", err)
		return
	}

	up.gd.TempOutlet.Set(288)
	up.gd.PresOutlet.Set(1e5)
	up.gd.AlphaOutlet.Set(math.Inf(1)) // air carries no excess-air ratio
	up.gd.GWorkFluidOut.Set(1.0)
	up.gd.GFuelOutlet.Set(0.0)

	compr.Update()

	Tin, _ := compr.GasDynamic().TStagIn()
	Tout, _ := compr.GasDynamic().TStagOut()
	if Tout <= Tin {
		tst.Errorf("compressor should raise stagnation temperature, got Tin=%v Tout=%v\n", Tin, Tout)
	}

	pIn, _ := compr.GasDynamic().PStagIn()
	pOut, _ := compr.GasDynamic().PStagOut()
	if pOut != pIn*compr.PiC {
		tst.Errorf("compressor should raise stagnation pressure by exactly pi_c, got pIn=%v pOut=%v pi_c=%v\n", pIn, pOut, compr.PiC)
	}

	L, ok := compr.Mechanical().ConsumableLabour()
	if !ok || L <= 0 {
		tst.Errorf("compressor should consume positive specific work, got %v ok=%v\n", L, ok)
	}

	gIn, _ := compr.GasDynamic().GIn()
	gOut, _ := compr.GasDynamic().GWorkFluidOut.Get()
	if gOut != gIn {
		tst.Errorf("compressor should pass flow through unchanged, got gIn=%v gOut=%v\n", gIn, gOut)
	}
}
