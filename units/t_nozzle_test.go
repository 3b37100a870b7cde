// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/turbocycle/network"
)

// Test_nozzle01 wires a bare upstream unit and an atmosphere to a full
// extension nozzle and checks it expands the gas down to the reported
// ambient static pressure, producing a positive exit velocity and a
// stagnation exit pressure lower than the inlet one.
func Test_nozzle01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("nozzle01")

	up := newFakeUpstream()
	nozzle := NewFullExtensionNozzle()
	atmo := NewAtmosphere()

	connectGD(up, nozzle)
	connectGD(nozzle, atmo)
	connectGD(atmo, newFakeUpstream())
	so, si := nozzle.StaticOutlet(), atmo.StaticInlet()
	sStat := network.NewStream()
	so.StatTempOutlet.SetConnection(sStat)
	si.StatTempInlet.SetConnection(sStat)
	pStat := network.NewStream()
	si.StatPresInlet.SetConnection(pStat)
	so.StatPresOutlet.SetConnection(pStat)

	for _, p := range []*network.Port{up.gd.TempOutlet, up.gd.PresOutlet, up.gd.AlphaOutlet, up.gd.GWorkFluidOut, up.gd.GFuelOutlet} {
		if err := p.MakeOutput(); err != nil {
			tst.Errorf("fake upstream port resolution failed: %v\n", err)
			return
		}
	}
	for i := 0; i < 5; i++ {
		if err := atmo.SetBehaviour(); err != nil {
			tst.Errorf("atmo.SetBehaviour failed: %v\n", err)
			return
		}
		if err := nozzle.SetBehaviour(); err != nil {
			tst.Errorf("nozzle.SetBehaviour failed: %v\n", err)
			return
		}
	}

	up.gd.TempOutlet.Set(900)
	up.gd.PresOutlet.Set(3e5)
	up.gd.AlphaOutlet.Set(2.5)
	up.gd.GWorkFluidOut.Set(1.02)
	up.gd.GFuelOutlet.Set(0.02)

	atmo.Update()
	nozzle.Update()

	pIn, _ := nozzle.GasDynamic().PStagIn()
	pOut, okP := nozzle.GasDynamic().PStagOut()
	if !okP {
		tst.Errorf("nozzle should have published a stagnation exit pressure\n")
		return
	}
	if pOut >= pIn {
		tst.Errorf("expansion should drop stagnation pressure, got pIn=%v pOut=%v\n", pIn, pOut)
	}
	if nozzle.cOut <= 0 {
		tst.Errorf("nozzle should have computed a positive exit velocity, got %v\n", nozzle.cOut)
	}
}
