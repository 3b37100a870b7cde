// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"context"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/units"
)

// Test_solver01 wires a single-shaft cycle (atmosphere, inlet, compressor,
// combustion chamber, turbine, outlet, 2 MW load) and checks it converges
// to a physically sane state: pressure rises through the compressor,
// temperature rises through the chamber, and the turbine delivers positive
// work to the load.
func Test_solver01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("solver01")

	atmo := units.NewAtmosphere()
	inlet := units.NewInlet()
	compr := units.NewCompressor(6)
	comb := units.NewCombustionChamber(1400)
	turb := units.NewTurbine()
	pOutInit := 1.05e5
	turb.PStagOutInit = &pOutInit
	outlet := units.NewOutlet()
	load := units.NewLoad()
	load.Power = 2.0e6

	ns := NewNetworkSolver()
	ns.AddUnit(atmo)
	ns.AddUnit(inlet)
	ns.AddUnit(compr)
	ns.AddUnit(comb)
	ns.AddUnit(turb)
	ns.AddUnit(outlet)
	ns.AddUnit(load)

	if _, err := ns.ConnectGasDynamic(atmo, inlet); err != nil {
		tst.Errorf("connect atmo->inlet failed: %v\n", err)
		return
	}
	if _, err := ns.ConnectGasDynamic(inlet, compr); err != nil {
		tst.Errorf("connect inlet->compr failed: %v\n", err)
		return
	}
	if _, err := ns.ConnectGasDynamic(compr, comb); err != nil {
		tst.Errorf("connect compr->comb failed: %v\n", err)
		return
	}
	if _, err := ns.ConnectGasDynamic(comb, turb); err != nil {
		tst.Errorf("connect comb->turb failed: %v\n", err)
		return
	}
	if _, err := ns.ConnectGasDynamic(turb, outlet); err != nil {
		tst.Errorf("connect turb->outlet failed: %v\n", err)
		return
	}
	if _, err := ns.ConnectStaticGasDynamic(outlet, atmo); err != nil {
		tst.Errorf("connect outlet->atmo (static) failed: %v\n", err)
		return
	}
	if _, err := ns.ConnectMechanical(turb, compr, load); err != nil {
		tst.Errorf("connect turb->{compr,load} failed: %v\n", err)
		return
	}

	coldFluid := func() gas.Fluid { return gas.New("air") }
	hotFluid := func() gas.Fluid { return gas.New("kerosene") }

	if err := ns.Solve(context.Background(), coldFluid, hotFluid); err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}

	pIn, _ := compr.GasDynamic().PStagIn()
	pOut, _ := compr.GasDynamic().PStagOut()
	if pOut <= pIn {
		tst.Errorf("compressor should raise stagnation pressure, got pIn=%v pOut=%v\n", pIn, pOut)
	}

	tIn, _ := comb.GasDynamic().TStagIn()
	tOut, _ := comb.GasDynamic().TStagOut()
	if tOut <= tIn {
		tst.Errorf("chamber should raise stagnation temperature, got Tin=%v Tout=%v\n", tIn, tOut)
	}

	l2, _ := turb.Mechanical().GenLabour2()
	if l2 <= 0 {
		tst.Errorf("turbine should deliver positive power to the load, got %v\n", l2)
	}

	if len(ns.ResidualHistory) == 0 {
		tst.Errorf("expected a non-empty residual history on a converged solve\n")
	}
}
