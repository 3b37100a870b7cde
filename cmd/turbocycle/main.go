// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/inp"
	"github.com/cpmech/turbocycle/network"
	"github.com/cpmech/turbocycle/solver"
	"github.com/cpmech/turbocycle/units"
)

// gasDynamicUnit mirrors the method set package solver requires to connect
// two gas-dynamic units; declared locally so main can assert a concrete
// unit into it without importing solver's unexported interface.
type gasDynamicUnit interface {
	network.Unit
	GasDynamic() *network.GasDynamicPorts
}

type staticOutletUnit interface {
	gasDynamicUnit
	StaticOutlet() *network.StaticOutletPorts
}

type staticInletUnit interface {
	gasDynamicUnit
	StaticInlet() *network.StaticInletPorts
}

type mechConsumerUnit interface {
	network.Unit
	Mechanical() *network.MechConsumer
}

type mechGeneratorUnit interface {
	network.Unit
	Mechanical() *network.MechGenerator
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			utl.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	utl.PfWhite("\nturbocycle -- steady-state gas-turbine cycle solver\n\n")
	utl.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	utl.Pf("Use of this source code is governed by a BSD-style\n")
	utl.Pf("license that can be found in the LICENSE file.\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		utl.Panic("please provide a topology JSON filename. Ex.: turbocycle cycle.json\n")
	}
	fnamepath := flag.Arg(0)

	if err := inp.InitLogFile(".", "turbocycle"); err != nil {
		utl.Panic("cannot open log file: %v\n", err)
	}
	defer inp.FlushLog()

	topo, err := inp.ReadTopology(fnamepath)
	if err != nil {
		utl.Panic("%v\n", err)
	}

	byName, err := inp.BuildUnits(topo)
	if err != nil {
		utl.Panic("%v\n", err)
	}

	ns := solver.NewNetworkSolver()
	for _, u := range byName {
		ns.AddUnit(u)
	}

	if err := wireConnections(ns, byName, topo); err != nil {
		utl.Panic("%v\n", err)
	}

	coldFluid := func() gas.Fluid { return gas.New("air") }
	hotFluid := func() gas.Fluid { return gas.New("kerosene") }

	if err := ns.Solve(context.Background(), coldFluid, hotFluid); err != nil {
		utl.Panic("solve failed: %v\n", err)
	}

	utl.PfWhite("\nconverged after %d outer iterations\n", len(ns.ResidualHistory))
	printSummary(byName, topo)
}

// wireConnections dispatches each ConnectionData entry to the matching
// solver Connect method, asserting the named units into the concrete
// interface each connection kind requires.
func wireConnections(ns *solver.NetworkSolver, byName map[string]network.Unit, topo *inp.Topology) error {
	for _, cd := range topo.Connections {
		switch cd.Kind {
		case "gas_dynamic":
			up, down, err := lookupPair(byName, cd.Upstream, cd.Downstream)
			if err != nil {
				return err
			}
			upGD, okUp := up.(gasDynamicUnit)
			downGD, okDown := down.(gasDynamicUnit)
			if !okUp || !okDown {
				return chk.Err("inp: gas_dynamic connection %s->%s: not gas-dynamic units\n", cd.Upstream, cd.Downstream)
			}
			if _, err := ns.ConnectGasDynamic(upGD, downGD); err != nil {
				return err
			}

		case "static_gas_dynamic":
			up, down, err := lookupPair(byName, cd.Upstream, cd.Downstream)
			if err != nil {
				return err
			}
			upSO, okUp := up.(staticOutletUnit)
			downSI, okDown := down.(staticInletUnit)
			if !okUp || !okDown {
				return chk.Err("inp: static_gas_dynamic connection %s->%s: not a static outlet/inlet pair\n", cd.Upstream, cd.Downstream)
			}
			if _, err := ns.ConnectStaticGasDynamic(upSO, downSI); err != nil {
				return err
			}

		case "mechanical":
			gen, ok := byName[cd.Generator]
			if !ok {
				return chk.Err("inp: unknown unit %q in mechanical connection\n", cd.Generator)
			}
			c1, ok := byName[cd.Consumer1]
			if !ok {
				return chk.Err("inp: unknown unit %q in mechanical connection\n", cd.Consumer1)
			}
			c2, ok := byName[cd.Consumer2]
			if !ok {
				return chk.Err("inp: unknown unit %q in mechanical connection\n", cd.Consumer2)
			}
			genMG, okGen := gen.(mechGeneratorUnit)
			c1MC, ok1 := c1.(mechConsumerUnit)
			c2MC, ok2 := c2.(mechConsumerUnit)
			if !okGen || !ok1 || !ok2 {
				return chk.Err("inp: mechanical connection %s involves a non-mechanical unit\n", cd.Generator)
			}
			if _, err := ns.ConnectMechanical(genMG, c1MC, c2MC); err != nil {
				return err
			}

		default:
			return chk.Err("inp: unknown connection kind %q\n", cd.Kind)
		}
	}
	return nil
}

func lookupPair(byName map[string]network.Unit, upName, downName string) (network.Unit, network.Unit, error) {
	up, ok := byName[upName]
	if !ok {
		return nil, nil, chk.Err("inp: unknown unit %q referenced as upstream\n", upName)
	}
	down, ok := byName[downName]
	if !ok {
		return nil, nil, chk.Err("inp: unknown unit %q referenced as downstream\n", downName)
	}
	return up, down, nil
}

// printSummary walks the converged units and prints the observables a
// template-based reporting layer would otherwise render.
func printSummary(byName map[string]network.Unit, topo *inp.Topology) {
	for _, ud := range topo.Units {
		u := byName[ud.Name]
		utl.Pf("  %-16s %-20s", ud.Name, u.String())
		switch v := u.(type) {
		case *units.Compressor:
			Tout, _ := v.GasDynamic().TStagIn()
			utl.Pf("pi_c=%.3f  T_in*=%.2f\n", v.PiC, Tout)
		case *units.Turbine:
			l1, _ := v.Mechanical().GenLabour1()
			l2, _ := v.Mechanical().GenLabour2()
			utl.Pf("L1=%.0f  L2=%.0f\n", l1, l2)
		case *units.CombustionChamber:
			utl.Pf("T_gas=%.1f  g_fuel'=%.4f\n", v.TGas, v.GFuelPrime())
		default:
			utl.Pf("\n")
		}
	}
}
