// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/network"
)

// Atmosphere anchors the network: a boundary unit with no upstream peer,
// sourcing fresh air into the inlet duct and receiving the jet-pipe's
// exhaust, whose static pressure it reports back to the Outlet unit to
// close that unit's local solve. It always has everything it needs, so it
// never waits on an upstream pass.
type Atmosphere struct {
	gd network.GasDynamicPorts
	si network.StaticInletPorts

	P0           float64 // ambient static pressure
	T0           float64 // ambient temperature
	WorkFluidIn  gas.Fluid
	WorkFluidOut gas.Fluid

	TStagInInit float64 // initial guess for the exhaust temperature it receives
}

// NewAtmosphere allocates an atmosphere at standard sea-level conditions,
// with kerosene combustion products arriving and fresh air leaving.
func NewAtmosphere() *Atmosphere {
	o := &Atmosphere{
		P0: 1e5, T0: 288, WorkFluidIn: gas.New("kerosene"), WorkFluidOut: gas.New("air"),
		TStagInInit: 600,
	}
	o.gd.Init(o)
	o.si.Init(o)
	return o
}

// Init parses named parameters.
func (o *Atmosphere) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "p0":
			o.P0 = p.V
		case "T0":
			o.T0 = p.V
		case "T_stag_in_init":
			o.TStagInInit = p.V
		default:
			return chk.Err("atmosphere: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *Atmosphere) String() string { return "Atmosphere" }

// AllPorts returns the gas-dynamic ports plus the static-inlet pair.
func (o *Atmosphere) AllPorts() []*network.Port {
	return append(o.gd.AllPorts(), o.si.AllPorts()...)
}

func (o *Atmosphere) GasDynamic() *network.GasDynamicPorts { return &o.gd }

func (o *Atmosphere) StaticInlet() *network.StaticInletPorts { return &o.si }

// CheckInput is always true: an atmosphere has no upstream dependency.
func (o *Atmosphere) CheckInput() bool { return true }

// SetBehaviour resolves the atmosphere's fixed polarities. It reads the
// exhaust's temperature and composition, publishes fresh ambient air
// downstream, and exchanges the static pressure pair with the Outlet unit:
// it reads the static exhaust temperature back and reports its own static
// pressure forward.
func (o *Atmosphere) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.AlphaInlet, o.gd.GFuelInlet, o.gd.GWorkFluidIn, o.gd.PresInlet, o.si.StatTempInlet} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.gd.TempOutlet, o.gd.AlphaOutlet, o.gd.GFuelOutlet, o.gd.GWorkFluidOut, o.gd.PresOutlet, o.si.StatPresInlet} {
		if err := p.MakeOutput(); err != nil {
			return err
		}
	}
	if _, ok := o.gd.TStagIn(); !ok {
		o.gd.TempInlet.SeedInitialGuess(o.TStagInInit)
	}
	return nil
}

// Update publishes the ambient state downstream, resets both work fluids to
// their default state and reports ambient static pressure back to Outlet.
func (o *Atmosphere) Update() {
	if !o.CheckInput() {
		return
	}
	Tin, okT := o.gd.TStagIn()
	o.gd.SetTStagOut(o.T0)
	o.gd.SetPStagOut(o.P0)
	o.gd.SetAlphaOut(math.Inf(1))
	o.gd.SetGFuelOut(0)
	o.gd.SetGOut(1)

	o.WorkFluidIn = gas.New(o.WorkFluidIn.Name())
	o.WorkFluidOut = gas.New(o.WorkFluidOut.Name())
	if okT {
		o.WorkFluidIn.SetT(Tin)
	}
	o.si.SetPStatIn(o.P0)
}
