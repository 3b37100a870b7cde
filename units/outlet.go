// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/gasdyn"
	"github.com/cpmech/turbocycle/network"
)

// Outlet is the jet-pipe exit duct. It converts the stagnation state handed
// down the gas-dynamic chain into a static exit condition at a fixed exit
// velocity, reading the ambient static pressure back from the downstream
// Atmosphere unit through the static-port pair. Both its pressure ports
// resolve as Outputs: the outlet derives p_stag_in from p_stag_out, which
// in turn comes from the static pressure Atmosphere hands back, so neither
// pressure value is ever read as an ordinary gas-dynamic input here.
type Outlet struct {
	gd network.GasDynamicPorts
	so network.StaticOutletPorts

	Sigma     float64 // stagnation pressure recovery coefficient
	COut      float64 // exit velocity
	WorkFluid gas.Fluid

	AcrOut float64
	LamOut float64
}

// NewOutlet allocates an outlet with a default recovery coefficient, exit
// velocity and a kerosene combustion-products work fluid.
func NewOutlet() *Outlet {
	o := &Outlet{Sigma: 0.99, COut: 100, WorkFluid: gas.New("kerosene")}
	o.gd.Init(o)
	o.so.Init(o)
	return o
}

// Init parses named parameters.
func (o *Outlet) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "sigma":
			o.Sigma = p.V
		case "c_out":
			o.COut = p.V
		default:
			return chk.Err("outlet: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *Outlet) String() string { return "Outlet" }

// AllPorts returns the gas-dynamic ports plus the static-outlet pair.
func (o *Outlet) AllPorts() []*network.Port {
	return append(o.gd.AllPorts(), o.so.AllPorts()...)
}

func (o *Outlet) GasDynamic() *network.GasDynamicPorts { return &o.gd }

func (o *Outlet) StaticOutlet() *network.StaticOutletPorts { return &o.so }

// SetBehaviour resolves the outlet's fixed polarities. Both pressure ports
// publish Outward: pres_outlet (and, through it, pres_inlet) are derived
// from the static pressure the downstream Atmosphere unit reports back.
func (o *Outlet) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.AlphaInlet, o.gd.GFuelInlet, o.gd.GWorkFluidIn, o.so.StatPresOutlet} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.gd.TempOutlet, o.gd.AlphaOutlet, o.gd.GFuelOutlet, o.gd.GWorkFluidOut, o.so.StatTempOutlet} {
		if err := p.MakeOutput(); err != nil {
			return err
		}
	}
	if err := o.gd.PresInlet.MakeOutput(); err != nil {
		return err
	}
	if err := o.gd.PresOutlet.MakeOutput(); err != nil {
		return err
	}
	return nil
}

// CheckInput reports whether the full exit-state calculation can run.
func (o *Outlet) CheckInput() bool {
	_, okT := o.gd.TStagIn()
	_, okP := o.so.PStatOut()
	_, okA := o.gd.AlphaIn()
	_, okG := o.gd.GIn()
	_, okF := o.gd.GFuelIn()
	return okT && okP && okA && okG && okF
}

// checkInputPartially reports whether the previous pass's reduced velocity
// can be reused to re-derive pressure even though a full update can't run.
func (o *Outlet) checkInputPartially() bool {
	_, ok := o.so.PStatOut()
	return ok
}

// Update converts the stagnation exit state to a static one at the fixed
// exit velocity, then back-propagates stagnation pressure.
func (o *Outlet) Update() {
	if o.CheckInput() {
		Tin, _ := o.gd.TStagIn()
		pOut, _ := o.so.PStatOut()
		alphaIn, _ := o.gd.AlphaIn()
		gIn, _ := o.gd.GIn()
		gFuelIn, _ := o.gd.GFuelIn()

		o.WorkFluid.SetT(Tin)
		o.gd.SetTStagOut(Tin)
		o.gd.SetGOut(gIn)
		o.gd.SetAlphaOut(alphaIn)
		o.gd.SetGFuelOut(gFuelIn)

		o.AcrOut = gasdyn.Acr(Tin, o.WorkFluid.K(), o.WorkFluid.R())
		o.LamOut = o.COut / o.AcrOut
		pStagOut := pOut / gasdyn.PiLam(o.LamOut, o.WorkFluid.K())
		o.so.SetTStatOut(Tin * gasdyn.TauLam(o.LamOut, o.WorkFluid.K()))
		o.gd.SetPStagOut(pStagOut)
		o.gd.PresInlet.Set(pStagOut / o.Sigma)
	} else if o.checkInputPartially() {
		pOut, _ := o.so.PStatOut()
		pStagOut := pOut / gasdyn.PiLam(o.LamOut, o.WorkFluid.K())
		o.gd.SetPStagOut(pStagOut)
		o.gd.PresInlet.Set(pStagOut / o.Sigma)
	}
}
