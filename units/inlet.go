// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/network"
)

// Inlet is the compressor intake duct, recovering a fixed fraction of
// stagnation pressure as the flow slows from the atmosphere.
type Inlet struct {
	gd network.GasDynamicPorts

	Sigma     float64 // stagnation pressure recovery coefficient
	WorkFluid gas.Fluid
}

// NewInlet allocates an inlet with default recovery and an air work fluid.
func NewInlet() *Inlet {
	o := &Inlet{Sigma: 0.99, WorkFluid: gas.New("air")}
	o.gd.Init(o)
	return o
}

// Init parses named parameters.
func (o *Inlet) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "sigma":
			o.Sigma = p.V
		default:
			return chk.Err("inlet: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *Inlet) String() string { return "Inlet" }

func (o *Inlet) AllPorts() []*network.Port { return o.gd.AllPorts() }

func (o *Inlet) GasDynamic() *network.GasDynamicPorts { return &o.gd }

// SetBehaviour gives the inlet its fixed, unconditional gas-dynamic
// polarities.
func (o *Inlet) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.PresInlet, o.gd.AlphaInlet, o.gd.GWorkFluidIn, o.gd.GFuelInlet} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.gd.TempOutlet, o.gd.PresOutlet, o.gd.AlphaOutlet, o.gd.GFuelOutlet, o.gd.GWorkFluidOut} {
		if err := p.MakeOutput(); err != nil {
			return err
		}
	}
	return nil
}

// CheckInput reports whether every gas-dynamic input is available.
func (o *Inlet) CheckInput() bool {
	_, okT := o.gd.TStagIn()
	_, okP := o.gd.PStagIn()
	_, okA := o.gd.AlphaIn()
	_, okG := o.gd.GIn()
	_, okF := o.gd.GFuelIn()
	return okT && okP && okA && okG && okF
}

// Update recovers pressure and passes the rest of the gas state through.
func (o *Inlet) Update() {
	if !o.CheckInput() {
		return
	}
	Tin, _ := o.gd.TStagIn()
	pIn, _ := o.gd.PStagIn()
	alphaIn, _ := o.gd.AlphaIn()
	gIn, _ := o.gd.GIn()
	gFuelIn, _ := o.gd.GFuelIn()
	o.gd.SetPStagOut(pIn * o.Sigma)
	o.gd.SetTStagOut(Tin)
	o.gd.SetAlphaOut(alphaIn)
	o.gd.SetGFuelOut(gFuelIn)
	o.gd.SetGOut(gIn)
}
