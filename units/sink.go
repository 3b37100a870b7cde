// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/network"
)

// Sink bleeds a fixed fraction of the flow off for cooling and leakage,
// passing temperature, pressure and composition through unchanged.
type Sink struct {
	gd network.GasDynamicPorts

	GCooling float64 // relative flow bled for turbine blade cooling
	GOutflow float64 // relative flow lost to external leakage
}

// NewSink allocates a sink with default cooling and leakage fractions.
func NewSink() *Sink {
	o := &Sink{GCooling: 0.04, GOutflow: 0.01}
	o.gd.Init(o)
	return o
}

// Init parses named parameters.
func (o *Sink) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "g_cooling":
			o.GCooling = p.V
		case "g_outflow":
			o.GOutflow = p.V
		default:
			return chk.Err("sink: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *Sink) String() string { return "Sink" }

func (o *Sink) AllPorts() []*network.Port { return o.gd.AllPorts() }

func (o *Sink) GasDynamic() *network.GasDynamicPorts { return &o.gd }

// SetBehaviour gives the sink its fixed, unconditional gas-dynamic
// polarities: it always reads upstream and always writes downstream.
func (o *Sink) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.PresInlet, o.gd.GWorkFluidIn, o.gd.AlphaInlet, o.gd.GFuelInlet} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.gd.TempOutlet, o.gd.PresOutlet, o.gd.GWorkFluidOut, o.gd.GFuelOutlet, o.gd.AlphaOutlet} {
		if err := p.MakeOutput(); err != nil {
			return err
		}
	}
	return nil
}

// CheckInput reports whether every gas-dynamic input is available.
func (o *Sink) CheckInput() bool {
	_, okT := o.gd.TStagIn()
	_, okP := o.gd.PStagIn()
	_, okA := o.gd.AlphaIn()
	_, okG := o.gd.GIn()
	_, okF := o.gd.GFuelIn()
	return okT && okP && okA && okG && okF
}

// Update passes the gas state through, subtracting the bled flow.
func (o *Sink) Update() {
	if !o.CheckInput() {
		return
	}
	Tin, _ := o.gd.TStagIn()
	pIn, _ := o.gd.PStagIn()
	alphaIn, _ := o.gd.AlphaIn()
	gIn, _ := o.gd.GIn()
	gFuelIn, _ := o.gd.GFuelIn()
	o.gd.SetAlphaOut(alphaIn)
	o.gd.SetGFuelOut(gFuelIn)
	o.gd.SetTStagOut(Tin)
	o.gd.SetPStagOut(pIn)
	o.gd.SetGOut(gIn - o.GCooling - o.GOutflow)
}
