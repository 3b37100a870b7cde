// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/network"
)

// Source returns a bled-off coolant stream to the main flow, mixing the
// inlet gas with a return stream at its own temperature and flow fraction.
// Like a CombustionChamber its pressure pair direction depends on where it
// sits relative to the power turbine, but unlike a chamber it never needs a
// seeded guess: a Source never originates the backward propagation, it only
// relays whichever direction its neighbours have already resolved.
type Source struct {
	gd network.GasDynamicPorts

	GReturn         float64 // relative flow rate of the returned coolant
	ReturnFluid     gas.Fluid
	ReturnFluidTemp float64
	WorkFluid       gas.Fluid
}

// NewSource allocates a source with a kerosene main-flow fluid and an air
// return stream.
func NewSource() *Source {
	o := &Source{GReturn: 0.01, ReturnFluid: gas.New("air"), ReturnFluidTemp: 700, WorkFluid: gas.New("kerosene")}
	o.gd.Init(o)
	return o
}

// Init parses named parameters.
func (o *Source) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "g_return":
			o.GReturn = p.V
		case "return_fluid_temp":
			o.ReturnFluidTemp = p.V
		default:
			return chk.Err("source: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *Source) String() string { return "Source" }

func (o *Source) AllPorts() []*network.Port { return o.gd.AllPorts() }

func (o *Source) GasDynamic() *network.GasDynamicPorts { return &o.gd }

// CheckUpstreamBehaviour is true once the source has resolved to pass
// pressure downstream (it sits upstream of the power turbine).
func (o *Source) CheckUpstreamBehaviour() bool {
	return o.gd.PresInlet.Polarity() == network.PolarityInput || o.gd.PresOutlet.Polarity() == network.PolarityOutput
}

// CheckDownstreamBehaviour is true once the source has resolved to pass
// pressure upstream, against the flow.
func (o *Source) CheckDownstreamBehaviour() bool {
	return o.gd.PresInlet.Polarity() == network.PolarityOutput || o.gd.PresOutlet.Polarity() == network.PolarityInput
}

// SetBehaviour resolves the source's fixed polarities and, once its
// position relative to the power turbine is known, its pressure pair.
func (o *Source) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.AlphaInlet, o.gd.GWorkFluidIn, o.gd.GFuelInlet} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.gd.TempOutlet, o.gd.AlphaOutlet, o.gd.GWorkFluidOut, o.gd.GFuelOutlet} {
		if err := p.MakeOutput(); err != nil {
			return err
		}
	}
	if o.CheckUpstreamBehaviour() {
		if err := o.gd.PresInlet.MakeInput(); err != nil {
			return err
		}
		if err := o.gd.PresOutlet.MakeOutput(); err != nil {
			return err
		}
	} else if o.CheckDownstreamBehaviour() {
		if err := o.gd.PresOutlet.MakeInput(); err != nil {
			return err
		}
		if err := o.gd.PresInlet.MakeOutput(); err != nil {
			return err
		}
	}
	return nil
}

// CheckInput reports whether every input this source's current position
// requires is available.
func (o *Source) CheckInput() bool {
	_, okT := o.gd.TStagIn()
	_, okA := o.gd.AlphaIn()
	_, okG := o.gd.GIn()
	_, okF := o.gd.GFuelIn()
	if !(okT && okA && okG && okF) {
		return false
	}
	if o.CheckUpstreamBehaviour() {
		_, ok := o.gd.PStagIn()
		return ok
	}
	if o.CheckDownstreamBehaviour() {
		_, ok := o.gd.PStagOut()
		return ok
	}
	return false
}

// checkInputPartially reports whether the mixing calculation can run even
// though the pressure pair hasn't resolved yet.
func (o *Source) checkInputPartially() bool {
	_, okT := o.gd.TStagIn()
	_, okA := o.gd.AlphaIn()
	_, okG := o.gd.GIn()
	_, okF := o.gd.GFuelIn()
	return okT && okA && okG && okF
}

func (o *Source) compute() {
	Tin, _ := o.gd.TStagIn()
	alphaIn, _ := o.gd.AlphaIn()
	gIn, _ := o.gd.GIn()
	gFuelIn, _ := o.gd.GFuelIn()

	o.WorkFluid = gas.New(o.WorkFluid.Name())
	if o.WorkFluid.HasAlpha() {
		must(o.WorkFluid.SetAlpha(alphaIn))
	}
	alphaOut := 1 / (o.WorkFluid.L0() * (gFuelIn / (gIn + o.GReturn - gFuelIn)))
	gOut := gIn + o.GReturn

	res, err := gas.Mix(o.WorkFluid, o.ReturnFluid, Tin, o.ReturnFluidTemp, gIn, o.GReturn, alphaOut)
	if err != nil {
		chk.Panic("%v", err)
	}

	o.gd.SetAlphaOut(alphaOut)
	o.gd.SetGOut(gOut)
	o.gd.SetGFuelOut(gFuelIn)
	o.gd.SetTStagOut(res.Temp)
}

// Update mixes the returned coolant into the main flow and propagates
// pressure in whichever direction this source's position requires.
func (o *Source) Update() {
	if o.CheckInput() {
		o.compute()
		if o.CheckUpstreamBehaviour() {
			pIn, _ := o.gd.PStagIn()
			o.gd.SetPStagOut(pIn)
		} else {
			pOut, _ := o.gd.PStagOut()
			o.gd.PresInlet.Set(pOut)
		}
	} else if o.checkInputPartially() {
		o.compute()
	}
}
