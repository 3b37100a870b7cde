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

// CombustionChamber raises stagnation temperature to a fixed target by
// Picard iteration on the excess-air ratio α, tracking the extra relative
// fuel flow g_fuel_prime this pass injects.
//
// Its pressure pair behaves like a Turbine's: wherever the chamber sits
// relative to a power turbine in the cycle, one of pres_inlet/pres_outlet
// is resolved Input and the other Output, and a chamber placed downstream
// of a power turbine needs a seeded outlet-pressure guess to bootstrap the
// backward propagation, exactly as a downstream compressor turbine does.
type CombustionChamber struct {
	gd network.GasDynamicPorts

	TGas         float64 // target outlet stagnation temperature
	Precision    float64
	EtaBurn      float64 // combustion completeness η_burn
	SigmaComb    float64 // stagnation pressure recovery σ
	TFuel        float64 // fuel temperature, used for the reference enthalpy term
	WorkFluidIn  gas.Fluid
	WorkFluidOut gas.Fluid

	AlphaOutInit float64
	PStagOutInit *float64

	alphaRes     float64
	alphaOutOld  float64
	gFuelPrime   float64
}

// NewCombustionChamber allocates a chamber with default efficiencies, an
// air inlet fluid and a kerosene outlet fluid.
func NewCombustionChamber(tGas float64) *CombustionChamber {
	o := &CombustionChamber{
		TGas: tGas, Precision: 0.01, EtaBurn: 0.99, SigmaComb: 0.98, TFuel: 288,
		WorkFluidIn: gas.New("air"), WorkFluidOut: gas.New("kerosene"), AlphaOutInit: 2.5,
	}
	o.gd.Init(o)
	return o
}

// Init parses named parameters.
func (o *CombustionChamber) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "T_gas":
			o.TGas = p.V
		case "precision":
			o.Precision = p.V
		case "eta_burn":
			o.EtaBurn = p.V
		case "sigma_comb":
			o.SigmaComb = p.V
		case "T_fuel":
			o.TFuel = p.V
		case "alpha_out_init":
			o.AlphaOutInit = p.V
		case "p_stag_out_init":
			v := p.V
			o.PStagOutInit = &v
		default:
			return chk.Err("combustion chamber: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *CombustionChamber) String() string { return "CombustionChamber" }

func (o *CombustionChamber) AllPorts() []*network.Port { return o.gd.AllPorts() }

func (o *CombustionChamber) GasDynamic() *network.GasDynamicPorts { return &o.gd }

// GFuelPrime is the extra relative fuel flow this chamber injects.
func (o *CombustionChamber) GFuelPrime() float64 { return o.gFuelPrime }

// CheckUpstreamBehaviour is true once the chamber has resolved to pass
// pressure downstream (it sits upstream of the power turbine).
func (o *CombustionChamber) CheckUpstreamBehaviour() bool {
	return o.gd.PresInlet.Polarity() == network.PolarityInput || o.gd.PresOutlet.Polarity() == network.PolarityOutput
}

// CheckDownstreamBehaviour is true once the chamber has resolved to pass
// pressure upstream, against the flow (it sits downstream of the power
// turbine and must back-propagate from its own outlet guess).
func (o *CombustionChamber) CheckDownstreamBehaviour() bool {
	return o.gd.PresInlet.Polarity() == network.PolarityOutput || o.gd.PresOutlet.Polarity() == network.PolarityInput
}

// SetBehaviour resolves the chamber's fixed polarities and, once its
// position relative to the power turbine is known, its pressure pair.
func (o *CombustionChamber) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.AlphaInlet, o.gd.GFuelInlet, o.gd.GWorkFluidIn} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.gd.TempOutlet, o.gd.AlphaOutlet, o.gd.GFuelOutlet, o.gd.GWorkFluidOut} {
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
		if _, ok := o.gd.PStagOut(); !ok {
			if o.PStagOutInit == nil {
				return network.ErrMissingInitialGuess("combustion chamber: an initial outlet stagnation pressure guess must be set")
			}
			o.gd.PresOutlet.SeedInitialGuess(*o.PStagOutInit)
		}
		if err := o.gd.PresOutlet.MakeInput(); err != nil {
			return err
		}
		if err := o.gd.PresInlet.MakeOutput(); err != nil {
			return err
		}
	}
	return nil
}

// CheckInput reports whether the inputs this chamber's current position
// requires are all available.
func (o *CombustionChamber) CheckInput() bool {
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

// CheckInputPartially reports whether enough is known to at least
// propagate the pressure pair, even if the α/fuel loop cannot run yet.
func (o *CombustionChamber) CheckInputPartially() bool {
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

// Update runs the α-loop of the combustion balance, then propagates
// pressure in whichever direction this chamber's position requires.
func (o *CombustionChamber) Update() {
	if o.CheckInput() {
		o.alphaRes = 1
		Tin, _ := o.gd.TStagIn()
		alphaIn, _ := o.gd.AlphaIn()
		gIn, _ := o.gd.GIn()
		gFuelIn, _ := o.gd.GFuelIn()
		Tout := o.TGas
		o.gd.SetTStagOut(Tout)

		o.WorkFluidIn = gas.New(o.WorkFluidIn.Name())
		o.WorkFluidOut = gas.New(o.WorkFluidOut.Name())
		workFluidOutT0 := gas.New(o.WorkFluidOut.Name())

		if o.WorkFluidIn.HasAlpha() {
			must(o.WorkFluidIn.SetAlpha(alphaIn))
		}
		alphaOutVal := o.AlphaOutInit
		if v, ok := o.gd.AlphaOutlet.Get(); ok {
			alphaOutVal = v
		}
		must(o.WorkFluidOut.SetAlpha(alphaOutVal))
		must(workFluidOutT0.SetAlpha(alphaOutVal))

		o.WorkFluidIn.SetT(Tin)
		o.WorkFluidOut.SetT(Tout)
		workFluidOutT0.SetT(o.TFuel)

		var gOut, gFuelOut float64
		for o.alphaRes >= o.Precision {
			o.gFuelPrime = (o.WorkFluidOut.CpAv()*Tout - o.WorkFluidIn.CpAv()*Tin) /
				(o.WorkFluidOut.Qn()*o.EtaBurn - o.WorkFluidOut.CpAv()*Tout + workFluidOutT0.Cp()*o.TFuel)
			gOut = gIn * (1 + o.gFuelPrime)
			o.alphaOutOld = alphaOutVal
			alphaOutVal = 1 / (o.WorkFluidOut.L0() * (o.gFuelPrime * gIn) / (gIn - gFuelIn))
			gFuelOut = gFuelIn + o.gFuelPrime*gIn
			must(o.WorkFluidOut.SetAlpha(alphaOutVal))
			must(workFluidOutT0.SetAlpha(alphaOutVal))
			o.alphaRes = math.Abs(o.alphaOutOld-alphaOutVal) / alphaOutVal
		}
		o.gd.SetAlphaOut(alphaOutVal)
		o.gd.SetGOut(gOut)
		o.gd.SetGFuelOut(gFuelOut)

		if o.CheckUpstreamBehaviour() {
			pIn, _ := o.gd.PStagIn()
			o.gd.SetPStagOut(pIn * o.SigmaComb)
		} else {
			pOut, _ := o.gd.PStagOut()
			o.gd.PresInlet.Set(pOut / o.SigmaComb)
		}
	} else if o.CheckInputPartially() {
		if o.CheckUpstreamBehaviour() {
			pIn, _ := o.gd.PStagIn()
			o.gd.SetPStagOut(pIn * o.SigmaComb)
		} else {
			pOut, _ := o.gd.PStagOut()
			o.gd.PresInlet.Set(pOut / o.SigmaComb)
		}
	}
}

// must panics if err is non-nil; α is always set on a fluid variant that
// HasAlpha, so this only guards a programming error.
func must(err error) {
	if err != nil {
		chk.Panic("%v", err)
	}
}
