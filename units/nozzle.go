// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/gasdyn"
	"github.com/cpmech/turbocycle/network"
)

// FullExtensionNozzle expands the gas fully to the ambient static pressure
// its downstream Atmosphere reports, recovering exit velocity at a fixed
// velocity coefficient φ. κ and c_p are found by Picard iteration over the
// T1→T2 expansion interval, since both depend on the exit temperature the
// expansion itself produces.
type FullExtensionNozzle struct {
	gd network.GasDynamicPorts
	so network.StaticOutletPorts

	Phi       float64 // velocity coefficient
	Precision float64
	WorkFluid gas.Fluid

	k, cp, kOld float64
	piN, cOut   float64
}

// NewFullExtensionNozzle allocates a nozzle with a default velocity
// coefficient and precision and a
// kerosene combustion-products work fluid.
func NewFullExtensionNozzle() *FullExtensionNozzle {
	o := &FullExtensionNozzle{Phi: 0.99, Precision: 0.01, WorkFluid: gas.New("kerosene")}
	o.gd.Init(o)
	o.so.Init(o)
	o.k = o.WorkFluid.KAvInt()
	o.cp = o.WorkFluid.CpAvInt()
	return o
}

// Init parses named parameters.
func (o *FullExtensionNozzle) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "phi":
			o.Phi = p.V
		case "precision":
			o.Precision = p.V
		default:
			return chk.Err("nozzle: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *FullExtensionNozzle) String() string { return "FullExtensionNozzle" }

// AllPorts returns the gas-dynamic ports plus the static-outlet pair.
func (o *FullExtensionNozzle) AllPorts() []*network.Port {
	return append(o.gd.AllPorts(), o.so.AllPorts()...)
}

func (o *FullExtensionNozzle) GasDynamic() *network.GasDynamicPorts { return &o.gd }

func (o *FullExtensionNozzle) StaticOutlet() *network.StaticOutletPorts { return &o.so }

// SetBehaviour resolves the nozzle's fixed polarities: it reads the full
// stagnation inlet state and the static exit pressure Atmosphere reports
// back, and publishes the stagnation outlet state plus the static exit
// temperature.
func (o *FullExtensionNozzle) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.AlphaInlet, o.gd.GFuelInlet, o.gd.GWorkFluidIn, o.gd.PresInlet, o.so.StatPresOutlet} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.gd.TempOutlet, o.gd.AlphaOutlet, o.gd.GFuelOutlet, o.gd.GWorkFluidOut, o.gd.PresOutlet, o.so.StatTempOutlet} {
		if err := p.MakeOutput(); err != nil {
			return err
		}
	}
	return nil
}

// CheckInput reports whether the full expansion calculation can run.
func (o *FullExtensionNozzle) CheckInput() bool {
	_, okP := o.gd.PStagIn()
	_, okT := o.gd.TStagIn()
	_, okPOut := o.so.PStatOut()
	_, okA := o.gd.AlphaIn()
	_, okG := o.gd.GIn()
	_, okF := o.gd.GFuelIn()
	return okP && okT && okPOut && okA && okG && okF
}

// Update expands the gas to the ambient static pressure, recovering κ and
// c_p over the expansion interval by Picard iteration, then derives the
// stagnation exit pressure from the resulting exit velocity.
func (o *FullExtensionNozzle) Update() {
	if !o.CheckInput() {
		return
	}
	pIn, _ := o.gd.PStagIn()
	Tin, _ := o.gd.TStagIn()
	pOut, _ := o.so.PStatOut()
	alphaIn, _ := o.gd.AlphaIn()
	gIn, _ := o.gd.GIn()
	gFuelIn, _ := o.gd.GFuelIn()

	o.piN = pIn / pOut
	o.WorkFluid = gas.New(o.WorkFluid.Name())
	if o.WorkFluid.HasAlpha() {
		must(o.WorkFluid.SetAlpha(alphaIn))
	}
	o.WorkFluid.SetT1(Tin)
	o.gd.SetTStagOut(Tin)
	o.gd.SetAlphaOut(alphaIn)
	o.gd.SetGOut(gIn)
	o.gd.SetGFuelOut(gFuelIn)

	var Tout, Hn float64
	kRes := 1.0
	for kRes >= o.Precision {
		o.kOld = o.k
		Hn = o.cp * Tin * (1 - math.Pow(o.piN, (1-o.k)/o.k))
		Tout = Tin - o.Phi*Hn/o.cp
		o.cOut = o.Phi * math.Sqrt(2*Hn)
		o.WorkFluid.SetT2(Tout)
		o.k = o.WorkFluid.KAvInt()
		o.cp = o.WorkFluid.CpAvInt()
		kRes = math.Abs(o.k-o.kOld) / o.kOld
	}

	o.so.SetTStatOut(Tout)
	pStagOut := pOut / gasdyn.PiLam(o.cOut/gasdyn.Acr(Tin, o.k, o.WorkFluid.R()), o.k)
	o.gd.SetPStagOut(pStagOut)
}
