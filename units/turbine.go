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

// Turbine expands hot gas across a pressure ratio, classifying itself each
// behaviour-inference pass into one of three operating modes depending on
// how its two shaft ports and its two pressure ports have resolved so far:
//
//   - power turbine: one shaft port is an Input (its consumer, a
//     compressor or a free load, publishes the work it draws) and the
//     other an Output (the turbine writes the remaining work to a fixed
//     load); both pressure ports are Inputs, exit stagnation temperature
//     and the Output shaft's work are the unknowns.
//   - upstream compressor turbine: both shaft ports are Inputs (both
//     consumers publish the work they draw), inlet pressure is the
//     Input, outlet pressure is derived from the work balance.
//   - downstream compressor turbine: same shaft pattern, but outlet
//     pressure is the Input and inlet pressure is derived, propagating
//     backward against the flow.
type Turbine struct {
	gd   network.GasDynamicPorts
	mech network.MechGenerator

	EtaStagP  float64 // polytropic efficiency η_p
	EtaM      float64 // mechanical efficiency η_m
	EtaR      float64 // gearbox efficiency η_r
	Precision float64
	WorkFluid gas.Fluid

	// PStagOutInit seeds the outlet-pressure guess required to bootstrap a
	// power turbine or a downstream compressor turbine. It is written to
	// the outlet stream the first time SetBehaviour classifies one of
	// those modes; MissingInitialGuess is returned if it is needed and
	// unset.
	PStagOutInit *float64

	k, kOld, kRes       float64
	piT, piTOld, piTRes float64
	etaStag             float64
}

// NewTurbine allocates a turbine with default efficiencies and a kerosene
// combustion-products work fluid seed.
func NewTurbine() *Turbine {
	o := &Turbine{EtaStagP: 0.91, EtaM: 0.99, EtaR: 0.99, Precision: 0.01, WorkFluid: gas.New("kerosene")}
	o.gd.Init(o)
	o.mech.Init(o)
	o.kRes = 1
	o.piTRes = 1
	o.k = o.WorkFluid.KAvInt()
	return o
}

// Init parses named parameters.
func (o *Turbine) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "eta_stag_p":
			o.EtaStagP = p.V
		case "eta_m":
			o.EtaM = p.V
		case "eta_r":
			o.EtaR = p.V
		case "precision":
			o.Precision = p.V
		case "p_stag_out_init":
			v := p.V
			o.PStagOutInit = &v
		default:
			return chk.Err("turbine: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *Turbine) String() string { return "Turbine" }

func (o *Turbine) AllPorts() []*network.Port {
	return append(o.gd.AllPorts(), o.mech.AllPorts()...)
}

func (o *Turbine) GasDynamic() *network.GasDynamicPorts { return &o.gd }
func (o *Turbine) Mechanical() *network.MechGenerator   { return &o.mech }

// CheckUpstreamCompressorTurbineBehaviour is true once both shaft ports are
// Inputs and either the inlet pressure has resolved Input or the outlet
// pressure has resolved Output.
func (o *Turbine) CheckUpstreamCompressorTurbineBehaviour() bool {
	cond1 := o.mech.LabourGen1.Polarity() == network.PolarityInput
	cond2 := o.mech.LabourGen2.Polarity() == network.PolarityInput
	cond3 := o.gd.PresInlet.Polarity() == network.PolarityInput || o.gd.PresOutlet.Polarity() == network.PolarityOutput
	return cond1 && cond2 && cond3
}

// CheckDownstreamCompressorTurbineBehaviour is the outlet-pressure-is-Input
// mirror of CheckUpstreamCompressorTurbineBehaviour.
func (o *Turbine) CheckDownstreamCompressorTurbineBehaviour() bool {
	cond1 := o.mech.LabourGen1.Polarity() == network.PolarityInput
	cond2 := o.mech.LabourGen2.Polarity() == network.PolarityInput
	cond3 := o.gd.PresOutlet.Polarity() == network.PolarityInput || o.gd.PresInlet.Polarity() == network.PolarityOutput
	return cond1 && cond2 && cond3
}

// CheckPowerTurbineBehaviour is true when exactly one shaft port is an
// Input and the other an Output (an external load is driving one of the
// two generating ports while the other still feeds a compressor, or vice
// versa).
func (o *Turbine) CheckPowerTurbineBehaviour() bool {
	g1In := o.mech.LabourGen1.Polarity() == network.PolarityInput
	g2Out := o.mech.LabourGen2.Polarity() == network.PolarityOutput
	g1Out := o.mech.LabourGen1.Polarity() == network.PolarityOutput
	g2In := o.mech.LabourGen2.Polarity() == network.PolarityInput
	return (g1In && g2Out) || (g1Out && g2In)
}

// SetBehaviour resolves the turbine's fixed gas-dynamic polarities, then
// classifies its operating mode to resolve the pressure and shaft ports,
// seeding the outlet-pressure guess the first time it is needed.
func (o *Turbine) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.GWorkFluidIn, o.gd.GFuelInlet, o.gd.AlphaInlet} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.gd.TempOutlet, o.gd.GWorkFluidOut, o.gd.GFuelOutlet, o.gd.AlphaOutlet} {
		if err := p.MakeOutput(); err != nil {
			return err
		}
	}

	if o.CheckDownstreamCompressorTurbineBehaviour() {
		if err := o.seedOutletGuess(); err != nil {
			return err
		}
		if err := o.gd.PresOutlet.MakeInput(); err != nil {
			return err
		}
		if err := o.mech.LabourGen1.MakeInput(); err != nil {
			return err
		}
		if err := o.mech.LabourGen2.MakeInput(); err != nil {
			return err
		}
		if err := o.gd.PresInlet.MakeOutput(); err != nil {
			return err
		}
	}
	if o.CheckUpstreamCompressorTurbineBehaviour() {
		if err := o.gd.PresInlet.MakeInput(); err != nil {
			return err
		}
		if err := o.mech.LabourGen1.MakeInput(); err != nil {
			return err
		}
		if err := o.mech.LabourGen2.MakeInput(); err != nil {
			return err
		}
		if err := o.gd.PresOutlet.MakeOutput(); err != nil {
			return err
		}
	}
	if o.CheckPowerTurbineBehaviour() {
		if err := o.seedOutletGuess(); err != nil {
			return err
		}
		if err := o.gd.PresInlet.MakeInput(); err != nil {
			return err
		}
		if err := o.gd.PresOutlet.MakeInput(); err != nil {
			return err
		}
	}
	return nil
}

// seedOutletGuess writes PStagOutInit to the outlet-pressure stream the
// first time a mode that reads it (rather than writes it) is classified.
// It is a no-op once the stream already holds a value.
func (o *Turbine) seedOutletGuess() error {
	if _, ok := o.gd.PStagOut(); ok {
		return nil
	}
	if o.PStagOutInit == nil {
		return network.ErrMissingInitialGuess("turbine: an initial outlet stagnation pressure guess must be set")
	}
	o.gd.PresOutlet.SeedInitialGuess(*o.PStagOutInit)
	return nil
}

// CheckInput reports whether the inputs this turbine's current mode
// requires are all available.
func (o *Turbine) CheckInput() bool {
	_, okT := o.gd.TStagIn()
	_, okG := o.gd.GIn()
	_, okF := o.gd.GFuelIn()
	_, okA := o.gd.AlphaIn()
	if !(okT && okG && okF && okA) {
		return false
	}
	switch {
	case o.CheckDownstreamCompressorTurbineBehaviour():
		_, okP := o.gd.PStagOut()
		_, ok1 := o.mech.GenLabour1()
		_, ok2 := o.mech.GenLabour2()
		return okP && ok1 && ok2
	case o.CheckUpstreamCompressorTurbineBehaviour():
		_, okP := o.gd.PStagIn()
		_, ok1 := o.mech.GenLabour1()
		_, ok2 := o.mech.GenLabour2()
		return okP && ok1 && ok2
	case o.CheckPowerTurbineBehaviour():
		_, okPin := o.gd.PStagIn()
		_, okPout := o.gd.PStagOut()
		_, ok1 := o.mech.GenLabour1()
		_, ok2 := o.mech.GenLabour2()
		return okPin && okPout && (ok1 || ok2)
	}
	return false
}

// setWorkFluidInlet resets the work fluid to the current inlet state,
// carrying α when the variant depends on it.
func (o *Turbine) setWorkFluidInlet(Tin, alphaIn float64) {
	o.WorkFluid = gas.New(o.WorkFluid.Name())
	if o.WorkFluid.HasAlpha() {
		if err := o.WorkFluid.SetAlpha(alphaIn); err != nil {
			chk.Panic("%v", err)
		}
	}
	o.WorkFluid.SetT1(Tin)
}

// computeCompressorTurbine is the shared Picard solve used by both
// compressor-turbine modes: derive total specific work from the compressor
// demand, then iterate κ and the pressure ratio together.
func (o *Turbine) computeCompressorTurbine() {
	o.kRes = 1
	o.piTRes = 1
	Tin, _ := o.gd.TStagIn()
	alphaIn, _ := o.gd.AlphaIn()
	gIn, _ := o.gd.GIn()
	l1, _ := o.mech.GenLabour1()
	l2, _ := o.mech.GenLabour2()

	o.setWorkFluidInlet(Tin, alphaIn)
	o.mech.SetTotalLabour((l1 + l2) / (gIn * o.EtaM))

	var Tout float64
	for o.kRes >= o.Precision {
		Tout = Tin - o.mech.TotalLabour/o.WorkFluid.CpAvInt()
		o.WorkFluid.SetT2(Tout)
		o.kOld = o.k
		o.k = o.WorkFluid.KAvInt()
		o.kRes = math.Abs(o.k-o.kOld) / o.kOld
	}
	o.gd.SetTStagOut(Tout)

	o.piT = math.Pow(1-o.mech.TotalLabour/(Tin*o.WorkFluid.CpAvInt()*o.EtaStagP), o.k/(1-o.k))
	for o.piTRes >= o.Precision {
		o.etaStag = etaTurbStag(o.piT, o.k, o.EtaStagP)
		o.piTOld = o.piT
		o.piT = math.Pow(1-o.mech.TotalLabour/(Tin*o.WorkFluid.CpAvInt()*o.etaStag), o.k/(1-o.k))
		o.piTRes = math.Abs(o.piT-o.piTOld) / o.piTOld
	}
}

// Update runs the algorithm for whichever mode the turbine currently
// classifies as.
func (o *Turbine) Update() {
	if !o.CheckInput() {
		return
	}

	alphaIn, _ := o.gd.AlphaIn()
	gIn, _ := o.gd.GIn()
	gFuelIn, _ := o.gd.GFuelIn()
	o.gd.SetAlphaOut(alphaIn)
	o.gd.SetGOut(gIn)
	o.gd.SetGFuelOut(gFuelIn)

	switch {
	case o.CheckPowerTurbineBehaviour():
		Tin, _ := o.gd.TStagIn()
		pIn, _ := o.gd.PStagIn()
		pOut, _ := o.gd.PStagOut()
		o.kRes = 1
		o.setWorkFluidInlet(Tin, alphaIn)
		o.piT = pIn / pOut
		var Tout float64
		for o.kRes >= o.Precision {
			o.etaStag = etaTurbStag(o.piT, o.k, o.EtaStagP)
			Tout = Tin * (1 - (1-math.Pow(o.piT, (1-o.k)/o.k))*o.etaStag)
			o.WorkFluid.SetT2(Tout)
			o.kOld = o.k
			o.k = o.WorkFluid.KAvInt()
			o.kRes = math.Abs(o.k-o.kOld) / o.kOld
		}
		o.gd.SetTStagOut(Tout)
		o.mech.SetTotalLabour(o.WorkFluid.CpAvInt() * (Tin - Tout))
		switch {
		case o.mech.LabourGen2.Polarity() == network.PolarityOutput:
			l1, _ := o.mech.GenLabour1()
			o.mech.SetGenLabour2(o.EtaR * (o.mech.TotalLabour*o.EtaM*gIn - l1))
		case o.mech.LabourGen1.Polarity() == network.PolarityOutput:
			l2, _ := o.mech.GenLabour2()
			o.mech.SetGenLabour1(o.EtaR * (o.mech.TotalLabour*o.EtaM*gIn - l2))
		}

	case o.CheckUpstreamCompressorTurbineBehaviour():
		o.computeCompressorTurbine()
		pIn, _ := o.gd.PStagIn()
		o.gd.SetPStagOut(pIn / o.piT)

	case o.CheckDownstreamCompressorTurbineBehaviour():
		o.computeCompressorTurbine()
		pOut, _ := o.gd.PStagOut()
		o.gd.PresInlet.Set(pOut * o.piT)
	}
}
