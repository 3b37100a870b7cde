// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units implements the local thermodynamic solvers for each kind of
// gas-turbine cycle component: compressor, turbine, combustion chamber,
// mixing source, bleed sink, inlet, outlet, full-extension nozzle,
// atmosphere and external load.
package units

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/network"
)

// Compressor raises stagnation pressure by a fixed ratio, consuming shaft
// work computed by Picard iteration on the specific-heat ratio κ.
type Compressor struct {
	gd   network.GasDynamicPorts
	mech network.MechConsumer

	PiC          float64 // pressure ratio π_c
	EtaStagP     float64 // polytropic efficiency η_p
	Precision    float64 // κ-loop convergence precision
	WorkFluid    gas.Fluid

	k       float64
	kOld    float64
	kRes    float64
	etaStag float64
}

// NewCompressor allocates a compressor with default efficiency and
// precision, owned port set, and an Air work fluid seed.
func NewCompressor(piC float64) *Compressor {
	o := &Compressor{PiC: piC, EtaStagP: 0.89, Precision: 0.01, WorkFluid: gas.New("air")}
	o.gd.Init(o)
	o.mech.Init(o)
	o.k = o.WorkFluid.KAvInt()
	o.kRes = 1
	return o
}

// Init parses named parameters, following the fun.Prms convention.
func (o *Compressor) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "pi_c":
			o.PiC = p.V
		case "eta_stag_p":
			o.EtaStagP = p.V
		case "precision":
			o.Precision = p.V
		default:
			return chk.Err("compressor: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *Compressor) String() string { return "Compressor" }

// AllPorts returns every port this unit owns.
func (o *Compressor) AllPorts() []*network.Port {
	return append(o.gd.AllPorts(), o.mech.AllPorts()...)
}

// GasDynamic exposes the embedded gas-dynamic port group for connection
// wiring by the solver.
func (o *Compressor) GasDynamic() *network.GasDynamicPorts { return &o.gd }

// Mechanical exposes the embedded labour-consuming port for shaft wiring.
func (o *Compressor) Mechanical() *network.MechConsumer { return &o.mech }

// SetBehaviour assigns the compressor's fixed polarities: every
// gas-dynamic input is read, every gas-dynamic output (including the
// consumed shaft work) is written.
func (o *Compressor) SetBehaviour() error {
	for _, p := range []*network.Port{o.gd.TempInlet, o.gd.PresInlet, o.gd.AlphaInlet, o.gd.GWorkFluidIn, o.gd.GFuelInlet} {
		if err := p.MakeInput(); err != nil {
			return err
		}
	}
	for _, p := range []*network.Port{o.mech.LabourConsume, o.gd.TempOutlet, o.gd.PresOutlet, o.gd.AlphaOutlet, o.gd.GFuelOutlet, o.gd.GWorkFluidOut} {
		if err := p.MakeOutput(); err != nil {
			return err
		}
	}
	return nil
}

// CheckInput reports whether every gas-dynamic input is available.
func (o *Compressor) CheckInput() bool {
	_, okT := o.gd.TStagIn()
	_, okP := o.gd.PStagIn()
	_, okA := o.gd.AlphaIn()
	_, okG := o.gd.GIn()
	_, okF := o.gd.GFuelIn()
	return okT && okP && okA && okG && okF
}

// Update runs the Picard iteration of §4.5 and writes the compressor's
// outputs.
func (o *Compressor) Update() {
	if !o.CheckInput() {
		return
	}
	Tin, _ := o.gd.TStagIn()
	pIn, _ := o.gd.PStagIn()
	alphaIn, _ := o.gd.AlphaIn()
	gIn, _ := o.gd.GIn()
	gFuelIn, _ := o.gd.GFuelIn()

	o.WorkFluid = gas.New(o.WorkFluid.Name())
	o.WorkFluid.SetT1(Tin)
	o.kRes = 1
	var Tout float64
	for o.kRes >= o.Precision {
		o.etaStag = etaCompStag(o.PiC, o.k, o.EtaStagP)
		Tout = Tin * (1 + (math.Pow(o.PiC, (o.k-1)/o.k)-1)/o.etaStag)
		o.WorkFluid.SetT2(Tout)
		o.kOld = o.k
		o.k = o.WorkFluid.KAvInt()
		o.kRes = math.Abs(o.k-o.kOld) / o.kOld
	}
	o.gd.SetTStagOut(Tout)
	o.mech.SetConsumableLabour(o.WorkFluid.CpAvInt() * (Tout - Tin))
	o.gd.SetPStagOut(pIn * o.PiC)
	o.gd.SetGOut(gIn)
	o.gd.SetAlphaOut(alphaIn)
	o.gd.SetGFuelOut(gFuelIn)
}
