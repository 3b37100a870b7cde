// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/turbocycle/network"
)

// fakeUpstream is a bare gas-dynamic unit used to feed a unit's inlet group
// directly, standing in for a turbine without pulling in package solver; it
// also terminates the outlet group of the unit under test, whose output
// ports must be connected before SetBehaviour can resolve them.
type fakeUpstream struct {
	gd network.GasDynamicPorts
}

func newFakeUpstream() *fakeUpstream {
	f := &fakeUpstream{}
	f.gd.Init(f)
	return f
}

func (f *fakeUpstream) String() string                         { return "fakeUpstream" }
func (f *fakeUpstream) SetBehaviour() error                     { return nil }
func (f *fakeUpstream) CheckInput() bool                        { return true }
func (f *fakeUpstream) Update()                                 {}
func (f *fakeUpstream) AllPorts() []*network.Port                { return f.gd.AllPorts() }
func (f *fakeUpstream) GasDynamic() *network.GasDynamicPorts    { return &f.gd }

// connectGD wires a's gas-dynamic outlet group to b's inlet group, the way
// solver.ConnectGasDynamic does, without pulling in package solver.
func connectGD(a, b interface{ GasDynamic() *network.GasDynamicPorts }) {
	ag, bg := a.GasDynamic(), b.GasDynamic()
	pairs := [][2]*network.Port{
		{ag.TempOutlet, bg.TempInlet},
		{ag.PresOutlet, bg.PresInlet},
		{ag.AlphaOutlet, bg.AlphaInlet},
		{ag.GWorkFluidOut, bg.GWorkFluidIn},
		{ag.GFuelOutlet, bg.GFuelInlet},
	}
	for _, pair := range pairs {
		s := network.NewStream()
		pair[0].SetConnection(s)
		pair[1].SetConnection(s)
	}
}

// Test_outlet01 wires a bare upstream unit and an atmosphere to an outlet
// and checks the static round trip: the outlet converts the stagnation
// state handed to it into a static exit state at the fixed exit velocity,
// and reads the atmosphere's static pressure back through the static port
// pair.
func Test_outlet01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("outlet01")

	up := newFakeUpstream()
	outlet := NewOutlet()
	atmo := NewAtmosphere()

	connectGD(up, outlet)
	connectGD(outlet, atmo)
	connectGD(atmo, newFakeUpstream())
	so, si := outlet.StaticOutlet(), atmo.StaticInlet()
	sStat := network.NewStream()
	so.StatTempOutlet.SetConnection(sStat)
	si.StatTempInlet.SetConnection(sStat)
	pStat := network.NewStream()
	si.StatPresInlet.SetConnection(pStat)
	so.StatPresOutlet.SetConnection(pStat)

	// the outlet publishes its own inlet pressure, so the upstream pressure
	// port is left for outlet.SetBehaviour to resolve as Input
	for _, p := range []*network.Port{up.gd.TempOutlet, up.gd.AlphaOutlet, up.gd.GWorkFluidOut, up.gd.GFuelOutlet} {
		if err := p.MakeOutput(); err != nil {
			tst.Errorf("fake upstream port resolution failed: %v\n", err)
			return
		}
	}
	for i := 0; i < 5; i++ {
		if err := atmo.SetBehaviour(); err != nil {
			tst.Errorf("atmo.SetBehaviour failed: %v\n", err)
			return
		}
		if err := outlet.SetBehaviour(); err != nil {
			tst.Errorf("outlet.SetBehaviour failed: %v\n", err)
			return
		}
	}

	up.gd.TempOutlet.Set(900)
	up.gd.AlphaOutlet.Set(2.5)
	up.gd.GWorkFluidOut.Set(1.02)
	up.gd.GFuelOutlet.Set(0.02)

	atmo.Update()
	outlet.Update()

	if _, ok := outlet.GasDynamic().PStagOut(); !ok {
		tst.Errorf("outlet should have published an outlet stagnation pressure\n")
	}
	if outlet.LamOut <= 0 {
		tst.Errorf("outlet should have computed a positive reduced velocity, got %v\n", outlet.LamOut)
	}
}

// Test_load01 checks a free load publishes zero consumption while a fixed
// load resolves its port to Input, reading whatever its shaft supplies.
func Test_load01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("load01")

	free := NewLoad()
	peer := network.NewPort(&fakeGenUnit{}, network.RoleOutlet)
	s := network.NewStream()
	peer.SetConnection(s)
	free.Mechanical().LabourConsume.SetConnection(s)
	if err := free.SetBehaviour(); err != nil {
		tst.Errorf("free load SetBehaviour failed: %v\n", err)
		return
	}
	free.Update()
	v, ok := free.Mechanical().ConsumableLabour()
	if !ok || v != 0 {
		tst.Errorf("free load should publish zero consumption, got %v ok=%v\n", v, ok)
	}

	fixed := NewLoad()
	fixed.Power = 2e6
	peer2 := network.NewPort(&fakeGenUnit{}, network.RoleOutlet)
	s2 := network.NewStream()
	peer2.SetConnection(s2)
	fixed.Mechanical().LabourConsume.SetConnection(s2)
	if err := fixed.SetBehaviour(); err != nil {
		tst.Errorf("fixed load SetBehaviour failed: %v\n", err)
		return
	}
	if fixed.Mechanical().LabourConsume.Polarity() != network.PolarityInput {
		tst.Errorf("a fixed load's port should resolve Input\n")
	}
}

type fakeGenUnit struct{}

func (f *fakeGenUnit) String() string             { return "fakeGen" }
func (f *fakeGenUnit) SetBehaviour() error         { return nil }
func (f *fakeGenUnit) CheckInput() bool            { return true }
func (f *fakeGenUnit) Update()                     {}
func (f *fakeGenUnit) AllPorts() []*network.Port   { return nil }
