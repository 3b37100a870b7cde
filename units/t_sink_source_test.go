// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/turbocycle/network"
)

// Test_sink01 checks the mass-conservation law of §8 at a bleed sink:
// g_out = g_in - g_cooling - g_outflow exactly, with T, p and composition
// passed through unchanged.
func Test_sink01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("sink01")

	up := newFakeUpstream()
	sink := NewSink()

	connectGD(up, sink)
	connectGD(sink, newFakeUpstream())
	for _, p := range []*network.Port{up.gd.TempOutlet, up.gd.PresOutlet, up.gd.AlphaOutlet, up.gd.GWorkFluidOut, up.gd.GFuelOutlet} {
		if err := p.MakeOutput(); err != nil {
			tst.Errorf("fake upstream port resolution failed: %v\n", err)
			return
		}
	}
	if err := sink.SetBehaviour(); err != nil {
		tst.Errorf("sink.SetBehaviour failed: %v\n", err)
		return
	}

	up.gd.TempOutlet.Set(900)
	up.gd.PresOutlet.Set(5e5)
	up.gd.AlphaOutlet.Set(2.5)
	up.gd.GWorkFluidOut.Set(1.0)
	up.gd.GFuelOutlet.Set(0.02)

	sink.Update()

	gIn, _ := sink.GasDynamic().GIn()
	gOut, _ := sink.GasDynamic().GWorkFluidOut.Get()
	want := gIn - sink.GCooling - sink.GOutflow
	if math.Abs(gOut-want) > 1e-12 {
		tst.Errorf("mass conservation violated at sink: gOut=%v want %v\n", gOut, want)
	}

	Tin, _ := sink.GasDynamic().TStagIn()
	Tout, _ := sink.GasDynamic().TStagOut()
	if Tout != Tin {
		tst.Errorf("sink should pass stagnation temperature through unchanged, got Tin=%v Tout=%v\n", Tin, Tout)
	}
}

// Test_source01 checks the mass-conservation law of §8 at a mixing source:
// g_out = g_in + g_return exactly, and the mixed temperature lands strictly
// between the hot inlet temperature and the cooler returned stream's
// temperature.
func Test_source01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("source01")

	up := newFakeUpstream()
	src := NewSource()
	src.GReturn = 0.05
	src.ReturnFluidTemp = 700

	connectGD(up, src)
	connectGD(src, newFakeUpstream())
	for _, p := range []*network.Port{up.gd.TempOutlet, up.gd.PresOutlet, up.gd.AlphaOutlet, up.gd.GWorkFluidOut, up.gd.GFuelOutlet} {
		if err := p.MakeOutput(); err != nil {
			tst.Errorf("fake upstream port resolution failed: %v\n", err)
			return
		}
	}
	if err := src.SetBehaviour(); err != nil {
		tst.Errorf("src.SetBehaviour failed: %v\n", err)
		return
	}

	TinHot := 1200.0
	up.gd.TempOutlet.Set(TinHot)
	up.gd.PresOutlet.Set(5e5)
	up.gd.AlphaOutlet.Set(2.5)
	up.gd.GWorkFluidOut.Set(1.0)
	up.gd.GFuelOutlet.Set(0.02)

	src.Update()

	gIn, _ := src.GasDynamic().GIn()
	gOut, _ := src.GasDynamic().GWorkFluidOut.Get()
	want := gIn + src.GReturn
	if math.Abs(gOut-want) > 1e-12 {
		tst.Errorf("mass conservation violated at source: gOut=%v want %v\n", gOut, want)
	}

	Tout, _ := src.GasDynamic().TStagOut()
	if !(Tout > src.ReturnFluidTemp && Tout < TinHot) {
		tst.Errorf("mixed temperature should land strictly between the return and hot temperatures, got %v (return=%v hot=%v)\n",
			Tout, src.ReturnFluidTemp, TinHot)
	}

	alphaIn, _ := src.GasDynamic().AlphaIn()
	alphaOut, _ := src.GasDynamic().AlphaOutlet.Get()
	if alphaOut <= alphaIn {
		tst.Errorf("mixer alpha_out should exceed upstream alpha_in after diluting with air return, got alphaOut=%v alphaIn=%v\n", alphaOut, alphaIn)
	}
}
