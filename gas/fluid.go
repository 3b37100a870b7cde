// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gas implements real-gas property models for the working fluids
// that flow through a gas-turbine cycle: ambient air, kerosene combustion
// products, and natural-gas combustion products. Every variant exposes
// variable specific heat c_p as a function of temperature and (for
// combustion products) excess-air ratio α.
package gas

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// TRef is the reference temperature used by the interval-mean c_p formula
const TRef = 273.0

// Fluid defines the interface common to all work-fluid variants. T, T1, T2
// and α are the inputs; each variant caches c_p(T), c̄_p(T) and c̄_p(T1→T2),
// and every setter recomputes the cached values that depend on what it
// changed, so a read never sees a stale combination.
type Fluid interface {
	Init(prms Prms) (err error)    // initialises model from named parameters
	GetPrms() Prms                 // gets (an example) of parameters
	Name() string                  // registered variant name
	R() float64                    // gas constant [J/(kg·K)]
	Qn() float64                   // lower heating value [J/kg] (0 for pure air)
	L0() float64                   // stoichiometric air-fuel mass ratio (0 for pure air)
	HasAlpha() bool                // false for pure air
	SetT(T float64)                // sets current temperature
	SetT1(T1 float64)              // sets lower interval-mean bound
	SetT2(T2 float64)              // sets upper interval-mean bound
	SetAlpha(alpha float64) error  // sets excess-air ratio; fails on pure air
	T() float64                    // current T
	T1() float64                   // current T1
	T2() float64                   // current T2
	Alpha() float64                // current α (+Inf for pure air)
	Cp() float64                   // c_p(T, α)
	CpAv() float64                 // c̄_p(T, α), mean heat 0→T
	CpAvInt() float64              // c̄_p(T1→T2, α), interval mean
	K() float64                    // κ = c_p/(c_p - R)
	KAv() float64                  // κ from c̄_p(T)
	KAvInt() float64               // κ from c̄_p(T1→T2)
}

// Prm is the named-parameter type every unit and fluid variant's Init walks,
// the same github.com/cpmech/gosl/fun.Prm used for msolid/mporous material
// models.
type Prm = fun.Prm

// Prms is a list of named parameters.
type Prms = fun.Prms

// allocators is the factory registry: variant name -> constructor
var allocators = make(map[string]func() Fluid)

// New returns a freshly allocated, default-initialised fluid variant.
// Returns nil if name is not registered.
func New(name string) Fluid {
	allocator, ok := allocators[name]
	if !ok {
		return nil
	}
	return allocator()
}

// errNoAlpha builds the error SetAlpha returns on fluids that have no α
// dependence; Air and KeroseneProducts also use it to reject unknown
// parameter names in Init.
func errNoAlpha(name string) error {
	return chk.Err("gas: %s has no excess-air ratio; InvalidFluidState\n", name)
}

// kFromCp computes κ = c_p/(c_p - R)
func kFromCp(cp, R float64) float64 {
	return cp / (cp - R)
}

func must(name string, err error) {
	if err != nil {
		chk.Panic("%s: %v", io.Sf("%s", name), err)
	}
}
