// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import "math"

// Air implements the ambient-air work fluid. c_p has no α dependence.
type Air struct {
	r      float64
	t      float64
	t1     float64
	t2     float64
	cp     float64
	cpAv   float64
	cpAvI  float64
}

func init() {
	allocators["air"] = func() Fluid { return newAir() }
}

func newAir() *Air {
	o := &Air{r: 287.4, t: 288, t1: 288, t2: 400}
	o.cp = o.cpRealFunc(o.t)
	o.cpAv = o.cpAvFunc(o.t)
	o.cpAvI = o.cpAvIntFunc(o.t1, o.t2)
	return o
}

// Init initialises the model from named parameters. Air has no tunable
// parameters of its own; T, T1 and T2 may be seeded.
func (o *Air) Init(prms Prms) (err error) {
	*o = *newAir()
	for _, p := range prms {
		switch p.N {
		case "T":
			o.SetT(p.V)
		case "T1":
			o.SetT1(p.V)
		case "T2":
			o.SetT2(p.V)
		default:
			return errNoAlpha("air: unknown parameter " + p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o *Air) GetPrms() Prms {
	return Prms{
		{N: "T", V: 288},
		{N: "T1", V: 288},
		{N: "T2", V: 400},
	}
}

func (o *Air) Name() string       { return "air" }
func (o *Air) R() float64         { return o.r }
func (o *Air) Qn() float64        { return 0 }
func (o *Air) L0() float64        { return 0 }
func (o *Air) HasAlpha() bool     { return false }
func (o *Air) T() float64         { return o.t }
func (o *Air) T1() float64        { return o.t1 }
func (o *Air) T2() float64        { return o.t2 }
func (o *Air) Alpha() float64     { return math.Inf(1) }
func (o *Air) Cp() float64        { return o.cp }
func (o *Air) CpAv() float64      { return o.cpAv }
func (o *Air) CpAvInt() float64   { return o.cpAvI }
func (o *Air) K() float64         { return kFromCp(o.cp, o.r) }
func (o *Air) KAv() float64       { return kFromCp(o.cpAv, o.r) }
func (o *Air) KAvInt() float64    { return kFromCp(o.cpAvI, o.r) }

// SetAlpha always fails: air is not a combustion product
func (o *Air) SetAlpha(alpha float64) error {
	return errNoAlpha("air")
}

func (o *Air) SetT(T float64) {
	o.t = T
	o.cp = o.cpRealFunc(T)
	o.cpAv = o.cpAvFunc(T)
}

func (o *Air) SetT1(T1 float64) {
	o.t1 = T1
	o.cpAvI = o.cpAvIntFunc(T1, o.t2)
}

func (o *Air) SetT2(T2 float64) {
	o.t2 = T2
	o.cpAvI = o.cpAvIntFunc(o.t1, T2)
}

// cpRealFunc is the true (instantaneous) specific heat, piecewise at 750K
func (o *Air) cpRealFunc(T float64) float64 {
	exp1 := 1e3 * (0.2407 + 0.0193*(2.5e-3*T-0.875) +
		2e-3*(2.5e-5*T*T-0.0275*T+6.5625)) * 4.187
	exp2 := 1e3 * (0.26 + 0.032*(1.176e-3*T-0.88235) -
		0.374e-2*(5.5556e-6*T*T-1.3056e-2*T+6.67)) * 4.187
	if T < 750 {
		return exp1
	}
	return exp2
}

// cpAvFunc is the mean specific heat from 0 to T, piecewise at 700K
func (o *Air) cpAvFunc(T float64) float64 {
	exp1 := 4.187e3 * (1.2e-5*(T-70) + 0.236)
	exp2 := 4.187e3 * (2.2e-5*(T+450) + 0.218)
	if T < 700 {
		return exp1
	}
	return exp2
}

// cpAvIntFunc is the mean specific heat over [T1,T2]
func (o *Air) cpAvIntFunc(T1, T2 float64) float64 {
	return (o.cpAvFunc(T2)*(T2-TRef) - o.cpAvFunc(T1)*(T1-TRef)) / (T2 - T1)
}
