// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

// KeroseneProducts implements combustion-products-of-kerosene work fluid.
// c_p depends on both T and the excess-air ratio α.
type KeroseneProducts struct {
	r     float64
	qn    float64
	l0    float64
	alpha float64
	t     float64
	t1    float64
	t2    float64
	cp    float64
	cpAv  float64
	cpAvI float64
}

func init() {
	allocators["kerosene"] = func() Fluid { return newKerosene() }
}

func newKerosene() *KeroseneProducts {
	o := &KeroseneProducts{r: 287.4, qn: 43e6, l0: 14.61, alpha: 1, t: 288, t1: 288, t2: 400}
	o.cp = o.cpRealFunc(o.t, o.alpha)
	o.cpAv = o.cpAvFunc(o.t, o.alpha)
	o.cpAvI = o.cpAvIntFunc(o.t1, o.t2, o.alpha)
	return o
}

// Init initialises the model from named parameters
func (o *KeroseneProducts) Init(prms Prms) (err error) {
	*o = *newKerosene()
	for _, p := range prms {
		switch p.N {
		case "T":
			o.SetT(p.V)
		case "T1":
			o.SetT1(p.V)
		case "T2":
			o.SetT2(p.V)
		case "alpha":
			err = o.SetAlpha(p.V)
			if err != nil {
				return
			}
		default:
			return errNoAlpha("kerosene: unknown parameter " + p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o *KeroseneProducts) GetPrms() Prms {
	return Prms{
		{N: "T", V: 288},
		{N: "T1", V: 288},
		{N: "T2", V: 400},
		{N: "alpha", V: 1},
	}
}

func (o *KeroseneProducts) Name() string     { return "kerosene" }
func (o *KeroseneProducts) R() float64       { return o.r }
func (o *KeroseneProducts) Qn() float64      { return o.qn }
func (o *KeroseneProducts) L0() float64      { return o.l0 }
func (o *KeroseneProducts) HasAlpha() bool   { return true }
func (o *KeroseneProducts) T() float64       { return o.t }
func (o *KeroseneProducts) T1() float64      { return o.t1 }
func (o *KeroseneProducts) T2() float64      { return o.t2 }
func (o *KeroseneProducts) Alpha() float64   { return o.alpha }
func (o *KeroseneProducts) Cp() float64      { return o.cp }
func (o *KeroseneProducts) CpAv() float64    { return o.cpAv }
func (o *KeroseneProducts) CpAvInt() float64 { return o.cpAvI }
func (o *KeroseneProducts) K() float64       { return kFromCp(o.cp, o.r) }
func (o *KeroseneProducts) KAv() float64     { return kFromCp(o.cpAv, o.r) }
func (o *KeroseneProducts) KAvInt() float64  { return kFromCp(o.cpAvI, o.r) }

func (o *KeroseneProducts) SetAlpha(alpha float64) error {
	o.alpha = alpha
	o.cp = o.cpRealFunc(o.t, alpha)
	o.cpAv = o.cpAvFunc(o.t, alpha)
	o.cpAvI = o.cpAvIntFunc(o.t1, o.t2, alpha)
	return nil
}

func (o *KeroseneProducts) SetT(T float64) {
	o.t = T
	o.cp = o.cpRealFunc(T, o.alpha)
	o.cpAv = o.cpAvFunc(T, o.alpha)
}

func (o *KeroseneProducts) SetT1(T1 float64) {
	o.t1 = T1
	o.cpAvI = o.cpAvIntFunc(T1, o.t2, o.alpha)
}

func (o *KeroseneProducts) SetT2(T2 float64) {
	o.t2 = T2
	o.cpAvI = o.cpAvIntFunc(o.t1, T2, o.alpha)
}

// cpRealFunc is the true (instantaneous) specific heat, piecewise at 750K
func (o *KeroseneProducts) cpRealFunc(T, alpha float64) float64 {
	term11 := 0.0174/alpha + 0.2407
	term12 := (0.0093/alpha + 0.0193) * (2.5e-3*T - 0.875)
	term13 := (2e-3 - 1.056e-3/(alpha-0.2)) * (2.5e-5*T*T - 0.0275*T + 6.5625)
	exp1 := 4.187e3 * (term11 + term12 + term13)
	term21 := 0.0267/alpha + 0.26
	term22 := (0.0133/alpha + 0.032) * (1.176e-3*T - 0.88235)
	term23 := (0.374e-2 + 0.94e-2/(alpha*alpha+10)) * (5.5556e-6*T*T - 1.3056e-2*T + 6.67)
	exp2 := 4.187e3 * (term21 + term22 - term23)
	if T < 750 {
		return exp1
	}
	return exp2
}

// cpAvFunc is the mean specific heat from 0 to T, piecewise at 700K
func (o *KeroseneProducts) cpAvFunc(T, alpha float64) float64 {
	exp1 := ((2.25+1.2*alpha)*(T-70)/(alpha*1e5) + 0.236) * 4.187e3
	exp2 := ((1.25+2.2*alpha)*(T+450)/(alpha*1e5) + 0.218) * 4.187e3
	if T < 700 {
		return exp1
	}
	return exp2
}

// cpAvIntFunc is the mean specific heat over [T1,T2]
func (o *KeroseneProducts) cpAvIntFunc(T1, T2, alpha float64) float64 {
	return (o.cpAvFunc(T2, alpha)*(T2-TRef) - o.cpAvFunc(T1, alpha)*(T1-TRef)) / (T2 - T1)
}
