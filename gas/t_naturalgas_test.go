// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_naturalgas01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("naturalgas01")

	g := New("naturalgas")
	g.SetAlpha(7.5)
	g.SetT(1300)
	cp := g.Cp()
	if cp <= 0 {
		tst.Errorf("c_p should be positive, got %v\n", cp)
	}

	// interpolated value at a grid node should match the table exactly
	g2 := New("naturalgas")
	g2.SetAlpha(1)
	g2.SetT(273)
	if math.Abs(g2.Cp()-cpRealGrid[0][0]*1000) > 1e-6 {
		tst.Errorf("grid-node interpolation mismatch: got %v want %v\n", g2.Cp(), cpRealGrid[0][0]*1000)
	}

	// plot the c_p(T) curve at a fixed alpha; disabled, for local inspection only
	if false {
		T := utl.LinSpace(273, 1500, 101)
		cp := make([]float64, len(T))
		g3 := New("naturalgas")
		g3.SetAlpha(2.5)
		for i, t := range T {
			g3.SetT(t)
			cp[i] = g3.Cp()
		}
		plt.Plot(T, cp, "'b.-', label='naturalgas', clip_on=0")
		plt.Gll("$T$", "$c_p$", "")
		plt.Cross()
		plt.Show()
	}
}
