// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_kerosene01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("kerosene01")

	k := New("kerosene")
	err := k.SetAlpha(2.5)
	if err != nil {
		tst.Errorf("SetAlpha failed: %v\n", err)
		return
	}
	k.SetT(1200)
	cp := k.Cp()
	if cp < 1150 || cp > 1250 {
		tst.Errorf("kerosene products c_p at alpha=2.5,T=1200K out of expected range: got %v\n", cp)
	}

	if k.Qn() != 43e6 {
		tst.Errorf("Qn mismatch: got %v\n", k.Qn())
	}
	if k.L0() != 14.61 {
		tst.Errorf("L0 mismatch: got %v\n", k.L0())
	}
}

func Test_kerosene02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("kerosene02")

	k := New("kerosene")
	k.SetT1(500)
	k.SetT2(1000)
	a := k.CpAvInt()
	k.SetAlpha(3.0)
	b := k.CpAvInt()
	if a == b {
		tst.Errorf("changing alpha should refresh interval mean c_p\n")
	}
}
