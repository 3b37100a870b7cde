// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func Test_air01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("air01")

	air := New("air")
	air.SetT(300)
	cp := air.Cp()
	if cp < 1000 || cp > 1020 {
		tst.Errorf("air c_p at 300K out of expected range: got %v\n", cp)
	}

	if !math.IsInf(air.Alpha(), 1) {
		tst.Errorf("air alpha should be +Inf, got %v\n", air.Alpha())
	}

	err := air.SetAlpha(2.0)
	if err == nil {
		tst.Errorf("setting alpha on air should fail\n")
	}
}

func Test_air02(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("air02")

	air := New("air")
	air.SetT1(400)
	air.SetT2(900)
	cpAvInt := air.CpAvInt()
	if cpAvInt <= 0 {
		tst.Errorf("interval mean c_p should be positive, got %v\n", cpAvInt)
	}

	k := air.K()
	if k <= 1 || k >= 2 {
		tst.Errorf("kappa out of plausible range: got %v\n", k)
	}
}

// Test_air03 cross-checks the mean-heat definition numerically: by
// construction c̄_p(T)·(T-T_ref) is the heat integral from T_ref to T, so its
// derivative with respect to T must equal the instantaneous c_p(T). This
// is checked away from the 700K polynomial break, where cpRealFunc is smooth.
func Test_air03(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("air03")

	air := New("air")
	T := 500.0
	dnum, err := num.DerivCentral(func(x float64, args ...interface{}) float64 {
		air.SetT(x)
		return air.CpAv() * (x - TRef)
	}, T, 1e-3)
	if err != nil {
		tst.Errorf("num.DerivCentral failed: %v\n", err)
		return
	}

	air.SetT(T)
	cpAna := air.Cp()

	utl.CheckAnaNum(tst, "d/dT[cpAv*(T-Tref)]", 1e-2, cpAna, dnum, false)
}
