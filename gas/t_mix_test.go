// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_mix01(tst *testing.T) {

	prevTs := utl.Tsilent
	defer func() {
		utl.Tsilent = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	chk.PrintTitle("mix01")

	hot := New("kerosene")
	hot.SetAlpha(2.5)
	cold := New("kerosene")
	cold.SetAlpha(2.5)

	res, err := Mix(hot, cold, 1200, 700, 0.95, 0.05, 2.6)
	if err != nil {
		tst.Errorf("Mix failed: %v\n", err)
		return
	}
	if res.Temp <= 700 || res.Temp >= 1200 {
		tst.Errorf("mixture temperature should lie strictly between the two inlet temperatures: got %v\n", res.Temp)
	}
	if res.Residual >= 1e-3 {
		tst.Errorf("Mix did not converge: residual %v\n", res.Residual)
	}
}
