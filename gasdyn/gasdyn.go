// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gasdyn implements the isentropic gas-dynamic relations used by the
// outlet and nozzle units: critical (sonic) speed, the reduced-velocity
// functions τ(λ) and π(λ), and the inversion λ(τ) needed to recover reduced
// velocity from a measured temperature ratio.
package gasdyn

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Acr returns the critical (sonic) speed a_cr = sqrt(2·k·R·T/(k+1)) for a
// gas at stagnation temperature Tstag with specific-heat ratio k and gas
// constant R.
func Acr(Tstag, k, R float64) float64 {
	return math.Sqrt(2 * k * R * Tstag / (k + 1))
}

// TauLam returns the isentropic stagnation-to-static temperature function
// τ(λ,k) = 1 - (k-1)/(k+1)·λ².
func TauLam(lam, k float64) float64 {
	return 1 - (k-1)/(k+1)*lam*lam
}

// PiLam returns the isentropic stagnation-to-static pressure function
// π(λ,k) = τ(λ,k)^(k/(k-1)).
func PiLam(lam, k float64) float64 {
	return math.Pow(TauLam(lam, k), k/(k-1))
}

// EpsLam returns the isentropic stagnation-to-static density function
// ε(λ,k) = τ(λ,k)^(1/(k-1)).
func EpsLam(lam, k float64) float64 {
	return math.Pow(TauLam(lam, k), 1/(k-1))
}

// LamFromTau inverts τ(λ,k) for λ, given 0 <= tau <= 1.
func LamFromTau(tau, k float64) (lam float64, err error) {
	if tau < 0 || tau > 1 {
		return 0, chk.Err("gasdyn: tau=%v out of [0,1] range\n", tau)
	}
	return math.Sqrt((1 - tau) * (k + 1) / (k - 1)), nil
}

// LamFromPi inverts π(λ,k) for λ, given 0 <= pi <= 1.
func LamFromPi(pi, k float64) (lam float64, err error) {
	if pi < 0 || pi > 1 {
		return 0, chk.Err("gasdyn: pi=%v out of [0,1] range\n", pi)
	}
	tau := math.Pow(pi, (k-1)/k)
	return LamFromTau(tau, k)
}
