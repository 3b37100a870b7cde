// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import "github.com/cpmech/gosl/chk"

// errPortPolarityConflict builds the error raised when a set_behaviour
// assertion would make both ends of a stream the same polarity — an
// ill-posed or over-constrained topology.
func errPortPolarityConflict(p *Port, want Polarity) error {
	return chk.Err("network: PortPolarityConflict: connected port must not have the same polarity: %v (owner=%v)\n",
		want, p.owner)
}

// ErrTopologyError is returned when a connect call references a unit that
// was never registered with the solver.
func ErrTopologyError(msg string) error {
	return chk.Err("network: TopologyError: %s\n", msg)
}

// ErrMissingInitialGuess is returned when a turbine or combustion chamber
// that needs a seed value (backward-propagating pressure, or a combustor's
// seed α_out) did not receive one.
func ErrMissingInitialGuess(msg string) error {
	return chk.Err("network: MissingInitialGuess: %s\n", msg)
}

// ErrBehaviourSettingFailed is returned when ports remain Undefined after the
// maximum number of inference passes.
func ErrBehaviourSettingFailed(maxIter int) error {
	return chk.Err("network: BehaviourSettingFailed: setting of ports behaviour is not obtained after %d passes\n", maxIter)
}

// ErrConvergenceFailed is returned when the outer residual did not drop below
// tolerance within the maximum number of iterations.
func ErrConvergenceFailed(maxIter int) error {
	return chk.Err("network: ConvergenceFailed: convergence is not obtained after %d iterations\n", maxIter)
}
