// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

// Unit is a thermodynamic component participating in the network. Units
// dispatch on their own kind for behaviour inference and local update; this
// package only orchestrates the shared port/stream plumbing.
//
// AllPorts returns the unit's complete, fixed collection of ports. Which of
// them currently read or write is a function of resolved Polarity, not of
// any list accumulated during behaviour inference — behaviour inference may
// run several passes before it settles, and a port's polarity can still be
// flipped on a later pass, so the read/write partition is always recomputed
// from AllPorts rather than cached.
type Unit interface {
	String() string
	SetBehaviour() error // resolves port polarities for one inference pass
	CheckInput() bool    // true if every input port has a value
	Update()             // recomputes output ports from input ports
	AllPorts() []*Port
}

// UpdateOutputConnectionsCurrentState applies relaxation to every
// Output-polarity port's stream; called once per unit per outer iteration
// after Update.
func UpdateOutputConnectionsCurrentState(u Unit, relaxCoef float64) {
	for _, p := range u.AllPorts() {
		if p.Polarity() == PolarityOutput {
			p.UpdateConnectionCurrentState(relaxCoef)
		}
	}
}

// HasUndefinedPorts is true if any of a unit's ports is still Undefined.
func HasUndefinedPorts(u Unit) bool {
	for _, p := range u.AllPorts() {
		if p.Polarity() == PolarityUndefined {
			return true
		}
	}
	return false
}
