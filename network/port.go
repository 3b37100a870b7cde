// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package network implements the typed port/stream dataflow graph that
// connects gas-turbine cycle units: ports, streams, behaviour inference and
// topological ordering. It carries no unit-specific thermodynamics; that
// lives in package units.
package network

import "github.com/cpmech/gosl/chk"

// Role is the structural side of a port: which end of a Stream it binds to.
// Role is fixed at port creation and never changes.
type Role int

const (
	RoleInlet Role = iota
	RoleOutlet
)

// Polarity is whether a port reads (Input) or writes (Output) its stream
// during one outer iteration. Polarity starts Undefined and is resolved by
// behaviour inference (§4.2); it may differ from Role.
type Polarity int

const (
	PolarityInput Polarity = iota
	PolarityOutput
	PolarityUndefined
)

func (p Polarity) String() string {
	switch p {
	case PolarityInput:
		return "Input"
	case PolarityOutput:
		return "Output"
	default:
		return "Undefined"
	}
}

// Port is a fixed attachment point on a Unit. Role never changes after
// creation; Polarity is resolved dynamically during behaviour setting.
type Port struct {
	owner    Unit
	role     Role
	polarity Polarity
	stream   *Stream
}

// NewPort allocates a port owned by the given unit with a fixed role.
func NewPort(owner Unit, role Role) *Port {
	return &Port{owner: owner, role: role, polarity: PolarityUndefined}
}

// Owner returns the unit this port belongs to.
func (p *Port) Owner() Unit { return p.owner }

// Role returns the port's fixed structural role.
func (p *Port) Role() Role { return p.role }

// Polarity returns the port's current resolved polarity.
func (p *Port) Polarity() Polarity { return p.polarity }

// Stream returns the stream linked to this port, or nil if unconnected.
func (p *Port) Stream() *Stream { return p.stream }

// SetConnection links this port to s, wiring the stream's upstream/downstream
// references according to the port's role.
func (p *Port) SetConnection(s *Stream) {
	p.stream = s
	switch p.role {
	case RoleOutlet:
		s.UpstreamPort = p
		s.UpstreamUnit = p.owner
	case RoleInlet:
		s.DownstreamPort = p
		s.DownstreamUnit = p.owner
	}
}

// ConnectedPort returns the port on the other side of this port's stream.
func (p *Port) ConnectedPort() *Port {
	if p.stream == nil {
		chk.Panic("network: port hasn't been connected with another port yet\n")
	}
	switch p.role {
	case RoleOutlet:
		return p.stream.DownstreamPort
	default:
		return p.stream.UpstreamPort
	}
}

// MakeInput resolves this port's polarity to Input. If the connected port is
// Undefined it is flipped to Output; if it is already Input, a
// PortPolarityConflict error is returned.
func (p *Port) MakeInput() error {
	p.polarity = PolarityInput
	peer := p.ConnectedPort()
	if peer.polarity == PolarityInput {
		return errPortPolarityConflict(p, PolarityInput)
	}
	if peer.polarity == PolarityUndefined {
		return peer.MakeOutput()
	}
	return nil
}

// MakeOutput resolves this port's polarity to Output. If the connected port
// is Undefined it is flipped to Input; if it is already Output, a
// PortPolarityConflict error is returned.
func (p *Port) MakeOutput() error {
	p.polarity = PolarityOutput
	peer := p.ConnectedPort()
	if peer.polarity == PolarityOutput {
		return errPortPolarityConflict(p, PolarityOutput)
	}
	if peer.polarity == PolarityUndefined {
		return peer.MakeInput()
	}
	return nil
}

// Get reads the current value held by the linked stream. Valid is false if
// the stream has never been written.
func (p *Port) Get() (value float64, valid bool) {
	return p.stream.Value, p.stream.Valid
}

// Set writes value to the linked stream. Only an Output-polarity port may
// call Set; calling it otherwise is a programming error in a unit's update
// logic and panics.
func (p *Port) Set(value float64) {
	if p.polarity != PolarityOutput {
		chk.Panic("network: cannot set value through a non-output port (polarity=%v)\n", p.polarity)
	}
	p.stream.Value = value
	p.stream.Valid = true
}

// UpdateConnectionCurrentState applies relaxation to this port's stream.
func (p *Port) UpdateConnectionCurrentState(relaxCoef float64) {
	p.stream.ApplyRelaxation(relaxCoef)
}

// SeedInitialGuess writes value to the linked stream regardless of this
// port's polarity, and only if the stream has not already been written.
// Called from a unit's SetBehaviour, during behaviour inference, to
// bootstrap a value the first outer pass needs before any unit has written
// it (a turbine's or combustion chamber's outlet pressure, the
// atmosphere's exhaust temperature).
func (p *Port) SeedInitialGuess(value float64) {
	if p.stream == nil || p.stream.Valid {
		return
	}
	p.stream.Value = value
	p.stream.Valid = true
}
