// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

// MechConsumer is the single labour-inlet port owned by a unit that
// consumes mechanical work from a shaft (a Compressor, or an external Load).
type MechConsumer struct {
	LabourConsume *Port
}

func (m *MechConsumer) Init(u Unit) {
	m.LabourConsume = NewPort(u, RoleInlet)
}

// AllPorts returns the single labour-consume port.
func (m *MechConsumer) AllPorts() []*Port {
	return []*Port{m.LabourConsume}
}

func (m *MechConsumer) ConsumableLabour() (float64, bool) { return m.LabourConsume.Get() }
func (m *MechConsumer) SetConsumableLabour(v float64)     { m.LabourConsume.Set(v) }

// MechGenerator is the pair of labour-outlet ports owned by a unit that
// generates mechanical work onto two shafts (a Turbine).
type MechGenerator struct {
	LabourGen1   *Port
	LabourGen2   *Port
	TotalLabour  float64
	hasTotal     bool
}

func (m *MechGenerator) Init(u Unit) {
	m.LabourGen1 = NewPort(u, RoleOutlet)
	m.LabourGen2 = NewPort(u, RoleOutlet)
}

// AllPorts returns the two labour-generating ports.
func (m *MechGenerator) AllPorts() []*Port {
	return []*Port{m.LabourGen1, m.LabourGen2}
}

func (m *MechGenerator) GenLabour1() (float64, bool) { return m.LabourGen1.Get() }
func (m *MechGenerator) SetGenLabour1(v float64)     { m.LabourGen1.Set(v) }
func (m *MechGenerator) GenLabour2() (float64, bool) { return m.LabourGen2.Get() }
func (m *MechGenerator) SetGenLabour2(v float64)     { m.LabourGen2.Set(v) }

func (m *MechGenerator) SetTotalLabour(v float64) {
	m.TotalLabour = v
	m.hasTotal = true
}
