// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/network"
)

// Load terminates a shaft. With Power zero it is the free load used to
// close out a power turbine's second shaft: it publishes zero consumption
// so the turbine's behaviour-setting pass can resolve without an external
// power draw. With Power non-zero it instead represents a fixed external
// consumer and reads whatever the shaft supplies.
type Load struct {
	mech network.MechConsumer

	Power float64 // fixed external power draw; 0 means this load is free
}

// NewLoad allocates a free load (zero fixed power draw).
func NewLoad() *Load {
	o := &Load{}
	o.mech.Init(o)
	return o
}

// Init parses named parameters.
func (o *Load) Init(prms gas.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "power":
			o.Power = p.V
		default:
			return chk.Err("load: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

func (o *Load) String() string { return "Load" }

func (o *Load) AllPorts() []*network.Port { return o.mech.AllPorts() }

func (o *Load) Mechanical() *network.MechConsumer { return &o.mech }

// CheckInput is always true: a load never waits on anything else.
func (o *Load) CheckInput() bool { return true }

// SetBehaviour makes the load's port an Output publishing zero consumption
// when free, or an Input reading the shaft's supplied power otherwise.
func (o *Load) SetBehaviour() error {
	if o.Power == 0 {
		return o.mech.LabourConsume.MakeOutput()
	}
	return o.mech.LabourConsume.MakeInput()
}

// Update publishes zero consumption for a free load; a fixed load has
// nothing to compute, the shaft already supplies whatever it draws.
func (o *Load) Update() {
	if o.Power == 0 {
		o.mech.SetConsumableLabour(0)
	}
}
