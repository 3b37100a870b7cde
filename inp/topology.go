// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads a JSON topology description — the unit list and the
// connection list — into the types the solver package wires together. It
// is the one place in this repository that touches encoding/json; the core
// graph and solver packages never do.
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/network"
	"github.com/cpmech/turbocycle/units"
)

// UnitData holds one unit's JSON description: a unique name used by
// ConnectionData to reference it, the unit kind (registered in
// unitAllocators) and its named parameters.
type UnitData struct {
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Prms  gas.Prms `json:"prms"`
}

// ConnectionData holds one connection's JSON description. Kind selects
// which solver Connect method runs; Upstream/Downstream are used by
// gas_dynamic and static_gas_dynamic connections, Generator/Consumer1/
// Consumer2 by mechanical ones.
type ConnectionData struct {
	Kind       string `json:"kind"` // "gas_dynamic", "static_gas_dynamic", "mechanical"
	Upstream   string `json:"upstream,omitempty"`
	Downstream string `json:"downstream,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Consumer1  string `json:"consumer1,omitempty"`
	Consumer2  string `json:"consumer2,omitempty"`
}

// Topology is the JSON-decoded description of a cycle: its unit list and
// connection list, in the order a solver's AddUnit/Connect* calls expect.
type Topology struct {
	Units       []*UnitData       `json:"units"`
	Connections []*ConnectionData `json:"connections"`
}

// unitAllocators maps a JSON "kind" string to a fresh, default-initialised
// network.Unit. Init(prms) is applied afterwards by BuildUnits.
var unitAllocators = map[string]func() network.Unit{
	"compressor":           func() network.Unit { return units.NewCompressor(0) },
	"turbine":              func() network.Unit { return units.NewTurbine() },
	"combustion_chamber":   func() network.Unit { return units.NewCombustionChamber(0) },
	"source":               func() network.Unit { return units.NewSource() },
	"sink":                 func() network.Unit { return units.NewSink() },
	"inlet":                func() network.Unit { return units.NewInlet() },
	"outlet":               func() network.Unit { return units.NewOutlet() },
	"nozzle":               func() network.Unit { return units.NewFullExtensionNozzle() },
	"atmosphere":           func() network.Unit { return units.NewAtmosphere() },
	"load":                 func() network.Unit { return units.NewLoad() },
}

// unitIniter is implemented by every unit kind's Init(prms) method.
type unitIniter interface {
	Init(prms gas.Prms) error
}

// ReadTopology reads and decodes a JSON topology file.
func ReadTopology(fn string) (*Topology, error) {
	b, err := utl.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("inp: cannot open topology file %s: %v\n", fn, err)
	}
	var t Topology
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, chk.Err("inp: cannot unmarshal topology file %s: %v\n", fn, err)
	}
	return &t, nil
}

// BuildUnits allocates and initialises one network.Unit per UnitData entry,
// returning them keyed by name for ConnectionData lookups.
func BuildUnits(t *Topology) (map[string]network.Unit, error) {
	byName := make(map[string]network.Unit, len(t.Units))
	for _, ud := range t.Units {
		alloc, ok := unitAllocators[ud.Kind]
		if !ok {
			return nil, chk.Err("inp: unit %q has unknown kind %q\n", ud.Name, ud.Kind)
		}
		u := alloc()
		if initer, ok := u.(unitIniter); ok {
			if err := initer.Init(ud.Prms); err != nil {
				return nil, chk.Err("inp: unit %q: %v\n", ud.Name, err)
			}
		}
		byName[ud.Name] = u
	}
	return byName, nil
}
