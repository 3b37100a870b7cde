// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver orchestrates the network package's port graph into a
// fixed-point cycle solve: connection assembly, behaviour inference,
// topological ordering, work-fluid assignment, and the relaxed Picard outer
// loop that drives every unit's local update to a self-consistent state.
package solver

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/turbocycle/gas"
	"github.com/cpmech/turbocycle/network"
	"github.com/cpmech/turbocycle/units"
)

// gasDynamicUnit is implemented by any unit exposing the standard
// gas-dynamic port group.
type gasDynamicUnit interface {
	network.Unit
	GasDynamic() *network.GasDynamicPorts
}

// staticOutletUnit is implemented by a unit whose exit condition is static
// (Outlet, FullExtensionNozzle).
type staticOutletUnit interface {
	gasDynamicUnit
	StaticOutlet() *network.StaticOutletPorts
}

// staticInletUnit is implemented by a unit receiving a static state from a
// structurally-upstream static-outlet unit (Atmosphere).
type staticInletUnit interface {
	gasDynamicUnit
	StaticInlet() *network.StaticInletPorts
}

// mechConsumerUnit is implemented by a unit that draws shaft work
// (Compressor or Load).
type mechConsumerUnit interface {
	network.Unit
	Mechanical() *network.MechConsumer
}

// mechGeneratorUnit is implemented by a unit that produces shaft work
// (Turbine).
type mechGeneratorUnit interface {
	network.Unit
	Mechanical() *network.MechGenerator
}

// NetworkSolver assembles a gas-turbine cycle topology and solves it to a
// self-consistent steady state by relaxed Picard iteration.
type NetworkSolver struct {
	units []network.Unit

	RelaxCoef     float64
	Precision     float64
	MaxIterNumber int

	// ResidualHistory records the max stream residual of every outer
	// iteration, win or fail, preallocated to MaxIterNumber.
	ResidualHistory []float64

	streamSets []*network.StreamSet
}

// NewNetworkSolver allocates a solver with the default relaxation,
// precision and iteration cap.
func NewNetworkSolver() *NetworkSolver {
	return &NetworkSolver{RelaxCoef: 1.0, Precision: 1e-2, MaxIterNumber: 50}
}

// AddUnit registers a unit with the solver. Every unit participating in a
// connection must be registered first.
func (o *NetworkSolver) AddUnit(u network.Unit) {
	o.units = append(o.units, u)
}

func (o *NetworkSolver) isRegistered(u network.Unit) bool {
	for _, v := range o.units {
		if v == u {
			return true
		}
	}
	return false
}

// ConnectGasDynamic wires upstream's gas-dynamic outlet ports to
// downstream's gas-dynamic inlet ports, creating the five shared streams
// (stagnation temperature, pressure, α, g, g_fuel).
func (o *NetworkSolver) ConnectGasDynamic(upstream, downstream gasDynamicUnit) (*network.StreamSet, error) {
	if !o.isRegistered(upstream) || !o.isRegistered(downstream) {
		return nil, network.ErrTopologyError("connect_gas_dynamic references a unit not registered with the solver")
	}
	up, down := upstream.GasDynamic(), downstream.GasDynamic()
	pairs := [][2]*network.Port{
		{up.TempOutlet, down.TempInlet},
		{up.PresOutlet, down.PresInlet},
		{up.AlphaOutlet, down.AlphaInlet},
		{up.GWorkFluidOut, down.GWorkFluidIn},
		{up.GFuelOutlet, down.GFuelInlet},
	}
	ss := connectPairs(pairs)
	o.streamSets = append(o.streamSets, ss)
	return ss, nil
}

// ConnectStaticGasDynamic wires a static-outlet unit (Outlet, nozzle) to a
// static-inlet unit (Atmosphere), in addition to the usual gas-dynamic
// connection, sharing the static temperature and static pressure streams.
func (o *NetworkSolver) ConnectStaticGasDynamic(upstream staticOutletUnit, downstream staticInletUnit) (*network.StreamSet, error) {
	ss, err := o.ConnectGasDynamic(upstream, downstream)
	if err != nil {
		return nil, err
	}
	so, si := upstream.StaticOutlet(), downstream.StaticInlet()
	extra := connectPairs([][2]*network.Port{
		{so.StatTempOutlet, si.StatTempInlet},
		{si.StatPresInlet, so.StatPresOutlet},
	})
	ss.Streams = append(ss.Streams, extra.Streams...)
	return ss, nil
}

// ConnectMechanical wires a generator's two labour-outlet ports to two
// consumers' labour-inlet ports, creating the two mechanical streams.
func (o *NetworkSolver) ConnectMechanical(generator mechGeneratorUnit, consumer1, consumer2 mechConsumerUnit) (*network.StreamSet, error) {
	if !o.isRegistered(generator) || !o.isRegistered(consumer1) || !o.isRegistered(consumer2) {
		return nil, network.ErrTopologyError("connect_mechanical references a unit not registered with the solver")
	}
	gen := generator.Mechanical()
	ss := connectPairs([][2]*network.Port{
		{gen.LabourGen1, consumer1.Mechanical().LabourConsume},
		{gen.LabourGen2, consumer2.Mechanical().LabourConsume},
	})
	o.streamSets = append(o.streamSets, ss)
	return ss, nil
}

// connectPairs allocates one stream per (outlet, inlet) pair and wires both
// ports to it.
func connectPairs(pairs [][2]*network.Port) *network.StreamSet {
	ss := &network.StreamSet{}
	for _, pair := range pairs {
		s := network.NewStream()
		pair[0].SetConnection(s)
		pair[1].SetConnection(s)
		ss.Streams = append(ss.Streams, s)
	}
	return ss
}

// setUnitsBehaviour runs behaviour inference to a fixed point: repeatedly
// call SetBehaviour on every unit until none has an Undefined port, or fail
// after MaxIterNumber passes.
func (o *NetworkSolver) setUnitsBehaviour() error {
	for i := 0; i < o.MaxIterNumber; i++ {
		for _, u := range o.units {
			if err := u.SetBehaviour(); err != nil {
				return err
			}
		}
		settled := true
		for _, u := range o.units {
			if network.HasUndefinedPorts(u) {
				settled = false
				break
			}
		}
		if settled {
			return nil
		}
	}
	return network.ErrBehaviourSettingFailed(o.MaxIterNumber)
}

// getSortedUnitList finds the unique Atmosphere unit and walks the
// gas-dynamic chain via each unit's outlet-port linked stream to its
// downstream unit, producing the upstream-to-downstream order the outer
// loop updates in; free-standing Loads (not reachable by that walk) are
// appended at the end.
func (o *NetworkSolver) getSortedUnitList() ([]network.Unit, error) {
	var atmo gasDynamicUnit
	for _, u := range o.units {
		if a, ok := u.(*units.Atmosphere); ok {
			if atmo != nil {
				return nil, network.ErrTopologyError("more than one Atmosphere unit registered")
			}
			atmo = a
		}
	}
	if atmo == nil {
		return nil, network.ErrTopologyError("no Atmosphere unit registered")
	}

	var atmoUnit network.Unit = atmo
	sorted := []network.Unit{atmoUnit}
	visited := map[network.Unit]bool{atmoUnit: true}
	current := atmo
	for {
		next := current.GasDynamic().GetDownstreamUnit()
		if next == nil || visited[next] {
			break
		}
		sorted = append(sorted, next)
		visited[next] = true
		gd, ok := next.(gasDynamicUnit)
		if !ok {
			break
		}
		current = gd
	}

	for _, u := range o.units {
		if _, isLoad := u.(*units.Load); isLoad && !visited[u] {
			sorted = append(sorted, u)
			visited[u] = true
		}
	}
	if len(sorted) != len(o.units) {
		return nil, network.ErrTopologyError("gas-dynamic walk from Atmosphere did not reach every registered unit")
	}
	return sorted, nil
}

// setWorkFluid assigns each unit a fresh work-fluid instance from the
// appropriate factory: cold for Inlet/Compressor, hot for Outlet/Turbine/
// Nozzle, hot-in/cold-out for Atmosphere, hot main + cold return for
// Source, and cold-in/hot-out for a CombustionChamber's first occurrence in
// flow order with hot-in/hot-out for any subsequent reheater.
func setWorkFluid(sorted []network.Unit, coldFluid, hotFluid func() gas.Fluid) {
	seenChamber := false
	for _, u := range sorted {
		switch v := u.(type) {
		case *units.Inlet:
			v.WorkFluid = coldFluid()
		case *units.Compressor:
			v.WorkFluid = coldFluid()
		case *units.Outlet:
			v.WorkFluid = hotFluid()
		case *units.Turbine:
			v.WorkFluid = hotFluid()
		case *units.FullExtensionNozzle:
			v.WorkFluid = hotFluid()
		case *units.Atmosphere:
			v.WorkFluidIn = hotFluid()
			v.WorkFluidOut = coldFluid()
		case *units.Source:
			v.WorkFluid = hotFluid()
			v.ReturnFluid = coldFluid()
		case *units.CombustionChamber:
			if !seenChamber {
				v.WorkFluidIn = coldFluid()
				seenChamber = true
			} else {
				v.WorkFluidIn = hotFluid()
			}
			v.WorkFluidOut = hotFluid()
		}
	}
}

// updateUnitsState runs one outer pass: a pre-pass over every free Load (so
// a power turbine reading a fixed power draw sees it before the full pass
// runs), then a full check-and-update pass over every unit in sorted order,
// relaxing each unit's output streams as soon as it updates.
func (o *NetworkSolver) updateUnitsState(sorted []network.Unit) {
	for _, u := range sorted {
		if ld, ok := u.(*units.Load); ok {
			ld.Update()
			network.UpdateOutputConnectionsCurrentState(ld, o.RelaxCoef)
		}
	}
	for _, u := range sorted {
		u.Update()
		network.UpdateOutputConnectionsCurrentState(u, o.RelaxCoef)
	}
}

func (o *NetworkSolver) updatePreviousConnectionsState() {
	for _, ss := range o.streamSets {
		ss.UpdatePreviousState()
	}
}

func (o *NetworkSolver) maxResidual() float64 {
	res := 0.0
	for _, ss := range o.streamSets {
		if r := ss.MaxResidual(); r > res {
			res = r
		}
	}
	return res
}

// Solve performs behaviour inference, topological ordering, work-fluid
// assignment, and the relaxed Picard outer loop, returning once the max
// stream residual drops below Precision. ctx is checked once per outer
// pass, letting a caller abort a runaway iteration; it does not make the
// solver concurrent or reentrant.
func (o *NetworkSolver) Solve(ctx context.Context, coldFluid, hotFluid func() gas.Fluid) error {
	if err := o.setUnitsBehaviour(); err != nil {
		return err
	}
	sorted, err := o.getSortedUnitList()
	if err != nil {
		return err
	}
	setWorkFluid(sorted, coldFluid, hotFluid)

	o.ResidualHistory = make([]float64, 0, o.MaxIterNumber)
	for i := 0; i < o.MaxIterNumber; i++ {
		select {
		case <-ctx.Done():
			return chk.Err("solver: %v\n", ctx.Err())
		default:
		}
		o.updatePreviousConnectionsState()
		o.updateUnitsState(sorted)
		res := o.maxResidual()
		o.ResidualHistory = append(o.ResidualHistory, res)
		if res < o.Precision {
			return nil
		}
	}
	return network.ErrConvergenceFailed(o.MaxIterNumber)
}
