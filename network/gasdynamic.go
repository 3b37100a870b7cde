// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

// GasDynamicPorts is the five inlet/five outlet port pair every
// gas-dynamic unit owns: stagnation temperature, stagnation pressure,
// excess-air ratio, relative work-fluid flow and cumulative relative fuel
// flow. Embed it in a unit and call Init with the owning unit.
type GasDynamicPorts struct {
	TempInlet      *Port
	TempOutlet     *Port
	PresInlet      *Port
	PresOutlet     *Port
	AlphaInlet     *Port
	AlphaOutlet    *Port
	GWorkFluidIn   *Port
	GWorkFluidOut  *Port
	GFuelInlet     *Port
	GFuelOutlet    *Port
}

// Init allocates the ten ports owned by u.
func (g *GasDynamicPorts) Init(u Unit) {
	g.TempInlet = NewPort(u, RoleInlet)
	g.TempOutlet = NewPort(u, RoleOutlet)
	g.PresInlet = NewPort(u, RoleInlet)
	g.PresOutlet = NewPort(u, RoleOutlet)
	g.AlphaInlet = NewPort(u, RoleInlet)
	g.AlphaOutlet = NewPort(u, RoleOutlet)
	g.GWorkFluidIn = NewPort(u, RoleInlet)
	g.GWorkFluidOut = NewPort(u, RoleOutlet)
	g.GFuelInlet = NewPort(u, RoleInlet)
	g.GFuelOutlet = NewPort(u, RoleOutlet)
}

// AllPorts returns all ten gas-dynamic ports (five Inlet-role, five
// Outlet-role, regardless of their currently resolved polarity).
func (g *GasDynamicPorts) AllPorts() []*Port {
	return []*Port{
		g.TempInlet, g.PresInlet, g.AlphaInlet, g.GWorkFluidIn, g.GFuelInlet,
		g.TempOutlet, g.PresOutlet, g.AlphaOutlet, g.GWorkFluidOut, g.GFuelOutlet,
	}
}

func (g *GasDynamicPorts) TStagIn() (float64, bool)  { return g.TempInlet.Get() }
func (g *GasDynamicPorts) TStagOut() (float64, bool) { return g.TempOutlet.Get() }
func (g *GasDynamicPorts) SetTStagOut(v float64)     { g.TempOutlet.Set(v) }
func (g *GasDynamicPorts) PStagIn() (float64, bool)  { return g.PresInlet.Get() }
func (g *GasDynamicPorts) PStagOut() (float64, bool) { return g.PresOutlet.Get() }
func (g *GasDynamicPorts) SetPStagOut(v float64)     { g.PresOutlet.Set(v) }
func (g *GasDynamicPorts) AlphaIn() (float64, bool)  { return g.AlphaInlet.Get() }
func (g *GasDynamicPorts) SetAlphaOut(v float64)     { g.AlphaOutlet.Set(v) }
func (g *GasDynamicPorts) GIn() (float64, bool)      { return g.GWorkFluidIn.Get() }
func (g *GasDynamicPorts) SetGOut(v float64)         { g.GWorkFluidOut.Set(v) }
func (g *GasDynamicPorts) GFuelIn() (float64, bool)  { return g.GFuelInlet.Get() }
func (g *GasDynamicPorts) SetGFuelOut(v float64)     { g.GFuelOutlet.Set(v) }

// GetUpstreamUnit returns the unit feeding this one's temperature inlet.
func (g *GasDynamicPorts) GetUpstreamUnit() Unit {
	return g.TempInlet.ConnectedPort().Owner()
}

// GetDownstreamUnit returns the unit fed by this one's temperature outlet.
func (g *GasDynamicPorts) GetDownstreamUnit() Unit {
	return g.TempOutlet.ConnectedPort().Owner()
}

// StaticOutletPorts adds the two extra outlet ports of a unit whose exit
// condition is expressed at a static (non-stagnation) state: the static
// temperature it reports downstream and the static pressure it must receive
// from its (structural) downstream peer to close its own local solve.
type StaticOutletPorts struct {
	StatTempOutlet *Port
	StatPresOutlet *Port
}

func (s *StaticOutletPorts) Init(u Unit) {
	s.StatTempOutlet = NewPort(u, RoleOutlet)
	s.StatPresOutlet = NewPort(u, RoleOutlet)
}

// AllPorts returns the two static-outlet ports.
func (s *StaticOutletPorts) AllPorts() []*Port {
	return []*Port{s.StatTempOutlet, s.StatPresOutlet}
}

// PStatOut reads the static pressure handed back from downstream.
func (s *StaticOutletPorts) PStatOut() (float64, bool) { return s.StatPresOutlet.Get() }

// SetTStatOut writes the static exit temperature.
func (s *StaticOutletPorts) SetTStatOut(v float64) { s.StatTempOutlet.Set(v) }

// StaticInletPorts adds the two extra inlet ports of a unit that receives a
// static-state pair from a structurally-upstream static-outlet unit
// (Atmosphere receiving from Outlet/Nozzle).
type StaticInletPorts struct {
	StatTempInlet *Port
	StatPresInlet *Port
}

func (s *StaticInletPorts) Init(u Unit) {
	s.StatTempInlet = NewPort(u, RoleInlet)
	s.StatPresInlet = NewPort(u, RoleInlet)
}

// AllPorts returns the two static-inlet ports.
func (s *StaticInletPorts) AllPorts() []*Port {
	return []*Port{s.StatTempInlet, s.StatPresInlet}
}

// SetPStatIn writes the static pressure back to the upstream static-outlet
// unit (e.g. Atmosphere publishing p0 to the Outlet unit).
func (s *StaticInletPorts) SetPStatIn(v float64) { s.StatPresInlet.Set(v) }

// TStatIn reads the static temperature reported by the upstream static-outlet
// unit.
func (s *StaticInletPorts) TStatIn() (float64, bool) { return s.StatTempInlet.Get() }
