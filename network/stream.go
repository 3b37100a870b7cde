// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import "math"

// Stream is a shared scalar between exactly two ports: the port that writes
// it (Output polarity) and the port that reads it (Input polarity). The
// upstream/downstream references are fixed at connection time and record the
// structural (Role-based) topology, independent of which side currently has
// write polarity.
type Stream struct {
	Value          float64
	PrevValue      float64
	Valid          bool
	PrevValid      bool
	UpstreamPort   *Port
	DownstreamPort *Port
	UpstreamUnit   Unit
	DownstreamUnit Unit
}

// NewStream allocates an unconnected, unwritten stream.
func NewStream() *Stream {
	return &Stream{}
}

// UpdatePreviousState freezes the current value as the previous-iteration
// value, called once per outer iteration before any unit updates.
func (s *Stream) UpdatePreviousState() {
	s.PrevValue = s.Value
	s.PrevValid = s.Valid
}

// Residual returns the stream's relative residual: |value-prev|/|value| when
// both are finite nonzero, 0 when both sides are exactly zero or both are
// infinite (the encoding used for excess-air ratio of pure air), and 1 (an
// unconverged sentinel) whenever the two sides disagree in kind or either is
// unset. This mirrors ConnectionSet.get_max_residual in the source, including
// its treatment of iteration 1 (both sides unset) as maximally unconverged.
func (s *Stream) Residual() float64 {
	if !s.Valid || !s.PrevValid {
		return 1
	}
	v, p := s.Value, s.PrevValue
	vInf, pInf := math.IsInf(v, 0), math.IsInf(p, 0)
	if vInf && pInf {
		return 0
	}
	if vInf != pInf {
		return 1
	}
	if v == 0 && p == 0 {
		return 0
	}
	if v == 0 || p == 0 {
		return 1
	}
	return math.Abs(v-p) / math.Abs(v)
}

// ApplyRelaxation blends the new value with the previous one:
// value ← previous + ω·(value − previous). Relaxation is skipped when either
// side is infinite (the ∞ encoding of excess-air ratio for pure air must
// never enter an arithmetic blend) or when the stream has no previous state
// yet.
func (s *Stream) ApplyRelaxation(omega float64) {
	if !s.Valid || !s.PrevValid {
		return
	}
	if math.IsInf(s.Value, 0) || math.IsInf(s.PrevValue, 0) {
		return
	}
	s.Value = s.PrevValue + omega*(s.Value-s.PrevValue)
}

// StreamSet groups the streams produced by one Connect call (five or seven
// for gas-dynamic connections, two for mechanical), used only to aggregate
// residuals and previous-state bookkeeping.
type StreamSet struct {
	Streams []*Stream
}

// UpdatePreviousState freezes every stream in the set.
func (ss *StreamSet) UpdatePreviousState() {
	for _, s := range ss.Streams {
		s.UpdatePreviousState()
	}
}

// MaxResidual returns the largest residual among the set's streams.
func (ss *StreamSet) MaxResidual() float64 {
	res := 0.0
	for _, s := range ss.Streams {
		if r := s.Residual(); r > res {
			res = r
		}
	}
	return res
}
