// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmp implements feed-system component models: pumps,
// turbines, valves, pipes and heat exchangers
package cmp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// Result holds the diagnostics of one component evaluation. Components
// hold no state between evaluations; everything a caller may want to
// report afterwards is returned here.
type Result struct {
	Name  string             // component name
	Kind  string             // component kind; e.g. "pump"
	Power float64            // net shaft power [W]; positive = consumed, negative = produced
	Cold  *fluid.State       // secondary (cold-side) outlet; heat exchangers only
	Data  map[string]float64 // free-form diagnostics for reporting; advisory only
}

// Component is implemented by all feed-system unit models. Compute
// takes the inlet state and returns the outlet state together with the
// evaluation diagnostics; it must conserve mass flow and must not
// retain any per-call state, so one instance may be reused across
// repeated or concurrent solves.
type Component interface {
	Kind() string                                        // kind key; e.g. "pump"
	GetName() string                                     // instance name
	Init(prms dbf.Params) error                            // initialises parameters
	GetPrms() dbf.Params                                   // gets current parameters
	Compute(inlet fluid.State) (fluid.State, *Result)    // runs the model
}

// allocators holds all available component kinds
var allocators = map[string]func(name string) Component{}

// New allocates a component of the given kind with default parameters
func New(kind, name string) (c Component, err error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("component kind %q is not available in 'cmp' database", kind)
	}
	return allocator(name), nil
}
