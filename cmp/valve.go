// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// Valve implements an isenthalpic throttling restriction. The pressure
// drop is either fixed (Dp) or computed from a flow coefficient (Cv,
// in m³/h at 1 bar ΔP) when Cv > 0 and the density is known.
type Valve struct {
	Name string  // instance name
	Dp   float64 // fixed pressure drop [Pa]
	Cv   float64 // flow coefficient; 0 = use fixed drop
}

// add model to factory
func init() {
	allocators["valve"] = func(name string) Component {
		return &Valve{Name: name, Dp: 50000.0}
	}
}

// Kind returns the kind key
func (o *Valve) Kind() string { return "valve" }

// GetName returns the instance name
func (o *Valve) GetName() string { return o.Name }

// Init initialises parameters
func (o *Valve) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "dp":
			o.Dp = p.V
		case "cv":
			o.Cv = p.V
		default:
			return chk.Err("valve: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets current parameters
func (o *Valve) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "dp", V: o.Dp},
		&dbf.P{N: "cv", V: o.Cv},
	}
}

// Compute drops the pressure at constant enthalpy. Temperature,
// enthalpy and entropy pass through unchanged; no throttling
// temperature change is modelled.
func (o *Valve) Compute(inlet fluid.State) (outlet fluid.State, res *Result) {
	var dp float64
	if o.Cv > 0 && inlet.Rho > 0 {
		// ΔP = (Q[m³/h] / Cv)² · (ρ/1000) · 1e5
		Q := inlet.Mdot / inlet.Rho * 3600.0
		dp = math.Pow(Q/o.Cv, 2) * (inlet.Rho / 1000.0) * 1e5
	} else {
		dp = o.Dp
	}

	outlet = fluid.State{
		P:       inlet.P - dp,
		T:       inlet.T,
		Mdot:    inlet.Mdot,
		Rho:     inlet.Rho,
		H:       inlet.H,
		S:       inlet.S,
		Quality: inlet.Quality,
		Name:    inlet.Name,
	}
	res = &Result{
		Name:  o.Name,
		Kind:  o.Kind(),
		Power: 0,
		Data: map[string]float64{
			"pressure_drop_bar": dp / 1e5,
		},
	}
	return
}
