// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// Pump implements a pump model with isentropic efficiency. For an
// incompressible fluid the ideal specific work is ΔP/ρ and the actual
// specific work is the ideal divided by the efficiency; the absorbed
// work heats the fluid by w/cp.
type Pump struct {
	Name string  // instance name
	Eff  float64 // isentropic efficiency (0,1]
	Pout float64 // required outlet pressure [Pa]
	Cp   float64 // fluid specific heat [J/(kg·K)]; 0 = estimate from density
}

// add model to factory
func init() {
	allocators["pump"] = func(name string) Component {
		return &Pump{Name: name, Eff: 0.65}
	}
}

// Kind returns the kind key
func (o *Pump) Kind() string { return "pump" }

// GetName returns the instance name
func (o *Pump) GetName() string { return o.Name }

// Init initialises parameters
func (o *Pump) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "eta":
			o.Eff = p.V
		case "pout":
			o.Pout = p.V
		case "cp":
			o.Cp = p.V
		default:
			return chk.Err("pump: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets current parameters
func (o *Pump) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "eta", V: o.Eff},
		&dbf.P{N: "pout", V: o.Pout},
		&dbf.P{N: "cp", V: o.Cp},
	}
}

// Compute raises the inlet to the required outlet pressure. Density
// and entropy pass through unchanged; the entropy rise from
// inefficiency is not modelled. Pathological inputs (η ≤ 0, ρ ≤ 0)
// are clamped rather than rejected.
func (o *Pump) Compute(inlet fluid.State) (outlet fluid.State, res *Result) {
	dp := o.Pout - inlet.P
	rho := inlet.Rho
	if rho <= 0 {
		rho = 1000.0
	}

	wIdeal := dp / rho
	wActual := wIdeal
	if o.Eff > 0 {
		wActual = wIdeal / o.Eff
	}
	power := wActual * inlet.Mdot

	cp := o.Cp
	if cp <= 0 {
		if rho > 500 {
			cp = 2000.0 // liquid-like
		} else {
			cp = 1000.0 // gas-like
		}
	}
	dT := wActual / cp

	outlet = fluid.State{
		P:       o.Pout,
		T:       inlet.T + dT,
		Mdot:    inlet.Mdot,
		Rho:     rho,
		H:       inlet.H + wActual,
		S:       inlet.S,
		Quality: inlet.Quality,
		Name:    inlet.Name,
	}
	res = &Result{
		Name:  o.Name,
		Kind:  o.Kind(),
		Power: power,
		Data: map[string]float64{
			"pressure_rise_bar": dp / 1e5,
			"efficiency":        o.Eff,
			"specific_work":     wActual,
		},
	}
	return
}
