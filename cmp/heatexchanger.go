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

// HeatExchanger implements a counter-flow heat exchanger with the
// effectiveness-NTU method:
//   Q = ε · Q_max,   Q_max = C_min · (T_hot_in - T_cold_in)
// where C = ṁ·cp on each side and C_min is the smaller of the two.
// Compute takes the hot-side inlet; the cold-side inlet is part of the
// model configuration and the cold-side outlet is returned in
// Result.Cold.
type HeatExchanger struct {
	Name   string      // instance name
	Eff    float64     // effectiveness [0,1]
	DpHot  float64     // hot-side pressure drop [Pa]
	DpCold float64     // cold-side pressure drop [Pa]
	CpHot  float64     // hot-side specific heat [J/(kg·K)]
	CpCold float64     // cold-side specific heat [J/(kg·K)]
	ColdIn fluid.State // cold-side inlet state
}

// add model to factory
func init() {
	allocators["heat_exchanger"] = func(name string) Component {
		return &HeatExchanger{Name: name, Eff: 0.80, DpHot: 50000.0, DpCold: 100000.0, CpHot: 1500.0, CpCold: 2500.0}
	}
}

// Kind returns the kind key
func (o *HeatExchanger) Kind() string { return "heat_exchanger" }

// GetName returns the instance name
func (o *HeatExchanger) GetName() string { return o.Name }

// Init initialises parameters
func (o *HeatExchanger) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "eps":
			o.Eff = p.V
		case "dphot":
			o.DpHot = p.V
		case "dpcold":
			o.DpCold = p.V
		case "cphot":
			o.CpHot = p.V
		case "cpcold":
			o.CpCold = p.V
		default:
			return chk.Err("heat_exchanger: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets current parameters
func (o *HeatExchanger) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "eps", V: o.Eff},
		&dbf.P{N: "dphot", V: o.DpHot},
		&dbf.P{N: "dpcold", V: o.DpCold},
		&dbf.P{N: "cphot", V: o.CpHot},
		&dbf.P{N: "cpcold", V: o.CpCold},
	}
}

// Compute transfers heat from the hot inlet to the configured cold
// inlet. The cold outlet temperature can never exceed the hot inlet
// temperature in a counter-flow exchanger; if the ε-NTU result would
// break that, the cold-side rise is clamped to the inlet temperature
// difference, Q and the hot-side drop are recomputed from the clamped
// value, and the clamp is recorded in Result.Data["pinch_clamped"].
func (o *HeatExchanger) Compute(hotIn fluid.State) (hotOut fluid.State, res *Result) {
	coldIn := o.ColdIn

	Chot := hotIn.Mdot * o.CpHot
	Ccold := coldIn.Mdot * o.CpCold
	Cmin := math.Min(Chot, Ccold)

	Qmax := Cmin * (hotIn.T - coldIn.T)
	Q := o.Eff * math.Max(Qmax, 0.0)

	dThot, dTcold := 0.0, 0.0
	if Chot > 0 {
		dThot = Q / Chot
	}
	if Ccold > 0 {
		dTcold = Q / Ccold
	}

	// pinch point guard
	pinchClamped := 0.0
	if coldIn.T+dTcold > hotIn.T && dTcold > 0 {
		pinchClamped = 1.0
		dTcold = math.Max(hotIn.T-coldIn.T, 0.0)
		Q = 0.0
		if Ccold > 0 {
			Q = dTcold * Ccold
		}
		dThot = 0.0
		if Chot > 0 {
			dThot = Q / Chot
		}
	}

	hotOut = fluid.State{
		P:       hotIn.P - o.DpHot,
		T:       hotIn.T - dThot,
		Mdot:    hotIn.Mdot,
		Rho:     hotIn.Rho,
		Quality: hotIn.Quality,
		Name:    hotIn.Name,
	}
	if hotIn.Mdot > 0 {
		hotOut.H = hotIn.H - Q/hotIn.Mdot
	}

	coldOut := fluid.State{
		P:       coldIn.P - o.DpCold,
		T:       coldIn.T + dTcold,
		Mdot:    coldIn.Mdot,
		Rho:     coldIn.Rho,
		Quality: coldIn.Quality,
		Name:    coldIn.Name,
	}
	if coldIn.Mdot > 0 {
		coldOut.H = coldIn.H + Q/coldIn.Mdot
	}

	res = &Result{
		Name:  o.Name,
		Kind:  o.Kind(),
		Power: 0,
		Cold:  &coldOut,
		Data: map[string]float64{
			"heat_transfer_kW": Q / 1e3,
			"effectiveness":    o.Eff,
			"dp_hot_bar":       o.DpHot / 1e5,
			"dp_cold_bar":      o.DpCold / 1e5,
			"pinch_clamped":    pinchClamped,
		},
	}
	return
}
