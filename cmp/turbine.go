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

// Turbine implements a gas turbine with isentropic efficiency. For an
// ideal gas expanding through pressure ratio PR:
//   T_out_ideal = T_in · (1/PR)^((γ-1)/γ)
//   T_out = T_in - η·(T_in - T_out_ideal)
//   W = ṁ·cp·(T_in - T_out)
type Turbine struct {
	Name  string  // instance name
	Eff   float64 // isentropic efficiency (0,1]
	Pout  float64 // exhaust pressure [Pa]
	Gamma float64 // ratio of specific heats of the working gas
	Cp    float64 // specific heat at constant pressure [J/(kg·K)]
}

// add model to factory
func init() {
	allocators["turbine"] = func(name string) Component {
		return &Turbine{Name: name, Eff: 0.60, Gamma: 1.3, Cp: 1500.0}
	}
}

// Kind returns the kind key
func (o *Turbine) Kind() string { return "turbine" }

// GetName returns the instance name
func (o *Turbine) GetName() string { return o.Name }

// Init initialises parameters
func (o *Turbine) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "eta":
			o.Eff = p.V
		case "pout":
			o.Pout = p.V
		case "gam":
			o.Gamma = p.V
		case "cp":
			o.Cp = p.V
		default:
			return chk.Err("turbine: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets current parameters
func (o *Turbine) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "eta", V: o.Eff},
		&dbf.P{N: "pout", V: o.Pout},
		&dbf.P{N: "gam", V: o.Gamma},
		&dbf.P{N: "cp", V: o.Cp},
	}
}

// Compute expands the inlet gas to the exhaust pressure. Power is
// reported with the produced sign convention (negative). A non-positive
// exhaust pressure degenerates to PR = 1, i.e. no work extracted. The
// outlet density corrects for both pressure and temperature via the
// ideal-gas relation; skipping the temperature correction would
// understate the expansion.
func (o *Turbine) Compute(inlet fluid.State) (outlet fluid.State, res *Result) {
	PR := 1.0
	if o.Pout > 0 {
		PR = inlet.P / o.Pout
	}

	ToutIdeal := inlet.T * math.Pow(1.0/PR, (o.Gamma-1.0)/o.Gamma)
	Tout := inlet.T - o.Eff*(inlet.T-ToutIdeal)

	w := o.Cp * (inlet.T - Tout) // specific work extracted [J/kg]
	power := w * inlet.Mdot

	rhoOut := inlet.Rho
	if inlet.P > 0 && Tout > 0 {
		rhoOut = inlet.Rho * (o.Pout / inlet.P) * (inlet.T / Tout)
	}

	outlet = fluid.State{
		P:       o.Pout,
		T:       Tout,
		Mdot:    inlet.Mdot,
		Rho:     rhoOut,
		H:       inlet.H - w,
		S:       inlet.S,
		Quality: inlet.Quality,
		Name:    inlet.Name,
	}
	res = &Result{
		Name:  o.Name,
		Kind:  o.Kind(),
		Power: -power, // produced
		Data: map[string]float64{
			"pressure_ratio": PR,
			"efficiency":     o.Eff,
			"shaft_power_kW": power / 1e3,
		},
	}
	return
}
