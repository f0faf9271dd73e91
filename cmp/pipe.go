// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/luiserpenbach/RESA-Pro/feed"
	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// Pipe implements a feed line segment: friction, minor (fitting) and
// hydrostatic losses, delegating the drop computation to feed.Line
type Pipe struct {
	Name string    // instance name
	Line feed.Line // line geometry
	Mu   float64   // dynamic viscosity [Pa·s]
}

// add model to factory
func init() {
	allocators["pipe"] = func(name string) Component {
		return &Pipe{
			Name: name,
			Line: feed.Line{Diameter: 0.012, Length: 1.0, Kminor: 5.0, Roughness: 1.5e-6},
			Mu:   1e-3,
		}
	}
}

// Kind returns the kind key
func (o *Pipe) Kind() string { return "pipe" }

// GetName returns the instance name
func (o *Pipe) GetName() string { return o.Name }

// Init initialises parameters
func (o *Pipe) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "d":
			o.Line.Diameter = p.V
		case "l":
			o.Line.Length = p.V
		case "dz":
			o.Line.HeightChange = p.V
		case "k":
			o.Line.Kminor = p.V
		case "rough":
			o.Line.Roughness = p.V
		case "mu":
			o.Mu = p.V
		default:
			return chk.Err("pipe: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets current parameters
func (o *Pipe) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "d", V: o.Line.Diameter},
		&dbf.P{N: "l", V: o.Line.Length},
		&dbf.P{N: "dz", V: o.Line.HeightChange},
		&dbf.P{N: "k", V: o.Line.Kminor},
		&dbf.P{N: "rough", V: o.Line.Roughness},
		&dbf.P{N: "mu", V: o.Mu},
	}
}

// Compute drops the pressure by the line losses; temperature and
// composition pass through
func (o *Pipe) Compute(inlet fluid.State) (outlet fluid.State, res *Result) {
	rho := inlet.Rho
	if rho <= 0 {
		rho = 1000.0
	}
	fl := o.Line.Drop(inlet.Mdot, rho, o.Mu)

	outlet = fluid.State{
		P:       inlet.P - fl.TotalDp,
		T:       inlet.T,
		Mdot:    inlet.Mdot,
		Rho:     rho,
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
			"pressure_drop_bar": fl.TotalDp / 1e5,
			"velocity_m_s":      fl.Velocity,
			"reynolds":          fl.Reynolds,
		},
	}
	return
}
