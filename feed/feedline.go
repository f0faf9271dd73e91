// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package feed implements feed system sizing: line pressure drops,
// system pressure budgets, and tank / pressurant sizing
package feed

import (
	"math"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// LineResult holds the pressure-drop breakdown of one feed line segment
type LineResult struct {
	Length     float64 // line length [m]
	Diameter   float64 // inner diameter [m]
	Velocity   float64 // bulk velocity [m/s]
	Reynolds   float64 // Reynolds number
	FrictionDp float64 // friction loss [Pa]
	MinorDp    float64 // minor losses (fittings, bends) [Pa]
	GravityDp  float64 // static head [Pa]
	TotalDp    float64 // total pressure drop [Pa]
}

// Line holds feed line geometry
type Line struct {
	Diameter     float64 // inner diameter [m]
	Length       float64 // total length [m]
	HeightChange float64 // elevation change, positive upward [m]
	Kminor       float64 // sum of minor loss coefficients
	Roughness    float64 // inner surface roughness [m]
}

// Drop computes the pressure drop through the line for mass flow mdot
// [kg/s], density rho [kg/m³] and dynamic viscosity mu [Pa·s].
// Friction uses Darcy-Weisbach with 64/Re below Re=2300 and the
// Swamee-Jain approximation of the Colebrook equation above.
func (o Line) Drop(mdot, rho, mu float64) (res LineResult) {
	A := math.Pi * math.Pow(o.Diameter/2.0, 2)
	v := 0.0
	if A > 0 {
		v = mdot / (rho * A)
	}
	Re := 0.0
	if mu > 0 {
		Re = rho * v * o.Diameter / mu
	}
	var f float64
	if Re < 2300 {
		f = 64.0 / math.Max(Re, 1.0)
	} else {
		epsD := o.Roughness / o.Diameter
		f = 0.25 / math.Pow(math.Log10(epsD/3.7+5.74/math.Pow(Re, 0.9)), 2)
	}
	res.Length = o.Length
	res.Diameter = o.Diameter
	res.Velocity = v
	res.Reynolds = Re
	res.FrictionDp = f * (o.Length / o.Diameter) * 0.5 * rho * v * v
	res.MinorDp = o.Kminor * 0.5 * rho * v * v
	res.GravityDp = rho * fluid.G0 * o.HeightChange
	res.TotalDp = res.FrictionDp + res.MinorDp + res.GravityDp
	return
}
