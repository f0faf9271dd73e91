// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feed

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

func Test_line01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("line01. turbulent ethanol line")

	line := Line{Diameter: 0.012, Length: 1.5, Kminor: 5.0, Roughness: 1.5e-6}
	res := line.Drop(0.5, 789.0, 1.2e-3)

	// velocity from continuity
	A := math.Pi * math.Pow(0.006, 2)
	v := 0.5 / (789.0 * A)
	chk.Scalar(tst, "velocity", 1e-9, res.Velocity, v)

	// Reynolds number and regime
	Re := 789.0 * v * 0.012 / 1.2e-3
	chk.Scalar(tst, "Reynolds", 1e-6, res.Reynolds, Re)
	if Re < 2300 {
		tst.Errorf("this point must be turbulent: Re = %g\n", Re)
		return
	}

	// Swamee-Jain friction factor
	f := 0.25 / math.Pow(math.Log10(1.5e-6/0.012/3.7+5.74/math.Pow(Re, 0.9)), 2)
	chk.Scalar(tst, "friction drop", 1e-6, res.FrictionDp, f*(1.5/0.012)*0.5*789.0*v*v)
	chk.Scalar(tst, "minor drop", 1e-6, res.MinorDp, 5.0*0.5*789.0*v*v)
	chk.Scalar(tst, "no static head", 1e-15, res.GravityDp, 0)
	chk.Scalar(tst, "total", 1e-6, res.TotalDp, res.FrictionDp+res.MinorDp+res.GravityDp)
}

func Test_line02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("line02. laminar regime and static head")

	line := Line{Diameter: 0.02, Length: 2.0, HeightChange: 1.5, Kminor: 2.0, Roughness: 1.5e-6}
	res := line.Drop(1e-4, 1141.0, 2e-4)

	if res.Reynolds >= 2300 {
		tst.Errorf("this point must be laminar: Re = %g\n", res.Reynolds)
		return
	}

	// laminar friction f = 64/Re
	f := 64.0 / math.Max(res.Reynolds, 1.0)
	chk.Scalar(tst, "laminar friction", 1e-9, res.FrictionDp,
		f*(2.0/0.02)*0.5*1141.0*res.Velocity*res.Velocity)
	chk.Scalar(tst, "static head", 1e-9, res.GravityDp, 1141.0*fluid.G0*1.5)

	// a downhill line recovers pressure from gravity
	downhill := line
	downhill.HeightChange = -1.5
	resDown := downhill.Drop(1e-4, 1141.0, 2e-4)
	if resDown.GravityDp >= 0 {
		tst.Errorf("downhill static head must be negative: %g\n", resDown.GravityDp)
		return
	}
}

func Test_budget01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("budget01. tank pressure budget")

	b := CalcBudget(2e6, 0.3e6, 0.5e5, 0, 0.5e5, 0.10)

	subtotal := 2e6 + 0.3e6 + 0.5e5 + 0.5e5
	chk.Scalar(tst, "margin", 1e-9, b.Margin, 0.10*subtotal)
	chk.Scalar(tst, "required tank P", 1e-9, b.RequiredTankP, 1.10*subtotal)
	if b.RequiredTankP <= b.ChamberPressure {
		tst.Errorf("tank pressure must exceed chamber pressure\n")
		return
	}

	// zero margin reduces to the plain sum
	b0 := CalcBudget(2e6, 0.3e6, 0.5e5, 0, 0.5e5, 0)
	chk.Scalar(tst, "no margin", 1e-9, b0.RequiredTankP, subtotal)
}
