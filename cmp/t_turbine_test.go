// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

func Test_turbine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("turbine01. ideal-gas expansion")

	inlet := fluid.State{
		P:       40e5,
		T:       900.0,
		Mdot:    0.3,
		Rho:     12.0,
		Quality: -1,
		Name:    "gg_exhaust",
	}
	turb := Turbine{Name: "turb", Eff: 0.6, Pout: 1e5, Gamma: 1.3, Cp: 1500.0}
	outlet, res := turb.Compute(inlet)

	PR := 40.0
	ToutIdeal := 900.0 * math.Pow(1.0/PR, 0.3/1.3)
	Tout := 900.0 - 0.6*(900.0-ToutIdeal)
	w := 1500.0 * (900.0 - Tout)

	chk.Scalar(tst, "Tout", 1e-9, outlet.T, Tout)
	chk.Scalar(tst, "power produced", 1e-9, res.Power, -w*0.3)
	chk.Scalar(tst, "mdot conserved", 1e-15, outlet.Mdot, inlet.Mdot)
	chk.Scalar(tst, "enthalpy drop", 1e-9, inlet.H-outlet.H, w)
	chk.Scalar(tst, "PR reported", 1e-12, res.Data["pressure_ratio"], PR)

	// the temperature-corrected outlet density must exceed the
	// pressure-only estimate, since the gas cools during expansion
	rhoPressureOnly := inlet.Rho * (1e5 / 40e5)
	if outlet.Rho <= rhoPressureOnly {
		tst.Errorf("outlet density must include the temperature correction: %g <= %g\n",
			outlet.Rho, rhoPressureOnly)
		return
	}
}

func Test_turbine02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("turbine02. monotonicity and degenerate exhaust")

	inlet := fluid.State{P: 50e5, T: 800.0, Mdot: 0.2, Rho: 10.0, Quality: -1}

	// produced power grows with pressure ratio
	prev := 0.0
	for i, pout := range []float64{25e5, 10e5, 5e5, 1e5} {
		turb := Turbine{Name: "t", Eff: 0.6, Pout: pout, Gamma: 1.3, Cp: 1500.0}
		_, res := turb.Compute(inlet)
		produced := -res.Power
		if i > 0 && produced <= prev {
			tst.Errorf("produced power must grow with PR: %g <= %g\n", produced, prev)
			return
		}
		prev = produced
	}

	// produced power grows with efficiency
	prev = 0.0
	for i, eta := range []float64{0.3, 0.5, 0.7, 0.9} {
		turb := Turbine{Name: "t", Eff: eta, Pout: 5e5, Gamma: 1.3, Cp: 1500.0}
		_, res := turb.Compute(inlet)
		produced := -res.Power
		if i > 0 && produced <= prev {
			tst.Errorf("produced power must grow with efficiency: %g <= %g\n", produced, prev)
			return
		}
		prev = produced
	}

	// non-positive exhaust pressure means no expansion at all
	turb := Turbine{Name: "t", Eff: 0.6, Pout: 0, Gamma: 1.3, Cp: 1500.0}
	outlet, res := turb.Compute(inlet)
	chk.Scalar(tst, "no work at PR=1", 1e-15, res.Power, 0)
	chk.Scalar(tst, "Tout unchanged at PR=1", 1e-15, outlet.T, inlet.T)
}
