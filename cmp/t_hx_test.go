// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

func Test_hx01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hx01. effectiveness-NTU energy balance")

	hotIn := fluid.State{P: 50e5, T: 1200.0, Mdot: 1.0, Rho: 5.0, Quality: -1, Name: "exhaust"}
	coldIn := fluid.State{P: 80e5, T: 300.0, Mdot: 0.5, Rho: 420.0, Quality: -1, Name: "methane"}

	hx := HeatExchanger{
		Name: "regen", Eff: 0.8,
		DpHot: 0.5e5, DpCold: 1e5,
		CpHot: 1500.0, CpCold: 2500.0,
		ColdIn: coldIn,
	}
	hotOut, res := hx.Compute(hotIn)
	coldOut := res.Cold

	// Cmin = min(1.0·1500, 0.5·2500) = 1250 W/K
	Q := 0.8 * 1250.0 * 900.0
	chk.Scalar(tst, "Q", 1e-9, res.Data["heat_transfer_kW"]*1e3, Q)
	chk.Scalar(tst, "hot drop", 1e-9, hotIn.T-hotOut.T, Q/1500.0)
	chk.Scalar(tst, "cold rise", 1e-9, coldOut.T-coldIn.T, Q/1250.0)
	chk.Scalar(tst, "hot mdot conserved", 1e-15, hotOut.Mdot, hotIn.Mdot)
	chk.Scalar(tst, "cold mdot conserved", 1e-15, coldOut.Mdot, coldIn.Mdot)
	chk.Scalar(tst, "hot dp", 1e-12, hotIn.P-hotOut.P, 0.5e5)
	chk.Scalar(tst, "cold dp", 1e-12, coldIn.P-coldOut.P, 1e5)
	chk.Scalar(tst, "no clamp", 1e-15, res.Data["pinch_clamped"], 0)

	// energy conservation across the two streams
	chk.Scalar(tst, "energy balance", 1e-9,
		hotIn.Mdot*1500.0*(hotIn.T-hotOut.T), coldIn.Mdot*2500.0*(coldOut.T-coldIn.T))
}

func Test_hx02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hx02. cold outlet never exceeds hot inlet")

	hotIn := fluid.State{P: 50e5, T: 1200.0, Mdot: 1.0, Rho: 5.0, Quality: -1, Name: "exhaust"}
	coldIn := fluid.State{P: 80e5, T: 300.0, Mdot: 0.5, Rho: 420.0, Quality: -1, Name: "methane"}

	for _, eps := range []float64{0.0, 0.25, 0.5, 0.75, 1.0, 1.3} {
		hx := HeatExchanger{
			Name: "regen", Eff: eps,
			CpHot: 1500.0, CpCold: 2500.0,
			ColdIn: coldIn,
		}
		_, res := hx.Compute(hotIn)
		if res.Cold.T > hotIn.T+1e-9 {
			tst.Errorf("eps=%g: cold outlet %g exceeds hot inlet %g\n", eps, res.Cold.T, hotIn.T)
			return
		}
	}

	// ε = 1 with Cmin on the cold side heats the cold stream exactly to
	// the hot inlet temperature, without tripping the clamp
	unit := HeatExchanger{Name: "regen", Eff: 1.0, CpHot: 1500.0, CpCold: 2500.0, ColdIn: coldIn}
	_, res := unit.Compute(hotIn)
	chk.Scalar(tst, "cold out at boundary", 1e-9, res.Cold.T, 1200.0)
	chk.Scalar(tst, "boundary not clamped", 1e-15, res.Data["pinch_clamped"], 0)

	// an unphysical effectiveness trips the clamp and is brought back
	// onto the boundary
	over := HeatExchanger{Name: "regen", Eff: 1.3, CpHot: 1500.0, CpCold: 2500.0, ColdIn: coldIn}
	_, resOver := over.Compute(hotIn)
	chk.Scalar(tst, "clamped flag", 1e-15, resOver.Data["pinch_clamped"], 1)
	chk.Scalar(tst, "clamped cold out", 1e-9, resOver.Cold.T, 1200.0)

	// ε = 0 transfers nothing
	off := HeatExchanger{Name: "regen", Eff: 0, CpHot: 1500.0, CpCold: 2500.0, ColdIn: coldIn}
	hotOut, resOff := off.Compute(hotIn)
	chk.Scalar(tst, "no heat", 1e-15, resOff.Data["heat_transfer_kW"], 0)
	chk.Scalar(tst, "hot T unchanged", 1e-15, hotOut.T, hotIn.T)
	chk.Scalar(tst, "cold T unchanged", 1e-15, resOff.Cold.T, coldIn.T)
}

func Test_hx03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hx03. reversed temperature gradient transfers nothing")

	hotIn := fluid.State{P: 10e5, T: 280.0, Mdot: 1.0, Rho: 5.0, Quality: -1}
	coldIn := fluid.State{P: 20e5, T: 350.0, Mdot: 0.5, Rho: 800.0, Quality: -1}

	hx := HeatExchanger{Name: "regen", Eff: 0.8, CpHot: 1500.0, CpCold: 2500.0, ColdIn: coldIn}
	hotOut, res := hx.Compute(hotIn)

	chk.Scalar(tst, "Q clamped to zero", 1e-15, res.Data["heat_transfer_kW"], 0)
	chk.Scalar(tst, "hot T unchanged", 1e-15, hotOut.T, hotIn.T)
	chk.Scalar(tst, "cold T unchanged", 1e-15, res.Cold.T, coldIn.T)
}
