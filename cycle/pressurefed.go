// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cycle

import (
	"github.com/luiserpenbach/RESA-Pro/cmp"
	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// solvePressureFed solves a pressure-fed cycle:
//
//   tank → feed line → valve → injector → chamber
//
// There is no turbomachinery; the tank pressure must overcome all
// downstream losses. Terminal computation, no iteration.
func solvePressureFed(def *Definition) (perf *Performance, err error) {
	mdotTotal, mdotOx, mdotFuel, err := flowRates(def)
	if err != nil {
		return
	}
	injectorDp := def.InjectorDpFrac * def.Pc

	// required tank pressures
	pTankOx := def.Pc + injectorDp + def.OxFeedLineDp + def.OxValveDp
	pTankFuel := def.Pc + injectorDp + def.FuelFeedLineDp + def.FuelValveDp

	var summaries []*cmp.Result

	// oxidizer path: line drop from the configured budget, then valve
	oxState := fluid.State{
		P:       pTankOx,
		T:       90.0, // cryogenic LOX or near-ambient N2O
		Mdot:    mdotOx,
		Rho:     def.OxDensity,
		Quality: -1,
		Name:    "oxidizer",
	}
	oxState.P -= def.OxFeedLineDp
	summaries = append(summaries, &cmp.Result{
		Name: "ox_feed_line", Kind: "pipe",
		Data: map[string]float64{"pressure_drop_bar": def.OxFeedLineDp / 1e5},
	})
	oxValve := cmp.Valve{Name: "ox_valve", Dp: def.OxValveDp}
	_, oxValveRes := oxValve.Compute(oxState)
	summaries = append(summaries, oxValveRes)

	// fuel path
	fuelState := fluid.State{
		P:       pTankFuel,
		T:       293.0,
		Mdot:    mdotFuel,
		Rho:     def.FuelDensity,
		Quality: -1,
		Name:    "fuel",
	}
	fuelState.P -= def.FuelFeedLineDp
	summaries = append(summaries, &cmp.Result{
		Name: "fuel_feed_line", Kind: "pipe",
		Data: map[string]float64{"pressure_drop_bar": def.FuelFeedLineDp / 1e5},
	})
	fuelValve := cmp.Valve{Name: "fuel_valve", Dp: def.FuelValveDp}
	_, fuelValveRes := fuelValve.Compute(fuelState)
	summaries = append(summaries, fuelValveRes)

	perf = &Performance{
		Arch:         PressureFed,
		Thrust:       def.Thrust,
		Pc:           def.Pc,
		TotalMdot:    mdotTotal,
		MixtureRatio: def.MixtureRatio,
		Isp:          def.Thrust / (mdotTotal * fluid.G0),
		Cstar:        def.Cstar,
		TankPressOx:  pTankOx,
		TankPressFu:  pTankFuel,
		Converged:    true,
		Components:   summaries,
	}
	return
}
