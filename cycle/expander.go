// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cycle

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"

	"github.com/luiserpenbach/RESA-Pro/cmp"
	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// expanderEval holds the component results of one evaluation of the
// expander network at a candidate fuel-pump discharge pressure
type expanderEval struct {
	oxRes     *cmp.Result
	fuelRes   *cmp.Result
	hxRes     *cmp.Result
	turbRes   *cmp.Result
	pumpPower float64
	turbPower float64
}

// solveExpander solves an expander cycle:
//
//   fuel path: tank → pump → cooling jacket (HX) → turbine → injector → chamber
//   ox path:   tank → pump → valve → injector → chamber
//
// The coolant (fuel) absorbs heat from the chamber walls and expands
// through the turbine that drives both pumps. The fuel-pump discharge
// pressure is iterated until the turbine power balances the total pump
// power; if the root cannot be bracketed the midpoint of the search
// interval is used and the result is flagged as not converged.
func solveExpander(def *Definition) (perf *Performance, err error) {
	mdotTotal, mdotOx, mdotFuel, err := flowRates(def)
	if err != nil {
		return
	}
	injectorDp := def.InjectorDpFrac * def.Pc

	pTank := 3e5
	pOxDischarge := def.Pc + injectorDp + def.OxValveDp

	// the turbine exhaust still feeds the injector
	pTurbineOut := def.Pc + injectorDp

	evaluate := func(pPumpOut float64) (ev expanderEval) {
		oxPump := cmp.Pump{Name: "ox_pump", Eff: def.OxPumpEff, Pout: pOxDischarge}
		oxInlet := fluid.State{P: pTank, T: 90.0, Mdot: mdotOx, Rho: def.OxDensity, Quality: -1, Name: "oxidizer"}
		_, ev.oxRes = oxPump.Compute(oxInlet)

		fuelPump := cmp.Pump{Name: "fuel_pump", Eff: def.FuelPumpEff, Pout: pPumpOut}
		fuelInlet := fluid.State{P: pTank, T: 293.0, Mdot: mdotFuel, Rho: def.FuelDensity, Quality: -1, Name: "fuel"}
		_, ev.fuelRes = fuelPump.Compute(fuelInlet)

		ev.pumpPower = ev.oxRes.Power + ev.fuelRes.Power

		// regenerative jacket: pumped fuel against a notional hot-gas
		// stream at the wall recovery temperature (~40% of Tc)
		hx := cmp.HeatExchanger{
			Name: "regen_jacket", Eff: def.HxEff,
			DpHot: def.HxDpHot, DpCold: def.HxDpCold,
			CpHot: 1500.0, CpCold: 2500.0,
			ColdIn: fluid.State{
				P:       pPumpOut,
				T:       293.0 + ev.fuelRes.Power/(mdotFuel*2500.0),
				Mdot:    mdotFuel,
				Rho:     def.FuelDensity,
				Quality: -1,
				Name:    "fuel",
			},
		}
		hotIn := fluid.State{P: def.Pc, T: def.Tc * 0.4, Mdot: mdotTotal, Rho: 5.0, Quality: -1, Name: "hot_gas"}
		_, ev.hxRes = hx.Compute(hotIn)
		heated := ev.hxRes.Cold

		// heated fuel vapor expands through the turbine
		turbine := cmp.Turbine{Name: "expander_turbine", Eff: def.TurbineEff, Pout: pTurbineOut, Gamma: 1.15, Cp: 2500.0}
		turbInlet := fluid.State{
			P:       heated.P,
			T:       heated.T,
			Mdot:    mdotFuel,
			Rho:     def.FuelDensity * 0.5, // heated fuel is less dense
			H:       heated.H,
			Quality: -1,
			Name:    "fuel_vapor",
		}
		_, ev.turbRes = turbine.Compute(turbInlet)
		ev.turbPower = math.Abs(ev.turbRes.Power)
		return
	}

	// search interval: the discharge must at least cover chamber,
	// injector and jacket losses plus margin
	pMin := def.Pc + injectorDp + def.HxDpCold + 1e5
	pMax := pMin + 50e5

	converged := true
	var brent num.Brent
	brent.Init(func(p float64) (float64, error) {
		ev := evaluate(p)
		return ev.turbPower - ev.pumpPower, nil
	})
	pBalanced, solveErr := brent.Solve(pMin, pMax, true)
	if solveErr != nil {
		converged = false
		if def.ShowMsg {
			io.PfRed("expander power balance not bracketed, using midpoint estimate\n")
		}
		pBalanced = (pMin + pMax) / 2.0
	}

	ev := evaluate(pBalanced)

	perf = &Performance{
		Arch:         Expander,
		Thrust:       def.Thrust,
		Pc:           def.Pc,
		TotalMdot:    mdotTotal,
		MixtureRatio: def.MixtureRatio,
		Isp:          def.Thrust / (mdotTotal * fluid.G0),
		Cstar:        def.Cstar,
		PumpPower:    ev.pumpPower,
		TurbinePower: ev.turbPower,
		BalanceError: ev.turbPower - ev.pumpPower,
		TankPressOx:  pTank,
		TankPressFu:  pTank,
		Converged:    converged,
		Components:   []*cmp.Result{ev.oxRes, ev.fuelRes, ev.hxRes, ev.turbRes},
	}
	return
}
