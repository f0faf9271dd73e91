// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cycle

import (
	"github.com/cpmech/gosl/chk"

	"github.com/luiserpenbach/RESA-Pro/thermo"
)

// solvers holds one solver function per architecture
var solvers = map[string]func(*Definition) (*Performance, error){
	PressureFed:  solvePressureFed,
	GasGenerator: solveGasGenerator,
	Expander:     solveExpander,
}

// Solve computes the self-consistent operating point of the cycle and
// returns its system-level performance. An unknown architecture is the
// only hard error; numerical degeneracies and non-converged power
// balances degrade to best-effort results flagged by
// Performance.Converged.
func Solve(def *Definition) (perf *Performance, err error) {
	solver, ok := solvers[def.Arch]
	if !ok {
		return nil, chk.Err("unknown cycle architecture %q", def.Arch)
	}
	return solver(def)
}

// flowRates computes the propellant mass flows from thrust, chamber
// pressure and c*, splitting the total by the mixture ratio. An
// expansion ratio of 10 is assumed for sizing.
func flowRates(def *Definition) (mdotTotal, mdotOx, mdotFuel float64, err error) {
	peOverPc, err := thermo.ExitPressureRatio(def.Gamma, 10.0)
	if err != nil {
		return
	}
	CF := thermo.ThrustCoefficient(def.Gamma, 10.0, peOverPc, 0.0)
	At := thermo.ThroatArea(def.Thrust, def.Pc, CF)
	mdotTotal = thermo.MassFlowRate(def.Pc, At, def.Cstar)
	mdotOx = mdotTotal * def.MixtureRatio / (1.0 + def.MixtureRatio)
	mdotFuel = mdotTotal / (1.0 + def.MixtureRatio)
	return
}
