// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo implements isentropic nozzle flow relations and
// combustion performance estimation for rocket engines. Combustion
// data is pre-tabulated with frozen-flow assumptions; high fidelity
// equilibrium chemistry has to come from an external tool.
package thermo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// AreaRatioFromMach computes A/A* from the Mach number
func AreaRatioFromMach(M, gamma float64) float64 {
	gp1 := gamma + 1.0
	gm1 := gamma - 1.0
	e := gp1 / (2.0 * gm1)
	return (1.0 / M) * math.Pow((2.0/gp1)*(1.0+0.5*gm1*M*M), e)
}

// MachFromAreaRatio inverts the area-Mach relation with a bracketed
// root search. supersonic selects which of the two branches to return.
func MachFromAreaRatio(areaRatio, gamma float64, supersonic bool) (M float64, err error) {
	if areaRatio < 1.0 {
		return 0, chk.Err("area ratio must be ≥ 1.0, got %g", areaRatio)
	}
	res := func(m float64) (float64, error) {
		return AreaRatioFromMach(m, gamma) - areaRatio, nil
	}
	var brent num.Brent
	brent.Init(res)
	if supersonic {
		return brent.Solve(1.0, 50.0, true)
	}
	return brent.Solve(1e-6, 1.0, true)
}

// PressureRatio computes the isentropic ratio P/P0 at Mach M
func PressureRatio(M, gamma float64) float64 {
	return math.Pow(1.0+0.5*(gamma-1.0)*M*M, -gamma/(gamma-1.0))
}

// TemperatureRatio computes the isentropic ratio T/T0 at Mach M
func TemperatureRatio(M, gamma float64) float64 {
	return 1.0 / (1.0 + 0.5*(gamma-1.0)*M*M)
}

// DensityRatio computes the isentropic ratio ρ/ρ0 at Mach M
func DensityRatio(M, gamma float64) float64 {
	return math.Pow(1.0+0.5*(gamma-1.0)*M*M, -1.0/(gamma-1.0))
}

// ExitPressureRatio computes pe/pc for a nozzle with the given area
// expansion ratio Ae/At (supersonic branch)
func ExitPressureRatio(gamma, expansionRatio float64) (float64, error) {
	Me, err := MachFromAreaRatio(expansionRatio, gamma, true)
	if err != nil {
		return 0, err
	}
	return PressureRatio(Me, gamma), nil
}
