// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form estimates of turbopump power
// balance quantities, used as solver fallbacks and test references
package ana

import "math"

// PumpPower computes the shaft power [W] consumed by a pump raising
// mdot [kg/s] of fluid with density rho by dp [Pa] at isentropic
// efficiency eta (η ≤ 0 is treated as 1)
func PumpPower(dp, rho, mdot, eta float64) float64 {
	w := dp / rho
	if eta > 0 {
		w /= eta
	}
	return w * mdot
}

// TurbineSpecificWork computes the actual specific work [J/kg]
// extracted by a turbine with inlet temperature Tin expanding through
// pressure ratio PR at isentropic efficiency eta
func TurbineSpecificWork(Tin, PR, gamma, cp, eta float64) float64 {
	dTideal := Tin * (1.0 - math.Pow(1.0/PR, (gamma-1.0)/gamma))
	return eta * cp * dTideal
}

// GGMassFlow estimates the gas-generator mass flow [kg/s] required to
// produce the given shaft power from the ideal isentropic temperature
// drop and the turbine efficiency. Returns a small nominal flow when
// the specific work degenerates to zero.
func GGMassFlow(power, Tin, PR, gamma, cp, eta float64) float64 {
	w := TurbineSpecificWork(Tin, PR, gamma, cp, eta)
	if w <= 0 {
		return 0.01
	}
	return power / w
}
