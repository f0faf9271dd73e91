// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// CharacteristicVelocity computes c* [m/s] from the ratio of specific
// heats, the specific gas constant [J/(kg·K)] and the chamber
// (stagnation) temperature [K]
func CharacteristicVelocity(gamma, Rspecific, Tc float64) float64 {
	gp1 := gamma + 1.0
	gm1 := gamma - 1.0
	return math.Sqrt(Rspecific*Tc) / (gamma * math.Sqrt(math.Pow(2.0/gp1, gp1/gm1)))
}

// ThrustCoefficient computes CF from the expansion ratio Ae/At and the
// exit and ambient pressures given as fractions of chamber pressure
// (paOverPc = 0 for vacuum)
func ThrustCoefficient(gamma, expansionRatio, peOverPc, paOverPc float64) float64 {
	gm1 := gamma - 1.0
	gp1 := gamma + 1.0
	momentum := math.Sqrt((2.0 * gamma * gamma / gm1) * math.Pow(2.0/gp1, gp1/gm1) * (1.0 - math.Pow(peOverPc, gm1/gamma)))
	pressure := (peOverPc - paOverPc) * expansionRatio
	return momentum + pressure
}

// SpecificImpulse computes Isp [s] from c* and CF
func SpecificImpulse(cstar, CF float64) float64 {
	return cstar * CF / fluid.G0
}

// ExhaustVelocity computes the effective exhaust velocity [m/s]
func ExhaustVelocity(cstar, CF float64) float64 {
	return cstar * CF
}

// ThroatArea computes At [m²] from thrust F = CF·Pc·At
func ThroatArea(thrust, pc, CF float64) float64 {
	return thrust / (CF * pc)
}

// MassFlowRate computes the total propellant mass flow ṁ = Pc·At/c*
func MassFlowRate(pc, At, cstar float64) float64 {
	return pc * At / cstar
}

// NozzlePerformance collects ideal nozzle performance parameters
type NozzlePerformance struct {
	Gamma          float64 // ratio of specific heats
	ExpansionRatio float64 // Ae/At
	ExitMach       float64 // exit Mach number
	PeOverPc       float64 // exit pressure / chamber pressure
	CFvac          float64 // vacuum thrust coefficient
	CFsl           float64 // sea-level thrust coefficient
	Cstar          float64 // characteristic velocity [m/s]
	IspVac         float64 // vacuum specific impulse [s]
	IspSl          float64 // sea-level specific impulse [s]
	VeVac          float64 // vacuum effective exhaust velocity [m/s]
}

// CalcNozzlePerformance computes complete ideal nozzle performance for
// combustion products with the given molar mass [kg/mol], expanded
// from chamber pressure pc [Pa] against ambient pressure pa [Pa]
func CalcNozzlePerformance(gamma, molarMass, Tc, expansionRatio, pc, pa float64) (o NozzlePerformance, err error) {
	Rspec := fluid.Runiv / molarMass
	cstar := CharacteristicVelocity(gamma, Rspec, Tc)
	Me, err := MachFromAreaRatio(expansionRatio, gamma, true)
	if err != nil {
		return
	}
	peOverPc := PressureRatio(Me, gamma)
	paOverPc := pa / pc
	CFvac := ThrustCoefficient(gamma, expansionRatio, peOverPc, 0.0)
	CFsl := ThrustCoefficient(gamma, expansionRatio, peOverPc, paOverPc)
	o = NozzlePerformance{
		Gamma:          gamma,
		ExpansionRatio: expansionRatio,
		ExitMach:       Me,
		PeOverPc:       peOverPc,
		CFvac:          CFvac,
		CFsl:           CFsl,
		Cstar:          cstar,
		IspVac:         SpecificImpulse(cstar, CFvac),
		IspSl:          SpecificImpulse(cstar, CFsl),
		VeVac:          ExhaustVelocity(cstar, CFvac),
	}
	return
}
