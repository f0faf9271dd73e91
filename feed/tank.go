// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feed

import (
	"math"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// TankDesign holds the sizing result of one cylindrical propellant
// tank with hemispherical end caps
type TankDesign struct {
	Propellant     string  // propellant label
	PropellantMass float64 // kg
	PropellantVol  float64 // m³
	UllageFraction float64 // fractional ullage volume
	TotalVolume    float64 // m³
	TankPressure   float64 // MEOP [Pa]
	InnerRadius    float64 // m
	CylinderLength float64 // cylindrical section length [m]
	WallThickness  float64 // m
	TankMass       float64 // structural mass [kg]
	Material       string  // material label
}

// SizeTank sizes a cylindrical tank with hemispherical end caps using
// thin-wall pressure vessel theory (hoop stress) for wall thickness
func SizeTank(propMass, propDensity, tankPressure, innerDiameter, yieldStrength, matDensity, safetyFactor, ullageFraction float64, propName, matName string) (o TankDesign) {
	Ri := innerDiameter / 2.0
	Vprop := propMass / propDensity
	Vtotal := Vprop / (1.0 - ullageFraction)

	// two hemispherical caps form one full sphere
	Vcaps := (4.0 / 3.0) * math.Pi * math.Pow(Ri, 3)
	Vcyl := math.Max(Vtotal-Vcaps, 0.0)
	Lcyl := 0.0
	if Ri > 0 {
		Lcyl = Vcyl / (math.Pi * Ri * Ri)
	}

	// hoop stress σ = P·r/t  →  t = P·r·SF/σ_y
	t := tankPressure * Ri * safetyFactor / yieldStrength

	Ro := Ri + t
	VwallCyl := math.Pi * (Ro*Ro - Ri*Ri) * Lcyl
	VwallCaps := (4.0 / 3.0) * math.Pi * (math.Pow(Ro, 3) - math.Pow(Ri, 3))

	o.Propellant = propName
	o.PropellantMass = propMass
	o.PropellantVol = Vprop
	o.UllageFraction = ullageFraction
	o.TotalVolume = Vtotal
	o.TankPressure = tankPressure
	o.InnerRadius = Ri
	o.CylinderLength = Lcyl
	o.WallThickness = t
	o.TankMass = (VwallCyl + VwallCaps) * matDensity
	o.Material = matName
	return
}

// PressurantDesign holds the sizing result of a pressurant gas system
type PressurantDesign struct {
	Gas             string  // pressurant gas label
	PressurantMass  float64 // kg
	BottleVolume    float64 // m³
	BottlePinitial  float64 // Pa
	BottlePfinal    float64 // Pa
	BlowdownRatio   float64 // initial/final pressure
	TankTemperature float64 // K
}

// SizePressurantBlowdown sizes a blowdown pressurant system: the gas
// stored at blowdownRatio × tankPressure must fill the full propellant
// volume at the end-of-burn pressure
func SizePressurantBlowdown(tankVolume, tankPressure, molarMass, temperature, blowdownRatio float64, gasName string) (o PressurantDesign) {
	Pfinal := tankPressure
	Pinitial := blowdownRatio * Pfinal
	Rgas := fluid.Runiv / molarMass
	mGas := Pfinal * tankVolume / (Rgas * temperature)
	o.Gas = gasName
	o.PressurantMass = mGas
	o.BottleVolume = mGas * Rgas * temperature / Pinitial
	o.BottlePinitial = Pinitial
	o.BottlePfinal = Pfinal
	o.BlowdownRatio = blowdownRatio
	o.TankTemperature = temperature
	return
}

// SizePressurantRegulated sizes a regulated pressurant system: the
// bottle blows down from bottlePressure to minBottlePressure while the
// regulator holds the tank at regulatedPressure
func SizePressurantRegulated(tankVolume, regulatedPressure, bottlePressure, minBottlePressure, molarMass, temperature float64, gasName string) (o PressurantDesign) {
	Rgas := fluid.Runiv / molarMass
	mDelivered := regulatedPressure * tankVolume / (Rgas * temperature)
	usableDp := bottlePressure - minBottlePressure
	Vbottle := mDelivered * Rgas * temperature / usableDp
	o.Gas = gasName
	o.PressurantMass = bottlePressure * Vbottle / (Rgas * temperature)
	o.BottleVolume = Vbottle
	o.BottlePinitial = bottlePressure
	o.BottlePfinal = minBottlePressure
	o.BlowdownRatio = bottlePressure / minBottlePressure
	o.TankTemperature = temperature
	return
}
