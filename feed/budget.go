// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feed

// Budget holds the system-level pressure budget from tank to chamber
type Budget struct {
	ChamberPressure float64 // Pa
	InjectorDp      float64 // Pa
	FeedLineDp      float64 // Pa
	CoolingDp       float64 // regen cooling jacket drop [Pa]
	ValveDp         float64 // Pa
	Margin          float64 // additional margin [Pa]
	RequiredTankP   float64 // Pa
}

// CalcBudget computes the required tank pressure:
//   P_tank ≥ Pc + ΔP_inj + ΔP_feed + ΔP_cooling + ΔP_valve + margin
func CalcBudget(chamberPressure, injectorDp, feedLineDp, coolingDp, valveDp, marginFraction float64) (o Budget) {
	subtotal := chamberPressure + injectorDp + feedLineDp + coolingDp + valveDp
	o.ChamberPressure = chamberPressure
	o.InjectorDp = injectorDp
	o.FeedLineDp = feedLineDp
	o.CoolingDp = coolingDp
	o.ValveDp = valveDp
	o.Margin = marginFraction * subtotal
	o.RequiredTankP = subtotal + o.Margin
	return
}
