// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/luiserpenbach/RESA-Pro/fluid"
)

// PlotPumpPower plots shaft power versus outlet pressure for a pump
// at the given inlet state
func PlotPumpPower(o *Pump, inlet fluid.State, pmin, pmax float64, np int, dirout, fnkey string) {
	X := utl.LinSpace(pmin, pmax, np)
	Y := make([]float64, np)
	for i := 0; i < np; i++ {
		pump := *o
		pump.Pout = X[i]
		_, res := pump.Compute(inlet)
		X[i] = X[i] / 1e5
		Y[i] = res.Power / 1e3
	}
	plt.Plot(X, Y, &plt.A{C: "b", NoClip: true})
	l := np - 1
	plt.Text(X[0], Y[0], io.Sf("(%.1f, %.2f)", X[0], Y[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
	plt.Text(X[l], Y[l], io.Sf("(%.1f, %.2f)", X[l], Y[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
	plt.Gll("$p_{out}$ [bar]", "$P_{shaft}$ [kW]", nil)
	plt.Save(dirout, fnkey)
}

// PlotHxProfile plots hot and cold outlet temperatures versus
// effectiveness for a heat exchanger at the given hot inlet state
func PlotHxProfile(o *HeatExchanger, hotIn fluid.State, np int, dirout, fnkey string) {
	X := utl.LinSpace(0, 1, np)
	Yh := make([]float64, np)
	Yc := make([]float64, np)
	for i := 0; i < np; i++ {
		hx := *o
		hx.Eff = X[i]
		hotOut, res := hx.Compute(hotIn)
		Yh[i] = hotOut.T
		Yc[i] = res.Cold.T
	}
	plt.Plot(X, Yh, &plt.A{C: "r", L: "hot outlet", NoClip: true})
	plt.Plot(X, Yc, &plt.A{C: "b", L: "cold outlet", NoClip: true})
	plt.Gll("$\\varepsilon$", "$T$ [K]", nil)
	plt.Save(dirout, fnkey)
}