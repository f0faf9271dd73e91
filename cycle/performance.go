// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cycle

import (
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/luiserpenbach/RESA-Pro/cmp"
)

// Performance holds the system-level result of one cycle solve.
// Components carries one diagnostic record per evaluated component in
// flow order; its contents are advisory and not part of the stable
// output surface.
type Performance struct {
	Arch         string        // architecture label
	Thrust       float64       // N
	Pc           float64       // chamber pressure [Pa]
	TotalMdot    float64       // total propellant mass flow [kg/s]
	MixtureRatio float64       // O/F
	Isp          float64       // delivered specific impulse [s]
	Cstar        float64       // characteristic velocity [m/s]
	PumpPower    float64       // total pump shaft power [W]
	TurbinePower float64       // total turbine shaft power [W]
	BalanceError float64       // turbine power - pump power [W]
	TankPressOx  float64       // oxidizer tank pressure [Pa]
	TankPressFu  float64       // fuel tank pressure [Pa]
	Converged    bool          // power balance root bracketed and converged (always true for pressure-fed)
	Components   []*cmp.Result // per-component diagnostics in flow order
}

// Table returns a formatted summary of the performance figures
func (o Performance) Table() (l string) {
	l = io.Sf("%-22s = %s\n", "architecture", o.Arch)
	l += io.Sf("%-22s = %.1f N\n", "thrust", o.Thrust)
	l += io.Sf("%-22s = %.2f bar\n", "chamber pressure", o.Pc/1e5)
	l += io.Sf("%-22s = %.4f kg/s\n", "total mass flow", o.TotalMdot)
	l += io.Sf("%-22s = %.2f\n", "mixture ratio", o.MixtureRatio)
	l += io.Sf("%-22s = %.1f s\n", "delivered Isp", o.Isp)
	l += io.Sf("%-22s = %.1f m/s\n", "c*", o.Cstar)
	l += io.Sf("%-22s = %.2f kW\n", "pump power", o.PumpPower/1e3)
	l += io.Sf("%-22s = %.2f kW\n", "turbine power", o.TurbinePower/1e3)
	l += io.Sf("%-22s = %.1f W\n", "balance residual", o.BalanceError)
	l += io.Sf("%-22s = %.2f bar\n", "ox tank pressure", o.TankPressOx/1e5)
	l += io.Sf("%-22s = %.2f bar\n", "fuel tank pressure", o.TankPressFu/1e5)
	l += io.Sf("%-22s = %v\n", "converged", o.Converged)
	for _, r := range o.Components {
		l += io.Sf("  %-12s (%s)  power = %.1f W", r.Name, r.Kind, r.Power)
		keys := make([]string, 0, len(r.Data))
		for k := range r.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			l += io.Sf("  %s = %.4g", k, r.Data[k])
		}
		l += "\n"
	}
	return
}
