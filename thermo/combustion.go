// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// CombustionData holds tabulated combustion product properties for one
// propellant pair at one mixture ratio
type CombustionData struct {
	Oxidizer     string  // oxidizer key
	Fuel         string  // fuel key
	MixtureRatio float64 // O/F by mass
	Tc           float64 // chamber temperature [K]
	Gamma        float64 // ratio of specific heats of products
	MolarMass    float64 // molar mass of products [kg/mol]
	Cstar        float64 // characteristic velocity [m/s]
}

// combustionTable holds representative frozen-flow values for initial
// sizing. Production analyses should carry full CEA tables instead.
var combustionTable = []CombustionData{
	{"n2o", "ethanol", 3.0, 2800, 1.23, 0.0245, 1520},
	{"n2o", "ethanol", 4.0, 3100, 1.21, 0.0260, 1550},
	{"n2o", "ethanol", 5.0, 3200, 1.19, 0.0270, 1540},
	{"lox", "ethanol", 1.5, 3200, 1.20, 0.0230, 1650},
	{"lox", "ethanol", 2.0, 3400, 1.18, 0.0240, 1700},
	{"lox", "rp1", 2.3, 3500, 1.22, 0.0230, 1750},
	{"lox", "rp1", 2.7, 3600, 1.20, 0.0235, 1780},
	{"lox", "methane", 3.0, 3400, 1.19, 0.0210, 1780},
	{"lox", "methane", 3.5, 3550, 1.17, 0.0220, 1800},
	{"lox", "hydrogen", 5.0, 3200, 1.25, 0.0120, 2300},
	{"lox", "hydrogen", 6.0, 3400, 1.22, 0.0130, 2350},
}

// LookupCombustion finds combustion data for a propellant pair. With
// mixtureRatio > 0 the closest tabulated mixture ratio is returned;
// otherwise the entry with the highest c*.
func LookupCombustion(oxidizer, fuel string, mixtureRatio float64) (data CombustionData, err error) {
	var matches []CombustionData
	for _, d := range combustionTable {
		if strings.EqualFold(d.Oxidizer, oxidizer) && strings.EqualFold(d.Fuel, fuel) {
			matches = append(matches, d)
		}
	}
	if len(matches) == 0 {
		seen := make(map[string]bool)
		var avail []string
		for _, d := range combustionTable {
			pair := d.Oxidizer + "/" + d.Fuel
			if !seen[pair] {
				seen[pair] = true
				avail = append(avail, pair)
			}
		}
		err = chk.Err("no combustion data for %s/%s; available pairs: %v", oxidizer, fuel, avail)
		return
	}
	if mixtureRatio > 0 {
		best := matches[0]
		for _, d := range matches[1:] {
			if math.Abs(d.MixtureRatio-mixtureRatio) < math.Abs(best.MixtureRatio-mixtureRatio) {
				best = d
			}
		}
		return best, nil
	}
	best := matches[0]
	for _, d := range matches[1:] {
		if d.Cstar > best.Cstar {
			best = d
		}
	}
	return best, nil
}
