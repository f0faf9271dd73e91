// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Propellant holds bulk liquid properties of a stored propellant at
// its nominal storage temperature
type Propellant struct {
	Name string  // propellant key; e.g. "lox", "ethanol"
	Rho  float64 // density [kg/m³]
	Mu   float64 // dynamic viscosity [Pa·s]
	Cp   float64 // specific heat [J/(kg·K)]
	Tsto float64 // nominal storage temperature [K]
}

// Init (re)initialises properties from a parameter set
func (o *Propellant) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rho":
			o.Rho = p.V
		case "mu":
			o.Mu = p.V
		case "cp":
			o.Cp = p.V
		case "tsto":
			o.Tsto = p.V
		default:
			return chk.Err("propellant: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets the current parameters
func (o Propellant) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "cp", V: o.Cp},
		&dbf.P{N: "tsto", V: o.Tsto},
	}
}

// database holds representative storage-condition properties for the
// propellants covered by the combustion tables
var database = map[string]func() *Propellant{
	"lox":      func() *Propellant { return &Propellant{"lox", 1141.0, 1.95e-4, 1700.0, 90.0} },
	"n2o":      func() *Propellant { return &Propellant{"n2o", 1220.0, 1.0e-4, 2000.0, 273.0} },
	"ethanol":  func() *Propellant { return &Propellant{"ethanol", 789.0, 1.2e-3, 2440.0, 293.0} },
	"rp1":      func() *Propellant { return &Propellant{"rp1", 810.0, 1.7e-3, 1880.0, 293.0} },
	"methane":  func() *Propellant { return &Propellant{"methane", 422.0, 1.2e-4, 3480.0, 111.0} },
	"hydrogen": func() *Propellant { return &Propellant{"hydrogen", 71.0, 1.3e-5, 9700.0, 20.0} },
	"water":    func() *Propellant { return &Propellant{"water", 998.0, 1.0e-3, 4186.0, 293.0} },
}

// GetPropellant returns a fresh copy of a named propellant
func GetPropellant(name string) (prop *Propellant, err error) {
	allocator, ok := database[strings.ToLower(name)]
	if !ok {
		return nil, chk.Err("propellant %q is not available in database", name)
	}
	return allocator(), nil
}
