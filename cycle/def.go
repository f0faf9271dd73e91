// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cycle implements the engine cycle solver: it connects
// components (pumps, turbines, valves, pipes, heat exchangers) into
// complete feed-system architectures and solves for power balance and
// system-level performance
package cycle

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// architecture keys
const (
	PressureFed  = "pressure_fed"
	GasGenerator = "gas_generator"
	Expander     = "expander"
)

// Definition holds the complete definition of an engine cycle: the
// architecture, the operating point and all component parameters.
// A Definition is input only; Solve never modifies it.
type Definition struct {

	// global
	Desc    string `json:"desc"`    // description of cycle
	Arch    string `json:"arch"`    // architecture: "pressure_fed", "gas_generator" or "expander"
	ShowMsg bool   `json:"showmsg"` // print warnings and progress messages

	// operating point
	Thrust       float64 `json:"thrust"` // N
	Pc           float64 `json:"pc"`     // chamber pressure [Pa]
	MixtureRatio float64 `json:"mr"`     // O/F mass ratio
	Cstar        float64 `json:"cstar"`  // characteristic velocity [m/s]
	Gamma        float64 `json:"gamma"`  // ratio of specific heats of products
	Tc           float64 `json:"tc"`     // chamber temperature [K]

	// propellant properties
	OxDensity   float64 `json:"oxrho"`   // kg/m³
	FuelDensity float64 `json:"fuelrho"` // kg/m³

	// turbopump parameters (gas-generator / expander)
	OxPumpEff       float64 `json:"oxpumpeta"`   // oxidizer pump isentropic efficiency
	FuelPumpEff     float64 `json:"fuelpumpeta"` // fuel pump isentropic efficiency
	TurbineEff      float64 `json:"turbeta"`     // turbine isentropic efficiency
	TurbineInletT   float64 `json:"turbtin"`     // turbine inlet temperature [K]
	TurbinePR       float64 `json:"turbpr"`      // turbine pressure ratio (fallback estimate)
	TurbineGasGamma float64 `json:"turbgam"`     // turbine working gas γ
	TurbineGasCp    float64 `json:"turbcp"`      // turbine working gas cp [J/(kg·K)]

	// feed system losses
	OxFeedLineDp   float64 `json:"oxlinedp"`   // Pa
	FuelFeedLineDp float64 `json:"fuellinedp"` // Pa
	OxValveDp      float64 `json:"oxvalvedp"`  // Pa
	FuelValveDp    float64 `json:"fuelvalvedp"` // Pa
	InjectorDpFrac float64 `json:"injdpfrac"`  // injector drop as fraction of Pc

	// expander cycle heat exchanger
	HxEff    float64 `json:"hxeps"`    // effectiveness [0,1]
	HxDpHot  float64 `json:"hxdphot"`  // chamber-side pressure drop [Pa]
	HxDpCold float64 `json:"hxdpcold"` // coolant-side pressure drop [Pa]
}

// NewDefinition returns a definition with default values: a small
// N2O/ethanol pressure-fed engine
func NewDefinition() (o *Definition) {
	return &Definition{
		Arch:            PressureFed,
		Thrust:          2000.0,
		Pc:              2.0e6,
		MixtureRatio:    4.0,
		Cstar:           1550.0,
		Gamma:           1.21,
		Tc:              3100.0,
		OxDensity:       1220.0,
		FuelDensity:     789.0,
		OxPumpEff:       0.65,
		FuelPumpEff:     0.65,
		TurbineEff:      0.60,
		TurbineInletT:   800.0,
		TurbinePR:       10.0,
		TurbineGasGamma: 1.3,
		TurbineGasCp:    1500.0,
		OxFeedLineDp:    50000.0,
		FuelFeedLineDp:  50000.0,
		OxValveDp:       50000.0,
		FuelValveDp:     50000.0,
		InjectorDpFrac:  0.15,
		HxEff:           0.80,
		HxDpHot:         50000.0,
		HxDpCold:        100000.0,
	}
}

// ReadDef reads a cycle definition from a (.cyc) JSON file; fields
// missing from the file keep their default values
func ReadDef(fnamepath string) (o *Definition, err error) {
	o = NewDefinition()
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read cycle definition file %q:\n%v", fnamepath, err)
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal cycle definition file %q:\n%v", fnamepath, err)
	}
	return
}
