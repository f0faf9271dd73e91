// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements fluid states and propellant property data
package fluid

// State holds the thermodynamic state of a fluid at one point of the
// feed system. All quantities are in SI units. A State is a value: it
// is created complete and never modified afterwards; each component
// produces a new State for its outlet.
type State struct {
	P       float64 // pressure [Pa]
	T       float64 // temperature [K]
	Mdot    float64 // mass flow rate [kg/s]
	Rho     float64 // density [kg/m³]
	H       float64 // specific enthalpy [J/kg]
	S       float64 // specific entropy [J/(kg·K)]
	Quality float64 // vapour quality; -1 means not two-phase
	Name    string  // fluid label; no physical effect
}

// TwoPhase tells whether the state is inside the two-phase dome
func (o State) TwoPhase() bool {
	return o.Quality >= 0 && o.Quality <= 1
}
