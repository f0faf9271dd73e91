// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

// physical constants [SI]
const (
	G0    = 9.80665          // standard gravity [m/s²]
	Runiv = 8.31446261815324 // universal gas constant [J/(mol·K)]
	Patm  = 101325.0         // standard atmospheric pressure [Pa]
)
