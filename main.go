// Copyright 2025 The RESA-Pro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/luiserpenbach/RESA-Pro/cycle"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".cyc", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nRESA-Pro -- engine cycle analysis\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read cycle definition
	def, err := cycle.ReadDef(fnamepath)
	if err != nil {
		chk.Panic("cannot read cycle definition:\n%v", err)
	}
	def.ShowMsg = verbose

	// solve
	perf, err := cycle.Solve(def)
	if err != nil {
		chk.Panic("cycle solve failed:\n%v", err)
	}

	// results
	io.Pf("\n%s", perf.Table())
	if verbose {
		io.Pf("\n%q solved\n", fnkey)
	}
}
