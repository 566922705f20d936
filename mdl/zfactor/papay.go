// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zfactor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Papay implements Papay's compressibility factor correlation on top of
// Standing's pseudo-critical point equations for natural gas (see [1])
//  z = 1 - 3.52・ppr/10^(0.9813・tpr) + 0.274・ppr²/10^(0.8157・tpr)
type Papay struct {

	// parameters
	G float64 // specific gravity of gas (air = 1)

	// pseudo-critical point; derived from G unless given as parameters
	tpc float64 // pseudo-critical temperature [°R]
	ppc float64 // pseudo-critical pressure [psia]
}

// add model to factory
func init() {
	allocators["papay"] = func() Model { return new(Papay) }
}

// Init initialises model. The pseudo-critical point can be given directly with
// parameters "tpc" [°R] and "ppc" [psia]; otherwise it follows from G
func (o *Papay) Init(prms dbf.Params) (err error) {

	// default parameters
	o.G = 0.6
	o.tpc = 0
	o.ppc = 0

	// read parameters
	for _, p := range prms {
		switch p.N {
		case "G":
			o.G = p.V
		case "tpc":
			o.tpc = p.V
		case "ppc":
			o.ppc = p.V
		default:
			return chk.Err("papay model: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.G < 1e-8 {
		return chk.Err("papay model: specific gravity G = %g is invalid", o.G)
	}
	if o.tpc < 0 || o.ppc < 0 {
		return chk.Err("papay model: pseudo-critical values tpc = %g and ppc = %g must be positive", o.tpc, o.ppc)
	}

	// derived, unless given explicitly
	if o.tpc == 0 {
		o.tpc = PseudoCriticalTemperature(o.G)
	}
	if o.ppc == 0 {
		o.ppc = PseudoCriticalPressure(o.G)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Papay) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "G", V: 0.6},
		}
	}
	return dbf.Params{
		&dbf.P{N: "G", V: o.G},
	}
}

// Zfactor computes z at average temperature tavg [°F] and pressure pavg [psia]
func (o Papay) Zfactor(tavg, pavg float64) float64 {
	tpr := (tavg + 460.0) / o.tpc
	ppr := pavg / o.ppc
	if tpr < 1e-8 {
		chk.Panic("papay model: reduced temperature tpr = %g must be positive", tpr)
	}
	return 1.0 - 3.52*ppr/math.Pow(10.0, 0.9813*tpr) + 0.274*ppr*ppr/math.Pow(10.0, 0.8157*tpr)
}

// PseudoCriticalTemperature computes the pseudo-critical temperature of a
// natural gas from its specific gravity using Standing's equation (see [1])
//  tpc = 170.491 + 307.344・g [°R]
func PseudoCriticalTemperature(g float64) float64 {
	return 170.491 + 307.344*g
}

// PseudoCriticalPressure computes the pseudo-critical pressure of a natural gas
// from its specific gravity using Standing's equation (see [1])
//  ppc = 709.604 - 58.718・g [psia]
func PseudoCriticalPressure(g float64) float64 {
	return 709.604 - 58.718*g
}
