// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zfactor

import (
	"github.com/codyallen08/psig-compressor-course/flow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cnga implements the compressibility factor correlation of the California
// Natural Gas Association
type Cnga struct {

	// parameters
	G float64 // specific gravity of gas (air = 1)
}

// add model to factory
func init() {
	allocators["cnga"] = func() Model { return new(Cnga) }
}

// Init initialises model
func (o *Cnga) Init(prms dbf.Params) (err error) {
	o.G = 0.6
	for _, p := range prms {
		switch p.N {
		case "G":
			o.G = p.V
		default:
			return chk.Err("cnga model: parameter named %q is incorrect", p.N)
		}
	}
	if o.G < 1e-8 {
		return chk.Err("cnga model: specific gravity G = %g is invalid", o.G)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Cnga) GetPrms(example bool) dbf.Params {
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
func (o Cnga) Zfactor(tavg, pavg float64) float64 {
	return flow.ZFactorCNGA(o.G, tavg, pavg)
}
