// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements a property model for natural gas mixtures
package gas

import (
	"github.com/codyallen08/psig-compressor-course/flow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Properties holds the constants of a natural gas characterised by its specific
// gravity and specific heat ratio. All derived values are computed once in Init
// from the universal gas constant and the molecular weight of air; analysing a
// different gas composition requires a new Properties instance
type Properties struct {

	// parameters
	G float64 // specific gravity of gas (air = 1)
	K float64 // specific heat ratio cp/cv

	// derived
	M    float64 // molecular weight [lb/lbmol]
	R    float64 // individual gas constant [psia・ft³/(lb・°R)]
	Rw   float64 // individual gas constant in work units [ft・lbf/(lb・°R)]
	Cmf  float64 // mass flow constant = Tb・R/Pb [scf/lb]
	Rhob float64 // density at base conditions = Pb/(R・Tb) [lb/ft³]
	Mrat float64 // (K-1)/K

	// additional data
	Desc string // description of the gas mixture, if any
}

// Init initialises this structure
func (o *Properties) Init(prms dbf.Params) (err error) {

	// default parameters
	o.G = 0.6
	o.K = 1.3

	// read parameters
	for _, p := range prms {
		switch p.N {
		case "G":
			o.G = p.V
		case "K":
			o.K = p.V
		default:
			return chk.Err("gas properties: parameter named %q is incorrect", p.N)
		}
	}

	// check
	if o.G < 1e-8 {
		return chk.Err("gas properties: specific gravity G = %g is invalid", o.G)
	}
	if o.K <= 1.0 {
		return chk.Err("gas properties: specific heat ratio K = %g is invalid", o.K)
	}

	// derived
	o.M = o.G * flow.MAir
	o.R = flow.RUniversal / o.M
	o.Rw = flow.RUniversalWork / o.M
	o.Cmf = flow.Tb * o.R / flow.Pb
	o.Rhob = flow.Pb / (o.R * flow.Tb)
	o.Mrat = (o.K - 1.0) / o.K
	return
}

// GetPrms gets (an example of) parameters
func (o Properties) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // typical pipeline quality gas
			&dbf.P{N: "G", V: 0.6}, // [-]
			&dbf.P{N: "K", V: 1.3}, // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "G", V: o.G},
		&dbf.P{N: "K", V: o.K},
	}
}

// QaToMassFlow converts actual volumetric flow [acf/min] to mass flow [lb/day]
// using the mass flow constant of this gas
func (o Properties) QaToMassFlow(qa, pSuction, ksuc float64) float64 {
	return flow.QaToMassFlow(qa, pSuction, ksuc, o.Cmf)
}

// QbToMassFlow converts standard volumetric flow [scf/day] to mass flow [lb/day]
func (o Properties) QbToMassFlow(qb float64) float64 {
	return flow.QbToMassFlow(qb, o.R)
}

// MassFlowToQb converts mass flow [lb/day] to standard volumetric flow [scf/day]
func (o Properties) MassFlowToQb(m float64) float64 {
	return flow.MassFlowToQb(m, o.R)
}

// MassFlowToQa converts mass flow [lb/day] to actual volumetric flow [acf/min]
func (o Properties) MassFlowToQa(m, ksuc, pSuction float64) float64 {
	return flow.MassFlowToQa(m, ksuc, pSuction, o.Cmf)
}

// ZFactor estimates the compressibility factor of this gas at the given average
// temperature [°F] and pressure [psia] using the CNGA method
func (o Properties) ZFactor(tavg, pavg float64) float64 {
	return flow.ZFactorCNGA(o.G, tavg, pavg)
}
