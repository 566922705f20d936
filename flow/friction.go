// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ReynoldsNumber computes the Reynolds number of gas flow in a pipe (see [1])
//  Re = 0.0004778・(Pb/Tb)・g・qb / (mu・d)
//  Input:
//   qb -- flow rate at base conditions [scf/day]
//   g  -- specific gravity of gas (air = 1)
//   mu -- dynamic viscosity of gas [lb/(ft・s)]
//   d  -- pipe inside diameter [in]
//  Output:
//   re -- Reynolds number
func ReynoldsNumber(qb, g, mu, d float64) float64 {
	if math.Abs(mu) < nearzero || math.Abs(d) < nearzero {
		chk.Panic("Reynolds number: viscosity mu = %g and diameter d = %g must be nonzero", mu, d)
	}
	return 0.0004778 * (Pb / Tb) * g * qb / (mu * d)
}

// FrictionFactorColebrook solves the Colebrook-White equation for the Darcy
// friction factor in turbulent flow
//  1/sqrt(f) = -2・log10(e/(3.7・d) + 2.51/(Re・sqrt(f)))
//  Input:
//   re -- Reynolds number; must correspond to turbulent flow (re > 2000)
//   e  -- absolute pipe roughness [in]
//   d  -- pipe inside diameter [in]
//  Output:
//   f -- Darcy friction factor
func FrictionFactorColebrook(re, e, d float64) float64 {

	// constants
	nmaxit := 30
	tol := 1e-10

	// check
	if re <= 2000 {
		chk.Panic("Colebrook equation: Reynolds number re = %g must correspond to turbulent flow (re > 2000)", re)
	}
	if e < 0 {
		chk.Panic("Colebrook equation: pipe roughness e = %g must be non-negative", e)
	}
	if math.Abs(d) < nearzero {
		chk.Panic("Colebrook equation: pipe diameter d = %g must be nonzero", d)
	}

	// fixed-point iterations on x = 1/sqrt(f)
	a := e / (3.7 * d)
	x := 7.0 // corresponds to f ≈ 0.02
	for it := 0; it < nmaxit; it++ {
		xnew := -2.0 * math.Log10(a+2.51*x/re)
		if math.Abs(xnew-x) < tol {
			return 1.0 / (xnew * xnew)
		}
		x = xnew
	}
	chk.Panic("Colebrook equation did not converge after %d iterations", nmaxit)
	return 0
}

// TransmissionFactor computes the transmission factor corresponding to a Darcy
// friction factor
//  F = 2/sqrt(f)
func TransmissionFactor(f float64) float64 {
	if f < nearzero {
		chk.Panic("transmission factor: friction factor f = %g must be positive", f)
	}
	return 2.0 / math.Sqrt(f)
}
