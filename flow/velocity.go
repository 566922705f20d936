// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// GasVelocity computes the average gas velocity at a pipe cross section (see [1])
//  u = 0.002122・(qb/d²)・(Pb/Tb)・(z・t/p)
//  Input:
//   qb -- flow rate at base conditions [scf/day]
//   d  -- pipe inside diameter [in]
//   p  -- gas pressure at the section [psia]
//   t  -- gas temperature at the section [°R]
//   z  -- compressibility factor at the section
//  Output:
//   u -- average velocity [ft/s]
func GasVelocity(qb, d, p, t, z float64) float64 {
	if math.Abs(d) < nearzero || math.Abs(p) < nearzero {
		chk.Panic("gas velocity: diameter d = %g and pressure p = %g must be nonzero", d, p)
	}
	return 0.002122 * (qb / (d * d)) * (Pb / Tb) * (z * t / p)
}

// ErosionalVelocity computes the upper limit of gas velocity beyond which pipe
// erosion becomes a concern (see [1]). Operating velocity is usually kept below
// half this limit
//  umax = 100・sqrt(z・R・t/(29・g・p))
//  Input:
//   g -- specific gravity of gas (air = 1)
//   p -- gas pressure [psia]
//   t -- gas temperature [°R]
//   z -- compressibility factor
//  Output:
//   umax -- erosional velocity limit [ft/s]
func ErosionalVelocity(g, p, t, z float64) float64 {
	den := 29.0 * g * p // 29 is the rounded molecular weight of air used in [1]
	if math.Abs(den) < nearzero {
		chk.Panic("erosional velocity: divisor 29・g・p = %g must be nonzero", den)
	}
	rad := z * RUniversal * t / den
	if rad < 0 {
		chk.Panic("erosional velocity: negative radicand with g = %g, p = %g, t = %g and z = %g", g, p, t, z)
	}
	return 100.0 * math.Sqrt(rad)
}
