// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// GeneralFlowEq computes the standard volumetric flow rate through a pipe
// segment using the general flow equation (eq 2.2 of [1])
//  qb = Kf・(Tb/Pb)・d^2.5・sqrt((p1² - p2²)/(g・tf・l・z・f))
//  Input:
//   p1 -- upstream pressure [psia]
//   p2 -- downstream pressure [psia]
//   d  -- pipe inside diameter [in]
//   g  -- specific gravity of gas (air = 1)
//   tf -- average flowing temperature [°R]
//   l  -- segment length [mi]
//   z  -- average compressibility factor
//   f  -- Darcy friction factor
//  Output:
//   qb -- flow rate at base conditions [scf/day]
func GeneralFlowEq(p1, p2, d, g, tf, l, z, f float64) float64 {
	den := g * tf * l * z * f
	if math.Abs(den) < nearzero {
		chk.Panic("general flow equation: divisor g・tf・l・z・f = %g must be nonzero", den)
	}
	rad := (p1*p1 - p2*p2) / den
	if rad < 0 {
		chk.Panic("general flow equation: negative radicand with p1 = %g and p2 = %g; flow direction must go from high to low pressure", p1, p2)
	}
	return Kf * (Tb / Pb) * math.Pow(d, 2.5) * math.Sqrt(rad)
}

// Weymouth computes the flow rate through a pipe segment using the Weymouth
// equation (see [1]). Weymouth is typically used for short high-pressure
// gathering systems
//  Input:
//   p1, p2, d, g, tf, l, z -- as in GeneralFlowEq
//   ef -- pipeline efficiency factor (0 < ef ≤ 1)
//  Output:
//   qb -- flow rate at base conditions [scf/day]
func Weymouth(p1, p2, d, g, tf, l, z, ef float64) float64 {
	den := g * tf * l * z
	if math.Abs(den) < nearzero {
		chk.Panic("Weymouth equation: divisor g・tf・l・z = %g must be nonzero", den)
	}
	rad := (p1*p1 - p2*p2) / den
	if rad < 0 {
		chk.Panic("Weymouth equation: negative radicand with p1 = %g and p2 = %g", p1, p2)
	}
	return KWeymouth * (Tb / Pb) * math.Sqrt(rad) * math.Pow(d, 2.667) * ef
}

// PanhandleA computes the flow rate through a pipe segment using the Panhandle A
// equation (see [1]), a Reynolds-number dependent form suited to large diameter
// pipelines at moderate pressure
//  Input:
//   p1, p2, d, g, tf, l, z -- as in GeneralFlowEq
//   ef -- pipeline efficiency factor (0 < ef ≤ 1)
//  Output:
//   qb -- flow rate at base conditions [scf/day]
func PanhandleA(p1, p2, d, g, tf, l, z, ef float64) float64 {
	den := math.Pow(g, 0.8539) * tf * l * z
	if math.Abs(den) < nearzero {
		chk.Panic("Panhandle A equation: divisor g^0.8539・tf・l・z = %g must be nonzero", den)
	}
	rad := (p1*p1 - p2*p2) / den
	if rad < 0 {
		chk.Panic("Panhandle A equation: negative radicand with p1 = %g and p2 = %g", p1, p2)
	}
	return KPanhandleA * math.Pow(Tb/Pb, 1.0788) * math.Pow(rad, 0.5394) * math.Pow(d, 2.6182) * ef
}

// PanhandleB computes the flow rate through a pipe segment using the Panhandle B
// equation (see [1]), suited to high-pressure high-flow transmission lines
//  Input:
//   p1, p2, d, g, tf, l, z -- as in GeneralFlowEq
//   ef -- pipeline efficiency factor (0 < ef ≤ 1)
//  Output:
//   qb -- flow rate at base conditions [scf/day]
func PanhandleB(p1, p2, d, g, tf, l, z, ef float64) float64 {
	den := math.Pow(g, 0.961) * tf * l * z
	if math.Abs(den) < nearzero {
		chk.Panic("Panhandle B equation: divisor g^0.961・tf・l・z = %g must be nonzero", den)
	}
	rad := (p1*p1 - p2*p2) / den
	if rad < 0 {
		chk.Panic("Panhandle B equation: negative radicand with p1 = %g and p2 = %g", p1, p2)
	}
	return KPanhandleB * math.Pow(Tb/Pb, 1.02) * math.Pow(rad, 0.51) * math.Pow(d, 2.53) * ef
}
