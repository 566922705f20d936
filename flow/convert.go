// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ksuc computes the suction constant relating actual and standard volumes of a
// real gas at flowing conditions
//  ksuc = Tb / (Pb・tf・z)
//  Input:
//   tf -- gas flowing temperature [°R]
//   z  -- compressibility factor at flowing conditions
//  Output:
//   ksuc -- suction constant [1/psia]
func Ksuc(tf, z float64) float64 {
	if math.Abs(tf) < nearzero || math.Abs(z) < nearzero {
		chk.Panic("ksuc constant: flowing temperature tf = %g and compressibility z = %g must be nonzero", tf, z)
	}
	return Tb / (Pb * tf * z)
}

// QaToMassFlow converts actual volumetric flow [acf/min] to mass flow [lb/day]
//  m = ksuc・p・qa・1440 / cmf
func QaToMassFlow(qa, pSuction, ksuc, cmf float64) float64 {
	if math.Abs(cmf) < nearzero {
		chk.Panic("mass flow constant cmf = %g is too close to zero; check physical units", cmf)
	}
	return ksuc * pSuction * qa * minperday / cmf
}

// QbToMassFlow converts standard volumetric flow [scf/day] to mass flow [lb/day].
// Note the units: qb must be given in scf/day and not MMscf/day
func QbToMassFlow(qb, rgas float64) float64 {
	if math.Abs(rgas) < nearzero {
		chk.Panic("gas constant rgas = %g is too close to zero; check physical units", rgas)
	}
	return qb * Pb / (rgas * Tb)
}

// MassFlowToQb converts mass flow [lb/day] to standard volumetric flow [scf/day]
func MassFlowToQb(m, rgas float64) float64 {
	return m * rgas * Tb / Pb
}

// MassFlowToQa converts mass flow [lb/day] to actual volumetric flow [acf/min]
//  qa = m・cmf / (ksuc・p) / 1440
func MassFlowToQa(m, ksuc, pSuction, cmf float64) float64 {
	if math.Abs(ksuc) < nearzero || math.Abs(pSuction) < nearzero {
		chk.Panic("suction constant ksuc = %g and suction pressure p = %g must be nonzero", ksuc, pSuction)
	}
	return m * cmf / (ksuc * pSuction) / minperday
}

// QaToQb converts actual volumetric flow [acf/min] to standard volumetric flow [scf/min].
// If results deviate more than about 3% from reference data, the assumed suction
// compressibility zSuction needs adjustment
//  qb = qa・p・Tb / (tf・Pb・z)
func QaToQb(qa, tSuction, pSuction, zSuction float64) float64 {
	if math.Abs(tSuction) < nearzero || math.Abs(zSuction) < nearzero {
		chk.Panic("suction temperature t = %g and compressibility z = %g must be nonzero", tSuction, zSuction)
	}
	return qa * pSuction * Tb / (tSuction * Pb * zSuction)
}
