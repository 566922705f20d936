// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package compressor implements performance formulae for centrifugal gas compressors
//  References:
//   [1] Menon ES (2005) Gas Pipeline Hydraulics. Taylor & Francis, 408p
//       http://dx.doi.org/10.1201/9781420038224
package compressor

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

const (

	// DefaultRw is the individual gas constant used when no gas-specific value
	// is available; approximately methane: 1545/16.043 [ft・lbf/(lb・°R)]
	DefaultRw = 96.3034

	// auxiliary
	secperday = 86400.0 // seconds in one day
	hpftlbs   = 550.0   // ft・lbf/s per horsepower
	nearzero  = 1e-8    // smallest magnitude allowed for physical divisors
)

// MRatio computes the exponent used in adiabatic compression formulae
//  mratio = (k - 1)/k
//  Input:
//   k -- specific heat ratio cp/cv of the gas
func MRatio(k float64) float64 {
	if math.Abs(k) < nearzero {
		chk.Panic("mratio: specific heat ratio k = %g must be nonzero", k)
	}
	return (k - 1.0) / k
}

// Head computes the head imparted to the gas for one operating point of a
// centrifugal compressor
//  head = (zAvg/mratio)・tSuction・rgas・((pd/ps)^mratio - 1)
//  Input:
//   pSuction   -- suction pressure [psia]
//   pDischarge -- discharge pressure [psia]
//   zAvg       -- average compressibility factor across the machine
//   mratio     -- (k-1)/k where k = specific heat ratio
//   tSuction   -- suction temperature [°R]
//   rgas       -- individual gas constant [ft・lbf/(lb・°R)]; e.g. DefaultRw
//  Output:
//   head -- compressor head [ft・lbf/lb]
func Head(pSuction, pDischarge, zAvg, mratio, tSuction, rgas float64) float64 {
	if pSuction < nearzero {
		chk.Panic("compressor head: suction pressure ps = %g must be positive", pSuction)
	}
	if pDischarge < 0 {
		chk.Panic("compressor head: discharge pressure pd = %g must be non-negative", pDischarge)
	}
	if math.Abs(mratio) < nearzero {
		chk.Panic("compressor head: mratio = %g must be nonzero", mratio)
	}
	return (zAvg / mratio) * tSuction * rgas * (math.Pow(pDischarge/pSuction, mratio) - 1.0)
}

// ConsumedPower computes the shaft power consumed by a compressor at one
// operating point. Mass flow is converted to lb/s and the result to horsepower
//  power = m・head / (mechEff・eta・86400・550)
//  Input:
//   eta      -- compressor (adiabatic) efficiency
//   massFlow -- gas mass flow through the machine [lb/day]
//   head     -- compressor head [ft・lbf/lb]
//   mechEff  -- mechanical train efficiency
//  Output:
//   power -- consumed power [HP]
func ConsumedPower(eta, massFlow, head, mechEff float64) float64 {
	if math.Abs(eta) < nearzero || math.Abs(mechEff) < nearzero {
		chk.Panic("consumed power: efficiencies eta = %g and mechEff = %g must be nonzero", eta, mechEff)
	}
	return massFlow * head / (mechEff * eta * secperday * hpftlbs)
}

// DischargeTemperature estimates the gas temperature at the discharge flange of
// an adiabatic compression
//  td = ts・(pd/ps)^mratio
//  Input:
//   pSuction   -- suction pressure [psia]
//   pDischarge -- discharge pressure [psia]
//   tSuction   -- suction temperature [°R]
//   mratio     -- (k-1)/k where k = specific heat ratio
//  Output:
//   td -- discharge temperature [°R]
func DischargeTemperature(pSuction, pDischarge, tSuction, mratio float64) float64 {
	if pSuction < nearzero {
		chk.Panic("discharge temperature: suction pressure ps = %g must be positive", pSuction)
	}
	if pDischarge < 0 {
		chk.Panic("discharge temperature: discharge pressure pd = %g must be non-negative", pDischarge)
	}
	return tSuction * math.Pow(pDischarge/pSuction, mratio)
}

// AdiabaticPower computes the compressor power from the flow rate and the
// pressure ratio using the adiabatic compression formula (see [1])
//  power = 0.0857・(k/(k-1))・q・ts・((z1+z2)/2)・(1/eta)・((pd/ps)^((k-1)/k) - 1)
//  Input:
//   pSuction   -- suction pressure [psia]
//   pDischarge -- discharge pressure [psia]
//   tSuction   -- suction temperature [°R]
//   q          -- gas flow rate [MMscf/day]
//   z1, z2     -- compressibility factors at suction and discharge conditions
//   k          -- specific heat ratio cp/cv
//   eta        -- compressor (adiabatic) efficiency
//  Output:
//   power -- required power [HP]
func AdiabaticPower(pSuction, pDischarge, tSuction, q, z1, z2, k, eta float64) float64 {
	mratio := MRatio(k)
	if math.Abs(mratio) < nearzero {
		chk.Panic("adiabatic power: specific heat ratio k = %g is invalid", k)
	}
	if pSuction < nearzero {
		chk.Panic("adiabatic power: suction pressure ps = %g must be positive", pSuction)
	}
	if math.Abs(eta) < nearzero {
		chk.Panic("adiabatic power: efficiency eta = %g must be nonzero", eta)
	}
	return 0.0857 * (1.0 / mratio) * q * tSuction * 0.5 * (z1 + z2) * (math.Pow(pDischarge/pSuction, mratio) - 1.0) / eta
}
