// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements formulae for steady-state flow of natural gas in pipelines
//  References:
//   [1] Menon ES (2005) Gas Pipeline Hydraulics. Taylor & Francis, 408p
//       http://dx.doi.org/10.1201/9781420038224
package flow

// Constants below fix the unit system (USCS): pressures in psia, temperatures
// in °R, pipe diameters in inches, lengths in miles, standard volumetric flow
// in scf/day, actual volumetric flow in acf/min and mass flow in lb/day.
const (

	// base (standard) conditions
	Pb = 14.696 // base pressure [psia]
	Tb = 520.0  // base temperature [°R]

	// gas data
	MAir           = 28.97   // molecular weight of dry air [lb/lbmol]
	MMethane       = 16.04   // molecular weight of methane [lb/lbmol]
	RUniversal     = 10.73   // universal gas constant [psia・ft³/(lbmol・°R)]
	RUniversalWork = 1545.35 // universal gas constant in work units [ft・lbf/(lbmol・°R)]

	// methane reference constants
	RMethane   = 0.66895            // individual gas constant of methane [psia・ft³/(lb・°R)]
	RwMethane  = 96.5625            // individual gas constant of methane in work units [ft・lbf/(lb・°R)]
	KMethane   = 1.32               // specific heat ratio cp/cv of methane
	CmfMethane = Tb * RMethane / Pb // mass flow constant of methane [scf/lb]

	// flow equation coefficients
	Kf          = 77.54  // general flow equation [1]
	KWeymouth   = 433.5  // Weymouth equation [1]
	KPanhandleA = 435.87 // Panhandle A equation [1]
	KPanhandleB = 737.0  // Panhandle B equation [1]

	// auxiliary
	minperday = 1440.0 // minutes in one day
	nearzero  = 1e-8   // smallest magnitude allowed for physical divisors
)
