// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ZFactorCNGA estimates the compressibility factor using the California Natural
// Gas Association method (eq 1.34 of [1]). The correlation is empirical and holds
// for typical pipeline conditions with average pressures above atmospheric;
// accuracy degrades outside that envelope and results should be checked against
// reference data when precision matters
//  Input:
//   sg   -- specific gravity of gas (air = 1)
//   tavg -- average gas temperature [°F]
//   pavg -- average pressure [psia]
//  Output:
//   z -- compressibility factor
func ZFactorCNGA(sg, tavg, pavg float64) float64 {
	pgauge := pavg - 14.7 // gauge units
	tabs := tavg + 460.0  // absolute temperature [°R]
	if tabs < nearzero {
		chk.Panic("CNGA z-factor: absolute temperature %g °R must be positive", tabs)
	}
	term := pgauge * 344400.0 * math.Pow(10.0, 1.785*sg) / math.Pow(tabs, 3.825)
	if math.Abs(1.0+term) < nearzero {
		chk.Panic("CNGA z-factor: correlation is singular with sg = %g, tavg = %g and pavg = %g", sg, tavg, pavg)
	}
	return 1.0 / (1.0 + term)
}
