// Copyright 2021 Cody Allen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// AveragePressure computes the average pressure in a pipe segment. The average
// weighs the upstream pressure more heavily because the pressure profile along
// the segment is nonlinear
//  pavg = (2/3)・(p1 + p2 - p1・p2/(p1+p2))
//  Input:
//   p1 -- upstream pressure [psia]
//   p2 -- downstream pressure [psia]
//  Output:
//   pavg -- average segment pressure [psia]
func AveragePressure(p1, p2 float64) float64 {
	if math.Abs(p1+p2) < nearzero {
		chk.Panic("average pressure: p1 + p2 = %g must be nonzero", p1+p2)
	}
	return (2.0 / 3.0) * (p1 + p2 - p1*p2/(p1+p2))
}
